package request_models

import "time"

const DateLayout = "2006-01-02"

const (
	PlanTypeVeryTouristy = "Very Touristy Plans"
	PlanTypeLocal        = "Local Plans"
	PlanTypeNotTouristy  = "Not-Touristy Plans At All"
)

var PlanTypes = []string{PlanTypeVeryTouristy, PlanTypeLocal, PlanTypeNotTouristy}

var TransportationModes = []string{"Car", "Public Transport", "Boat", "Bicycle", "Walking"}

// TripRequest is the submitted trip form. Optional fields may be left zero.
type TripRequest struct {
	Destination           string   `json:"destination" yaml:"destination"`
	Duration              int      `json:"duration" yaml:"duration"`
	Travellers            int      `json:"travellers" yaml:"travellers"`
	Children              int      `json:"children" yaml:"children"`
	Interests             string   `json:"interests" yaml:"interests"`
	BudgetPerPersonPerDay float64  `json:"budget_per_person_per_day" yaml:"budget_per_person_per_day"`
	StartDate             string   `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	AccommodationLocation string   `json:"accommodation_location,omitempty" yaml:"accommodation_location,omitempty"`
	PetsAllowed           bool     `json:"pets_allowed" yaml:"pets_allowed"`
	WheelchairAccessible  bool     `json:"wheelchair_accessible" yaml:"wheelchair_accessible"`
	Transportation        []string `json:"transportation,omitempty" yaml:"transportation,omitempty"`
	PlanType              string   `json:"plan_type,omitempty" yaml:"plan_type,omitempty"`
	RandomizeInterests    bool     `json:"randomize_interests" yaml:"randomize_interests"`
}

func (r TripRequest) HasChildren() bool {
	return r.Children > 0
}

// Start returns the parsed start date; ok is false when no date was given.
func (r TripRequest) Start() (time.Time, bool) {
	if r.StartDate == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, r.StartDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (r TripRequest) TotalBudget() float64 {
	return r.BudgetPerPersonPerDay * float64(r.Travellers) * float64(r.Duration)
}
