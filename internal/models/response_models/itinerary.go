package response_models

// RestaurantsLabel is the reserved per-day key holding restaurant names.
const RestaurantsLabel = "Recommended Restaurants"

type PlanSection struct {
	Label         string   `json:"label" yaml:"label"`
	Description   string   `json:"description" yaml:"description"`
	EstimatedCost string   `json:"estimated_cost" yaml:"estimated_cost"`
	Activities    []string `json:"activities" yaml:"activities"`
}

// DayPlan keeps sections in the order the model emitted them.
// Restaurants is nil when the day had no restaurant list.
type DayPlan struct {
	Label       string        `json:"label" yaml:"label"`
	Sections    []PlanSection `json:"sections" yaml:"sections"`
	Restaurants []string      `json:"restaurants,omitempty" yaml:"restaurants,omitempty"`
}

type Itinerary struct {
	Days []DayPlan `json:"days" yaml:"days"`
}

func (i Itinerary) IsEmpty() bool {
	return len(i.Days) == 0
}

func (i Itinerary) Day(label string) (DayPlan, bool) {
	for _, d := range i.Days {
		if d.Label == label {
			return d, true
		}
	}
	return DayPlan{}, false
}

func (d DayPlan) Section(label string) (PlanSection, bool) {
	for _, s := range d.Sections {
		if s.Label == label {
			return s, true
		}
	}
	return PlanSection{}, false
}

type GeneratedItinerary struct {
	Itinerary     Itinerary `json:"itinerary"`
	RawCompletion string    `json:"raw_completion"`
	Provider      string    `json:"provider,omitempty"`
}
