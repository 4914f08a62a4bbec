package services

import (
	"strings"
	"unicode/utf8"

	"tripplanner/internal/models/response_models"
)

const (
	dayPrefix         = "Day"
	sectionSuffix     = "Plan:"
	descriptionPrefix = "Description:"
	costPrefix        = "Estimated Cost:"
	activitiesHeader  = "Activities:"
	restaurantsHeader = response_models.RestaurantsLabel + ":"
	bulletChars       = "-*•"
)

type parseState int

const (
	stateNoDay parseState = iota
	stateInDay
	stateInSection
	stateInRestaurants
)

func (s parseState) String() string {
	switch s {
	case stateInDay:
		return "in-day"
	case stateInSection:
		return "in-section"
	case stateInRestaurants:
		return "in-restaurants"
	default:
		return "no-day"
	}
}

// itineraryScanner is the line classifier behind ParseItinerary.
//
// Transitions (first matching rule wins for every trimmed line):
//
//	"Day..."                    any state          -> in-day        flush previous day
//	"...Plan:"                  in-day/section/rest -> in-section   open empty section
//	"Description:" / "Estimated Cost:"  in-section  -> in-section   set field
//	"Activities:"               any                -> same          activities on
//	bullet, activities on       in-section         -> in-section   append activity
//	"Recommended Restaurants:"  any                -> in-restaurants
//	bullet                      in-restaurants     -> in-restaurants append restaurant
//	blank                       any                -> same          activities off (once a bullet was taken)
//	anything else               any                -> same          ignored
//
// Content emitted before the first day header is collected into an unnamed day
// that is never flushed.
type itineraryScanner struct {
	state        parseState
	result       response_models.Itinerary
	day          response_models.DayPlan
	section      int // index into day.Sections while in-section
	inActivities bool
	collected    bool // a bullet was taken since the last "Activities:"
}

// ParseItinerary turns a free-text model reply into days, plan sections and
// restaurant lists. Lines that match no rule are dropped; it never fails.
func ParseItinerary(text string) response_models.Itinerary {
	sc := &itineraryScanner{state: stateNoDay, section: -1}
	for _, raw := range strings.Split(text, "\n") {
		sc.scan(strings.TrimSpace(raw))
	}
	sc.flushDay()
	if sc.result.Days == nil {
		sc.result.Days = []response_models.DayPlan{}
	}
	return sc.result
}

func (sc *itineraryScanner) scan(line string) {
	switch {
	case strings.HasPrefix(line, dayPrefix):
		sc.flushDay()
		sc.day = response_models.DayPlan{Label: line}
		sc.section = -1
		sc.state = stateInDay
		sc.setActivities(false)

	case strings.HasSuffix(line, sectionSuffix):
		sc.openSection(line)

	case strings.HasPrefix(line, descriptionPrefix):
		if s := sc.currentSection(); s != nil {
			s.Description = strings.TrimSpace(strings.TrimPrefix(line, descriptionPrefix))
		}

	case strings.HasPrefix(line, costPrefix):
		if s := sc.currentSection(); s != nil {
			s.EstimatedCost = strings.TrimSpace(strings.TrimPrefix(line, costPrefix))
		}

	case line == activitiesHeader:
		sc.setActivities(true)

	case sc.inActivities && isBullet(line):
		sc.collected = true
		item := stripBullet(line)
		if sc.state == stateInRestaurants {
			sc.day.Restaurants = append(sc.day.Restaurants, item)
			return
		}
		if s := sc.currentSection(); s != nil {
			s.Activities = append(s.Activities, item)
		}

	case line == restaurantsHeader:
		sc.day.Restaurants = []string{}
		sc.section = -1
		sc.state = stateInRestaurants
		sc.setActivities(false)

	case sc.state == stateInRestaurants && isBullet(line):
		sc.day.Restaurants = append(sc.day.Restaurants, stripBullet(line))

	case line == "":
		if sc.collected {
			sc.setActivities(false)
		}
	}
}

func (sc *itineraryScanner) openSection(label string) {
	fresh := response_models.PlanSection{Label: label, Activities: []string{}}

	sc.section = -1
	for i := range sc.day.Sections {
		if sc.day.Sections[i].Label == label {
			sc.day.Sections[i] = fresh
			sc.section = i
			break
		}
	}
	if sc.section < 0 {
		sc.day.Sections = append(sc.day.Sections, fresh)
		sc.section = len(sc.day.Sections) - 1
	}
	sc.state = stateInSection
	sc.setActivities(false)
}

func (sc *itineraryScanner) currentSection() *response_models.PlanSection {
	if sc.state != stateInSection || sc.section < 0 {
		return nil
	}
	return &sc.day.Sections[sc.section]
}

func (sc *itineraryScanner) setActivities(on bool) {
	sc.inActivities = on
	sc.collected = false
}

func (sc *itineraryScanner) flushDay() {
	if sc.day.Label == "" || (len(sc.day.Sections) == 0 && sc.day.Restaurants == nil) {
		return
	}
	for i := range sc.result.Days {
		if sc.result.Days[i].Label == sc.day.Label {
			sc.result.Days[i] = sc.day
			return
		}
	}
	sc.result.Days = append(sc.result.Days, sc.day)
}

func isBullet(line string) bool {
	r, _ := utf8.DecodeRuneInString(line)
	return r != utf8.RuneError && strings.ContainsRune(bulletChars, r)
}

func stripBullet(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, bulletChars+" "))
}
