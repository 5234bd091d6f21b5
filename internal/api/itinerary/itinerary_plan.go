package itinerary

import (
	"fmt"
	"math"
	"time"

	"github.com/FACorreiaa/go-japanwise-itinerary/internal/types"
)

// maxTripDays caps the number of calendar dates put in a prompt.
const maxTripDays = 90

// TripPlan holds everything derived from a TripRequest before prompting:
// the calendar, the start and end cities, and the day allocation.
type TripPlan struct {
	Start       time.Time
	End         time.Time
	TotalDays   int
	Dates       []string
	StartCity   string
	EndCity     string
	Allocations []CityAllocation
}

// NewTripPlan parses the trip dates and resolves the cities. Dates are
// interpreted as UTC calendar days.
func NewTripPlan(trip *types.TripRequest) (*TripPlan, error) {
	if trip.StartDate == "" || trip.EndDate == "" {
		return nil, fmt.Errorf("%w: start and end dates are required", ErrInvalidTrip)
	}
	start, err := time.Parse(types.DateLayout, trip.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start date: %w", ErrInvalidTrip, err)
	}
	end, err := time.Parse(types.DateLayout, trip.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end date: %w", ErrInvalidTrip, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date %s is before start date %s", ErrInvalidTrip, trip.EndDate, trip.StartDate)
	}

	totalDays := int(math.Ceil(end.Sub(start).Hours()/24)) + 1
	if totalDays > maxTripDays {
		return nil, fmt.Errorf("%w: trip of %d days exceeds %d", ErrInvalidTrip, totalDays, maxTripDays)
	}

	dates := make([]string, totalDays)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i).Format(types.DateLayout)
	}

	startCity := cityForAirport(trip.ArrivalAirport, defaultArrivalCity)
	departure := trip.DepartureAirport
	if departure == types.SameAirport {
		departure = trip.ArrivalAirport
	}

	return &TripPlan{
		Start:       start,
		End:         end,
		TotalDays:   totalDays,
		Dates:       dates,
		StartCity:   startCity,
		EndCity:     cityForAirport(departure, startCity),
		Allocations: AllocateDays(trip.Cities, totalDays),
	}, nil
}
