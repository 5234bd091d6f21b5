package itinerary

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CityAllocationRule bounds how many days a city should get and how much it
// pulls relative to the other chosen cities.
type CityAllocationRule struct {
	MinDays float64
	MaxDays float64
	Weight  float64
}

// CityAllocation is the suggested number of days in one city. Days can be
// fractional for day-trip cities such as Nara.
type CityAllocation struct {
	City string  `json:"city"`
	Days float64 `json:"days"`
}

func (a CityAllocation) String() string {
	return fmt.Sprintf("%s (%s days)", a.City, formatDays(a.Days))
}

var defaultCityRule = CityAllocationRule{MinDays: 1, MaxDays: 3, Weight: 1}

var cityAllocationRules = map[string]CityAllocationRule{
	"tokyo":     {MinDays: 3, MaxDays: 7, Weight: 3},
	"kyoto":     {MinDays: 2, MaxDays: 5, Weight: 2.5},
	"osaka":     {MinDays: 1, MaxDays: 3, Weight: 2},
	"nara":      {MinDays: 0.5, MaxDays: 1, Weight: 0.5},
	"hiroshima": {MinDays: 1, MaxDays: 2, Weight: 1.5},
	"hakone":    {MinDays: 1, MaxDays: 2, Weight: 1},
	"nikko":     {MinDays: 0.5, MaxDays: 1, Weight: 0.5},
	"kanazawa":  {MinDays: 1, MaxDays: 2, Weight: 1.5},
	"takayama":  {MinDays: 1, MaxDays: 2, Weight: 1},
	"fukuoka":   {MinDays: 1, MaxDays: 3, Weight: 1.5},
	"sapporo":   {MinDays: 2, MaxDays: 4, Weight: 2},
	"okinawa":   {MinDays: 3, MaxDays: 5, Weight: 2},
}

// RuleForCity returns the allocation rule for city, or the 1-3 day default
// for cities without one.
func RuleForCity(city string) CityAllocationRule {
	if rule, ok := cityAllocationRules[city]; ok {
		return rule
	}
	return defaultCityRule
}

// AllocateDays splits totalDays across cities by weight. Each share is rounded
// on its own and clamped to the city's bounds, so the result is not
// renormalised and may not add up to totalDays. The numbers are suggestions
// for the model, not a schedule.
func AllocateDays(cities []string, totalDays int) []CityAllocation {
	if len(cities) == 0 {
		return []CityAllocation{}
	}

	rules := make([]CityAllocationRule, len(cities))
	totalWeight := 0.0
	for i, city := range cities {
		rules[i] = RuleForCity(city)
		totalWeight += rules[i].Weight
	}

	allocations := make([]CityAllocation, len(cities))
	for i, city := range cities {
		rule := rules[i]
		share := roundHalfUp(rule.Weight / totalWeight * float64(totalDays))
		allocations[i] = CityAllocation{
			City: city,
			Days: math.Max(rule.MinDays, math.Min(rule.MaxDays, share)),
		}
	}
	return allocations
}

func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

func formatDays(days float64) string {
	return strconv.FormatFloat(days, 'f', -1, 64)
}

func describeAllocations(allocations []CityAllocation) string {
	parts := make([]string, len(allocations))
	for i, a := range allocations {
		parts[i] = a.String()
	}
	return strings.Join(parts, ", ")
}
