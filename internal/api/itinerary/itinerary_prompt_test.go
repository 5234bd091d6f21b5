package itinerary

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-japanwise-itinerary/internal/types"
)

func sampleTrip() *types.TripRequest {
	return &types.TripRequest{
		StartDate:           "2025-04-01",
		EndDate:             "2025-04-07",
		ArrivalAirport:      "NRT",
		ArrivalTime:         "morning",
		DepartureAirport:    "KIX",
		DepartureTime:       "evening",
		AgeRange:            "30s",
		TravelerType:        types.TravelerCouple,
		JapanExperience:     "first",
		Cities:              []string{"tokyo", "kyoto", "osaka"},
		MustVisit:           "teamLab Borderless",
		AccommodationStyle:  "ryokan",
		FoodStyle:           types.FoodFoodie,
		Pace:                "relaxed",
		TripPurpose:         "honeymoon",
		Interests:           []string{"food", "temples"},
		MorningPerson:       "early",
		DietaryRestrictions: []string{"no shellfish"},
		Avoidances:          []string{"crowds"},
		AdditionalNotes:     "We love jazz bars",
	}
}

func TestNewTripPlan(t *testing.T) {
	plan, err := NewTripPlan(sampleTrip())
	require.NoError(t, err)

	assert.Equal(t, 7, plan.TotalDays)
	assert.Equal(t, []string{"2025-04-01", "2025-04-02", "2025-04-03", "2025-04-04", "2025-04-05", "2025-04-06", "2025-04-07"}, plan.Dates)
	assert.Equal(t, "tokyo", plan.StartCity)
	assert.Equal(t, "osaka", plan.EndCity)
	assert.Equal(t, time.April, plan.Start.Month())
	assert.Len(t, plan.Allocations, 3)
}

func TestNewTripPlan_Cities(t *testing.T) {
	tests := []struct {
		name      string
		arrival   string
		departure string
		wantStart string
		wantEnd   string
	}{
		{"unknown arrival defaults to tokyo", "XXX", "", "tokyo", "tokyo"},
		{"same departure uses arrival airport", "FUK", types.SameAirport, "fukuoka", "fukuoka"},
		{"unknown departure falls back to start city", "CTS", "ICN", "sapporo", "sapporo"},
		{"lowercase codes", "hnd", "oka", "tokyo", "okinawa"},
		{"nagoya", "NGO", "HND", "nagoya", "tokyo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trip := &types.TripRequest{StartDate: "2025-01-10", EndDate: "2025-01-12", ArrivalAirport: tt.arrival, DepartureAirport: tt.departure}
			plan, err := NewTripPlan(trip)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, plan.StartCity)
			assert.Equal(t, tt.wantEnd, plan.EndCity)
		})
	}
}

func TestNewTripPlan_SpansMonthAndYear(t *testing.T) {
	plan, err := NewTripPlan(&types.TripRequest{StartDate: "2024-12-30", EndDate: "2025-01-02"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-12-30", "2024-12-31", "2025-01-01", "2025-01-02"}, plan.Dates)

	plan, err = NewTripPlan(&types.TripRequest{StartDate: "2024-02-28", EndDate: "2024-03-01"})
	require.NoError(t, err)
	assert.Equal(t, 3, plan.TotalDays)
}

func TestNewTripPlan_SameDay(t *testing.T) {
	plan, err := NewTripPlan(&types.TripRequest{StartDate: "2025-05-05", EndDate: "2025-05-05"})
	require.NoError(t, err)
	assert.Equal(t, 1, plan.TotalDays)
	assert.Equal(t, []string{"2025-05-05"}, plan.Dates)
}

func TestNewTripPlan_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"missing start", "", "2025-04-07"},
		{"missing end", "2025-04-01", ""},
		{"bad start", "04/01/2025", "2025-04-07"},
		{"bad end", "2025-04-01", "2025-13-01"},
		{"end before start", "2025-04-07", "2025-04-01"},
		{"too long", "2025-01-01", "2025-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTripPlan(&types.TripRequest{StartDate: tt.start, EndDate: tt.end})
			assert.ErrorIs(t, err, ErrInvalidTrip)
		})
	}
}

func TestNewTripPlan_LengthCap(t *testing.T) {
	plan, err := NewTripPlan(&types.TripRequest{StartDate: "2025-01-01", EndDate: "2025-03-31"})
	require.NoError(t, err)
	assert.Equal(t, maxTripDays, plan.TotalDays)

	_, err = NewTripPlan(&types.TripRequest{StartDate: "2025-01-01", EndDate: "2025-04-01"})
	assert.ErrorIs(t, err, ErrInvalidTrip)
}

func TestSeasonInfo(t *testing.T) {
	tests := []struct {
		month  time.Month
		season Season
		prefix string
	}{
		{time.January, SeasonWinter, "WINTER:"},
		{time.February, SeasonWinter, "WINTER:"},
		{time.March, SeasonSpring, "SPRING:"},
		{time.May, SeasonSpring, "SPRING:"},
		{time.June, SeasonSummer, "SUMMER:"},
		{time.August, SeasonSummer, "SUMMER:"},
		{time.September, SeasonAutumn, "AUTUMN:"},
		{time.November, SeasonAutumn, "AUTUMN:"},
		{time.December, SeasonWinter, "WINTER:"},
	}

	for _, tt := range tests {
		t.Run(tt.month.String(), func(t *testing.T) {
			assert.Equal(t, tt.season, SeasonForMonth(tt.month))
			assert.True(t, strings.HasPrefix(SeasonInfo(tt.month), tt.prefix))
		})
	}
}

func TestPersonalizationRules(t *testing.T) {
	rules := PersonalizationRules(types.TravelerFamilyYoung, types.FoodGourmet)
	lines := strings.Split(rules, "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "FAMILY WITH YOUNG KIDS (0-6): No izakayas or bars."))
	assert.Contains(t, lines[1], "GOURMET: High-end sushi, kaiseki, omakase.")

	assert.Empty(t, PersonalizationRules("astronaut", "space-food"))
	assert.Equal(t, foodRules[types.FoodBudget], PersonalizationRules("", types.FoodBudget))

	for _, tt := range []types.TravelerType{
		types.TravelerFamilyYoung, types.TravelerFamilyKids, types.TravelerFamilyTeens, types.TravelerCouple,
		types.TravelerSoloFemale, types.TravelerSoloMale, types.TravelerFriends, types.TravelerMultiGen,
	} {
		assert.NotEmpty(t, PersonalizationRules(tt, ""), tt)
	}
}

func TestBuildGenerationPrompt(t *testing.T) {
	trip := sampleTrip()
	plan, err := NewTripPlan(trip)
	require.NoError(t, err)

	p := BuildGenerationPrompt(trip, plan)

	assert.True(t, strings.HasPrefix(p.System, "You are JapanWise"))
	assert.True(t, strings.HasSuffix(p.System, "Include ALL 7 days. Every activity MUST have transport and reservation fields."))

	for _, want := range []string{
		"Create a 7-day Japan itinerary for my friend.",
		"- 30s, traveling as: couple",
		"- Japan experience: First time ever! Show them the magic while keeping it real.",
		"- Dates: 2025-04-01, 2025-04-02, 2025-04-03, 2025-04-04, 2025-04-05, 2025-04-06, 2025-04-07",
		"- Arriving: TOKYO on 2025-04-01 (morning)",
		"- Leaving: OSAKA on 2025-04-07 (evening)",
		"- Cities they want to visit: tokyo (3 days), kyoto (2 days), osaka (2 days)",
		"SEASON: SPRING: Cherry blossoms",
		"- Accommodation: ryokan",
		"- Food: foodie",
		"- Pace: relaxed",
		"- This trip is for: honeymoon",
		"- They're an early bird, 6am starts are fine",
		"WHAT THEY'RE INTO: food, temples",
		"MUST INCLUDE: teamLab Borderless",
		"DIETARY NEEDS: no shellfish",
		"THEY WANT TO AVOID: crowds",
		"THEY MENTIONED: We love jazz bars",
		"PERSONALIZATION RULES (FOLLOW STRICTLY):\nCOUPLE:",
		`"totalDays": 7,`,
		`"date": "2025-04-01",`,
	} {
		assert.Contains(t, p.User, want)
	}
	assert.Equal(t, len(p.System)+len(p.User), p.Len())
}

func TestBuildGenerationPrompt_Defaults(t *testing.T) {
	trip := &types.TripRequest{StartDate: "2025-10-20", EndDate: "2025-10-22"}
	plan, err := NewTripPlan(trip)
	require.NoError(t, err)

	p := BuildGenerationPrompt(trip, plan)

	for _, want := range []string{
		"- Adult, traveling as: solo",
		"- Japan experience: Japan regular. Skip the obvious, go straight to the good stuff.",
		"- Arriving: TOKYO on 2025-10-20 (afternoon)",
		"- Leaving: TOKYO on 2025-10-22 (afternoon)",
		"SEASON: AUTUMN:",
		"- Accommodation: comfortable",
		"- Food: local",
		"- Pace: moderate",
		"WHAT THEY'RE INTO: Open to everything",
	} {
		assert.Contains(t, p.User, want)
	}
	for _, absent := range []string{"This trip is for", "MUST INCLUDE", "DIETARY NEEDS", "THEY WANT TO AVOID", "THEY MENTIONED", "early bird", "Night owl"} {
		assert.NotContains(t, p.User, absent)
	}
}

func TestBuildGenerationPrompt_ExperienceAndMornings(t *testing.T) {
	trip := &types.TripRequest{StartDate: "2025-07-01", EndDate: "2025-07-02", JapanExperience: "second", MorningPerson: "late"}
	plan, err := NewTripPlan(trip)
	require.NoError(t, err)

	p := BuildGenerationPrompt(trip, plan)
	assert.Contains(t, p.User, "Been once before. They know the basics, show them deeper.")
	assert.Contains(t, p.User, "- Night owl, let them sleep in")
	assert.Contains(t, p.User, "SEASON: SUMMER:")
}

func TestBuildAdjustmentPrompt(t *testing.T) {
	existing := json.RawMessage(`{"summary":{"totalDays":2,"cities":["Kyoto"]},` +
		`"itinerary":[{"day":1,"date":"2025-04-01","city":"Kyoto","activities":[{"time":"09:00","name":"Fushimi Inari","cost":0}]},` +
		`{"day":"2","city":"Kyoto","weather":"rain","tags":[]}],"budgetEstimate":"¥80,000"}`)

	p, err := BuildAdjustmentPrompt(existing, "Swap day 2 for Nara")
	require.NoError(t, err)

	var indented bytes.Buffer
	require.NoError(t, json.Indent(&indented, existing, "", "  "))

	assert.Equal(t, systemPrompt, p.System)
	assert.True(t, strings.HasPrefix(p.User, "You have already created this itinerary for your friend:\n\n"+indented.String()+"\n\nYour friend now says"))
	assert.Contains(t, p.User, `Your friend now says: "Swap day 2 for Nara"`)
	assert.Contains(t, p.User, "- NEVER remove days or drastically restructure unless asked")
	assert.True(t, strings.HasSuffix(p.User, "Return the COMPLETE updated itinerary as valid JSON."))
}

// The embedded itinerary decodes to exactly what the client sent.
func TestBuildAdjustmentPrompt_EmbedsPriorItineraryUnchanged(t *testing.T) {
	existing := json.RawMessage("  {\"itinerary\": [{\"day\": 1, \"cost\": 1200, \"weather\": \"rain\", \"note\": \"<b>&</b>\"}], \"extra\": {\"a\": [1, 2.5, null, true]}}\n")

	p, err := BuildAdjustmentPrompt(existing, "More ramen")
	require.NoError(t, err)

	const prefix = "You have already created this itinerary for your friend:\n\n"
	const suffix = "\n\nYour friend now says"
	embedded := p.User[len(prefix):strings.Index(p.User, suffix)]

	var want, got any
	require.NoError(t, json.Unmarshal(existing, &want))
	require.NoError(t, json.Unmarshal([]byte(embedded), &got))
	assert.Equal(t, want, got)
	assert.Contains(t, embedded, `"note": "<b>&</b>"`)
	assert.Contains(t, embedded, "\n  \"extra\": {\n    \"a\": [\n      1,\n      2.5,")
}

func TestBuildAdjustmentPrompt_InvalidJSON(t *testing.T) {
	_, err := BuildAdjustmentPrompt(json.RawMessage(`{"itinerary":`), "More ramen")
	assert.Error(t, err)
}
