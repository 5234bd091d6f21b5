package types

import (
	"bytes"
	"encoding/json"
)

// TravelerType tags the travel party. It drives the personalization block of
// the prompt.
type TravelerType string

const (
	TravelerFamilyYoung TravelerType = "family-young"
	TravelerFamilyKids  TravelerType = "family-kids"
	TravelerFamilyTeens TravelerType = "family-teens"
	TravelerCouple      TravelerType = "couple"
	TravelerSoloFemale  TravelerType = "solo-female"
	TravelerSoloMale    TravelerType = "solo-male"
	TravelerFriends     TravelerType = "friends"
	TravelerMultiGen    TravelerType = "multi-gen"
)

type FoodStyle string

const (
	FoodBudget  FoodStyle = "budget"
	FoodLocal   FoodStyle = "local"
	FoodFoodie  FoodStyle = "foodie"
	FoodGourmet FoodStyle = "gourmet"
)

// DateLayout is the wire format of StartDate and EndDate.
const DateLayout = "2006-01-02"

// SameAirport as DepartureAirport means the trip ends where it started.
const SameAirport = "same"

// TripRequest is the body of POST /api/generate.
type TripRequest struct {
	StartDate           string       `json:"startDate,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2025-04-01"`
	EndDate             string       `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2025-04-07"`
	ArrivalAirport      string       `json:"arrivalAirport,omitempty" validate:"omitempty,max=8" example:"NRT"`
	ArrivalTime         string       `json:"arrivalTime,omitempty" example:"14:00"`
	DepartureAirport    string       `json:"departureAirport,omitempty" validate:"omitempty,max=8" example:"KIX"`
	DepartureTime       string       `json:"departureTime,omitempty" example:"18:00"`
	AgeRange            string       `json:"ageRange,omitempty" example:"30s"`
	TravelerType        TravelerType `json:"travelerType,omitempty" example:"couple"`
	JapanExperience     string       `json:"japanExperience,omitempty" example:"first"` // first, second, or anything else for regulars
	Cities              []string     `json:"cities,omitempty" validate:"omitempty,max=20,dive,max=64" example:"tokyo,kyoto"`
	MustVisit           string       `json:"mustVisit,omitempty" example:"teamLab, sushi at Tsukiji"`
	AccommodationStyle  string       `json:"accommodationStyle,omitempty" example:"ryokan"`
	FoodStyle           FoodStyle    `json:"foodStyle,omitempty" example:"foodie"`
	Pace                string       `json:"pace,omitempty" example:"moderate"`
	TripPurpose         string       `json:"tripPurpose,omitempty" example:"honeymoon"`
	Interests           []string     `json:"interests,omitempty" validate:"omitempty,max=30"`
	MorningPerson       string       `json:"morningPerson,omitempty" validate:"omitempty,max=32" example:"early"`
	DietaryRestrictions []string     `json:"dietaryRestrictions,omitempty"`
	Avoidances          []string     `json:"avoidances,omitempty"`
	AdditionalNotes     string       `json:"additionalNotes,omitempty" validate:"max=4000"`

	// Adjustment path: both must be set. The itinerary is kept as sent and
	// embedded in the prompt unchanged.
	ExistingItinerary json.RawMessage `json:"existingItinerary,omitempty" swaggertype:"object"`
	AdjustmentRequest string          `json:"adjustmentRequest,omitempty" validate:"max=2000"`
}

// IsAdjustment reports whether the request revises a previous itinerary
// instead of generating a new one.
func (t *TripRequest) IsAdjustment() bool {
	return HasItinerary(t.ExistingItinerary) && t.AdjustmentRequest != ""
}

// HasItinerary reports whether raw carries a value. Empty input and the
// literals null, false, 0 and "" count as absent.
func HasItinerary(raw json.RawMessage) bool {
	v := bytes.TrimSpace(raw)
	if len(v) == 0 {
		return false
	}
	switch string(v) {
	case "null", "false", "0", `""`:
		return false
	}
	return true
}
