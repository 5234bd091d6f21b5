package types

// Itinerary documents the shape the model is asked to return. Replies and
// prior itineraries travel through the service as raw JSON and are never
// decoded into it, so extra fields and loosely typed values survive.
type Itinerary struct {
	Summary   *ItinerarySummary `json:"summary,omitempty"`
	Itinerary []DayPlan         `json:"itinerary,omitempty"`
	Tips      []string          `json:"tips,omitempty"`
}

type ItinerarySummary struct {
	TotalDays  int      `json:"totalDays,omitempty"`
	Cities     []string `json:"cities,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

// DayPlan is a single calendar day of the trip.
type DayPlan struct {
	Day        int        `json:"day,omitempty"`
	Date       string     `json:"date,omitempty"`
	City       string     `json:"city,omitempty"`
	Theme      string     `json:"theme,omitempty"`
	Activities []Activity `json:"activities,omitempty"`
	StayArea   string     `json:"stayArea,omitempty"`
}

// Activity is one stop within a day. Food stops use Price and Cuisine,
// everything else uses Cost.
type Activity struct {
	Time        string `json:"time,omitempty"`
	Type        string `json:"type,omitempty"` // activity, food, stay
	Name        string `json:"name,omitempty"`
	Cuisine     string `json:"cuisine,omitempty"`
	Description string `json:"description,omitempty"`
	Tip         string `json:"tip,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Cost        string `json:"cost,omitempty"`
	Price       string `json:"price,omitempty"`
	Transport   string `json:"transport,omitempty"`
	Reservation string `json:"reservation,omitempty"`
}
