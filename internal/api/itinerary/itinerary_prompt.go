package itinerary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/FACorreiaa/go-japanwise-itinerary/internal/types"
)

// Prompt is the pair of messages sent to the completion endpoint.
type Prompt struct {
	System string
	User   string
}

// Len is the combined size of both messages in bytes.
func (p Prompt) Len() int {
	return len(p.System) + len(p.User)
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func optionalLine(prefix string, value string) string {
	if value == "" {
		return ""
	}
	return prefix + value
}

func optionalList(prefix string, values []string) string {
	if len(values) == 0 {
		return ""
	}
	return prefix + strings.Join(values, ", ")
}

// BuildGenerationPrompt assembles the full-trip prompt. Missing optional fields
// fall back to placeholder phrases.
func BuildGenerationPrompt(trip *types.TripRequest, plan *TripPlan) Prompt {
	interests := "Open to everything"
	if len(trip.Interests) > 0 {
		interests = strings.Join(trip.Interests, ", ")
	}

	firstDate := ""
	if len(plan.Dates) > 0 {
		firstDate = plan.Dates[0]
	}

	user := fmt.Sprintf(generationPromptTemplate,
		plan.TotalDays,
		orDefault(trip.AgeRange, "Adult"), orDefault(string(trip.TravelerType), "solo"),
		experienceDescription(trip.JapanExperience),
		strings.Join(plan.Dates, ", "),
		strings.ToUpper(plan.StartCity), trip.StartDate, orDefault(trip.ArrivalTime, "afternoon"),
		strings.ToUpper(plan.EndCity), trip.EndDate, orDefault(trip.DepartureTime, "afternoon"),
		describeAllocations(plan.Allocations),
		SeasonInfo(plan.Start.Month()),
		orDefault(trip.AccommodationStyle, "comfortable"),
		orDefault(string(trip.FoodStyle), "local"),
		orDefault(trip.Pace, "moderate"),
		optionalLine("- This trip is for: ", trip.TripPurpose),
		optionalLine("- ", morningDescription(trip.MorningPerson)),
		interests,
		optionalLine("MUST INCLUDE: ", trip.MustVisit),
		optionalList("DIETARY NEEDS: ", trip.DietaryRestrictions),
		optionalList("THEY WANT TO AVOID: ", trip.Avoidances),
		optionalLine("THEY MENTIONED: ", trip.AdditionalNotes),
		PersonalizationRules(trip.TravelerType, trip.FoodStyle),
		plan.TotalDays,
		firstDate,
	)

	return Prompt{
		System: fmt.Sprintf("%s\n\nInclude ALL %d days. Every activity MUST have transport and reservation fields.", systemPrompt, plan.TotalDays),
		User:   user,
	}
}

// BuildAdjustmentPrompt embeds a previously generated itinerary and the
// traveler's change request. The itinerary is re-indented with two spaces;
// its keys, values and string escapes are kept as sent.
func BuildAdjustmentPrompt(existing json.RawMessage, change string) (Prompt, error) {
	var body bytes.Buffer
	if err := json.Indent(&body, bytes.TrimSpace(existing), "", "  "); err != nil {
		return Prompt{}, fmt.Errorf("failed to indent existing itinerary: %w", err)
	}
	return Prompt{
		System: systemPrompt,
		User:   fmt.Sprintf(adjustmentPromptTemplate, body.String(), change),
	}, nil
}

const generationPromptTemplate = `Create a %d-day Japan itinerary for my friend.

WHO IS THIS FRIEND:
- %s, traveling as: %s
- Japan experience: %s

THEIR TRIP:
- Dates: %s
- Arriving: %s on %s (%s)
- Leaving: %s on %s (%s)
- Cities they want to visit: %s

SEASON: %s

THEIR STYLE:
- Accommodation: %s
- Food: %s
- Pace: %s
%s
%s

WHAT THEY'RE INTO: %s
%s
%s
%s
%s

PERSONALIZATION RULES (FOLLOW STRICTLY):
%s

Return ONLY valid JSON with this structure:
{
  "summary": {
    "totalDays": %d,
    "cities": ["city1", "city2"],
    "highlights": ["highlight1", "highlight2", "highlight3"]
  },
  "itinerary": [
    {
      "day": 1,
      "date": "%s",
      "city": "Tokyo",
      "theme": "Arrival & First Taste",
      "activities": [
        {
          "time": "15:00",
          "type": "activity",
          "name": "Specific Place Name",
          "description": "Why I'm taking you here",
          "tip": "What I'd tell you as we walk in",
          "duration": "1.5h",
          "cost": "¥500",
          "transport": "From Shinjuku Station East Exit: 5 min walk",
          "reservation": "Not needed"
        },
        {
          "time": "18:00",
          "type": "food",
          "name": "Restaurant Name (日本語名) - Neighborhood",
          "cuisine": "Type",
          "description": "Why this place is special",
          "tip": "What to order, where to sit, what to know",
          "price": "¥2,000-3,000",
          "transport": "10 min walk through Omoide Yokocho",
          "reservation": "Recommended for dinner - call same day morning"
        }
      ],
      "stayArea": "Neighborhood"
    }
  ],
  "tips": ["Practical tip for this specific trip"]
}`

const adjustmentPromptTemplate = `You have already created this itinerary for your friend:

%s

Your friend now says: "%s"

Please adjust the itinerary based on their request.
IMPORTANT:
- Keep everything that's working well
- Only change what they asked for
- Maintain the overall flow and quality
- Update transport times if spots change
- Keep the same JSON structure
- NEVER remove days or drastically restructure unless asked

Return the COMPLETE updated itinerary as valid JSON.`
