package itinerary

import (
	"strings"
	"time"

	"github.com/FACorreiaa/go-japanwise-itinerary/internal/types"
)

const defaultArrivalCity = "tokyo"

var airportCities = map[string]string{
	"NRT": "tokyo",
	"HND": "tokyo",
	"KIX": "osaka",
	"NGO": "nagoya",
	"FUK": "fukuoka",
	"CTS": "sapporo",
	"OKA": "okinawa",
}

// cityForAirport maps an IATA code to the city the trip starts or ends in.
func cityForAirport(code, fallback string) string {
	if city, ok := airportCities[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return city
	}
	return fallback
}

// Season is one of the four advisory bands keyed off the start month.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

var seasonAdvice = map[Season]string{
	SeasonSpring: "SPRING: Cherry blossoms late March-mid April. Golden Week (Apr 29-May 5) is extremely crowded.",
	SeasonSummer: "SUMMER: June is rainy. July-August hot & humid. Many festivals! Recommend early morning activities.",
	SeasonAutumn: "AUTUMN: Leaves peak mid-Nov to early Dec. Perfect weather. Include koyo viewing spots!",
	SeasonWinter: "WINTER: Cold but fewer tourists. Great for onsen. Some places closed Dec 31-Jan 3.",
}

func SeasonForMonth(month time.Month) Season {
	switch {
	case month >= time.March && month <= time.May:
		return SeasonSpring
	case month >= time.June && month <= time.August:
		return SeasonSummer
	case month >= time.September && month <= time.November:
		return SeasonAutumn
	default:
		return SeasonWinter
	}
}

// SeasonInfo is the crowd and weather note for trips starting in month.
func SeasonInfo(month time.Month) string {
	return seasonAdvice[SeasonForMonth(month)]
}

var travelerRules = map[types.TravelerType]string{
	types.TravelerFamilyYoung: "FAMILY WITH YOUNG KIDS (0-6): No izakayas or bars. Dinner by 18:00. Kid-friendly restaurants with high chairs. Stroller-accessible spots. Include parks, aquariums, interactive museums. Shorter walking distances. Nap time consideration in early afternoon.",
	types.TravelerFamilyKids:  "FAMILY WITH KIDS (7-12): Family restaurants OK, but no smoky izakayas. Activities kids find exciting (Pokemon Center, teamLab, etc). Balance culture with fun. Don't over-explain history.",
	types.TravelerFamilyTeens: "FAMILY WITH TEENS: Teens love Harajuku, Akihabara, trendy cafes. Give them some independence. Later dinners OK. Include Instagram-worthy spots.",
	types.TravelerCouple:      "COUPLE: Romantic spots, intimate restaurants, nice atmosphere > hype. Rooftop bars, river walks, sunset views. Quality over quantity.",
	types.TravelerSoloFemale:  "SOLO FEMALE: Safe neighborhoods, well-lit areas for evening. Solo-friendly restaurants (counter seats). Women-only accommodations option. Combine popular spots with hidden gems.",
	types.TravelerSoloMale:    "SOLO MALE: Counter seats at izakayas, ramen shops. Standing bars (tachinomi) for local interaction. Flexible schedule, deeper exploration.",
	types.TravelerFriends:     "FRIENDS GROUP: Izakayas perfect for sharing. Karaoke. Group-friendly activities. Lively neighborhoods. Late nights OK.",
	types.TravelerMultiGen:    "MULTI-GENERATIONAL: Balance everyone's pace. Accessible routes. Rest spots. Mix of cultural and light activities. Early dinners. Avoid too many stairs.",
}

var foodRules = map[types.FoodStyle]string{
	types.FoodBudget:  "BUDGET FOOD: Convenience stores (onigiri, sandwiches), standing soba, gyudon chains OK for quick meals. Lunch deals (teishoku). Depachika discounts after 7pm.",
	types.FoodLocal:   "LOCAL EATS: Neighborhood izakayas, family-run shops, local favorites. Where salary workers eat. Counter seats for interaction. ¥1,500-3,000 per meal.",
	types.FoodFoodie:  "FOODIE: Famous local specialties, destination restaurants, food halls. Worth traveling for. Reservations may be needed. ¥3,000-8,000 per meal.",
	types.FoodGourmet: "GOURMET: High-end sushi, kaiseki, omakase. Michelin spots and local legends. Reservations essential. ¥10,000+ per meal. Dress code awareness.",
}

// PersonalizationRules concatenates the guidance for the traveler type and the
// food style. Unknown tags add nothing.
func PersonalizationRules(traveler types.TravelerType, food types.FoodStyle) string {
	var rules []string
	if r, ok := travelerRules[traveler]; ok {
		rules = append(rules, r)
	}
	if r, ok := foodRules[food]; ok {
		rules = append(rules, r)
	}
	return strings.Join(rules, "\n")
}

func experienceDescription(level string) string {
	switch level {
	case "first":
		return "First time ever! Show them the magic while keeping it real."
	case "second":
		return "Been once before. They know the basics, show them deeper."
	default:
		return "Japan regular. Skip the obvious, go straight to the good stuff."
	}
}

func morningDescription(morningPerson string) string {
	switch morningPerson {
	case "early":
		return "They're an early bird, 6am starts are fine"
	case "late":
		return "Night owl, let them sleep in"
	default:
		return ""
	}
}

const systemPrompt = `You are JapanWise — not a travel agency, but a friend who lives in Japan.

YOUR IDENTITY:
You're the friend everyone wishes they had in Japan. You've lived in Tokyo for 8 years, but you've spent serious time in Kyoto, Osaka, and beyond. You're a bit of a food obsessive, you know the culture deeply, and you genuinely love showing people YOUR Japan — not the guidebook Japan.

HOW YOU PLAN TRIPS:
You're not making an "itinerary" — you're planning a trip for a friend who's visiting you. You'd never send them somewhere you haven't been yourself. You pick places because YOU love them, not because they're famous.

YOUR PHILOSOPHY:
1. "IKI" (粋) — Be tasteful, never try-hard. No over-stuffed schedules. No tourist traps just because they're popular. Leave room to breathe.

2. "KIKUBARI" (気配り) — Anticipate what they need before they know it. Tired after 3 temples? There's a perfect kissaten around the corner. Heavy lunch? The afternoon is a gentle walk.

3. "SENSIBILITY" — Your taste shows in what you pick. Not the famous spot, but the RIGHT spot for THIS person. A solo female traveler gets different recs than a group of friends.

4. "STORY" — A trip is a narrative, not a checklist. Day 1 sets the tone. The middle builds. The last day closes with meaning. Even within a day, there's a rhythm.

YOUR RULES:
- NEVER recommend a place you wouldn't personally take a friend
- ALWAYS consider who this specific person is (kids? couple? foodie? first-timer?)
- Each restaurant must be a REAL place with a specific name and location
- Include the insider tip you'd whisper to them as you walk in together
- Mix the iconic (if they want it) with your personal favorites
- Consider the FLOW: energy levels, walking distance, meal timing, emotional arc
- Variety: never repeat the same type of spot back-to-back unless that's the point

CRITICAL - PRACTICAL PLANNING (for "planner" type travelers):
- ALWAYS include "transport" field: how to get from previous spot (e.g., "10 min walk", "JR Yamanote to Shibuya (15 min, ¥200)", "Taxi recommended (¥1,500)")
- ALWAYS include "reservation" field: "Required - book 2 weeks ahead", "Recommended", "Walk-in OK", "Get there by 11am to avoid queue"
- Make sure timing is REALISTIC - include travel time between spots
- If a place is hard to find, mention landmarks in the tip
- For popular spots, mention best times to avoid crowds

RESPONSE:
- Valid JSON only, no markdown, no explanation
- Every activity MUST have transport and reservation fields`
