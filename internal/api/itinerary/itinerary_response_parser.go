package itinerary

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// rawPreviewLen bounds how much of a bad model reply is kept for logging.
const rawPreviewLen = 500

var ErrMalformedResponse = errors.New("malformed model response")

// MalformedResponseError is returned when the model reply holds no parseable
// JSON object. Raw is a prefix of the reply for diagnostics only.
type MalformedResponseError struct {
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	if e.Err == nil {
		return ErrMalformedResponse.Error()
	}
	return fmt.Sprintf("%s: %v", ErrMalformedResponse, e.Err)
}

func (e *MalformedResponseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedResponse}
	}
	return []error{ErrMalformedResponse, e.Err}
}

func newMalformedResponseError(raw string, err error) *MalformedResponseError {
	return &MalformedResponseError{Raw: truncateRunes(raw, rawPreviewLen), Err: err}
}

// truncateRunes cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

var (
	jsonFenceRe    = regexp.MustCompile("```json\\s*")
	bareFenceRe    = regexp.MustCompile("```\\s*")
	lineCommentRe  = regexp.MustCompile(`(?m)//.*$`)
	blockCommentRe = regexp.MustCompile(`/\*[\s\S]*?\*/`)
)

// ExtractJSONObject strips markdown fences and JS-style comments from a model
// reply and returns the span from the first '{' to the last '}'.
//
// Line comments are removed without regard to string literals, so a "//"
// inside a value (a URL, say) truncates the rest of that line.
func ExtractJSONObject(raw string) (string, error) {
	cleaned := jsonFenceRe.ReplaceAllString(raw, "")
	cleaned = bareFenceRe.ReplaceAllString(cleaned, "")
	cleaned = lineCommentRe.ReplaceAllString(cleaned, "")
	cleaned = blockCommentRe.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end < start {
		return "", newMalformedResponseError(raw, errors.New("no JSON object found"))
	}
	return cleaned[start : end+1], nil
}

// ParseItinerary extracts the JSON object from a model reply and returns it
// unchanged. Only JSON syntax is checked: any well-formed object is accepted,
// whatever its fields and value types.
func ParseItinerary(raw string) (json.RawMessage, error) {
	obj, err := ExtractJSONObject(raw)
	if err != nil {
		return nil, err
	}

	var v any
	if err := json.Unmarshal([]byte(obj), &v); err != nil {
		return nil, newMalformedResponseError(raw, err)
	}
	return json.RawMessage(obj), nil
}

// countDays is the length of the top-level "itinerary" array, or 0 when the
// object has none. Used for logging only.
func countDays(itinerary json.RawMessage) int {
	var outline struct {
		Itinerary []json.RawMessage `json:"itinerary"`
	}
	if err := json.Unmarshal(itinerary, &outline); err != nil {
		return 0
	}
	return len(outline.Itinerary)
}
