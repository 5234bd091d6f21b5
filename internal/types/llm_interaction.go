package types

import (
	"encoding/json"

	"github.com/google/uuid"
)

type GenerationMode string

const (
	ModeGenerate GenerationMode = "generate"
	ModeAdjust   GenerationMode = "adjust"
)

// LlmInteraction describes one completion call. It is logged, never stored.
type LlmInteraction struct {
	ID             uuid.UUID      `json:"id"`
	Mode           GenerationMode `json:"mode"`
	ModelUsed      string         `json:"model_used"`
	Temperature    float32        `json:"temperature"`
	PromptLength   int            `json:"prompt_length"`
	ResponseLength int            `json:"response_length"`
	LatencyMs      int            `json:"latency_ms"`
}

// GenerationResult is what the itinerary service hands back to the handler.
// Itinerary is the model's JSON object exactly as extracted from the reply.
type GenerationResult struct {
	Itinerary   json.RawMessage
	Interaction LlmInteraction
}
