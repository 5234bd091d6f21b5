package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	generativeAI "github.com/FACorreiaa/go-japanwise-itinerary/internal/api/generative_ai"
	"github.com/FACorreiaa/go-japanwise-itinerary/internal/types"
)

type MockCompletionClient struct {
	mock.Mock
}

func (m *MockCompletionClient) Complete(ctx context.Context, systemPrompt, userPrompt string, s generativeAI.Sampling) (string, error) {
	args := m.Called(ctx, systemPrompt, userPrompt, s)
	return args.String(0), args.Error(1)
}

func (m *MockCompletionClient) Model() string {
	return "gemini-test"
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const sampleReply = "```json\n{\"summary\":{\"totalDays\":7},\"itinerary\":[{\"day\":1,\"city\":\"Tokyo\"}],\"tips\":[\"Carry cash\"]}\n```"

func TestServiceImpl_GenerateItinerary(t *testing.T) {
	ai := new(MockCompletionClient)
	svc := NewServiceImpl(ai, ServiceConfig{}, discardLogger())

	ai.On("Complete", mock.Anything,
		mock.MatchedBy(func(system string) bool { return strings.HasSuffix(system, "Include ALL 7 days. Every activity MUST have transport and reservation fields.") }),
		mock.MatchedBy(func(user string) bool { return strings.Contains(user, "Create a 7-day Japan itinerary") }),
		generativeAI.Sampling{Temperature: 0.85, MaxOutputTokens: 8000},
	).Return(sampleReply, nil).Once()

	result, err := svc.GenerateItinerary(context.Background(), sampleTrip())
	require.NoError(t, err)

	assert.JSONEq(t, `{"summary":{"totalDays":7},"itinerary":[{"day":1,"city":"Tokyo"}],"tips":["Carry cash"]}`, string(result.Itinerary))

	assert.NotEqual(t, uuid.Nil, result.Interaction.ID)
	assert.Equal(t, types.ModeGenerate, result.Interaction.Mode)
	assert.Equal(t, "gemini-test", result.Interaction.ModelUsed)
	assert.Equal(t, float32(0.85), result.Interaction.Temperature)
	assert.Equal(t, len(sampleReply), result.Interaction.ResponseLength)
	assert.Positive(t, result.Interaction.PromptLength)
	ai.AssertExpectations(t)
}

func TestServiceImpl_GenerateItinerary_Adjustment(t *testing.T) {
	ai := new(MockCompletionClient)
	svc := NewServiceImpl(ai, DefaultServiceConfig(), discardLogger())

	trip := &types.TripRequest{
		ExistingItinerary: json.RawMessage(`{"itinerary":[{"day":1,"city":"Kyoto","theme":"Temples","activities":[{"name":"Kiyomizu","cost":400}]}],"weather":"rain"}`),
		AdjustmentRequest: "Less walking on day 1",
	}

	ai.On("Complete", mock.Anything,
		systemPrompt,
		mock.MatchedBy(func(user string) bool {
			return strings.Contains(user, `"theme": "Temples"`) &&
				strings.Contains(user, `"cost": 400`) &&
				strings.Contains(user, `"weather": "rain"`) &&
				strings.Contains(user, `Your friend now says: "Less walking on day 1"`)
		}),
		generativeAI.Sampling{Temperature: 0.7, MaxOutputTokens: 8000},
	).Return(`{"itinerary":[{"day":1,"city":"Kyoto","theme":"Gentle temples"}]}`, nil).Once()

	result, err := svc.GenerateItinerary(context.Background(), trip)
	require.NoError(t, err)
	assert.Equal(t, types.ModeAdjust, result.Interaction.Mode)
	assert.JSONEq(t, `{"itinerary":[{"day":1,"city":"Kyoto","theme":"Gentle temples"}]}`, string(result.Itinerary))
	ai.AssertExpectations(t)
}

func TestServiceImpl_GenerateItinerary_LooselyTypedReply(t *testing.T) {
	ai := new(MockCompletionClient)
	svc := NewServiceImpl(ai, DefaultServiceConfig(), discardLogger())

	reply := `{"itinerary":[{"day":"Day 1","activities":[{"name":"Senso-ji","cost":0}]}],"budgetEstimate":"¥120,000"}`
	ai.On("Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(reply, nil).Once()

	result, err := svc.GenerateItinerary(context.Background(), sampleTrip())
	require.NoError(t, err)
	assert.JSONEq(t, reply, string(result.Itinerary))
	ai.AssertExpectations(t)
}

// An adjustment request without an itinerary is a plain generation request.
func TestServiceImpl_GenerateItinerary_AdjustmentNeedsBothFields(t *testing.T) {
	ai := new(MockCompletionClient)
	svc := NewServiceImpl(ai, DefaultServiceConfig(), discardLogger())

	_, err := svc.GenerateItinerary(context.Background(), &types.TripRequest{AdjustmentRequest: "More ramen"})
	assert.ErrorIs(t, err, ErrInvalidTrip)
	ai.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestServiceImpl_GenerateItinerary_InvalidTrip(t *testing.T) {
	tests := []struct {
		name string
		trip *types.TripRequest
	}{
		{"missing dates", &types.TripRequest{}},
		{"end before start", &types.TripRequest{StartDate: "2025-04-07", EndDate: "2025-04-01"}},
		{"bad date format", &types.TripRequest{StartDate: "April 1st", EndDate: "2025-04-07"}},
		{"notes too long", &types.TripRequest{StartDate: "2025-04-01", EndDate: "2025-04-07", AdditionalNotes: strings.Repeat("a", 4001)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ai := new(MockCompletionClient)
			svc := NewServiceImpl(ai, DefaultServiceConfig(), discardLogger())

			_, err := svc.GenerateItinerary(context.Background(), tt.trip)
			assert.ErrorIs(t, err, ErrInvalidTrip)
			ai.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestServiceImpl_GenerateItinerary_UpstreamError(t *testing.T) {
	ai := new(MockCompletionClient)
	svc := NewServiceImpl(ai, DefaultServiceConfig(), discardLogger())

	upstream := &generativeAI.UpstreamError{Model: "gemini-test", Err: errors.New("quota exhausted")}
	ai.On("Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", upstream).Once()

	_, err := svc.GenerateItinerary(context.Background(), sampleTrip())
	assert.ErrorIs(t, err, generativeAI.ErrUpstream)
	ai.AssertNumberOfCalls(t, "Complete", 1)
}

func TestServiceImpl_GenerateItinerary_MalformedReply(t *testing.T) {
	ai := new(MockCompletionClient)
	svc := NewServiceImpl(ai, DefaultServiceConfig(), discardLogger())

	ai.On("Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("Sorry, I can't help with that.", nil).Once()

	_, err := svc.GenerateItinerary(context.Background(), sampleTrip())
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestServiceImpl_CustomTemperatures(t *testing.T) {
	ai := new(MockCompletionClient)
	svc := NewServiceImpl(ai, ServiceConfig{GenerateTemperature: 0.5, AdjustTemperature: 0.2, MaxOutputTokens: 4000}, discardLogger())

	ai.On("Complete", mock.Anything, mock.Anything, mock.Anything, generativeAI.Sampling{Temperature: 0.5, MaxOutputTokens: 4000}).
		Return("{}", nil).Once()

	_, err := svc.GenerateItinerary(context.Background(), sampleTrip())
	require.NoError(t, err)
	ai.AssertExpectations(t)
}
