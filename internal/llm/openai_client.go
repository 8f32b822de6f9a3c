package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Hariom009/WellPlate-sub000/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a non-medical wellness assistant.

You receive today's composite stress score for a single user: a total in [0,100]
(higher = more stress), its severity level, and four factor scores (exercise,
sleep, diet, device usage), each in [0,25]. A factor score of exactly 12.5 is a
neutral placeholder meaning no data was available for that factor today. The
"top_stressors" list names the two factors contributing the most stress.

Your goals:
- Describe today's wellness picture in clear, neutral language.
- Explain which factors are driving the score and which are neutral placeholders.
- Give practical, behavioral suggestions targeted at the top stressors.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, or treatment.
- Focus only on behavior and routines (movement, bedtime habits, meal balance, screen breaks).
- If most factors are neutral placeholders, say that the picture is incomplete.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing today's stress level and its main drivers.",
  "observations": [
    "3-6 bullet points about the factor breakdown.",
    "At least one item about the largest stress contributor.",
    "If any factor has no data, one item noting what is missing."
  ],
  "guidance": [
    "3-5 concrete, non-medical suggestions tailored to these numbers.",
    "At least one suggestion aimed at the top stressor."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this user's wellness score for today.

- "total" is the composite stress score in [0,100]; "level" is its severity band.
- "factors" lists all four factor scores in [0,25]; 12.5 means no data for that factor.
- "top_stressors" holds the two highest-scoring (most stressful) factors, highest first.

JSON:

%s

Based on this data, respond in the required JSON format.`

// WellnessInsightsLLM is the interface for generating wellness insights using an LLM.
type WellnessInsightsLLM interface {
	// GenerateInsights takes a context object and returns LLM-generated insights.
	GenerateInsights(ctx context.Context, insightsCtx *domain.WellnessInsightsContext) (*domain.WellnessInsightsOutput, error)
}

// OpenAIClient implements WellnessInsightsLLM using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client for generating insights.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

// GenerateInsights calls OpenAI to generate wellness insights.
func (c *OpenAIClient) GenerateInsights(ctx context.Context, insightsCtx *domain.WellnessInsightsContext) (*domain.WellnessInsightsOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	// Serialize context to JSON
	contextJSON, err := json.MarshalIndent(insightsCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	// Call OpenAI
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	// Parse the JSON response
	var output domain.WellnessInsightsOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &output, nil
}
