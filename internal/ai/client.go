package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"nextstep-career-api/internal/telemetry"

	genai "github.com/google/generative-ai-go/genai"
)

// Gateway failure taxonomy. Every completion error wraps exactly one of
// these; nothing is retried, a failed call fails the enclosing request.
var (
	// ErrAuth means the configured credential was rejected by the provider.
	// Not recoverable by retrying the same request.
	ErrAuth = errors.New("ai: credential rejected")
	// ErrTimeout means no response arrived within the configured deadline.
	ErrTimeout = errors.New("ai: request timed out")
	// ErrProvider covers any other non-success or malformed provider response.
	ErrProvider = errors.New("ai: provider failure")
)

// Completer is the boundary the request handlers depend on, so tests can
// substitute a canned gateway.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// GeminiClient is the outbound gateway to the Gemini API.
type GeminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	metrics *telemetry.Metrics
}

func NewGeminiClient(ctx context.Context, apiKey, model string, timeout time.Duration, metrics *telemetry.Metrics) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &GeminiClient{
		client:  client,
		model:   model,
		timeout: timeout,
		metrics: metrics,
	}, nil
}

// Complete sends one prompt and returns the model's text. The system message
// is attached as a system instruction, the user message as the single content
// part.
func (gc *GeminiClient) Complete(ctx context.Context, system, user string) (string, error) {
	tracer := otel.Tracer("gemini-client")
	ctx, span := tracer.Start(ctx, "gemini.complete")
	defer span.End()

	span.SetAttributes(
		attribute.String("gemini.model", gc.model),
		attribute.Int("gemini.prompt_chars", len(system)+len(user)),
	)

	ctx, cancel := context.WithTimeout(ctx, gc.timeout)
	defer cancel()

	model := gc.client.GenerativeModel(gc.model)
	model.SetTemperature(0.7)
	model.SetMaxOutputTokens(2048)
	if system != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(user))
	if err != nil {
		classified := classifyError(err)
		span.SetAttributes(
			attribute.Bool("gemini.error", true),
			attribute.String("gemini.error_message", err.Error()),
		)
		gc.metrics.RecordAICall(ctx, gc.model, 0, true)
		return "", classified
	}

	text := responseText(resp)
	if text == "" {
		span.SetAttributes(attribute.Bool("gemini.error", true))
		gc.metrics.RecordAICall(ctx, gc.model, 0, true)
		return "", fmt.Errorf("%w: empty response", ErrProvider)
	}

	var tokens int64
	if resp.UsageMetadata != nil {
		tokens = int64(resp.UsageMetadata.TotalTokenCount)
		span.SetAttributes(attribute.Int("gemini.total_tokens", int(tokens)))
	}
	gc.metrics.RecordAICall(ctx, gc.model, tokens, false)

	return text, nil
}

// Close the client
func (gc *GeminiClient) Close() error {
	if gc.client != nil {
		return gc.client.Close()
	}
	return nil
}

// classifyError maps transport failures onto the gateway taxonomy.
func classifyError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code == 401 || apiErr.Code == 403 {
			return fmt.Errorf("%w: %v", ErrAuth, err)
		}
	}

	return fmt.Errorf("%w: %v", ErrProvider, err)
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	total := ""
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				total += string(text)
			}
		}
	}
	return total
}
