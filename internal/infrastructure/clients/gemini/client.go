package gemini

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"google.golang.org/genai"

	"github.com/simonindia/office-assistant/pkg/config"
)

// Client implements the Gemini text model provider.
type Client struct {
	client  *genai.Client
	model   string
	metrics *modelMetrics
}

// NewClient creates a new Gemini client.
func NewClient(ctx context.Context, cfg *config.GeminiConfig) (*Client, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, err
	}

	metrics, err := newModelMetrics()
	if err != nil {
		return nil, err
	}

	return &Client{client: client, model: model, metrics: metrics}, nil
}

// GenerateText sends one prompt to the model and returns the trimmed
// response text. No retry; the caller decides how to handle failures.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		c.recordModelMetric(ctx, time.Since(start), err)
		return "", err
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		err := errors.New("gemini response missing output text")
		c.recordModelMetric(ctx, time.Since(start), err)
		return "", err
	}

	c.recordModelMetric(ctx, time.Since(start), nil)
	return text, nil
}

// modelMetrics holds the model-call instruments. They are created once
// in NewClient; the otel instruments themselves are safe for
// concurrent use.
type modelMetrics struct {
	requestCount    metric.Int64Counter
	requestDuration metric.Float64Histogram
	requestErrors   metric.Int64Counter
}

func newModelMetrics() (*modelMetrics, error) {
	meter := otel.Meter("github.com/simonindia/office-assistant/gemini")

	requestCount, err := meter.Int64Counter(
		"ai.gemini.request.count",
		metric.WithDescription("Number of Gemini requests"),
	)
	if err != nil {
		return nil, err
	}
	requestDuration, err := meter.Float64Histogram(
		"ai.gemini.request.duration",
		metric.WithDescription("Gemini request duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}
	requestErrors, err := meter.Int64Counter(
		"ai.gemini.request.errors",
		metric.WithDescription("Number of Gemini request errors"),
	)
	if err != nil {
		return nil, err
	}

	return &modelMetrics{
		requestCount:    requestCount,
		requestDuration: requestDuration,
		requestErrors:   requestErrors,
	}, nil
}

func (c *Client) recordModelMetric(ctx context.Context, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("ai.provider", "gemini"),
		attribute.String("ai.model", c.model),
	}

	c.metrics.requestCount.Add(ctx, 1, metric.WithAttributes(attrs...))
	c.metrics.requestDuration.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
	if err != nil {
		c.metrics.requestErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}
