package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/simonindia/office-assistant/internal/domain/providers"
	apperrors "github.com/simonindia/office-assistant/pkg/errors"
)

const defaultBaseURL = "https://graph.microsoft.com/v1.0"

// Client proxies calendar and mail requests to the Microsoft Graph
// API using a caller-supplied delegated token. It implements
// providers.MailProvider.
type Client struct {
	baseURL    string
	timezone   string
	httpClient *http.Client
}

// NewClient creates a new Graph client. The timezone is sent as a
// display preference so event and mail times come back in local time.
func NewClient(timezone string) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		timezone:   timezone,
		httpClient: &http.Client{},
	}
}

// Get issues one authenticated GET against the Graph API. A missing
// token fails immediately without a network call. Non-200 responses
// map to an upstream error carrying the status code and raw body.
// Absolute URLs (nextLink pagination) pass through unchanged.
func (c *Client) Get(ctx context.Context, token, endpoint string) (json.RawMessage, error) {
	if token == "" {
		return nil, apperrors.NewUnauthorizedError("User not authenticated.")
	}

	target := endpoint
	if !strings.HasPrefix(endpoint, "http") {
		target = c.baseURL + endpoint
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build graph request", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Prefer", fmt.Sprintf("outlook.timezone=%q", c.timezone))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewExternalError("graph request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewExternalError("failed to read graph response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewUpstreamError(resp.StatusCode, string(body))
	}

	return json.RawMessage(body), nil
}

// ListEvents returns the calendar view for the window: subject,
// location, start and end for up to 50 events.
func (c *Client) ListEvents(ctx context.Context, token string, window providers.Window) (json.RawMessage, error) {
	endpoint := fmt.Sprintf(
		"/me/calendarView?startDateTime=%s&endDateTime=%s&$select=subject,location,start,end&$top=50",
		escapeQuery(window.Start.Format(time.RFC3339)),
		escapeQuery(window.End.Format(time.RFC3339)),
	)
	return c.Get(ctx, token, endpoint)
}

// ListMail returns the 10 most recent messages.
func (c *Client) ListMail(ctx context.Context, token string) (json.RawMessage, error) {
	return c.Get(ctx, token, "/me/messages?$top=10&$select=subject,from,receivedDateTime,webLink")
}

// ListMailWindow returns up to 50 messages received inside the
// window, newest first, with a short body preview.
func (c *Client) ListMailWindow(ctx context.Context, token string, window providers.Window) (json.RawMessage, error) {
	filter := fmt.Sprintf(
		"receivedDateTime ge %s and receivedDateTime le %s",
		window.Start.Format(time.RFC3339),
		window.End.Format(time.RFC3339),
	)
	endpoint := fmt.Sprintf(
		"/me/messages?$top=50&$select=id,subject,from,receivedDateTime,bodyPreview&$filter=%s&$orderby=receivedDateTime%%20desc",
		escapeQuery(filter),
	)
	return c.Get(ctx, token, endpoint)
}

// GetMessage fetches one message's full body and metadata by id.
func (c *Client) GetMessage(ctx context.Context, token, id string) (json.RawMessage, error) {
	endpoint := fmt.Sprintf(
		"/me/messages/%s?$select=subject,from,receivedDateTime,body,webLink",
		url.PathEscape(id),
	)
	return c.Get(ctx, token, endpoint)
}

// escapeQuery percent-encodes a query component, using %20 for spaces
// so OData filter expressions survive the round trip.
func escapeQuery(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
