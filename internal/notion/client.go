// Copyright (c) 2026 Netskope, Inc. All rights reserved.

package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the public Notion REST API endpoint.
	DefaultBaseURL = "https://api.notion.com/v1"
	// APIVersion is sent on every request via the Notion-Version header.
	APIVersion = "2025-09-03"

	requestTimeout = 30 * time.Second
	searchPageSize = 10
)

// APIError carries the HTTP status and raw response body of a failed call so
// callers can surface actionable diagnostics.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Notion API error %d: %s", e.StatusCode, e.Body)
}

// DataSourceNotFoundError indicates no data source with an exactly matching
// title was found.
type DataSourceNotFoundError struct {
	Name string
}

func (e *DataSourceNotFoundError) Error() string {
	return fmt.Sprintf("data source not found: %s. Ensure the template is installed and shared with the integration.", e.Name)
}

// Client is a minimal authenticated Notion REST API client. It does not retry
// and does not validate payload shapes before sending; schema mismatches
// surface as APIErrors from the service.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client for the public Notion API.
func NewClient(token string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: DefaultBaseURL,
		token:   token,
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		logger: logger,
	}
}

// SetBaseURL overrides the API base URL (proxies, tests).
func (c *Client) SetBaseURL(url string) {
	c.baseURL = strings.TrimRight(url, "/")
}

// Request performs one authenticated JSON call and decodes the response body
// into out (when out is non-nil). A non-2xx response yields an APIError with
// the status code and raw body.
func (c *Client) Request(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", APIVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode response from %s: %w", path, err)
		}
	}

	return nil
}

type richText struct {
	PlainText string `json:"plain_text"`
}

type searchResult struct {
	ID    string     `json:"id"`
	Title []richText `json:"title"`
}

type searchResponse struct {
	Results    []searchResult `json:"results"`
	HasMore    bool           `json:"has_more"`
	NextCursor string         `json:"next_cursor"`
}

// FindDataSourceID resolves a data source ID by exact title match. The search
// query is only a hint; candidates are compared against name by concatenating
// their title runs, case-sensitive, full match. Pagination cursors are
// followed until the result set is exhausted.
func (c *Client) FindDataSourceID(ctx context.Context, name string) (string, error) {
	cursor := ""
	for {
		payload := map[string]any{
			"filter":    map[string]any{"property": "object", "value": "data_source"},
			"query":     name,
			"page_size": searchPageSize,
		}
		if cursor != "" {
			payload["start_cursor"] = cursor
		}

		var resp searchResponse
		if err := c.Request(ctx, http.MethodPost, "/search", payload, &resp); err != nil {
			return "", err
		}

		for _, result := range resp.Results {
			var title strings.Builder
			for _, part := range result.Title {
				title.WriteString(part.PlainText)
			}
			if title.String() == name {
				c.logger.Debug("Resolved data source",
					zap.String("name", name),
					zap.String("data_source_id", result.ID))
				return result.ID, nil
			}
		}

		if !resp.HasMore || resp.NextCursor == "" {
			break
		}
		cursor = resp.NextCursor
	}

	return "", &DataSourceNotFoundError{Name: name}
}

// CreatePage creates one record in a data source and returns the new page ID.
func (c *Client) CreatePage(ctx context.Context, dataSourceID string, properties Properties) (string, error) {
	payload := map[string]any{
		"parent": map[string]any{
			"type":           "data_source_id",
			"data_source_id": dataSourceID,
		},
		"properties": properties,
	}

	var resp struct {
		ID string `json:"id"`
	}
	if err := c.Request(ctx, http.MethodPost, "/pages", payload, &resp); err != nil {
		return "", err
	}

	return resp.ID, nil
}
