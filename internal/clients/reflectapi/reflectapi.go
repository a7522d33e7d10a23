package reflectapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
)

const (
	// NoteFailureCode is the code returned when creating a note failed.
	NoteFailureCode = -1

	defaultTimeout      = 30 * time.Second
	maxResponseBodySize = 1024
	userAgent           = "linear-reflect-relay/1.0"
)

// Note is the body of a Reflect create-note request.
type Note struct {
	Subject         string `json:"subject"`
	ContentMarkdown string `json:"content_markdown"`
	Pinned          bool   `json:"pinned"`
}

// Client creates notes in a single Reflect graph.
type Client struct {
	client      *http.Client
	baseURL     string
	graphID     string
	accessToken string
}

// New creates a Reflect client for the given graph. A nil httpClient gets a client with the default timeout.
func New(baseURL, graphID, accessToken string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: defaultTimeout,
		}
	}
	return &Client{
		client:      httpClient,
		baseURL:     strings.TrimRight(baseURL, "/"),
		graphID:     graphID,
		accessToken: accessToken,
	}
}

// NotesURL returns the endpoint notes are posted to.
func (c *Client) NotesURL() string {
	return c.baseURL + "/api/graphs/" + url.PathEscape(c.graphID) + "/notes"
}

// CreateNote posts a note to the configured graph. It makes exactly one attempt.
func (c *Client) CreateNote(ctx context.Context, note Note) error {
	body, err := json.Marshal(note)
	if err != nil {
		return fmt.Errorf("failed to marshal note: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.NotesURL(), bytes.NewReader(body))
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return richerrors.Error{
				Code: NoteFailureCode,
				Err:  fmt.Errorf("invalid notes URL: %w", err),
			}
		}
		return fmt.Errorf("failed to create note request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return richerrors.Error{
			Code: NoteFailureCode,
			Err:  fmt.Errorf("failed to POST note: %w", err),
		}
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
		return richerrors.Error{
			Code: NoteFailureCode,
			Err:  fmt.Errorf("notes API returned status code %d: %s", resp.StatusCode, string(respBody)),
		}
	}
	// drain so the connection can be reused
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBodySize))

	return nil
}
