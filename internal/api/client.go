package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"noteboard/internal/logs"
	"noteboard/internal/notes"
)

const (
	DefaultBaseURL = "http://localhost:5000"
	DefaultTimeout = 10 * time.Second
)

// Client talks to the remote note collection. It never retries.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for baseURL. A non-positive timeout uses DefaultTimeout.
func New(baseURL string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

type notePayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ListNotes fetches the whole collection.
func (c *Client) ListNotes(ctx context.Context) ([]notes.Note, error) {
	var resp []notes.Note
	if err := c.doJSON(ctx, "list notes", http.MethodGet, "/notes", nil, &resp); err != nil {
		return nil, err
	}
	if resp == nil {
		resp = []notes.Note{}
	}
	return resp, nil
}

// CreateNote posts a new note. Callers validate title and content first.
// A rejection carrying an error message comes back as a *ValidationError.
func (c *Client) CreateNote(ctx context.Context, title, content string) (notes.Note, error) {
	var created notes.Note
	err := c.doJSON(ctx, "create note", http.MethodPost, "/notes", notePayload{Title: title, Content: content}, &created)
	if err != nil {
		if te := AsTransportError(err); te != nil && te.fromBody {
			return notes.Note{}, &ValidationError{StatusCode: te.StatusCode, Message: te.Message}
		}
		return notes.Note{}, err
	}
	return created, nil
}

// UpdateNote replaces the title and content of an existing note.
func (c *Client) UpdateNote(ctx context.Context, id notes.ID, title, content string) error {
	return c.doJSON(ctx, "update note", http.MethodPut, notePath(id), notePayload{Title: title, Content: content}, nil)
}

// DeleteNote removes a note. Whether deleting a missing id fails is up to the backend.
func (c *Client) DeleteNote(ctx context.Context, id notes.ID) error {
	return c.doJSON(ctx, "delete note", http.MethodDelete, notePath(id), nil, nil)
}

func notePath(id notes.ID) string {
	return "/notes/" + url.PathEscape(id.String())
}

func (c *Client) doJSON(ctx context.Context, op, method, path string, body any, out any) error {
	requestID := uuid.NewString()
	err := c.roundTrip(ctx, op, requestID, method, path, body, out)
	if err != nil {
		logs.Logger.Printf("%s %s failed (request %s): %v", method, path, requestID, err)
	}
	return err
}

func (c *Client) roundTrip(ctx context.Context, op, requestID, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Op: op, RequestID: requestID, Err: err}
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &TransportError{Op: op, RequestID: requestID, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: op, RequestID: requestID, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(op, requestID, resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    "invalid response body",
			RequestID:  requestID,
			Err:        err,
		}
	}
	return nil
}

func decodeAPIError(op, requestID string, resp *http.Response) error {
	type errorPayload struct {
		Error string `json:"error"`
	}
	var payload errorPayload
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	if msg := strings.TrimSpace(payload.Error); msg != "" {
		return &TransportError{Op: op, StatusCode: resp.StatusCode, Message: msg, RequestID: requestID, fromBody: true}
	}
	return &TransportError{Op: op, StatusCode: resp.StatusCode, Message: resp.Status, RequestID: requestID}
}
