package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// APIError represents a FAILED status reported by the Codeforces API.
type APIError struct {
	Comment string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("codeforces api error: %s", e.Comment)
}

// MalformedResponseError represents a response body that is not the
// expected JSON envelope.
type MalformedResponseError struct {
	Reason string
	Body   []byte
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed codeforces response: %s", e.Reason)
}

// envelope is the top-level shape of every Codeforces API response.
type envelope struct {
	Status  *string         `json:"status"`
	Comment string          `json:"comment"`
	Result  json.RawMessage `json:"result"`
}

// get performs one GET against the named API method and decodes the
// result array into result. The query must already carry the apiSig
// parameter; get does no signing of its own.
//
// URL construction goes through url.Values so no stray whitespace can
// leak into the request line.
func (c *Client) get(ctx context.Context, method string, query url.Values) (json.RawMessage, error) {
	fullURL := c.baseURL + "/" + method + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &MalformedResponseError{Reason: err.Error(), Body: body}
	}
	if env.Status == nil {
		return nil, &MalformedResponseError{Reason: "missing status field", Body: body}
	}

	switch *env.Status {
	case "OK":
		return env.Result, nil
	case "FAILED":
		return nil, &APIError{Comment: env.Comment}
	default:
		return nil, &MalformedResponseError{
			Reason: fmt.Sprintf("unexpected status %q", *env.Status),
			Body:   body,
		}
	}
}
