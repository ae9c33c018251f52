package surfapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// APIError is a failure reported by the server through a {"detail": ...} body
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return e.Detail
}

// decodeAPIError reads the detail of a non-ok response. A body that is not
// JSON is an error of its own, not an APIError.
func decodeAPIError(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return fmt.Errorf("reading error response (status %d): %w", resp.StatusCode, err)
	}

	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("API returned status %d with unreadable body %q: %w", resp.StatusCode, truncate(body, 200), err)
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Detail:     detailText(payload.Detail, resp.StatusCode),
	}
}

// detailText turns the detail value into display text. FastAPI sends a string
// for HTTPException and a list of objects for validation failures.
func detailText(raw json.RawMessage, status int) string {
	if len(raw) == 0 || string(raw) == "null" {
		return fmt.Sprintf("%d %s", status, http.StatusText(status))
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return string(raw)
	}
	return compact.String()
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
