package mkm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// interpret applies the status policy every endpoint shares. 200, 201 and
// 206 yield the body; 204 yields ErrNoResults; anything else an *APIError.
// 206 is a truncated page and is parsed exactly like 200.
func interpret(status int, reason string, body []byte) ([]byte, error) {
	switch status {
	case http.StatusOK, http.StatusCreated, http.StatusPartialContent:
		return body, nil
	case http.StatusNoContent:
		return nil, ErrNoResults
	default:
		return nil, &APIError{StatusCode: status, Reason: reason}
	}
}

// reasonPhrase extracts the reason phrase from resp.Status ("401 Unauthorized").
func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(
		strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)),
	)
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}

// decodeField unmarshals the named top-level field of a JSON object into dst.
func decodeField(body []byte, field string, dst any) error {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}

	raw, ok := envelope[field]
	if !ok {
		return fmt.Errorf("response has no %q field", field)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("parsing %q field: %w", field, err)
	}
	return nil
}

// decodeInto unmarshals the whole body into dst.
func decodeInto(body []byte, dst any) error {
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	return nil
}

// decodeRaw validates body as JSON and returns it untouched.
func decodeRaw(body []byte) (json.RawMessage, error) {
	if !json.Valid(body) {
		return nil, errors.New("parsing response: invalid JSON")
	}
	return json.RawMessage(body), nil
}
