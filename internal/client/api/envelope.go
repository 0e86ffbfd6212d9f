package api

import (
	"encoding/json"
	"fmt"
)

// Unwrap decodes resp.Body.data[key] into T. It is the only place that
// knows the backend's success envelope.
func Unwrap[T any](resp *Response, key string) (T, error) {
	var (
		out  T
		body struct {
			Data map[string]json.RawMessage `json:"data"`
		}
	)
	if resp == nil {
		return out, fmt.Errorf("%w: empty response", ErrEnvelope)
	}
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return out, fmt.Errorf("%w: %v", ErrEnvelope, err)
	}
	raw, ok := body.Data[key]
	if !ok {
		return out, fmt.Errorf("%w: missing data.%s", ErrEnvelope, key)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%w: data.%s: %v", ErrEnvelope, key, err)
	}
	return out, nil
}

// TopLevel decodes a field that sits next to the envelope, such as the
// login token.
func TopLevel[T any](resp *Response, key string) (T, error) {
	var out T
	if resp == nil {
		return out, fmt.Errorf("%w: empty response", ErrEnvelope)
	}
	var body map[string]json.RawMessage
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return out, fmt.Errorf("%w: %v", ErrEnvelope, err)
	}
	raw, ok := body[key]
	if !ok {
		return out, fmt.Errorf("%w: missing %s", ErrEnvelope, key)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%w: %s: %v", ErrEnvelope, key, err)
	}
	return out, nil
}
