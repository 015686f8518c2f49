package api

import (
	"encoding/json"
	"net/http"

	"github.com/bytestashy/bytestashy/internal/common"
)

// classify maps an HTTP status and response body onto either the raw JSON
// payload or one of the shared error types. Every snippet endpoint delegates
// its terminal response handling here, so all six operations fail the same
// way. The routine is pure: same inputs, same outputs.
func classify(status int, body []byte) (json.RawMessage, error) {
	switch status {
	case http.StatusOK, http.StatusCreated:
		if !json.Valid(body) {
			return nil, &common.ProtocolError{}
		}
		return json.RawMessage(body), nil
	case http.StatusUnauthorized:
		return nil, &common.AuthError{Message: "api key invalid or expired, run 'bytestashy login <url>' to re-authenticate"}
	case http.StatusNotFound:
		return nil, common.ErrNotFound
	case http.StatusBadRequest:
		return nil, &common.ValidationError{Body: string(body)}
	default:
		return nil, &common.APIError{Status: status, Body: string(body)}
	}
}

// decodePayload unmarshals a classified payload into v, mapping decode
// failures to ProtocolError so endpoints never leak encoding/json errors.
func decodePayload(raw json.RawMessage, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return &common.ProtocolError{Err: err}
	}
	return nil
}
