// Package httpjson writes the JSON envelopes returned by every HTTP handler.
package httpjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxBodyBytes caps request bodies decoded by Decode.
const maxBodyBytes = 1 << 20

// MessageResponse is the envelope used for plain status messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// DataResponse is the envelope used for payload responses.
type DataResponse struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

// Write encodes v as the response body with the given status.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Message writes {"message": msg}.
func Message(w http.ResponseWriter, status int, msg string) {
	Write(w, status, MessageResponse{Message: msg})
}

// Data writes {"message": msg, "data": data}. An empty msg is omitted.
func Data(w http.ResponseWriter, status int, msg string, data any) {
	Write(w, status, DataResponse{Message: msg, Data: data})
}

// Decode reads a JSON request body into dst.
func Decode(r *http.Request, dst any) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty request body")
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}
