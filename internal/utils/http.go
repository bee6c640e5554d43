package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrEmptyBody is returned by ReadJSON when the request carries no body.
var ErrEmptyBody = errors.New("empty request body")

// WriteJSON serializes data to JSON, sets the "Content-Type" header and
// writes statusCode followed by the body.
//
// If marshaling fails, it responds with 500 Internal Server Error and returns
// a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, views, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// ReadJSON decodes a single JSON value from body into v.
// An empty body yields ErrEmptyBody, trailing data after the value is an error.
func ReadJSON(body io.Reader, v any) error {
	if body == nil {
		return ErrEmptyBody
	}

	decoder := json.NewDecoder(body)
	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("error decoding JSON: %w", err)
	}

	if decoder.More() {
		return errors.New("error decoding JSON: unexpected data after top-level value")
	}

	return nil
}
