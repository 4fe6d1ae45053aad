// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for HTTP response writing and HTTP client
// initialization.
package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data and writes it with the given status code,
// setting the Content-Type header. Every JSON endpoint of the engine
// responds through this helper so serialization failures are handled
// in one place: a failed marshal answers 500 and returns a wrapped
// error, with nothing of the payload written.
//
// Returns the number of body bytes written.
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
