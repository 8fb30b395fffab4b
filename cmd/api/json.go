package main

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New(validator.WithRequiredStructEnabled())
}

func writeJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// it parses body into Go struct.
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1_048_578 //1mb
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(data)
}

func writeJSONError(w http.ResponseWriter, status int, message string) error {
	type envelope struct {
		ErrorMessage string `json:"errorMessage"`
	}

	return writeJSON(w, status, &envelope{ErrorMessage: message})
}

// linkedResponse wraps a single read representation with its self link.
func (app *application) linkedResponse(w http.ResponseWriter, status int, data any, self string) error {
	type envelope struct {
		Data  any               `json:"data"`
		Links map[string]string `json:"links"`
	}
	return writeJSON(w, status, &envelope{
		Data:  data,
		Links: map[string]string{"self": self},
	})
}
