package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/neo-f/go-blog/internal/apperr"
)

// WriteJSON encodes data and writes it with the given status. If data cannot
// be encoded nothing of it is sent: the response becomes the rendered
// internal error and the encoding error is returned.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	body, err := json.Marshal(data)
	if err != nil {
		err = fmt.Errorf("error encoding response: %w", err)
		apperr.Write(w, err)
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(body)
	return err
}

// WriteText writes s as a text/plain body with the given status.
func WriteText(w http.ResponseWriter, status int, s string) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, err := w.Write([]byte(s))
	return err
}
