package httpx

import (
	"net/http"

	"github.com/go-chi/render"
)

type APIError struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, code, msg string, details any) {
	WriteJSON(w, r, status, APIError{
		Error:   msg,
		Code:    code,
		Details: details,
	})
}

// Redirect is the details payload telling the client which page to send the user to.
func Redirect(to string) map[string]string {
	return map[string]string{"redirect": to}
}

// DecodeJSON reads the request body into v.
func DecodeJSON(r *http.Request, v any) error {
	return render.DecodeJSON(r.Body, v)
}
