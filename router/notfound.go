package router

import "net/http"

// An ErrorBody is the JSON body of an error response.
type ErrorBody struct {
	Error string `json:"error"`
}

// A NotFoundResponse is the response data an HTTP collaborator renders
// when dispatch matches no route and no custom not-found handler exists.
// The router only produces it; writing status, headers and body
// belongs to the transport layer.
type NotFoundResponse struct {
	Code        int
	ContentType string
	Body        ErrorBody
}

// DefaultNotFound is the not-found outcome absent a custom handler:
// a 404 with a JSON error body.
func DefaultNotFound() NotFoundResponse {
	return NotFoundResponse{
		Code:        http.StatusNotFound,
		ContentType: "application/json",
		Body:        ErrorBody{Error: "Route not found"},
	}
}
