package model

// ErrorResponse is the standard error body returned by the API
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// NewErrorResponse builds an error body with an optional detail string
func NewErrorResponse(message, detail string) ErrorResponse {
	return ErrorResponse{Error: message, Detail: detail}
}
