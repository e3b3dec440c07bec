package types

// SuccessResponse is the body returned by mutation endpoints with no payload.
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body returned by the platform API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
