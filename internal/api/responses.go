package api

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// FieldError reports a single failed check on a request field. Booking and
// content forms surface these inline rather than as a flat error string.
type FieldError struct {
	Field   string `json:"field" example:"phone"`
	Message string `json:"message" example:"enter a valid phone number"`
}

type ValidationErrorResponse struct {
	Error  string       `json:"error" example:"validation failed"`
	Fields []FieldError `json:"fields"`
}
