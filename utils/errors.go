package utils

// CustomError is an error carrying the HTTP status it should surface as.
type CustomError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (e *CustomError) Error() string {
	return e.Message
}

// NewCustomError builds a CustomError with a specific status code
func NewCustomError(statusCode int, message string) *CustomError {
	return &CustomError{StatusCode: statusCode, Message: message}
}
