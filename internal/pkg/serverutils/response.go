package serverutils

type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type BaseErrorResponse struct {
	Status  string        `json:"status"`
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Errors  []ErrorDetail `json:"errors,omitempty"`
}

func ErrorResponse(code int, message string) BaseErrorResponse {
	return BaseErrorResponse{
		Status:  "error",
		Code:    code,
		Message: message,
	}
}

func ValidationErrorResponse(code int, details []ErrorDetail) BaseErrorResponse {
	return BaseErrorResponse{
		Status:  "error",
		Code:    code,
		Message: "validation failed",
		Errors:  details,
	}
}
