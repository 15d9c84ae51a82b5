package models

// ErrorKind classifies request failures into the two cases the API
// distinguishes: bad input from the caller and a failed provider call.
type ErrorKind int

const (
	ErrKindValidation ErrorKind = iota
	ErrKindUpstream
)

type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func ValidationError(message string) *AppError {
	return &AppError{Kind: ErrKindValidation, Message: message}
}

func UpstreamError(message string) *AppError {
	return &AppError{Kind: ErrKindUpstream, Message: message}
}
