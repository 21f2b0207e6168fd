// Package apperr defines the error kinds shared by the stores and the HTTP layer.
package apperr

type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
)

// Error is a sentinel carrying a stable snake_case code, e.g. "invalid_lines".
type Error struct {
	Code string
	Kind Kind
}

func (e *Error) Error() string { return e.Code }

func (e *Error) Validation() bool { return e.Kind == KindValidation }

func (e *Error) NotFound() bool { return e.Kind == KindNotFound }

func Validation(code string) *Error {
	return &Error{Code: code, Kind: KindValidation}
}

func NotFound(code string) *Error {
	return &Error{Code: code, Kind: KindNotFound}
}
