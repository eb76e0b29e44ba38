package errors

import (
	"errors"
	"fmt"

	"branches-api/pkg/types"
)

var (
	ErrBranchNotFound  = errors.New("branch not found")
	ErrHolidayNotFound = errors.New("holiday not found")
	ErrValidation      = errors.New("validation error")
	ErrUnknownStorage  = errors.New("unknown storage driver")
)

// DomainError - ошибка бизнес-уровня с сообщением для клиента.
// Kind - одна из sentinel-ошибок выше, по ней errors.Is выбирает HTTP-статус.
type DomainError struct {
	Kind    error
	Message string
}

func (e *DomainError) Error() string { return e.Message }

func (e *DomainError) Unwrap() error { return e.Kind }

func NewBranchNotFoundError(id string) error {
	return &DomainError{Kind: ErrBranchNotFound, Message: "Branch not found with ID: " + id}
}

// NewHolidayListEmptyError - у филиала нет ни одного праздника.
func NewHolidayListEmptyError(id string) error {
	return &DomainError{Kind: ErrHolidayNotFound, Message: "No holidays found for branch ID: " + id}
}

func NewHolidayNotFoundError(date types.Date) error {
	return &DomainError{Kind: ErrHolidayNotFound, Message: "Holiday not found on date: " + date.String()}
}

func NewValidationError(format string, args ...interface{}) error {
	return &DomainError{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

// HttpError - ошибка, уже готовая к отдаче клиенту.
type HttpError struct {
	Code    int
	Title   string
	Message string
	Err     error
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %s: %v", e.Code, e.Title, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s: %s", e.Code, e.Title, e.Message)
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, title, message string, err error) *HttpError {
	return &HttpError{Code: code, Title: title, Message: message, Err: err}
}
