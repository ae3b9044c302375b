// Package apperrors defines the error taxonomy shared by rules,
// repositories and controllers, and how each kind surfaces over HTTP.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindValidation   Kind = "validation"
	KindBusinessRule Kind = "business_rule"
	KindNotFound     Kind = "not_found"
	KindUnexpected   Kind = "unexpected"
)

// Code is a machine-readable reason attached to every error.
type Code string

const (
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeNotFound     Code = "NOT_FOUND"
	CodeUnexpected   Code = "UNEXPECTED"

	CodeSSNTaken             Code = "SSN_TAKEN"
	CodeMedicareTaken        Code = "MEDICARE_CARD_TAKEN"
	CodeDuplicateIdentity    Code = "DUPLICATE_IDENTITY"
	CodeMemberTooYoung       Code = "MEMBER_TOO_YOUNG"
	CodeGenderMismatch       Code = "GENDER_MISMATCH"
	CodeScheduleConflict     Code = "SCHEDULE_CONFLICT"
	CodeGameSameTeam         Code = "GAME_SAME_TEAM"
	CodeInstallmentLimit     Code = "INSTALLMENT_LIMIT_EXCEEDED"
	CodeAlreadyOnTeam        Code = "ALREADY_ON_TEAM"
	CodeStillReferenced      Code = "STILL_REFERENCED"
	CodeDuplicateAssociation Code = "DUPLICATE_ASSOCIATION"
)

type Error struct {
	Kind    Kind
	Code    Code
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation, KindBusinessRule:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func Validation(message string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Code: CodeInvalidInput, Message: message, Fields: fields}
}

func BusinessRule(code Code, message string) *Error {
	return &Error{Kind: KindBusinessRule, Code: code, Message: message}
}

func NotFound(entity string, id any) *Error {
	return &Error{
		Kind:    KindNotFound,
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s %v not found", entity, id),
	}
}

func Unexpected(err error) *Error {
	return &Error{Kind: KindUnexpected, Code: CodeUnexpected, Message: "unexpected error", Err: err}
}

// From returns the first *Error in err's chain, or an unexpected error
// wrapping err when there is none.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Unexpected(err)
}

func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

func HasCode(err error, code Code) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Code == code
}
