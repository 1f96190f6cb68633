package models

import "errors"

// ValidationError means the caller supplied missing or malformed input.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// NotFoundError means a referenced record does not resolve.
type NotFoundError string

func (e NotFoundError) Error() string { return string(e) }

var ErrUserNotFound = NotFoundError("User not found")

func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}

func IsNotFound(err error) bool {
	var n NotFoundError
	return errors.As(err, &n)
}
