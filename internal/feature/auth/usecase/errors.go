// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailOrCPFTaken is returned when the email or CPF is already registered.
	ErrEmailOrCPFTaken = errors.New("email or CPF already registered")

	// ErrWrongPassword is returned when the password does not match the stored digest.
	ErrWrongPassword = errors.New("wrong password")
)
