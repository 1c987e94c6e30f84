// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the given ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailOrCPFTaken is returned when the email or CPF belongs to another user.
	ErrEmailOrCPFTaken = errors.New("email or CPF already registered")

	// ErrEmptyPatch is returned when an update request carries no fields.
	ErrEmptyPatch = errors.New("no fields to update")
)
