// Package usecase implements the business logic for the animals feature.
package usecase

import "errors"

var (
	// ErrAnimalNotFound is returned when no animal matches the given ID.
	ErrAnimalNotFound = errors.New("animal not found")

	// ErrEmptyPatch is returned when an update request carries no fields.
	ErrEmptyPatch = errors.New("no fields to update")

	// ErrInvalidPhoto is returned when a photo is not a base64 data URL.
	ErrInvalidPhoto = errors.New("photo must be a data:image/ base64 URL")
)
