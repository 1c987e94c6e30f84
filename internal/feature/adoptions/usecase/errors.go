// Package usecase implements the rescue/adoption lifecycle business logic.
package usecase

import "errors"

var (
	// ErrRecordNotFound is returned when no adoption record matches the ID.
	ErrRecordNotFound = errors.New("adoption record not found")

	// ErrAnimalNotFound is returned when the referenced animal does not exist.
	ErrAnimalNotFound = errors.New("animal not found")

	// ErrAlreadyAdopted is returned when the record's adoption date is
	// already set. A concluded record must not be adopted again.
	ErrAlreadyAdopted = errors.New("animal already adopted")
)
