// Package repository holds the gorm-backed stores of the API.
package repository

import (
	"errors"
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")

	// ErrSessionEnded is returned when ending a session twice.
	ErrSessionEnded = errors.New("study session already ended")

	ErrDuplicate = errors.New("record already exists")

	ErrCardNotFound = errors.New("card not found")
)

// translate maps gorm errors onto the package errors.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}

func newID() (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}
	return id, nil
}
