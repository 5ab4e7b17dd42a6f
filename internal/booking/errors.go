package booking

import "errors"

var (
	// ErrNotFound is returned when no booking page exists for a slug.
	ErrNotFound = errors.New("booking page not found")

	// ErrSlugTaken is returned by an insert that lost the allocation race:
	// another request claimed the same slug between probing and writing.
	ErrSlugTaken = errors.New("slug already taken")

	// ErrMissingFields is returned when a submission lacks a required field.
	ErrMissingFields = errors.New("missing required fields")
)
