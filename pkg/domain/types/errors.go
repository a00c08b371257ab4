package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrTagNotFound marks a hosting API call that failed because the resource does not exist
	ErrTagNotFound = goerr.NewTag("not_found")

	// ErrTagConflict marks a ref or tag creation rejected because it already exists
	ErrTagConflict = goerr.NewTag("conflict")

	// ErrTagInvalidEvent marks an inbound event missing a required field
	ErrTagInvalidEvent = goerr.NewTag("invalid_event")
)
