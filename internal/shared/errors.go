package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Store errors
	ErrStoreOpen       = fmt.Errorf("failed to open recording store")
	ErrMigrationFailed = fmt.Errorf("schema migration failed")

	// Repository errors
	ErrRecordingNotFound = fmt.Errorf("no such recording")
	ErrEmptyUpdate       = fmt.Errorf("update sets no fields")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
