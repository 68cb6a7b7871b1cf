package engine

import "errors"

var (
	// ErrBackup indicates the backup for an apply could not be taken.
	// Fatal to the whole apply: proceeding without the promised backup
	// would break the reversibility guarantee.
	ErrBackup = errors.New("backup failed")

	// ErrValidation indicates a malformed request.
	ErrValidation = errors.New("validation failed")
)
