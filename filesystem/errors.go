package filesystem

import "errors"

var (
	ErrInvalidName   = errors.New("invalid name")
	ErrDuplicateName = errors.New("name already exists")
	ErrNotFound      = errors.New("not found")
	ErrNotFolder     = errors.New("not a folder")
	ErrAlreadyAtRoot = errors.New("already at root")
	ErrRootProtected = errors.New("root cannot be deleted")

	// ErrDeclined is returned when deleting a non-empty folder was not
	// confirmed. It is a cancellation: nothing was changed.
	ErrDeclined = errors.New("deletion declined")
)
