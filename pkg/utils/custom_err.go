package utils

import "errors"

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrClueNotFound      = errors.New("clue not found")
	ErrMissingClueValue  = errors.New("no clue available")
	ErrCategoryNameTaken = errors.New("category name already exists")
	ErrClueValueTaken    = errors.New("category already has a clue with this value")
	ErrCategoryHasClues  = errors.New("category still has clues")

	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrUnauthorized       = errors.New("could not validate credentials")
	ErrForbidden          = errors.New("not enough permissions")

	ErrDatabaseError = errors.New("database error")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrClueNotFound) ||
		errors.Is(err, ErrMissingClueValue)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrCategoryNameTaken) ||
		errors.Is(err, ErrClueValueTaken) ||
		errors.Is(err, ErrCategoryHasClues)
}
