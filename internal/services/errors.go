package services

import (
	"fmt"
	"trivia/pkg/utils"
)

// storeError passes domain errors through and marks anything else as a database failure.
func storeError(err error) error {
	if err == nil || utils.IsNotFound(err) || utils.IsConflict(err) {
		return err
	}
	return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
}
