package repositories

import (
	"errors"
	"gorm.io/gorm"
)

// translate maps constraint failures onto the given domain errors and leaves
// everything else untouched. The driver message is dropped so it never reaches clients.
func translate(err error, duplicate error, foreignKey error) error {
	switch {
	case err == nil:
		return nil
	case duplicate != nil && errors.Is(err, gorm.ErrDuplicatedKey):
		return duplicate
	case foreignKey != nil && errors.Is(err, gorm.ErrForeignKeyViolated):
		return foreignKey
	default:
		return err
	}
}
