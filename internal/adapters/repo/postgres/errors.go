package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/floramart/flowerex/internal/domain"
)

// wrapErr maps gorm's translated errors onto the domain taxonomy.
// Requires TranslateError on the gorm config.
func wrapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return &domain.ConstraintError{Err: err}
	}
	return err
}
