package dto

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jhoicas/Stock-ledger-api/internal/domain"
)

var validate = validator.New()

// Validate valida las etiquetas `validate` de un DTO y traduce cualquier
// violación a domain.ErrInvalidInput (los handlers la mapean a 400).
func Validate(s any) error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return fmt.Errorf("%w: campo %s falla la regla %s", domain.ErrInvalidInput, f.Field(), f.Tag())
		}
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}
