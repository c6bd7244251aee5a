package validate

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	inErrors "github.com/Alturino/storefront/internal/errors"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// NotBlank rejects strings made only of whitespace.
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func New() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		_ = instance.RegisterValidation("notblank", NotBlank)
	})
	return instance
}

// Struct validates s and wraps any failure in ErrInvalidRequest.
func Struct(c context.Context, s any) error {
	if err := New().StructCtx(c, s); err != nil {
		return fmt.Errorf("%w: %s", inErrors.ErrInvalidRequest, err.Error())
	}
	return nil
}
