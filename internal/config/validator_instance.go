package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/toppings/internal/catalog"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	optionNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 _-]*$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("option_name", func(fl validator.FieldLevel) bool {
			return optionNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("variant", func(fl validator.FieldLevel) bool {
			_, err := catalog.Lookup(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}
