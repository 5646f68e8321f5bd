package catalog

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	nameRule    = "notblank"
	authorsRule = "required,min=1"
)

// RuleValidator checks books with go-playground validator rules.
type RuleValidator struct {
	validate *validator.Validate
}

func NewValidator() *RuleValidator {
	v := validator.New()
	mustRegister(v, "notblank", validateNotBlank)
	return &RuleValidator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// IsValidName reports whether name has at least one non-whitespace character.
func (v *RuleValidator) IsValidName(name string) bool {
	return v.validate.Var(name, nameRule) == nil
}

// IsValidAuthors reports whether authors is non-nil and non-empty.
// Individual author strings are not inspected.
func (v *RuleValidator) IsValidAuthors(authors []string) bool {
	return v.validate.Var(authors, authorsRule) == nil
}
