package usecase

import (
	"fmt"

	"member-admin/internal/member"
	"member-admin/internal/model"
	pkgErrors "member-admin/pkg/errors"

	"github.com/go-playground/validator/v10"
)

const errCodeInvalidValue = 140004

var fieldRules = map[string]string{
	model.FieldName:  "required",
	model.FieldEmail: "required,email",
	model.FieldRole:  "required",
}

// validateField applies the strict edit policy. The error wraps member.ErrInvalidValue and a
// pkgErrors.ValidationError carrying the failed rules.
func (uc *implUseCase) validateField(field, value string) error {
	rule, ok := fieldRules[field]
	if !ok {
		return member.ErrInvalidField
	}

	err := uc.validate.Var(value, rule)
	if err == nil {
		return nil
	}

	var msgs []string
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			msgs = append(msgs, ruleMessage(fe.Tag()))
		}
	} else {
		msgs = append(msgs, err.Error())
	}

	return fmt.Errorf("%w: %w", member.ErrInvalidValue, pkgErrors.NewValidationError(errCodeInvalidValue, field, msgs...))
}

func ruleMessage(tag string) string {
	switch tag {
	case "required":
		return "must not be empty"
	case "email":
		return "must be a valid email address"
	}
	return "failed " + tag
}
