package validation

import (
	"github.com/deppfellow/classifieds/internal/errs"
	"github.com/deppfellow/classifieds/internal/model"
	"github.com/pkg/errors"
)

// FromRuleError converts a *model.RuleError into a 400 whose message names
// the failed rule and whose field errors list each missing field. Other
// errors are returned unchanged.
func FromRuleError(err error) error {
	var ruleErr *model.RuleError
	if !errors.As(err, &ruleErr) {
		return err
	}

	var fieldErrors []errs.FieldError
	for _, field := range ruleErr.Missing {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: "is required",
		})
	}

	return errs.NewBadRequestError(ruleErr.Message, true, nil, fieldErrors, nil)
}
