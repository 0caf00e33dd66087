package usecases

import (
	"encoding/json"
	"slices"
	"sort"

	"tradedesk.backend/internal/domain/entities"
	domainerrors "tradedesk.backend/internal/domain/errors"
	"tradedesk.backend/pkg/validation"
)

var forms = map[string]func() any{
	"register":                func() any { return &entities.RegisterInput{} },
	"login":                   func() any { return &entities.LoginInput{} },
	"password-reset":          func() any { return &entities.ResetStartInput{} },
	"password-reset-verify":   func() any { return &entities.ResetVerifyInput{} },
	"password-reset-complete": func() any { return &entities.ResetCompleteInput{} },
	"subscriber":              func() any { return &entities.SubscriberInput{} },
	"payment":                 func() any { return &entities.PaymentInput{} },
	"referral":                func() any { return &entities.ReferralInput{} },
	"indicator":               func() any { return &entities.IndicatorInput{} },
	"preferences":             func() any { return &entities.PreferenceInput{} },
}

// FormNames lists the forms that can be validated
func FormNames() []string {
	out := make([]string, 0, len(forms))
	for name := range forms {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// FormValidation is the outcome of checking a form or one of its fields
type FormValidation struct {
	Form   string                 `json:"form"`
	Field  string                 `json:"field,omitempty"`
	Valid  bool                   `json:"valid"`
	Errors validation.FieldErrors `json:"errors"`
}

// ValidateForm decodes values into the named form and checks it. With field set only
// that field's result is reported, which backs validate-on-change.
func ValidateForm(form, field string, values json.RawMessage) (*FormValidation, error) {
	newInput, ok := forms[form]
	if !ok {
		return nil, domainerrors.NotFound("Unknown form: " + form)
	}
	input := newInput()
	if len(values) > 0 {
		if err := json.Unmarshal(values, input); err != nil {
			return nil, domainerrors.BadRequest("Form values are malformed: " + err.Error())
		}
	}

	result := &FormValidation{Form: form, Field: field, Errors: validation.FieldErrors{}}
	if field == "" {
		if errs := validation.Validate(input); errs != nil {
			result.Errors = errs
		}
		result.Valid = len(result.Errors) == 0
		return result, nil
	}

	if !slices.Contains(validation.Fields(input), field) {
		return nil, domainerrors.BadRequest("Unknown field: " + field)
	}
	if msg := validation.ValidateField(input, field); msg != "" {
		result.Errors[field] = msg
	}
	result.Valid = len(result.Errors) == 0
	return result, nil
}
