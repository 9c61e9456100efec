package form

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// Letters and whitespace only. Deliberately ASCII, matching the
	// signup service's own rule.
	nameRe = regexp.MustCompile(`^[A-Za-z\s]+$`)

	// Loose "nonspace @ nonspace . nonspace" shape, not RFC 5322.
	emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

	zipRe = regexp.MustCompile(`^[0-9]{6}$`)

	nonDigitRe = regexp.MustCompile(`[^0-9]`)
)

// ValidateStep checks the fields owned by one step and returns a message
// per invalid field. It is pure: same inputs, same result, no side
// effects. The review step owns no fields of its own, so step 3 always
// validates clean. Any other step number is a programmer error.
func ValidateStep(step int, data Data) Errors {
	errs := Errors{}
	switch step {
	case StepPersonal:
		validatePersonal(data, errs)
	case StepAddress:
		validateAddress(data, errs)
	case StepReview:
		// no fields
	default:
		panic(fmt.Sprintf("form: validate unknown step %d", step))
	}
	return errs
}

// ValidateAll runs every step's validator and merges the results. Used by
// the final submit check.
func ValidateAll(data Data) Errors {
	errs := ValidateStep(StepPersonal, data)
	for field, msg := range ValidateStep(StepAddress, data) {
		errs[field] = msg
	}
	return errs
}

// StepForField returns the step that owns the given field, so error
// navigation can land the user somewhere the field is editable.
func StepForField(field string) int {
	switch field {
	case FieldFirstName, FieldLastName, FieldEmail:
		return StepPersonal
	case FieldAddress, FieldCity, FieldState, FieldZipCode, FieldPhone:
		return StepAddress
	}
	return StepReview
}

func validatePersonal(data Data, errs Errors) {
	// Trim-emptiness is checked first and short-circuits the pattern
	// check, so whitespace-only input reads as "required", not "invalid".
	if strings.TrimSpace(data.FirstName) == "" {
		errs[FieldFirstName] = "First name is required."
	} else if !nameRe.MatchString(data.FirstName) {
		errs[FieldFirstName] = "First name must contain only letters."
	}

	if strings.TrimSpace(data.LastName) == "" {
		errs[FieldLastName] = "Last name is required."
	} else if !nameRe.MatchString(data.LastName) {
		errs[FieldLastName] = "Last name must contain only letters."
	}

	if strings.TrimSpace(data.Email) == "" {
		errs[FieldEmail] = "Email is required."
	} else if !emailRe.MatchString(data.Email) {
		errs[FieldEmail] = "Enter a valid email address."
	}
}

func validateAddress(data Data, errs Errors) {
	if strings.TrimSpace(data.Address) == "" {
		errs[FieldAddress] = "Address is required."
	}
	if strings.TrimSpace(data.City) == "" {
		errs[FieldCity] = "City is required."
	}
	if strings.TrimSpace(data.State) == "" {
		errs[FieldState] = "State is required."
	}

	if strings.TrimSpace(data.ZipCode) == "" {
		errs[FieldZipCode] = "Zip code is required."
	} else if !zipRe.MatchString(strings.TrimSpace(data.ZipCode)) {
		errs[FieldZipCode] = "Zip code must be exactly 6 digits."
	}

	if strings.TrimSpace(data.Phone) == "" {
		errs[FieldPhone] = "Phone number is required."
	} else if len(nonDigitRe.ReplaceAllString(data.Phone, "")) != 10 {
		// Formatted input like 555-123-4567 is fine; only the digit
		// count matters.
		errs[FieldPhone] = "Phone number must be 10 digits."
	}
}
