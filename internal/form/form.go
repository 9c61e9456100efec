// Package form holds the signup form's canonical state: field data,
// validation errors, the submission status, and the store/controller pair
// that own all transitions between them. It has no UI dependency so the
// whole flow is testable headlessly.
package form

import "fmt"

// Field names. These key FormErrors entries and identify inputs in the UI.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldEmail     = "email"
	FieldAddress   = "address"
	FieldCity      = "city"
	FieldState     = "state"
	FieldZipCode   = "zipCode"
	FieldPhone     = "phone"

	// FieldSubmit is the synthetic key carrying a top-level submission
	// failure message. It never corresponds to an input.
	FieldSubmit = "submit"
)

// Step numbers.
const (
	StepPersonal = 1
	StepAddress  = 2
	StepReview   = 3
)

// Data is the full set of values the form collects. Emptiness is a
// validation concern, not a schema concern, so every field is a plain
// string.
type Data struct {
	FirstName string
	LastName  string
	Email     string
	Address   string
	City      string
	State     string
	ZipCode   string
	Phone     string
}

// Get returns the value of the named field. Unknown names are a
// programmer error and panic.
func (d Data) Get(field string) string {
	switch field {
	case FieldFirstName:
		return d.FirstName
	case FieldLastName:
		return d.LastName
	case FieldEmail:
		return d.Email
	case FieldAddress:
		return d.Address
	case FieldCity:
		return d.City
	case FieldState:
		return d.State
	case FieldZipCode:
		return d.ZipCode
	case FieldPhone:
		return d.Phone
	}
	panic(fmt.Sprintf("form: unknown field %q", field))
}

// Set returns a copy of d with the named field replaced. Unknown names
// are a programmer error and panic.
func (d Data) Set(field, value string) Data {
	switch field {
	case FieldFirstName:
		d.FirstName = value
	case FieldLastName:
		d.LastName = value
	case FieldEmail:
		d.Email = value
	case FieldAddress:
		d.Address = value
	case FieldCity:
		d.City = value
	case FieldState:
		d.State = value
	case FieldZipCode:
		d.ZipCode = value
	case FieldPhone:
		d.Phone = value
	default:
		panic(fmt.Sprintf("form: unknown field %q", field))
	}
	return d
}

// Errors maps a field name (or FieldSubmit) to a display message.
// Absence of a key means the field is valid.
type Errors map[string]string

// Empty reports whether no field carries an error.
func (e Errors) Empty() bool { return len(e) == 0 }

// Clone returns an independent copy so snapshots never alias live state.
func (e Errors) Clone() Errors {
	out := make(Errors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Status is the form's submission lifecycle. Modelling it as one
// enumeration (rather than isLoading/isSuccess booleans) makes the
// loading/success mutual exclusion structural.
type Status int

const (
	StatusEditing Status = iota
	StatusSubmitting
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusEditing:
		return "editing"
	case StatusSubmitting:
		return "submitting"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// State is one immutable snapshot of the whole form.
type State struct {
	Step   int
	Data   Data
	Errors Errors
	Status Status
}

// IsLoading reports whether a submission is in flight.
func (s State) IsLoading() bool { return s.Status == StatusSubmitting }

// IsSuccess reports whether the form reached its terminal success state.
func (s State) IsSuccess() bool { return s.Status == StatusSucceeded }

func initialState() State {
	return State{
		Step:   StepPersonal,
		Data:   Data{},
		Errors: Errors{},
		Status: StatusEditing,
	}
}
