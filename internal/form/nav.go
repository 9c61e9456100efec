package form

import "github.com/google/uuid"

// Controller drives the step state machine over the store:
// steps 1..3 plus a terminal success state reachable only from step 3.
// It is the only component allowed to call AdvanceStep/RetreatStep, and
// it guards the bounds the store itself does not enforce.
type Controller struct {
	store *Store

	// attempt identifies the in-flight submission. A resolution carrying
	// any other ID is stale (the user already reset, or a bug fired the
	// callback twice) and is ignored.
	attempt string
}

// NewController wires a controller to its store.
func NewController(store *Store) *Controller {
	return &Controller{store: store}
}

// Store exposes the underlying store for reads and field updates.
func (c *Controller) Store() *Store { return c.store }

// Next validates the current step and either records the errors and stays
// put, or advances one step. Reports whether the step advanced. Inert on
// the review step, while submitting, and after success.
func (c *Controller) Next() bool {
	st := c.store.State()
	if st.Status == StatusSubmitting || st.Status == StatusSucceeded {
		return false
	}
	if st.Step >= StepReview {
		return false
	}
	errs := ValidateStep(st.Step, st.Data)
	if !errs.Empty() {
		c.store.SetErrors(errs)
		return false
	}
	c.store.AdvanceStep()
	return true
}

// Back retreats one step without re-validating or clearing errors for the
// step being left. Inert on step 1, while submitting, and after success.
func (c *Controller) Back() bool {
	st := c.store.State()
	if st.Status == StatusSubmitting || st.Status == StatusSucceeded {
		return false
	}
	if st.Step <= StepPersonal {
		return false
	}
	c.store.RetreatStep()
	return true
}

// BeginSubmit re-runs every step's validator against the full form. On
// any error it records the merged set, walks the user back to the first
// step that still carries one, and reports ok=false. Otherwise it marks
// the submission in flight and returns the attempt ID the resolution must
// echo. Only legal on the review step; a second call while a submission
// is in flight is a no-op, which is what makes duplicate submits
// impossible.
func (c *Controller) BeginSubmit() (attemptID string, ok bool) {
	st := c.store.State()
	if st.Status == StatusSubmitting || st.Status == StatusSucceeded {
		return "", false
	}
	if st.Step != StepReview {
		return "", false
	}

	errs := ValidateAll(st.Data)
	if !errs.Empty() {
		c.store.SetErrors(errs)
		c.retreatTo(firstInvalidStep(errs))
		return "", false
	}

	c.attempt = uuid.NewString()
	c.store.BeginSubmit()
	return c.attempt, true
}

// FinishSubmit resolves the in-flight submission. err == nil lands the
// terminal success state; otherwise the failure message is recorded under
// the synthetic submit key and the user may re-submit. Stale or
// unexpected resolutions are dropped.
func (c *Controller) FinishSubmit(attemptID string, err error) {
	if attemptID == "" || attemptID != c.attempt {
		return
	}
	if c.store.State().Status != StatusSubmitting {
		return
	}
	c.attempt = ""
	if err != nil {
		c.store.SubmitFailed(err.Error())
		return
	}
	c.store.SubmitSucceeded()
}

// Reset returns the machine to a fresh step 1 and invalidates any
// in-flight attempt.
func (c *Controller) Reset() {
	c.attempt = ""
	c.store.Reset()
}

// retreatTo walks back one step at a time so the step counter never
// skips, per the state invariant.
func (c *Controller) retreatTo(step int) {
	for c.store.State().Step > step {
		c.store.RetreatStep()
	}
}

func firstInvalidStep(errs Errors) int {
	first := StepReview
	for field := range errs {
		if s := StepForField(field); s < first {
			first = s
		}
	}
	return first
}
