package form

// Store owns the canonical FormState. Every mutation goes through one of
// the transition methods below; each produces a complete new snapshot, so
// observers never see a half-applied change. The transition set is closed
// at compile time — there is no dispatch on action names, and therefore
// no "unknown action" runtime path.
//
// The store is single-writer by design: all transitions run on the UI
// event loop. The one async actor in the system (the submitter) reports
// back through that same loop.
type Store struct {
	state State
}

// NewStore returns a store holding the documented initial state:
// step 1, empty data, no errors, editing.
func NewStore() *Store {
	return &Store{state: initialState()}
}

// State returns a snapshot. The errors map is cloned so callers can hold
// it across later transitions.
func (s *Store) State() State {
	snap := s.state
	snap.Errors = s.state.Errors.Clone()
	return snap
}

// UpdateField sets one field and optimistically clears its error. It does
// not re-validate; the field shows clean until the next validation pass.
func (s *Store) UpdateField(field, value string) {
	next := s.state
	next.Data = s.state.Data.Set(field, value)
	next.Errors = s.state.Errors.Clone()
	delete(next.Errors, field)
	s.state = next
}

// SetErrors replaces the error map wholesale. Errors for fields absent
// from the new map are dropped, not merged.
func (s *Store) SetErrors(errs Errors) {
	next := s.state
	next.Errors = errs.Clone()
	s.state = next
}

// AdvanceStep increments the step unconditionally. The store enforces no
// ceiling; the navigation controller is responsible for only calling this
// after validation passes and below the last step.
func (s *Store) AdvanceStep() {
	s.state.Step++
}

// RetreatStep decrements the step unconditionally, with the same
// caller-responsibility caveat (no floor below step 1).
func (s *Store) RetreatStep() {
	s.state.Step--
}

// BeginSubmit marks a submission in flight.
func (s *Store) BeginSubmit() {
	s.state.Status = StatusSubmitting
}

// SubmitSucceeded lands the terminal success state and clears all errors.
func (s *Store) SubmitSucceeded() {
	next := s.state
	next.Status = StatusSucceeded
	next.Errors = Errors{}
	s.state = next
}

// SubmitFailed records a top-level submit error. Unlike SetErrors this
// merges: field-level errors already present survive alongside the
// submit-level one.
func (s *Store) SubmitFailed(message string) {
	next := s.state
	next.Status = StatusFailed
	next.Errors = s.state.Errors.Clone()
	next.Errors[FieldSubmit] = message
	s.state = next
}

// Reset replaces the entire state with the initial values.
func (s *Store) Reset() {
	s.state = initialState()
}
