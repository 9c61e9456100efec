package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"signupform/internal/config"
	"signupform/internal/form"
	"signupform/internal/submit"
)

// ---------------------------------------------------------------------------
// Flow test helpers
// ---------------------------------------------------------------------------

const testFailureMessage = "Submission failed. Please try again."

func newTestModel(outcome bool) Model {
	cfg := config.Config{
		Submit: config.SubmitConfig{DelayMS: 0, FailureMessage: testFailureMessage},
	}
	nav := form.NewController(form.NewStore())
	sim := submit.NewSimulator(0, submit.FixedOutcome(outcome))
	return New(cfg, NewKeyRegistry(defaultKeys()), nav, sim)
}

func flowApplyMsg(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return flowDrainCmd(t, got, cmd)
}

// flowDrainCmd runs pending commands breadth-first so a spinner tick
// cannot starve the submit resolution behind it in a batch.
func flowDrainCmd(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for i := 0; len(queue) > 0 && i < 64; i++ {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		msg := next()
		if msg == nil {
			continue
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		model, nextCmd := m.Update(msg)
		got, ok := model.(Model)
		if !ok {
			t.Fatalf("command update returned %T, want Model", model)
		}
		m = got
		queue = append(queue, nextCmd)
	}
	if len(queue) > 0 {
		t.Fatal("command chain exceeded max depth")
	}
	return m
}

func flowPress(t *testing.T, m Model, k tea.KeyType) Model {
	t.Helper()
	return flowApplyMsg(t, m, tea.KeyMsg{Type: k})
}

func flowType(t *testing.T, m Model, input string) Model {
	t.Helper()
	for _, r := range input {
		m = flowApplyMsg(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func flowState(m Model) form.State {
	return m.nav.Store().State()
}

// flowFillStep types values into the current step's fields, enter between
// them; the final enter triggers the step transition.
func flowFillStep(t *testing.T, m Model, values []string) Model {
	t.Helper()
	for _, v := range values {
		m = flowType(t, m, v)
		m = flowPress(t, m, tea.KeyEnter)
	}
	return m
}

func flowReachReview(t *testing.T, m Model) Model {
	t.Helper()
	m = flowFillStep(t, m, []string{"Ann", "Lee", "a@b.com"})
	m = flowFillStep(t, m, []string{"12 High Street", "Melbourne", "VIC", "300051", "555-123-4567"})
	if got := flowState(m).Step; got != form.StepReview {
		t.Fatalf("step = %d, want review", got)
	}
	return m
}

// ---------------------------------------------------------------------------
// Flow tests
// ---------------------------------------------------------------------------

func TestFlowNextOnEmptyStepShowsErrors(t *testing.T) {
	m := newTestModel(true)

	// Enter walks to the last empty field; the third press attempts Next.
	for i := 0; i < 3; i++ {
		m = flowPress(t, m, tea.KeyEnter)
	}

	st := flowState(m)
	if st.Step != form.StepPersonal {
		t.Errorf("step = %d, want 1", st.Step)
	}
	if st.Errors[form.FieldFirstName] != "First name is required." {
		t.Errorf("firstName error = %q", st.Errors[form.FieldFirstName])
	}
	// Focus lands back on the offending field.
	if m.focus != 0 {
		t.Errorf("focus = %d, want 0", m.focus)
	}
}

func TestFlowValidStepAdvances(t *testing.T) {
	m := newTestModel(true)
	m = flowFillStep(t, m, []string{"Ann", "Lee", "a@b.com"})

	st := flowState(m)
	if st.Step != form.StepAddress {
		t.Errorf("step = %d, want 2", st.Step)
	}
	if !st.Errors.Empty() {
		t.Errorf("errors = %v, want empty", st.Errors)
	}
}

func TestFlowEditingClearsFieldError(t *testing.T) {
	m := newTestModel(true)
	for i := 0; i < 3; i++ {
		m = flowPress(t, m, tea.KeyEnter)
	}
	if flowState(m).Errors[form.FieldFirstName] == "" {
		t.Fatal("expected firstName error before edit")
	}

	m = flowType(t, m, "A")
	if _, bad := flowState(m).Errors[form.FieldFirstName]; bad {
		t.Fatal("typing into the field must clear its error immediately")
	}
}

func TestFlowBackPreservesValues(t *testing.T) {
	m := newTestModel(true)
	m = flowFillStep(t, m, []string{"Ann", "Lee", "a@b.com"})
	m = flowPress(t, m, tea.KeyEsc)

	st := flowState(m)
	if st.Step != form.StepPersonal {
		t.Fatalf("step = %d, want 1", st.Step)
	}
	if got := m.inputs[form.FieldFirstName].Value(); got != "Ann" {
		t.Errorf("first name input = %q after back", got)
	}
}

func TestFlowSubmitSuccess(t *testing.T) {
	m := newTestModel(true)
	m = flowReachReview(t, m)

	// Apply the key without draining so the in-flight state is visible.
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if !flowState(m).IsLoading() {
		t.Fatal("loading must be observable before the resolution")
	}

	m = flowDrainCmd(t, m, cmd)
	st := flowState(m)
	if !st.IsSuccess() {
		t.Fatalf("expected success, got %+v", st)
	}
	if st.IsLoading() {
		t.Fatal("loading and success are mutually exclusive")
	}
	if !st.Errors.Empty() {
		t.Fatalf("errors = %v, want empty", st.Errors)
	}
}

func TestFlowSubmitFailure(t *testing.T) {
	m := newTestModel(false)
	m = flowReachReview(t, m)
	m = flowPress(t, m, tea.KeyEnter)

	st := flowState(m)
	if st.IsSuccess() || st.IsLoading() {
		t.Fatalf("expected settled failure, got %+v", st)
	}
	if st.Errors[form.FieldSubmit] != testFailureMessage {
		t.Errorf("submit error = %q", st.Errors[form.FieldSubmit])
	}
}

func TestFlowSubmitKeysInertWhileLoading(t *testing.T) {
	m := newTestModel(true)
	m = flowReachReview(t, m)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	// A second enter while in flight must not start another attempt or
	// navigate anywhere.
	again, dupCmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = again.(Model)
	if dupCmd != nil {
		t.Fatal("duplicate submit must produce no command")
	}
	if got := flowState(m).Step; got != form.StepReview {
		t.Fatalf("step = %d, want review", got)
	}

	m = flowDrainCmd(t, m, cmd)
	if !flowState(m).IsSuccess() {
		t.Fatal("original attempt should still resolve")
	}
}

func TestFlowSubmitWithStaleInvalidFieldNavigatesBack(t *testing.T) {
	m := newTestModel(true)
	m = flowReachReview(t, m)

	// Corrupting a step-1 field through the store models the error the
	// review gate has to catch.
	m.nav.Store().UpdateField(form.FieldEmail, "broken")
	m = flowPress(t, m, tea.KeyEnter)

	st := flowState(m)
	if st.Step != form.StepPersonal {
		t.Fatalf("step = %d, want 1", st.Step)
	}
	if st.Errors[form.FieldEmail] == "" {
		t.Fatal("merged errors missing email")
	}
	// Focus must land on the offending field (email is index 2).
	if m.focus != 2 {
		t.Errorf("focus = %d, want 2", m.focus)
	}
}

func TestFlowStartOverAfterSuccess(t *testing.T) {
	m := newTestModel(true)
	m = flowReachReview(t, m)
	m = flowPress(t, m, tea.KeyEnter)
	if !flowState(m).IsSuccess() {
		t.Fatal("expected success before start over")
	}

	m = flowPress(t, m, tea.KeyEnter)

	st := flowState(m)
	if st.Step != form.StepPersonal || st.IsSuccess() {
		t.Fatalf("after start over: %+v", st)
	}
	if st.Data != (form.Data{}) {
		t.Fatalf("data = %+v, want empty", st.Data)
	}
	if got := m.inputs[form.FieldFirstName].Value(); got != "" {
		t.Errorf("input not cleared: %q", got)
	}
}

// ---------------------------------------------------------------------------
// View smoke tests
// ---------------------------------------------------------------------------

func TestViewShowsFieldError(t *testing.T) {
	m := newTestModel(true)
	for i := 0; i < 3; i++ {
		m = flowPress(t, m, tea.KeyEnter)
	}
	if !strings.Contains(m.View(), "First name is required.") {
		t.Fatal("view missing inline field error")
	}
}

func TestViewShowsEmailHint(t *testing.T) {
	m := newTestModel(true)
	m = flowType(t, m, "Ann")
	m = flowPress(t, m, tea.KeyEnter)
	m = flowType(t, m, "Lee")
	m = flowPress(t, m, tea.KeyEnter)
	m = flowType(t, m, "ann@gmial.com")
	if !strings.Contains(m.View(), "ann@gmail.com") {
		t.Fatal("view missing email domain hint")
	}
}

func TestViewReviewListsEnteredValues(t *testing.T) {
	m := newTestModel(true)
	m = flowReachReview(t, m)
	v := m.View()
	for _, want := range []string{"Ann", "Lee", "a@b.com", "Melbourne", "300051"} {
		if !strings.Contains(v, want) {
			t.Errorf("review view missing %q", want)
		}
	}
}

func TestViewSuccessScreen(t *testing.T) {
	m := newTestModel(true)
	m = flowReachReview(t, m)
	m = flowPress(t, m, tea.KeyEnter)
	v := m.View()
	if !strings.Contains(v, "Account created") {
		t.Fatal("success view missing title")
	}
	if !strings.Contains(v, "a@b.com") {
		t.Fatal("success view missing email")
	}
}

func TestViewSubmitFailureMessage(t *testing.T) {
	m := newTestModel(false)
	m = flowReachReview(t, m)
	m = flowPress(t, m, tea.KeyEnter)
	if !strings.Contains(m.View(), testFailureMessage) {
		t.Fatal("view missing submit failure message")
	}
}
