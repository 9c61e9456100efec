// Package tui renders the signup wizard as a Bubble Tea program. All form
// semantics live in internal/form; this package only maps key presses to
// controller calls and state snapshots to the screen.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"signupform/internal/config"
	"signupform/internal/form"
	"signupform/internal/submit"
)

const appName = "Signup"

// fieldDef describes one input slot on a step.
type fieldDef struct {
	name        string
	label       string
	placeholder string
}

var personalFields = []fieldDef{
	{form.FieldFirstName, "First name", "Ann"},
	{form.FieldLastName, "Last name", "Lee"},
	{form.FieldEmail, "Email", "ann@example.com"},
}

var addressFields = []fieldDef{
	{form.FieldAddress, "Address", "12 High Street"},
	{form.FieldCity, "City", "Melbourne"},
	{form.FieldState, "State", "VIC"},
	{form.FieldZipCode, "Zip code", "300051"},
	{form.FieldPhone, "Phone", "555-123-4567"},
}

var stepTitles = map[int]string{
	form.StepPersonal: "Personal",
	form.StepAddress:  "Address",
	form.StepReview:   "Review",
}

func stepFields(step int) []fieldDef {
	switch step {
	case form.StepPersonal:
		return personalFields
	case form.StepAddress:
		return addressFields
	}
	return nil
}

// Model is the Bubble Tea model for the wizard.
type Model struct {
	cfg       config.Config
	keys      *KeyRegistry
	nav       *form.Controller
	submitter submit.Submitter

	inputs map[string]textinput.Model
	focus  int
	spin   spinner.Model

	width  int
	height int
}

// New wires the model. The submitter is injected so tests (and a future
// real client) can replace the simulator.
func New(cfg config.Config, keys *KeyRegistry, nav *form.Controller, submitter submit.Submitter) Model {
	inputs := make(map[string]textinput.Model)
	for _, f := range append(append([]fieldDef{}, personalFields...), addressFields...) {
		in := textinput.New()
		in.Placeholder = f.placeholder
		in.Prompt = ""
		in.CharLimit = 128
		inputs[f.name] = in
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorBrand)

	m := Model{
		cfg:       cfg,
		keys:      keys,
		nav:       nav,
		submitter: submitter,
		inputs:    inputs,
		spin:      sp,
	}
	m.setFocus(0)
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// scope returns the keybinding scope for the current state.
func (m Model) scope(st form.State) string {
	if st.IsSuccess() {
		return scopeSuccess
	}
	if st.Step == form.StepReview {
		return scopeReview
	}
	return scopeForm
}

// currentFields returns the input slots for the step being shown.
func (m Model) currentFields() []fieldDef {
	return stepFields(m.nav.Store().State().Step)
}

// setFocus moves input focus within the current step, clamping to range.
func (m *Model) setFocus(i int) {
	fields := m.currentFields()
	if len(fields) == 0 {
		m.focus = 0
		return
	}
	if i < 0 {
		i = len(fields) - 1
	}
	if i >= len(fields) {
		i = 0
	}
	m.focus = i
	for j, f := range fields {
		in := m.inputs[f.name]
		if j == i {
			in.Focus()
		} else {
			in.Blur()
		}
		m.inputs[f.name] = in
	}
}

// syncStep refreshes the inputs from the store after any navigation, so
// values persist across back/forward and errors refocus their field.
func (m *Model) syncStep() {
	st := m.nav.Store().State()
	for name, in := range m.inputs {
		in.SetValue(st.Data.Get(name))
		m.inputs[name] = in
	}
	target := 0
	for i, f := range m.currentFields() {
		if _, bad := st.Errors[f.name]; bad {
			target = i
			break
		}
	}
	m.setFocus(target)
}
