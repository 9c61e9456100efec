package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"signupform/internal/form"
	"signupform/internal/submit"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.nav.Store().State().IsLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case submitDoneMsg:
		return m.handleSubmitDone(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleSubmitDone(msg submitDoneMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.err == nil:
		m.nav.FinishSubmit(msg.attempt, nil)
	case errors.Is(msg.err, context.Canceled):
		// A cancelled attempt resolves nothing.
	case errors.Is(msg.err, submit.ErrRejected):
		m.nav.FinishSubmit(msg.attempt, errors.New(m.cfg.Submit.FailureMessage))
	default:
		m.nav.FinishSubmit(msg.attempt, msg.err)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.nav.Store().State()

	// While a submission is in flight the form is inert except for quit.
	if st.IsLoading() {
		if b := m.keys.Lookup(msg.String(), scopeGlobal); b != nil && b.Action == actionQuit {
			return m, tea.Quit
		}
		return m, nil
	}

	if b := m.keys.Lookup(msg.String(), m.scope(st)); b != nil {
		return m.runAction(b.Action, st)
	}

	// Unbound keys edit the focused input, if the step has one.
	fields := stepFields(st.Step)
	if st.IsSuccess() || len(fields) == 0 {
		return m, nil
	}
	f := fields[m.focus]
	in := m.inputs[f.name]
	before := in.Value()
	var cmd tea.Cmd
	in, cmd = in.Update(msg)
	m.inputs[f.name] = in
	if in.Value() != before {
		m.nav.Store().UpdateField(f.name, in.Value())
	}
	return m, cmd
}

func (m Model) runAction(action Action, st form.State) (tea.Model, tea.Cmd) {
	switch action {
	case actionQuit:
		return m, tea.Quit

	case actionNextField:
		m.setFocus(m.focus + 1)

	case actionPrevField:
		m.setFocus(m.focus - 1)

	case actionNext:
		// Enter walks fields first; on the last field it attempts the
		// step transition. Either way syncStep lands focus correctly:
		// the next step's first field, or the first offending one.
		if m.focus < len(stepFields(st.Step))-1 {
			m.setFocus(m.focus + 1)
			return m, nil
		}
		m.nav.Next()
		m.syncStep()

	case actionBack:
		if m.nav.Back() {
			m.syncStep()
		}

	case actionSubmit:
		return m.startSubmit()

	case actionReset:
		m.nav.Reset()
		m.syncStep()
	}
	return m, nil
}

func (m Model) startSubmit() (tea.Model, tea.Cmd) {
	attempt, ok := m.nav.BeginSubmit()
	if !ok {
		// Validation failed: the controller already navigated to the
		// first invalid step; land focus on the offending field.
		m.syncStep()
		return m, nil
	}
	data := m.nav.Store().State().Data
	return m, tea.Batch(m.spin.Tick, submitCmd(m.submitter, data, attempt))
}

func submitCmd(s submit.Submitter, data form.Data, attempt string) tea.Cmd {
	return func() tea.Msg {
		return submitDoneMsg{attempt: attempt, err: s.Submit(context.Background(), data)}
	}
}
