package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"signupform/internal/form"
)

func (m Model) View() string {
	st := m.nav.Store().State()

	var body string
	switch {
	case st.IsSuccess():
		body = m.viewSuccess(st)
	case st.Step == form.StepReview:
		body = m.viewReview(st)
	default:
		body = m.viewStep(st)
	}

	sections := []string{
		m.viewHeader(st),
		"",
		body,
		"",
		m.viewStatusBar(st),
		m.viewFooter(st),
	}
	return strings.Join(sections, "\n")
}

func (m Model) viewHeader(st form.State) string {
	tabs := make([]string, 0, form.StepReview)
	for step := form.StepPersonal; step <= form.StepReview; step++ {
		label := fmt.Sprintf("%d %s", step, stepTitles[step])
		switch {
		case st.IsSuccess() || step < st.Step:
			tabs = append(tabs, stepDoneStyle.Render("✓ "+stepTitles[step]))
		case step == st.Step:
			tabs = append(tabs, stepActiveStyle.Render(label))
		default:
			tabs = append(tabs, stepPendingStyle.Render(label))
		}
	}
	bar := headerAppStyle.Render(appName) + "  " +
		strings.Join(tabs, stepSepStyle.Render("›"))
	return headerBarStyle.Render(padRight(bar, m.width-4))
}

func (m Model) viewStep(st form.State) string {
	fields := stepFields(st.Step)
	lines := make([]string, 0, len(fields)*3+2)
	lines = append(lines, titleStyle.Render(stepTitles[st.Step]+" details"), "")

	for i, f := range fields {
		label := labelStyle
		if i == m.focus {
			label = labelFocusStyle
		}
		lines = append(lines, label.Render(f.label))
		lines = append(lines, m.inputs[f.name].View())
		if msg, bad := st.Errors[f.name]; bad {
			lines = append(lines, fieldErrorStyle.Render("  "+msg))
		} else if f.name == form.FieldEmail {
			if hint, ok := form.SuggestEmailDomain(st.Data.Email); ok {
				lines = append(lines, hintStyle.Render("  did you mean "+hint+"?"))
			}
		}
		lines = append(lines, "")
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewReview(st form.State) string {
	row := func(label, value string) string {
		v := reviewValueStyle.Render(value)
		if strings.TrimSpace(value) == "" {
			v = reviewEmptyStyle.Render("(empty)")
		}
		return reviewKeyStyle.Render(label) + v
	}

	lines := []string{
		titleStyle.Render("Review your details"),
		"",
		labelStyle.Render(stepTitles[form.StepPersonal]),
		row("First name", st.Data.FirstName),
		row("Last name", st.Data.LastName),
		row("Email", st.Data.Email),
		"",
		labelStyle.Render(stepTitles[form.StepAddress]),
		row("Address", st.Data.Address),
		row("City", st.Data.City),
		row("State", st.Data.State),
		row("Zip code", st.Data.ZipCode),
		row("Phone", st.Data.Phone),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewSuccess(st form.State) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		successTitleStyle.Render("✓ Account created"),
		"",
		statusStyle.Render(fmt.Sprintf("Welcome, %s. A confirmation email is on its way to %s.",
			strings.TrimSpace(st.Data.FirstName), st.Data.Email)),
	)
}

func (m Model) viewStatusBar(st form.State) string {
	var line string
	switch {
	case st.IsLoading():
		line = m.spin.View() + statusStyle.Render(" Submitting…")
	case st.Errors[form.FieldSubmit] != "":
		line = statusErrStyle.Render(st.Errors[form.FieldSubmit])
	case st.IsSuccess():
		line = statusStyle.Render("All done.")
	default:
		line = statusStyle.Render(fmt.Sprintf("Step %d of %d", st.Step, form.StepReview))
	}
	return statusBarStyle.Render(padRight(line, m.width-4))
}

func (m Model) viewFooter(st form.State) string {
	scope := m.scope(st)
	if st.IsLoading() {
		scope = scopeGlobal
	}
	parts := make([]string, 0, 6)
	for _, b := range m.keys.HelpBindings(scope) {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return footerStyle.Render(padRight(strings.Join(parts, "  ·  "), m.width-4))
}
