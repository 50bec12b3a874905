package tui

import (
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aussiebroadwan/ums/internal/ums/validate"
)

type fieldSpec struct {
	name   string
	label  string
	secret bool
}

// formModel edits a validate.Form one field at a time and keeps the
// keystroke-time error map for it.
type formModel struct {
	form   validate.Form
	fields []fieldSpec
	focus  int
	errs   validate.Errors
}

func newFormModel(form validate.Form, fields ...fieldSpec) *formModel {
	return &formModel{form: form, fields: fields, errs: validate.Errors{}}
}

func (f *formModel) focused() string { return f.fields[f.focus].name }

// handleKey applies one key to the focused field. It reports true when the
// user asked to submit.
func (f *formModel) handleKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyEnter:
		return true
	case tea.KeyTab, tea.KeyDown:
		f.focus = (f.focus + 1) % len(f.fields)
	case tea.KeyShiftTab, tea.KeyUp:
		f.focus = (f.focus - 1 + len(f.fields)) % len(f.fields)
	case tea.KeyBackspace:
		value := f.form.Get(f.focused())
		if value == "" {
			return false
		}
		_, size := utf8.DecodeLastRuneInString(value)
		f.edit(value[:len(value)-size])
	case tea.KeySpace:
		f.edit(f.form.Get(f.focused()) + " ")
	case tea.KeyRunes:
		f.edit(f.form.Get(f.focused()) + string(msg.Runes))
	}
	return false
}

func (f *formModel) edit(value string) {
	f.errs = validate.Keystroke(f.form, f.errs, f.focused(), value)
}

// submit revalidates every field and reports whether the form is clean.
func (f *formModel) submit() bool {
	f.errs = validate.Submit(f.form)
	return !f.errs.HasErrors()
}

func (f *formModel) clearErrors() {
	f.errs = validate.Errors{}
}

func (f *formModel) view(st styles) string {
	var b strings.Builder
	for i, fs := range f.fields {
		value := f.form.Get(fs.name)
		if fs.secret {
			value = strings.Repeat("•", utf8.RuneCountInString(value))
		}

		input := st.Input
		if i == f.focus {
			input = st.FocusedInput
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
			st.Label.Render(fs.label),
			input.Render(value),
		))
		b.WriteString("\n")
		if msg := f.errs.Get(fs.name); msg != "" {
			b.WriteString(st.FieldError.Render(msg))
			b.WriteString("\n")
		}
	}
	return b.String()
}
