package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aussiebroadwan/ums/internal/ums/domain"
	"github.com/aussiebroadwan/ums/internal/ums/session"
	"github.com/aussiebroadwan/ums/internal/ums/validate"
)

const registerRedirectDelay = 1500 * time.Millisecond

type registerResultMsg struct {
	ok  bool
	err error
}

type registerView struct {
	data validate.RegisterForm
	form *formModel
}

func newRegisterView() *registerView {
	v := &registerView{}
	v.form = newFormModel(&v.data,
		fieldSpec{name: validate.FieldFirstName, label: "First Name"},
		fieldSpec{name: validate.FieldLastName, label: "Last Name"},
		fieldSpec{name: validate.FieldEmail, label: "Email Address"},
		fieldSpec{name: validate.FieldPhone, label: "Phone Number (Optional)"},
		fieldSpec{name: validate.FieldPassword, label: "Password", secret: true},
		fieldSpec{name: validate.FieldConfirmPassword, label: "Confirm Password", secret: true},
	)
	return v
}

func registerCmd(ctx context.Context, sess *session.Store, reg domain.Registration) tea.Cmd {
	return func() tea.Msg {
		ok, err := sess.Register(ctx, reg)
		return registerResultMsg{ok: ok, err: err}
	}
}

func (m *Model) submitRegister() tea.Cmd {
	if !m.register.form.submit() {
		return m.showToast(toastError, "Please fix the errors before submitting")
	}
	m.busy = true
	d := m.register.data
	return registerCmd(m.ctx, m.sess, domain.Registration{
		Email:     d.Email,
		Password:  d.Password,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Phone:     d.Phone,
	})
}

func (m *Model) handleRegisterResult(msg registerResultMsg) tea.Cmd {
	m.busy = false
	switch {
	case msg.err != nil:
		m.logger.Error("registration failed", "error", msg.err)
		return m.showToast(toastError, "Registration failed. Please try again.")
	case !msg.ok:
		m.logger.Info("registration rejected, email exists")
		return m.showToast(toastError, "Email already exists")
	}
	m.logger.Info("registered", "user_id", m.currentUserID())
	return tea.Batch(
		m.showToast(toastSuccess, "Registration successful! Redirecting to profile..."),
		navigateAfter(registerRedirectDelay, RouteProfile),
	)
}

func (v *registerView) view(st styles) string {
	var b strings.Builder
	b.WriteString(st.Title.Render("Create Account"))
	b.WriteString("\n")
	b.WriteString(st.Subtitle.Render("Join us today"))
	b.WriteString("\n\n")
	b.WriteString(v.form.view(st))
	b.WriteString("\n")
	b.WriteString(st.Help.Render("tab next • enter create account • ctrl+l sign in instead"))
	return st.Box.Render(b.String())
}
