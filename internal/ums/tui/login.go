package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aussiebroadwan/ums/internal/ums/session"
	"github.com/aussiebroadwan/ums/internal/ums/validate"
)

const loginRedirectDelay = time.Second

type loginResultMsg struct {
	ok  bool
	err error
}

type loginView struct {
	data validate.LoginForm
	form *formModel
}

func newLoginView() *loginView {
	v := &loginView{}
	v.form = newFormModel(&v.data,
		fieldSpec{name: validate.FieldEmail, label: "Email Address"},
		fieldSpec{name: validate.FieldPassword, label: "Password", secret: true},
	)
	return v
}

func loginCmd(ctx context.Context, sess *session.Store, email, password string) tea.Cmd {
	return func() tea.Msg {
		ok, err := sess.Login(ctx, email, password)
		return loginResultMsg{ok: ok, err: err}
	}
}

func (m *Model) submitLogin() tea.Cmd {
	if !m.login.form.submit() {
		return m.showToast(toastError, "Please fix the errors before logging in")
	}
	m.busy = true
	return loginCmd(m.ctx, m.sess, m.login.data.Email, m.login.data.Password)
}

func (m *Model) handleLoginResult(msg loginResultMsg) tea.Cmd {
	m.busy = false
	switch {
	case msg.err != nil:
		m.logger.Error("login failed", "error", msg.err)
		return m.showToast(toastError, "Login failed. Please try again.")
	case !msg.ok:
		m.logger.Info("login rejected")
		return m.showToast(toastError, "Invalid email or password")
	}
	m.logger.Info("logged in", "user_id", m.currentUserID())
	return tea.Batch(
		m.showToast(toastSuccess, "Login successful! Redirecting to profile..."),
		navigateAfter(loginRedirectDelay, RouteProfile),
	)
}

func (v *loginView) view(st styles) string {
	var b strings.Builder
	b.WriteString(st.Title.Render("Welcome Back"))
	b.WriteString("\n")
	b.WriteString(st.Subtitle.Render("Sign in to your account"))
	b.WriteString("\n\n")
	b.WriteString(v.form.view(st))
	b.WriteString("\n")
	b.WriteString(st.Help.Render("tab next • enter sign in • ctrl+r create an account"))
	return st.Box.Render(b.String())
}
