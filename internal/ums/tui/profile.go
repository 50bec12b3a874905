package tui

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aussiebroadwan/ums/internal/ums/domain"
	"github.com/aussiebroadwan/ums/internal/ums/session"
	"github.com/aussiebroadwan/ums/internal/ums/validate"
)

type profileResultMsg struct {
	ok  bool
	err error
}

type profileView struct {
	editing bool
	data    validate.ProfileForm
	form    *formModel
}

func newProfileView() *profileView {
	v := &profileView{}
	v.form = newFormModel(&v.data,
		fieldSpec{name: validate.FieldFirstName, label: "First Name"},
		fieldSpec{name: validate.FieldLastName, label: "Last Name"},
		fieldSpec{name: validate.FieldEmail, label: "Email Address"},
		fieldSpec{name: validate.FieldPhone, label: "Phone Number"},
	)
	return v
}

// reset loads u into the form and clears every error. Cancel does the same.
func (v *profileView) reset(u domain.User) {
	v.data = validate.ProfileForm{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
	}
	v.form.focus = 0
	v.form.clearErrors()
}

func (v *profileView) startEdit() {
	v.editing = true
	v.form.clearErrors()
}

func updateUserCmd(ctx context.Context, sess *session.Store, patch domain.UserPatch) tea.Cmd {
	return func() tea.Msg {
		ok, err := sess.UpdateUser(ctx, patch)
		return profileResultMsg{ok: ok, err: err}
	}
}

func (m *Model) submitProfile() tea.Cmd {
	if !m.profile.form.submit() {
		return m.showToast(toastError, "Please fix the errors before saving")
	}
	m.busy = true
	t := m.profile.data.Trimmed()
	return updateUserCmd(m.ctx, m.sess, domain.UserPatch{
		FirstName: &t.FirstName,
		LastName:  &t.LastName,
		Email:     &t.Email,
		Phone:     &t.Phone,
	})
}

func (m *Model) cancelProfileEdit() {
	m.profile.editing = false
	if u, ok := m.sess.Current(); ok {
		m.profile.reset(u)
	}
}

func (m *Model) handleProfileResult(msg profileResultMsg) tea.Cmd {
	m.busy = false
	switch {
	case errors.Is(msg.err, session.ErrEmailTaken):
		return m.showToast(toastError, "Email already exists")
	case msg.err != nil:
		m.logger.Error("profile update failed", "error", msg.err)
		return m.showToast(toastError, "Failed to update profile. Please try again.")
	case !msg.ok:
		// The session ended underneath us.
		return m.navigate(RouteLogin)
	}

	m.profile.editing = false
	if u, ok := m.sess.Current(); ok {
		m.profile.reset(u)
	}
	return m.showToast(toastSuccess, "Profile updated successfully!")
}

func (v *profileView) view(st styles, u domain.User) string {
	var b strings.Builder
	b.WriteString(st.Title.Render("My Profile"))
	b.WriteString("\n")
	if v.editing {
		b.WriteString(st.Subtitle.Render("Edit your information"))
		b.WriteString("\n\n")
		b.WriteString(v.form.view(st))
		b.WriteString("\n")
		b.WriteString(st.Help.Render("tab next • enter save changes • esc cancel"))
		return st.Box.Render(b.String())
	}

	b.WriteString(st.Subtitle.Render("View your profile details"))
	b.WriteString("\n\n")
	b.WriteString(st.Value.Render(u.FullName()))
	b.WriteString("\n")
	b.WriteString(st.Subtitle.Render("User Account"))
	b.WriteString("\n\n")

	phone := u.Phone
	if phone == "" {
		phone = "Not provided"
	}
	rows := [][2]string{
		{"First Name", u.FirstName},
		{"Last Name", u.LastName},
		{"Email Address", u.Email},
		{"Phone Number", phone},
		{"Member Since", u.CreatedAt.Local().Format("January 2, 2006")},
	}
	for _, row := range rows {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			st.Label.Render(row[0]),
			st.Value.Render(row[1]),
		))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(st.Help.Render("e edit profile • ctrl+x logout"))
	return st.Box.Render(b.String())
}
