// Package tui is the terminal front end of the user management system. It
// drives one session.Store through login, sign up and profile screens, with
// keystroke validation and toast notifications.
package tui

import (
	"context"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aussiebroadwan/ums/internal/ums/session"
	"github.com/aussiebroadwan/ums/internal/ums/store"
	"github.com/aussiebroadwan/ums/pkg/slogx"
)

// Route is a screen of the application.
type Route int

const (
	RouteLogin Route = iota
	RouteRegister
	RouteProfile
)

func (r Route) String() string {
	switch r {
	case RouteRegister:
		return "register"
	case RouteProfile:
		return "profile"
	default:
		return "login"
	}
}

type navigateMsg struct{ route Route }

type logoutResultMsg struct{ err error }

func navigateAfter(d time.Duration, r Route) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return navigateMsg{route: r} })
}

// Model is the root bubbletea model.
type Model struct {
	ctx      context.Context
	sess     *session.Store
	settings store.Settings
	logger   *slog.Logger

	route  Route
	theme  Theme
	styles styles

	login    *loginView
	register *registerView
	profile  *profileView

	toast    *toast
	toastSeq int
	busy     bool // a session call is in flight
	width    int
}

// NewModel builds the UI around sess. It opens on the login screen whether
// or not sess is logged in; the header offers the profile when it is.
func NewModel(ctx context.Context, sess *session.Store, theme Theme, opts ...Option) *Model {
	m := &Model{
		ctx:      ctx,
		sess:     sess,
		logger:   slogx.FromContext(ctx),
		theme:    theme,
		styles:   newStyles(theme),
		login:    newLoginView(),
		register: newRegisterView(),
		profile:  newProfileView(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.navigate(RouteLogin)
	return m
}

// Route reports the screen currently shown.
func (m *Model) Route() Route { return m.route }

// Theme reports the active palette.
func (m *Model) Theme() Theme { return m.theme }

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) loggedIn() bool {
	_, ok := m.sess.Current()
	return ok
}

func (m *Model) currentUserID() string {
	u, _ := m.sess.Current()
	return u.ID
}

// navigate switches screens. The profile is guarded: without a session it
// resolves to the login screen.
func (m *Model) navigate(r Route) tea.Cmd {
	u, ok := m.sess.Current()
	if r == RouteProfile && !ok {
		r = RouteLogin
	}

	switch r {
	case RouteLogin:
		m.login = newLoginView()
	case RouteRegister:
		m.register = newRegisterView()
	case RouteProfile:
		m.profile.editing = false
		m.profile.reset(u)
	}
	if r != m.route {
		m.logger.Debug("navigate", "from", m.route, "to", r)
	}
	m.route = r
	return nil
}

func logoutCmd(ctx context.Context, sess *session.Store) tea.Cmd {
	return func() tea.Msg {
		return logoutResultMsg{err: sess.Logout(ctx)}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case toastExpiredMsg:
		m.expireToast(msg.id)
		return m, nil

	case navigateMsg:
		return m, m.navigate(msg.route)

	case loginResultMsg:
		return m, m.handleLoginResult(msg)

	case registerResultMsg:
		return m, m.handleRegisterResult(msg)

	case profileResultMsg:
		return m, m.handleProfileResult(msg)

	case themeSavedMsg:
		if msg.err != nil {
			m.logger.Warn("failed to save theme", "error", msg.err)
		}
		return m, nil

	case logoutResultMsg:
		m.busy = false
		if msg.err != nil {
			// The in-memory session is already gone; only the stored slot
			// may linger until housekeeping removes it.
			m.logger.Warn("logout failed to clear stored session", "error", msg.err)
		}
		return m, m.navigate(RouteLogin)

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "ctrl+t":
		return m.toggleTheme()
	}

	if m.busy {
		return nil
	}

	loggedIn := m.loggedIn()
	switch msg.String() {
	case "ctrl+l":
		if !loggedIn {
			return m.navigate(RouteLogin)
		}
	case "ctrl+r":
		if !loggedIn {
			return m.navigate(RouteRegister)
		}
	case "ctrl+p":
		if loggedIn {
			return m.navigate(RouteProfile)
		}
	case "ctrl+x":
		if loggedIn {
			m.busy = true
			return logoutCmd(m.ctx, m.sess)
		}
	}

	switch m.route {
	case RouteLogin:
		if m.login.form.handleKey(msg) {
			return m.submitLogin()
		}
	case RouteRegister:
		if m.register.form.handleKey(msg) {
			return m.submitRegister()
		}
	case RouteProfile:
		if !m.profile.editing {
			if msg.String() == "e" {
				m.profile.startEdit()
			}
			return nil
		}
		if msg.Type == tea.KeyEsc {
			m.cancelProfileEdit()
			return nil
		}
		if m.profile.form.handleKey(msg) {
			return m.submitProfile()
		}
	}
	return nil
}

func (m *Model) View() string {
	var body string
	switch m.route {
	case RouteLogin:
		body = m.login.view(m.styles)
	case RouteRegister:
		body = m.register.view(m.styles)
	case RouteProfile:
		u, _ := m.sess.Current()
		body = m.profile.view(m.styles, u)
	}

	parts := []string{m.headerView(), "", body}
	if m.toast != nil {
		parts = append(parts, "", m.styles.Toast[m.toast.kind].Render(m.toast.text))
	}
	parts = append(parts, "", m.styles.Footer.Render("© User Management System • ctrl+t theme • ctrl+c quit"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) headerView() string {
	st := m.styles
	item := func(label string, r Route) string {
		if m.route == r {
			return st.NavActive.Render(label)
		}
		return st.NavItem.Render(label)
	}

	items := []string{st.Header.Render("UMS")}
	if u, ok := m.sess.Current(); ok {
		items = append(items,
			item("Profile (ctrl+p)", RouteProfile),
			st.NavItem.Render("Logout (ctrl+x)"),
			st.NavItem.Render(u.FirstName),
		)
	} else {
		items = append(items,
			item("Login (ctrl+l)", RouteLogin),
			item("Signup (ctrl+r)", RouteRegister),
		)
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, items...)
	if m.width > 0 {
		if pad := m.width - lipgloss.Width(header); pad > 2 {
			header += st.NavItem.Render(strings.Repeat(" ", pad-2))
		}
	}
	return header
}
