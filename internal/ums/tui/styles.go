package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme selects one of the two palettes.
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// ParseTheme maps "dark" to ThemeDark and anything else to ThemeLight.
func ParseTheme(s string) Theme {
	if s == "dark" {
		return ThemeDark
	}
	return ThemeLight
}

type palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Muted     lipgloss.Color
	Text      lipgloss.Color
	Bg        lipgloss.Color
}

var palettes = map[Theme]palette{
	ThemeLight: {
		Primary:   lipgloss.Color("#667EEA"),
		Secondary: lipgloss.Color("#764BA2"),
		Accent:    lipgloss.Color("#5A67D8"),
		Success:   lipgloss.Color("#198754"),
		Warning:   lipgloss.Color("#B7791F"),
		Error:     lipgloss.Color("#DC3545"),
		Muted:     lipgloss.Color("#6C757D"),
		Text:      lipgloss.Color("#212529"),
		Bg:        lipgloss.Color("#F8F9FA"),
	},
	ThemeDark: {
		Primary:   lipgloss.Color("#8FA2FF"),
		Secondary: lipgloss.Color("#B08CDB"),
		Accent:    lipgloss.Color("#A3B4FF"),
		Success:   lipgloss.Color("#00D9A5"),
		Warning:   lipgloss.Color("#FFB84D"),
		Error:     lipgloss.Color("#FF5A87"),
		Muted:     lipgloss.Color("#8A96A3"),
		Text:      lipgloss.Color("#FFFFFF"),
		Bg:        lipgloss.Color("#1A1A1A"),
	},
}

type styles struct {
	Header       lipgloss.Style
	NavItem      lipgloss.Style
	NavActive    lipgloss.Style
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Box          lipgloss.Style
	Label        lipgloss.Style
	Input        lipgloss.Style
	FocusedInput lipgloss.Style
	Value        lipgloss.Style
	FieldError   lipgloss.Style
	Help         lipgloss.Style
	Footer       lipgloss.Style
	Toast        map[toastKind]lipgloss.Style
}

func newStyles(t Theme) styles {
	p := palettes[t]
	toastBase := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Padding(0, 2).
		Bold(true)

	return styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(p.Primary).
			Padding(0, 2).
			Bold(true),
		NavItem: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(p.Primary).
			Padding(0, 1),
		NavActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(p.Secondary).
			Padding(0, 1).
			Underline(true),
		Title: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.Muted),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(1, 3),
		Label: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Width(24),
		Input: lipgloss.NewStyle().
			Foreground(p.Text).
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.Muted).
			Padding(0, 1).
			Width(40),
		FocusedInput: lipgloss.NewStyle().
			Foreground(p.Text).
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.Accent).
			Padding(0, 1).
			Width(40),
		Value: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true),
		FieldError: lipgloss.NewStyle().
			Foreground(p.Error).
			PaddingLeft(24),
		Help: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),
		Footer: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 2),
		Toast: map[toastKind]lipgloss.Style{
			toastSuccess: toastBase.Background(p.Success),
			toastError:   toastBase.Background(p.Error),
			toastWarning: toastBase.Background(p.Warning),
		},
	}
}
