package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aussiebroadwan/ums/internal/ums/store"
	"github.com/aussiebroadwan/ums/pkg/slogx"
)

const themeSettingKey = "tui.theme"

type themeSavedMsg struct{ err error }

// Option customises a Model.
type Option func(*Model)

// WithSettings makes theme changes durable in settings.
func WithSettings(settings store.Settings) Option {
	return func(m *Model) { m.settings = settings }
}

// LoadTheme returns the last saved palette, or fallback when none was saved.
func LoadTheme(ctx context.Context, settings store.Settings, fallback Theme) Theme {
	v, err := settings.GetSetting(ctx, themeSettingKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			slogx.FromContext(ctx).Warn("failed to load saved theme", "error", err)
		}
		return fallback
	}
	return ParseTheme(v)
}

func saveThemeCmd(ctx context.Context, settings store.Settings, theme Theme) tea.Cmd {
	return func() tea.Msg {
		return themeSavedMsg{err: settings.PutSetting(ctx, themeSettingKey, theme.String())}
	}
}

func (m *Model) toggleTheme() tea.Cmd {
	if m.theme == ThemeDark {
		m.theme = ThemeLight
	} else {
		m.theme = ThemeDark
	}
	m.styles = newStyles(m.theme)

	if m.settings == nil {
		return nil
	}
	return saveThemeCmd(m.ctx, m.settings, m.theme)
}
