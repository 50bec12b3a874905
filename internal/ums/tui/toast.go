package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const toastTTL = 3 * time.Second

type toastKind int

const (
	toastSuccess toastKind = iota
	toastError
	toastWarning
)

type toast struct {
	id   int
	kind toastKind
	text string
}

// toastExpiredMsg dismisses the toast with the same id. A newer toast has a
// newer id, so an old timer never hides it.
type toastExpiredMsg struct{ id int }

func (m *Model) showToast(kind toastKind, text string) tea.Cmd {
	m.toastSeq++
	m.toast = &toast{id: m.toastSeq, kind: kind, text: text}
	id := m.toastSeq
	return tea.Tick(toastTTL, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (m *Model) expireToast(id int) {
	if m.toast != nil && m.toast.id == id {
		m.toast = nil
	}
}
