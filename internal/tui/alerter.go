package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// ChannelAlerter hands alerts from handler goroutines to the UI loop.
// After Close, alerts nobody will read are dropped instead of blocking.
type ChannelAlerter struct {
	ch   chan string
	done chan struct{}
	once sync.Once
}

func NewChannelAlerter() *ChannelAlerter {
	return &ChannelAlerter{
		ch:   make(chan string, 8),
		done: make(chan struct{}),
	}
}

func (a *ChannelAlerter) Alert(message string) {
	select {
	case a.ch <- message:
	case <-a.done:
	}
}

func (a *ChannelAlerter) Close() {
	a.once.Do(func() { close(a.done) })
}

type alertMsg string

func waitForAlert(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		return alertMsg(<-ch)
	}
}
