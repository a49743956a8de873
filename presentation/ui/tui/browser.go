// Package tui is an interactive browser over the system's network
// interfaces and the ioctl constant table.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"ifaces/domain/ifflag"
	"ifaces/domain/netdev"
	"ifaces/infrastructure/ioctlconst"
)

// Service is the subset of the application service used by the browser.
// Extracted as an interface for testability.
type Service interface {
	List() ([]netdev.Interface, error)
	Up(name string) error
	Down(name string) error
}

type browserKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Constants key.Binding
	Refresh   key.Binding
	Quit      key.Binding
}

func defaultBrowserKeyMap() browserKeyMap {
	return browserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "toggle up/down"),
		),
		Constants: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "constants"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k browserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Constants, k.Refresh, k.Quit}
}

func (k browserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Toggle, k.Constants, k.Refresh, k.Quit},
	}
}

type browserScreen int

const (
	browserScreenInterfaces browserScreen = iota
	browserScreenConstants
)

type interfacesLoadedMsg struct {
	interfaces []netdev.Interface
	err        error
}

type toggleDoneMsg struct {
	err error
}

type browserModel struct {
	service    Service
	keys       browserKeyMap
	screen     browserScreen
	interfaces []netdev.Interface
	cursor     int
	status     string
}

func newBrowserModel(service Service) browserModel {
	return browserModel{
		service: service,
		keys:    defaultBrowserKeyMap(),
		screen:  browserScreenInterfaces,
	}
}

func (m browserModel) Init() tea.Cmd {
	return m.loadInterfaces
}

func (m browserModel) loadInterfaces() tea.Msg {
	interfaces, err := m.service.List()
	return interfacesLoadedMsg{interfaces: interfaces, err: err}
}

func (m browserModel) toggleSelected() tea.Cmd {
	if m.cursor >= len(m.interfaces) {
		return nil
	}
	selected := m.interfaces[m.cursor]
	return func() tea.Msg {
		var err error
		if selected.Flags.Has(ifflag.Up) {
			err = m.service.Down(selected.Name)
		} else {
			err = m.service.Up(selected.Name)
		}
		return toggleDoneMsg{err: err}
	}
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case interfacesLoadedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.interfaces = msg.interfaces
		if m.cursor >= len(m.interfaces) {
			m.cursor = 0
		}
		m.status = ""
		return m, nil

	case toggleDoneMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		return m, m.loadInterfaces

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.interfaces)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			if m.screen == browserScreenInterfaces {
				return m, m.toggleSelected()
			}
		case key.Matches(msg, m.keys.Constants):
			if m.screen == browserScreenInterfaces {
				m.screen = browserScreenConstants
			} else {
				m.screen = browserScreenInterfaces
			}
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadInterfaces
		}
	}
	return m, nil
}

func (m browserModel) View() string {
	var b strings.Builder

	switch m.screen {
	case browserScreenConstants:
		b.WriteString("ioctl request codes\n\n")
		for _, e := range ioctlconst.Table() {
			fmt.Fprintf(&b, "  %-14s 0x%x\n", e.Name, e.Value)
		}
	default:
		b.WriteString("network interfaces\n\n")
		if len(m.interfaces) == 0 {
			b.WriteString("  (none)\n")
		}
		for i, iface := range m.interfaces {
			cursor := "  "
			if i == m.cursor {
				cursor = "> "
			}
			state := "down"
			if iface.Flags.Has(ifflag.Up) {
				state = "up"
			}
			fmt.Fprintf(&b, "%s%-12s %-5s mtu %-6d %s\n", cursor, iface.Name, state, iface.MTU, iface.Flags)
		}
	}

	if m.status != "" {
		fmt.Fprintf(&b, "\n%s\n", m.status)
	}

	b.WriteString("\n")
	for i, binding := range m.keys.ShortHelp() {
		if i > 0 {
			b.WriteString("  ")
		}
		h := binding.Help()
		fmt.Fprintf(&b, "%s: %s", h.Key, h.Desc)
	}
	b.WriteString("\n")
	return b.String()
}

// Run starts the browser and blocks until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, service Service) error {
	program := tea.NewProgram(newBrowserModel(service), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
