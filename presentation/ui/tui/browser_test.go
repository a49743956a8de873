package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"ifaces/domain/ifflag"
	"ifaces/domain/netdev"
)

type mockService struct {
	interfaces []netdev.Interface
	listErr    error
	upCalls    []string
	downCalls  []string
}

func (m *mockService) List() ([]netdev.Interface, error) {
	return m.interfaces, m.listErr
}

func (m *mockService) Up(name string) error {
	m.upCalls = append(m.upCalls, name)
	return nil
}

func (m *mockService) Down(name string) error {
	m.downCalls = append(m.downCalls, name)
	return nil
}

func testInterfaces() []netdev.Interface {
	return []netdev.Interface{
		{Name: "lo", MTU: 65536, Flags: ifflag.Up.With(ifflag.Loopback)},
		{Name: "eth0", MTU: 1500, Flags: ifflag.Broadcast},
	}
}

func loadedModel(svc *mockService) browserModel {
	m := newBrowserModel(svc)
	next, _ := m.Update(interfacesLoadedMsg{interfaces: svc.interfaces})
	return next.(browserModel)
}

func TestBrowser_LoadsInterfaces(t *testing.T) {
	svc := &mockService{interfaces: testInterfaces()}
	m := newBrowserModel(svc)

	msg := m.Init()()
	loaded, ok := msg.(interfacesLoadedMsg)
	if !ok {
		t.Fatalf("Init cmd produced %T, want interfacesLoadedMsg", msg)
	}
	if len(loaded.interfaces) != 2 {
		t.Errorf("loaded %d interfaces, want 2", len(loaded.interfaces))
	}
}

func TestBrowser_CursorMovement(t *testing.T) {
	m := loadedModel(&mockService{interfaces: testInterfaces()})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(browserModel)
	if m.cursor != 1 {
		t.Errorf("cursor = %d after down, want 1", m.cursor)
	}

	// at the last row, down must not run past the list
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(browserModel)
	if m.cursor != 1 {
		t.Errorf("cursor = %d, must stay at last row", m.cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(browserModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up, want 0", m.cursor)
	}
}

func TestBrowser_ToggleCallsService(t *testing.T) {
	svc := &mockService{interfaces: testInterfaces()}
	m := loadedModel(svc)

	// lo is up: enter must bring it down
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter must produce a toggle command")
	}
	cmd()
	if len(svc.downCalls) != 1 || svc.downCalls[0] != "lo" {
		t.Errorf("down calls = %v, want [lo]", svc.downCalls)
	}

	// eth0 is down: enter must bring it up
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(browserModel)
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	cmd()
	if len(svc.upCalls) != 1 || svc.upCalls[0] != "eth0" {
		t.Errorf("up calls = %v, want [eth0]", svc.upCalls)
	}
}

func TestBrowser_ConstantsScreen(t *testing.T) {
	m := loadedModel(&mockService{interfaces: testInterfaces()})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(browserModel)

	view := m.View()
	if !strings.Contains(view, "SIOCGIFFLAGS") || !strings.Contains(view, "SIOCSIFFLAGS") {
		t.Errorf("constants view missing table entries:\n%s", view)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(browserModel)
	if !strings.Contains(m.View(), "network interfaces") {
		t.Error("tab must return to the interfaces screen")
	}
}

func TestBrowser_ViewShowsInterfaces(t *testing.T) {
	m := loadedModel(&mockService{interfaces: testInterfaces()})

	view := m.View()
	for _, want := range []string{"> lo", "eth0", "up", "down"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestBrowser_LoadErrorShownInStatus(t *testing.T) {
	m := newBrowserModel(&mockService{})

	next, _ := m.Update(interfacesLoadedMsg{err: errors.New("netlink unavailable")})
	m = next.(browserModel)
	if !strings.Contains(m.View(), "netlink unavailable") {
		t.Error("load error must be rendered in the status line")
	}
}

func TestBrowser_QuitKey(t *testing.T) {
	m := loadedModel(&mockService{interfaces: testInterfaces()})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q must produce a command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("q produced %v, want tea.Quit", msg)
	}
}
