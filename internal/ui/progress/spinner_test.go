package progress

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestSpinner_UpdateMessageBeforeStart(t *testing.T) {
	t.Parallel()

	s := NewSpinner("Loading orders.csv")
	s.UpdateMessage("Reading rows")
	if s.lastMsg != "Reading rows" {
		t.Errorf("lastMsg = %q, want %q", s.lastMsg, "Reading rows")
	}
}

func TestSpinner_StopBeforeStart(t *testing.T) {
	t.Parallel()

	// Must not block or panic
	NewSpinner("Loading").Stop()
}

func TestSpinnerModel_Update(t *testing.T) {
	t.Parallel()

	m := NewSpinner("Loading").model()

	updated, cmd := m.Update(messageUpdate("Reading rows"))
	um := updated.(spinnerModel)
	if um.message != "Reading rows" {
		t.Errorf("message = %q, want %q", um.message, "Reading rows")
	}
	if cmd == nil {
		t.Error("expected a cmd waiting for the next message")
	}

	if _, cmd := um.Update(tea.KeyPressMsg{Code: 'x', Text: "x"}); cmd != nil {
		t.Error("plain keys should be ignored")
	}
	if _, cmd := um.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}); cmd == nil {
		t.Error("ctrl+c should quit")
	}
}

func TestSpinnerModel_View(t *testing.T) {
	t.Parallel()

	m := NewSpinner("Loading orders.csv").model()
	if got := m.View().Content; !strings.Contains(got, "Loading orders.csv") {
		t.Errorf("View().Content = %q, want message", got)
	}

	m.message = ""
	if got := m.View().Content; got != "" {
		t.Errorf("View().Content = %q, want empty", got)
	}
}

func TestSpinnerModel_ClosedChannelQuits(t *testing.T) {
	t.Parallel()

	m := NewSpinner("Loading").model()
	close(m.msgChan)
	if msg := m.waitForMessage()(); msg != tea.Quit() {
		t.Errorf("waitForMessage() = %#v, want QuitMsg", msg)
	}
}
