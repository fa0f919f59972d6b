package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestSession() SessionModel {
	return NewSessionModel(nil, testCfg(), "u", MonochromeTheme())
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", next)
	}
	return sm, cmd
}

func TestSessionGameAndBack(t *testing.T) {
	s, cmd := sessionUpdate(t, newTestSession(), keyEnter)
	if s.screen != screenGame || cmd == nil {
		t.Fatalf("enter should start a game (screen %d)", s.screen)
	}
	oldTick := s.gameModel.tick()

	s, _ = sessionUpdate(t, s, runeKey('b'))
	if s.screen != screenMenu || s.quitting {
		t.Fatalf("b should return to the menu (screen %d, quitting %v)", s.screen, s.quitting)
	}

	// A tick from the finished game must not restart a loop
	s, cmd = sessionUpdate(t, s, oldTick)
	if cmd != nil {
		t.Error("stale tick in the menu scheduled a command")
	}

	s, _ = sessionUpdate(t, s, keyEnter)
	if s.screen != screenGame {
		t.Fatal("second game did not start")
	}
	if _, cmd = sessionUpdate(t, s, oldTick); cmd != nil {
		t.Error("stale tick drove the new game")
	}
	if _, cmd = sessionUpdate(t, s, s.gameModel.tick()); cmd == nil {
		t.Error("current tick should schedule the next one")
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	s, _ := sessionUpdate(t, newTestSession(), tea.KeyMsg{Type: tea.KeyTab})
	if s.screen != screenScores {
		t.Fatalf("tab should open the scoreboard (screen %d)", s.screen)
	}

	s, _ = sessionUpdate(t, s, keyEsc)
	if s.screen != screenMenu || s.quitting {
		t.Errorf("esc should return to the menu (screen %d)", s.screen)
	}
}

func TestSessionQuitEndsSession(t *testing.T) {
	s, _ := sessionUpdate(t, newTestSession(), keyEnter)
	s, cmd := sessionUpdate(t, s, runeKey('q'))
	if !s.quitting || cmd == nil {
		t.Error("q in a game should end the session")
	}
	if s.View() != "" {
		t.Error("View should be empty after quitting")
	}

	m, _ := sessionUpdate(t, newTestSession(), runeKey('q'))
	if !m.quitting {
		t.Error("q in the menu should end the session")
	}
}

func TestSessionResizeReachesGame(t *testing.T) {
	s, _ := sessionUpdate(t, newTestSession(), tea.WindowSizeMsg{Width: 100, Height: 40})
	s, _ = sessionUpdate(t, s, keyEnter)
	if s.gameModel.config.ScreenW != 100 || s.gameModel.config.ScreenH != 40 {
		t.Errorf("game config = %dx%d, want 100x40", s.gameModel.config.ScreenW, s.gameModel.config.ScreenH)
	}
}
