package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

func newTestModel(t *testing.T, rec *core.CueRecorder) Model {
	t.Helper()
	game := flappy.New(flappy.Options{Config: config.DefaultFlappyConfig()})
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1}
	m := NewModel(game, cfg, Options{Cues: rec, ScreenshotDir: t.TempDir()})
	m.Init()
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		key    string
		action core.Action
	}{
		{" ", core.ActionImpulse},
		{"up", core.ActionImpulse},
		{"w", core.ActionImpulse},
		{"r", core.ActionRestart},
		{"q", core.ActionQuit},
		{"esc", core.ActionQuit},
		{"ctrl+c", core.ActionQuit},
		{"x", core.ActionNone},
		{"ctrl+s", core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			if got := keys.MapKey(keyMsg(tc.key)); got != tc.action {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.key, got, tc.action)
			}
		})
	}
}

func TestKeyMapMouse(t *testing.T) {
	keys := DefaultKeyMap()

	click := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if got := keys.MapMouse(click); got != core.ActionImpulse {
		t.Errorf("left click = %v, expected Impulse", got)
	}

	release := tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	if got := keys.MapMouse(release); got != core.ActionNone {
		t.Errorf("release = %v, expected None", got)
	}
}

func TestModelFlapPlaysCue(t *testing.T) {
	rec := &core.CueRecorder{}
	m := newTestModel(t, rec)

	next, _ := m.Update(keyMsg(" "))
	next, cmd := next.Update(TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	m = next.(Model)
	if m.gameState.Phase != core.PhaseActive {
		t.Errorf("Phase = %v, expected active after the first flap", m.gameState.Phase)
	}
	if rec.Count(core.CueFlap) != 1 {
		t.Errorf("cues = %v, expected one flap", rec.Played)
	}
	if !m.inputFrame.Empty() {
		t.Error("input should be cleared after the tick")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, &core.CueRecorder{})

	next, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should return tea.Quit")
	}
	if next.(Model).View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelScreenshot(t *testing.T) {
	m := newTestModel(t, &core.CueRecorder{})

	path, err := m.saveScreenshot()
	if err != nil {
		t.Fatalf("saveScreenshot() failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Score: 0") {
		t.Error("screenshot should contain the rendered frame")
	}
	if !strings.HasPrefix(filepath.Base(path), "flappy_") {
		t.Errorf("screenshot name %q should start with the game id", path)
	}
}

func TestModelScreenshotKeyBinding(t *testing.T) {
	tests := []struct {
		name     string
		binding  []string // nil keeps the default
		press    string
		expected bool
	}{
		{"default ctrl+s", nil, "ctrl+s", true},
		{"rebound to p", []string{"p"}, "p", true},
		{"ctrl+s after rebinding", []string{"p"}, "ctrl+s", false},
		{"flap key", nil, " ", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestModel(t, &core.CueRecorder{})
			if tc.binding != nil {
				m.keys.Screenshot = key.NewBinding(key.WithKeys(tc.binding...))
			}

			m.Update(keyMsg(tc.press))

			entries, err := os.ReadDir(m.shotDir)
			if err != nil {
				t.Fatal(err)
			}
			if got := len(entries) == 1; got != tc.expected {
				t.Errorf("screenshot written = %v, expected %v (%d files)", got, tc.expected, len(entries))
			}
		})
	}
}

func TestModelViewHasHelp(t *testing.T) {
	m := newTestModel(t, &core.CueRecorder{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	view := next.View()
	if !strings.Contains(view, "flap") || !strings.Contains(view, "quit") {
		t.Error("view should end with the key help line")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "hi", core.ColorRed)
	s.DrawText(3, 1, "there")

	out := RenderScreen(s)
	if !strings.Contains(out, "hi") || !strings.Contains(out, "there") {
		t.Errorf("rendered output lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("rendered output should have 2 rows, got %q", out)
	}
}
