package registry

import (
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

type stubGame struct{ id string }

func (s *stubGame) ID() string                           { return s.id }
func (s *stubGame) Title() string                        { return "Stub " + s.id }
func (s *stubGame) Reset(core.RuntimeConfig)             {}
func (s *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s *stubGame) Render(*core.Screen)                  {}
func (s *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return &stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") || Exists("missing") {
		t.Error("Exists mismatch")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("Create returned %q", g.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create of unknown ID should fail")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "stub_b" && info.Title != "Stub stub_b" {
			t.Errorf("title = %q", info.Title)
		}
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List not sorted: %v", ids)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}
