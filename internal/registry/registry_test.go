package registry

import (
	"testing"

	"github.com/vovakirdan/catcher-arcade/internal/core"
)

type stubGame struct{ state core.GameState }

func (s *stubGame) ID() string { return "stub" }
func (s *stubGame) Title() string { return "Stub" }
func (s *stubGame) Reset(core.RuntimeConfig) { s.state = core.GameState{Lives: 3, Level: 1} }
func (s *stubGame) Render(*core.Screen) {}
func (s *stubGame) State() core.GameState { return s.state }
func (s *stubGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{State: s.state}
}

func TestRegisterAndCreate(t *testing.T) {
	Register(GameInfo{ID: "stub_a", Title: "Stub A"}, func() Game { return &stubGame{} })
	Register(GameInfo{ID: "stub_b"}, func() Game { return &stubGame{} })
	t.Cleanup(func() {
		unregister("stub_a")
		unregister("stub_b")
	})

	if !Exists("stub_a") {
		t.Fatal("stub_a should be registered")
	}

	info, ok := Lookup("stub_b")
	if !ok {
		t.Fatal("Lookup(stub_b) failed")
	}
	if info.Title != "stub_b" {
		t.Errorf("empty title should default to the id, got %q", info.Title)
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	g.Reset(core.DefaultConfig())
	if g.State().Lives != 3 {
		t.Errorf("Lives = %d, expected 3", g.State().Lives)
	}

	list := List()
	var ids []string
	for _, gi := range list {
		if gi.ID == "stub_a" || gi.ID == "stub_b" {
			ids = append(ids, gi.ID)
		}
	}
	if len(ids) != 2 || ids[0] != "stub_a" || ids[1] != "stub_b" {
		t.Errorf("List() order = %v, expected [stub_a stub_b]", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist"); err == nil {
		t.Error("Create() should fail for an unknown id")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(GameInfo{ID: "stub_dup"}, func() Game { return &stubGame{} })
	t.Cleanup(func() { unregister("stub_dup") })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(GameInfo{ID: "stub_dup"}, func() Game { return &stubGame{} })
}
