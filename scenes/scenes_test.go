package scenes

import (
	"errors"
	"testing"

	"github.com/automoto/burgerspin/components"
	cfg "github.com/automoto/burgerspin/config"
	"github.com/automoto/burgerspin/systems"
	"github.com/automoto/burgerspin/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

type recordingChanger struct {
	scenes []interface{}
}

func (r *recordingChanger) ChangeScene(scene interface{}) {
	r.scenes = append(r.scenes, scene)
}

func advance(e *ecs.ECS, dt float64) {
	entry, _ := components.Clock.First(e.World)
	systems.AdvanceClock(components.Clock.Get(entry), dt)
}

func checkSpawnedPair(t *testing.T, e *ecs.ECS) {
	t.Helper()

	type placed struct {
		translation, size math.Vec2
	}
	var got []placed
	tags.Dummy.Each(e.World, func(entry *donburi.Entry) {
		got = append(got, placed{
			translation: components.Transform.Get(entry).Translation,
			size:        components.Model.Get(entry).Size,
		})
	})

	want := []placed{
		{math.NewVec2(3, 0), math.NewVec2(0.5, 0.5)},
		{math.NewVec2(-3, 1), math.NewVec2(1, 1)},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d dummies, got %d", len(want), len(got))
	}
	for _, w := range want {
		found := false
		for _, g := range got {
			if g == w {
				found = true
			}
		}
		if !found {
			t.Fatalf("missing dummy %+v in %+v", w, got)
		}
	}
}

func TestSpawnDummiesThenRotate(t *testing.T) {
	e := newSceneECS()
	ctx := NewContext(e)
	entries := SpawnDummies(ctx)
	checkSpawnedPair(t, e)

	advance(e, 1.0)
	if ctx.FrameTime() != 1.0 {
		t.Fatalf("context frame time = %v", ctx.FrameTime())
	}
	systems.UpdateDummies(e)

	for _, entry := range entries {
		if got := components.Transform.Get(entry).Angle; got != -1.0 {
			t.Fatalf("angle = %v, want -1", got)
		}
	}
	checkSpawnedPair(t, e)
}

func TestPopulateDirectMatchesContextSetup(t *testing.T) {
	e := newSceneECS()
	PopulateDirect(e)
	checkSpawnedPair(t, e)

	tags.Dummy.Each(e.World, func(entry *donburi.Entry) {
		model := components.Model.Get(entry)
		if model.Polygon == nil || len(model.Polygon.Points) == 0 {
			t.Fatalf("dummy without a polygon: %+v", model)
		}
	})
}

func TestContextSceneState(t *testing.T) {
	ctx := NewContext(newSceneECS())
	if ctx.SceneState() != nil {
		t.Fatalf("no scene state expected before insert")
	}
	ctx.InsertSceneState(components.ResourcesData{})
	if ctx.SceneState() == nil {
		t.Fatalf("scene state expected after insert")
	}
}

func TestContextSetCameraScale(t *testing.T) {
	e := newSceneECS()
	scale := cfg.WorldCameraScale{Mode: cfg.ScaleVertical, Value: 9}
	NewContext(e).SetCameraScale(scale)

	entry, ok := components.Camera.First(e.World)
	if !ok {
		t.Fatalf("scene should have a camera")
	}
	if components.Camera.Get(entry).Scale != scale {
		t.Fatalf("camera scale not updated")
	}
}

func TestSetupErrorStopsScene(t *testing.T) {
	boom := errors.New("boom")
	scene := NewSceneWithSetup(nil, func(ctx *Context) error {
		return boom
	})

	err := scene.Update()
	if !errors.Is(err, boom) {
		t.Fatalf("expected setup error, got %v", err)
	}
	if err := scene.Update(); !errors.Is(err, boom) {
		t.Fatalf("setup error should be sticky, got %v", err)
	}
}

func TestHandleRequests(t *testing.T) {
	e := newSceneECS()
	changer := &recordingChanger{}
	next := func() interface{} { return "next" }

	if err := handleRequests(e, changer, next); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(changer.scenes) != 0 {
		t.Fatalf("no scene change expected")
	}

	systems.GetOrCreateSettings(e).SwitchRequested = true
	if err := handleRequests(e, changer, next); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(changer.scenes) != 1 || changer.scenes[0] != "next" {
		t.Fatalf("expected one scene change, got %v", changer.scenes)
	}
	if systems.GetOrCreateSettings(e).SwitchRequested {
		t.Fatalf("switch request should be cleared")
	}

	systems.GetOrCreateSettings(e).QuitRequested = true
	if err := handleRequests(e, changer, next); !IsTermination(err) {
		t.Fatalf("expected termination, got %v", err)
	}
}

// tick feeds one frame of polled actions through the settings and request handling.
func tick(e *ecs.ECS, changer SceneChanger, held ...cfg.ActionID) error {
	var pressed [cfg.ActionCount]bool
	for _, id := range held {
		pressed[id] = true
	}
	systems.ApplyPolledInput(e, pressed)
	systems.ApplyActions(systems.GetOrCreateSettings(e), systems.GetOrCreateInput(e))
	return handleRequests(e, changer, func() interface{} { return "next" })
}

func TestHeldSwitchKeySwitchesOnce(t *testing.T) {
	t.Cleanup(func() { systems.RememberSettings(&components.SettingsData{Debug: cfg.Debug.ShowHUD}) })

	first := newSceneECS()
	changer := &recordingChanger{}
	for _, held := range [][]cfg.ActionID{nil, {cfg.ActionSwitchScene}} {
		if err := tick(first, changer, held...); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if len(changer.scenes) != 1 {
		t.Fatalf("expected one switch from the first scene, got %d", len(changer.scenes))
	}

	// The key is still down when the next scene starts polling
	second := newSceneECS()
	for i := 0; i < 5; i++ {
		if err := tick(second, changer, cfg.ActionSwitchScene); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if len(changer.scenes) != 1 {
		t.Fatalf("held key switched again: %d switches", len(changer.scenes))
	}

	tick(second, changer)
	tick(second, changer, cfg.ActionSwitchScene)
	if len(changer.scenes) != 2 {
		t.Fatalf("a new press should switch, got %d switches", len(changer.scenes))
	}
}

func TestSwitchCarriesSettings(t *testing.T) {
	t.Cleanup(func() { systems.RememberSettings(&components.SettingsData{Debug: cfg.Debug.ShowHUD}) })

	tests := []struct {
		name string
		set  components.SettingsData
	}{
		{"paused", components.SettingsData{Paused: true}},
		{"debug", components.SettingsData{Debug: true}},
		{"all", components.SettingsData{Debug: true, Paused: true, Fullscreen: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := newSceneECS()
			settings := systems.GetOrCreateSettings(first)
			*settings = tt.set
			settings.SwitchRequested = true
			if err := handleRequests(first, &recordingChanger{}, func() interface{} { return nil }); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got := *systems.GetOrCreateSettings(newSceneECS())
			if got != tt.set {
				t.Fatalf("next scene settings = %+v, want %+v", got, tt.set)
			}
		})
	}
}
