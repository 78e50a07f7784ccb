package config

import "testing"

func TestDefaultLayoutMatchesCompiledDefaults(t *testing.T) {
	l, err := ParseLayout(defaultLayout)
	if err != nil {
		t.Fatalf("embedded layout should parse: %v", err)
	}
	if l.RotationSpeed == nil || *l.RotationSpeed != -1.0 {
		t.Fatalf("expected rotation speed -1.0, got %v", l.RotationSpeed)
	}
	if len(l.Dummies) != 2 {
		t.Fatalf("expected 2 dummies, got %d", len(l.Dummies))
	}
	if l.Dummies[0].Translation != [2]float64{3, 0} || l.Dummies[0].Size != [2]float64{0.5, 0.5} {
		t.Fatalf("unexpected first dummy: %+v", l.Dummies[0])
	}
	if l.Dummies[1].Translation != [2]float64{-3, 1} || l.Dummies[1].Size != [2]float64{1, 1} {
		t.Fatalf("unexpected second dummy: %+v", l.Dummies[1])
	}

	if Camera.Scale != Min(5.0) {
		t.Fatalf("expected camera scale Min(5), got %+v", Camera.Scale)
	}
	if len(Dummy.Spawns) != 2 {
		t.Fatalf("expected 2 spawns in global config, got %d", len(Dummy.Spawns))
	}
}

func TestParseLayoutErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"bad_yaml", "dummies: [oops"},
		{"unknown_mode", "camera: {mode: diagonal, value: 5}"},
		{"zero_camera_value", "camera: {mode: min, value: 0}"},
		{"negative_size", "dummies:\n  - translation: [0, 0]\n    size: [-1, 1]"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := ParseLayout([]byte(c.doc)); err == nil {
				t.Fatalf("expected error for %q", c.doc)
			}
		})
	}
}

func TestLayoutApplyKeepsAbsentSections(t *testing.T) {
	savedCamera, savedDummy := Camera, Dummy
	t.Cleanup(func() {
		Camera, Dummy = savedCamera, savedDummy
	})

	l, err := ParseLayout([]byte("camera: {mode: Horizontal, value: 12}"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l.Apply()

	if Camera.Scale != (WorldCameraScale{Mode: ScaleHorizontal, Value: 12}) {
		t.Fatalf("camera scale not applied: %+v", Camera.Scale)
	}
	if Dummy.RotationSpeed != savedDummy.RotationSpeed {
		t.Fatalf("rotation speed should be untouched, got %v", Dummy.RotationSpeed)
	}
	if len(Dummy.Spawns) != len(savedDummy.Spawns) {
		t.Fatalf("spawns should be untouched, got %d", len(Dummy.Spawns))
	}
}
