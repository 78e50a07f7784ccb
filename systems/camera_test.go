package systems

import (
	"testing"

	"github.com/automoto/burgerspin/components"
	cfg "github.com/automoto/burgerspin/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestPixelsPerUnit(t *testing.T) {
	cases := []struct {
		name  string
		scale cfg.WorldCameraScale
		want  float64
	}{
		{"min", cfg.Min(5), 120},
		{"max", cfg.WorldCameraScale{Mode: cfg.ScaleMax, Value: 10}, 80},
		{"horizontal", cfg.WorldCameraScale{Mode: cfg.ScaleHorizontal, Value: 4}, 200},
		{"vertical", cfg.WorldCameraScale{Mode: cfg.ScaleVertical, Value: 4}, 150},
		{"fixed", cfg.WorldCameraScale{Mode: cfg.ScaleFixed, Value: 32}, 32},
		{"invalid_value", cfg.WorldCameraScale{Mode: cfg.ScaleMin, Value: 0}, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := PixelsPerUnit(c.scale, 800, 600); !almostEqual(got, c.want) {
				t.Fatalf("PixelsPerUnit = %v, want %v", got, c.want)
			}
		})
	}
}

func TestWorldToScreen(t *testing.T) {
	camera := &components.CameraData{Scale: cfg.Min(5), Zoom: 1}

	x, y := WorldToScreen(camera, dmath.NewVec2(0, 0), 800, 600)
	if x != 400 || y != 300 {
		t.Fatalf("origin should map to screen centre, got (%v, %v)", x, y)
	}

	// 120 pixels per unit, Y flipped
	x, y = WorldToScreen(camera, dmath.NewVec2(1, 1), 800, 600)
	if !almostEqual(x, 520) || !almostEqual(y, 180) {
		t.Fatalf("(1,1) mapped to (%v, %v), want (520, 180)", x, y)
	}

	camera.Position = dmath.NewVec2(1, 1)
	x, y = WorldToScreen(camera, dmath.NewVec2(1, 1), 800, 600)
	if x != 400 || y != 300 {
		t.Fatalf("camera position should map to screen centre, got (%v, %v)", x, y)
	}
}

func TestAdvanceCameraIntro(t *testing.T) {
	camera := &components.CameraData{
		Scale: cfg.Min(5),
		Zoom:  0.5,
		Intro: gween.New(0.5, 1, 1, ease.Linear),
	}

	AdvanceCameraIntro(camera, 0.5)
	if !almostEqual(camera.Zoom, 0.75) {
		t.Fatalf("zoom halfway = %v, want 0.75", camera.Zoom)
	}

	AdvanceCameraIntro(camera, 1)
	if camera.Zoom != 1 || camera.Intro != nil {
		t.Fatalf("intro should finish at zoom 1, got zoom %v intro %v", camera.Zoom, camera.Intro)
	}

	// Finished intro is a no-op
	AdvanceCameraIntro(camera, 1)
	if camera.Zoom != 1 {
		t.Fatalf("zoom changed after intro finished: %v", camera.Zoom)
	}
}
