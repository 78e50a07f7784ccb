package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed dummies.yaml
var defaultLayout []byte

// Layout is the YAML form of the dummy scene setup
type Layout struct {
	RotationSpeed *float64      `yaml:"rotation_speed"`
	Camera        *LayoutCamera `yaml:"camera"`
	Dummies       []LayoutDummy `yaml:"dummies"`
}

type LayoutCamera struct {
	Mode  string  `yaml:"mode"`
	Value float64 `yaml:"value"`
}

type LayoutDummy struct {
	Translation [2]float64 `yaml:"translation"`
	Size        [2]float64 `yaml:"size"`
}

var scaleModes = map[string]ScaleMode{
	"min":        ScaleMin,
	"max":        ScaleMax,
	"horizontal": ScaleHorizontal,
	"vertical":   ScaleVertical,
	"fixed":      ScaleFixed,
}

// ParseLayout decodes and validates a layout document.
func ParseLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	if l.Camera != nil {
		if _, ok := scaleModes[strings.ToLower(l.Camera.Mode)]; !ok {
			return nil, fmt.Errorf("parse layout: unknown camera mode %q", l.Camera.Mode)
		}
		if l.Camera.Value <= 0 {
			return nil, fmt.Errorf("parse layout: camera value must be positive, got %v", l.Camera.Value)
		}
	}
	for i, d := range l.Dummies {
		if d.Size[0] <= 0 || d.Size[1] <= 0 {
			return nil, fmt.Errorf("parse layout: dummy %d has non-positive size %v", i, d.Size)
		}
	}
	return &l, nil
}

// LoadLayout reads a layout file from disk.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout %s: %w", path, err)
	}
	return ParseLayout(data)
}

// Apply copies the fields present in the layout onto the global config.
// Absent sections keep their current values.
func (l *Layout) Apply() {
	if l.RotationSpeed != nil {
		Dummy.RotationSpeed = *l.RotationSpeed
	}
	if l.Camera != nil {
		Camera.Scale = WorldCameraScale{
			Mode:  scaleModes[strings.ToLower(l.Camera.Mode)],
			Value: l.Camera.Value,
		}
	}
	if len(l.Dummies) > 0 {
		spawns := make([]DummySpawn, 0, len(l.Dummies))
		for _, d := range l.Dummies {
			spawns = append(spawns, DummySpawn{
				TranslationX: d.Translation[0],
				TranslationY: d.Translation[1],
				Width:        d.Size[0],
				Height:       d.Size[1],
			})
		}
		Dummy.Spawns = spawns
	}
}
