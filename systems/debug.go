package systems

import (
	"fmt"

	"github.com/automoto/burgerspin/components"
	cfg "github.com/automoto/burgerspin/config"
	"github.com/automoto/burgerspin/fonts"
	"github.com/automoto/burgerspin/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug shows timing, per-dummy transforms and model outlines.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug || !fonts.Loaded(fonts.Debug) {
		return
	}

	lines := []string{
		fmt.Sprintf("TPS %.1f  FPS %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()),
	}
	if clockEntry, ok := components.Clock.First(e.World); ok {
		clock := components.Clock.Get(clockEntry)
		lines = append(lines, fmt.Sprintf("frame %.4fs  elapsed %.2fs  ticks %d", clock.FrameTime, clock.Elapsed, clock.Frames))
	}
	if settings.Paused {
		lines = append(lines, "paused")
	}
	lines = append(lines, DummyLines(e)...)

	face := fonts.Debug.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, 8, (i+1)*cfg.UI.DebugLineSpacing, cfg.UI.DebugTextColor)
	}

	RenderEach(e, screen, tags.Dummy, func(r *Renderer, entry *donburi.Entry, instance components.TransformData) {
		model := components.Model.Get(entry)
		verts := r.ModelVertices(nil, instance, model, screen.Bounds())
		for i := range verts {
			a, b := verts[i], verts[(i+1)%len(verts)]
			vector.StrokeLine(screen, a.DstX, a.DstY, b.DstX, b.DstY, 1, cfg.UI.DebugOutline, false)
		}
	})
}

// DummyLines describes each dummy's transform, one line per dummy.
func DummyLines(e *ecs.ECS) []string {
	var lines []string
	tags.Dummy.Each(e.World, func(entry *donburi.Entry) {
		t := components.Transform.Get(entry)
		size := components.Model.Get(entry).Size
		lines = append(lines, fmt.Sprintf("dummy %d  pos (%.2f, %.2f)  size %.2fx%.2f  angle %+.3f",
			len(lines), t.Translation.X, t.Translation.Y, size.X, size.Y, t.Angle))
	})
	return lines
}
