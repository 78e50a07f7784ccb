package systems

import (
	"image"
	"math"

	"github.com/automoto/burgerspin/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Anything that can iterate entries: component types, tags and queries.
type entryIterator interface {
	Each(w donburi.World, callback func(*donburi.Entry))
}

// Renderer draws models into the screen through the scene camera.
type Renderer struct {
	Screen *ebiten.Image
	Camera *components.CameraData
	Width  int
	Height int

	vertices []ebiten.Vertex
	indices  []uint16
	op       ebiten.DrawTrianglesOptions
}

// Shared by every RenderEach call so vertex and index buffers keep their capacity
var renderer = &Renderer{}

// prepareRenderer points the shared renderer at a new target.
func prepareRenderer(screen *ebiten.Image, camera *components.CameraData, width, height int) *Renderer {
	renderer.Screen = screen
	renderer.Camera = camera
	renderer.Width = width
	renderer.Height = height
	return renderer
}

// RenderEach calls fn once for every entry yielded by iter, passing the entry's
// transform as the instance to draw with. Entries without a transform are skipped.
func RenderEach(e *ecs.ECS, screen *ebiten.Image, iter entryIterator, fn func(r *Renderer, entry *donburi.Entry, instance components.TransformData)) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return // No camera yet
	}
	r := prepareRenderer(screen, components.Camera.Get(cameraEntry), screen.Bounds().Dx(), screen.Bounds().Dy())
	iter.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Transform) {
			return
		}
		fn(r, entry, *components.Transform.Get(entry))
	})
}

// RenderSprite draws model at instance, textured with sprite.
func (r *Renderer) RenderSprite(instance components.TransformData, model *components.ModelData, sprite *ebiten.Image) {
	if sprite == nil || model.Polygon == nil {
		return
	}
	r.vertices = r.ModelVertices(r.vertices[:0], instance, model, sprite.Bounds())
	r.indices = fanIndices(r.indices[:0], len(r.vertices))
	if len(r.indices) == 0 {
		return
	}
	r.Screen.DrawTriangles(r.vertices, r.indices, sprite, &r.op)
}

// ModelVertices appends one vertex per model point to dst: positioned in screen
// space by instance and the camera, textured so the model's extent covers the
// whole source image.
func (r *Renderer) ModelVertices(dst []ebiten.Vertex, instance components.TransformData, model *components.ModelData, src image.Rectangle) []ebiten.Vertex {
	if model.Polygon == nil || model.Size.X == 0 || model.Size.Y == 0 {
		return dst
	}
	sin, cos := math.Sincos(instance.Angle)
	halfW, halfH := model.Size.X/2, model.Size.Y/2
	srcW, srcH := float64(src.Dx()), float64(src.Dy())

	for _, p := range model.Polygon.Points {
		px, py := p[0], p[1]
		lx, ly := px-halfW, py-halfH
		world := dmath.NewVec2(
			instance.Translation.X+lx*cos-ly*sin,
			instance.Translation.Y+lx*sin+ly*cos,
		)
		sx, sy := WorldToScreen(r.Camera, world, r.Width, r.Height)

		// Model Y points up, image Y points down
		u := float64(src.Min.X) + px/model.Size.X*srcW
		v := float64(src.Min.Y) + (1-py/model.Size.Y)*srcH

		dst = append(dst, ebiten.Vertex{
			DstX:   float32(sx),
			DstY:   float32(sy),
			SrcX:   float32(u),
			SrcY:   float32(v),
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		})
	}
	return dst
}

// fanIndices triangulates a convex polygon of n vertices.
func fanIndices(dst []uint16, n int) []uint16 {
	for i := 1; i+1 < n; i++ {
		dst = append(dst, 0, uint16(i), uint16(i+1))
	}
	return dst
}
