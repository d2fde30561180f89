package system

import (
	"image"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/physics2d/ecs"
	"github.com/milk9111/physics2d/ecs/component"
	"github.com/milk9111/physics2d/physics"
)

const discResolution = 64

// RenderSystem fills every Object's rectangle, or a disc for circle bodies,
// rotated about the object center.
type RenderSystem struct {
	pixel *ebiten.Image
	disc  *ebiten.Image
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Update(*ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	if r.pixel == nil {
		r.pixel = ebiten.NewImage(1, 1)
		r.pixel.Fill(color.White)
		r.disc = ebiten.NewImageFromImage(discRGBA(discResolution))
	}

	type drawable struct {
		e      ecs.Entity
		obj    *component.Object
		circle bool
	}
	var items []drawable
	ecs.ForEach(w, component.ObjectComponent.Kind(), func(e ecs.Entity, obj *component.Object) {
		circle := false
		if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
			circle = pb.Config.Shape == physics.ShapeCircle
		}
		items = append(items, drawable{e: e, obj: obj, circle: circle})
	})
	sort.SliceStable(items, func(i, j int) bool {
		return uint64(items[i].e) < uint64(items[j].e)
	})

	for _, it := range items {
		o := it.obj
		if o.W <= 0 || o.H <= 0 {
			continue
		}
		img, size := r.pixel, 1.0
		if it.circle {
			img, size = r.disc, discResolution
		}

		sx, sy := o.W/size, o.H/size
		if o.FlipX {
			sx = -sx
		}
		if o.FlipY {
			sy = -sy
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-size/2, -size/2)
		op.GeoM.Scale(sx, sy)
		op.GeoM.Rotate(physics.ToRad(o.Rotation))
		op.GeoM.Translate(o.DrawableX()+o.W/2, o.DrawableY()+o.H/2)
		if o.Color != nil {
			op.ColorScale.ScaleWithColor(o.Color)
		}
		screen.DrawImage(img, op)
	}
}

func discRGBA(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)+0.5-r, float64(y)+0.5-r
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, color.White)
			}
		}
	}
	return img
}
