package main

import (
	"fmt"
	"image/color"

	"github.com/milk9111/physics2d/common"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

var backgroundColor = color.NRGBA{R: 0x1b, G: 0x1e, B: 0x24, A: 0xff}

// hudLabels are the pause panel texts refreshed every tick.
type hudLabels struct {
	world  *widget.Text
	bodies *widget.Text
	joints *widget.Text
}

func (h *hudLabels) refresh(g *Game) {
	if h == nil || g.world == nil {
		return
	}
	pw := g.world.PhysicsWorld()
	if pw == nil {
		return
	}
	gx, gy := pw.Gravity()
	h.world.Label = fmt.Sprintf("Gravity %.1f, %.1f   Time scale %.2f   Frame %d", gx, gy, pw.TimeScale(), pw.Frame())
	h.bodies.Label = fmt.Sprintf("Bodies: %d", len(pw.Bodies()))
	h.joints.Label = fmt.Sprintf("Joints: %d", pw.Joints().Len())
}

// NewPauseUI builds the centered pause panel: world stats plus Resume, Reload,
// Debug and Copy buttons.
func NewPauseUI(g *Game) (*ebitenui.UI, *hudLabels) {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x44, G: 0x44, B: 0x44, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	text := func(label string) *widget.Text {
		return widget.NewText(
			widget.TextOpts.Text(label, &face, white),
			widget.TextOpts.WidgetOpts(center),
		)
	}
	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	labels := &hudLabels{world: text(""), bodies: text(""), joints: text("")}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(text("Paused"))
	panel.AddChild(labels.world)
	panel.AddChild(labels.bodies)
	panel.AddChild(labels.joints)
	panel.AddChild(button("Resume", func() { g.paused = false }))
	panel.AddChild(button("Reload scene", func() { g.reload = true }))
	panel.AddChild(button("Toggle debug", func() { g.debug.Enabled = !g.debug.Enabled }))
	panel.AddChild(button("Copy snapshot", g.copySnapshot))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}, labels
}
