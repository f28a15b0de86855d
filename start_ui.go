package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/npchit/assets"
	"github.com/milk9111/npchit/ecs"
	"github.com/milk9111/npchit/prefabs"
	"golang.org/x/image/font/basicfont"
)

// StartButton is the round's start affordance.
type StartButton struct {
	button *widget.Button
}

func (b *StartButton) SetVisible(visible bool) {
	if b == nil || b.button == nil {
		return
	}
	if visible {
		b.button.GetWidget().Visibility = widget.Visibility_Show
		return
	}
	b.button.GetWidget().Visibility = widget.Visibility_Hide
}

func (b *StartButton) Visible() bool {
	return b != nil && b.button != nil && b.button.GetWidget().Visibility == widget.Visibility_Show
}

// NewStartUI builds a UI holding a single button near the bottom of the
// screen. onStart runs on click.
func NewStartUI(spec prefabs.StartButtonSpec, onStart func()) (*ebitenui.UI, *StartButton) {
	btnColor := spec.Color.Color
	btnImg := imageui.NewNineSliceColor(btnColor)
	pressedImg := imageui.NewNineSliceColor(darken(btnColor))

	face := assets.Face(spec.FontSize)
	if face == nil {
		face = ebtext.NewGoXFace(basicfont.Face7x13)
	}

	btnTextColor := &widget.ButtonTextColor{Idle: spec.TextColor.Color}

	start := &StartButton{}
	start.button = widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnImg, Pressed: pressedImg}),
		widget.ButtonOpts.Text(spec.Label, &face, btnTextColor),
		widget.ButtonOpts.TextPadding(&widget.Insets{Top: 10, Bottom: 10, Left: 30, Right: 30}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(160, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				Padding:            &widget.Insets{Bottom: 80},
			}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onStart != nil {
				onStart()
			}
		}),
	)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(start.button)

	return &ebitenui.UI{Container: root}, start
}

func darken(c color.Color) color.Color {
	r, g, b, a := c.RGBA()
	return color.NRGBA{R: uint8(r >> 9), G: uint8(g >> 9), B: uint8(b >> 9), A: uint8(a >> 8)}
}

// uiSystem runs the UI inside the world update, after raw input is read.
type uiSystem struct {
	ui *ebitenui.UI
}

func (s uiSystem) Update(_ *ecs.World) {
	if s.ui != nil {
		s.ui.Update()
	}
}
