package component

import "image/color"

// HUD is the on-screen status text. The round system owns Text.
type HUD struct {
	Text     string
	X        float64
	Y        float64
	FontSize float64
	Color    color.Color
}

var HUDComponent = NewComponent[HUD]()
