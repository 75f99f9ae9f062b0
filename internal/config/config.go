package config

import "image/color"

const (
	// Panel geometry in device-independent units.
	PanelWidthDp  = 50
	PanelHeightDp = 200
	ArrowWidthDp  = 4   // half-size of the arrow glyph
	StrokeWidthDp = 1.5 // arrow stroke

	// Arrow regimes. A progress equal to a threshold belongs to the lower regime.
	ArrowAppearProgress float32 = 0.2
	ArrowMorphProgress  float32 = 0.7

	// Alpha reached at progress 1.
	BackgroundMaxAlpha = 200
	ArrowMaxAlpha      = 255

	// Arrow x position is currentWidth / ArrowInsetDivisor from the edge.
	ArrowInsetDivisor = 6

	DefaultDensity = 1.0

	// Demo host.
	ScreenWidth  = 480
	ScreenHeight = 800
	MaxDeltaTime = 0.06
	EdgeSlop     = 24    // px from an edge where a press starts a pull
	SettleSpeed  = 400.0 // px per second while springing back
	StatusX      = 12
	StatusY      = 20
)

var (
	DefaultBackgroundColor = color.NRGBA{0, 0, 0, 255}
	DefaultArrowColor      = color.NRGBA{255, 255, 255, 255}

	ScreenColor     = color.RGBA{236, 239, 241, 255}
	StatusTextColor = color.RGBA{38, 50, 56, 255}
	BackFlashColor  = color.RGBA{76, 175, 80, 255}
)
