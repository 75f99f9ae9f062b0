package render

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned for strings that are not #RRGGBB or #AARRGGBB.
var ErrInvalidColor = errors.New("invalid color")

// ParseHexColor parses #RRGGBB or #AARRGGBB. The alpha-first order matches
// the packed ARGB colour ints hosts usually hand around.
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(hex) == 6 {
		v |= 0xff000000
	}
	return color.NRGBA{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// FormatHexColor renders c as #AARRGGBB.
func FormatHexColor(c color.Color) string {
	n := ToNRGBA(c)
	return fmt.Sprintf("#%02X%02X%02X%02X", n.A, n.R, n.G, n.B)
}

// ToNRGBA converts any colour to straight alpha.
func ToNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// WithAlpha replaces the alpha of c, keeping its straight RGB channels.
func WithAlpha(c color.Color, a uint8) color.NRGBA {
	n := ToNRGBA(c)
	n.A = a
	return n
}

// AlphaFor scales peak by progress and truncates, the way a paint's integer
// alpha is derived from a float ratio. Results are saturated into 0..255.
func AlphaFor(peak, progress float32) uint8 {
	v := int(peak * progress)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
