// Package color parses color values and writes the matching
// PostScript color operators.
package color

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/madamkiwi/rghost/ps"
)

// Model identifies the color space of a Color.
type Model int

const (
	// ModelGray is a single intensity channel.
	ModelGray Model = iota
	// ModelRGB is red, green and blue channels.
	ModelRGB
	// ModelCMYK is cyan, magenta, yellow and black channels.
	ModelCMYK
)

// Color is a color in one of the PostScript device color spaces. Channel
// values are in the range [0, 1].
type Color struct {
	Model    Model
	Channels []float64
}

// Gray returns a gray level, 0 is black and 1 is white.
func Gray(v float64) Color {
	return Color{Model: ModelGray, Channels: []float64{v}}
}

// RGB returns an RGB color.
func RGB(r, g, b float64) Color {
	return Color{Model: ModelRGB, Channels: []float64{r, g, b}}
}

// CMYK returns a CMYK color.
func CMYK(c, m, y, k float64) Color {
	return Color{Model: ModelCMYK, Channels: []float64{c, m, y, k}}
}

// Black is the default drawing color.
var Black = Gray(0)

// Parse builds a Color from a loose description:
//
//   - a number is a gray level
//   - "#RRGGBB" or "#RGB" is a hex RGB color
//   - any other string is a CSS color name such as "red" or "navy"
//   - a slice of three numbers is RGB, four numbers is CMYK
//   - a Color is returned unchanged
func Parse(v any) (Color, error) {
	switch val := v.(type) {
	case Color:
		return val, val.Validate()
	case float64:
		return checked(Gray(val))
	case float32:
		return checked(Gray(float64(val)))
	case int:
		return checked(Gray(float64(val)))
	case string:
		return parseString(val)
	case []float64:
		return fromChannels(val)
	case []int:
		channels := make([]float64, len(val))
		for i, c := range val {
			channels[i] = float64(c)
		}
		return fromChannels(channels)
	default:
		return Color{}, fmt.Errorf("unsupported color value %v (%T)", v, v)
	}
}

func checked(c Color) (Color, error) {
	if err := c.Validate(); err != nil {
		return Color{}, err
	}
	return c, nil
}

func fromChannels(channels []float64) (Color, error) {
	switch len(channels) {
	case 1:
		return checked(Gray(channels[0]))
	case 3:
		return checked(RGB(channels[0], channels[1], channels[2]))
	case 4:
		return checked(CMYK(channels[0], channels[1], channels[2], channels[3]))
	default:
		return Color{}, fmt.Errorf("color needs 1, 3 or 4 channels, got %d", len(channels))
	}
}

func parseString(s string) (Color, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if trimmed == "" {
		return Color{}, fmt.Errorf("empty color")
	}

	if strings.HasPrefix(trimmed, "#") {
		return parseHex(trimmed[1:])
	}

	name := strings.NewReplacer("_", "", "-", "", " ", "").Replace(trimmed)
	rgba, ok := colornames.Map[name]
	if !ok {
		return Color{}, fmt.Errorf("unknown color name %q", s)
	}
	return RGB(float64(rgba.R)/255, float64(rgba.G)/255, float64(rgba.B)/255), nil
}

func parseHex(hex string) (Color, error) {
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid hex color #%s", hex)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color #%s: %w", hex, err)
	}
	r := float64((n>>16)&0xff) / 255
	g := float64((n>>8)&0xff) / 255
	b := float64(n&0xff) / 255
	return RGB(r, g, b), nil
}

// Validate checks the channel count and ranges.
func (c Color) Validate() error {
	want := map[Model]int{ModelGray: 1, ModelRGB: 3, ModelCMYK: 4}[c.Model]
	if want == 0 || len(c.Channels) != want {
		return fmt.Errorf("color model %d expects %d channels, got %d", c.Model, want, len(c.Channels))
	}
	for _, v := range c.Channels {
		if v < 0 || v > 1 {
			return fmt.Errorf("color channel %v out of range [0, 1]", v)
		}
	}
	return nil
}

// String returns the operator sequence that makes c the current color.
func (c Color) String() string {
	parts := make([]string, 0, len(c.Channels)+1)
	for _, v := range c.Channels {
		parts = append(parts, ps.FormatReal(v))
	}
	switch c.Model {
	case ModelRGB:
		parts = append(parts, "setrgbcolor")
	case ModelCMYK:
		parts = append(parts, "setcmykcolor")
	default:
		parts = append(parts, "setgray")
	}
	return strings.Join(parts, " ")
}
