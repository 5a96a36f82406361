// Package palette derives blockie colors from a random stream and converts
// them to 24-bit RGB.
package palette

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/nikolasavic/blockies/internal/prng"
)

// Color is an HSL color with all components as fractions.
type Color struct {
	Hue        float64 `yaml:"hue"`
	Saturation float64 `yaml:"saturation"`
	Lightness  float64 `yaml:"lightness"`
}

// RGB is a 24-bit color.
type RGB [3]byte

// Black is used for transparent cells.
var Black = RGB{0, 0, 0}

// Derive consumes six draws from src: hue, saturation, then four draws
// averaged into lightness.
func Derive(src prng.Source) Color {
	hue := src.Draw()

	// saturation goes from 40% to 100%, avoiding greyish colors
	saturation := float64(src.Draw()*0.6) + 0.4

	// lightness is a bell curve around 50%
	lightness := (src.Draw() + src.Draw() + src.Draw() + src.Draw()) * 0.25

	return Color{Hue: hue, Saturation: saturation, Lightness: lightness}
}

// Validate reports whether every component lies in [0, 1].
func (c Color) Validate() error {
	for _, v := range []struct {
		name string
		val  float64
	}{
		{"hue", c.Hue},
		{"saturation", c.Saturation},
		{"lightness", c.Lightness},
	} {
		if math.IsNaN(v.val) || v.val < 0 || v.val > 1 {
			return fmt.Errorf("%s %v out of range [0, 1]", v.name, v.val)
		}
	}
	return nil
}

// RGB converts c using the hue/lightness/saturation formulation, scaling
// each channel by 256 and flooring.
func (c Color) RGB() RGB {
	r, g, b := hlsToRGB(c.Hue, c.Lightness, c.Saturation)
	return RGB{channel(r), channel(g), channel(b)}
}

// String formats c as hsl(h, s%, l%).
func (c Color) String() string {
	return fmt.Sprintf("hsl(%.1f, %.1f%%, %.1f%%)", c.Hue*360, c.Saturation*100, c.Lightness*100)
}

func channel(v float64) byte {
	n := math.Floor(v * 256)
	// v == 1.0 only for pure white from an override
	if n > 255 {
		n = 255
	}
	if n < 0 {
		n = 0
	}
	return byte(n)
}

func hlsToRGB(h, l, s float64) (float64, float64, float64) {
	if s == 0 {
		return l, l, l
	}
	var m2 float64
	if l <= 0.5 {
		m2 = l * (1 + s)
	} else {
		m2 = l + s - float64(l*s)
	}
	m1 := float64(2*l) - m2
	return hueChannel(m1, m2, h+1.0/3), hueChannel(m1, m2, h), hueChannel(m1, m2, h-1.0/3)
}

func hueChannel(m1, m2, hue float64) float64 {
	hue = math.Mod(hue, 1)
	if hue < 0 {
		hue++
	}
	switch {
	case hue < 1.0/6:
		return m1 + float64((m2-m1)*hue*6)
	case hue < 0.5:
		return m2
	case hue < 2.0/3:
		return m1 + float64((m2-m1)*(2.0/3-hue)*6)
	default:
		return m1
	}
}

// Hex formats c as #rrggbb.
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

// String formats c as r;g;b, the form used inside ANSI truecolor escapes.
func (c RGB) String() string {
	return fmt.Sprintf("%d;%d;%d", c[0], c[1], c[2])
}

// Distance is the CIE76 distance between a and b in Lab space. Values
// below ~10 are hard to tell apart at blockie scale.
func Distance(a, b RGB) float64 {
	return a.colorful().DistanceLab(b.colorful())
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c[0]) / 255, G: float64(c[1]) / 255, B: float64(c[2]) / 255}
}
