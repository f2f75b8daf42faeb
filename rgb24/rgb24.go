package rgb24

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// Mask keeps the low 24 bits of a color value.
const Mask = 0x00FFFFFF

// ErrOutOfRange is returned for a pixel index outside [0, Len()).
var ErrOutOfRange = errors.New("rgb24: index out of range")

// RGB24 is a packed 24-bit color laid out as 0x00RRGGBB.
type RGB24 uint32

// FromChannels packs red, green and blue into an RGB24.
// Channels above 255 are clamped to 255.
func FromChannels(r, g, b uint32) RGB24 {
	return RGB24(clamp(b) | clamp(g)<<8 | clamp(r)<<16)
}

func clamp(v uint32) uint32 {
	if v > 255 {
		return 255
	}
	return v
}

// Channels returns the red, green and blue bytes of c.
func (c RGB24) Channels() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// RGBA implements color.Color. RGB24 is always opaque.
func (c RGB24) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.Channels()
	// 0xFF * 0x101 = 0xFFFF
	return uint32(r8) * 0x101, uint32(g8) * 0x101, uint32(b8) * 0x101, 0xFFFF
}

func (c RGB24) String() string {
	return fmt.Sprintf("#%06X", uint32(c)&Mask)
}

// toRGB24 converts any color.Color to RGB24, dropping alpha.
func toRGB24(c color.Color) color.Color {
	if v, ok := c.(RGB24); ok {
		return v & Mask
	}
	r, g, b, _ := c.RGBA()
	return FromChannels(r>>8, g>>8, b>>8)
}

// RGB24Model converts colors to RGB24.
var RGB24Model = color.ModelFunc(toRGB24)

// Strip is a linear pixel buffer, index 0..N-1, exposed as an N x 1 image.
type Strip struct {
	Pix []RGB24
}

// NewStrip creates a strip of n black pixels. A negative n yields an empty strip.
func NewStrip(n int) *Strip {
	if n < 0 {
		n = 0
	}
	return &Strip{Pix: make([]RGB24, n)}
}

// Len returns the number of pixels.
func (s *Strip) Len() int {
	return len(s.Pix)
}

// SetPixel stores color&Mask at index i.
func (s *Strip) SetPixel(i int, c uint32) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.Pix[i] = RGB24(c & Mask)
	return nil
}

// SetChannels clamps each channel to 255 and stores the packed color at index i.
func (s *Strip) SetChannels(i int, r, g, b uint32) error {
	return s.SetPixel(i, uint32(FromChannels(r, g, b)))
}

// Pixel returns the color stored at index i.
func (s *Strip) Pixel(i int) (RGB24, error) {
	if err := s.check(i); err != nil {
		return 0, err
	}
	return s.Pix[i], nil
}

// Clear sets every pixel to black. Nothing is transmitted.
func (s *Strip) Clear() {
	for i := range s.Pix {
		// Cannot fail, i is in range.
		_ = s.SetChannels(i, 0, 0, 0)
	}
}

func (s *Strip) check(i int) error {
	if i < 0 || i >= len(s.Pix) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, i, len(s.Pix))
	}
	return nil
}

// ColorModel returns the color model of the strip.
func (s *Strip) ColorModel() color.Model {
	return RGB24Model
}

// Bounds returns image.Rect(0, 0, Len(), 1).
func (s *Strip) Bounds() image.Rectangle {
	return image.Rect(0, 0, len(s.Pix), 1)
}

// At returns the color of pixel x. It implements the image.Image interface.
func (s *Strip) At(x, y int) color.Color {
	return s.RGB24At(x, y)
}

// RGB24At returns the RGB24 color at (x, y), or black outside the bounds.
func (s *Strip) RGB24At(x, y int) RGB24 {
	if !(image.Point{X: x, Y: y}.In(s.Bounds())) {
		return 0
	}
	return s.Pix[x]
}

// Set sets the color of pixel x. Points outside the bounds are ignored.
func (s *Strip) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(s.Bounds())) {
		return
	}
	s.Pix[x] = RGB24Model.Convert(c).(RGB24)
}

// SetRGB24 sets pixel x without color conversion.
func (s *Strip) SetRGB24(x, y int, c RGB24) {
	if !(image.Point{X: x, Y: y}.In(s.Bounds())) {
		return
	}
	s.Pix[x] = c & Mask
}
