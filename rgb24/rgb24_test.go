package rgb24

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestFromChannels(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint32
		want    RGB24
	}{
		{"black", 0, 0, 0, 0x000000},
		{"distinct channels", 1, 2, 3, 0x010203},
		{"white", 255, 255, 255, 0xFFFFFF},
		{"red clamped", 300, 0, 0, 0xFF0000},
		{"green clamped", 0, 256, 0, 0x00FF00},
		{"blue clamped", 0, 0, 1 << 31, 0x0000FF},
		{"all clamped", 1000, 999, 998, 0xFFFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromChannels(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("FromChannels(%d, %d, %d) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestRGB24RGBA(t *testing.T) {
	tests := []struct {
		name       string
		c          RGB24
		wr, wg, wb uint32
	}{
		{"black", 0x000000, 0, 0, 0},
		{"white", 0xFFFFFF, 0xFFFF, 0xFFFF, 0xFFFF},
		{"mixed", 0x80FF01, 0x8080, 0xFFFF, 0x0101},
		{"upper byte ignored", 0xAB102030, 0x1010, 0x2020, 0x3030},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.wr || g != tt.wg || b != tt.wb || a != 0xFFFF {
				t.Errorf("RGBA() = (%x, %x, %x, %x), want (%x, %x, %x, ffff)",
					r, g, b, a, tt.wr, tt.wg, tt.wb)
			}
		})
	}
}

func TestRGB24ModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  RGB24
	}{
		{"rgb24 passthrough", RGB24(0x123456), 0x123456},
		{"rgb24 masked", RGB24(0xFF123456), 0x123456},
		{"black", color.Black, 0},
		{"white", color.White, 0xFFFFFF},
		{"rgba", color.RGBA{0x10, 0x20, 0x30, 0xFF}, 0x102030},
		{"nrgba opaque", color.NRGBA{0xAA, 0xBB, 0xCC, 0xFF}, 0xAABBCC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGB24Model.Convert(tt.input).(RGB24)
			if got != tt.want {
				t.Errorf("RGB24Model.Convert(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRGB24String(t *testing.T) {
	if got := RGB24(0x0A0B0C).String(); got != "#0A0B0C" {
		t.Errorf("String() = %q, want %q", got, "#0A0B0C")
	}
}

func TestNewStrip(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantLen int
	}{
		{"empty", 0, 0},
		{"negative", -5, 0},
		{"one", 1, 1},
		{"hundred", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStrip(tt.n)
			if s.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", s.Len(), tt.wantLen)
			}
			want := image.Rect(0, 0, tt.wantLen, 1)
			if s.Bounds() != want {
				t.Errorf("Bounds() = %v, want %v", s.Bounds(), want)
			}
			for i, p := range s.Pix {
				if p != 0 {
					t.Errorf("Pix[%d] = %v, want black", i, p)
				}
			}
		})
	}
}

func TestStripSetPixelMasksUpperByte(t *testing.T) {
	s := NewStrip(4)
	colors := []uint32{0x00000000, 0x00FFFFFF, 0xFF123456, 0x80000001}

	for i, c := range colors {
		if err := s.SetPixel(i, c); err != nil {
			t.Fatalf("SetPixel(%d, %#x) error: %v", i, c, err)
		}
	}
	for i, c := range colors {
		got, err := s.Pixel(i)
		if err != nil {
			t.Fatalf("Pixel(%d) error: %v", i, err)
		}
		if uint32(got) != c&0x00FFFFFF {
			t.Errorf("Pixel(%d) = %#x, want %#x", i, uint32(got), c&0x00FFFFFF)
		}
	}
}

func TestStripSetChannels(t *testing.T) {
	s := NewStrip(3)
	if err := s.SetChannels(0, 1, 2, 3); err != nil {
		t.Fatal(err)
	}
	if err := s.SetChannels(1, 300, 0, 0); err != nil {
		t.Fatal(err)
	}
	if err := s.SetChannels(2, 256, 1000, 255); err != nil {
		t.Fatal(err)
	}

	want := []RGB24{0x010203, 0xFF0000, 0xFFFFFF}
	for i, w := range want {
		if s.Pix[i] != w {
			t.Errorf("Pix[%d] = %v, want %v", i, s.Pix[i], w)
		}
	}
	if r, _, _ := s.Pix[1].Channels(); r != 255 {
		t.Errorf("red channel = %d, want 255", r)
	}
}

func TestStripOutOfRange(t *testing.T) {
	s := NewStrip(4)
	for _, i := range []int{-1, 4, 100} {
		if err := s.SetPixel(i, 0xFFFFFF); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("SetPixel(%d) error = %v, want ErrOutOfRange", i, err)
		}
		if err := s.SetChannels(i, 1, 2, 3); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("SetChannels(%d) error = %v, want ErrOutOfRange", i, err)
		}
		if _, err := s.Pixel(i); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Pixel(%d) error = %v, want ErrOutOfRange", i, err)
		}
	}
	for i, p := range s.Pix {
		if p != 0 {
			t.Errorf("Pix[%d] = %v after rejected writes, want black", i, p)
		}
	}
}

func TestStripClear(t *testing.T) {
	s := NewStrip(10)
	for i := range s.Pix {
		s.Pix[i] = RGB24(0x111111 * uint32(i%15+1))
	}
	s.Clear()
	for i, p := range s.Pix {
		if p != 0 {
			t.Errorf("Pix[%d] = %v after Clear, want 0", i, p)
		}
	}
}

func TestStripImage(t *testing.T) {
	s := NewStrip(3)

	s.Set(0, 0, color.RGBA{0x01, 0x02, 0x03, 0xFF})
	s.SetRGB24(1, 0, 0xFF445566)

	c, ok := s.At(0, 0).(RGB24)
	if !ok {
		t.Fatalf("At(0, 0) returned %T, want RGB24", s.At(0, 0))
	}
	if c != 0x010203 {
		t.Errorf("At(0, 0) = %v, want #010203", c)
	}
	if got := s.RGB24At(1, 0); got != 0x445566 {
		t.Errorf("RGB24At(1, 0) = %v, want #445566", got)
	}
	if s.ColorModel() != RGB24Model {
		t.Error("ColorModel() did not return RGB24Model")
	}
}

func TestStripImageOutOfBounds(t *testing.T) {
	s := NewStrip(2)

	s.Set(-1, 0, color.White)
	s.Set(2, 0, color.White)
	s.Set(0, 1, color.White)
	s.SetRGB24(0, -1, 0xFFFFFF)

	for i, p := range s.Pix {
		if p != 0 {
			t.Errorf("Pix[%d] = %v after out-of-bounds Set, want 0", i, p)
		}
	}
	if got := s.RGB24At(5, 0); got != 0 {
		t.Errorf("RGB24At(5, 0) = %v, want 0", got)
	}
}

func TestStripDraw(t *testing.T) {
	s := NewStrip(8)
	draw.Draw(s, image.Rect(2, 0, 5, 1), image.NewUniform(color.RGBA{0xFF, 0x80, 0x00, 0xFF}), image.Point{}, draw.Src)

	for i, p := range s.Pix {
		want := RGB24(0)
		if i >= 2 && i < 5 {
			want = 0xFF8000
		}
		if p != want {
			t.Errorf("Pix[%d] = %v, want %v", i, p, want)
		}
	}
}
