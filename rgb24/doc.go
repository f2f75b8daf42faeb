// Package rgb24 provides a packed 24-bit RGB color and a one-row pixel buffer
// for SM16716 LED strips.
//
// Colors are stored as 0x00RRGGBB in a uint32. The upper byte is always zero:
// every write masks it off.
//
// Memory layout example for a 3-pixel strip:
//
//	Index:  0         1         2
//	Value:  0x010203  0xFF0000  0x000000
//	        (red=0x01, green=0x02, blue=0x03)
//
// This package provides:
//
// - RGB24: a color.Color holding one packed pixel
// - RGB24Model: a color model converting standard Go colors to RGB24
// - Strip: an index-addressable buffer that is also a draw.Image of size N x 1
//
// Example usage:
//
//	s := rgb24.NewStrip(100)
//
//	// Set pixel 10 from a combined value
//	s.SetPixel(10, 0xFF8000)
//
//	// Set pixel 11 from channels; values above 255 are clamped
//	s.SetChannels(11, 300, 0, 128)
//
//	// Use with standard Go image operations
//	draw.Draw(s, s.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
package rgb24
