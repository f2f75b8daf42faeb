// Package sm16716 drives a grid of LED strips built from SM16716 driver chips.
//
// The SM16716 is a 3-channel constant-current LED driver with a two-wire
// serial interface. Chips are chained: every clock pulse shifts one bit into
// each chip, pushing earlier bits further down the strip. The driver
// bit-bangs that interface over two GPIO pins.
//
// This driver implements the display.Drawer interface from periph.io.
//
// # Wire Protocol
//
// A refresh (Show) sends:
//
//	data low
//	50 clock pulses                        (latch/reset preamble)
//	for each pixel 0..N-1:
//	    1 marker bit + 8 red + 8 green + 8 blue, MSB first
//	200 clock pulses with data low         (blank frame, flushes the chain)
//	~1ms pause                             (latch settles)
//
// Each bit is presented on the data line then latched by driving the clock
// high then low. The leading 1 tells the chip a real color word from the
// all-zero blank run.
//
// # Hardware Connection
//
// Connect the strips to your system:
//
//	Strip Pin  → System Pin
//	GND        → GND
//	DATA       → GPIO10 (wiringPi 12)
//	CLOCK      → GPIO11 (wiringPi 14)
//	V+         → external 5V/12V supply sized for the strip
//
// All strips share the clock pin. Long chains degrade the signal; with more
// than about 50 LEDs per strip give each strip its own data pin and use
// ShowAllStrips.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"log"
//
//		"github.com/rs/zerolog"
//		"periph.io/x/devices/v3/sm16716"
//		"periph.io/x/devices/v3/sm16716/hostgpio"
//	)
//
//	func main() {
//		h := hostgpio.New(zerolog.Nop())
//
//		// Initializes periph.io and configures GPIO10 and GPIO11.
//		dev, err := sm16716.New(h, &sm16716.Opts{NumPixels: 100})
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer dev.Halt()
//
//		dev.SetRGB(0, 255, 0, 0)  // first pixel red
//		dev.SetPixel(1, 0x0000FF) // second pixel blue
//		dev.Show()
//	}
//
// Setting pixels never touches the wire; only Show, ShowAllStrips, Draw and
// Write do.
//
// # Pixel Layout
//
// Pixels are addressed 0..N-1 across the whole grid regardless of how many
// strips it is made of. Frames are sent in index order. Which physical LED
// ends up showing index 0 depends on the wiring; check it on real hardware.
//
// # Parallel Strips
//
// When Opts.StripPins lists one data pin per strip, ShowAllStrips writes one
// bit to every strip before each clock pulse, so a refresh takes as many
// pulses as the longest strip instead of the whole grid:
//
//	dev, err := sm16716.New(h, &sm16716.Opts{
//		NumPixels: 150,
//		StripPins: []string{"GPIO10", "GPIO9", "GPIO25"},
//	})
//	...
//	dev.ShowAllStrips()
//
// Strip s shows pixels [s*50, (s+1)*50). Show keeps driving DataPin only.
// Draw, Write and Halt refresh through ShowAllStrips whenever strip pins are
// configured, so Halt blanks every strip.
//
// # Errors
//
// New returns an error wrapping ErrSetup when the platform cannot be
// initialized, typically because of missing privileges; no pin is touched in
// that case. Out-of-range pixel indices return rgb24.ErrOutOfRange. Channels
// above 255 are clamped, not rejected.
//
// # Concurrency
//
// A Dev is not safe for concurrent use. A refresh started while another one
// is running returns ErrBusy.
package sm16716
