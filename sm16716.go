// Package sm16716 drives LED strips built from chained SM16716 driver chips
// over a bit-banged data/clock pair of GPIO pins.
//
// See the examples for how to use this package.
package sm16716

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/rs/zerolog"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"

	"periph.io/x/devices/v3/sm16716/rgb24"
)

// Wire protocol defaults.
const (
	DefaultDataPin  = "GPIO10" // wiringPi pin 12
	DefaultClockPin = "GPIO11" // wiringPi pin 14
	DefaultPreamble = 50
	DefaultBlank    = 200
	DefaultSettle   = time.Millisecond

	// FrameBits is the length of one pixel frame: a 1 marker bit then 24 color bits.
	FrameBits = 25
	marker    = uint32(1) << 24
)

var (
	// ErrSetup is returned by New when the platform cannot be initialized.
	ErrSetup = errors.New("sm16716: platform setup failed")
	// ErrHalted is returned by every operation after Halt.
	ErrHalted = errors.New("sm16716: halted")
	// ErrBusy is returned when a refresh starts while another is in progress.
	ErrBusy = errors.New("sm16716: refresh in progress")
	// ErrNoStrips is returned by ShowAllStrips when no strip pins are configured.
	ErrNoStrips = errors.New("sm16716: no strip pins configured")
)

// Platform is the GPIO driver the device runs on.
type Platform interface {
	// Init performs the one-time platform setup.
	Init() error
	// Output returns the named pin configured as a digital output.
	Output(name string) (gpio.PinOut, error)
	// Sleep blocks for d.
	Sleep(d time.Duration)
}

// Opts is the configuration for an SM16716 grid.
type Opts struct {
	// Number of pixels across all strips, in logical order
	NumPixels int

	// Pin names as known to the Platform
	DataPin   string   // Data line (default: GPIO10)
	ClockPin  string   // Clock line shared by every strip (default: GPIO11)
	StripPins []string // One data pin per strip, used only by ShowAllStrips

	// Wire timing; zero means default
	Preamble int           // Clock pulses before the first frame (default: 50)
	Blank    int           // Zero pulses after the last frame (default: 200)
	Settle   time.Duration // Delay after a refresh (default: 1ms)

	Logger *zerolog.Logger // Optional, defaults to a no-op logger
}

// state of the refresh state machine.
type state int

const (
	idle state = iota
	transmitting
)

// Dev is a handle to an SM16716 LED grid.
type Dev struct {
	p   Platform
	log zerolog.Logger

	// Lines
	data   gpio.PinOut
	clk    gpio.PinOut
	strips []gpio.PinOut

	// Pixel buffer, in logical order
	buf *rgb24.Strip

	// Wire timing
	preamble int
	blank    int
	settle   time.Duration

	state  state
	halted bool
}

// New initializes the platform, configures the data and clock pins and
// returns a device with a black buffer of opts.NumPixels pixels.
//
// If the platform setup fails, New returns an error wrapping ErrSetup and no
// pin is configured or written. Nothing is transmitted until Show is called.
func New(p Platform, opts *Opts) (*Dev, error) {
	if opts == nil {
		return nil, errors.New("sm16716: opts is required")
	}
	o := *opts
	if err := o.validate(); err != nil {
		return nil, err
	}
	o.applyDefaults()

	d := &Dev{
		p:        p,
		log:      *o.Logger,
		preamble: o.Preamble,
		blank:    o.Blank,
		settle:   o.Settle,
	}

	if err := p.Init(); err != nil {
		d.log.Error().Err(err).Msg("sm16716: platform setup failed, try running as root")
		return nil, fmt.Errorf("%w: %v", ErrSetup, err)
	}

	// Each pin name is configured once, even if listed twice.
	pins := map[string]gpio.PinOut{}
	output := func(name string) (gpio.PinOut, error) {
		if pin, ok := pins[name]; ok {
			return pin, nil
		}
		pin, err := p.Output(name)
		if err != nil {
			return nil, fmt.Errorf("sm16716: failed to configure %s: %w", name, err)
		}
		if err := pin.Out(gpio.Low); err != nil {
			return nil, fmt.Errorf("sm16716: failed to pull %s low: %w", name, err)
		}
		pins[name] = pin
		return pin, nil
	}

	var err error
	if d.data, err = output(o.DataPin); err != nil {
		return nil, err
	}
	if d.clk, err = output(o.ClockPin); err != nil {
		return nil, err
	}
	for _, name := range o.StripPins {
		pin, err := output(name)
		if err != nil {
			return nil, err
		}
		d.strips = append(d.strips, pin)
	}

	d.buf = rgb24.NewStrip(o.NumPixels)
	d.buf.Clear()

	d.log.Debug().
		Int("pixels", o.NumPixels).
		Str("data", o.DataPin).
		Str("clock", o.ClockPin).
		Strs("strips", o.StripPins).
		Msg("sm16716: configured")
	return d, nil
}

func (o *Opts) validate() error {
	if o.NumPixels <= 0 {
		return errors.New("sm16716: NumPixels must be positive")
	}
	if o.Preamble < 0 || o.Blank < 0 || o.Settle < 0 {
		return errors.New("sm16716: timing values must not be negative")
	}
	data, clk := o.DataPin, o.ClockPin
	if data == "" {
		data = DefaultDataPin
	}
	if clk == "" {
		clk = DefaultClockPin
	}
	if data == clk {
		return errors.New("sm16716: data and clock pins must differ")
	}
	seen := make(map[string]bool, len(o.StripPins))
	for _, s := range o.StripPins {
		if s == "" {
			return errors.New("sm16716: empty strip pin name")
		}
		if s == clk {
			return fmt.Errorf("sm16716: strip pin %s is the clock pin", s)
		}
		if seen[s] {
			return fmt.Errorf("sm16716: strip pin %s listed twice", s)
		}
		seen[s] = true
	}
	if n := len(o.StripPins); n > 0 && o.NumPixels%n != 0 {
		return fmt.Errorf("sm16716: %d pixels cannot be split across %d strips", o.NumPixels, n)
	}
	return nil
}

func (o *Opts) applyDefaults() {
	if o.DataPin == "" {
		o.DataPin = DefaultDataPin
	}
	if o.ClockPin == "" {
		o.ClockPin = DefaultClockPin
	}
	if o.Preamble == 0 {
		o.Preamble = DefaultPreamble
	}
	if o.Blank == 0 {
		o.Blank = DefaultBlank
	}
	if o.Settle == 0 {
		o.Settle = DefaultSettle
	}
	if o.Logger == nil {
		nop := zerolog.Nop()
		o.Logger = &nop
	}
}

// NumPixels returns the number of pixels in the buffer.
func (d *Dev) NumPixels() int {
	return d.buf.Len()
}

// SetPixel sets pixel i from a combined 0xRRGGBB value. The upper byte is
// discarded. It does not write to the grid.
func (d *Dev) SetPixel(i int, c uint32) error {
	if d.halted {
		return ErrHalted
	}
	return d.buf.SetPixel(i, c)
}

// SetRGB sets pixel i from separate channels. Channels above 255 are clamped.
// It does not write to the grid.
func (d *Dev) SetRGB(i int, r, g, b uint32) error {
	if d.halted {
		return ErrHalted
	}
	return d.buf.SetChannels(i, r, g, b)
}

// Pixel returns the buffered color of pixel i.
func (d *Dev) Pixel(i int) (rgb24.RGB24, error) {
	return d.buf.Pixel(i)
}

// Clear sets every buffered pixel to black. Call Show to make it visible.
func (d *Dev) Clear() error {
	if d.halted {
		return ErrHalted
	}
	d.buf.Clear()
	return nil
}

// ColorModel returns the color model of the grid.
func (d *Dev) ColorModel() color.Model {
	return rgb24.RGB24Model
}

// Bounds returns image.Rect(0, 0, NumPixels, 1).
func (d *Dev) Bounds() image.Rectangle {
	return d.buf.Bounds()
}

// Draw renders src into the buffer then refreshes the grid, through
// ShowAllStrips when strip pins are configured.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return ErrHalted
	}
	dst = dst.Intersect(d.buf.Bounds())
	if dst.Empty() {
		return nil
	}
	draw.Draw(d.buf, dst, src, sp, draw.Src)
	return d.refresh()
}

// Write loads raw R, G, B byte triplets into the buffer then refreshes the
// grid. len(pixels) must be exactly 3*NumPixels.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, ErrHalted
	}
	if len(pixels) != 3*d.buf.Len() {
		return 0, errors.New("sm16716: invalid buffer size")
	}
	for i := range d.buf.Pix {
		p := pixels[3*i : 3*i+3]
		d.buf.Pix[i] = rgb24.FromChannels(uint32(p[0]), uint32(p[1]), uint32(p[2]))
	}
	if err := d.refresh(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Halt blanks the grid, drives every line low and releases the device.
// After calling Halt, every operation returns ErrHalted.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	d.buf.Clear()
	err := d.refresh()
	d.halted = true
	for _, pin := range d.lines() {
		if lerr := pin.Out(gpio.Low); lerr != nil && err == nil {
			err = fmt.Errorf("sm16716: failed to pull %s low: %w", pin, lerr)
		}
	}
	d.log.Debug().Err(err).Msg("sm16716: halted")
	return err
}

// refresh sends the buffer the way the grid is wired.
func (d *Dev) refresh() error {
	if len(d.strips) > 0 {
		return d.ShowAllStrips()
	}
	return d.Show()
}

// lines returns every pin driven by the device.
func (d *Dev) lines() []gpio.PinOut {
	return append([]gpio.PinOut{d.data, d.clk}, d.strips...)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("sm16716.Dev{%d}", d.buf.Len())
}

var _ display.Drawer = &Dev{}
