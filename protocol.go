package sm16716

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// Show pushes the whole buffer to the grid, one strip after the other.
//
// The wire sequence is: data low, the preamble clock pulses, one frame per
// pixel in index order, the blank run, then the settle delay. Frames shift
// down the chain, so pixel 0 ends up furthest from the controller once every
// frame has been clocked in.
func (d *Dev) Show() error {
	if err := d.begin(); err != nil {
		return err
	}
	defer d.end()

	if err := d.out(d.data, gpio.Low); err != nil {
		return err
	}
	if err := d.pulses(d.preamble); err != nil {
		return err
	}
	for i := range d.buf.Pix {
		if err := d.writePixel(i); err != nil {
			return err
		}
	}
	if err := d.writeBlank(); err != nil {
		return err
	}
	d.p.Sleep(d.settle)
	return nil
}

// ShowAllStrips pushes the buffer to every strip at once: each strip has its
// own data pin and a single clock pulse shifts one bit into all of them.
//
// Strip s shows pixels [s*L, (s+1)*L) where L is NumPixels divided by the
// number of strip pins. It is only available when Opts.StripPins is set.
func (d *Dev) ShowAllStrips() error {
	if len(d.strips) == 0 {
		if d.halted {
			return ErrHalted
		}
		return ErrNoStrips
	}
	if err := d.begin(); err != nil {
		return err
	}
	defer d.end()

	if err := d.stripsLow(); err != nil {
		return err
	}
	if err := d.pulses(d.preamble); err != nil {
		return err
	}
	n := d.buf.Len() / len(d.strips)
	frames := make([]uint32, len(d.strips))
	for pos := 0; pos < n; pos++ {
		for s := range d.strips {
			frames[s] = frame(uint32(d.buf.Pix[s*n+pos]))
		}
		for j := 0; j < FrameBits; j++ {
			for s, pin := range d.strips {
				if err := d.out(pin, level(frames[s])); err != nil {
					return err
				}
				frames[s] <<= 1
			}
			if err := d.toggleClock(); err != nil {
				return err
			}
		}
	}
	if err := d.stripsLow(); err != nil {
		return err
	}
	if err := d.pulses(d.blank); err != nil {
		return err
	}
	d.p.Sleep(d.settle)
	return nil
}

// begin moves the device from idle to transmitting.
func (d *Dev) begin() error {
	if d.halted {
		return ErrHalted
	}
	if d.state == transmitting {
		return ErrBusy
	}
	d.state = transmitting
	return nil
}

func (d *Dev) end() {
	d.state = idle
}

// frame prefixes the 24-bit color with the 1 marker bit.
func frame(c uint32) uint32 {
	return c&0x00FFFFFF | marker
}

// level returns the level of bit 24 of f.
func level(f uint32) gpio.Level {
	return f&marker != 0
}

// writePixel clocks in the 25-bit frame of pixel i, most significant bit first.
func (d *Dev) writePixel(i int) error {
	f := frame(uint32(d.buf.Pix[i]))
	for j := 0; j < FrameBits; j++ {
		if err := d.out(d.data, level(f)); err != nil {
			return err
		}
		if err := d.toggleClock(); err != nil {
			return err
		}
		f <<= 1
	}
	return nil
}

// writeBlank clocks in a run of zeros long enough to flush every chip.
func (d *Dev) writeBlank() error {
	for j := 0; j < d.blank; j++ {
		if err := d.out(d.data, gpio.Low); err != nil {
			return err
		}
		if err := d.toggleClock(); err != nil {
			return err
		}
	}
	return nil
}

// pulses toggles the clock n times without touching the data lines.
func (d *Dev) pulses(n int) error {
	for j := 0; j < n; j++ {
		if err := d.toggleClock(); err != nil {
			return err
		}
	}
	return nil
}

// toggleClock drives the clock high then low, shifting one bit down the strip.
func (d *Dev) toggleClock() error {
	if err := d.out(d.clk, gpio.High); err != nil {
		return err
	}
	return d.out(d.clk, gpio.Low)
}

func (d *Dev) stripsLow() error {
	for _, pin := range d.strips {
		if err := d.out(pin, gpio.Low); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dev) out(pin gpio.PinOut, l gpio.Level) error {
	if err := pin.Out(l); err != nil {
		return fmt.Errorf("sm16716: failed to drive %s %s: %w", pin, l, err)
	}
	return nil
}
