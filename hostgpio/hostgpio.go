// Package hostgpio runs an SM16716 grid on the GPIO drivers of periph.io/x/host.
package hostgpio

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// Host implements sm16716.Platform.
type Host struct {
	log zerolog.Logger
}

// New returns a Host logging to log.
func New(log zerolog.Logger) *Host {
	return &Host{log: log}
}

// Init loads the periph.io host drivers. Drivers that fail to load are only
// counted; the pin lookup in Output reports a missing GPIO driver.
func (h *Host) Init() error {
	state, err := host.Init()
	if err != nil {
		return fmt.Errorf("hostgpio: %w", err)
	}
	h.log.Debug().
		Int("loaded", len(state.Loaded)).
		Int("skipped", len(state.Skipped)).
		Int("failed", len(state.Failed)).
		Msg("hostgpio: drivers initialized")
	return nil
}

// Output looks up the pin by name (e.g. "GPIO10") and drives it low, which
// configures it as an output.
func (h *Host) Output(name string) (gpio.PinOut, error) {
	if name == "" {
		return nil, errors.New("hostgpio: empty pin name")
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("hostgpio: pin %s not found", name)
	}
	if err := p.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("hostgpio: failed to set %s as output: %w", name, err)
	}
	h.log.Debug().Str("pin", p.Name()).Int("number", p.Number()).Msg("hostgpio: output")
	return p, nil
}

// Sleep blocks for d.
func (h *Host) Sleep(d time.Duration) {
	time.Sleep(d)
}
