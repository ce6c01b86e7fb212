package marionette

import (
	"fmt"
	"math"
)

const (
	// sliderRangePx is the pointer travel, in pixels, that maps to the full
	// [0, 1] factor range.
	sliderRangePx = 300.0

	// sliderPrecisionScale slows pointer deltas while Shift is held.
	sliderPrecisionScale = 0.1

	// sliderSnapStep is the increment factor values snap to while Ctrl is
	// held.
	sliderSnapStep = 0.1
)

// Slider turns raw pointer events into a normalized blend factor and a
// human-readable status string. It accumulates horizontal pointer deltas
// relative to the originating event, so the gesture is anchored where the
// interaction started.
//
// Shift engages precision mode (deltas scaled down), Ctrl snaps the reported
// factor to 10% increments. With overshoot disallowed the factor is
// hard-clamped to [0, 1] and never accumulates beyond it.
type Slider struct {
	raw            float64 // accumulated, pre-snap factor
	factor         float64 // reported factor
	lastX          float64
	allowOvershoot bool
}

// NewSlider creates a slider anchored at the originating event's X position,
// seeded with the given factor. Overshoot is allowed by default.
func NewSlider(anchorX, factor float64) *Slider {
	return &Slider{
		raw:            factor,
		factor:         factor,
		lastX:          anchorX,
		allowOvershoot: true,
	}
}

// SetAllowOvershoot controls whether the factor may leave [0, 1] during the
// gesture. Disallowing clamps the current value immediately.
func (s *Slider) SetAllowOvershoot(allow bool) {
	s.allowOvershoot = allow
	if !allow {
		s.raw = clamp(s.raw, 0, 1)
		s.factor = clamp(s.factor, 0, 1)
	}
}

// SetFactor overrides the slider's current factor, re-anchoring the gesture
// at the new value.
func (s *Slider) SetFactor(factor float64) {
	if !s.allowOvershoot {
		factor = clamp(factor, 0, 1)
	}
	s.raw = factor
	s.factor = factor
}

// Factor returns the current reported factor.
func (s *Slider) Factor() float64 {
	return s.factor
}

// Handle consumes one input event. Only pointer motion changes the factor;
// all other events are ignored so the session can interpret them as discrete
// commands.
func (s *Slider) Handle(ev InputEvent) {
	if ev.Kind != KindPointerMove {
		return
	}
	dx := ev.X - s.lastX
	s.lastX = ev.X

	delta := dx / sliderRangePx
	if ev.Modifiers&ModShift != 0 {
		delta *= sliderPrecisionScale
	}
	s.raw += delta
	if !s.allowOvershoot {
		s.raw = clamp(s.raw, 0, 1)
	}

	f := s.raw
	if ev.Modifiers&ModCtrl != 0 {
		f = math.Round(f/sliderSnapStep) * sliderSnapStep
		if !s.allowOvershoot {
			f = clamp(f, 0, 1)
		}
	}
	s.factor = f
}

// StatusString returns the slider's contribution to the session header text.
func (s *Slider) StatusString() string {
	return fmt.Sprintf("Blend: %d%% | Shift: Precision | Ctrl: Snap",
		int(math.Round(s.factor*100)))
}
