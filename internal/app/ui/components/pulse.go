package components

import (
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

const (
	empty = "◯"
	full  = "◉"

	pulseFPS = UITicksPerSecond

	// Spring physics parameters
	pulseAngularFrequency = 8.0
	pulseDampingRatio     = 0.7

	// Ticks spent on each half of the beat
	pulseOnTicks  = 3
	pulseOffTicks = 3

	pulseFrameThreshold = 0.3

	pulsePositionFull  = 1.0
	pulsePositionEmpty = 0.0
)

// Pulse animates the activity indicator shown while the chain is ticking
type Pulse struct {
	spring    harmonica.Spring
	position  float64
	velocity  float64
	target    float64
	active    bool
	tickCount int
}

// NewPulse creates an idle pulse
func NewPulse() *Pulse {
	return &Pulse{
		spring: harmonica.NewSpring(harmonica.FPS(pulseFPS), pulseAngularFrequency, pulseDampingRatio),
	}
}

// Start begins pulsing
func (p *Pulse) Start() {
	if p.active {
		return
	}

	p.active = true
	p.target = pulsePositionFull
	p.tickCount = 0
}

// Stop ends pulsing and resets to empty
func (p *Pulse) Stop() {
	p.active = false
	p.target = pulsePositionEmpty
	p.position = pulsePositionEmpty
	p.velocity = pulsePositionEmpty
	p.tickCount = 0
}

// Update advances the animation (called on each UI tick)
func (p *Pulse) Update() {
	if !p.active {
		return
	}

	p.position, p.velocity = p.spring.Update(p.position, p.velocity, p.target)
	p.tickCount++

	switch p.target {
	case pulsePositionFull:
		if p.tickCount >= pulseOnTicks {
			p.target = pulsePositionEmpty
			p.tickCount = 0
		}
	default:
		if p.tickCount >= pulseOffTicks {
			p.target = pulsePositionFull
			p.tickCount = 0
		}
	}
}

// Frame returns the current frame based on the spring position
func (p *Pulse) Frame() string {
	if !p.active || p.position < pulseFrameThreshold {
		return empty
	}

	return full
}

// Render returns the styled frame
func (p *Pulse) Render(style lipgloss.Style) string {
	return style.Render(p.Frame())
}

// IsActive returns whether the animation is currently running
func (p *Pulse) IsActive() bool {
	return p.active
}
