package widget

import (
	"time"

	"github.com/san-kum/gapminder/internal/document"
	"github.com/san-kum/gapminder/internal/logging"
)

// DefaultInterval is the animation period.
const DefaultInterval = 200 * time.Millisecond

// Host schedules periodic callbacks.
type Host interface {
	AddPeriodicCallback(fn func(), interval time.Duration) document.CallbackID
	RemovePeriodicCallback(id document.CallbackID) error
}

// Updater redraws the plot for a slider value.
type Updater interface {
	Update(key int) error
}

// Option configures a Controller.
type Option func(*Controller)

// WithInterval sets the animation period.
func WithInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithLogger sets the controller's logger.
func WithLogger(l *logging.Logger) Option {
	return func(c *Controller) {
		c.log = l.WithComponent("widget")
	}
}

// Controller owns the slider, the button and the animation timer.
type Controller struct {
	Slider *Slider
	Button *Button

	host     Host
	plot     Updater
	interval time.Duration
	timer    document.CallbackID
	hasTimer bool
	log      *logging.Logger
	err      error
}

// NewController wires slider changes to plot updates and button clicks to Toggle.
func NewController(host Host, plot Updater, slider *Slider, button *Button, opts ...Option) *Controller {
	c := &Controller{
		Slider:   slider,
		Button:   button,
		host:     host,
		plot:     plot,
		interval: DefaultInterval,
		log:      logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	slider.OnChange(c.SliderUpdate)
	button.OnClick(c.Toggle)
	c.syncButton()
	return c
}

// Interval returns the animation period.
func (c *Controller) Interval() time.Duration {
	return c.interval
}

// Playing reports whether the animation timer is registered.
func (c *Controller) Playing() bool {
	return c.hasTimer
}

// Timer returns the registered callback handle and whether one is held.
func (c *Controller) Timer() (document.CallbackID, bool) {
	return c.timer, c.hasTimer
}

// Toggle flips between playing and paused.
func (c *Controller) Toggle() {
	if c.Playing() {
		c.Pause()
		return
	}
	c.Play()
}

// Play registers the animation callback. It does nothing while playing.
func (c *Controller) Play() {
	if c.hasTimer {
		return
	}
	c.timer = c.host.AddPeriodicCallback(c.AnimateUpdate, c.interval)
	c.hasTimer = true
	c.syncButton()
	c.log.Info("animation started", "year", c.Slider.Value, "interval_ms", c.interval.Milliseconds())
}

// Pause removes the animation callback. It does nothing while paused.
func (c *Controller) Pause() {
	if !c.hasTimer {
		return
	}
	if err := c.host.RemovePeriodicCallback(c.timer); err != nil {
		c.log.Warn("remove periodic callback", "error", err.Error())
	}
	c.timer, c.hasTimer = 0, false
	c.syncButton()
	c.log.Info("animation paused", "year", c.Slider.Value)
}

// syncButton derives the button state from the timer handle.
func (c *Controller) syncButton() {
	if c.hasTimer {
		c.Button.State = Playing
	} else {
		c.Button.State = Paused
	}
}

// AnimateUpdate advances the slider by one step, wrapping from End to Start.
func (c *Controller) AnimateUpdate() {
	next := c.Slider.Value + c.Slider.Step
	if next > c.Slider.End {
		next = c.Slider.Start
	}
	c.Slider.SetValue(next)
}

// Drag moves the slider by delta steps without wrapping.
func (c *Controller) Drag(delta int) {
	c.Slider.SetValue(c.Slider.Value + delta*c.Slider.Step)
}

// Seek moves the slider to v, clamped into range.
func (c *Controller) Seek(v int) {
	c.Slider.SetValue(v)
}

// SliderUpdate redraws the plot for the new slider value.
func (c *Controller) SliderUpdate(prev, next int) {
	c.log.Debug("slider changed", "old", prev, "new", next)
	if err := c.plot.Update(next); err != nil {
		c.err = err
		c.log.Warn("plot update failed", "year", next, "error", err.Error())
	}
}

// Err returns the last plot update error.
func (c *Controller) Err() error {
	return c.err
}
