package widget

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ErrInvalidBounds indicates a slider with start > end or a non-positive step.
var ErrInvalidBounds = errors.New("widget: invalid slider bounds")

var (
	sliderTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	sliderTrackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	sliderFillStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	sliderKnobStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
)

// Slider selects an integer in [Start, End].
type Slider struct {
	Title string
	Start int
	End   int
	Step  int
	Value int
	Width int // track width in cells

	handlers []func(prev, next int)
}

// NewSlider returns a slider positioned at value, clamped into range.
func NewSlider(start, end, value, step int, title string) (*Slider, error) {
	if start > end || step <= 0 {
		return nil, fmt.Errorf("%w: start=%d end=%d step=%d", ErrInvalidBounds, start, end, step)
	}
	s := &Slider{Title: title, Start: start, End: end, Step: step, Width: 48}
	s.Value = s.clamp(value)
	return s, nil
}

// OnChange registers a handler called with the old and new value after every change.
func (s *Slider) OnChange(fn func(prev, next int)) {
	s.handlers = append(s.handlers, fn)
}

// SetValue clamps v into range and stores it. Handlers fire only if the value changed.
func (s *Slider) SetValue(v int) int {
	v = s.clamp(v)
	if v == s.Value {
		return v
	}
	old := s.Value
	s.Value = v
	for _, fn := range s.handlers {
		fn(old, v)
	}
	return v
}

func (s *Slider) clamp(v int) int {
	if v < s.Start {
		return s.Start
	}
	if v > s.End {
		return s.End
	}
	return v
}

// Fraction is the knob position in [0, 1].
func (s *Slider) Fraction() float64 {
	if s.End == s.Start {
		return 0
	}
	return float64(s.Value-s.Start) / float64(s.End-s.Start)
}

// Render draws the title, the track and the current value.
func (s *Slider) Render() string {
	width := s.Width
	if width < 2 {
		width = 2
	}
	knob := int(s.Fraction() * float64(width-1))

	var b strings.Builder
	b.WriteString(sliderTitleStyle.Render(s.Title + ": "))
	b.WriteString(sliderKnobStyle.Render(fmt.Sprintf("%d", s.Value)))
	b.WriteString("  ")
	b.WriteString(sliderFillStyle.Render(strings.Repeat("━", knob)))
	b.WriteString(sliderKnobStyle.Render("●"))
	b.WriteString(sliderTrackStyle.Render(strings.Repeat("─", width-knob-1)))
	b.WriteString(sliderTitleStyle.Render(fmt.Sprintf("  %d–%d", s.Start, s.End)))
	return b.String()
}
