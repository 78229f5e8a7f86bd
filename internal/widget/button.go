package widget

import "github.com/charmbracelet/lipgloss"

// PlayState is the animation state shown by the button.
type PlayState int

const (
	Paused PlayState = iota
	Playing
)

// Button labels.
const (
	PlayLabel  = "► Play"
	PauseLabel = "❚❚ Pause"
)

func (s PlayState) String() string {
	if s == Playing {
		return "playing"
	}
	return "paused"
}

var (
	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1).
			Align(lipgloss.Center)
	buttonPlayingStyle = buttonStyle.BorderForeground(lipgloss.Color("#00ff88"))
)

// Button toggles the animation.
type Button struct {
	State PlayState
	Width int

	handlers []func()
}

// NewButton returns a paused button.
func NewButton(width int) *Button {
	return &Button{State: Paused, Width: width}
}

// Label is derived from the state.
func (b *Button) Label() string {
	if b.State == Playing {
		return PauseLabel
	}
	return PlayLabel
}

// OnClick registers a click handler.
func (b *Button) OnClick(fn func()) {
	b.handlers = append(b.handlers, fn)
}

// Click fires the click handlers.
func (b *Button) Click() {
	for _, fn := range b.handlers {
		fn()
	}
}

// Render draws the button with its label.
func (b *Button) Render() string {
	st := buttonStyle
	if b.State == Playing {
		st = buttonPlayingStyle
	}
	if b.Width > 0 {
		st = st.Width(b.Width)
	}
	return st.Render(b.Label())
}
