// Package document is the host session the chart is mounted into.
//
// A Document owns the visible root and the periodic callbacks. Callbacks are
// driven by bubbletea ticks: registering one queues a tick, every delivered
// [PeriodicMsg] runs the callback and re-arms the tick, and ticks that arrive
// after removal are dropped. All methods are called from the bubbletea update
// loop and are not safe for concurrent use.
package document

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	// ErrUnknownCallback indicates removal of a callback that is not registered.
	ErrUnknownCallback = errors.New("document: unknown periodic callback")

	// ErrAlreadyMounted indicates a second root was attached.
	ErrAlreadyMounted = errors.New("document: root already attached")
)

// CallbackID identifies a registered periodic callback.
type CallbackID uint64

// PeriodicMsg is delivered when a periodic callback is due.
type PeriodicMsg struct {
	ID CallbackID
	At time.Time
}

// Root is the visible layout of a document.
type Root interface {
	Render() string
}

type periodic struct {
	fn       func()
	interval time.Duration
}

// Document is a single interactive session.
type Document struct {
	title     string
	root      Root
	callbacks map[CallbackID]*periodic
	nextID    CallbackID
	pending   []tea.Cmd
}

// New returns an empty document.
func New() *Document {
	return &Document{callbacks: make(map[CallbackID]*periodic)}
}

// AddPeriodicCallback registers fn to run every interval and returns its handle.
func (d *Document) AddPeriodicCallback(fn func(), interval time.Duration) CallbackID {
	d.nextID++
	id := d.nextID
	d.callbacks[id] = &periodic{fn: fn, interval: interval}
	d.pending = append(d.pending, tick(id, interval))
	return id
}

// RemovePeriodicCallback unregisters a callback. Ticks already in flight are dropped on arrival.
func (d *Document) RemovePeriodicCallback(id CallbackID) error {
	if _, ok := d.callbacks[id]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownCallback, id)
	}
	delete(d.callbacks, id)
	return nil
}

// Active returns the number of registered callbacks.
func (d *Document) Active() int {
	return len(d.callbacks)
}

// Registered reports whether id is still registered.
func (d *Document) Registered(id CallbackID) bool {
	_, ok := d.callbacks[id]
	return ok
}

// Handle runs a due callback and re-arms its tick. It reports whether the callback ran.
func (d *Document) Handle(msg PeriodicMsg) bool {
	cb, ok := d.callbacks[msg.ID]
	if !ok {
		return false
	}
	cb.fn()
	// the callback may have removed itself
	if _, still := d.callbacks[msg.ID]; still {
		d.pending = append(d.pending, tick(msg.ID, cb.interval))
	}
	return true
}

// Cmd drains queued ticks into a single command. It returns nil when nothing is queued.
func (d *Document) Cmd() tea.Cmd {
	if len(d.pending) == 0 {
		return nil
	}
	cmds := d.pending
	d.pending = nil
	return tea.Batch(cmds...)
}

// Pending returns the number of queued ticks.
func (d *Document) Pending() int {
	return len(d.pending)
}

func tick(id CallbackID, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return PeriodicMsg{ID: id, At: t}
	})
}

// AddRoot attaches the visible layout. A document has at most one root.
func (d *Document) AddRoot(r Root) error {
	if d.root != nil {
		return ErrAlreadyMounted
	}
	d.root = r
	return nil
}

// Root returns the attached layout, or nil.
func (d *Document) Root() Root {
	return d.root
}

// Title returns the document title.
func (d *Document) Title() string {
	return d.title
}

// SetTitle sets the document title.
func (d *Document) SetTitle(title string) {
	d.title = title
}
