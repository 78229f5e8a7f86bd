// Package widget implements the Year slider, the play/pause button and the
// controller that wires them to the plot and the host's periodic callbacks.
//
// # State
//
// The button is a two-state machine ([Paused], [Playing]) whose label is
// derived from the state. The controller holds at most one periodic callback
// handle; holding one is the same as being [Playing]. [Controller.Play] and
// [Controller.Pause] are idempotent, so a callback is never registered twice
// or removed twice.
//
// # Animation
//
// Each periodic tick advances the slider by one step and wraps from End back
// to Start. Every slider change redraws the plot for the new value; frames are
// never interpolated.
package widget
