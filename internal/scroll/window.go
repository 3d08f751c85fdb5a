package scroll

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	defaultFPS       = 60
	defaultFrequency = 6.0
	defaultDamping   = 1.0

	// settle distance and speed below which an animation snaps to its target
	settleEpsilon = 0.5

	// hard stop for animations that never settle (e.g. an underdamped spring)
	maxFrames = 600
)

// ListenerID identifies a registered scroll listener
type ListenerID uint64

// ScrollListener receives the new offset after every scroll event
type ScrollListener func(offset float64)

type listener struct {
	id ListenerID
	fn ScrollListener
}

// Window models a scrollable viewport over content of a fixed height. It
// fires a scroll event for every change of offset, including each frame of
// a smooth animation.
type Window struct {
	viewportHeight float64
	contentHeight  float64

	offset   float64
	velocity float64
	target   float64

	animating bool
	frames    int
	spring    harmonica.Spring
	fps       int
	frequency float64
	damping   float64

	listeners []listener
	nextID    ListenerID
}

// WindowOption configures a Window
type WindowOption func(*Window)

// WithFPS sets the animation frame rate used by Step
func WithFPS(fps int) WindowOption {
	return func(w *Window) {
		if fps > 0 {
			w.fps = fps
		}
	}
}

// WithSpring tunes the smooth-scroll spring
func WithSpring(frequency, damping float64) WindowOption {
	return func(w *Window) {
		w.frequency = frequency
		w.damping = damping
	}
}

// NewWindow creates a Window at offset zero
func NewWindow(viewportHeight, contentHeight float64, opts ...WindowOption) *Window {
	w := &Window{
		viewportHeight: viewportHeight,
		contentHeight:  contentHeight,
		fps:            defaultFPS,
		frequency:      defaultFrequency,
		damping:        defaultDamping,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.spring = harmonica.NewSpring(harmonica.FPS(w.fps), w.frequency, w.damping)
	return w
}

// Offset returns the current scroll offset
func (w *Window) Offset() float64 {
	return w.offset
}

// Target returns where the window is heading; equal to Offset when idle
func (w *Window) Target() float64 {
	if w.animating {
		return w.target
	}
	return w.offset
}

// Animating reports whether a smooth scroll is in progress
func (w *Window) Animating() bool {
	return w.animating
}

// FPS returns the animation frame rate
func (w *Window) FPS() int {
	return w.fps
}

// ViewportHeight returns the visible height
func (w *Window) ViewportHeight() float64 {
	return w.viewportHeight
}

// MaxOffset returns the largest reachable offset
func (w *Window) MaxOffset() float64 {
	return math.Max(0, w.contentHeight-w.viewportHeight)
}

// Resize changes the viewport and content heights. The offset is clamped
// and a scroll event fires if it moved.
func (w *Window) Resize(viewportHeight, contentHeight float64) {
	w.viewportHeight = viewportHeight
	w.contentHeight = contentHeight
	if w.animating {
		w.target = w.clamp(w.target)
	}
	w.setOffset(w.clamp(w.offset))
}

// AddScrollListener registers fn for scroll events
func (w *Window) AddScrollListener(fn ScrollListener) ListenerID {
	w.nextID++
	w.listeners = append(w.listeners, listener{id: w.nextID, fn: fn})
	return w.nextID
}

// RemoveScrollListener unregisters a listener. It reports whether the
// listener was registered.
func (w *Window) RemoveScrollListener(id ListenerID) bool {
	for i, l := range w.listeners {
		if l.id == id {
			w.listeners = append(w.listeners[:i], w.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// Listeners returns the number of registered listeners
func (w *Window) Listeners() int {
	return len(w.listeners)
}

// ScrollTo implements Scroller. An instant scroll jumps and fires one event;
// a smooth scroll starts an animation advanced by Step.
func (w *Window) ScrollTo(top float64, behavior Behavior) {
	top = w.clamp(top)
	if behavior == BehaviorInstant {
		w.stop()
		w.setOffset(top)
		return
	}
	if top == w.offset && !w.animating {
		return
	}
	w.target = top
	w.frames = 0
	w.animating = true
}

// ScrollBy moves the offset by delta immediately, interrupting any
// animation the same way a wheel event does.
func (w *Window) ScrollBy(delta float64) {
	w.stop()
	w.setOffset(w.clamp(w.offset + delta))
}

// Step advances a smooth scroll by one frame, firing a scroll event if the
// offset moved. It returns true while the animation is still running.
func (w *Window) Step() bool {
	if !w.animating {
		return false
	}
	w.frames++
	pos, vel := w.spring.Update(w.offset, w.velocity, w.target)
	w.velocity = vel
	if math.Abs(pos-w.target) < settleEpsilon && math.Abs(vel) < settleEpsilon || w.frames >= maxFrames {
		pos = w.target
		w.stop()
	}
	w.setOffset(w.clamp(pos))
	return w.animating
}

// Settle runs the current animation to completion
func (w *Window) Settle() {
	for w.Step() {
	}
}

func (w *Window) stop() {
	w.animating = false
	w.velocity = 0
	w.frames = 0
}

func (w *Window) clamp(y float64) float64 {
	return math.Min(math.Max(y, 0), w.MaxOffset())
}

func (w *Window) setOffset(y float64) {
	if y == w.offset {
		return
	}
	w.offset = y
	w.dispatch()
}

func (w *Window) dispatch() {
	// Listeners may unregister during dispatch; removed ones are not called.
	ls := append([]listener(nil), w.listeners...)
	for _, l := range ls {
		if !w.registered(l.id) {
			continue
		}
		l.fn(w.offset)
	}
}

func (w *Window) registered(id ListenerID) bool {
	for _, l := range w.listeners {
		if l.id == id {
			return true
		}
	}
	return false
}
