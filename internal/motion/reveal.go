// Package motion animates page blocks: a one-shot reveal when a block first
// scrolls into view, and a scroll-linked parallax offset.
package motion

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/zaaray/portfolio/internal/dom"
)

// Attributes the renderers put on animated blocks.
const (
	RevealAttr      = "data-reveal"
	RevealDelayAttr = "data-reveal-delay"
	// ReadyClass goes on the root element once reveals are being observed.
	ReadyClass = "reveal-ready"
	// FallbackClass on the root element shows every block unanimated.
	FallbackClass = "reveal-fallback"
)

// Config holds the reveal animation's constants.
type Config struct {
	// Margin pulls the viewport in on every side, in px, so blocks reveal
	// slightly before they are fully on screen.
	Margin float64
	// Duration is the length of the hidden-to-visible transition.
	Duration time.Duration
	// Offset is how far below its final position a hidden block sits, in px.
	Offset float64
}

// DefaultConfig returns the page's reveal constants.
func DefaultConfig() Config {
	return Config{
		Margin:   80,
		Duration: 600 * time.Millisecond,
		Offset:   24,
	}
}

// RootMargin is the observer root margin for c.
func (c Config) RootMargin() string {
	return fmt.Sprintf("-%spx", formatFloat(c.Margin))
}

// HiddenStyle is the inline style of a block that has not been revealed.
func (c Config) HiddenStyle() string {
	return fmt.Sprintf("opacity: 0; transform: translateY(%spx)", formatFloat(c.Offset))
}

// Transition is the CSS transition for a block revealed after delay.
func (c Config) Transition(delay time.Duration) string {
	d := formatFloat(c.Duration.Seconds()) + "s"
	wait := formatFloat(delay.Seconds()) + "s"
	return fmt.Sprintf("opacity %s ease-out %s, transform %s ease-out %s", d, wait, d, wait)
}

// Seconds converts a delay in seconds, as written by the renderers, to a
// Duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// FormatDelay writes a delay the way ParseDelay reads it.
func FormatDelay(d time.Duration) string {
	return formatFloat(d.Seconds())
}

// ParseDelay reads a delay attribute. Empty, malformed or negative values
// mean no delay.
func ParseDelay(v string) time.Duration {
	s, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || s <= 0 {
		return 0
	}
	return Seconds(s)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// block is one animated element and its one-shot state.
type block struct {
	el       dom.Element
	delay    time.Duration
	revealed bool
}

// Revealer reveals data-reveal blocks the first time they intersect the
// viewport.
type Revealer struct {
	cfg Config
	win dom.Window
	doc dom.Document

	blocks   []*block
	observer dom.Observer
	release  dom.Release
}

// NewRevealer returns an unmounted revealer.
func NewRevealer(win dom.Window, doc dom.Document, cfg Config) *Revealer {
	return &Revealer{cfg: cfg, win: win, doc: doc}
}

// Mount hides every block that has not been revealed yet and starts
// observing them. Mounting again releases the previous observer first;
// blocks already revealed stay revealed.
func (r *Revealer) Mount() dom.Release {
	r.Unmount()
	r.collect()

	r.observer = r.win.ObserveIntersections(r.handle, dom.ObserverOptions{RootMargin: r.cfg.RootMargin()})
	for _, b := range r.blocks {
		if b.revealed {
			continue
		}
		b.el.SetStyle("opacity", "0")
		b.el.SetStyle("transform", fmt.Sprintf("translateY(%spx)", formatFloat(r.cfg.Offset)))
		b.el.SetStyle("transition", r.cfg.Transition(b.delay))
		r.observer.Observe(b.el)
	}
	if root := r.doc.Root(); root != nil {
		root.SetClass(ReadyClass, true)
	}

	observer := r.observer
	r.release = dom.Once(func() {
		observer.Disconnect()
	})
	return r.release
}

// Unmount disconnects the observer, if mounted.
func (r *Revealer) Unmount() {
	if r.release != nil {
		r.release()
		r.release = nil
	}
}

// collect picks up blocks not seen before, keeping state for known ones.
func (r *Revealer) collect() {
	for _, el := range r.doc.QuerySelectorAll("[" + RevealAttr + "]") {
		if r.find(el) != nil {
			continue
		}
		v, _ := el.Attr(RevealDelayAttr)
		r.blocks = append(r.blocks, &block{el: el, delay: ParseDelay(v)})
	}
}

func (r *Revealer) find(el dom.Element) *block {
	for _, b := range r.blocks {
		if b.el.IsSameNode(el) {
			return b
		}
	}
	return nil
}

func (r *Revealer) handle(entries []dom.Intersection) {
	for _, entry := range entries {
		if entry.Intersecting {
			r.Reveal(entry.Target)
		}
	}
}

// Reveal shows el if it is a tracked block that has not been revealed.
// Later calls for the same block do nothing.
func (r *Revealer) Reveal(el dom.Element) {
	b := r.find(el)
	if b == nil || b.revealed {
		return
	}
	b.revealed = true
	b.el.SetStyle("opacity", "1")
	b.el.SetStyle("transform", "none")
	if r.observer != nil {
		r.observer.Unobserve(b.el)
	}
}

// Revealed reports whether el has been revealed.
func (r *Revealer) Revealed(el dom.Element) bool {
	b := r.find(el)
	return b != nil && b.revealed
}
