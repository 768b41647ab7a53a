package nav

import (
	"github.com/zaaray/portfolio/internal/dom"
)

// Config holds the tracker's tuning constants.
type Config struct {
	// HeaderHeight is the fixed header's height in px; the probe starts
	// below it.
	HeaderHeight float64
	// ProbeFraction places the probe this far down the viewport.
	ProbeFraction float64
	// SolidThreshold is the scroll offset past which the header is solid.
	SolidThreshold float64
}

// DefaultConfig returns the constants the stylesheet is built around.
func DefaultConfig() Config {
	return Config{
		HeaderHeight:   64,
		ProbeFraction:  0.33,
		SolidThreshold: 8,
	}
}

// Probe returns the document y coordinate used to pick the active section.
func (c Config) Probe(scrollY, viewportHeight float64) float64 {
	return scrollY + c.HeaderHeight + viewportHeight*c.ProbeFraction
}

// IsSolid reports whether the header should be drawn solid at scrollY.
func (c Config) IsSolid(scrollY float64) bool {
	return scrollY > c.SolidThreshold
}

// Section is a measured page section.
type Section struct {
	ID     string
	Top    float64
	Height float64
}

// Contains reports whether y falls in [Top, Top+Height).
func (s Section) Contains(y float64) bool {
	return y >= s.Top && y < s.Top+s.Height
}

// ActiveSection returns the id of the first section containing probe. When
// none does it returns the first section's id; with no sections it returns
// "".
func ActiveSection(sections []Section, probe float64) string {
	if len(sections) == 0 {
		return ""
	}
	for _, s := range sections {
		if s.Contains(probe) {
			return s.ID
		}
	}
	return sections[0].ID
}

// Compute derives the navigation state for a scroll position. With no
// sections it returns InitialState.
func (c Config) Compute(sections []Section, scrollY, viewportHeight float64) State {
	if len(sections) == 0 {
		return InitialState()
	}
	return State{
		Active: ActiveSection(sections, c.Probe(scrollY, viewportHeight)),
		Solid:  c.IsSolid(scrollY),
	}
}

// sectionSelector matches every element that can be tracked.
const sectionSelector = "section[id]"

// Tracker keeps State current as the page scrolls and resizes.
type Tracker struct {
	cfg      Config
	win      dom.Window
	doc      dom.Document
	onChange func(State)

	state    State
	measured bool
	elems    []dom.Element
	release  dom.Release
}

// NewTracker returns an unmounted tracker. onChange, when non-nil, is
// called with the first computed state and with every change after it.
func NewTracker(win dom.Window, doc dom.Document, cfg Config, onChange func(State)) *Tracker {
	return &Tracker{
		cfg:      cfg,
		win:      win,
		doc:      doc,
		onChange: onChange,
		state:    InitialState(),
	}
}

// State returns the current navigation state.
func (t *Tracker) State() State { return t.state }

// Mount collects the sections, computes the state once and follows scroll
// and resize until the returned Release is called. Mounting again releases
// the previous mount first. A page without sections mounts nothing.
func (t *Tracker) Mount() dom.Release {
	t.Unmount()
	t.elems = t.doc.QuerySelectorAll(sectionSelector)
	if len(t.elems) == 0 {
		return dom.Noop
	}
	t.update()
	opts := dom.ListenerOptions{Passive: true}
	onEvent := func(dom.Event) { t.update() }
	t.release = dom.Combine(
		t.win.AddEventListener("scroll", onEvent, opts),
		t.win.AddEventListener("resize", onEvent, opts),
	)
	return t.release
}

// Unmount removes the listeners of the current mount, if any.
func (t *Tracker) Unmount() {
	if t.release != nil {
		t.release()
		t.release = nil
	}
}

// measure reads section geometry; it changes with viewport width, so it is
// read on every update.
func (t *Tracker) measure() []Section {
	sections := make([]Section, 0, len(t.elems))
	for _, el := range t.elems {
		sections = append(sections, Section{
			ID:     el.ID(),
			Top:    el.OffsetTop(),
			Height: el.OffsetHeight(),
		})
	}
	return sections
}

func (t *Tracker) update() {
	next := t.cfg.Compute(t.measure(), t.win.ScrollY(), t.win.InnerHeight())
	changed := !t.measured || next != t.state
	t.state = next
	t.measured = true
	if changed && t.onChange != nil {
		t.onChange(next)
	}
}
