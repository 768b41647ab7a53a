// Package dom is the slice of the browser the page behaviour needs: event
// registration, element geometry, scrolling, styling and intersection
// observation. The jsdom subpackage binds it to a real document under
// WebAssembly; domtest provides an in-memory document for tests.
package dom

import "sync"

// Release removes whatever registration returned it. Calling it more than
// once is a no-op.
type Release func()

// Once wraps fn so it runs at most one time.
func Once(fn func()) Release {
	var once sync.Once
	return func() {
		once.Do(fn)
	}
}

// Noop is a Release with nothing to release.
func Noop() {}

// Combine returns a Release that releases every non-nil r in order.
func Combine(rs ...Release) Release {
	return Once(func() {
		for _, r := range rs {
			if r != nil {
				r()
			}
		}
	})
}

// ListenerOptions mirrors the addEventListener options we use.
type ListenerOptions struct {
	// Passive listeners promise never to call PreventDefault, letting the
	// browser scroll without waiting on them.
	Passive bool
}

// Event is a dispatched DOM event.
type Event interface {
	// Target is the element the event was dispatched to, or nil when the
	// target is not an element (window, document).
	Target() Element
	PreventDefault()
	DefaultPrevented() bool
}

// Listener handles a dispatched event.
type Listener func(Event)

// EventTarget is anything that accepts event listeners.
type EventTarget interface {
	AddEventListener(typ string, fn Listener, opts ListenerOptions) Release
}

// ScrollOptions mirrors scrollIntoView options.
type ScrollOptions struct {
	Smooth bool
	// Block is the vertical alignment: "start", "center", "end" or "nearest".
	Block string
}

// Element is a DOM element.
type Element interface {
	EventTarget

	ID() string
	Attr(name string) (string, bool)
	// Closest returns the element itself or its nearest ancestor matching
	// selector, or nil.
	Closest(selector string) Element
	IsSameNode(other Element) bool

	OffsetTop() float64
	OffsetHeight() float64
	ScrollIntoView(opts ScrollOptions)

	SetClass(name string, on bool)
	SetStyle(property, value string)

	// Broken reports whether the element is an image that finished loading
	// without producing any pixels.
	Broken() bool
}

// Document is the page document.
type Document interface {
	EventTarget

	// QuerySelectorAll returns matches in document order.
	QuerySelectorAll(selector string) []Element
	// ElementByID returns nil when no element has the id.
	ElementByID(id string) Element
	// Root is the <html> element.
	Root() Element
	Body() Element
}

// Intersection is one entry delivered to an intersection observer callback.
type Intersection struct {
	Target       Element
	Intersecting bool
}

// ObserverOptions configures an intersection observer.
type ObserverOptions struct {
	// RootMargin uses CSS margin syntax; negative values shrink the viewport.
	RootMargin string
}

// Observer is an intersection observer.
type Observer interface {
	Observe(el Element)
	Unobserve(el Element)
	Disconnect()
}

// Window is the browsing context.
type Window interface {
	EventTarget

	ScrollY() float64
	InnerHeight() float64
	ObserveIntersections(cb func([]Intersection), opts ObserverOptions) Observer
}
