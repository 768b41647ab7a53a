// Package domtest is an in-memory dom implementation for tests. Geometry is
// whatever the test assigns; events are dispatched synchronously.
package domtest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/zaaray/portfolio/internal/dom"
)

type registration struct {
	typ     string
	fn      dom.Listener
	opts    dom.ListenerOptions
	removed bool
}

type listeners struct {
	regs []*registration
}

func (l *listeners) add(typ string, fn dom.Listener, opts dom.ListenerOptions) dom.Release {
	r := &registration{typ: typ, fn: fn, opts: opts}
	l.regs = append(l.regs, r)
	return dom.Once(func() {
		r.removed = true
		kept := l.regs[:0]
		for _, other := range l.regs {
			if other != r {
				kept = append(kept, other)
			}
		}
		l.regs = kept
	})
}

func (l *listeners) dispatch(typ string, ev dom.Event) {
	snapshot := append([]*registration(nil), l.regs...)
	for _, r := range snapshot {
		if r.typ == typ && !r.removed {
			r.fn(ev)
		}
	}
}

func (l *listeners) count(typ string) int {
	n := 0
	for _, r := range l.regs {
		if r.typ == typ {
			n++
		}
	}
	return n
}

func (l *listeners) options(typ string) []dom.ListenerOptions {
	var out []dom.ListenerOptions
	for _, r := range l.regs {
		if r.typ == typ {
			out = append(out, r.opts)
		}
	}
	return out
}

// Event is a synchronously dispatched event.
type Event struct {
	target    *Element
	prevented bool
}

func (e *Event) Target() dom.Element {
	if e.target == nil {
		return nil
	}
	return e.target
}

func (e *Event) PreventDefault()        { e.prevented = true }
func (e *Event) DefaultPrevented() bool { return e.prevented }

// Element is an in-memory element.
type Element struct {
	Tag string
	// Top and Height are returned as offsetTop and offsetHeight.
	Top, Height float64
	// Style holds every property set through SetStyle.
	Style map[string]string
	// Scrolls records every ScrollIntoView call.
	Scrolls []dom.ScrollOptions

	attrs    map[string]string
	classes  []string
	parent   *Element
	children []*Element
	failed   bool
	ls       listeners
}

var _ dom.Element = (*Element)(nil)

// NewElement builds a detached element from tag and name/value attribute
// pairs. A "class" attribute is split into the class list.
func NewElement(tag string, attrs ...string) *Element {
	if len(attrs)%2 != 0 {
		panic("domtest: attrs must be name/value pairs")
	}
	e := &Element{Tag: tag, Style: map[string]string{}, attrs: map[string]string{}}
	for i := 0; i < len(attrs); i += 2 {
		if attrs[i] == "class" {
			e.classes = strings.Fields(attrs[i+1])
			continue
		}
		e.attrs[attrs[i]] = attrs[i+1]
	}
	return e
}

// Append attaches children to e and returns e.
func (e *Element) Append(children ...*Element) *Element {
	for _, c := range children {
		c.parent = e
		e.children = append(e.children, c)
	}
	return e
}

func (e *Element) AddEventListener(typ string, fn dom.Listener, opts dom.ListenerOptions) dom.Release {
	return e.ls.add(typ, fn, opts)
}

// ListenerCount reports the live listeners of typ on e.
func (e *Element) ListenerCount(typ string) int { return e.ls.count(typ) }

func (e *Element) ID() string { return e.attrs["id"] }

func (e *Element) Attr(name string) (string, bool) {
	if name == "class" {
		if len(e.classes) == 0 {
			return "", false
		}
		return strings.Join(e.classes, " "), true
	}
	v, ok := e.attrs[name]
	return v, ok
}

// SetAttr sets an attribute. Setting "class" replaces the class list.
func (e *Element) SetAttr(name, value string) {
	if name == "class" {
		e.classes = strings.Fields(value)
		return
	}
	e.attrs[name] = value
}

func (e *Element) Closest(selector string) dom.Element {
	sel := mustParse(selector)
	for cur := e; cur != nil; cur = cur.parent {
		if sel.matches(cur) {
			return cur
		}
	}
	return nil
}

func (e *Element) IsSameNode(other dom.Element) bool {
	o, ok := other.(*Element)
	return ok && o == e
}

func (e *Element) OffsetTop() float64    { return e.Top }
func (e *Element) OffsetHeight() float64 { return e.Height }

func (e *Element) ScrollIntoView(opts dom.ScrollOptions) {
	e.Scrolls = append(e.Scrolls, opts)
}

func (e *Element) SetClass(name string, on bool) {
	has := e.HasClass(name)
	switch {
	case on && !has:
		e.classes = append(e.classes, name)
	case !on && has:
		kept := e.classes[:0]
		for _, c := range e.classes {
			if c != name {
				kept = append(kept, c)
			}
		}
		e.classes = kept
	}
}

// HasClass reports whether name is in the class list.
func (e *Element) HasClass(name string) bool {
	for _, c := range e.classes {
		if c == name {
			return true
		}
	}
	return false
}

func (e *Element) SetStyle(property, value string) {
	e.Style[property] = value
}

func (e *Element) Broken() bool {
	return e.Tag == "img" && e.failed
}

// FailLoad marks an image as failed and fires its error event.
func (e *Element) FailLoad() {
	e.failed = true
	e.ls.dispatch("error", &Event{target: e})
}

// Document is an in-memory document with <html> and <body>.
type Document struct {
	root *Element
	body *Element
	ls   listeners
}

var _ dom.Document = (*Document)(nil)

// NewDocument returns an empty document.
func NewDocument() *Document {
	body := NewElement("body")
	root := NewElement("html").Append(NewElement("head"), body)
	return &Document{root: root, body: body}
}

// Add appends children to the body.
func (d *Document) Add(children ...*Element) *Document {
	d.body.Append(children...)
	return d
}

func (d *Document) AddEventListener(typ string, fn dom.Listener, opts dom.ListenerOptions) dom.Release {
	return d.ls.add(typ, fn, opts)
}

// ListenerCount reports the live document listeners of typ.
func (d *Document) ListenerCount(typ string) int { return d.ls.count(typ) }

// Click dispatches a bubbling click at el and returns the event.
func (d *Document) Click(el *Element) *Event {
	ev := &Event{target: el}
	for cur := el; cur != nil; cur = cur.parent {
		cur.ls.dispatch("click", ev)
	}
	d.ls.dispatch("click", ev)
	return ev
}

func (d *Document) QuerySelectorAll(selector string) []dom.Element {
	sel := mustParse(selector)
	var out []dom.Element
	walk(d.root, func(e *Element) {
		if sel.matches(e) {
			out = append(out, e)
		}
	})
	return out
}

func (d *Document) ElementByID(id string) dom.Element {
	var found *Element
	walk(d.root, func(e *Element) {
		if found == nil && e.ID() == id {
			found = e
		}
	})
	if found == nil {
		return nil
	}
	return found
}

func (d *Document) Root() dom.Element { return d.root }
func (d *Document) Body() dom.Element { return d.body }

// RootElement is Root without the interface conversion.
func (d *Document) RootElement() *Element { return d.root }

// BodyElement is Body without the interface conversion.
func (d *Document) BodyElement() *Element { return d.body }

func walk(e *Element, fn func(*Element)) {
	fn(e)
	for _, c := range e.children {
		walk(c, fn)
	}
}

// Window is an in-memory browsing context.
type Window struct {
	Y      float64
	Height float64

	ls        listeners
	observers []*Observer
}

var _ dom.Window = (*Window)(nil)

// NewWindow returns a window scrolled to the top with the given viewport
// height.
func NewWindow(height float64) *Window {
	return &Window{Height: height}
}

func (w *Window) AddEventListener(typ string, fn dom.Listener, opts dom.ListenerOptions) dom.Release {
	return w.ls.add(typ, fn, opts)
}

// ListenerCount reports the live window listeners of typ.
func (w *Window) ListenerCount(typ string) int { return w.ls.count(typ) }

// ListenerOptions reports the options of the live window listeners of typ.
func (w *Window) ListenerOptions(typ string) []dom.ListenerOptions { return w.ls.options(typ) }

func (w *Window) ScrollY() float64     { return w.Y }
func (w *Window) InnerHeight() float64 { return w.Height }

// ScrollTo moves the viewport and fires scroll.
func (w *Window) ScrollTo(y float64) {
	w.Y = y
	w.ls.dispatch("scroll", &Event{})
}

// Resize changes the viewport height and fires resize.
func (w *Window) Resize(height float64) {
	w.Height = height
	w.ls.dispatch("resize", &Event{})
}

func (w *Window) ObserveIntersections(cb func([]dom.Intersection), opts dom.ObserverOptions) dom.Observer {
	o := &Observer{cb: cb, Options: opts}
	w.observers = append(w.observers, o)
	return o
}

// Observers returns every observer created so far, disconnected or not.
func (w *Window) Observers() []*Observer { return w.observers }

// Intersect delivers an entry for el to every live observer watching it.
func (w *Window) Intersect(el *Element, intersecting bool) {
	for _, o := range w.observers {
		if o.Watching(el) {
			o.cb([]dom.Intersection{{Target: el, Intersecting: intersecting}})
		}
	}
}

// Observer is an in-memory intersection observer.
type Observer struct {
	Options      dom.ObserverOptions
	Disconnected bool

	cb       func([]dom.Intersection)
	observed []*Element
}

func (o *Observer) Observe(el dom.Element) {
	e, ok := el.(*Element)
	if !ok || o.Disconnected || o.Watching(e) {
		return
	}
	o.observed = append(o.observed, e)
}

func (o *Observer) Unobserve(el dom.Element) {
	kept := o.observed[:0]
	for _, e := range o.observed {
		if !e.IsSameNode(el) {
			kept = append(kept, e)
		}
	}
	o.observed = kept
}

func (o *Observer) Disconnect() {
	o.Disconnected = true
	o.observed = nil
}

// Watching reports whether el is currently observed.
func (o *Observer) Watching(el *Element) bool {
	if o.Disconnected {
		return false
	}
	for _, e := range o.observed {
		if e == el {
			return true
		}
	}
	return false
}

// selector supports tag, .class and [attr], [attr="v"], [attr^="v"]
// compounds. Combinators are not supported.
type selector struct {
	tag     string
	classes []string
	attrs   []attrCond
}

type attrCond struct {
	name, op, value string
}

var (
	compoundRe = regexp.MustCompile(`^([A-Za-z0-9]*)((?:\.[A-Za-z0-9_-]+)*)((?:\[[A-Za-z0-9_-]+(?:\^?="[^"]*")?\])*)$`)
	attrRe     = regexp.MustCompile(`\[([A-Za-z0-9_-]+)(?:(\^?=)"([^"]*)")?\]`)
)

func mustParse(s string) selector {
	m := compoundRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil || (m[1] == "" && m[2] == "" && m[3] == "") {
		panic(fmt.Sprintf("domtest: unsupported selector %q", s))
	}
	sel := selector{tag: m[1]}
	for _, c := range strings.Split(m[2], ".") {
		if c != "" {
			sel.classes = append(sel.classes, c)
		}
	}
	for _, a := range attrRe.FindAllStringSubmatch(m[3], -1) {
		sel.attrs = append(sel.attrs, attrCond{name: a[1], op: a[2], value: a[3]})
	}
	return sel
}

func (s selector) matches(e *Element) bool {
	if s.tag != "" && !strings.EqualFold(s.tag, e.Tag) {
		return false
	}
	for _, c := range s.classes {
		if !e.HasClass(c) {
			return false
		}
	}
	for _, a := range s.attrs {
		v, ok := e.Attr(a.name)
		if !ok {
			return false
		}
		switch a.op {
		case "=":
			if v != a.value {
				return false
			}
		case "^=":
			if !strings.HasPrefix(v, a.value) {
				return false
			}
		}
	}
	return true
}
