//go:build js && wasm

// Package jsdom binds the dom interfaces to the browser through syscall/js.
package jsdom

import (
	"syscall/js"

	"github.com/zaaray/portfolio/internal/dom"
)

// Window returns the global browsing context.
func Window() dom.Window {
	return &window{v: js.Global()}
}

// Document returns the global document.
func Document() dom.Document {
	return &document{v: js.Global().Get("document")}
}

func addListener(target js.Value, typ string, fn dom.Listener, opts dom.ListenerOptions) dom.Release {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			fn(&event{v: args[0]})
		}
		return nil
	})
	jsOpts := map[string]any{"passive": opts.Passive}
	target.Call("addEventListener", typ, cb, jsOpts)
	return dom.Once(func() {
		target.Call("removeEventListener", typ, cb, jsOpts)
		cb.Release()
	})
}

func wrap(v js.Value) dom.Element {
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return &element{v: v}
}

type event struct {
	v js.Value
}

func (e *event) Target() dom.Element {
	t := e.v.Get("target")
	if t.IsNull() || t.IsUndefined() || t.Get("closest").IsUndefined() {
		return nil
	}
	return &element{v: t}
}

func (e *event) PreventDefault()        { e.v.Call("preventDefault") }
func (e *event) DefaultPrevented() bool { return e.v.Get("defaultPrevented").Bool() }

type element struct {
	v js.Value
}

func (e *element) AddEventListener(typ string, fn dom.Listener, opts dom.ListenerOptions) dom.Release {
	return addListener(e.v, typ, fn, opts)
}

func (e *element) ID() string { return e.v.Get("id").String() }

func (e *element) Attr(name string) (string, bool) {
	if !e.v.Call("hasAttribute", name).Bool() {
		return "", false
	}
	return e.v.Call("getAttribute", name).String(), true
}

func (e *element) Closest(selector string) dom.Element {
	return wrap(e.v.Call("closest", selector))
}

func (e *element) IsSameNode(other dom.Element) bool {
	o, ok := other.(*element)
	return ok && e.v.Equal(o.v)
}

func (e *element) OffsetTop() float64    { return e.v.Get("offsetTop").Float() }
func (e *element) OffsetHeight() float64 { return e.v.Get("offsetHeight").Float() }

func (e *element) ScrollIntoView(opts dom.ScrollOptions) {
	behavior := "auto"
	if opts.Smooth {
		behavior = "smooth"
	}
	block := opts.Block
	if block == "" {
		block = "start"
	}
	e.v.Call("scrollIntoView", map[string]any{"behavior": behavior, "block": block})
}

func (e *element) SetClass(name string, on bool) {
	e.v.Get("classList").Call("toggle", name, on)
}

func (e *element) SetStyle(property, value string) {
	e.v.Get("style").Call("setProperty", property, value)
}

func (e *element) Broken() bool {
	if e.v.Get("tagName").String() != "IMG" {
		return false
	}
	return e.v.Get("complete").Bool() && e.v.Get("naturalWidth").Int() == 0
}

type document struct {
	v js.Value
}

func (d *document) AddEventListener(typ string, fn dom.Listener, opts dom.ListenerOptions) dom.Release {
	return addListener(d.v, typ, fn, opts)
}

func (d *document) QuerySelectorAll(selector string) []dom.Element {
	list := d.v.Call("querySelectorAll", selector)
	n := list.Length()
	out := make([]dom.Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &element{v: list.Index(i)})
	}
	return out
}

func (d *document) ElementByID(id string) dom.Element {
	return wrap(d.v.Call("getElementById", id))
}

func (d *document) Root() dom.Element { return wrap(d.v.Get("documentElement")) }
func (d *document) Body() dom.Element { return wrap(d.v.Get("body")) }

type window struct {
	v js.Value
}

func (w *window) AddEventListener(typ string, fn dom.Listener, opts dom.ListenerOptions) dom.Release {
	return addListener(w.v, typ, fn, opts)
}

func (w *window) ScrollY() float64     { return w.v.Get("scrollY").Float() }
func (w *window) InnerHeight() float64 { return w.v.Get("innerHeight").Float() }

func (w *window) ObserveIntersections(cb func([]dom.Intersection), opts dom.ObserverOptions) dom.Observer {
	ctor := w.v.Get("IntersectionObserver")
	if ctor.IsUndefined() {
		return &eagerObserver{cb: cb}
	}
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		entries := args[0]
		n := entries.Length()
		batch := make([]dom.Intersection, 0, n)
		for i := 0; i < n; i++ {
			entry := entries.Index(i)
			batch = append(batch, dom.Intersection{
				Target:       &element{v: entry.Get("target")},
				Intersecting: entry.Get("isIntersecting").Bool(),
			})
		}
		cb(batch)
		return nil
	})
	init := map[string]any{}
	if opts.RootMargin != "" {
		init["rootMargin"] = opts.RootMargin
	}
	return &observer{v: ctor.New(fn, init), fn: fn}
}

type observer struct {
	v  js.Value
	fn js.Func
}

func (o *observer) Observe(el dom.Element) {
	if e, ok := el.(*element); ok {
		o.v.Call("observe", e.v)
	}
}

func (o *observer) Unobserve(el dom.Element) {
	if e, ok := el.(*element); ok {
		o.v.Call("unobserve", e.v)
	}
}

func (o *observer) Disconnect() {
	o.v.Call("disconnect")
	o.fn.Release()
}

// eagerObserver stands in on browsers without IntersectionObserver: every
// observed element is reported as intersecting straight away.
type eagerObserver struct {
	cb func([]dom.Intersection)
}

func (o *eagerObserver) Observe(el dom.Element) {
	o.cb([]dom.Intersection{{Target: el, Intersecting: true}})
}

func (o *eagerObserver) Unobserve(dom.Element) {}
func (o *eagerObserver) Disconnect()           {}
