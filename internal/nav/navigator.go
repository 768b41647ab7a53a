package nav

import (
	"net/url"
	"strings"

	"github.com/zaaray/portfolio/internal/dom"
)

const fragmentLinkSelector = `a[href^="#"]`

// Fragment returns the element id addressed by an in-page href. It reports
// false for anything that is not "#" followed by at least one character.
func Fragment(href string) (string, bool) {
	if !strings.HasPrefix(href, "#") || href == "#" {
		return "", false
	}
	id := href[1:]
	if unescaped, err := url.PathUnescape(id); err == nil {
		id = unescaped
	}
	return id, true
}

// Navigator turns fragment-link clicks into smooth scrolls.
type Navigator struct {
	doc     dom.Document
	release dom.Release
}

// NewNavigator returns an unmounted navigator for doc.
func NewNavigator(doc dom.Document) *Navigator {
	return &Navigator{doc: doc}
}

// Mount registers the document click listener. Mounting again replaces the
// previous listener.
func (n *Navigator) Mount() dom.Release {
	n.Unmount()
	n.release = n.doc.AddEventListener("click", n.handleClick, dom.ListenerOptions{})
	return n.release
}

// Unmount removes the click listener, if mounted.
func (n *Navigator) Unmount() {
	if n.release != nil {
		n.release()
		n.release = nil
	}
}

func (n *Navigator) handleClick(e dom.Event) {
	target := e.Target()
	if target == nil {
		return
	}
	link := target.Closest(fragmentLinkSelector)
	if link == nil {
		return
	}
	href, _ := link.Attr("href")
	id, ok := Fragment(href)
	if !ok {
		return
	}
	el := n.doc.ElementByID(id)
	if el == nil {
		return
	}
	e.PreventDefault()
	el.ScrollIntoView(dom.ScrollOptions{Smooth: true, Block: "start"})
}
