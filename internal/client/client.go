// Package client attaches the page behaviour to a live document: smooth
// scrolling, section tracking, reveals, parallax and image fallback.
package client

import (
	"github.com/zaaray/portfolio/internal/dom"
	"github.com/zaaray/portfolio/internal/icons"
	"github.com/zaaray/portfolio/internal/motion"
	"github.com/zaaray/portfolio/internal/nav"
)

// Client owns every behaviour mounted on one document.
type Client struct {
	Navigator *nav.Navigator
	Tracker   *nav.Tracker
	Revealer  *motion.Revealer

	win     dom.Window
	doc     dom.Document
	release dom.Release
}

// New builds a client for doc, reading tuning constants from <body>.
func New(win dom.Window, doc dom.Document) *Client {
	attr := func(string) (string, bool) { return "", false }
	if body := doc.Body(); body != nil {
		attr = body.Attr
	}
	return &Client{
		Navigator: nav.NewNavigator(doc),
		Tracker:   nav.NewTracker(win, doc, nav.ConfigFromAttrs(attr), nav.Highlighter(doc)),
		Revealer:  motion.NewRevealer(win, doc, motion.ConfigFromAttrs(attr)),
		win:       win,
		doc:       doc,
	}
}

// Mount attaches every behaviour. The returned Release detaches all of
// them and may be called any number of times. Mounting again detaches the
// previous mount first.
func (c *Client) Mount() dom.Release {
	c.Unmount()
	c.release = dom.Combine(
		icons.Guard(c.doc),
		c.Navigator.Mount(),
		c.Tracker.Mount(),
		c.Revealer.Mount(),
		motion.HeroParallax().Mount(c.win, c.doc),
	)
	return c.release
}

// Unmount detaches the current mount, if any.
func (c *Client) Unmount() {
	if c.release != nil {
		c.release()
		c.release = nil
	}
}
