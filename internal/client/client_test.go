package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaaray/portfolio/internal/dom/domtest"
	"github.com/zaaray/portfolio/internal/icons"
	"github.com/zaaray/portfolio/internal/motion"
	"github.com/zaaray/portfolio/internal/nav"
)

type page struct {
	win      *domtest.Window
	doc      *domtest.Document
	header   *domtest.Element
	links    map[string]*domtest.Element
	sections map[string]*domtest.Element
	reveal   *domtest.Element
	art      *domtest.Element
	icon     *domtest.Element
}

// newPage lays out the five sections 800px apart under a 64px header.
func newPage(bodyAttrs ...string) page {
	p := page{
		win:      domtest.NewWindow(900),
		header:   domtest.NewElement("header", "class", "header"),
		links:    map[string]*domtest.Element{},
		sections: map[string]*domtest.Element{},
	}
	p.doc = domtest.NewDocument()
	body := p.doc.BodyElement()
	for i := 0; i+1 < len(bodyAttrs); i += 2 {
		body.SetAttr(bodyAttrs[i], bodyAttrs[i+1])
	}
	p.doc.Add(p.header)
	for i, it := range nav.Main {
		link := domtest.NewElement("a", "href", it.Href(), "class", "nav-link")
		p.links[it.ID] = link
		p.header.Append(link)

		s := domtest.NewElement("section", "id", it.ID)
		s.Top = float64(i) * 800
		s.Height = 800
		p.sections[it.ID] = s
		p.doc.Add(s)
	}
	p.reveal = domtest.NewElement("div", motion.RevealAttr, "")
	p.art = domtest.NewElement("div", motion.ParallaxAttr, "")
	p.icon = domtest.NewElement("img", "src", "/images/python.png", icons.FallbackAttr, "")
	p.sections["about"].Append(p.reveal)
	p.sections["hero"].Append(p.art)
	p.sections["work"].Append(p.icon)
	return p
}

func TestMountWiresEveryBehaviour(t *testing.T) {
	p := newPage()
	c := New(p.win, p.doc)
	release := c.Mount()
	defer release()

	// Initial state is applied to the header.
	assert.True(t, p.links["hero"].HasClass("active"))
	assert.False(t, p.header.HasClass("is-solid"))

	// Scrolling moves the highlight and solidifies the header.
	p.win.ScrollTo(900)
	assert.Equal(t, nav.State{Active: "about", Solid: true}, c.Tracker.State())
	assert.True(t, p.links["about"].HasClass("active"))
	assert.False(t, p.links["hero"].HasClass("active"))
	assert.True(t, p.header.HasClass("is-solid"))
	assert.Equal(t, "translateY(60px)", p.art.Style["transform"])

	// Fragment clicks scroll.
	ev := p.doc.Click(p.links["projects"])
	assert.True(t, ev.DefaultPrevented())
	assert.Len(t, p.sections["projects"].Scrolls, 1)

	// Reveals fire once.
	require.Len(t, p.win.Observers(), 1)
	p.win.Intersect(p.reveal, true)
	assert.Equal(t, "1", p.reveal.Style["opacity"])

	// Image failures hide the image.
	p.icon.FailLoad()
	assert.Equal(t, "none", p.icon.Style["display"])
}

func TestReleaseDetachesEverything(t *testing.T) {
	p := newPage()
	c := New(p.win, p.doc)
	c.Mount()
	release := c.Mount()

	assert.Equal(t, 1, p.doc.ListenerCount("click"))
	assert.Equal(t, 2, p.win.ListenerCount("scroll"), "tracker and parallax")
	assert.Equal(t, 1, p.win.ListenerCount("resize"))
	assert.Equal(t, 1, p.icon.ListenerCount("error"))

	release()
	release()
	c.Unmount()

	assert.Equal(t, 0, p.doc.ListenerCount("click"))
	assert.Equal(t, 0, p.win.ListenerCount("scroll"))
	assert.Equal(t, 0, p.win.ListenerCount("resize"))
	assert.Equal(t, 0, p.icon.ListenerCount("error"))
	for _, o := range p.win.Observers() {
		assert.True(t, o.Disconnected)
	}
}

func TestConfigFromBody(t *testing.T) {
	p := newPage(
		nav.HeaderHeightAttr, "100",
		nav.SolidThresholdAttr, "50",
		motion.MarginAttr, "10",
	)
	c := New(p.win, p.doc)
	defer c.Mount()()

	p.win.ScrollTo(40)
	assert.False(t, c.Tracker.State().Solid)
	p.win.ScrollTo(51)
	assert.True(t, c.Tracker.State().Solid)
	assert.Equal(t, "-10px", p.win.Observers()[0].Options.RootMargin)
}
