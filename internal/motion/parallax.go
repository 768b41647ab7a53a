package motion

import (
	"fmt"

	"github.com/zaaray/portfolio/internal/dom"
)

// ParallaxAttr marks elements that drift with the scroll position.
const ParallaxAttr = "data-parallax"

// Parallax maps a scroll range onto a vertical offset range, clamped at
// both ends.
type Parallax struct {
	FromY, ToY           float64
	FromOffset, ToOffset float64
}

// HeroParallax moves the hero art 60px over the first 300px of scroll.
func HeroParallax() Parallax {
	return Parallax{FromY: 0, ToY: 300, FromOffset: 0, ToOffset: 60}
}

// Offset returns the offset for scrollY.
func (p Parallax) Offset(scrollY float64) float64 {
	if p.ToY == p.FromY {
		return p.FromOffset
	}
	t := (scrollY - p.FromY) / (p.ToY - p.FromY)
	switch {
	case t < 0:
		t = 0
	case t > 1:
		t = 1
	}
	return p.FromOffset + t*(p.ToOffset-p.FromOffset)
}

// Mount applies the offset to every data-parallax element now and on each
// scroll.
func (p Parallax) Mount(win dom.Window, doc dom.Document) dom.Release {
	elems := doc.QuerySelectorAll("[" + ParallaxAttr + "]")
	if len(elems) == 0 {
		return dom.Noop
	}
	apply := func(dom.Event) {
		v := fmt.Sprintf("translateY(%spx)", formatFloat(p.Offset(win.ScrollY())))
		for _, el := range elems {
			el.SetStyle("transform", v)
		}
	}
	apply(nil)
	return win.AddEventListener("scroll", apply, dom.ListenerOptions{Passive: true})
}
