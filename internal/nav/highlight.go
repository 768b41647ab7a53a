package nav

import "github.com/zaaray/portfolio/internal/dom"

// Class names shared with the header renderer and the stylesheet.
const (
	HeaderClass = "header"
	SolidClass  = "is-solid"
	LinkClass   = "nav-link"
	ActiveClass = "active"
)

// Highlighter returns a callback that applies a State to doc's header.
func Highlighter(doc dom.Document) func(State) {
	return func(s State) {
		for _, h := range doc.QuerySelectorAll("header." + HeaderClass) {
			h.SetClass(SolidClass, s.Solid)
		}
		for _, link := range doc.QuerySelectorAll("a." + LinkClass) {
			href, _ := link.Attr("href")
			link.SetClass(ActiveClass, href == "#"+s.Active)
		}
	}
}
