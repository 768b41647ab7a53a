// Package nav holds the page's in-page navigation: the section list, the
// smooth-scroll navigator, and the tracker that decides which section the
// header highlights.
package nav

// Item is a page section reachable from the header.
type Item struct {
	ID    string // section id, also the fragment: "#" + ID
	Label string
}

// Href is the fragment link to the section.
func (it Item) Href() string { return "#" + it.ID }

// Main is the page's section list in document order.
var Main = []Item{
	{ID: "hero", Label: "Home"},
	{ID: "about", Label: "About"},
	{ID: "work", Label: "Work"},
	{ID: "projects", Label: "Projects"},
	{ID: "contact", Label: "Contact"},
}

// DefaultSection is highlighted before anything has been measured.
const DefaultSection = "hero"

// State is what the header renders: the highlighted section and whether
// the header is drawn solid.
type State struct {
	Active string
	Solid  bool
}

// InitialState is the state before the first measurement.
func InitialState() State {
	return State{Active: DefaultSection}
}

// RenderedItem is a view model for the header.
type RenderedItem struct {
	Href   string
	Label  string
	Active bool
}

// Build renders the header items for s.
func Build(s State) []RenderedItem {
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:   it.Href(),
			Label:  it.Label,
			Active: it.ID == s.Active,
		})
	}
	return items
}
