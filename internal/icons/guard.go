package icons

import "github.com/zaaray/portfolio/internal/dom"

// FallbackAttr marks images that disappear when they fail to load.
const FallbackAttr = "data-fallback"

// Guard hides every data-fallback image that has already failed and every
// one that fails later, so a failed load looks the same as an icon that was
// never resolved.
func Guard(doc dom.Document) dom.Release {
	var releases []dom.Release
	for _, img := range doc.QuerySelectorAll("img[" + FallbackAttr + "]") {
		if img.Broken() {
			hide(img)
			continue
		}
		el := img
		releases = append(releases, el.AddEventListener("error", func(dom.Event) {
			hide(el)
		}, dom.ListenerOptions{}))
	}
	return dom.Combine(releases...)
}

func hide(el dom.Element) {
	el.SetStyle("display", "none")
}
