// Package views renders the portfolio page as a gomponents tree. Every
// renderer is a pure function of the Page it is given.
package views

import (
	"io"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/zaaray/portfolio/internal/content"
	"github.com/zaaray/portfolio/internal/motion"
	"github.com/zaaray/portfolio/internal/nav"
	"github.com/zaaray/portfolio/internal/seo"
)

// IconResolver turns icon keys and declared image paths into URLs.
type IconResolver interface {
	Resolve(key string) (string, bool)
	Asset(file string) (string, bool)
}

// Assets locates the page's stylesheet and client scripts. An empty
// WasmURL renders the page without the client.
type Assets struct {
	StylesheetURL string
	BootURL       string
	WasmExecURL   string
	WasmURL       string
}

// Page is everything the renderers read.
type Page struct {
	Profile    content.Profile
	About      []string // sanitized HTML paragraphs
	Experience []content.Experience
	Skills     []content.SkillCategory
	Projects   []content.Project

	Icons  IconResolver
	Nav    nav.Config
	Reveal motion.Config
	Meta   seo.Meta
	Assets Assets
	// Year is printed in the footer.
	Year int
}

// FromRegistry fills the content fields of a Page from reg and defaults
// the rest.
func FromRegistry(reg *content.Registry) Page {
	return Page{
		Profile:    reg.Profile(),
		About:      reg.AboutHTML(),
		Experience: reg.Experience(),
		Skills:     reg.Skills(),
		Projects:   reg.Projects(),
		Nav:        nav.DefaultConfig(),
		Reveal:     motion.DefaultConfig(),
		Year:       time.Now().Year(),
	}
}

// Render writes the full HTML document.
func (p Page) Render(w io.Writer) error {
	return Document(p).Render(w)
}

// Document is the whole page.
func Document(p Page) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			g.If(p.Assets.WasmURL == "", h.Class(motion.FallbackClass)),
			Head(p),
			body(p),
		),
	)
}

func body(p Page) g.Node {
	attrs := []g.Node{}
	for _, kv := range p.Nav.Attrs() {
		attrs = append(attrs, g.Attr(kv[0], kv[1]))
	}
	for _, kv := range p.Reveal.Attrs() {
		attrs = append(attrs, g.Attr(kv[0], kv[1]))
	}
	return h.Body(
		g.Group(attrs),
		h.Div(
			h.Class("app-root"),
			Header(p, nav.InitialState()),
			h.Main(
				Hero(p),
				About(p),
				Work(p),
				Projects(p),
				Contact(p),
			),
			Footer(p),
		),
		scripts(p.Assets),
	)
}

func scripts(a Assets) g.Node {
	if a.WasmURL == "" {
		return nil
	}
	return g.Group([]g.Node{
		h.Script(h.Src(a.WasmExecURL)),
		h.Script(h.Src(a.BootURL), g.Attr("data-wasm", a.WasmURL), g.Attr("defer")),
	})
}

func (p Page) resolveIcon(key string) (string, bool) {
	if p.Icons == nil {
		return "", false
	}
	return p.Icons.Resolve(key)
}

func (p Page) resolveAsset(file string) (string, bool) {
	if p.Icons == nil {
		return "", false
	}
	return p.Icons.Asset(file)
}
