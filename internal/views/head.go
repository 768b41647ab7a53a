package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/zaaray/portfolio/internal/motion"
	"github.com/zaaray/portfolio/internal/seo"
)

// noscriptStyle shows reveal blocks when scripting is off.
const noscriptStyle = `[` + motion.RevealAttr + `]{opacity:1!important;transform:none!important}`

// Head renders <head>: metadata, stylesheet and structured data.
func Head(p Page) g.Node {
	m := p.Meta
	if m.Title == "" {
		m.Title = p.Profile.Name
	}
	var sameAs []string
	for _, s := range p.Profile.Socials {
		sameAs = append(sameAs, s.URL)
	}
	person := seo.JSON(seo.Person(p.Profile.Name, m.Canonical, sameAs))

	return h.Head(
		h.Meta(h.Charset("utf-8")),
		h.Meta(g.Attr("name", "viewport"), g.Attr("content", "width=device-width, initial-scale=1")),
		g.El("title", g.Text(m.Title)),
		metaName("description", m.Description),
		g.If(m.Canonical != "", h.Link(h.Rel("canonical"), h.Href(m.Canonical))),
		metaProperty("og:title", m.OG.Title),
		metaProperty("og:description", m.OG.Description),
		metaProperty("og:type", m.OG.Type),
		metaProperty("og:url", m.OG.URL),
		metaProperty("og:image", m.OG.Image),
		g.If(p.Assets.StylesheetURL != "", h.Link(h.Rel("stylesheet"), h.Href(p.Assets.StylesheetURL))),
		g.El("noscript", g.El("style", g.Raw(noscriptStyle))),
		g.If(person != "", h.Script(h.Type("application/ld+json"), g.Raw(person))),
	)
}

func metaName(name, content string) g.Node {
	if content == "" {
		return nil
	}
	return h.Meta(g.Attr("name", name), g.Attr("content", content))
}

func metaProperty(property, content string) g.Node {
	if content == "" {
		return nil
	}
	return h.Meta(g.Attr("property", property), g.Attr("content", content))
}
