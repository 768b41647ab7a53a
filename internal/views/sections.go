package views

import (
	"fmt"
	"strings"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/zaaray/portfolio/internal/content"
	"github.com/zaaray/portfolio/internal/icons"
	"github.com/zaaray/portfolio/internal/motion"
	"github.com/zaaray/portfolio/internal/nav"
)

// Stagger steps between sibling reveals.
const (
	experienceStagger = 100 * time.Millisecond
	projectStagger    = 60 * time.Millisecond
)

// FadeIn wraps children in a block the client reveals on first sight. It
// starts hidden; delay staggers it against its siblings.
func FadeIn(cfg motion.Config, delay time.Duration, children ...g.Node) g.Node {
	return h.Div(
		g.Attr(motion.RevealAttr),
		g.If(delay > 0, g.Attr(motion.RevealDelayAttr, motion.FormatDelay(delay))),
		g.Attr("style", cfg.HiddenStyle()),
		g.Group(children),
	)
}

// Header renders the fixed header in state s.
func Header(p Page, s nav.State) g.Node {
	links := []g.Node{}
	for _, it := range nav.Build(s) {
		cls := nav.LinkClass
		if it.Active {
			cls += " " + nav.ActiveClass
		}
		links = append(links, h.A(h.Href(it.Href), h.Class(cls), g.Text(it.Label)))
	}
	cls := nav.HeaderClass
	if s.Solid {
		cls += " " + nav.SolidClass
	}
	return h.Header(
		h.Class(cls),
		h.Div(
			h.Class("container header-row"),
			h.A(
				h.Href(nav.Main[0].Href()),
				h.Class("brand"),
				h.Span(h.Class("brand-text"), g.Text(firstName(p.Profile.Name))),
				h.Span(h.Class("brand-smile"), g.Text(" ☺︎")),
			),
			h.Nav(h.Class("nav desktop-only"), g.Group(links)),
		),
	)
}

func firstName(name string) string {
	if f := strings.Fields(name); len(f) > 0 {
		return f[0]
	}
	return name
}

// Hero renders the banner with badge, headline, social links and portrait.
func Hero(p Page) g.Node {
	var portrait g.Node
	if src, ok := p.resolveAsset(p.Profile.Portrait); ok {
		portrait = h.Img(
			h.Src(src),
			h.Alt(p.Profile.Name+" profile"),
			h.Class("pfp-image"),
			g.Attr(icons.FallbackAttr),
		)
	}
	return h.Section(
		h.ID("hero"),
		h.Class("hero"),
		h.Div(h.Class("hero-bg")),
		h.Div(
			h.Class("container hero-grid"),
			FadeIn(p.Reveal, 0,
				h.Div(
					h.Class("hero-copy"),
					g.If(p.Profile.Badge != "", h.Span(
						h.Class("badge"),
						Icon("smile", "headline"),
						g.Text(p.Profile.Badge),
					)),
					h.H1(h.Class("headline handwriting"), g.Text(p.Profile.Headline)),
					h.Div(h.Class("row social"), socialIcons(p.Profile.Socials)),
				),
			),
			h.Div(
				h.Class("hero-art"),
				g.Attr(motion.ParallaxAttr),
				h.Div(h.Class("artbox"), portrait),
			),
		),
	)
}

func socialIcons(socials []content.Social) g.Node {
	nodes := []g.Node{}
	for _, s := range socials {
		nodes = append(nodes, h.A(
			h.Href(s.URL),
			externalAttrs(content.IsExternal(s.URL)),
			g.Attr("aria-label", s.Label),
			Icon(s.Icon, "icon"),
		))
	}
	return g.Group(nodes)
}

// externalAttrs opens external links in a new browsing context.
func externalAttrs(external bool) g.Node {
	if !external {
		return nil
	}
	return g.Group([]g.Node{g.Attr("target", "_blank"), g.Attr("rel", "noreferrer")})
}

// About renders the about paragraphs.
func About(p Page) g.Node {
	paragraphs := []g.Node{}
	for _, html := range p.About {
		paragraphs = append(paragraphs, h.Div(h.Class("intro-paragraph"), g.Raw(html)))
	}
	return h.Section(
		h.ID("about"),
		h.Class("section section--full about"),
		h.Div(
			h.Class("container"),
			FadeIn(p.Reveal, 0,
				h.H2(h.Class("section-title"), g.Text("About me")),
				g.Group(paragraphs),
			),
		),
	)
}

// Work renders experience on the left and skills on the right.
func Work(p Page) g.Node {
	experience := []g.Node{
		FadeIn(p.Reveal, 0, h.H3(h.Class("subsection-title"), g.Text("Internship Experience"))),
	}
	for i, e := range p.Experience {
		experience = append(experience, FadeIn(p.Reveal, time.Duration(i)*experienceStagger, ExperienceCard(e)))
	}

	skills := []g.Node{
		FadeIn(p.Reveal, 0, h.H3(h.Class("subsection-title"), g.Text("Technical Skills"))),
	}
	for _, c := range p.Skills {
		skills = append(skills, FadeIn(p.Reveal, 0, p.SkillCard(c)))
	}

	return h.Section(
		h.ID("work"),
		h.Class("section section-soft work-split"),
		h.Div(
			h.Class("container"),
			FadeIn(p.Reveal, 0, h.H2(h.Class("section-title"), g.Text("Work & Skills"))),
			h.Div(
				h.Class("work-grid"),
				h.Div(h.Class("work-col"), g.Group(experience)),
				h.Div(h.Class("skills-col"), g.Group(skills)),
			),
		),
	)
}

// ExperienceCard renders one role.
func ExperienceCard(e content.Experience) g.Node {
	bullets := []g.Node{}
	for _, b := range e.Bullets {
		bullets = append(bullets, h.Li(g.Text(b)))
	}
	return h.Div(
		h.Class("card hoverable"),
		h.Div(
			h.Class("card-header between"),
			h.H3(h.Class("card-title"), g.Text(e.Role)),
			h.Span(h.Class("muted small"), g.Text(e.Time)),
		),
		h.Div(h.Class("card-content"), h.Ul(h.Class("card-text"), g.Group(bullets))),
	)
}

// SkillCard renders a category of skill chips.
func (p Page) SkillCard(c content.SkillCategory) g.Node {
	items := []g.Node{}
	for _, it := range c.Items {
		items = append(items, p.SkillItem(it))
	}
	return h.Div(
		h.Class("card hoverable"),
		h.Div(h.Class("card-header"), h.H3(h.Class("card-title"), g.Text(c.Category))),
		h.Div(h.Class("card-content"), h.Ul(h.Class("skill-icons"), g.Group(items))),
	)
}

// SkillItem renders one chip: icon and name when the icon resolves, the
// name alone otherwise.
func (p Page) SkillItem(s content.SkillItem) g.Node {
	src, ok := p.resolveIcon(s.IconKey)
	if !ok {
		return h.Li(h.Class("skill-icon-item text-only"), h.Span(g.Text(s.Name)))
	}
	return h.Li(
		h.Class("skill-icon-item"),
		h.Img(h.Src(src), h.Alt(s.Name), h.Class("skill-icon-img"), g.Attr(icons.FallbackAttr)),
		h.Span(g.Text(s.Name)),
	)
}

// Projects renders the project grid.
func Projects(p Page) g.Node {
	cards := []g.Node{}
	for i, pr := range p.Projects {
		cards = append(cards, FadeIn(p.Reveal, time.Duration(i)*projectStagger, p.ProjectCard(pr)))
	}
	return h.Section(
		h.ID("projects"),
		h.Class("section"),
		h.Div(
			h.Class("container"),
			FadeIn(p.Reveal, 0, h.H2(h.Class("section-title"), g.Text("Projects"))),
			h.Div(h.Class("grid-3"), g.Group(cards)),
		),
	)
}

// ProjectCard renders a static card for a project without a link, and a
// link card otherwise. External links open in a new browsing context.
func (p Page) ProjectCard(pr content.Project) g.Node {
	body := p.projectCardContent(pr)
	if !pr.HasLink() {
		return h.Div(h.Class("card no-link"), body)
	}
	return h.A(
		h.Href(pr.Link),
		externalAttrs(pr.External()),
		h.Class("card linkcard"),
		body,
	)
}

func (p Page) projectCardContent(pr content.Project) g.Node {
	var thumb g.Node
	if src, ok := p.resolveAsset(pr.Image); ok {
		thumb = h.Img(
			h.Src(src),
			h.Alt(fmt.Sprintf("%s preview", pr.Title)),
			h.Class("thumb-img"),
			g.Attr(icons.FallbackAttr),
		)
	} else {
		thumb = h.Span(h.Class("thumb-hint"), g.Text("Preview coming soon ✨"))
	}
	return g.Group([]g.Node{
		h.Div(
			h.Class("card-header"),
			h.H3(
				h.Class("card-title row gap-sm"),
				g.Text(pr.Title),
				g.If(pr.HasLink(), Icon("external-link", "icon-xs faded")),
			),
		),
		h.Div(
			h.Class("card-content"),
			h.Div(h.Class("thumb"), thumb),
			h.P(h.Class("card-text"), g.Text(pr.Blurb)),
		),
	})
}

// Contact renders the closing call to action.
func Contact(p Page) g.Node {
	buttons := []g.Node{}
	for _, s := range p.Profile.Socials {
		buttons = append(buttons, h.A(
			h.Class("btn"),
			h.Href(s.URL),
			externalAttrs(content.IsExternal(s.URL)),
			Icon(s.Icon, "icon-inline"),
			g.Text(" "+s.Label),
		))
	}
	return h.Section(
		h.ID("contact"),
		h.Class("section section-soft-alt"),
		h.Div(
			h.Class("container"),
			FadeIn(p.Reveal, 0,
				h.H2(h.Class("section-title"), g.Text("Get in touch")),
				h.P(h.Class("contact-text"), g.Text(p.Profile.ContactText)),
			),
			h.Div(h.Class("row gap"), g.Group(buttons)),
		),
	)
}

// Footer renders the copyright line.
func Footer(p Page) g.Node {
	line := fmt.Sprintf("© %d %s", p.Year, p.Profile.Name)
	if p.Profile.FooterNote != "" {
		line += " • " + p.Profile.FooterNote
	}
	return h.Footer(h.Class("footer"), h.Div(h.Class("container"), g.Text(line)))
}
