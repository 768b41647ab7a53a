// Package content is the page's static content: profile copy, experience,
// skills and projects. It is authored as YAML, validated once at load, and
// never modified afterwards.
package content

import (
	"net/url"
	"strings"
)

// Experience is one role in the work column.
type Experience struct {
	Role    string   `yaml:"role"`
	Time    string   `yaml:"time"`
	Bullets []string `yaml:"bullets"`
}

// SkillItem is one chip in a skill category. IconKey is optional; an
// unresolvable key renders the name alone.
type SkillItem struct {
	Name    string `yaml:"name"`
	IconKey string `yaml:"icon,omitempty"`
}

// SkillCategory groups skill items under a heading.
type SkillCategory struct {
	Category string      `yaml:"category"`
	Items    []SkillItem `yaml:"items"`
}

// Project is one showcase card.
type Project struct {
	Title string `yaml:"title"`
	Blurb string `yaml:"blurb"`
	Link  string `yaml:"link,omitempty"`
	Image string `yaml:"image,omitempty"`
}

// HasLink reports whether the card is a link.
func (p Project) HasLink() bool {
	return strings.TrimSpace(p.Link) != ""
}

// External reports whether the link leaves the site and should open in a
// new browsing context.
func (p Project) External() bool {
	return IsExternal(p.Link)
}

// IsExternal reports whether link is an absolute http or https URL.
func IsExternal(link string) bool {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return true
	}
	return false
}

// Social is a profile or contact link.
type Social struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
	// Icon names one of the inline icons known to the renderers
	// ("github", "linkedin", "mail").
	Icon string `yaml:"icon"`
}

// Profile is the copy around the lists.
type Profile struct {
	Name       string `yaml:"name"`
	Badge      string `yaml:"badge"`
	Headline   string `yaml:"headline"`
	Portrait   string `yaml:"portrait"`
	Summary    string `yaml:"summary"`
	SiteURL    string `yaml:"site_url"`
	FooterNote string `yaml:"footer_note"`
	// About is markdown, one entry per paragraph.
	About       []string `yaml:"about"`
	ContactText string   `yaml:"contact_text"`
	Socials     []Social `yaml:"socials"`
}
