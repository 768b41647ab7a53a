package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaaray/portfolio/internal/dom"
	"github.com/zaaray/portfolio/internal/dom/domtest"
)

func TestFragment(t *testing.T) {
	tests := []struct {
		href   string
		want   string
		wantOK bool
	}{
		{"#about", "about", true},
		{"#", "", false},
		{"", "", false},
		{"https://example.com/#about", "", false},
		{"#caf%C3%A9", "café", true},
		{"#100%", "100%", true},
	}
	for _, tt := range tests {
		got, ok := Fragment(tt.href)
		assert.Equal(t, tt.wantOK, ok, tt.href)
		assert.Equal(t, tt.want, got, tt.href)
	}
}

type navPage struct {
	doc   *domtest.Document
	about *domtest.Element
	link  *domtest.Element
	icon  *domtest.Element
}

func newNavPage(href string) navPage {
	icon := domtest.NewElement("span", "class", "icon")
	link := domtest.NewElement("a", "href", href, "class", "nav-link").Append(icon)
	about := domtest.NewElement("section", "id", "about")
	doc := domtest.NewDocument().Add(
		domtest.NewElement("header", "class", "header").Append(link),
		about,
	)
	return navPage{doc: doc, about: about, link: link, icon: icon}
}

func TestNavigatorScrollsToFragmentTarget(t *testing.T) {
	p := newNavPage("#about")
	release := NewNavigator(p.doc).Mount()
	defer release()

	ev := p.doc.Click(p.link)
	assert.True(t, ev.DefaultPrevented())
	require.Len(t, p.about.Scrolls, 1)
	assert.Equal(t, dom.ScrollOptions{Smooth: true, Block: "start"}, p.about.Scrolls[0])
}

func TestNavigatorHandlesClicksInsideLink(t *testing.T) {
	p := newNavPage("#about")
	defer NewNavigator(p.doc).Mount()()

	ev := p.doc.Click(p.icon)
	assert.True(t, ev.DefaultPrevented())
	assert.Len(t, p.about.Scrolls, 1)
}

func TestNavigatorIgnoresBareHash(t *testing.T) {
	p := newNavPage("#")
	defer NewNavigator(p.doc).Mount()()

	ev := p.doc.Click(p.link)
	assert.False(t, ev.DefaultPrevented())
	assert.Empty(t, p.about.Scrolls)
}

func TestNavigatorIgnoresMissingTarget(t *testing.T) {
	p := newNavPage("#nowhere")
	defer NewNavigator(p.doc).Mount()()

	ev := p.doc.Click(p.link)
	assert.False(t, ev.DefaultPrevented())
	assert.Empty(t, p.about.Scrolls)
}

func TestNavigatorIgnoresOtherLinks(t *testing.T) {
	p := newNavPage("https://github.com/zaaray")
	defer NewNavigator(p.doc).Mount()()

	ev := p.doc.Click(p.link)
	assert.False(t, ev.DefaultPrevented())

	plain := domtest.NewElement("p")
	p.doc.Add(plain)
	assert.False(t, p.doc.Click(plain).DefaultPrevented())
}

func TestNavigatorEveryClickRequestsAScroll(t *testing.T) {
	p := newNavPage("#about")
	defer NewNavigator(p.doc).Mount()()

	for i := 0; i < 3; i++ {
		p.doc.Click(p.link)
	}
	assert.Len(t, p.about.Scrolls, 3)
}

func TestNavigatorMountAndRelease(t *testing.T) {
	p := newNavPage("#about")
	n := NewNavigator(p.doc)

	n.Mount()
	release := n.Mount()
	assert.Equal(t, 1, p.doc.ListenerCount("click"))

	release()
	release()
	n.Unmount()
	assert.Equal(t, 0, p.doc.ListenerCount("click"))

	ev := p.doc.Click(p.link)
	assert.False(t, ev.DefaultPrevented())
}
