package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultContent(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)

	p := r.Profile()
	assert.Equal(t, "Zaara Yakub", p.Name)
	assert.Len(t, p.Socials, 3)
	assert.Len(t, r.Experience(), 3)
	assert.Len(t, r.Skills(), 3)
	assert.Len(t, r.Projects(), 3)
	assert.Len(t, r.IconBindings(), 10)

	about := r.AboutHTML()
	require.Len(t, about, 3)
	assert.Contains(t, about[0], "<strong>Computer Science and Engineering</strong>")
	assert.True(t, strings.HasPrefix(about[0], "<p>"))

	var linked []string
	for _, proj := range r.Projects() {
		if proj.HasLink() {
			linked = append(linked, proj.Title)
		}
	}
	assert.Equal(t, []string{"Pegasus — Assistive Pegboard"}, linked)
}

func TestRegistryReturnsCopies(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)

	exp := r.Experience()
	exp[0].Bullets[0] = "changed"
	exp[0].Role = "changed"
	skills := r.Skills()
	skills[0].Items[0].Name = "changed"
	projects := r.Projects()
	projects[0].Title = "changed"
	icons := r.IconBindings()
	icons["python"] = "changed.png"
	p := r.Profile()
	p.Socials[0].URL = "changed"

	assert.NotEqual(t, "changed", r.Experience()[0].Bullets[0])
	assert.NotEqual(t, "changed", r.Experience()[0].Role)
	assert.NotEqual(t, "changed", r.Skills()[0].Items[0].Name)
	assert.NotEqual(t, "changed", r.Projects()[0].Title)
	assert.Equal(t, "python.png", r.IconBindings()["python"])
	assert.NotEqual(t, "changed", r.Profile().Socials[0].URL)
}

func TestIsExternal(t *testing.T) {
	assert.True(t, IsExternal("https://github.com/zaaray/pegasus"))
	assert.True(t, IsExternal("HTTP://example.com"))
	assert.False(t, IsExternal(""))
	assert.False(t, IsExternal("#projects"))
	assert.False(t, IsExternal("/projects/pegasus"))
	assert.False(t, IsExternal("mailto:someone@example.com"))
	assert.False(t, IsExternal("ftp://example.com/file"))

	assert.True(t, Project{Link: " https://example.com "}.External())
	assert.False(t, Project{Link: "  "}.HasLink())
}

func TestNormalize(t *testing.T) {
	r, err := Parse([]byte(`
profile:
  name: "  Someone  "
skills:
  - category: Languages
    items:
      - {name: Go, icon: " GO "}
projects:
  - title: Thing
    blurb: A thing.
    link: " https://example.com/thing "
`))
	require.NoError(t, err)
	assert.Equal(t, "Someone", r.Profile().Name)
	assert.Equal(t, "go", r.Skills()[0].Items[0].IconKey)
	assert.Equal(t, "https://example.com/thing", r.Projects()[0].Link)
}

func TestLoadRejectsInvalidContent(t *testing.T) {
	tests := map[string]struct {
		yaml string
		want string
	}{
		"empty":         {"", "content is empty"},
		"no name":       {"profile: {badge: hi}", "profile.name is required"},
		"unknown field": {"profile: {name: A, nickname: B}", "nickname"},
		"dup project": {`
profile: {name: A}
projects:
  - {title: X, blurb: one}
  - {title: X, blurb: two}
`, `duplicate title "X"`},
		"dup category": {`
profile: {name: A}
skills:
  - {category: Tools, items: [{name: Git}]}
  - {category: Tools, items: [{name: Jira}]}
`, `duplicate category "Tools"`},
		"unnamed skill": {`
profile: {name: A}
skills:
  - {category: Tools, items: [{icon: git}]}
`, "name is required"},
		"bad link": {`
profile: {name: A}
projects:
  - {title: X, link: "http://[::1"}
`, "projects[0]: link"},
		"social without url": {`
profile:
  name: A
  socials: [{label: GitHub}]
`, "url is required"},
		"empty icon": {`
profile: {name: A}
icons: {python: ""}
`, "empty binding"},
		"role missing": {`
profile: {name: A}
experience: [{time: "2020"}]
`, "role is required"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile: {name: From File}\n"), 0o644))

	r, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "From File", r.Profile().Name)
	assert.Empty(t, r.Projects())

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open content")
}

func TestRenderMarkdownSanitizes(t *testing.T) {
	html, err := RenderMarkdown("Hello **world** <script>alert(1)</script>")
	require.NoError(t, err)
	assert.Contains(t, html, "<strong>world</strong>")
	assert.NotContains(t, html, "<script>")
}
