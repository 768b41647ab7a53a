package content

import (
	"bytes"
	_ "embed"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

type document struct {
	Profile    Profile           `yaml:"profile"`
	Experience []Experience      `yaml:"experience"`
	Skills     []SkillCategory   `yaml:"skills"`
	Projects   []Project         `yaml:"projects"`
	Icons      map[string]string `yaml:"icons"`
}

// Registry is loaded content. It is safe for concurrent readers; every
// accessor returns a copy.
type Registry struct {
	doc   document
	about []string
}

// Default returns the content compiled into the binary.
func Default() (*Registry, error) {
	r, err := Parse(defaultYAML)
	if err != nil {
		return nil, errors.Wrap(err, "default content")
	}
	return r, nil
}

// LoadFile reads content from a YAML file.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open content")
	}
	defer f.Close()
	r, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "content %s", path)
	}
	return r, nil
}

// Parse reads content from YAML bytes.
func Parse(b []byte) (*Registry, error) {
	return Load(bytes.NewReader(b))
}

// Load reads and validates content. Unknown fields are rejected so typos
// in hand-written YAML surface at start-up.
func Load(r io.Reader) (*Registry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("content is empty")
		}
		return nil, errors.Wrap(err, "decode content")
	}
	normalize(&doc)
	if err := validate(doc); err != nil {
		return nil, err
	}
	about := make([]string, 0, len(doc.Profile.About))
	for i, p := range doc.Profile.About {
		html, err := RenderMarkdown(p)
		if err != nil {
			return nil, errors.Wrapf(err, "about paragraph %d", i+1)
		}
		about = append(about, html)
	}
	return &Registry{doc: doc, about: about}, nil
}

func normalize(doc *document) {
	doc.Profile.Name = strings.TrimSpace(doc.Profile.Name)
	for i := range doc.Projects {
		doc.Projects[i].Link = strings.TrimSpace(doc.Projects[i].Link)
		doc.Projects[i].Image = strings.TrimSpace(doc.Projects[i].Image)
	}
	for i := range doc.Skills {
		for j := range doc.Skills[i].Items {
			doc.Skills[i].Items[j].IconKey = strings.ToLower(strings.TrimSpace(doc.Skills[i].Items[j].IconKey))
		}
	}
}

func validate(doc document) error {
	if doc.Profile.Name == "" {
		return errors.New("profile.name is required")
	}
	for i, s := range doc.Profile.Socials {
		if strings.TrimSpace(s.URL) == "" {
			return errors.Errorf("profile.socials[%d]: url is required", i)
		}
		if _, err := url.Parse(s.URL); err != nil {
			return errors.Wrapf(err, "profile.socials[%d]", i)
		}
	}
	for i, e := range doc.Experience {
		if strings.TrimSpace(e.Role) == "" {
			return errors.Errorf("experience[%d]: role is required", i)
		}
	}
	categories := map[string]bool{}
	for i, c := range doc.Skills {
		if strings.TrimSpace(c.Category) == "" {
			return errors.Errorf("skills[%d]: category is required", i)
		}
		if categories[c.Category] {
			return errors.Errorf("skills[%d]: duplicate category %q", i, c.Category)
		}
		categories[c.Category] = true
		names := map[string]bool{}
		for j, it := range c.Items {
			if strings.TrimSpace(it.Name) == "" {
				return errors.Errorf("skills[%d].items[%d]: name is required", i, j)
			}
			if names[it.Name] {
				return errors.Errorf("skills[%d]: duplicate item %q", i, it.Name)
			}
			names[it.Name] = true
		}
	}
	titles := map[string]bool{}
	for i, p := range doc.Projects {
		if strings.TrimSpace(p.Title) == "" {
			return errors.Errorf("projects[%d]: title is required", i)
		}
		if titles[p.Title] {
			return errors.Errorf("projects[%d]: duplicate title %q", i, p.Title)
		}
		titles[p.Title] = true
		if p.Link != "" {
			if _, err := url.Parse(p.Link); err != nil {
				return errors.Wrapf(err, "projects[%d]: link", i)
			}
		}
	}
	for k, v := range doc.Icons {
		if strings.TrimSpace(k) == "" || strings.TrimSpace(v) == "" {
			return errors.Errorf("icons: empty binding %q: %q", k, v)
		}
	}
	return nil
}

// Profile returns the profile copy.
func (r *Registry) Profile() Profile {
	p := r.doc.Profile
	p.About = append([]string(nil), p.About...)
	p.Socials = append([]Social(nil), p.Socials...)
	return p
}

// AboutHTML returns the about paragraphs rendered to sanitized HTML.
func (r *Registry) AboutHTML() []string {
	return append([]string(nil), r.about...)
}

// Experience returns the experience entries in authored order.
func (r *Registry) Experience() []Experience {
	out := make([]Experience, len(r.doc.Experience))
	for i, e := range r.doc.Experience {
		e.Bullets = append([]string(nil), e.Bullets...)
		out[i] = e
	}
	return out
}

// Skills returns the skill categories in authored order.
func (r *Registry) Skills() []SkillCategory {
	out := make([]SkillCategory, len(r.doc.Skills))
	for i, c := range r.doc.Skills {
		c.Items = append([]SkillItem(nil), c.Items...)
		out[i] = c
	}
	return out
}

// Projects returns the projects in authored order.
func (r *Registry) Projects() []Project {
	return append([]Project(nil), r.doc.Projects...)
}

// IconBindings returns the icon key to image path bindings.
func (r *Registry) IconBindings() map[string]string {
	out := make(map[string]string, len(r.doc.Icons))
	for k, v := range r.doc.Icons {
		out[k] = v
	}
	return out
}
