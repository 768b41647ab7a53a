// Package seo builds head metadata for the page.
package seo

import (
	"encoding/json"
	"strings"
)

// OpenGraph holds the og:* properties of a page.
type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
}

// Meta is the head metadata for one page.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	OG          OpenGraph
}

// ForProfile returns page metadata for a portfolio owner.
func ForProfile(name, summary, siteURL, imageURL string) Meta {
	title := name
	if title == "" {
		title = "Portfolio"
	}
	siteURL = strings.TrimRight(siteURL, "/")
	canonical := ""
	if siteURL != "" {
		canonical = siteURL + "/"
	}
	image := imageURL
	if image != "" && siteURL != "" && strings.HasPrefix(image, "/") {
		image = siteURL + image
	}
	return Meta{
		Title:       title,
		Description: summary,
		Canonical:   canonical,
		OG: OpenGraph{
			Title:       title,
			Description: summary,
			Image:       image,
			Type:        "profile",
			URL:         canonical,
		},
	}
}

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Person returns a minimal schema.org Person. Empty fields are omitted.
func Person(name, url string, sameAs []string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	var links []string
	for _, s := range sameAs {
		if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
			links = append(links, s)
		}
	}
	if len(links) > 0 {
		m["sameAs"] = links
	}
	return m
}
