// Package icons resolves symbolic skill keys to image URLs and keeps failed
// images from showing a broken-image placeholder.
package icons

import (
	"io/fs"
	"path"
	"strings"
)

// Resolver maps icon keys to image URLs. A key resolves only when it is
// bound and the bound file exists under the image directory.
type Resolver struct {
	images    fs.FS
	urlPrefix string
	bindings  map[string]string
}

// NewResolver returns a resolver over images, which is served at urlPrefix.
// bindings maps keys to paths relative to images. A nil images skips the
// existence check.
func NewResolver(images fs.FS, urlPrefix string, bindings map[string]string) *Resolver {
	b := make(map[string]string, len(bindings))
	for k, v := range bindings {
		b[strings.ToLower(strings.TrimSpace(k))] = strings.TrimPrefix(path.Clean("/"+v), "/")
	}
	return &Resolver{
		images:    images,
		urlPrefix: "/" + strings.Trim(urlPrefix, "/"),
		bindings:  b,
	}
}

// Resolve returns the URL for key, or false when the key is empty, unbound,
// or bound to a file that does not exist.
func (r *Resolver) Resolve(key string) (string, bool) {
	if r == nil {
		return "", false
	}
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return "", false
	}
	file, ok := r.bindings[key]
	if !ok || file == "" || file == "." {
		return "", false
	}
	if r.images != nil {
		if info, err := fs.Stat(r.images, file); err != nil || info.IsDir() {
			return "", false
		}
	}
	return path.Join(r.urlPrefix, file), true
}

// Asset returns the URL of an image path declared directly in content, or
// false when the file does not exist.
func (r *Resolver) Asset(file string) (string, bool) {
	if r == nil {
		return "", false
	}
	file = strings.TrimSpace(file)
	if file == "" {
		return "", false
	}
	if strings.HasPrefix(file, "http://") || strings.HasPrefix(file, "https://") {
		return file, true
	}
	clean := strings.TrimPrefix(path.Clean("/"+file), "/")
	if clean == "" {
		return "", false
	}
	if r.images != nil {
		if info, err := fs.Stat(r.images, clean); err != nil || info.IsDir() {
			return "", false
		}
	}
	return path.Join(r.urlPrefix, clean), true
}
