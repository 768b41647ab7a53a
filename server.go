package main

import (
	"bytes"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/zaaray/portfolio/internal/assets"
	"github.com/zaaray/portfolio/internal/content"
	"github.com/zaaray/portfolio/internal/icons"
	"github.com/zaaray/portfolio/internal/seo"
	"github.com/zaaray/portfolio/internal/views"
)

const (
	staticPrefix = "/static"
	imagesPrefix = "/images"
	wasmPrefix   = "/wasm"

	wasmFile     = "site.wasm"
	wasmExecFile = "wasm_exec.js"
)

// site renders the page from its content and directories.
type site struct {
	cfg    Config
	log    *zap.Logger
	images fs.FS
	wasm   fs.FS
	now    func() time.Time

	mu  sync.RWMutex
	reg *content.Registry
}

func newSite(cfg Config, log *zap.Logger) (*site, error) {
	s := &site{
		cfg:    cfg,
		log:    log,
		images: os.DirFS(cfg.ImagesDir),
		wasm:   os.DirFS(cfg.WasmDir),
		now:    time.Now,
	}
	reg, err := s.loadContent()
	if err != nil {
		return nil, err
	}
	s.reg = reg
	return s, nil
}

func (s *site) loadContent() (*content.Registry, error) {
	if s.cfg.ContentPath == "" {
		return content.Default()
	}
	return content.LoadFile(s.cfg.ContentPath)
}

// registry returns the loaded content. In dev mode a content file is
// re-read on every call so edits show up on reload; a broken edit keeps
// the last good content.
func (s *site) registry() *content.Registry {
	if s.cfg.Dev && s.cfg.ContentPath != "" {
		reg, err := s.loadContent()
		if err != nil {
			s.log.Warn("reload content", zap.Error(err))
		} else {
			s.mu.Lock()
			s.reg = reg
			s.mu.Unlock()
		}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg
}

// hasClient reports whether the compiled client and its loader are present.
func (s *site) hasClient() bool {
	for _, name := range []string{wasmFile, wasmExecFile} {
		if fi, err := fs.Stat(s.wasm, name); err != nil || fi.IsDir() {
			return false
		}
	}
	return true
}

func (s *site) page() views.Page {
	reg := s.registry()
	resolver := icons.NewResolver(s.images, imagesPrefix, reg.IconBindings())

	p := views.FromRegistry(reg)
	p.Icons = resolver
	p.Nav = s.cfg.Nav.tracker()
	p.Reveal = s.cfg.Reveal.motion()
	p.Year = s.now().Year()

	siteURL := s.cfg.SiteURL
	if siteURL == "" {
		siteURL = p.Profile.SiteURL
	}
	portrait, _ := resolver.Asset(p.Profile.Portrait)
	p.Meta = seo.ForProfile(p.Profile.Name, p.Profile.Summary, siteURL, portrait)

	p.Assets = views.Assets{
		StylesheetURL: staticPrefix + "/" + assets.Stylesheet,
		BootURL:       staticPrefix + "/" + assets.Boot,
	}
	if s.hasClient() {
		p.Assets.WasmExecURL = wasmPrefix + "/" + wasmExecFile
		p.Assets.WasmURL = wasmPrefix + "/" + wasmFile
	}
	return p
}

func (s *site) render() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.page().Render(&buf); err != nil {
		return nil, errors.Wrap(err, "render page")
	}
	return buf.Bytes(), nil
}

func (s *site) handleIndex(c *gin.Context) {
	b, err := s.render()
	if err != nil {
		_ = c.Error(err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", b)
}

func (s *site) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// router wires the page, health check and asset routes.
func (s *site) router(salt string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.log, salt))

	r.GET("/", s.handleIndex)
	r.GET("/healthz", s.handleHealth)

	r.StaticFS(staticPrefix, http.FS(assets.Static()))
	r.Static(imagesPrefix, filepath.Clean(s.cfg.ImagesDir))
	r.Static(wasmPrefix, filepath.Clean(s.cfg.WasmDir))
	return r
}
