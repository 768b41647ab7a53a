package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zaaray/portfolio/internal/assets"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		out   string
		force bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the page and its assets as static files",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.export(out, force)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "public", "output directory")
	cmd.Flags().BoolVar(&force, "force", false, "remove the output directory first")
	return cmd
}

// export writes index.html plus the static, image and client files under
// out with the same layout the server uses.
func (a *app) export(out string, force bool) error {
	if out == "" {
		return errors.New("output directory is required")
	}
	if err := checkOutDir(out, force, map[string]string{
		"images": a.cfg.ImagesDir,
		"wasm":   a.cfg.WasmDir,
	}); err != nil {
		return err
	}
	s, err := newSite(a.cfg, a.log)
	if err != nil {
		return err
	}

	if force {
		if err := os.RemoveAll(out); err != nil {
			return errors.Wrapf(err, "clear %s", out)
		}
	} else if entries, err := os.ReadDir(out); err == nil && len(entries) > 0 {
		return errors.Errorf("%s is not empty, use --force to replace it", out)
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return errors.Wrapf(err, "create %s", out)
	}

	page, err := s.render()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(out, "index.html"), page, 0o644); err != nil {
		return errors.Wrap(err, "write index.html")
	}

	if err := copyTree(filepath.Join(out, "static"), assets.Static()); err != nil {
		return err
	}
	if dirExists(a.cfg.ImagesDir) {
		if err := copyTree(filepath.Join(out, "images"), s.images); err != nil {
			return err
		}
	} else {
		a.log.Warn("image directory not found, skipping", zap.String("dir", a.cfg.ImagesDir))
	}
	if s.hasClient() {
		for _, name := range []string{wasmFile, wasmExecFile} {
			if err := copyFile(filepath.Join(out, "wasm", name), s.wasm, name); err != nil {
				return err
			}
		}
	}

	a.log.Info("exported", zap.String("out", out), zap.Bool("client", s.hasClient()))
	return nil
}

// checkOutDir rejects an output directory that overlaps a source directory,
// since clearing or filling it would destroy or recurse into the source. With
// force it also rejects the working directory and its parents.
func checkOutDir(out string, force bool, sources map[string]string) error {
	absOut, err := resolvePath(out)
	if err != nil {
		return err
	}
	for name, dir := range sources {
		if dir == "" {
			continue
		}
		absDir, err := resolvePath(dir)
		if err != nil {
			return err
		}
		if within(absOut, absDir) || within(absDir, absOut) {
			return errors.Errorf("output directory %s overlaps the %s directory %s", out, name, dir)
		}
	}
	if force {
		wd, err := os.Getwd()
		if err != nil {
			return errors.Wrap(err, "working directory")
		}
		absWd, err := resolvePath(wd)
		if err != nil {
			return err
		}
		if within(absWd, absOut) {
			return errors.Errorf("refusing to remove %s: it holds the working directory", out)
		}
	}
	return nil
}

// resolvePath makes p absolute and resolves symlinks in its longest
// existing prefix.
func resolvePath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", errors.Wrapf(err, "resolve %s", p)
	}
	var rest []string
	for dir := abs; ; dir = filepath.Dir(dir) {
		if real, err := filepath.EvalSymlinks(dir); err == nil {
			for i := len(rest) - 1; i >= 0; i-- {
				real = filepath.Join(real, rest[i])
			}
			return real, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return abs, nil
		}
		rest = append(rest, filepath.Base(dir))
	}
}

// within reports whether path equals dir or lies below it. Both must be
// clean absolute paths.
func within(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func dirExists(dir string) bool {
	fi, err := os.Stat(dir)
	return err == nil && fi.IsDir()
}

func copyTree(dst string, src fs.FS) error {
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return errors.Wrapf(err, "create %s", dst)
	}
	if err := os.CopyFS(dst, src); err != nil {
		return errors.Wrapf(err, "copy into %s", dst)
	}
	return nil
}

func copyFile(dst string, src fs.FS, name string) error {
	b, err := fs.ReadFile(src, name)
	if err != nil {
		return errors.Wrapf(err, "read %s", name)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return errors.Wrapf(err, "create %s", filepath.Dir(dst))
	}
	if err := os.WriteFile(dst, b, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", dst)
	}
	return nil
}
