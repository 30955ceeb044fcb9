// Package export renders the landing page to static files.
package export

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"

	"github.com/cisto/site/internal/catalog"
	"github.com/cisto/site/internal/rendering"
	"github.com/cisto/site/web"
	"github.com/cisto/site/web/src/templates/pages"
	"github.com/spf13/afero"
)

// Options control an export.
type Options struct {
	Dir  string
	Year int
	// SkipAssets leaves out the static/ directory.
	SkipAssets bool
}

// Result lists the files written, relative to Options.Dir.
type Result struct {
	Files []string
}

// Write renders the page without a live session, so the navigation bar is
// a static snapshot at the top of the page, and writes it with the static
// assets to dst under opts.Dir.
func Write(ctx context.Context, dst afero.Fs, site *catalog.Site, opts Options) (Result, error) {
	var res Result
	if err := dst.MkdirAll(opts.Dir, 0o755); err != nil {
		return res, fmt.Errorf("create %s: %w", opts.Dir, err)
	}

	page, err := rendering.NewUniversalRenderer().RenderComponent(ctx, pages.Home(pages.HomeData{
		Site: site,
		Year: opts.Year,
	}))
	if err != nil {
		return res, err
	}
	if err := afero.WriteFile(dst, filepath.Join(opts.Dir, "index.html"), page, 0o644); err != nil {
		return res, fmt.Errorf("write index.html: %w", err)
	}
	res.Files = append(res.Files, "index.html")

	if opts.SkipAssets {
		return res, nil
	}

	err = fs.WalkDir(web.FS, "static", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(opts.Dir, filepath.FromSlash(p))
		if d.IsDir() {
			return dst.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(web.FS, p)
		if err != nil {
			return err
		}
		if err := afero.WriteFile(dst, target, data, 0o644); err != nil {
			return err
		}
		res.Files = append(res.Files, path.Clean(p))
		return nil
	})
	if err != nil {
		return res, fmt.Errorf("copy static assets: %w", err)
	}

	slog.Info("Site exported", "dir", opts.Dir, "files", len(res.Files))
	return res, nil
}
