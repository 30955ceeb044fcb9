package export

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/cisto/site/internal/catalog"
	"github.com/cisto/site/internal/navbar"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	fs := afero.NewMemMapFs()

	res, err := Write(context.Background(), fs, catalog.MustDefault(), Options{Dir: "dist", Year: 2026})
	require.NoError(t, err)
	assert.Contains(t, res.Files, "index.html")
	assert.Contains(t, res.Files, "static/css/site.css")
	assert.Contains(t, res.Files, "static/js/site.js")

	index, err := afero.ReadFile(fs, filepath.Join("dist", "index.html"))
	require.NoError(t, err)
	page := string(index)
	assert.Contains(t, page, "<!doctype html>")
	assert.Contains(t, page, "© 2026 Čisto d.o.o.")
	assert.NotContains(t, page, "data-page-id")
	assert.NotContains(t, page, "hx-post")

	// The exported bar starts transparent and carries the class pairs the
	// exported script switches on scroll.
	assert.Contains(t, page, `data-theme="transparent"`)
	assert.Contains(t, page, `data-class-opaque="glass-nav py-3"`)

	script, err := afero.ReadFile(fs, filepath.Join("dist", "static", "js", "site.js"))
	require.NoError(t, err)
	assert.Contains(t, string(script), "[data-class-opaque]")
	assert.Contains(t, string(script), fmt.Sprintf("SCROLL_THRESHOLD = %g;", navbar.ScrollThreshold))
}

func TestWrite_SkipAssets(t *testing.T) {
	fs := afero.NewMemMapFs()

	res, err := Write(context.Background(), fs, catalog.MustDefault(), Options{Dir: "out", Year: 2026, SkipAssets: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"index.html"}, res.Files)

	ok, err := afero.DirExists(fs, filepath.Join("out", "static"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWrite_ReadOnlyTarget(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	_, err := Write(context.Background(), fs, catalog.MustDefault(), Options{Dir: "dist", Year: 2026})
	assert.Error(t, err)
}
