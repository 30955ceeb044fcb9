package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	site, err := Default()
	require.NoError(t, err)

	t.Run("services keep catalog order", func(t *testing.T) {
		var ids []string
		for _, s := range site.Services {
			ids = append(ids, s.ID)
		}
		assert.Equal(t, []string{"home", "office", "deep", "post-construction"}, ids)
		assert.Equal(t, "po dogovoru", site.Services[1].Price)
	})

	t.Run("reviews keep catalog order", func(t *testing.T) {
		want := []Review{
			{ID: "1", Author: "Marko P.", Rating: 5, Date: "pred 2 tednoma"},
			{ID: "2", Author: "Ana K.", Rating: 5, Date: "pred 1 mesecem"},
			{ID: "3", Author: "Luka M.", Rating: 5, Date: "pred 3 dnevi"},
		}
		ignoreText := cmp.FilterPath(func(p cmp.Path) bool {
			return p.Last().String() == ".Text"
		}, cmp.Ignore())
		if diff := cmp.Diff(want, site.Reviews, ignoreText); diff != "" {
			t.Errorf("reviews mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("navigation labels resolve to section anchors", func(t *testing.T) {
		var hrefs []string
		for _, l := range site.Navigation {
			hrefs = append(hrefs, l.Href())
		}
		assert.Equal(t, []string{"#storitve", "#cenik", "#o-nas", "#mnenja"}, hrefs)
	})

	t.Run("footer quick links point at real sections", func(t *testing.T) {
		require.Len(t, site.Footer.QuickLinks, 5)
		assert.Equal(t, SectionContact, site.Footer.QuickLinks[4].Section)
	})

	t.Run("phone link", func(t *testing.T) {
		assert.Equal(t, "tel:+38641123456", site.PhoneHref())
		assert.Equal(t, "Pridobi ponudbo", site.Hero.CTA)
	})
}

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"Storitve":        "storitve",
		"O nas":           "o-nas",
		"  Mnenja  strank": "mnenja-strank",
		"Čiščenje doma":   "ciscenje-doma",
		"Kontakt":         "kontakt",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slug(in), "Slug(%q)", in)
	}
}

func mutateDefault(t *testing.T, from, to string) []byte {
	t.Helper()
	require.Contains(t, string(defaultSiteYAML), from)
	return []byte(strings.Replace(string(defaultSiteYAML), from, to, 1))
}

func TestParse(t *testing.T) {
	t.Run("duplicate service ids are rejected", func(t *testing.T) {
		doc := mutateDefault(t, "id: office", "id: home")
		_, err := Parse(doc)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalid))
	})

	t.Run("navigation label without a section is rejected", func(t *testing.T) {
		doc := mutateDefault(t, "  - label: Cenik\n  - label: O nas", "  - label: Ceniki\n  - label: O nas")
		_, err := Parse(doc)
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("explicit section overrides the label", func(t *testing.T) {
		doc := mutateDefault(t, "  - label: Cenik\n  - label: O nas", "  - label: Ceniki\n    section: cenik\n  - label: O nas")
		site, err := Parse(doc)
		require.NoError(t, err)
		assert.Equal(t, "#cenik", site.Navigation[1].Href())
	})

	t.Run("ratings outside 1-5 are accepted", func(t *testing.T) {
		doc := mutateDefault(t, "rating: 5", "rating: 9")
		site, err := Parse(doc)
		require.NoError(t, err)
		assert.Equal(t, 9, site.Reviews[0].Rating)
	})

	t.Run("malformed yaml is a decode error", func(t *testing.T) {
		_, err := Parse([]byte("services: [unterminated"))
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrInvalid))
	})
}

func TestStore(t *testing.T) {
	memFs := afero.NewMemMapFs()
	path := "/srv/cisto/site.yaml"
	require.NoError(t, afero.WriteFile(memFs, path, defaultSiteYAML, 0o644))

	store, err := Open(memFs, path)
	require.NoError(t, err)
	assert.Equal(t, path, store.Path())
	assert.Equal(t, "Čiščenje doma", store.Site().Services[0].Title)

	t.Run("reload picks up new content", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(memFs, path, mutateDefault(t, "title: Čiščenje doma", "title: Čiščenje stanovanj"), 0o644))
		require.NoError(t, store.Reload())
		assert.Equal(t, "Čiščenje stanovanj", store.Site().Services[0].Title)
	})

	t.Run("failed reload keeps previous content", func(t *testing.T) {
		before := store.Site()
		require.NoError(t, afero.WriteFile(memFs, path, []byte("services: ["), 0o644))
		assert.Error(t, store.Reload())
		assert.Same(t, before, store.Site())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Open(memFs, "/nope.yaml")
		assert.Error(t, err)
	})

	t.Run("empty path uses the embedded catalog", func(t *testing.T) {
		s, err := Open(memFs, "")
		require.NoError(t, err)
		assert.Empty(t, s.Path())
		assert.NoError(t, s.Reload())
		assert.Len(t, s.Site().Services, 4)
	})
}

func TestStoreWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, defaultSiteYAML, 0o644))

	store, err := Open(afero.NewOsFs(), path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- store.Watch(ctx) }()

	updated := mutateDefault(t, "mobile_cta: Pokliči za ponudbo", "mobile_cta: Pokličite nas")
	require.Eventually(t, func() bool {
		// Rewrite until the watcher is registered and sees the change.
		_ = os.WriteFile(path, updated, 0o644)
		return store.Site().MobileCTA == "Pokličite nas"
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
