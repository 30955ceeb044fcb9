package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

//go:embed content/site.yaml
var defaultSiteYAML []byte

// ErrInvalid is returned when a catalog document parses but breaks a content rule.
var ErrInvalid = errors.New("invalid catalog")

var validate = validator.New()

// Default returns the Site baked into the binary.
func Default() (*Site, error) {
	site, err := Parse(defaultSiteYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return site, nil
}

// MustDefault is Default for wiring code and tests; it panics on error.
func MustDefault() *Site {
	site, err := Default()
	if err != nil {
		panic(err)
	}
	return site
}

// Load reads and parses a catalog document from fs.
func Load(fs afero.Fs, path string) (*Site, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	site, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return site, nil
}

// Parse decodes a YAML catalog document, resolves link anchors and validates
// the result.
func Parse(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	resolveLinks(site.Navigation)
	resolveLinks(site.Footer.QuickLinks)

	if err := validate.Struct(&site); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return &site, nil
}

func resolveLinks(links []Link) {
	for i := range links {
		if links[i].Section == "" {
			links[i].Section = Slug(links[i].Label)
		}
	}
}
