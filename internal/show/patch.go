package show

import (
	"errors"
	"fmt"
	"strings"

	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/address"
	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/config"
	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/fixture"
)

// ErrUnknownFixture is returned for patch entries naming no catalog fixture.
var ErrUnknownFixture = errors.New("unknown fixture")

// Catalog resolves catalog paths to fixtures.
type Catalog interface {
	Lookup(path []string) (*fixture.Fixture, bool)
}

// SplitPath splits a slash separated catalog path.
func SplitPath(p string) []string {
	var parts []string
	for _, s := range strings.Split(p, "/") {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return parts
}

// ApplyPatch places every entry into s. Entries that fail are skipped; their
// errors are joined in the result.
func ApplyPatch(catalog Catalog, s *Show, entries []config.PatchConf) error {
	var errs []error
	for _, e := range entries {
		if err := patchOne(catalog, s, e); err != nil {
			errs = append(errs, fmt.Errorf("patch %q: %w", e.Name, err))
		}
	}
	return errors.Join(errs...)
}

func patchOne(catalog Catalog, s *Show, e config.PatchConf) error {
	u, err := address.NewUniverseID(e.Universe)
	if err != nil {
		return err
	}
	f, ok := catalog.Lookup(SplitPath(e.Fixture))
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFixture, e.Fixture)
	}
	variant := fixture.NoSelection
	if e.Variant != nil {
		variant = *e.Variant
	}
	_, err = s.Devices.CreateOrGet(u).Place(e.Name, e.Channel, f, variant)
	return err
}
