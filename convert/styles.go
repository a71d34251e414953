package convert

import (
	"fmt"
	"maps"
	"slices"
	"sort"

	"github.com/maruel/natural"
	"go.uber.org/zap"

	"docgen/config"
	"docgen/document"
)

// buildStyles returns default theme with configured overrides applied on top.
// Override for unknown style name registers new style based on body text.
func buildStyles(overrides map[string]config.StyleOverride, log *zap.Logger) (*document.StyleRegistry, error) {
	reg := document.DefaultStyles()

	names := slices.Collect(maps.Keys(overrides))
	sort.Sort(natural.StringSlice(names))

	for _, name := range names {
		baseName := document.StyleNormal
		if reg.Has(name) {
			baseName = name
		}
		base, err := reg.Resolve(baseName)
		if err != nil {
			return nil, err
		}
		spec, err := applyOverride(base, overrides[name])
		if err != nil {
			return nil, fmt.Errorf("unable to apply style override %s: %w", name, err)
		}
		if reg.Register(name, spec) {
			log.Debug("Style replaced", zap.String("style", name), zap.Stringer("spec", spec))
		} else {
			log.Debug("Style added", zap.String("style", name), zap.Stringer("spec", spec))
		}
	}
	log.Debug("Styles ready", zap.Int("count", reg.Len()), zap.Int("overrides", len(overrides)))
	return reg, nil
}

func applyOverride(spec document.StyleSpec, o config.StyleOverride) (document.StyleSpec, error) {
	if o.Font != "" {
		spec.Font = o.Font
	}
	if o.Size > 0 {
		spec.Size = o.Size
	}
	if o.Color != "" {
		c, err := document.ParseRGB(o.Color)
		if err != nil {
			return spec, err
		}
		spec.Color = c
	}
	if o.Weight != nil {
		spec.Weight = *o.Weight
	}
	if o.Italic != nil {
		spec.Italic = *o.Italic
	}
	if o.Align != nil {
		spec.Align = *o.Align
	}
	if o.SpaceBefore != nil {
		spec.SpaceBefore = *o.SpaceBefore
	}
	if o.SpaceAfter != nil {
		spec.SpaceAfter = *o.SpaceAfter
	}
	return spec, nil
}
