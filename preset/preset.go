package preset

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/bstviz/input"
)

// Preset is a named example input.
type Preset struct {
	// Name is the display name, e.g. "Balanced Tree".
	Name string
	// Slug is the lowercase command-line key, e.g. "balanced".
	Slug string
	// Values is the insertion order.
	Values []int
}

// Text returns the values as comma-separated input text.
func (p Preset) Text() string {
	return strings.ReplaceAll(input.Format(p.Values), " ", "")
}

var presets = []Preset{
	{Name: "Balanced Tree", Slug: "balanced", Values: []int{8, 4, 2, 1, 3, 6, 5, 7, 12, 10, 9, 11, 14, 13, 15}},
	{Name: "Perfect Tree", Slug: "perfect", Values: []int{4, 2, 6, 1, 3, 5, 7}},
	{Name: "Right Skewed", Slug: "right-skewed", Values: []int{1, 2, 3, 4, 5, 6, 7}},
	{Name: "Left Skewed", Slug: "left-skewed", Values: []int{7, 6, 5, 4, 3, 2, 1}},
}

// All returns copies of the named presets in display order.
func All() []Preset {
	out := make([]Preset, len(presets))
	for i, p := range presets {
		out[i] = clonePreset(p)
	}

	return out
}

// Default returns the preset loaded by the "load example" action.
func Default() Preset {
	return clonePreset(presets[0])
}

// Lookup finds a preset by display name or slug, case-insensitively.
func Lookup(name string) (Preset, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, p := range presets {
		if key == p.Slug || key == strings.ToLower(p.Name) {
			return clonePreset(p), nil
		}
	}

	return Preset{}, errors.Wrapf(ErrUnknownPreset, "%q", name)
}

func clonePreset(p Preset) Preset {
	p.Values = slices.Clone(p.Values)
	return p
}
