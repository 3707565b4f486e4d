// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/Devin-Washington/Data-Gen/pkg/types"
)

// Overlay is the YAML shape of a catalog customization file. Non-empty
// sections replace the corresponding built-in pool wholesale; omitted
// sections keep the defaults.
type Overlay struct {
	Targets []types.Target `yaml:"targets"`
	Events  []types.Event  `yaml:"events"`
}

// Load returns the effective catalog for a run: the built-in catalog with an
// optional YAML overlay applied, validated. An empty path means no overlay.
func Load(path string) (*Catalog, error) {
	c := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading catalog overlay: %w", err)
		}
		var o Overlay
		if err := yaml.Unmarshal(data, &o); err != nil {
			return nil, fmt.Errorf("parsing catalog overlay %s: %w", path, err)
		}
		if len(o.Targets) > 0 {
			c.Targets = o.Targets
		}
		if len(o.Events) > 0 {
			c.Events = o.Events
		}
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validating catalog: %w", err)
	}
	return c, nil
}

// Export marshals the effective catalog pools to YAML for inspection or as a
// starting point for an overlay file.
func (c *Catalog) Export() ([]byte, error) {
	out := struct {
		Phases  []types.Phase  `yaml:"phases"`
		Leaders []types.Leader `yaml:"leaders"`
		Targets []types.Target `yaml:"targets"`
		Events  []types.Event  `yaml:"events"`
	}{c.Phases, c.Leaders, c.Targets, c.Events}

	data, err := yaml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshaling catalog: %w", err)
	}
	return data, nil
}
