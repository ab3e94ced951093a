// internal/catalog/catalog.go
package catalog

import (
	"fmt"
	"os"

	"tcc_companion/internal/model"

	"gopkg.in/yaml.v3"
)

// Catalog is the static ModuleDefinition table. It is loaded once at process
// start and never mutated; every lookup of an unknown code degrades to
// "locked", never to a crash.
type Catalog struct {
	order  []string
	byCode map[string]*model.ModuleDefinition
}

type catalogFile struct {
	Modules []*model.ModuleDefinition `yaml:"modules"`
}

// Load reads the protocol catalog from a YAML file. Module order in the file
// is the protocol order; the first module is the bootstrap default for
// patients with no recorded progress.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	if len(file.Modules) == 0 {
		return nil, fmt.Errorf("catalog %s: no modules defined", path)
	}

	c := &Catalog{byCode: make(map[string]*model.ModuleDefinition, len(file.Modules))}
	for _, m := range file.Modules {
		if m.Code == "" {
			return nil, fmt.Errorf("catalog %s: module with empty code", path)
		}
		if _, dup := c.byCode[m.Code]; dup {
			return nil, fmt.Errorf("catalog %s: duplicate module code %q", path, m.Code)
		}
		c.order = append(c.order, m.Code)
		c.byCode[m.Code] = m
	}
	return c, nil
}

// Get returns the module for code, or false for an unknown code.
func (c *Catalog) Get(code string) (*model.ModuleDefinition, bool) {
	m, ok := c.byCode[code]
	return m, ok
}

// Known reports whether code exists in the catalog.
func (c *Catalog) Known(code string) bool {
	_, ok := c.byCode[code]
	return ok
}

// Codes returns every module code in protocol order.
func (c *Catalog) Codes() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Bootstrap is the unlocked-module set assumed for a patient with no remote
// row: exactly the first module, never "all" or "none".
func (c *Catalog) Bootstrap() []string {
	return []string{c.order[0]}
}
