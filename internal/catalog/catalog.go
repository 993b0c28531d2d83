// Package catalog lists the workplace domains and the roles offered in each.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed domains.yaml
var defaultDomains []byte

type Domain struct {
	ID    string   `yaml:"id" json:"id"`
	Label string   `yaml:"label" json:"label"`
	Roles []string `yaml:"roles" json:"roles"`
}

type Catalog struct {
	Domains []Domain `yaml:"domains" json:"domains"`
	byID    map[string]*Domain
}

// Default parses the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultDomains)
}

// Parse decodes a catalog document and checks that ids are unique and every
// domain has at least one role.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c.byID = make(map[string]*Domain, len(c.Domains))
	for i := range c.Domains {
		d := &c.Domains[i]
		if d.ID == "" {
			return nil, fmt.Errorf("catalog domain %d has no id", i)
		}
		if _, dup := c.byID[d.ID]; dup {
			return nil, fmt.Errorf("catalog domain %q is duplicated", d.ID)
		}
		if len(d.Roles) == 0 {
			return nil, fmt.Errorf("catalog domain %q has no roles", d.ID)
		}
		c.byID[d.ID] = d
	}
	return &c, nil
}

func (c *Catalog) Domain(id string) (*Domain, bool) {
	d, ok := c.byID[id]
	return d, ok
}

// RolesByDomain returns the roles of domain id, or nil if it is unknown.
func (c *Catalog) RolesByDomain(id string) []string {
	if d, ok := c.byID[id]; ok {
		return d.Roles
	}
	return nil
}

// AllRoles returns every role once, in catalog order.
func (c *Catalog) AllRoles() []string {
	seen := make(map[string]bool)
	var roles []string
	for _, d := range c.Domains {
		for _, r := range d.Roles {
			if !seen[r] {
				seen[r] = true
				roles = append(roles, r)
			}
		}
	}
	return roles
}
