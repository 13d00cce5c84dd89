// Package catalog holds the read-only hero attribute table used for scoring.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/okian/draftsensei/internal/domain/model"
	"golang.org/x/text/cases"
)

// Rejection records a stored hero left out of the catalog and why.
type Rejection struct {
	Name string
	Err  error
}

// Catalog maps hero names to validated attribute bundles. It is built once
// and never mutated afterwards, so it is safe for concurrent readers.
type Catalog struct {
	heroes   map[string]*model.Hero
	sorted   []*model.Hero
	rejected []Rejection
}

// New validates records and keeps the ones with a complete attribute bundle.
// Invalid records are reported through Rejected and do not abort the build.
func New(records []model.HeroRecord) *Catalog {
	c := &Catalog{heroes: make(map[string]*model.Hero, len(records))}
	for _, rec := range records {
		h, err := rec.Validate()
		if err != nil {
			c.rejected = append(c.rejected, Rejection{Name: rec.Name, Err: err})
			continue
		}
		key := fold(h.Name)
		if _, dup := c.heroes[key]; dup {
			c.rejected = append(c.rejected, Rejection{Name: rec.Name, Err: fmt.Errorf("%s: %w", h.Name, ErrDuplicateHero)})
			continue
		}
		hero := h
		c.heroes[key] = &hero
		c.sorted = append(c.sorted, &hero)
	}
	sort.Slice(c.sorted, func(i, j int) bool { return c.sorted[i].Name < c.sorted[j].Name })
	return c
}

// fold normalizes a name for lookup. Casers are stateful, so one is built per call.
func fold(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// Lookup returns the hero for name, ignoring case and surrounding space.
func (c *Catalog) Lookup(name string) (*model.Hero, bool) {
	h, ok := c.heroes[fold(name)]
	return h, ok
}

// Resolve maps names to catalog heroes in order, dropping unknown names.
func (c *Catalog) Resolve(names []string) []*model.Hero {
	out := make([]*model.Hero, 0, len(names))
	for _, n := range names {
		if h, ok := c.Lookup(n); ok {
			out = append(out, h)
		}
	}
	return out
}

// Heroes returns every catalog hero sorted by name.
func (c *Catalog) Heroes() []*model.Hero {
	out := make([]*model.Hero, len(c.sorted))
	copy(out, c.sorted)
	return out
}

// Names returns every hero name sorted.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.sorted))
	for i, h := range c.sorted {
		out[i] = h.Name
	}
	return out
}

// Filter returns heroes matching role and lane; zero values match anything.
func (c *Catalog) Filter(role model.Role, lane model.Lane) []*model.Hero {
	var out []*model.Hero
	for _, h := range c.sorted {
		if role != "" && h.PrimaryRole() != role && h.Attributes.Roles.SecondaryRole != role {
			continue
		}
		if lane != "" && !h.PlaysLane(lane) {
			continue
		}
		out = append(out, h)
	}
	return out
}

// Len returns the number of heroes in the catalog.
func (c *Catalog) Len() int { return len(c.sorted) }

// Rejected lists the records excluded at build time.
func (c *Catalog) Rejected() []Rejection {
	out := make([]Rejection, len(c.rejected))
	copy(out, c.rejected)
	return out
}

// Roles maps each known hero name to its primary role.
func (c *Catalog) Roles() map[string]model.Role {
	out := make(map[string]model.Role, len(c.sorted))
	for _, h := range c.sorted {
		out[h.Name] = h.PrimaryRole()
	}
	return out
}
