// Package catalog holds the static category registry: which upstream
// playlist backs each browsable video category of the site.
package catalog

import (
	"fmt"

	"tombraider-hub/domain/dto"
	"tombraider-hub/domain/model"
)

// Registry is a read-only lookup from category key to playlist. It is built
// once at startup and safe for concurrent use.
type Registry struct {
	byKey  map[string]model.PlaylistInfo
	groups []dto.CategoryGroup
}

// NewRegistry indexes groups by category key. Keys must be unique across all
// groups; lookups are case-sensitive.
func NewRegistry(groups []dto.CategoryGroup) (*Registry, error) {
	r := &Registry{byKey: make(map[string]model.PlaylistInfo)}
	for _, g := range groups {
		group := dto.CategoryGroup{Game: g.Game, Categories: make([]model.PlaylistInfo, 0, len(g.Categories))}
		for _, c := range g.Categories {
			if c.Key == "" {
				return nil, fmt.Errorf("category with empty key in group %q", g.Game)
			}
			if _, dup := r.byKey[c.Key]; dup {
				return nil, fmt.Errorf("duplicate category key %q", c.Key)
			}
			c.Game = g.Game
			r.byKey[c.Key] = c
			group.Categories = append(group.Categories, c)
		}
		r.groups = append(r.groups, group)
	}
	return r, nil
}

// MustDefault returns the registry built from DefaultGroups and panics if the
// static table is inconsistent.
func MustDefault() *Registry {
	r, err := NewRegistry(DefaultGroups)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) Resolve(key string) (model.PlaylistInfo, bool) {
	info, ok := r.byKey[key]
	return info, ok
}

func (r *Registry) IsValid(key string) bool {
	_, ok := r.byKey[key]
	return ok
}

// Groups returns a copy of the categories grouped by game, in table order.
func (r *Registry) Groups() []dto.CategoryGroup {
	out := make([]dto.CategoryGroup, len(r.groups))
	for i, g := range r.groups {
		out[i] = dto.CategoryGroup{Game: g.Game, Categories: append([]model.PlaylistInfo(nil), g.Categories...)}
	}
	return out
}
