package dirbuild

import (
	"maps"
	"slices"
)

// ProfileNames lists the profiles of d in order.
func (d *Dir) ProfileNames() []string {
	return slices.Sorted(maps.Keys(d.Profiles))
}
