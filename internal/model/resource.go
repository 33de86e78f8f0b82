package model

import (
	"sort"
	"strings"
)

// IDSeparator separates the segments of a qualified identifier.
const IDSeparator = "/"

// Resource is one file to embed, addressed by its qualified identifier.
type Resource struct {
	ID   string // slash separated, e.g. "assets/images/logo"
	Path Path   // resolved file system path
}

// Segments splits the identifier into namespace segments followed by the
// entity name.
func (r Resource) Segments() []string {
	return strings.Split(r.ID, IDSeparator)
}

// Less orders resources by identifier, then by path.
func (r Resource) Less(other Resource) bool {
	if r.ID != other.ID {
		return r.ID < other.ID
	}

	return r.Path < other.Path
}

// SortResources sorts resources in output order.
func SortResources(resources []Resource) {
	sort.SliceStable(resources, func(i, j int) bool {
		return resources[i].Less(resources[j])
	})
}
