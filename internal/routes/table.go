package routes

import (
	"sort"
	"strings"
)

// Table is the ordered, indexed registry of route descriptors. Built once at
// startup, read-only afterwards.
type Table struct {
	// List is every registered descriptor, stable-sorted ascending by Order.
	// Entries without an ID are kept (they keep their discovery position for
	// ties) but are unreachable by fragment.
	List []Descriptor
	// ByID maps addressable ids to their descriptor.
	ByID map[string]Descriptor
	// ChildrenByParent maps a parent id to its children in List order.
	ChildrenByParent map[string][]Descriptor
}

// Build constructs the route table from the registered page modules.
// A module with a missing id never breaks the build; it simply cannot be
// navigated to. An Order of zero means unspecified and becomes
// DefaultOrder; negative orders are preserved and sort first.
func Build(modules []Descriptor) *Table {
	list := make([]Descriptor, len(modules))
	copy(list, modules)
	for i := range list {
		if list[i].Order == 0 {
			list[i].Order = DefaultOrder
		}
		if list[i].Label == "" {
			list[i].Label = list[i].ID
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Order < list[j].Order
	})

	byID := make(map[string]Descriptor, len(list))
	children := make(map[string][]Descriptor)
	for _, d := range list {
		if d.Addressable() {
			byID[d.ID] = d
		}
		if d.Parent != "" {
			children[d.Parent] = append(children[d.Parent], d)
		}
	}

	return &Table{List: list, ByID: byID, ChildrenByParent: children}
}

// TopLevel returns the descriptors without a parent, in List order.
func (t *Table) TopLevel() []Descriptor {
	var top []Descriptor
	for _, d := range t.List {
		if d.Parent == "" && d.Addressable() {
			top = append(top, d)
		}
	}
	return top
}

// NormalizeFragment strips a leading "#" and the legacy "page-" prefix from a
// raw fragment. An empty result means "home".
func NormalizeFragment(fragment string) string {
	id := strings.TrimPrefix(fragment, "#")
	id = strings.TrimPrefix(id, "page-")
	if id == "" {
		return HomeID
	}
	return id
}

// Resolve maps a raw fragment to a descriptor. Unknown or empty fragments
// fall back to the home route; a missing route must never break navigation,
// so Resolve never fails. If even home is unregistered a placeholder
// descriptor is returned.
func (t *Table) Resolve(fragment string) Descriptor {
	id := NormalizeFragment(fragment)
	if d, ok := t.ByID[id]; ok {
		return d
	}
	if d, ok := t.ByID[HomeID]; ok {
		return d
	}
	return Descriptor{
		ID:    HomeID,
		Label: "Home",
		Order: DefaultOrder,
		Render: func() string {
			return "Nothing to show here yet."
		},
	}
}
