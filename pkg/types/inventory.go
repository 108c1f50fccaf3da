// Package types defines the inventory entities, the Store interface, and
// standard errors for stockroom.
package types

// Location is a storage place items can reference. IDs are caller-assigned
// and unique. An empty Comment means the location has no comment.
type Location struct {
	ID      int64
	Name    string
	Comment string
}

// Item is a stored thing, optionally placed at a location. A nil LocationID
// means the item is unassigned; a non-nil one must reference an existing
// Location.
type Item struct {
	ID         int64
	Name       string
	Comment    string
	LocationID *int64
}

// NormalizeComment maps an all-whitespace comment to the empty string so the
// store only ever sees "present" or "absent".
func NormalizeComment(comment string) string {
	for _, r := range comment {
		if r != ' ' && r != '\t' {
			return comment
		}
	}
	return ""
}

// Store is the persistence contract the screens operate against.
//
// Mutations are synchronous and durable on return. They fail with a sentinel
// validation error (duplicate id, unknown location, missing entity) or with a
// wrapped storage error for everything else. Reads never fail outward: point
// lookups report presence with a bool, snapshots and searches degrade to an
// empty slice on a read fault.
type Store interface {
	AddLocation(loc Location) error
	AddItem(item Item) error
	EditLocation(loc Location) error
	EditItem(item Item) error

	LocationByID(id int64) (Location, bool)
	ItemByID(id int64) (Item, bool)
	LocationExists(id int64) bool
	ItemExists(id int64) bool

	AllLocations() []Location
	AllItems() []Item
	SearchLocations(term string) []Location
	SearchItems(term string) []Item
	ItemsByLocation(locationID int64) []Item
}
