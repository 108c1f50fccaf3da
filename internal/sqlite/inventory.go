// This file implements the inventory operations of the Store interface.
// Mutations check ids at the application layer before handing the statement
// to SQLite, which enforces the same constraints again through the schema.
package sqlite

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/dukaforge/stockroom/pkg/types"
)

// AddLocation inserts a new location. The id must not already exist.
func (b *Backend) AddLocation(loc types.Location) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrDetached
	}
	if b.locationExistsLocked(loc.ID) {
		return fmt.Errorf("adding location %d: %w", loc.ID, types.ErrDuplicateID)
	}

	_, err := b.db.Exec(
		"INSERT INTO locations (id, name, comment) VALUES (?, ?, ?)",
		loc.ID, loc.Name, commentValue(loc.Comment),
	)
	if err != nil {
		return fmt.Errorf("adding location %d: %w", loc.ID, err)
	}
	return nil
}

// AddItem inserts a new item. The id must not already exist and the location
// reference, if present, must name an existing location.
func (b *Backend) AddItem(item types.Item) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrDetached
	}
	if b.itemExistsLocked(item.ID) {
		return fmt.Errorf("adding item %d: %w", item.ID, types.ErrDuplicateID)
	}
	if item.LocationID != nil && !b.locationExistsLocked(*item.LocationID) {
		return fmt.Errorf("adding item %d: %w", item.ID, types.ErrUnknownLocation)
	}

	_, err := b.db.Exec(
		"INSERT INTO items (id, name, comment, location_id) VALUES (?, ?, ?, ?)",
		item.ID, item.Name, commentValue(item.Comment), locationValue(item.LocationID),
	)
	if err != nil {
		return fmt.Errorf("adding item %d: %w", item.ID, err)
	}
	return nil
}

// EditLocation overwrites the mutable fields of an existing location.
func (b *Backend) EditLocation(loc types.Location) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrDetached
	}
	if !b.locationExistsLocked(loc.ID) {
		return fmt.Errorf("editing location %d: %w", loc.ID, types.ErrNotFound)
	}

	_, err := b.db.Exec(
		"UPDATE locations SET name = ?, comment = ? WHERE id = ?",
		loc.Name, commentValue(loc.Comment), loc.ID,
	)
	if err != nil {
		return fmt.Errorf("editing location %d: %w", loc.ID, err)
	}
	return nil
}

// EditItem overwrites the mutable fields of an existing item. A rejected
// edit leaves the stored row unchanged.
func (b *Backend) EditItem(item types.Item) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrDetached
	}
	if !b.itemExistsLocked(item.ID) {
		return fmt.Errorf("editing item %d: %w", item.ID, types.ErrNotFound)
	}
	if item.LocationID != nil && !b.locationExistsLocked(*item.LocationID) {
		return fmt.Errorf("editing item %d: %w", item.ID, types.ErrUnknownLocation)
	}

	_, err := b.db.Exec(
		"UPDATE items SET name = ?, comment = ?, location_id = ? WHERE id = ?",
		item.Name, commentValue(item.Comment), locationValue(item.LocationID), item.ID,
	)
	if err != nil {
		return fmt.Errorf("editing item %d: %w", item.ID, err)
	}
	return nil
}

// LocationByID retrieves a location by id. The bool reports presence.
func (b *Backend) LocationByID(id int64) (types.Location, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return types.Location{}, false
	}

	row := b.db.QueryRow("SELECT id, name, comment FROM locations WHERE id = ?", id)
	loc, err := hydrateLocation(row)
	if err != nil {
		if err != sql.ErrNoRows {
			b.log.Warn("location lookup failed", zap.Int64("id", id), zap.Error(err))
		}
		return types.Location{}, false
	}
	return loc, true
}

// ItemByID retrieves an item by id. The bool reports presence.
func (b *Backend) ItemByID(id int64) (types.Item, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return types.Item{}, false
	}

	row := b.db.QueryRow("SELECT id, name, comment, location_id FROM items WHERE id = ?", id)
	item, err := hydrateItem(row)
	if err != nil {
		if err != sql.ErrNoRows {
			b.log.Warn("item lookup failed", zap.Int64("id", id), zap.Error(err))
		}
		return types.Item{}, false
	}
	return item, true
}

// LocationExists reports whether a location with the given id is stored.
func (b *Backend) LocationExists(id int64) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.attached && b.locationExistsLocked(id)
}

// ItemExists reports whether an item with the given id is stored.
func (b *Backend) ItemExists(id int64) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.attached && b.itemExistsLocked(id)
}

// AllLocations returns a snapshot of every location, ordered by id. It is
// empty when there are no rows or when the read fails.
func (b *Backend) AllLocations() []types.Location {
	return b.queryLocations("SELECT id, name, comment FROM locations ORDER BY id")
}

// AllItems returns a snapshot of every item, ordered by id. It is empty when
// there are no rows or when the read fails.
func (b *Backend) AllItems() []types.Item {
	return b.queryItems("SELECT id, name, comment, location_id FROM items ORDER BY id")
}

// SearchLocations returns locations whose name or comment contains term,
// case-insensitively.
func (b *Backend) SearchLocations(term string) []types.Location {
	return b.queryLocations(
		`SELECT id, name, comment FROM locations
		 WHERE instr(lower(name), lower(?1)) > 0
		    OR instr(lower(comment), lower(?1)) > 0
		 ORDER BY id`, term)
}

// SearchItems returns items whose name or comment contains term,
// case-insensitively.
func (b *Backend) SearchItems(term string) []types.Item {
	return b.queryItems(
		`SELECT id, name, comment, location_id FROM items
		 WHERE instr(lower(name), lower(?1)) > 0
		    OR instr(lower(comment), lower(?1)) > 0
		 ORDER BY id`, term)
}

// ItemsByLocation returns the items referencing a location, ordered by id.
func (b *Backend) ItemsByLocation(locationID int64) []types.Item {
	return b.queryItems(
		"SELECT id, name, comment, location_id FROM items WHERE location_id = ? ORDER BY id",
		locationID)
}

func (b *Backend) queryLocations(query string, args ...any) []types.Location {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil
	}

	rows, err := b.db.Query(query, args...)
	if err != nil {
		b.log.Warn("location query failed", zap.Error(err))
		return nil
	}
	defer rows.Close()

	var locs []types.Location
	for rows.Next() {
		loc, err := hydrateLocation(rows)
		if err != nil {
			b.log.Warn("location row scan failed", zap.Error(err))
			return nil
		}
		locs = append(locs, loc)
	}
	if err := rows.Err(); err != nil {
		b.log.Warn("location query failed", zap.Error(err))
		return nil
	}
	return locs
}

func (b *Backend) queryItems(query string, args ...any) []types.Item {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil
	}

	rows, err := b.db.Query(query, args...)
	if err != nil {
		b.log.Warn("item query failed", zap.Error(err))
		return nil
	}
	defer rows.Close()

	var items []types.Item
	for rows.Next() {
		item, err := hydrateItem(rows)
		if err != nil {
			b.log.Warn("item row scan failed", zap.Error(err))
			return nil
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		b.log.Warn("item query failed", zap.Error(err))
		return nil
	}
	return items
}

func (b *Backend) locationExistsLocked(id int64) bool {
	var one int
	err := b.db.QueryRow("SELECT 1 FROM locations WHERE id = ?", id).Scan(&one)
	return err == nil
}

func (b *Backend) itemExistsLocked(id int64) bool {
	var one int
	err := b.db.QueryRow("SELECT 1 FROM items WHERE id = ?", id).Scan(&one)
	return err == nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func hydrateLocation(s scanner) (types.Location, error) {
	var loc types.Location
	var comment sql.NullString
	if err := s.Scan(&loc.ID, &loc.Name, &comment); err != nil {
		return types.Location{}, err
	}
	loc.Comment = comment.String
	return loc, nil
}

func hydrateItem(s scanner) (types.Item, error) {
	var item types.Item
	var comment sql.NullString
	var locationID sql.NullInt64
	if err := s.Scan(&item.ID, &item.Name, &comment, &locationID); err != nil {
		return types.Item{}, err
	}
	item.Comment = comment.String
	if locationID.Valid {
		id := locationID.Int64
		item.LocationID = &id
	}
	return item, nil
}

// commentValue maps an absent comment to NULL so empty and absent stay the
// same stored value.
func commentValue(comment string) any {
	if comment == "" {
		return nil
	}
	return comment
}

func locationValue(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}
