// Package sqlite implements the SQLite storage backend for stockroom.
package sqlite

// Schema DDL. Item rows reference locations by id; the foreign key is
// enforced by SQLite in addition to the application-layer existence checks.
const (
	createLocations = `CREATE TABLE IF NOT EXISTS locations (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    comment TEXT
);`

	createItems = `CREATE TABLE IF NOT EXISTS items (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    comment TEXT,
    location_id INTEGER REFERENCES locations(id)
);`
)

// schemaStatements lists the DDL executed on Attach, in order.
var schemaStatements = []string{
	createLocations,
	createItems,
}
