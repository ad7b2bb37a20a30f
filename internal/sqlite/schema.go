package sqlite

// Table names, one per entity kind.
const (
	TableAssets      = "assets"
	TableLocations   = "locations"
	TableTags        = "tags"
	TableCollections = "collections"
)

// Each table stores the entity identifier alongside the JSON-encoded
// snapshot. The primary key gives sub-linear lookup by identifier;
// everything else stays inside the document so the schema never needs
// to chase attribute changes.
const (
	createAssets = `CREATE TABLE IF NOT EXISTS assets (
    id TEXT PRIMARY KEY,
    data TEXT NOT NULL
);`

	createLocations = `CREATE TABLE IF NOT EXISTS locations (
    id TEXT PRIMARY KEY,
    data TEXT NOT NULL
);`

	createTags = `CREATE TABLE IF NOT EXISTS tags (
    id TEXT PRIMARY KEY,
    data TEXT NOT NULL
);`

	createCollections = `CREATE TABLE IF NOT EXISTS collections (
    id TEXT PRIMARY KEY,
    data TEXT NOT NULL
);`
)

// schemaDDL lists all CREATE TABLE statements.
var schemaDDL = []string{
	createAssets,
	createLocations,
	createTags,
	createCollections,
}
