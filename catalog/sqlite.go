package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/signalsfoundry/astro-kernel/model"
)

// DescriptorTable is the SQLite table LoadSQLite reads. Integrations are
// stored as a comma-separated tag list.
const DescriptorTable = "catalog_descriptors"

// CreateTableSQL creates DescriptorTable if it does not exist.
const CreateTableSQL = `CREATE TABLE IF NOT EXISTS catalog_descriptors (
	name TEXT PRIMARY KEY,
	version TEXT NOT NULL DEFAULT '',
	coordinate_system TEXT NOT NULL,
	epoch REAL NOT NULL DEFAULT 2000.0,
	integrations TEXT NOT NULL DEFAULT ''
)`

// OpenSQLite opens a read-only handle on a descriptor database.
func OpenSQLite(path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("catalog db path is required")
	}
	dsn := "file:" + filepath.Clean(path) + "?mode=ro&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return db, nil
}

// LoadSQLite reads every row of DescriptorTable from db.
func LoadSQLite(ctx context.Context, db *sql.DB) ([]model.CatalogDescriptor, error) {
	if db == nil {
		return nil, fmt.Errorf("LoadSQLite: db is nil")
	}
	rows, err := db.QueryContext(ctx,
		`SELECT name, version, coordinate_system, epoch, integrations FROM `+DescriptorTable+` ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", DescriptorTable, err)
	}
	defer rows.Close()

	var out []model.CatalogDescriptor
	for rows.Next() {
		var (
			d    model.CatalogDescriptor
			tags string
		)
		if err := rows.Scan(&d.Name, &d.Version, &d.CoordinateSystem, &d.Epoch, &tags); err != nil {
			return nil, fmt.Errorf("scan %s: %w", DescriptorTable, err)
		}
		d.Integrations, err = parseIntegrations(splitTags(tags))
		if err != nil {
			return nil, fmt.Errorf("catalog %q: %w", d.Name, err)
		}
		if err := validate(d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", DescriptorTable, err)
	}
	return out, nil
}

// LoadSQLiteFile opens path, loads its descriptors and closes it again.
func LoadSQLiteFile(ctx context.Context, path string) ([]model.CatalogDescriptor, error) {
	db, err := OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return LoadSQLite(ctx, db)
}

func splitTags(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
