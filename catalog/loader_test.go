package catalog

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadJSON(t *testing.T) {
	const doc = `{
	  "catalogs": [
	    {"name": "panstarrs", "version": "DR2", "coordinate_system": "ICRS",
	     "epoch": 2012.5, "integrations": ["arrow", "Parquet"]},
	    {"name": "local", "coordinate_system": "FK5"}
	  ]
	}`
	ds, err := LoadJSON(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	if len(ds) != 2 {
		t.Fatalf("got %d descriptors, want 2", len(ds))
	}
	if ds[0].Epoch != 2012.5 || len(ds[0].Integrations) != 2 || ds[0].Integrations[1] != "parquet" {
		t.Fatalf("panstarrs = %+v", ds[0])
	}
	if ds[1].Epoch != 2000.0 || len(ds[1].Integrations) != 0 {
		t.Fatalf("local = %+v, want J2000 and no integrations", ds[1])
	}

	p, err := New(ds...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !p.Info("PanSTARRS").Known {
		t.Fatalf("loaded descriptor not registered")
	}
}

func TestLoadJSONErrors(t *testing.T) {
	tests := map[string]string{
		"malformed":           `{"catalogs": [`,
		"unknown field":       `{"catalogs": [], "extra": 1}`,
		"unknown integration": `{"catalogs": [{"name": "a", "coordinate_system": "ICRS", "integrations": ["fits"]}]}`,
		"missing system":      `{"catalogs": [{"name": "a"}]}`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadJSON(strings.NewReader(doc)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
	_, err := LoadJSON(strings.NewReader(tests["unknown integration"]))
	if !errors.Is(err, ErrInvalidDescriptor) {
		t.Fatalf("unknown integration err = %v, want ErrInvalidDescriptor", err)
	}
}

func newDescriptorDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalogs.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	if _, err := db.Exec(CreateTableSQL); err != nil {
		t.Fatalf("create table: %v", err)
	}
	_, err = db.Exec(`INSERT INTO catalog_descriptors (name, version, coordinate_system, epoch, integrations)
		VALUES (?, ?, ?, ?, ?), (?, ?, ?, ?, ?)`,
		"ukidss", "DR11", "ICRS", 2008.0, "arrow, spatial",
		"apogee", "", "ICRS", 2000.0, "")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	return path
}

func TestLoadSQLiteFile(t *testing.T) {
	path := newDescriptorDB(t)
	ds, err := LoadSQLiteFile(context.Background(), path)
	if err != nil {
		t.Fatalf("LoadSQLiteFile: %v", err)
	}
	if len(ds) != 2 {
		t.Fatalf("got %d rows, want 2", len(ds))
	}
	// rows come back ordered by name
	if ds[0].Name != "apogee" || len(ds[0].Integrations) != 0 {
		t.Fatalf("apogee = %+v", ds[0])
	}
	if ds[1].Name != "ukidss" || ds[1].Epoch != 2008.0 || len(ds[1].Integrations) != 2 {
		t.Fatalf("ukidss = %+v", ds[1])
	}
}

func TestLoadSQLiteRejectsBadTags(t *testing.T) {
	path := newDescriptorDB(t)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	if _, err := db.Exec(`INSERT INTO catalog_descriptors (name, coordinate_system, integrations) VALUES ('bad', 'ICRS', 'hdf5')`); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := LoadSQLite(context.Background(), db); !errors.Is(err, ErrInvalidDescriptor) {
		t.Fatalf("err = %v, want ErrInvalidDescriptor", err)
	}
}

func TestOpenSQLiteRequiresPath(t *testing.T) {
	if _, err := OpenSQLite(" "); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
