// Package index exports a catalog into a SQLite database so tools outside
// Go can query traits, properties and specification trait sets with SQL.
package index

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/agentic-research/mediacreation/internal/schema"
)

const ddl = `
CREATE TABLE IF NOT EXISTS exports (
	id TEXT PRIMARY KEY,
	package TEXT NOT NULL,
	created INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS traits (
	id TEXT PRIMARY KEY,
	class TEXT NOT NULL,
	namespace TEXT NOT NULL,
	member TEXT NOT NULL,
	version INTEGER NOT NULL,
	description TEXT
);

CREATE TABLE IF NOT EXISTS properties (
	trait_id TEXT NOT NULL REFERENCES traits(id),
	key TEXT NOT NULL,
	kind TEXT NOT NULL,
	description TEXT,
	PRIMARY KEY (trait_id, key)
) WITHOUT ROWID;

CREATE TABLE IF NOT EXISTS specifications (
	class TEXT NOT NULL,
	namespace TEXT NOT NULL,
	member TEXT NOT NULL,
	version INTEGER NOT NULL,
	kind TEXT NOT NULL,
	description TEXT,
	PRIMARY KEY (namespace, class)
);

CREATE TABLE IF NOT EXISTS specification_traits (
	namespace TEXT NOT NULL,
	class TEXT NOT NULL,
	trait_id TEXT NOT NULL REFERENCES traits(id),
	accessor TEXT NOT NULL,
	PRIMARY KEY (namespace, class, trait_id)
) WITHOUT ROWID;
CREATE INDEX IF NOT EXISTS idx_specification_traits_trait ON specification_traits(trait_id);

CREATE TABLE IF NOT EXISTS aliases (
	kind TEXT NOT NULL,
	namespace TEXT NOT NULL,
	short TEXT NOT NULL,
	target TEXT NOT NULL,
	PRIMARY KEY (kind, namespace, short)
);
`

var tables = []string{"exports", "properties", "specification_traits", "aliases", "specifications", "traits"}

// DB is an open catalog database.
type DB struct {
	db *sql.DB
}

// Open opens or creates the database at path and ensures the schema.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(ddl); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &DB{db: db}, nil
}

// Close closes the database.
func (d *DB) Close() error { return d.db.Close() }

// Export replaces the database content with cat in one transaction and
// returns the id recorded for this export.
func (d *DB) Export(ctx context.Context, cat *schema.Catalog) (string, error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range tables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return "", fmt.Errorf("clear %s: %w", table, err)
		}
	}

	id := uuid.NewString()
	if _, err := tx.ExecContext(ctx, `INSERT INTO exports (id, package, created) VALUES (?, ?, ?)`,
		id, cat.Package, time.Now().UnixNano()); err != nil {
		return "", fmt.Errorf("insert export: %w", err)
	}
	if err := insertTraits(ctx, tx, cat); err != nil {
		return "", err
	}
	if err := insertSpecifications(ctx, tx, cat); err != nil {
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

func insertTraits(ctx context.Context, tx *sql.Tx, cat *schema.Catalog) error {
	stmtTrait, err := tx.PrepareContext(ctx, `
		INSERT INTO traits (id, class, namespace, member, version, description)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer func() { _ = stmtTrait.Close() }()

	stmtProp, err := tx.PrepareContext(ctx, `
		INSERT INTO properties (trait_id, key, kind, description) VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer func() { _ = stmtProp.Close() }()

	for _, ns := range cat.TraitNamespaces {
		for _, f := range ns.Families {
			for _, c := range f.Versions {
				desc := c.Description
				if desc == "" {
					desc = f.Description
				}
				if _, err := stmtTrait.ExecContext(ctx, c.ID, c.Name(), ns.Name, f.Member, c.Version, desc); err != nil {
					return fmt.Errorf("insert trait %s: %w", c.ID, err)
				}
				for _, p := range c.Properties {
					if _, err := stmtProp.ExecContext(ctx, c.ID, p.Key, p.Kind.DefinitionName(), p.Description); err != nil {
						return fmt.Errorf("insert property %s.%s: %w", c.ID, p.Key, err)
					}
				}
			}
			if err := insertAlias(ctx, tx, "trait", ns.Name, f.ShortName(), f.Latest().Name()); err != nil {
				return err
			}
		}
	}
	return nil
}

func insertSpecifications(ctx context.Context, tx *sql.Tx, cat *schema.Catalog) error {
	stmtSpec, err := tx.PrepareContext(ctx, `
		INSERT INTO specifications (class, namespace, member, version, kind, description)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer func() { _ = stmtSpec.Close() }()

	stmtMember, err := tx.PrepareContext(ctx, `
		INSERT INTO specification_traits (namespace, class, trait_id, accessor) VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer func() { _ = stmtMember.Close() }()

	for _, ns := range cat.SpecificationNamespaces {
		for _, f := range ns.Families {
			for _, c := range f.Versions {
				desc := c.Description
				if desc == "" {
					desc = f.Description
				}
				if _, err := stmtSpec.ExecContext(ctx, c.Name(), ns.Name, f.Member, c.Version, c.Kind(), desc); err != nil {
					return fmt.Errorf("insert specification %s: %w", c.Name(), err)
				}
				for _, m := range c.Members {
					if _, err := stmtMember.ExecContext(ctx, ns.Name, c.Name(), m.Trait.ID, m.Accessor); err != nil {
						return fmt.Errorf("insert member %s of %s: %w", m.Trait.ID, c.Name(), err)
					}
				}
			}
			if err := insertAlias(ctx, tx, "specification", ns.Name, f.ShortName(), f.Latest().Name()); err != nil {
				return err
			}
		}
	}
	return nil
}

func insertAlias(ctx context.Context, tx *sql.Tx, kind, namespace, short, target string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO aliases (kind, namespace, short, target) VALUES (?, ?, ?, ?)`,
		kind, namespace, short, target)
	if err != nil {
		return fmt.Errorf("insert alias %s: %w", short, err)
	}
	return nil
}

// Stats summarises the current export.
type Stats struct {
	ExportID       string
	Package        string
	Traits         int
	Properties     int
	Specifications int
}

// Stats reads back the row counts of the current export.
func (d *DB) Stats(ctx context.Context) (Stats, error) {
	var s Stats
	err := d.db.QueryRowContext(ctx, `SELECT id, package FROM exports`).Scan(&s.ExportID, &s.Package)
	if err != nil {
		return Stats{}, fmt.Errorf("read export: %w", err)
	}
	counts := []struct {
		table string
		dst   *int
	}{
		{"traits", &s.Traits},
		{"properties", &s.Properties},
		{"specifications", &s.Specifications},
	}
	for _, c := range counts {
		if err := d.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+c.table).Scan(c.dst); err != nil {
			return Stats{}, fmt.Errorf("count %s: %w", c.table, err)
		}
	}
	return s, nil
}

// SpecificationsWithTrait returns the specification classes whose trait
// set contains traitID, ordered by class name.
func (d *DB) SpecificationsWithTrait(ctx context.Context, traitID string) ([]string, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT class FROM specification_traits WHERE trait_id = ? ORDER BY class`, traitID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []string
	for rows.Next() {
		var class string
		if err := rows.Scan(&class); err != nil {
			return nil, err
		}
		out = append(out, class)
	}
	return out, rows.Err()
}
