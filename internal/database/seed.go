package database

import (
	"fmt"
	"log"

	"yamsoo/internal/relation"
)

// SeedRelationshipTypes writes the relation catalog into the
// relationship_types reference table. The Go catalog stays the
// authority for inference; the rows exist for display joins and
// reporting. Idempotent: an already-seeded table is left alone unless
// a kind is missing, so adding a kind to the catalog flows through on
// the next start. A kind that cannot be seeded is a configuration
// error and aborts startup.
func (db *DB) SeedRelationshipTypes(catalog *relation.Catalog) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	seeded := 0
	for _, kind := range catalog.Kinds() {
		entry, ok := catalog.Lookup(kind)
		if !ok {
			return fmt.Errorf("relation kind %q missing from catalog", kind)
		}

		var count int
		if err := tx.QueryRow("SELECT COUNT(*) FROM relationship_types WHERE name = ?", string(kind)).Scan(&count); err != nil {
			return fmt.Errorf("failed to check relationship type %q: %w", kind, err)
		}
		if count > 0 {
			continue
		}

		query := `
			INSERT INTO relationship_types (name, category, display_name_en, display_name_fr, display_name_ar)
			VALUES (?, ?, ?, ?, ?)
		`
		_, err := tx.Exec(query,
			string(kind),
			string(entry.Category),
			entry.Names["en"],
			entry.Names["fr"],
			entry.Names["ar"],
		)
		if err != nil {
			return fmt.Errorf("failed to seed relationship type %q: %w", kind, err)
		}
		seeded++
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	if seeded > 0 {
		log.Printf("Relationship type catalog seeded with %d new kinds", seeded)
	}
	return nil
}
