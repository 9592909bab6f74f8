// Package store persists the unit catalog and computed scores in SQLite
// so balance sessions can query and compare them without reloading YAML.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned when a catalog row does not exist
var ErrNotFound = errors.New("not found in catalog store")

// Store wraps the SQLite catalog database
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the catalog database at path and runs the
// schema migration. Use ":memory:" for a throwaway store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite serializes writes anyway, and a :memory: database exists per
	// connection, so the pool must stay at one.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return s, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS commanders (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			population_cap INTEGER NOT NULL,
			mineral_gas_rate REAL NOT NULL DEFAULT 0,
			population_tax_exempt INTEGER NOT NULL DEFAULT 0,
			mastery_attack_speed REAL NOT NULL DEFAULT 0,
			mastery_hp_bonus REAL NOT NULL DEFAULT 0,
			mastery_hp_bonus_tag TEXT NOT NULL DEFAULT '',
			mastery_shield_regen REAL NOT NULL DEFAULT 0
		)`,

		`CREATE TABLE IF NOT EXISTS weapons (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			targets TEXT NOT NULL CHECK(targets IN ('ground', 'air', 'both')),
			damage REAL NOT NULL,
			strikes INTEGER NOT NULL DEFAULT 1,
			period REAL NOT NULL,
			range REAL NOT NULL,
			splash_type TEXT NOT NULL DEFAULT 'none'
				CHECK(splash_type IN ('none', 'linear', 'circular', 'cone'))
		)`,

		`CREATE TABLE IF NOT EXISTS weapon_bonuses (
			weapon_id TEXT NOT NULL,
			target_attribute TEXT NOT NULL,
			bonus_damage REAL NOT NULL,
			PRIMARY KEY (weapon_id, target_attribute),
			FOREIGN KEY (weapon_id) REFERENCES weapons(id) ON DELETE CASCADE
		)`,

		`CREATE TABLE IF NOT EXISTS units (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			commander_id TEXT NOT NULL,
			family TEXT NOT NULL DEFAULT '',
			mineral_cost INTEGER NOT NULL,
			gas_cost INTEGER NOT NULL,
			supply_cost REAL NOT NULL,
			hp REAL NOT NULL,
			shields REAL NOT NULL DEFAULT 0,
			armor REAL NOT NULL DEFAULT 0,
			collision_radius REAL NOT NULL DEFAULT 0,
			is_flying INTEGER NOT NULL DEFAULT 0,
			ability_value REAL NOT NULL DEFAULT 0,
			FOREIGN KEY (commander_id) REFERENCES commanders(id)
		)`,

		`CREATE TABLE IF NOT EXISTS unit_attributes (
			unit_id TEXT NOT NULL,
			attribute TEXT NOT NULL,
			PRIMARY KEY (unit_id, attribute),
			FOREIGN KEY (unit_id) REFERENCES units(id) ON DELETE CASCADE
		)`,

		`CREATE TABLE IF NOT EXISTS unit_weapons (
			unit_id TEXT NOT NULL,
			mode TEXT NOT NULL DEFAULT '',
			weapon_id TEXT NOT NULL,
			is_default INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (unit_id, mode),
			FOREIGN KEY (unit_id) REFERENCES units(id) ON DELETE CASCADE,
			FOREIGN KEY (weapon_id) REFERENCES weapons(id)
		)`,

		`CREATE TABLE IF NOT EXISTS scores (
			unit_id TEXT NOT NULL,
			scenario TEXT NOT NULL,
			weapon_id TEXT NOT NULL,
			weapon_mode TEXT NOT NULL DEFAULT '',
			cev REAL NOT NULL,
			cev_per_population REAL NOT NULL,
			effective_dps REAL NOT NULL,
			effective_hp REAL NOT NULL,
			effective_cost REAL NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (unit_id, scenario)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_units_commander ON units(commander_id)`,
		`CREATE INDEX IF NOT EXISTS idx_units_cost ON units(mineral_cost, gas_cost)`,
		`CREATE INDEX IF NOT EXISTS idx_unit_attributes_attr ON unit_attributes(attribute)`,
		`CREATE INDEX IF NOT EXISTS idx_scores_scenario ON scores(scenario, cev DESC)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute migration: %w", err)
		}
	}
	return nil
}
