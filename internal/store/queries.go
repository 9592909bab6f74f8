package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/sc2coop/cevcalc/internal/models"
	"github.com/sc2coop/cevcalc/internal/scoring"
)

const unitColumns = `id, name, commander_id, family, mineral_cost, gas_cost,
	supply_cost, hp, shields, armor, collision_radius, is_flying, ability_value`

// UnitsByCommander returns the units belonging to one commander
func (s *Store) UnitsByCommander(commanderID string) ([]*models.UnitStats, error) {
	rows, err := s.db.Query(`SELECT `+unitColumns+` FROM units
		WHERE commander_id = ? ORDER BY id`, commanderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query units of %q: %w", commanderID, err)
	}
	return s.collectUnits(rows)
}

// UnitsWithAttribute returns the units carrying the given attribute tag
func (s *Store) UnitsWithAttribute(attr models.UnitAttribute) ([]*models.UnitStats, error) {
	rows, err := s.db.Query(`SELECT `+unitColumns+` FROM units
		WHERE id IN (SELECT unit_id FROM unit_attributes WHERE attribute = ?)
		ORDER BY id`, string(attr))
	if err != nil {
		return nil, fmt.Errorf("failed to query units with attribute %q: %w", attr, err)
	}
	return s.collectUnits(rows)
}

func (s *Store) collectUnits(rows *sql.Rows) ([]*models.UnitStats, error) {
	defer rows.Close()

	var out []*models.UnitStats
	for rows.Next() {
		u := &models.UnitStats{}
		if err := rows.Scan(&u.ID, &u.Name, &u.Commander, &u.Family, &u.Minerals, &u.Gas,
			&u.Population, &u.HP, &u.Shields, &u.Armor, &u.Radius, &u.Flying,
			&u.AbilityValue); err != nil {
			return nil, fmt.Errorf("failed to scan unit: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, u := range out {
		if err := s.attachUnitDetails(u); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *Store) attachUnitDetails(u *models.UnitStats) error {
	attrRows, err := s.db.Query(`SELECT attribute FROM unit_attributes
		WHERE unit_id = ? ORDER BY attribute`, u.ID)
	if err != nil {
		return fmt.Errorf("failed to query attributes of %q: %w", u.ID, err)
	}
	defer attrRows.Close()

	for attrRows.Next() {
		var attr string
		if err := attrRows.Scan(&attr); err != nil {
			return fmt.Errorf("failed to scan attribute of %q: %w", u.ID, err)
		}
		a, ok := attributeFromString(attr)
		if !ok {
			return fmt.Errorf("unit %q: unknown attribute %q", u.ID, attr)
		}
		u.Attributes.Set(a, true)
	}
	if err := attrRows.Err(); err != nil {
		return err
	}

	refRows, err := s.db.Query(`SELECT mode, weapon_id, is_default FROM unit_weapons
		WHERE unit_id = ? ORDER BY is_default DESC, mode`, u.ID)
	if err != nil {
		return fmt.Errorf("failed to query weapons of %q: %w", u.ID, err)
	}
	defer refRows.Close()

	for refRows.Next() {
		var ref models.WeaponRef
		if err := refRows.Scan(&ref.Mode, &ref.WeaponID, &ref.Default); err != nil {
			return fmt.Errorf("failed to scan weapon ref of %q: %w", u.ID, err)
		}
		u.Weapons = append(u.Weapons, ref)
	}
	return refRows.Err()
}

// CounterUnit is one row of a counter query: a unit whose weapon carries
// bonus damage against the asked attribute.
type CounterUnit struct {
	UnitID      string
	UnitName    string
	CommanderID string
	WeaponID    string
	WeaponName  string
	BonusDamage float64
	BaseDPS     float64
	BonusDPS    float64
}

// CounterUnits finds units whose weapons deal at least minBonus extra
// damage against the target attribute, strongest counters first.
func (s *Store) CounterUnits(target models.UnitAttribute, minBonus float64) ([]CounterUnit, error) {
	rows, err := s.db.Query(`SELECT DISTINCT
			u.id, u.name, u.commander_id, w.id, w.name, wb.bonus_damage,
			(w.damage * w.strikes) / w.period AS base_dps,
			((w.damage + wb.bonus_damage) * w.strikes) / w.period AS bonus_dps
		FROM units u
		JOIN unit_weapons uw ON uw.unit_id = u.id
		JOIN weapons w ON w.id = uw.weapon_id
		JOIN weapon_bonuses wb ON wb.weapon_id = w.id
		WHERE wb.target_attribute = ? AND wb.bonus_damage >= ?
		ORDER BY wb.bonus_damage DESC, u.id`, string(target), minBonus)
	if err != nil {
		return nil, fmt.Errorf("failed to query counters of %q: %w", target, err)
	}
	defer rows.Close()

	var out []CounterUnit
	for rows.Next() {
		var c CounterUnit
		if err := rows.Scan(&c.UnitID, &c.UnitName, &c.CommanderID, &c.WeaponID,
			&c.WeaponName, &c.BonusDamage, &c.BaseDPS, &c.BonusDPS); err != nil {
			return nil, fmt.Errorf("failed to scan counter unit: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ScoreRow is one persisted evaluation result
type ScoreRow struct {
	UnitID           string
	Scenario         string
	WeaponID         string
	WeaponMode       string
	CEV              float64
	CEVPerPopulation float64
	EffectiveDPS     float64
	EffectiveHP      float64
	EffectiveCost    float64
}

// SaveScore persists one evaluation result, replacing any earlier score
// of the same unit and scenario
func (s *Store) SaveScore(res *scoring.Result) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO scores (
			unit_id, scenario, weapon_id, weapon_mode, cev, cev_per_population,
			effective_dps, effective_hp, effective_cost
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.UnitID, res.Scenario, res.WeaponID, res.WeaponMode,
		res.CEV, res.CEVPerPopulation, res.Components.EffectiveDPS,
		res.Components.EffectiveHP, res.Components.EffectiveCost)
	if err != nil {
		return fmt.Errorf("failed to save score of %q: %w", res.UnitID, err)
	}
	return nil
}

// Score returns the persisted score of one unit under one scenario
func (s *Store) Score(unitID, scenario string) (ScoreRow, error) {
	row := s.db.QueryRow(`SELECT unit_id, scenario, weapon_id, weapon_mode, cev,
			cev_per_population, effective_dps, effective_hp, effective_cost
		FROM scores WHERE unit_id = ? AND scenario = ?`, unitID, scenario)

	var sc ScoreRow
	err := row.Scan(&sc.UnitID, &sc.Scenario, &sc.WeaponID, &sc.WeaponMode, &sc.CEV,
		&sc.CEVPerPopulation, &sc.EffectiveDPS, &sc.EffectiveHP, &sc.EffectiveCost)
	if errors.Is(err, sql.ErrNoRows) {
		return ScoreRow{}, fmt.Errorf("score of %q under %q: %w", unitID, scenario, ErrNotFound)
	}
	if err != nil {
		return ScoreRow{}, fmt.Errorf("failed to load score of %q: %w", unitID, err)
	}
	return sc, nil
}

// TopScores returns the best persisted scores for a scenario, highest
// CEV first
func (s *Store) TopScores(scenario string, limit int) ([]ScoreRow, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(`SELECT unit_id, scenario, weapon_id, weapon_mode, cev,
			cev_per_population, effective_dps, effective_hp, effective_cost
		FROM scores WHERE scenario = ? ORDER BY cev DESC, unit_id LIMIT ?`, scenario, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top scores: %w", err)
	}
	defer rows.Close()

	var out []ScoreRow
	for rows.Next() {
		var sc ScoreRow
		if err := rows.Scan(&sc.UnitID, &sc.Scenario, &sc.WeaponID, &sc.WeaponMode, &sc.CEV,
			&sc.CEVPerPopulation, &sc.EffectiveDPS, &sc.EffectiveHP, &sc.EffectiveCost); err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}
