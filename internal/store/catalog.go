package store

import (
	"database/sql"
	"fmt"

	"github.com/sc2coop/cevcalc/internal/models"
)

// ImportDataSet replaces the stored catalog with the data set inside one
// transaction. The catalog tables are cleared first (persisted scores are
// kept), so a re-import after a balance patch always leaves exactly the
// imported set behind.
func (s *Store) ImportDataSet(ds *models.DataSet) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}
	defer tx.Rollback()

	// Clear in reverse dependency order so foreign keys stay satisfied
	for _, table := range []string{"unit_weapons", "unit_attributes", "units", "weapon_bonuses", "weapons", "commanders"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, c := range ds.Commanders {
		if err := insertCommander(tx, c); err != nil {
			return err
		}
	}
	for _, w := range ds.Weapons {
		if err := insertWeapon(tx, w); err != nil {
			return err
		}
	}
	for _, u := range ds.Units {
		if err := insertUnit(tx, u); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	return nil
}

func insertCommander(tx *sql.Tx, c *models.CommanderProfile) error {
	_, err := tx.Exec(`INSERT INTO commanders (
			id, name, population_cap, mineral_gas_rate, population_tax_exempt,
			mastery_attack_speed, mastery_hp_bonus, mastery_hp_bonus_tag, mastery_shield_regen
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.PopulationCap, c.MineralGasRate, c.PopulationTaxExempt,
		c.Mastery.AttackSpeed, c.Mastery.HPBonus, string(c.Mastery.HPBonusTag), c.Mastery.ShieldRegen)
	if err != nil {
		return fmt.Errorf("failed to insert commander %q: %w", c.ID, err)
	}
	return nil
}

func insertWeapon(tx *sql.Tx, w *models.WeaponProfile) error {
	splash := w.Splash
	if splash == "" {
		splash = models.SplashNone
	}
	_, err := tx.Exec(`INSERT INTO weapons (
			id, name, targets, damage, strikes, period, range, splash_type
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		w.ID, w.Name, string(w.Targets), w.Damage, w.Strikes, w.Period, w.Range, string(splash))
	if err != nil {
		return fmt.Errorf("failed to insert weapon %q: %w", w.ID, err)
	}

	var bonusErr error
	w.Bonus.Each(func(a models.UnitAttribute, dmg float64) {
		if bonusErr != nil {
			return
		}
		_, bonusErr = tx.Exec(`INSERT INTO weapon_bonuses (weapon_id, target_attribute, bonus_damage)
			VALUES (?, ?, ?)`, w.ID, string(a), dmg)
	})
	if bonusErr != nil {
		return fmt.Errorf("failed to insert bonuses of weapon %q: %w", w.ID, bonusErr)
	}
	return nil
}

func insertUnit(tx *sql.Tx, u *models.UnitStats) error {
	_, err := tx.Exec(`INSERT INTO units (
			id, name, commander_id, family, mineral_cost, gas_cost, supply_cost,
			hp, shields, armor, collision_radius, is_flying, ability_value
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Commander, u.Family, u.Minerals, u.Gas, u.Population,
		u.HP, u.Shields, u.Armor, u.Radius, u.Flying, u.AbilityValue)
	if err != nil {
		return fmt.Errorf("failed to insert unit %q: %w", u.ID, err)
	}

	var attrErr error
	u.Attributes.Each(func(a models.UnitAttribute) {
		if attrErr != nil {
			return
		}
		_, attrErr = tx.Exec(`INSERT INTO unit_attributes (unit_id, attribute)
			VALUES (?, ?)`, u.ID, string(a))
	})
	if attrErr != nil {
		return fmt.Errorf("failed to insert attributes of unit %q: %w", u.ID, attrErr)
	}

	for _, ref := range u.Weapons {
		_, err := tx.Exec(`INSERT INTO unit_weapons (unit_id, mode, weapon_id, is_default)
			VALUES (?, ?, ?, ?)`, u.ID, ref.Mode, ref.WeaponID, ref.Default)
		if err != nil {
			return fmt.Errorf("failed to insert weapon ref %q of unit %q: %w", ref.WeaponID, u.ID, err)
		}
	}
	return nil
}

// LoadDataSet reads the full catalog back out of the store
func (s *Store) LoadDataSet() (*models.DataSet, error) {
	commanders, err := s.loadCommanders()
	if err != nil {
		return nil, err
	}
	weapons, err := s.loadWeapons()
	if err != nil {
		return nil, err
	}
	units, err := s.loadUnits()
	if err != nil {
		return nil, err
	}
	return models.NewDataSet(units, weapons, commanders), nil
}

func (s *Store) loadCommanders() ([]*models.CommanderProfile, error) {
	rows, err := s.db.Query(`SELECT id, name, population_cap, mineral_gas_rate,
			population_tax_exempt, mastery_attack_speed, mastery_hp_bonus,
			mastery_hp_bonus_tag, mastery_shield_regen
		FROM commanders ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query commanders: %w", err)
	}
	defer rows.Close()

	var out []*models.CommanderProfile
	for rows.Next() {
		c := &models.CommanderProfile{}
		var tag string
		if err := rows.Scan(&c.ID, &c.Name, &c.PopulationCap, &c.MineralGasRate,
			&c.PopulationTaxExempt, &c.Mastery.AttackSpeed, &c.Mastery.HPBonus,
			&tag, &c.Mastery.ShieldRegen); err != nil {
			return nil, fmt.Errorf("failed to scan commander: %w", err)
		}
		if tag != "" {
			a, ok := attributeFromString(tag)
			if !ok {
				return nil, fmt.Errorf("commander %q: unknown mastery tag %q", c.ID, tag)
			}
			c.Mastery.HPBonusTag = a
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) loadWeapons() ([]*models.WeaponProfile, error) {
	rows, err := s.db.Query(`SELECT id, name, targets, damage, strikes, period, range, splash_type
		FROM weapons ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query weapons: %w", err)
	}
	defer rows.Close()

	var out []*models.WeaponProfile
	byID := map[string]*models.WeaponProfile{}
	for rows.Next() {
		w := &models.WeaponProfile{}
		var targets, splash string
		if err := rows.Scan(&w.ID, &w.Name, &targets, &w.Damage, &w.Strikes,
			&w.Period, &w.Range, &splash); err != nil {
			return nil, fmt.Errorf("failed to scan weapon: %w", err)
		}
		w.Targets = models.TargetFilter(targets)
		w.Splash = models.SplashType(splash)
		out = append(out, w)
		byID[w.ID] = w
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	bonusRows, err := s.db.Query(`SELECT weapon_id, target_attribute, bonus_damage
		FROM weapon_bonuses ORDER BY weapon_id, target_attribute`)
	if err != nil {
		return nil, fmt.Errorf("failed to query weapon bonuses: %w", err)
	}
	defer bonusRows.Close()

	for bonusRows.Next() {
		var weaponID, attr string
		var dmg float64
		if err := bonusRows.Scan(&weaponID, &attr, &dmg); err != nil {
			return nil, fmt.Errorf("failed to scan weapon bonus: %w", err)
		}
		w, ok := byID[weaponID]
		if !ok {
			return nil, fmt.Errorf("bonus for unknown weapon %q", weaponID)
		}
		a, ok := attributeFromString(attr)
		if !ok {
			return nil, fmt.Errorf("weapon %q: unknown bonus attribute %q", weaponID, attr)
		}
		w.Bonus.Set(a, dmg)
	}
	return out, bonusRows.Err()
}

func (s *Store) loadUnits() ([]*models.UnitStats, error) {
	rows, err := s.db.Query(`SELECT id, name, commander_id, family, mineral_cost, gas_cost,
			supply_cost, hp, shields, armor, collision_radius, is_flying, ability_value
		FROM units ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query units: %w", err)
	}
	defer rows.Close()

	var out []*models.UnitStats
	byID := map[string]*models.UnitStats{}
	for rows.Next() {
		u := &models.UnitStats{}
		if err := rows.Scan(&u.ID, &u.Name, &u.Commander, &u.Family, &u.Minerals, &u.Gas,
			&u.Population, &u.HP, &u.Shields, &u.Armor, &u.Radius, &u.Flying,
			&u.AbilityValue); err != nil {
			return nil, fmt.Errorf("failed to scan unit: %w", err)
		}
		out = append(out, u)
		byID[u.ID] = u
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	attrRows, err := s.db.Query(`SELECT unit_id, attribute FROM unit_attributes
		ORDER BY unit_id, attribute`)
	if err != nil {
		return nil, fmt.Errorf("failed to query unit attributes: %w", err)
	}
	defer attrRows.Close()

	for attrRows.Next() {
		var unitID, attr string
		if err := attrRows.Scan(&unitID, &attr); err != nil {
			return nil, fmt.Errorf("failed to scan unit attribute: %w", err)
		}
		u, ok := byID[unitID]
		if !ok {
			return nil, fmt.Errorf("attribute for unknown unit %q", unitID)
		}
		a, ok := attributeFromString(attr)
		if !ok {
			return nil, fmt.Errorf("unit %q: unknown attribute %q", unitID, attr)
		}
		u.Attributes.Set(a, true)
	}
	if err := attrRows.Err(); err != nil {
		return nil, err
	}

	refRows, err := s.db.Query(`SELECT unit_id, mode, weapon_id, is_default FROM unit_weapons
		ORDER BY unit_id, is_default DESC, mode`)
	if err != nil {
		return nil, fmt.Errorf("failed to query unit weapons: %w", err)
	}
	defer refRows.Close()

	for refRows.Next() {
		var unitID string
		var ref models.WeaponRef
		if err := refRows.Scan(&unitID, &ref.Mode, &ref.WeaponID, &ref.Default); err != nil {
			return nil, fmt.Errorf("failed to scan unit weapon: %w", err)
		}
		u, ok := byID[unitID]
		if !ok {
			return nil, fmt.Errorf("weapon ref for unknown unit %q", unitID)
		}
		u.Weapons = append(u.Weapons, ref)
	}
	return out, refRows.Err()
}

func attributeFromString(name string) (models.UnitAttribute, bool) {
	for _, a := range models.AllUnitAttributes() {
		if string(a) == name {
			return a, true
		}
	}
	return "", false
}
