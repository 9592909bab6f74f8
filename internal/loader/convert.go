package loader

import (
	"fmt"

	"github.com/sc2coop/cevcalc/internal/models"
)

func convertDocument(doc *DocumentYAML) (*models.DataSet, error) {
	commanders := make([]*models.CommanderProfile, 0, len(doc.Commanders))
	seen := map[string]bool{}
	for _, raw := range doc.Commanders {
		c, err := convertCommander(raw)
		if err != nil {
			return nil, err
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("commander %q: %w", c.ID, ErrDuplicateID)
		}
		seen[c.ID] = true
		commanders = append(commanders, c)
	}

	weapons := make([]*models.WeaponProfile, 0, len(doc.Weapons))
	seen = map[string]bool{}
	for _, raw := range doc.Weapons {
		w, err := convertWeapon(raw)
		if err != nil {
			return nil, err
		}
		if seen[w.ID] {
			return nil, fmt.Errorf("weapon %q: %w", w.ID, ErrDuplicateID)
		}
		seen[w.ID] = true
		weapons = append(weapons, w)
	}

	units := make([]*models.UnitStats, 0, len(doc.Units))
	seen = map[string]bool{}
	for _, raw := range doc.Units {
		u, err := convertUnit(raw)
		if err != nil {
			return nil, err
		}
		if seen[u.ID] {
			return nil, fmt.Errorf("unit %q: %w", u.ID, ErrDuplicateID)
		}
		seen[u.ID] = true
		units = append(units, u)
	}

	return models.NewDataSet(units, weapons, commanders), nil
}

func convertCommander(raw CommanderYAML) (*models.CommanderProfile, error) {
	if raw.ID == "" {
		return nil, fmt.Errorf("commander with empty id: %w", ErrBadDefinition)
	}
	if raw.PopulationCap <= 0 {
		return nil, fmt.Errorf("commander %q: population_cap must be positive: %w", raw.ID, ErrBadDefinition)
	}
	if raw.MineralGasRate < 0 {
		return nil, fmt.Errorf("commander %q: mineral_gas_rate must not be negative: %w", raw.ID, ErrBadDefinition)
	}

	var tag models.UnitAttribute
	if raw.Mastery.HPBonusTag != "" {
		a, err := convertAttribute(raw.Mastery.HPBonusTag)
		if err != nil {
			return nil, fmt.Errorf("commander %q: %w", raw.ID, err)
		}
		tag = a
	}

	return &models.CommanderProfile{
		ID:                  raw.ID,
		Name:                raw.Name,
		PopulationCap:       raw.PopulationCap,
		MineralGasRate:      raw.MineralGasRate,
		PopulationTaxExempt: raw.PopulationTaxExempt,
		Mastery: models.MasteryTable{
			AttackSpeed: raw.Mastery.AttackSpeed,
			HPBonus:     raw.Mastery.HPBonus,
			HPBonusTag:  tag,
			ShieldRegen: raw.Mastery.ShieldRegen,
		},
	}, nil
}

func convertWeapon(raw WeaponYAML) (*models.WeaponProfile, error) {
	if raw.ID == "" {
		return nil, fmt.Errorf("weapon with empty id: %w", ErrBadDefinition)
	}
	if raw.Damage < 0 {
		return nil, fmt.Errorf("weapon %q: damage must not be negative: %w", raw.ID, ErrBadDefinition)
	}
	if raw.Period <= 0 {
		return nil, fmt.Errorf("weapon %q: period must be positive: %w", raw.ID, ErrBadDefinition)
	}
	if raw.Strikes < 0 {
		return nil, fmt.Errorf("weapon %q: strikes must not be negative: %w", raw.ID, ErrBadDefinition)
	}
	strikes := raw.Strikes
	if strikes == 0 {
		strikes = 1
	}

	targets, err := convertTargets(raw.Targets)
	if err != nil {
		return nil, fmt.Errorf("weapon %q: %w", raw.ID, err)
	}
	splash, err := convertSplash(raw.Splash)
	if err != nil {
		return nil, fmt.Errorf("weapon %q: %w", raw.ID, err)
	}

	// Build the bonus table from the YAML map
	var bonus models.BonusDamageMap
	for name, dmg := range raw.Bonus {
		a, err := convertAttribute(name)
		if err != nil {
			return nil, fmt.Errorf("weapon %q: %w", raw.ID, err)
		}
		bonus.Set(a, dmg)
	}

	return &models.WeaponProfile{
		ID:      raw.ID,
		Name:    raw.Name,
		Targets: targets,
		Damage:  raw.Damage,
		Strikes: strikes,
		Period:  raw.Period,
		Range:   raw.Range,
		Bonus:   bonus,
		Splash:  splash,
	}, nil
}

func convertUnit(raw UnitYAML) (*models.UnitStats, error) {
	if raw.ID == "" {
		return nil, fmt.Errorf("unit with empty id: %w", ErrBadDefinition)
	}
	if raw.Commander == "" {
		return nil, fmt.Errorf("unit %q: commander is required: %w", raw.ID, ErrBadDefinition)
	}
	if raw.HP <= 0 {
		return nil, fmt.Errorf("unit %q: hp must be positive: %w", raw.ID, ErrBadDefinition)
	}
	if raw.Minerals < 0 || raw.Gas < 0 {
		return nil, fmt.Errorf("unit %q: costs must not be negative: %w", raw.ID, ErrBadDefinition)
	}
	if raw.Population < 0 {
		return nil, fmt.Errorf("unit %q: population must not be negative: %w", raw.ID, ErrBadDefinition)
	}
	if raw.Shields < 0 || raw.Armor < 0 {
		return nil, fmt.Errorf("unit %q: shields and armor must not be negative: %w", raw.ID, ErrBadDefinition)
	}
	if raw.AbilityValue < 0 {
		return nil, fmt.Errorf("unit %q: ability_value must not be negative: %w", raw.ID, ErrBadDefinition)
	}

	var attrs models.AttributeSet
	for _, name := range raw.Attributes {
		a, err := convertAttribute(name)
		if err != nil {
			return nil, fmt.Errorf("unit %q: %w", raw.ID, err)
		}
		attrs.Set(a, true)
	}

	refs := make([]models.WeaponRef, 0, len(raw.Weapons))
	defaults := 0
	for _, rawRef := range raw.Weapons {
		if rawRef.Weapon == "" {
			return nil, fmt.Errorf("unit %q: weapon ref with empty weapon id: %w", raw.ID, ErrBadDefinition)
		}
		for _, prev := range refs {
			if prev.Mode == rawRef.Mode {
				return nil, fmt.Errorf("unit %q: duplicate weapon mode %q: %w", raw.ID, rawRef.Mode, ErrBadDefinition)
			}
		}
		if rawRef.Default {
			defaults++
		}
		refs = append(refs, models.WeaponRef{
			Mode:     rawRef.Mode,
			WeaponID: rawRef.Weapon,
			Default:  rawRef.Default,
		})
	}
	if defaults > 1 {
		return nil, fmt.Errorf("unit %q: more than one default weapon: %w", raw.ID, ErrBadDefinition)
	}

	return &models.UnitStats{
		ID:           raw.ID,
		Name:         raw.Name,
		Commander:    raw.Commander,
		Family:       raw.Family,
		Minerals:     raw.Minerals,
		Gas:          raw.Gas,
		Population:   raw.Population,
		HP:           raw.HP,
		Shields:      raw.Shields,
		Armor:        raw.Armor,
		Radius:       raw.Radius,
		Flying:       raw.Flying,
		Attributes:   attrs,
		Weapons:      refs,
		AbilityValue: raw.AbilityValue,
	}, nil
}

func convertAttribute(name string) (models.UnitAttribute, error) {
	switch models.UnitAttribute(name) {
	case models.Light:
		return models.Light, nil
	case models.Armored:
		return models.Armored, nil
	case models.Biological:
		return models.Biological, nil
	case models.Mechanical:
		return models.Mechanical, nil
	case models.Psionic:
		return models.Psionic, nil
	case models.Massive:
		return models.Massive, nil
	case models.Structure:
		return models.Structure, nil
	case models.Heroic:
		return models.Heroic, nil
	default:
		return "", fmt.Errorf("unknown attribute %q: %w", name, ErrBadDefinition)
	}
}

func convertTargets(name string) (models.TargetFilter, error) {
	switch models.TargetFilter(name) {
	case "":
		// Most weapons shoot ground only; that is the default
		return models.TargetGround, nil
	case models.TargetGround:
		return models.TargetGround, nil
	case models.TargetAir:
		return models.TargetAir, nil
	case models.TargetBoth:
		return models.TargetBoth, nil
	default:
		return "", fmt.Errorf("unknown target filter %q: %w", name, ErrBadDefinition)
	}
}

func convertSplash(name string) (models.SplashType, error) {
	switch models.SplashType(name) {
	case "":
		return models.SplashNone, nil
	case models.SplashNone:
		return models.SplashNone, nil
	case models.SplashLinear:
		return models.SplashLinear, nil
	case models.SplashCircular:
		return models.SplashCircular, nil
	case models.SplashCone:
		return models.SplashCone, nil
	default:
		return "", fmt.Errorf("unknown splash type %q: %w", name, ErrBadDefinition)
	}
}
