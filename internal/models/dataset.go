package models

import "sort"

// DataSet is the reference data one scoring session works against.
// It is constructed once by the caller (builtin catalog, YAML loader,
// or database) and passed into the scoring functions; nothing in the
// pipeline mutates it.
type DataSet struct {
	Units      []*UnitStats
	Weapons    []*WeaponProfile
	Commanders []*CommanderProfile
}

// NewDataSet builds a data set with deterministic iteration order (by ID)
func NewDataSet(units []*UnitStats, weapons []*WeaponProfile, commanders []*CommanderProfile) *DataSet {
	ds := &DataSet{Units: units, Weapons: weapons, Commanders: commanders}
	ds.sortAll()
	return ds
}

func (ds *DataSet) sortAll() {
	sort.Slice(ds.Units, func(i, j int) bool { return ds.Units[i].ID < ds.Units[j].ID })
	sort.Slice(ds.Weapons, func(i, j int) bool { return ds.Weapons[i].ID < ds.Weapons[j].ID })
	sort.Slice(ds.Commanders, func(i, j int) bool { return ds.Commanders[i].ID < ds.Commanders[j].ID })
}

// Unit returns the unit with the given ID
func (ds *DataSet) Unit(id string) (*UnitStats, bool) {
	for _, u := range ds.Units {
		if u.ID == id {
			return u, true
		}
	}
	return nil, false
}

// Weapon returns the weapon with the given ID
func (ds *DataSet) Weapon(id string) (*WeaponProfile, bool) {
	for _, w := range ds.Weapons {
		if w.ID == id {
			return w, true
		}
	}
	return nil, false
}

// Commander returns the commander with the given ID
func (ds *DataSet) Commander(id string) (*CommanderProfile, bool) {
	for _, c := range ds.Commanders {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}
