package loader

import (
	"fmt"

	"github.com/sc2coop/cevcalc/internal/models"
)

// ValidateReferences checks that every unit points at weapons and a
// commander that exist in the data set. Run it on the final set, after
// merging candidate files into the base catalog, so references across
// sources resolve.
func ValidateReferences(ds *models.DataSet) error {
	for _, u := range ds.Units {
		if u.Commander != "" {
			if _, ok := ds.Commander(u.Commander); !ok {
				return fmt.Errorf("unit %q: commander %q: %w", u.ID, u.Commander, ErrUnknownReference)
			}
		}
		for _, ref := range u.Weapons {
			if _, ok := ds.Weapon(ref.WeaponID); !ok {
				return fmt.Errorf("unit %q: weapon %q: %w", u.ID, ref.WeaponID, ErrUnknownReference)
			}
		}
	}
	return nil
}
