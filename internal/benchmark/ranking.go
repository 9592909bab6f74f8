package benchmark

import (
	"sort"

	"github.com/sc2coop/cevcalc/internal/models"
	"github.com/sc2coop/cevcalc/internal/scoring"
)

// RankedEntry is one roster unit with its leaderboard position
type RankedEntry struct {
	Rank int
	Entry
	Result *scoring.Result
}

// RankRoster scores the full roster under the scenario and orders it by
// CEV, best first. With perPopulation set the ordering key is CEV per
// effective population instead. Ties are broken by unit ID so repeated
// runs produce the same leaderboard.
func RankRoster(calc *scoring.Calculator, scenario models.ScoringScenario, perPopulation bool) ([]RankedEntry, []Skip, error) {
	results, skipped, err := ScoreRoster(calc, scenario)
	if err != nil {
		return nil, nil, err
	}
	ranked := make([]RankedEntry, 0, len(results))
	for _, res := range results {
		ranked = append(ranked, RankedEntry{Entry: EntryFromResult(res), Result: res})
	}
	key := func(e RankedEntry) float64 {
		if perPopulation {
			return e.CEVPerPopulation
		}
		return e.CEV
	}
	sort.Slice(ranked, func(i, j int) bool {
		ki, kj := key(ranked[i]), key(ranked[j])
		if ki != kj {
			return ki > kj
		}
		return ranked[i].UnitID < ranked[j].UnitID
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked, skipped, nil
}
