package similarity

import (
	"errors"
	"fmt"
	"sort"

	"github.com/poiesic/phonemescape/core"
)

// Neighbor is a ranked candidate.
type Neighbor struct {
	Symbol string
	Score  float64
}

// NearestNeighbors ranks candidates in pool by similarity to target and
// returns at most k of them, best first. Ties keep pool order. A nil pool
// ranks the whole catalog. The target never ranks against itself, and
// candidates missing from the catalog are skipped rather than failing the
// call.
func (v *View) NearestNeighbors(target string, pool []string, k int) ([]Neighbor, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: %w: k=%d", core.ErrInvalidArgument, ErrInvalidK, k)
	}
	if _, err := v.entry(target); err != nil {
		return nil, err
	}
	if pool == nil {
		pool = v.snap.catalog.Symbols()
	}

	ranked := make([]Neighbor, 0, len(pool))
	for _, candidate := range pool {
		if candidate == target {
			continue
		}
		s, err := v.Similarity(target, candidate)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				v.engine.logger.Debug("skipping unknown candidate", "target", target, "candidate", candidate)
				continue
			}
			return nil, err
		}
		ranked = append(ranked, Neighbor{Symbol: candidate, Score: s})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked, nil
}
