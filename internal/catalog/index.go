package catalog

import (
	"sort"
	"time"
)

// Index is the consolidated, popularity-sorted catalog handed to the
// dashboard for series lookup.
type Index struct {
	Count       int          `json:"count"`
	LastUpdated time.Time    `json:"last_updated"`
	Series      []SeriesMeta `json:"series"`
}

// BuildIndex consolidates series metadata into an index sorted by popularity
// descending. The input slice is not reordered.
func BuildIndex(series []SeriesMeta) Index {
	sorted := make([]SeriesMeta, len(series))
	copy(sorted, series)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Popularity > sorted[j].Popularity
	})

	return Index{
		Count:       len(sorted),
		LastUpdated: time.Now().UTC(),
		Series:      sorted,
	}
}
