package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifier_IsImportant_DiscontinuedSeries(t *testing.T) {
	classifier := NewClassifier()
	meta := SeriesMeta{
		ID:             "GDP", // curated ID, but discontinued wins
		ObservationEnd: "2019-12-31",
		Popularity:     90,
	}

	assert.False(t, classifier.IsImportant(meta))
}

func TestClassifier_IsImportant_PopularSeries(t *testing.T) {
	classifier := NewClassifier()
	meta := SeriesMeta{
		ID:             "OBSCURE1",
		ObservationEnd: "2024-06-01",
		Frequency:      "Annual",
		Popularity:     51,
	}

	assert.True(t, classifier.IsImportant(meta))
}

func TestClassifier_IsImportant_PopularityAtThreshold(t *testing.T) {
	classifier := NewClassifier()
	meta := SeriesMeta{
		ID:             "OBSCURE2",
		ObservationEnd: "2024-06-01",
		Frequency:      "Annual",
		Popularity:     50, // threshold is exclusive
	}

	assert.False(t, classifier.IsImportant(meta))
}

func TestClassifier_IsImportant_HighUpdateFrequency(t *testing.T) {
	classifier := NewClassifier()

	for _, frequency := range []string{"Daily", "Weekly", "Monthly"} {
		meta := SeriesMeta{ID: "OBSCURE3", ObservationEnd: "2024-06-01", Frequency: frequency}
		assert.True(t, classifier.IsImportant(meta), "frequency %s", frequency)
	}

	quarterly := SeriesMeta{ID: "OBSCURE3", ObservationEnd: "2024-06-01", Frequency: "Quarterly"}
	assert.False(t, classifier.IsImportant(quarterly))
}

func TestClassifier_IsImportant_CuratedID(t *testing.T) {
	classifier := NewClassifier()
	meta := SeriesMeta{
		ID:             "UNRATE",
		ObservationEnd: "2024-06-01",
		Frequency:      "Quarterly",
		Popularity:     10,
	}

	assert.True(t, classifier.IsImportant(meta))
}

func TestClassifier_IsImportant_EmptyObservationEnd(t *testing.T) {
	classifier := NewClassifier()
	meta := SeriesMeta{ID: "CPIAUCSL"}

	// A missing observation end never counts as discontinued
	assert.True(t, classifier.IsImportant(meta))
}

func TestClassifier_FilterImportant(t *testing.T) {
	classifier := NewClassifier()
	series := []SeriesMeta{
		{ID: "GDP", ObservationEnd: "2024-06-01"},
		{ID: "NOPE", ObservationEnd: "2024-06-01", Frequency: "Quarterly", Popularity: 5},
		{ID: "SOME", ObservationEnd: "2024-06-01", Frequency: "Daily"},
	}

	kept := classifier.FilterImportant(series)

	require.Len(t, kept, 2)
	assert.Equal(t, "GDP", kept[0].ID)
	assert.Equal(t, "SOME", kept[1].ID)
}

func TestBuildIndex_SortedByPopularity(t *testing.T) {
	series := []SeriesMeta{
		{ID: "A", Popularity: 10},
		{ID: "B", Popularity: 90},
		{ID: "C", Popularity: 40},
	}

	index := BuildIndex(series)

	assert.Equal(t, 3, index.Count)
	require.Len(t, index.Series, 3)
	assert.Equal(t, "B", index.Series[0].ID)
	assert.Equal(t, "C", index.Series[1].ID)
	assert.Equal(t, "A", index.Series[2].ID)
	assert.False(t, index.LastUpdated.IsZero())

	// Input order untouched
	assert.Equal(t, "A", series[0].ID)
}
