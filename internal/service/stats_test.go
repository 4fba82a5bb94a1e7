package service

import (
	"testing"

	"wordreader/internal/domain"
	"wordreader/internal/vocabulary"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_Summary(t *testing.T) {
	store := vocabulary.NewStore()
	store.AddWord("eins", "one", domain.StatusNew)
	store.AddWord("zwei", "two", domain.StatusLearning)
	store.AddWord("drei", "three", domain.StatusLearning)
	store.AddWord("vier", "four", domain.StatusKnown)

	service := NewStatsService(store)

	summary := service.Summary()

	assert.Equal(t, domain.Counts{New: 1, Learning: 2, Known: 1}, summary.Counts)
	assert.Equal(t, 4, summary.Total)
	require.Len(t, summary.Labels, 3)
	assert.Equal(t, domain.StatusNew, summary.Labels[0].Status)
	assert.Equal(t, 1, summary.Labels[0].Count)
	assert.Equal(t, domain.StatusLearning, summary.Labels[1].Status)
	assert.Equal(t, 2, summary.Labels[1].Count)
	assert.Equal(t, domain.StatusKnown, summary.Labels[2].Status)
	assert.Equal(t, domain.StatusKnown.Label(), summary.Labels[2].Label)
}

func TestStatsService_Summary_Empty(t *testing.T) {
	service := NewStatsService(vocabulary.NewStore())

	summary := service.Summary()

	assert.Equal(t, 0, summary.Total)
	assert.Len(t, summary.Labels, 3)
}
