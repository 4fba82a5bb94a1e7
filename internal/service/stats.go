package service

import (
	"wordreader/internal/domain"
)

// Counter reports per-status word counts
type Counter interface {
	Counts() domain.Counts
}

// Summary is the vocabulary progress shown to the reader
type Summary struct {
	Counts domain.Counts `json:"counts"`
	Total  int           `json:"total"`
	Labels []StatusLabel `json:"labels"`
}

// StatusLabel pairs a status with its display label and count
type StatusLabel struct {
	Status domain.Status `json:"status"`
	Label  string        `json:"label"`
	Count  int           `json:"count"`
}

// StatsService derives progress statistics
type StatsService struct {
	counter Counter
}

// NewStatsService creates a new stats service
func NewStatsService(counter Counter) *StatsService {
	return &StatsService{counter: counter}
}

// Summary returns the current counts
func (s *StatsService) Summary() Summary {
	c := s.counter.Counts()
	perStatus := map[domain.Status]int{
		domain.StatusNew:      c.New,
		domain.StatusLearning: c.Learning,
		domain.StatusKnown:    c.Known,
	}

	labels := make([]StatusLabel, 0, len(perStatus))
	for _, st := range domain.Statuses() {
		labels = append(labels, StatusLabel{Status: st, Label: st.Label(), Count: perStatus[st]})
	}

	return Summary{Counts: c, Total: c.Total(), Labels: labels}
}
