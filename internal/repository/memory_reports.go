package repository

import (
	"context"
	"sort"
)

type MemoryReportsRepo struct {
	s *MemoryStore
}

func NewMemoryReportsRepo(s *MemoryStore) *MemoryReportsRepo {
	return &MemoryReportsRepo{s: s}
}

func (r *MemoryReportsRepo) Totals(_ context.Context) (ReportTotals, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return ReportTotals{
		Zones:     len(r.s.zones),
		Clients:   len(r.s.clients),
		Employees: len(r.s.employees),
	}, nil
}

// sortBuckets orders count-descending, label-ascending on ties, matching
// the SQL implementation.
func sortBuckets(counts map[string]int) []ReportBucket {
	out := make([]ReportBucket, 0, len(counts))
	for label, n := range counts {
		out = append(out, ReportBucket{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

func (r *MemoryReportsRepo) zoneName(zoneID string) string {
	if z, ok := r.s.zones[zoneID]; ok {
		return z.ZoneName
	}
	return LabelNoZone
}

func (r *MemoryReportsRepo) ClientsByZone(_ context.Context) ([]ReportBucket, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	counts := map[string]int{}
	for _, c := range r.s.clients {
		label := LabelNoZone
		if c.ZoneID.Valid {
			label = r.zoneName(c.ZoneID.String)
		}
		counts[label]++
	}
	return sortBuckets(counts), nil
}

func (r *MemoryReportsRepo) ClientsByIllness(_ context.Context) ([]ReportBucket, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	counts := map[string]int{}
	for _, c := range r.s.clients {
		label := c.Illness
		if label == "" {
			label = LabelNotSpecified
		}
		counts[label]++
	}
	return sortBuckets(counts), nil
}

func (r *MemoryReportsRepo) EmployeesByZone(_ context.Context) ([]ReportBucket, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	counts := map[string]int{}
	for _, e := range r.s.employees {
		label := LabelNoZone
		if e.ZoneID.Valid {
			label = r.zoneName(e.ZoneID.String)
		}
		counts[label]++
	}
	return sortBuckets(counts), nil
}

func (r *MemoryReportsRepo) EmployeesByRole(_ context.Context) ([]ReportBucket, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	counts := map[string]int{}
	for _, e := range r.s.employees {
		counts[e.RoleTitle]++
	}
	return sortBuckets(counts), nil
}
