package schedule

import (
	"sort"

	"github.com/shimokura-meg/schedule-checklist/internal/domain"
)

// BuildView sorts occurrences chronologically, groups them by calendar
// date, and attaches each occurrence's items. Ordering is total: dates
// ascending, ties broken by source event id (store insertion order), so
// any permutation of the input yields the same view. Item order within
// an entry is the order items arrive in (store insertion order).
func BuildView(occs []domain.Occurrence, items []domain.Item) []domain.DateGroup {
	sorted := make([]domain.Occurrence, len(occs))
	copy(sorted, occs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].DisplayDate != sorted[j].DisplayDate {
			return sorted[i].DisplayDate < sorted[j].DisplayDate
		}
		return sorted[i].Event.ID < sorted[j].Event.ID
	})

	groups := make([]domain.DateGroup, 0)
	for _, occ := range sorted {
		entry := domain.ViewEntry{
			Occurrence: occ,
			Items:      itemsForEvent(items, occ.Event.ID),
		}
		n := len(groups)
		if n == 0 || groups[n-1].Date != occ.DisplayDate {
			groups = append(groups, domain.DateGroup{Date: occ.DisplayDate})
			n++
		}
		groups[n-1].Entries = append(groups[n-1].Entries, entry)
	}
	return groups
}

func itemsForEvent(items []domain.Item, eventID int64) []domain.Item {
	matched := make([]domain.Item, 0)
	for _, it := range items {
		if it.EventID == eventID {
			matched = append(matched, it)
		}
	}
	return matched
}
