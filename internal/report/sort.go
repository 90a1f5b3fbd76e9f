package report

import "sort"

// SortByLastVisited returns the valid reports ordered by when they were
// last visited, oldest first. Reports with equal timestamps keep their
// original relative order.
func SortByLastVisited(reports []*Report) []*Report {
	sorted := make([]*Report, 0, len(reports))
	for _, r := range reports {
		if IsValid(r) {
			sorted = append(sorted, r)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LastVisitedTimestamp < sorted[j].LastVisitedTimestamp
	})
	return sorted
}

// MostRecentlyVisited returns the report visited last, or nil when none
// qualifies. With ignoreDefaultRooms set, workspace default rooms are
// skipped even if they were visited most recently.
func MostRecentlyVisited(reports []*Report, ignoreDefaultRooms bool) *Report {
	sorted := SortByLastVisited(reports)
	if ignoreDefaultRooms {
		kept := make([]*Report, 0, len(sorted))
		for _, r := range sorted {
			if !IsDefaultRoom(r) {
				kept = append(kept, r)
			}
		}
		sorted = kept
	}
	if len(sorted) == 0 {
		return nil
	}
	return sorted[len(sorted)-1]
}
