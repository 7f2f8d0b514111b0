package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"event-management-be/internal/dto"
	"event-management-be/internal/pkg/apperror"
	"event-management-be/internal/repository/specification"
)

const dateLayout = "2006-01-02"

// pageSpecs validates sort_by against the sortable columns and returns the ordering and
// paging specifications for a list query. q is normalized in place.
func pageSpecs(q *dto.ListQuery, sortable map[string]bool, defaultSort string) ([]specification.Specification, error) {
	q.Normalize()

	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = defaultSort
	}
	if !sortable[sortBy] {
		cols := make([]string, 0, len(sortable))
		for c := range sortable {
			cols = append(cols, c)
		}
		sort.Strings(cols)
		return nil, apperror.NewValidationError("Validation error", map[string]string{
			"sort_by": fmt.Sprintf("sort_by must be one of: %s", strings.Join(cols, ", ")),
		})
	}

	return []specification.Specification{
		specification.OrderBy{Field: sortBy, Desc: q.Desc()},
		specification.Pagination{Limit: q.PerPage, Offset: q.Offset()},
	}, nil
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, apperror.NewValidationError("Validation error", map[string]string{
			field: fmt.Sprintf("%s must be in the format Y-m-d", field),
		})
	}
	return t, nil
}

// today is the calendar date of now, at midnight local time.
func today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
