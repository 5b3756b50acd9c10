package domain

import (
	"slices"
	"time"
)

// Pagination describes the position of a news page within the full result set
type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	PageSize     int `json:"pageSize"`
	TotalResults int `json:"totalResults"`
	TotalPages   int `json:"totalPages"`
}

// NewsPage is one enriched page of articles for a topic
type NewsPage struct {
	Articles   []ArticleRecord `json:"articles"`
	Pagination Pagination      `json:"pagination"`
	Topic      string          `json:"topic"`
}

// RelatedArticles returns articles sharing at least one entity with selected, newest first.
// The selected article itself is never included.
func RelatedArticles(selected ArticleRecord, all []ArticleRecord) []ArticleRecord {
	if len(selected.Entities) == 0 {
		return nil
	}

	var res []ArticleRecord
	for _, a := range all {
		if a.ID == selected.ID || len(a.Entities) == 0 {
			continue
		}
		if slices.ContainsFunc(a.Entities, func(e string) bool { return slices.Contains(selected.Entities, e) }) {
			res = append(res, a)
		}
	}

	slices.SortStableFunc(res, func(a, b ArticleRecord) int {
		ta, errA := time.Parse(time.RFC3339, a.PublicationDate)
		tb, errB := time.Parse(time.RFC3339, b.PublicationDate)
		if errA != nil || errB != nil {
			return 0
		}
		return tb.Compare(ta)
	})
	return res
}
