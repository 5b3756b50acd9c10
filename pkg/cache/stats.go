package cache

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// analytics holds process-wide cache counters, guarded by the Store lock
type analytics struct {
	hits, misses               int64
	expirations, evictions     int64
	aiHits, aiMisses           int64
	newsAPIHits, newsAPIMisses int64
	totalQueries               int64
	lastCleanup                time.Time
}

func (a *analytics) record(kind Kind, hit bool) {
	a.totalQueries++
	if hit {
		a.hits++
	} else {
		a.misses++
	}

	switch {
	case kind == KindAI && hit:
		a.aiHits++
	case kind == KindAI:
		a.aiMisses++
	case kind == KindNewsAPI && hit:
		a.newsAPIHits++
	case kind == KindNewsAPI:
		a.newsAPIMisses++
	}
}

func (a *analytics) stats(size, maxItems int) Stats {
	return Stats{
		Size:           size,
		MaxItems:       maxItems,
		HitRate:        ratio(a.hits, a.totalQueries),
		Hits:           a.hits,
		Misses:         a.misses,
		Expirations:    a.expirations,
		Evictions:      a.evictions,
		TotalQueries:   a.totalQueries,
		AIHitRate:      ratio(a.aiHits, a.aiHits+a.aiMisses),
		NewsAPIHitRate: ratio(a.newsAPIHits, a.newsAPIHits+a.newsAPIMisses),
		LastCleanup:    a.lastCleanup.UTC(),
	}
}

func ratio(part, total int64) Percent {
	if total == 0 {
		return 0
	}
	return Percent(float64(part) / float64(total) * 100)
}

// Percent is a percentage value, serialized as a string like "12.50%"
type Percent float64

// MarshalJSON renders the percentage with two decimals and a percent sign
func (p Percent) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`"%.2f%%"`, float64(p))), nil
}

// UnmarshalJSON accepts both "12.50%" strings and bare numbers
func (p *Percent) UnmarshalJSON(data []byte) error {
	s := strings.TrimSuffix(strings.Trim(string(data), `"`), "%")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parse percent %s: %w", data, err)
	}
	*p = Percent(v)
	return nil
}

// Stats is a snapshot of cache size and hit/miss analytics
type Stats struct {
	Size           int       `json:"size"`
	MaxItems       int       `json:"maxItems"`
	HitRate        Percent   `json:"hitRate"`
	Hits           int64     `json:"hits"`
	Misses         int64     `json:"misses"`
	Expirations    int64     `json:"expirations"`
	Evictions      int64     `json:"evictions"`
	TotalQueries   int64     `json:"totalQueries"`
	AIHitRate      Percent   `json:"aiHitRate"`
	NewsAPIHitRate Percent   `json:"newsApiHitRate"`
	LastCleanup    time.Time `json:"lastCleanup"`
}

// HealthStatus grades the overall hit rate
type HealthStatus string

// health grades
const (
	HealthGood     HealthStatus = "good"
	HealthModerate HealthStatus = "moderate"
	HealthPoor     HealthStatus = "poor"
)

// Health is a coarse assessment of cache effectiveness with tuning hints
type Health struct {
	Status          HealthStatus `json:"status"`
	Recommendations []string     `json:"recommendations"`
}

// CheckHealth grades stats: good above 70% hit rate, moderate above 40%, poor otherwise
func CheckHealth(st Stats) Health {
	h := Health{Status: HealthPoor, Recommendations: []string{}}
	switch {
	case st.HitRate > 70:
		h.Status = HealthGood
	case st.HitRate > 40:
		h.Status = HealthModerate
	}

	if st.HitRate < 40 {
		h.Recommendations = append(h.Recommendations, "Consider increasing cache TTL values")
	}
	if st.MaxItems > 0 && st.Size > st.MaxItems*4/5 {
		h.Recommendations = append(h.Recommendations, "Cache size approaching limit, consider cleanup")
	}
	if st.AIHitRate < 60 {
		h.Recommendations = append(h.Recommendations, "AI cache hit rate is low, consider optimizing AI caching")
	}
	return h
}
