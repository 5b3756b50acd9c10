package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLPolicy_TTL(t *testing.T) {
	p := DefaultTTLPolicy()
	tests := []struct {
		hours int
		want  time.Duration
	}{
		{0, 10 * time.Minute},
		{5, 10 * time.Minute},
		{6, time.Hour},
		{23, time.Hour},
		{24, 6 * time.Hour},
		{71, 6 * time.Hour},
		{72, 24 * time.Hour},
		{1000, 24 * time.Hour},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, p.TTL(tt.hours), "hours=%d", tt.hours)
	}
}

func TestTTLPolicy_PageTTL(t *testing.T) {
	p := DefaultTTLPolicy()
	assert.Equal(t, 10*time.Minute, p.PageTTL(nil), "empty page uses the shortest band")
	assert.Equal(t, 10*time.Minute, p.PageTTL([]int{100, 3, 50}), "freshest article governs")
	assert.Equal(t, time.Hour, p.PageTTL([]int{30, 8, 12}))
	assert.Equal(t, 24*time.Hour, p.PageTTL([]int{80, 200}))

	custom := TTLPolicy{Short: time.Second, Medium: 2 * time.Second, Long: 3 * time.Second, Extended: 4 * time.Second}
	assert.Equal(t, 3*time.Second, custom.PageTTL([]int{48}))
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "news_api:artificial intelligence:page1:size20", NewsKey("artificial intelligence", 1, 20))
	assert.Equal(t, "news_api:q:page3:size5", NewsKey("q", 3, 5))
	assert.Equal(t, "article:https://example.com/a", ArticleKey("https://example.com/a", "Title"))
	assert.Equal(t, "article:Title", ArticleKey("", "Title"))
}
