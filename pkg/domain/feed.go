package domain

// Feed is an RSS/Atom source used by the rss news provider
type Feed struct {
	URL  string `yaml:"url" json:"url" jsonschema:"required,description=Feed URL"`
	Name string `yaml:"name" json:"name" jsonschema:"description=Display name used as article source name"`
}
