package github

// Config holds configuration for GitHub operations
type Config struct {
	MaxRepos              int
	MaxCommits            int
	MaxConcurrentRequests int
	ShowProgress          bool
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		MaxRepos:              100,
		MaxCommits:            100,
		MaxConcurrentRequests: 5,
		ShowProgress:          true,
	}
}
