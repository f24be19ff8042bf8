package auth

import (
	"errors"

	"github.com/gnomegl/hourglass/internal/github"
	gh "github.com/google/go-github/v57/github"
)

// Clients bundles the REST client used for README contents with the
// GraphQL executor sharing its authenticated transport.
type Clients struct {
	REST    *gh.Client
	GraphQL *github.GraphQLClient
}

func SetupGitHubClient(token string) (*Clients, error) {
	if token == "" {
		return nil, errors.New("a GitHub token is required")
	}

	client := github.GetGithubClient(token)
	return &Clients{
		REST:    client,
		GraphQL: github.NewGraphQLClient(client),
	}, nil
}
