package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/go-github/v57/github"
)

// Executor runs a query document and decodes its data into out.
type Executor interface {
	Execute(ctx context.Context, q Query, out any) error
}

// GraphQLClient sends queries to the graphql endpoint next to the
// client's REST BaseURL, reusing its auth transport.
type GraphQLClient struct {
	client *github.Client
}

func NewGraphQLClient(client *github.Client) *GraphQLClient {
	return &GraphQLClient{client: client}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (g *GraphQLClient) Execute(ctx context.Context, q Query, out any) error {
	req, err := g.client.NewRequest(http.MethodPost, "graphql", &graphQLRequest{
		Query:     q.Document,
		Variables: q.Variables,
	})
	if err != nil {
		return fmt.Errorf("building graphql request: %w", err)
	}

	var resp graphQLResponse
	if _, err := g.client.Do(ctx, req, &resp); err != nil {
		return fmt.Errorf("graphql request failed: %w", err)
	}

	if len(resp.Errors) > 0 {
		gqlErr := &GraphQLError{}
		for _, e := range resp.Errors {
			gqlErr.Messages = append(gqlErr.Messages, e.Message)
		}
		return gqlErr
	}

	if out == nil || len(resp.Data) == 0 || string(resp.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return fmt.Errorf("decoding graphql data: %w", err)
	}
	return nil
}
