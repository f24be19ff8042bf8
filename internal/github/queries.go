package github

// Query is a GraphQL document plus its variables.
type Query struct {
	Document  string
	Variables map[string]any
}

const identityDocument = `query {
  viewer {
    login
    id
  }
}`

const contributedReposDocument = `query($login: String!, $limit: Int!) {
  user(login: $login) {
    repositoriesContributedTo(last: $limit, includeUserRepositories: true) {
      nodes {
        name
        isFork
        owner {
          login
        }
      }
    }
  }
}`

const commitHistoryDocument = `query($owner: String!, $name: String!, $authorId: ID!, $limit: Int!) {
  repository(owner: $owner, name: $name) {
    defaultBranchRef {
      target {
        ... on Commit {
          history(first: $limit, author: {id: $authorId}) {
            edges {
              node {
                committedDate
              }
            }
          }
        }
      }
    }
  }
}`

func IdentityQuery() Query {
	return Query{Document: identityDocument}
}

// ContributedRepositoriesQuery lists repositories login contributed to.
// Forks are returned too; callers filter on isFork.
func ContributedRepositoriesQuery(login string, limit int) Query {
	return Query{
		Document: contributedReposDocument,
		Variables: map[string]any{
			"login": login,
			"limit": limit,
		},
	}
}

func CommitHistoryQuery(userID, repoName, repoOwner string, limit int) Query {
	return Query{
		Document: commitHistoryDocument,
		Variables: map[string]any{
			"owner":    repoOwner,
			"name":     repoName,
			"authorId": userID,
			"limit":    limit,
		},
	}
}

type identityData struct {
	Viewer struct {
		Login string `json:"login"`
		ID    string `json:"id"`
	} `json:"viewer"`
}

type contributedReposData struct {
	User *struct {
		RepositoriesContributedTo struct {
			Nodes []struct {
				Name   string `json:"name"`
				IsFork bool   `json:"isFork"`
				Owner  struct {
					Login string `json:"login"`
				} `json:"owner"`
			} `json:"nodes"`
		} `json:"repositoriesContributedTo"`
	} `json:"user"`
}

type commitHistoryData struct {
	Repository *struct {
		DefaultBranchRef *struct {
			Target *struct {
				History *struct {
					Edges []struct {
						Node struct {
							CommittedDate string `json:"committedDate"`
						} `json:"node"`
					} `json:"edges"`
				} `json:"history"`
			} `json:"target"`
		} `json:"defaultBranchRef"`
	} `json:"repository"`
}
