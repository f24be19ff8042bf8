package github

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gnomegl/hourglass/internal/models"
	"github.com/google/go-github/v57/github"
)

// DocumentStore reads and writes the target document under optimistic
// concurrency: Write must be given the revision returned by Read.
type DocumentStore interface {
	Read(ctx context.Context) (*models.DocumentRevision, error)
	Write(ctx context.Context, rev *models.DocumentRevision, content, message string) error
}

// ReadmeStore is a DocumentStore backed by the repository contents API.
type ReadmeStore struct {
	client *github.Client
	owner  string
	repo   string
	path   string
}

func NewReadmeStore(client *github.Client, owner, repo, path string) *ReadmeStore {
	return &ReadmeStore{client: client, owner: owner, repo: repo, path: path}
}

func (s *ReadmeStore) Read(ctx context.Context) (*models.DocumentRevision, error) {
	file, _, resp, err := s.client.Repositories.GetContents(ctx, s.owner, s.repo, s.path, nil)
	if err != nil {
		if statusCode(resp) == http.StatusNotFound {
			return nil, fmt.Errorf("%s not found in %s/%s", s.path, s.owner, s.repo)
		}
		return nil, fmt.Errorf("error fetching %s: %w", s.path, err)
	}
	if file == nil {
		return nil, fmt.Errorf("%s in %s/%s is a directory", s.path, s.owner, s.repo)
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.path, err)
	}

	return &models.DocumentRevision{
		Owner:   s.owner,
		Repo:    s.repo,
		Path:    s.path,
		Content: content,
		SHA:     file.GetSHA(),
	}, nil
}

func (s *ReadmeStore) Write(ctx context.Context, rev *models.DocumentRevision, content, message string) error {
	opts := &github.RepositoryContentFileOptions{
		Message: github.String(message),
		Content: []byte(content),
		SHA:     github.String(rev.SHA),
	}

	_, resp, err := s.client.Repositories.UpdateFile(ctx, s.owner, s.repo, s.path, opts)
	if err != nil {
		if statusCode(resp) == http.StatusConflict {
			return &ConflictError{Path: s.path, SHA: rev.SHA, Err: err}
		}
		return fmt.Errorf("error updating %s: %w", s.path, err)
	}
	return nil
}
