package github

import (
	"context"
	"io"
	"os"

	"github.com/gnomegl/hourglass/internal/models"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

func FetchIdentity(ctx context.Context, exec Executor) (*models.Identity, error) {
	var data identityData
	if err := exec.Execute(ctx, IdentityQuery(), &data); err != nil {
		return nil, err
	}
	if data.Viewer.Login == "" {
		return nil, ErrEmptyIdentity
	}
	return &models.Identity{Login: data.Viewer.Login, ID: data.Viewer.ID}, nil
}

// FetchContributedRepos returns the non-fork repositories login contributed
// to, in the order GitHub lists them. Duplicates are kept.
func FetchContributedRepos(ctx context.Context, exec Executor, login string, cfg *Config) ([]models.RepositoryRef, error) {
	if cfg == nil {
		cfg = &Config{}
		*cfg = DefaultConfig()
	}

	var data contributedReposData
	if err := exec.Execute(ctx, ContributedRepositoriesQuery(login, cfg.MaxRepos), &data); err != nil {
		return nil, err
	}
	if data.User == nil {
		return nil, nil
	}

	var repos []models.RepositoryRef
	for _, node := range data.User.RepositoriesContributedTo.Nodes {
		if node.IsFork {
			continue
		}
		repos = append(repos, models.RepositoryRef{Name: node.Name, Owner: node.Owner.Login})
	}
	return repos, nil
}

// FetchCommitHistories looks up every repository's default-branch history
// concurrently. result[i] belongs to repos[i] and is nil when the repository
// has no reachable history. Any failed lookup fails the whole batch.
func FetchCommitHistories(ctx context.Context, exec Executor, identity *models.Identity, repos []models.RepositoryRef, cfg *Config) ([]*models.CommitHistory, error) {
	if cfg == nil {
		cfg = &Config{}
		*cfg = DefaultConfig()
	}

	results := make([]*models.CommitHistory, len(repos))
	if len(repos) == 0 {
		return results, nil
	}
	bar := newProgressBar(len(repos), cfg.ShowProgress)

	g, gctx := errgroup.WithContext(ctx)
	if cfg.MaxConcurrentRequests > 0 {
		g.SetLimit(cfg.MaxConcurrentRequests)
	}

	for i, repo := range repos {
		g.Go(func() error {
			history, err := fetchCommitHistory(gctx, exec, identity, repo, cfg.MaxCommits)
			if err != nil {
				return &HistoryError{Repo: repo.FullName(), Err: err}
			}
			results[i] = history
			bar.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		bar.Exit()
		return nil, err
	}
	bar.Finish()
	return results, nil
}

func fetchCommitHistory(ctx context.Context, exec Executor, identity *models.Identity, repo models.RepositoryRef, limit int) (*models.CommitHistory, error) {
	var data commitHistoryData
	if err := exec.Execute(ctx, CommitHistoryQuery(identity.ID, repo.Name, repo.Owner, limit), &data); err != nil {
		return nil, err
	}

	r := data.Repository
	if r == nil || r.DefaultBranchRef == nil || r.DefaultBranchRef.Target == nil || r.DefaultBranchRef.Target.History == nil {
		return nil, nil
	}

	history := &models.CommitHistory{Repo: repo}
	for _, edge := range r.DefaultBranchRef.Target.History.Edges {
		history.CommittedDates = append(history.CommittedDates, edge.Node.CommittedDate)
	}
	return history, nil
}

func newProgressBar(total int, visible bool) *progressbar.ProgressBar {
	var w io.Writer = os.Stderr
	if !visible {
		w = io.Discard
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(20),
		progressbar.OptionSetDescription("[cyan]Reading commit histories[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
