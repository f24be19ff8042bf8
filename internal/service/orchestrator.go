package service

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/gnomegl/hourglass/internal/activity"
	"github.com/gnomegl/hourglass/internal/display"
	"github.com/gnomegl/hourglass/internal/github"
	"github.com/gnomegl/hourglass/internal/readme"
	"github.com/rs/zerolog"
)

// StoreFactory opens the document store once the target is known.
type StoreFactory func(owner, repo, path string) github.DocumentStore

type Options struct {
	Location      *time.Location
	BarWidth      int
	DryRun        bool
	CommitMessage string
	Target        func(login string) (owner, repo, path string)
	GitHub        github.Config
}

type Orchestrator struct {
	exec     github.Executor
	newStore StoreFactory
	opts     Options
	log      zerolog.Logger
	out      io.Writer
}

func NewOrchestrator(exec github.Executor, newStore StoreFactory, opts Options, log zerolog.Logger, out io.Writer) *Orchestrator {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.BarWidth <= 0 {
		opts.BarWidth = display.DefaultBarWidth
	}
	if out == nil {
		out = io.Discard
	}
	defaults := github.DefaultConfig()
	if opts.GitHub.MaxRepos <= 0 {
		opts.GitHub.MaxRepos = defaults.MaxRepos
	}
	if opts.GitHub.MaxCommits <= 0 {
		opts.GitHub.MaxCommits = defaults.MaxCommits
	}
	if opts.GitHub.MaxConcurrentRequests <= 0 {
		opts.GitHub.MaxConcurrentRequests = defaults.MaxConcurrentRequests
	}
	return &Orchestrator{
		exec:     exec,
		newStore: newStore,
		opts:     opts,
		log:      log,
		out:      out,
	}
}

// Run executes one pass of the pipeline. The README is either fully
// updated or left untouched.
func (o *Orchestrator) Run(ctx context.Context) error {
	identity, err := github.FetchIdentity(ctx, o.exec)
	if err != nil {
		return o.fail(StageIdentity, "failed to look up viewer identity", err)
	}
	o.log.Info().Str("login", identity.Login).Msg("resolved viewer")

	repos, err := github.FetchContributedRepos(ctx, o.exec, identity.Login, &o.opts.GitHub)
	if err != nil {
		return o.fail(StageRepositories, "failed to list contributed repositories", err)
	}
	o.log.Info().Int("repositories", len(repos)).Msg("listed contributed repositories")

	histories, err := github.FetchCommitHistories(ctx, o.exec, identity, repos, &o.opts.GitHub)
	if err != nil {
		return o.fail(StageHistories, "failed to fetch commit histories", err)
	}
	for _, h := range histories {
		if h != nil {
			o.log.Debug().Str("repo", h.Repo.FullName()).Int("commits", len(h.CommittedDates)).Msg("history")
		}
	}

	result := activity.Aggregate(histories, o.opts.Location)
	if result.Skipped > 0 {
		o.log.Warn().Int("skipped", result.Skipped).Msg("ignored unparseable commit timestamps")
	}
	counts := result.Counts
	if counts.IsZero() {
		o.log.Info().Msg("no commit activity found, nothing to update")
		return nil
	}
	o.log.Info().
		Int("morning", counts.Morning).
		Int("daytime", counts.Daytime).
		Int("evening", counts.Evening).
		Int("night", counts.Night).
		Str("timezone", o.opts.Location.String()).
		Msg("bucketed commits")

	chart, err := display.Render(counts, o.opts.BarWidth)
	if err != nil {
		return err
	}
	if err := display.Preview(o.out, counts, o.opts.BarWidth); err != nil {
		return err
	}

	if o.opts.DryRun {
		color.New(color.FgYellow).Fprintln(o.out, "[!] Dry run, README left untouched")
		return nil
	}

	return o.publish(ctx, identity.Login, chart)
}

func (o *Orchestrator) publish(ctx context.Context, login, chart string) error {
	owner, repo, path := o.target(login)
	store := o.newStore(owner, repo, path)
	logger := o.log.With().Str("owner", owner).Str("repo", repo).Str("path", path).Logger()

	rev, err := store.Read(ctx)
	if err != nil {
		return o.fail(StageRead, "failed to read README", err)
	}

	updated, err := readme.ReplaceSection(rev.Content, chart)
	if err != nil {
		return o.fail(StageRead, "README has no activity section", err)
	}

	if updated == rev.Content {
		logger.Info().Msg("README already up to date")
		return nil
	}

	if err := store.Write(ctx, rev, updated, o.opts.CommitMessage); err != nil {
		var conflict *github.ConflictError
		if errors.As(err, &conflict) {
			return o.fail(StageWrite, "README changed while updating", err)
		}
		return o.fail(StageWrite, "failed to write README", err)
	}

	logger.Info().Msg("README updated")
	color.New(color.FgGreen).Fprintf(o.out, "[+] Updated %s in %s/%s\n", path, owner, repo)
	return nil
}

func (o *Orchestrator) target(login string) (owner, repo, path string) {
	if o.opts.Target != nil {
		return o.opts.Target(login)
	}
	return login, login, "README.md"
}

func (o *Orchestrator) fail(stage Stage, msg string, err error) error {
	o.log.Error().Err(err).Str("stage", string(stage)).Msg(msg)
	return &StageError{Stage: stage, Err: err}
}
