package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// GithubClient returns repositories and activity data from the hosting platform.
// Listings return an empty slice, not an error, when there's nothing to list.
//
//go:generate mockgen -destination mock/githubclient.go -package mock github.com/Tally-lab/Tally-BE/internal/app GithubClient
type GithubClient interface {
	Repository(ctx context.Context, owner string, name string) (*Repository, error)
	Branches(ctx context.Context, owner string, name string) ([]Branch, error)
	Commits(ctx context.Context, owner string, name string, branch string) ([]Commit, error)
	CommitDetail(ctx context.Context, owner string, name string, sha string) (*Commit, error)
	PullRequests(ctx context.Context, owner string, name string) ([]PullRequest, error)
	Issues(ctx context.Context, owner string, name string) ([]Issue, error)
	OrganizationRepositories(ctx context.Context, org string) ([]Repository, error)
	UserRepositories(ctx context.Context) ([]Repository, error)
	UserOrganizations(ctx context.Context) ([]Organization, error)
}

// Store persists computed stats. Finders return NotFoundError for unknown ids.
//
//go:generate mockgen -destination mock/store.go -package mock github.com/Tally-lab/Tally-BE/internal/app Store
type Store interface {
	SaveContributionStats(ctx context.Context, stats *ContributionStats) error
	ContributionStats(ctx context.Context, id string) (*ContributionStats, error)
	DeleteContributionStats(ctx context.Context, id string) error
	SaveOrganizationStats(ctx context.Context, stats *OrganizationStats) error
	OrganizationStats(ctx context.Context, id string) (*OrganizationStats, error)
}

// Options tune how much upstream data a single analysis fetches.
type Options struct {
	// Workers - max number of concurrent units (repositories, branches, commit details) per stage.
	Workers int
	// BranchLimit - max number of branches queried per repository. 0 means no limit.
	BranchLimit int
	// DetailLimit - number of most recent user commits fetched in detail for role analysis.
	DetailLimit int
	// MessageLimit - max number of commit subjects returned.
	MessageLimit int
}

// DefaultOptions returns options used when none are configured.
func DefaultOptions() Options {
	return Options{
		Workers:      5,
		BranchLimit:  10,
		DetailLimit:  20,
		MessageLimit: 30,
	}
}

// Service is main apps entry point. Provides all app functionality
type Service struct {
	githubClient GithubClient
	store        Store
	options      Options
	timeout      time.Duration
	l            logrus.FieldLogger

	now   func() time.Time
	newID func() string
}

// NewService creates new Service instance.
// store is optional, computed stats aren't persisted without it.
// timeout bounds every analysis, 0 disables it.
func NewService(
	githubClient GithubClient,
	store Store,
	options Options,
	timeout time.Duration,
	l logrus.FieldLogger,
) *Service {
	if options.Workers < 1 {
		options.Workers = 1
	}
	options.BranchLimit = max(options.BranchLimit, 0)
	options.DetailLimit = max(options.DetailLimit, 0)
	options.MessageLimit = max(options.MessageLimit, 0)

	return &Service{
		githubClient: githubClient,
		store:        store,
		options:      options,
		timeout:      timeout,
		l:            l,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// AnalyzeRepository computes user's contribution stats for a single repository.
//
// Failing listings (a branch, pull requests, issues) are logged and treated as empty,
// the stats are then marked as partial.
func (s *Service) AnalyzeRepository(ctx context.Context, owner string, name string, user string) (*ContributionStats, error) {
	if owner == "" || name == "" {
		return nil, InvalidRequestError("repository owner and name cannot be empty")
	}
	if user == "" {
		return nil, InvalidRequestError("user cannot be empty")
	}

	parent := ctx
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	repo, err := s.githubClient.Repository(ctx, owner, name)
	if err != nil {
		return nil, fmt.Errorf("retrieving repository %s/%s: %w", owner, name, err)
	}

	data := s.collect(ctx, *repo, user)
	stats := contributionStats(data, user, s.options.MessageLimit)
	stats.ID = s.newID()
	stats.AnalyzedAt = analyzedAt(s.now())

	s.l.WithFields(logrus.Fields{
		"repository": repo.FullName,
		"user":       user,
		"commits":    fmt.Sprintf("%d/%d", stats.UserCommits, stats.TotalCommits),
		"partial":    stats.Partial,
	}).Info("repository analyzed")

	if s.store != nil {
		if err := s.store.SaveContributionStats(parent, &stats); err != nil {
			s.l.WithError(err).WithField("id", stats.ID).Warn("saving contribution stats")
		}
	}

	return &stats, nil
}

// OrganizationStats computes user's contribution across all repositories of an organization.
//
// Repositories are analyzed concurrently. A repository whose data can't be fetched
// contributes zero and is listed in FailedRepositories. When ctx is cancelled or the
// service timeout passes, stats of repositories analyzed so far are returned.
func (s *Service) OrganizationStats(ctx context.Context, org string, user string) (*OrganizationStats, error) {
	if org == "" {
		return nil, InvalidRequestError("organization cannot be empty")
	}
	if user == "" {
		return nil, InvalidRequestError("user cannot be empty")
	}

	parent := ctx
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	repos, err := s.githubClient.OrganizationRepositories(ctx, org)
	if err != nil {
		return nil, fmt.Errorf("retrieving organization %s repositories: %w", org, err)
	}

	results := make([]repositoryResult, len(repos))
	started := forEach(ctx, len(repos), s.options.Workers, func(ctx context.Context, i int) {
		data := s.collect(ctx, repos[i], user)
		results[i] = newRepositoryResult(data, user, s.options.MessageLimit)
	})
	for i, ok := range started {
		if !ok {
			results[i] = repositoryResult{repository: repos[i], failed: true}
		}
	}

	stats := rollup(org, user, results)
	stats.ID = s.newID()
	stats.AnalyzedAt = analyzedAt(s.now())

	s.l.WithFields(logrus.Fields{
		"organization": org,
		"user":         user,
		"repositories": stats.RepositoryCount,
		"failed":       len(stats.FailedRepositories),
		"commits":      fmt.Sprintf("%d/%d", stats.UserCommits, stats.TotalCommits),
	}).Info("organization analyzed")

	if s.store != nil {
		if err := s.store.SaveOrganizationStats(parent, &stats); err != nil {
			s.l.WithError(err).WithField("id", stats.ID).Warn("saving organization stats")
		}
	}

	return &stats, nil
}

// ContributionStats returns previously computed repository stats.
func (s *Service) ContributionStats(ctx context.Context, id string) (*ContributionStats, error) {
	if id == "" {
		return nil, InvalidRequestError("id cannot be empty")
	}
	if s.store == nil {
		return nil, NotFoundError(fmt.Sprintf("contribution stats %s not found", id))
	}

	return s.store.ContributionStats(ctx, id)
}

// DeleteContributionStats removes previously computed repository stats.
func (s *Service) DeleteContributionStats(ctx context.Context, id string) error {
	if id == "" {
		return InvalidRequestError("id cannot be empty")
	}
	if s.store == nil {
		return NotFoundError(fmt.Sprintf("contribution stats %s not found", id))
	}

	return s.store.DeleteContributionStats(ctx, id)
}

// StoredOrganizationStats returns previously computed organization stats.
func (s *Service) StoredOrganizationStats(ctx context.Context, id string) (*OrganizationStats, error) {
	if id == "" {
		return nil, InvalidRequestError("id cannot be empty")
	}
	if s.store == nil {
		return nil, NotFoundError(fmt.Sprintf("organization stats %s not found", id))
	}

	return s.store.OrganizationStats(ctx, id)
}

// UserRepositories returns repositories of the authenticated user.
func (s *Service) UserRepositories(ctx context.Context) ([]Repository, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	repos, err := s.githubClient.UserRepositories(ctx)
	if err != nil {
		return nil, fmt.Errorf("retrieving user repositories: %w", err)
	}

	return repos, nil
}

// OrganizationRepositories returns all repositories of an organization.
func (s *Service) OrganizationRepositories(ctx context.Context, org string) ([]Repository, error) {
	if org == "" {
		return nil, InvalidRequestError("organization cannot be empty")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	repos, err := s.githubClient.OrganizationRepositories(ctx, org)
	if err != nil {
		return nil, fmt.Errorf("retrieving organization %s repositories: %w", org, err)
	}

	return repos, nil
}

// UserOrganizations returns organizations of the authenticated user.
//
// Organization membership listing needs an org grant, so when it fails or is empty
// organizations are derived from owners of the user's repositories and their fork parents.
func (s *Service) UserOrganizations(ctx context.Context) ([]Organization, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	orgs, err := s.githubClient.UserOrganizations(ctx)
	if err == nil && len(orgs) > 0 {
		return orgs, nil
	}
	if err != nil {
		s.l.WithError(err).Warn("listing user organizations, deriving them from repositories")
	}

	repos, repoErr := s.githubClient.UserRepositories(ctx)
	if repoErr != nil {
		if err != nil {
			return nil, fmt.Errorf("retrieving user organizations: %w", err)
		}
		return nil, fmt.Errorf("retrieving user repositories: %w", repoErr)
	}

	return organizationsFromRepositories(repos), nil
}

func organizationsFromRepositories(repos []Repository) []Organization {
	byLogin := make(map[string]Organization)
	for _, r := range repos {
		if r.OwnerType == ownerTypeOrganization && r.OwnerLogin != "" {
			if _, ok := byLogin[r.OwnerLogin]; !ok {
				byLogin[r.OwnerLogin] = Organization{
					ID:        r.OwnerID,
					Login:     r.OwnerLogin,
					AvatarURL: r.OwnerAvatarURL,
				}
			}
		}
		if r.ParentOwnerType == ownerTypeOrganization && r.ParentOwnerLogin != "" {
			if _, ok := byLogin[r.ParentOwnerLogin]; !ok {
				byLogin[r.ParentOwnerLogin] = Organization{
					ID:        r.ParentOwnerID,
					Login:     r.ParentOwnerLogin,
					AvatarURL: r.ParentOwnerAvatarURL,
				}
			}
		}
	}

	orgs := make([]Organization, 0, len(byLogin))
	for _, o := range byLogin {
		orgs = append(orgs, o)
	}
	sort.Slice(orgs, func(i, j int) bool {
		return orgs[i].Login < orgs[j].Login
	})

	return orgs
}

const ownerTypeOrganization = "Organization"

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, s.timeout)
}
