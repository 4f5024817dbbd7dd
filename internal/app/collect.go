package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// collect fetches all data of one repository needed to compute user's stats.
// Failing units are recorded in returned data, never aborting the whole collection.
func (s *Service) collect(ctx context.Context, repo Repository, user string) repositoryData {
	d := repositoryData{repository: repo}
	owner, name := repo.OwnerLogin, repo.Name
	l := s.l.WithField("repository", repo.FullName)

	branches, err := s.githubClient.Branches(ctx, owner, name)
	if err != nil {
		l.WithError(err).Warn("listing branches")
		d.failures = append(d.failures, fmt.Sprintf("branches: %v", err))
	}
	d.branches = selectBranches(repo.DefaultBranch, branches, s.options.BranchLimit)

	branchCommits := make([][]Commit, len(d.branches))
	branchErrs := make([]error, len(d.branches))
	started := forEach(ctx, len(d.branches), s.options.Workers, func(ctx context.Context, i int) {
		branchCommits[i], branchErrs[i] = s.githubClient.Commits(ctx, owner, name, d.branches[i])
	})
	for i, branch := range d.branches {
		if !started[i] {
			branchErrs[i] = ctx.Err()
		}
		if branchErrs[i] != nil {
			l.WithError(branchErrs[i]).WithField("branch", branch).Warn("listing commits")
			d.failures = append(d.failures, fmt.Sprintf("commits of %s: %v", branch, branchErrs[i]))
			branchCommits[i] = nil
		}
	}
	d.commits = DedupCommits(branchCommits...)

	d.details, d.detailMisses = s.commitDetails(ctx, repo, userCommitsByRecency(d.commits, user), l)

	d.pullRequests, err = s.githubClient.PullRequests(ctx, owner, name)
	if err != nil {
		l.WithError(err).Warn("listing pull requests")
		d.failures = append(d.failures, fmt.Sprintf("pull requests: %v", err))
	}

	d.issues, err = s.githubClient.Issues(ctx, owner, name)
	if err != nil {
		l.WithError(err).Warn("listing issues")
		d.failures = append(d.failures, fmt.Sprintf("issues: %v", err))
	}

	return d
}

// commitDetails fetches file lists of the most recent commits, up to DetailLimit of them.
// Returns fetched details in recency order and the number of commits that couldn't be fetched.
func (s *Service) commitDetails(
	ctx context.Context,
	repo Repository,
	commits []Commit,
	l logrus.FieldLogger,
) ([]Commit, int) {
	if len(commits) > s.options.DetailLimit {
		commits = commits[:s.options.DetailLimit]
	}

	details := make([]*Commit, len(commits))
	started := forEach(ctx, len(commits), s.options.Workers, func(ctx context.Context, i int) {
		detail, err := s.githubClient.CommitDetail(ctx, repo.OwnerLogin, repo.Name, commits[i].SHA)
		if err != nil {
			l.WithError(err).WithField("sha", commits[i].SHA).Debug("retrieving commit detail")
			return
		}
		details[i] = detail
	})

	var (
		result []Commit
		misses int
	)
	for i, d := range details {
		if !started[i] || d == nil {
			misses++
			continue
		}
		result = append(result, *d)
	}

	return result, misses
}

// selectBranches picks branches to query: the default branch first,
// then others in listing order, at most limit of them (0 means all).
// Falls back to the default branch when nothing is listed.
func selectBranches(defaultBranch string, branches []Branch, limit int) []string {
	var names []string
	seen := make(map[string]bool)
	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	}

	for _, b := range branches {
		if b.Name == defaultBranch {
			add(b.Name)
		}
	}
	for _, b := range branches {
		add(b.Name)
	}
	if len(names) == 0 {
		// empty name makes the client list commits of the repository's default branch
		return []string{defaultBranch}
	}
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}

	return names
}
