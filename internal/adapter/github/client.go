package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Tally-lab/Tally-BE/internal/app"
	"github.com/cenkalti/backoff/v5"
	"github.com/google/go-github/v57/github"
)

const pageSize = 100

// errRepositoryEmpty is returned by github with status 409 for repositories without commits.
var errRepositoryEmpty = errors.New("repository is empty")

// Client returns repositories and their activity from github api.
// This struct is an adapter for app.GithubClient.
type Client struct {
	gh           *github.Client
	maxRetries   int
	retryBackoff time.Duration
	metrics      *Metrics
}

var _ app.GithubClient = &Client{}

// NewClient creates new github client.
// Authentication and rate limiting are done by httpClient's transport.
// address is optional, public github api is used when empty.
// metrics are optional.
func NewClient(
	httpClient *http.Client,
	address string,
	maxRetries int,
	retryBackoff time.Duration,
	metrics *Metrics,
) (*Client, error) {
	gh := github.NewClient(httpClient)
	if address != "" {
		u, err := url.Parse(strings.TrimSuffix(address, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid github api address: %w", err)
		}
		gh.BaseURL = u
	}
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &Client{
		gh:           gh,
		maxRetries:   maxRetries,
		retryBackoff: retryBackoff,
		metrics:      metrics,
	}, nil
}

// Repository returns repository metadata.
func (c *Client) Repository(ctx context.Context, owner string, name string) (*app.Repository, error) {
	if owner == "" || name == "" {
		return nil, app.InvalidRequestError("repository owner and name cannot be empty")
	}

	var r *github.Repository
	err := c.do(ctx, "repository", func() error {
		var err error
		r, _, err = c.gh.Repositories.Get(ctx, owner, name)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("getting repository %s/%s: %w", owner, name, err)
	}
	repo := toRepository(r)

	return &repo, nil
}

// Branches returns all branches of a repository.
func (c *Client) Branches(ctx context.Context, owner string, name string) ([]app.Branch, error) {
	bs, err := paginate(ctx, c, "branches", func(lo github.ListOptions) ([]*github.Branch, *github.Response, error) {
		return c.gh.Repositories.ListBranches(ctx, owner, name, &github.BranchListOptions{ListOptions: lo})
	})
	if err != nil {
		return nil, fmt.Errorf("listing branches of %s/%s: %w", owner, name, err)
	}

	return toBranches(bs), nil
}

// Commits returns commits reachable from branch. Empty branch means repository's default branch.
// Listed commits have no files.
func (c *Client) Commits(ctx context.Context, owner string, name string, branch string) ([]app.Commit, error) {
	cs, err := paginate(ctx, c, "commits", func(lo github.ListOptions) ([]*github.RepositoryCommit, *github.Response, error) {
		return c.gh.Repositories.ListCommits(ctx, owner, name, &github.CommitsListOptions{SHA: branch, ListOptions: lo})
	})
	if err != nil {
		return nil, fmt.Errorf("listing commits of %s/%s@%s: %w", owner, name, branch, err)
	}

	return toCommits(cs), nil
}

// CommitDetail returns a commit with all changed files.
func (c *Client) CommitDetail(ctx context.Context, owner string, name string, sha string) (*app.Commit, error) {
	if sha == "" {
		return nil, app.InvalidRequestError("commit sha cannot be empty")
	}

	var commit *app.Commit
	lo := github.ListOptions{PerPage: pageSize}
	for {
		var (
			rc   *github.RepositoryCommit
			resp *github.Response
		)
		err := c.do(ctx, "commit_detail", func() error {
			var err error
			rc, resp, err = c.gh.Repositories.GetCommit(ctx, owner, name, sha, &lo)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("getting commit %s of %s/%s: %w", sha, owner, name, err)
		}

		if commit == nil {
			cm := toCommit(rc)
			commit = &cm
		} else {
			commit.Files = append(commit.Files, toFileChanges(rc.Files)...)
		}
		if len(rc.Files) == 0 || resp.NextPage == 0 {
			return commit, nil
		}
		lo.Page = resp.NextPage
	}
}

// PullRequests returns pull requests of a repository in all states.
func (c *Client) PullRequests(ctx context.Context, owner string, name string) ([]app.PullRequest, error) {
	ps, err := paginate(ctx, c, "pull_requests", func(lo github.ListOptions) ([]*github.PullRequest, *github.Response, error) {
		return c.gh.PullRequests.List(ctx, owner, name, &github.PullRequestListOptions{State: "all", ListOptions: lo})
	})
	if err != nil {
		return nil, fmt.Errorf("listing pull requests of %s/%s: %w", owner, name, err)
	}

	return toPullRequests(ps), nil
}

// Issues returns issues of a repository in all states, pull requests excluded.
func (c *Client) Issues(ctx context.Context, owner string, name string) ([]app.Issue, error) {
	is, err := paginate(ctx, c, "issues", func(lo github.ListOptions) ([]*github.Issue, *github.Response, error) {
		return c.gh.Issues.ListByRepo(ctx, owner, name, &github.IssueListByRepoOptions{State: "all", ListOptions: lo})
	})
	if err != nil {
		return nil, fmt.Errorf("listing issues of %s/%s: %w", owner, name, err)
	}

	return toIssues(is), nil
}

// OrganizationRepositories returns all repositories of an organization.
func (c *Client) OrganizationRepositories(ctx context.Context, org string) ([]app.Repository, error) {
	if org == "" {
		return nil, app.InvalidRequestError("organization cannot be empty")
	}

	rs, err := paginate(ctx, c, "organization_repositories", func(lo github.ListOptions) ([]*github.Repository, *github.Response, error) {
		return c.gh.Repositories.ListByOrg(ctx, org, &github.RepositoryListByOrgOptions{Type: "all", ListOptions: lo})
	})
	if err != nil {
		return nil, fmt.Errorf("listing repositories of organization %s: %w", org, err)
	}

	return toRepositories(rs), nil
}

// UserRepositories returns repositories the authenticated user owns, collaborates on
// or can access as an organization member, most recently updated first.
func (c *Client) UserRepositories(ctx context.Context) ([]app.Repository, error) {
	rs, err := paginate(ctx, c, "user_repositories", func(lo github.ListOptions) ([]*github.Repository, *github.Response, error) {
		return c.gh.Repositories.ListByAuthenticatedUser(ctx, &github.RepositoryListByAuthenticatedUserOptions{
			Affiliation: "owner,collaborator,organization_member",
			Sort:        "updated",
			ListOptions: lo,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("listing user repositories: %w", err)
	}

	return toRepositories(rs), nil
}

// UserOrganizations returns organizations of the authenticated user.
func (c *Client) UserOrganizations(ctx context.Context) ([]app.Organization, error) {
	orgs, err := paginate(ctx, c, "user_organizations", func(lo github.ListOptions) ([]*github.Organization, *github.Response, error) {
		return c.gh.Organizations.List(ctx, "", &lo)
	})
	if err != nil {
		return nil, fmt.Errorf("listing user organizations: %w", err)
	}

	return toOrganizations(orgs), nil
}

// paginate calls list for consecutive pages until github reports no next page.
// An empty repository yields an empty result.
func paginate[T any](
	ctx context.Context,
	c *Client,
	operation string,
	list func(github.ListOptions) ([]T, *github.Response, error),
) ([]T, error) {
	result := make([]T, 0)
	lo := github.ListOptions{PerPage: pageSize}
	for {
		var (
			page []T
			resp *github.Response
		)
		err := c.do(ctx, operation, func() error {
			var err error
			page, resp, err = list(lo)
			return err
		})
		if errors.Is(err, errRepositoryEmpty) {
			return make([]T, 0), nil
		}
		if err != nil {
			return nil, err
		}

		result = append(result, page...)
		if len(page) == 0 || resp == nil || resp.NextPage == 0 {
			return result, nil
		}
		lo.Page = resp.NextPage
	}
}

// do runs call, retrying rate limited, server and transport failures with linear backoff.
func (c *Client) do(ctx context.Context, operation string, call func() error) error {
	_, err := backoff.Retry(
		ctx,
		func() (struct{}, error) {
			err := call()
			if err != nil && !retryable(err) {
				return struct{}{}, backoff.Permanent(err)
			}
			return struct{}{}, err
		},
		backoff.WithBackOff(&linearBackOff{step: c.retryBackoff}),
		backoff.WithMaxTries(uint(c.maxRetries)+1),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(error, time.Duration) {
			c.metrics.observe(operation, outcomeRetry)
		}),
	)
	if err == nil {
		c.metrics.observe(operation, outcomeOK)
		return nil
	}
	// the last attempt comes back still wrapped
	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		err = permanent.Unwrap()
	}
	if ctx.Err() != nil {
		c.metrics.observe(operation, outcomeError)
		return ctx.Err()
	}

	err = convertError(err)
	c.metrics.observe(operation, outcomeOf(err))
	return err
}

// linearBackOff waits step, 2*step, 3*step... between attempts.
type linearBackOff struct {
	step    time.Duration
	attempt int
}

func (b *linearBackOff) NextBackOff() time.Duration {
	b.attempt++
	return b.step * time.Duration(b.attempt)
}

func (b *linearBackOff) Reset() {
	b.attempt = 0
}

func retryable(err error) bool {
	var (
		rateErr  *github.RateLimitError
		abuseErr *github.AbuseRateLimitError
		respErr  *github.ErrorResponse
	)
	switch {
	case errors.As(err, &rateErr), errors.As(err, &abuseErr):
		return true
	case errors.As(err, &respErr):
		if respErr.Response == nil {
			return false
		}
		code := respErr.Response.StatusCode
		return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
	case app.IsInvalidRequestError(err), app.IsNotFoundError(err):
		return false
	default:
		// transport failure
		return true
	}
}

// convertError maps github errors to app errors.
func convertError(err error) error {
	var (
		rateErr  *github.RateLimitError
		abuseErr *github.AbuseRateLimitError
		respErr  *github.ErrorResponse
	)
	switch {
	case errors.As(err, &rateErr), errors.As(err, &abuseErr):
		return app.TooManyRequestsError(err.Error())
	case errors.As(err, &respErr) && respErr.Response != nil:
		switch respErr.Response.StatusCode {
		case http.StatusNotFound:
			return app.NotFoundError(respErr.Message)
		case http.StatusConflict:
			return errRepositoryEmpty
		case http.StatusTooManyRequests:
			return app.TooManyRequestsError(respErr.Message)
		}
	}

	return err
}
