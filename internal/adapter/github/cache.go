package github

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Tally-lab/Tally-BE/internal/app"
	lru "github.com/hashicorp/golang-lru"
)

// CachedClient wraps github client with caching layer.
// Listings expire after ttl. Commit details never change for a sha, so they are only evicted by size.
type CachedClient struct {
	client       app.GithubClient
	listingCache *lru.Cache
	detailsCache *lru.Cache
	ttl          time.Duration
	now          func() time.Time
}

var _ app.GithubClient = &CachedClient{}

// NewCachedClient creates new CachedClient instance.
func NewCachedClient(client app.GithubClient, size int, ttl time.Duration) (*CachedClient, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}
	listingCache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for listings: %w", err)
	}
	detailsCache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for commit details: %w", err)
	}

	return &CachedClient{
		client:       client,
		listingCache: listingCache,
		detailsCache: detailsCache,
		ttl:          ttl,
		now:          time.Now,
	}, nil
}

// Repository returns repository metadata.
func (c *CachedClient) Repository(ctx context.Context, owner string, name string) (*app.Repository, error) {
	return cached(c, cacheKey("repository", owner, name), func() (*app.Repository, error) {
		return c.client.Repository(ctx, owner, name)
	})
}

// Branches returns all branches of a repository.
func (c *CachedClient) Branches(ctx context.Context, owner string, name string) ([]app.Branch, error) {
	return cached(c, cacheKey("branches", owner, name), func() ([]app.Branch, error) {
		return c.client.Branches(ctx, owner, name)
	})
}

// Commits returns commits reachable from branch.
func (c *CachedClient) Commits(ctx context.Context, owner string, name string, branch string) ([]app.Commit, error) {
	return cached(c, cacheKey("commits", owner, name, branch), func() ([]app.Commit, error) {
		return c.client.Commits(ctx, owner, name, branch)
	})
}

// CommitDetail returns a commit with all changed files.
func (c *CachedClient) CommitDetail(ctx context.Context, owner string, name string, sha string) (*app.Commit, error) {
	key := cacheKey(owner, name, sha)
	if val, ok := c.detailsCache.Get(key); ok {
		return val.(*app.Commit), nil
	}

	commit, err := c.client.CommitDetail(ctx, owner, name, sha)
	if err != nil {
		return commit, err
	}
	c.detailsCache.Add(key, commit)

	return commit, nil
}

// PullRequests returns pull requests of a repository in all states.
func (c *CachedClient) PullRequests(ctx context.Context, owner string, name string) ([]app.PullRequest, error) {
	return cached(c, cacheKey("pull_requests", owner, name), func() ([]app.PullRequest, error) {
		return c.client.PullRequests(ctx, owner, name)
	})
}

// Issues returns issues of a repository in all states.
func (c *CachedClient) Issues(ctx context.Context, owner string, name string) ([]app.Issue, error) {
	return cached(c, cacheKey("issues", owner, name), func() ([]app.Issue, error) {
		return c.client.Issues(ctx, owner, name)
	})
}

// OrganizationRepositories returns all repositories of an organization.
func (c *CachedClient) OrganizationRepositories(ctx context.Context, org string) ([]app.Repository, error) {
	return cached(c, cacheKey("organization_repositories", org), func() ([]app.Repository, error) {
		return c.client.OrganizationRepositories(ctx, org)
	})
}

// UserRepositories returns repositories of the authenticated user. Not cached.
func (c *CachedClient) UserRepositories(ctx context.Context) ([]app.Repository, error) {
	return c.client.UserRepositories(ctx)
}

// UserOrganizations returns organizations of the authenticated user. Not cached.
func (c *CachedClient) UserOrganizations(ctx context.Context) ([]app.Organization, error) {
	return c.client.UserOrganizations(ctx)
}

type cacheEntry struct {
	created time.Time
	data    interface{}
}

// cached returns a fresh cached value for key or calls fetch and caches its result.
// Errors aren't cached.
func cached[T any](c *CachedClient, key string, fetch func() (T, error)) (T, error) {
	if val, ok := c.listingCache.Get(key); ok {
		entry := val.(cacheEntry)
		if entry.created.Add(c.ttl).After(c.now()) {
			return entry.data.(T), nil
		}
	}

	data, err := fetch()
	if err != nil {
		return data, err
	}
	c.listingCache.Add(key, cacheEntry{
		created: c.now(),
		data:    data,
	})

	return data, nil
}

func cacheKey(parts ...string) string {
	return strings.Join(parts, "/")
}
