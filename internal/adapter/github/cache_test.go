package github

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Tally-lab/Tally-BE/internal/app"
	"github.com/Tally-lab/Tally-BE/internal/app/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedClientCommits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		cacheSize     int
		branches      []string
		callsInterval time.Duration
		ttl           time.Duration
		wantErr       bool
		wantCalls     int
	}{
		{
			name:      "invalid cache size",
			cacheSize: 0,
			wantErr:   true,
		},
		{
			name:          "calls with same parameters",
			cacheSize:     1,
			branches:      []string{"main", "main", "main", "main"},
			callsInterval: time.Microsecond,
			ttl:           time.Minute,
			wantCalls:     1,
		},
		{
			name:          "calls with various branches",
			cacheSize:     2,
			branches:      []string{"main", "dev", "main", "dev", "feature", "main"},
			callsInterval: time.Microsecond,
			ttl:           time.Minute,
			wantCalls:     4,
		},
		{
			name:          "calls with expiring ttl",
			cacheSize:     1,
			branches:      []string{"main", "main", "main", "main"},
			callsInterval: 5 * time.Millisecond,
			ttl:           time.Millisecond,
			wantCalls:     4,
		},
	}

	commitsResponse := []app.Commit{
		{SHA: "a", AuthorLogin: "bob"},
		{SHA: "b", AuthorLogin: "alice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			var clientCalls int

			client := mock.NewMockGithubClient(ctrl)
			client.EXPECT().
				Commits(gomock.Any(), "acme", "api", gomock.Any()).
				DoAndReturn(func(ctx context.Context, owner string, name string, branch string) ([]app.Commit, error) {
					clientCalls++
					return commitsResponse, nil
				}).
				AnyTimes()

			cachedClient, err := NewCachedClient(client, tt.cacheSize, tt.ttl)
			assert.Equal(t, tt.wantErr, err != nil)
			if err != nil {
				return
			}

			for _, branch := range tt.branches {
				commits, err := cachedClient.Commits(context.Background(), "acme", "api", branch)
				require.NoError(t, err)
				require.Equal(t, commitsResponse, commits)
				time.Sleep(tt.callsInterval)
			}

			assert.Equal(t, tt.wantCalls, clientCalls)
		})
	}
}

func TestCachedClientCommitDetail(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	detail := &app.Commit{SHA: "a", Files: []app.FileChange{{Path: "main.go"}}}
	client := mock.NewMockGithubClient(ctrl)
	client.EXPECT().CommitDetail(gomock.Any(), "acme", "api", "a").Return(detail, nil).Times(1)
	client.EXPECT().CommitDetail(gomock.Any(), "acme", "api", "b").Return(nil, errors.New("error")).Times(2)

	cachedClient, err := NewCachedClient(client, 10, time.Nanosecond)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		got, err := cachedClient.CommitDetail(context.Background(), "acme", "api", "a")
		require.NoError(t, err)
		assert.Equal(t, detail, got)
		time.Sleep(time.Millisecond)
	}

	// errors aren't cached
	for i := 0; i < 2; i++ {
		_, err := cachedClient.CommitDetail(context.Background(), "acme", "api", "b")
		assert.Error(t, err)
	}
}

func TestCachedClientListingsKeyedByOperation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockGithubClient(ctrl)
	client.EXPECT().Branches(gomock.Any(), "acme", "api").Return([]app.Branch{{Name: "main"}}, nil).Times(1)
	client.EXPECT().PullRequests(gomock.Any(), "acme", "api").Return([]app.PullRequest{{Number: 1}}, nil).Times(1)
	client.EXPECT().Issues(gomock.Any(), "acme", "api").Return([]app.Issue{{Number: 2}}, nil).Times(1)
	client.EXPECT().Repository(gomock.Any(), "acme", "api").Return(&app.Repository{Name: "api"}, nil).Times(1)
	client.EXPECT().OrganizationRepositories(gomock.Any(), "acme").Return([]app.Repository{{Name: "api"}}, nil).Times(1)
	client.EXPECT().UserRepositories(gomock.Any()).Return([]app.Repository{}, nil).Times(2)
	client.EXPECT().UserOrganizations(gomock.Any()).Return([]app.Organization{}, nil).Times(2)

	cachedClient, err := NewCachedClient(client, 10, time.Minute)
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		branches, err := cachedClient.Branches(ctx, "acme", "api")
		require.NoError(t, err)
		assert.Equal(t, []app.Branch{{Name: "main"}}, branches)

		prs, err := cachedClient.PullRequests(ctx, "acme", "api")
		require.NoError(t, err)
		assert.Equal(t, []app.PullRequest{{Number: 1}}, prs)

		issues, err := cachedClient.Issues(ctx, "acme", "api")
		require.NoError(t, err)
		assert.Equal(t, []app.Issue{{Number: 2}}, issues)

		repo, err := cachedClient.Repository(ctx, "acme", "api")
		require.NoError(t, err)
		assert.Equal(t, "api", repo.Name)

		repos, err := cachedClient.OrganizationRepositories(ctx, "acme")
		require.NoError(t, err)
		assert.Len(t, repos, 1)

		_, err = cachedClient.UserRepositories(ctx)
		require.NoError(t, err)
		_, err = cachedClient.UserOrganizations(ctx)
		require.NoError(t, err)
	}
}
