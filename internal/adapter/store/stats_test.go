package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Tally-lab/Tally-BE/internal/app"
	"github.com/Tally-lab/Tally-BE/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsStoreContributionStats(t *testing.T) {
	t.Parallel()

	kv := mock.NewKVStore(nil)
	s := NewStatsStore(kv)
	ctx := context.Background()

	stats := &app.ContributionStats{
		ID:               "cs1",
		User:             "bob",
		Repository:       app.Repository{Name: "api", FullName: "acme/api"},
		TotalCommits:     4,
		UserCommits:      3,
		CommitPercentage: 75,
		RoleDistribution: map[app.Role]app.RoleStats{
			app.RoleBackend: {Commits: 2, Percentage: 66.7},
		},
		HourlyActivity: map[int]int{10: 3},
		CommitMessages: []string{"Add login"},
		AnalyzedAt:     time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.SaveContributionStats(ctx, stats))
	assert.Equal(t, []string{"cs/cs1"}, kv.Keys())

	got, err := s.ContributionStats(ctx, "cs1")
	require.NoError(t, err)
	assert.Equal(t, stats, got)

	require.NoError(t, s.DeleteContributionStats(ctx, "cs1"))
	_, err = s.ContributionStats(ctx, "cs1")
	assert.True(t, app.IsNotFoundError(err))

	err = s.DeleteContributionStats(ctx, "cs1")
	assert.True(t, app.IsNotFoundError(err))
	assert.Equal(t, 1, kv.Deletes())
}

func TestStatsStoreOrganizationStats(t *testing.T) {
	t.Parallel()

	kv := mock.NewKVStore(nil)
	s := NewStatsStore(kv)
	ctx := context.Background()

	stats := &app.OrganizationStats{
		ID:                 "os1",
		Organization:       "acme",
		User:               "bob",
		TotalCommits:       102,
		UserCommits:        52,
		OverallPercentage:  51,
		Repositories:       []app.RepositoryContribution{{Name: "a", TotalCommits: 100, UserCommits: 50}},
		TeamMembers:        []app.TeamMember{{Login: "bob", Commits: 52, Percentage: 51}},
		FailedRepositories: []string{"acme/b"},
		Partial:            true,
	}
	require.NoError(t, s.SaveOrganizationStats(ctx, stats))

	got, err := s.OrganizationStats(ctx, "os1")
	require.NoError(t, err)
	assert.Equal(t, stats, got)

	// ids of both kinds don't collide
	_, err = s.ContributionStats(ctx, "os1")
	assert.True(t, app.IsNotFoundError(err))
}

func TestStatsStoreErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("empty id", func(t *testing.T) {
		s := NewStatsStore(mock.NewKVStore(nil))
		assert.True(t, app.IsInvalidRequestError(s.SaveContributionStats(ctx, &app.ContributionStats{})))
		assert.True(t, app.IsInvalidRequestError(s.SaveOrganizationStats(ctx, nil)))
	})

	t.Run("kv failure", func(t *testing.T) {
		kv := mock.NewKVStore(nil)
		kv.Err = errors.New("disk failure")
		s := NewStatsStore(kv)

		err := s.SaveContributionStats(ctx, &app.ContributionStats{ID: "cs1"})
		assert.ErrorIs(t, err, kv.Err)

		_, err = s.OrganizationStats(ctx, "os1")
		assert.ErrorIs(t, err, kv.Err)
		assert.False(t, app.IsNotFoundError(err))
	})

	t.Run("corrupted data", func(t *testing.T) {
		s := NewStatsStore(mock.NewKVStore(map[string][]byte{"cs/cs1": []byte("{")}))
		_, err := s.ContributionStats(ctx, "cs1")
		assert.Error(t, err)
		assert.False(t, app.IsNotFoundError(err))
	})

	t.Run("cancelled context", func(t *testing.T) {
		kv := mock.NewKVStore(nil)
		s := NewStatsStore(kv)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		err := s.SaveContributionStats(cctx, &app.ContributionStats{ID: "cs1"})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, kv.Updates())
	})
}
