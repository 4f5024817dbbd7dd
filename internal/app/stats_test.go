package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		part  int
		total int
		want  float64
	}{
		{0, 0, 0},
		{5, 0, 0},
		{0, 10, 0},
		{1, 3, 33.3},
		{2, 3, 66.7},
		{1, 8, 12.5},
		{1, 16, 6.3},
		{50, 102, 49},
		{52, 102, 51},
		{10, 10, 100},
		{11, 10, 100},
		{-1, 10, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Percentage(tt.part, tt.total), "%d/%d", tt.part, tt.total)
	}
}

func TestPercentageBounds(t *testing.T) {
	t.Parallel()

	for total := 0; total <= 50; total++ {
		for part := 0; part <= total; part++ {
			p := Percentage(part, total)
			require.GreaterOrEqual(t, p, 0.0)
			require.LessOrEqual(t, p, 100.0)
		}
	}
}

func TestSubject(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Fix bug", subject("Fix bug\n\nDetails here"))
	assert.Equal(t, "Fix bug", subject("  Fix bug  \r\nmore"))
	assert.Equal(t, "", subject("\nbody only"))
	assert.Equal(t, "", subject(""))
}

func TestContributionStatsEmpty(t *testing.T) {
	t.Parallel()

	s := contributionStats(repositoryData{}, "bob", 30)
	assert.Equal(t, 0, s.TotalCommits)
	assert.Equal(t, 0.0, s.CommitPercentage)
	assert.Empty(t, s.FirstCommitDate)
	assert.Empty(t, s.LastCommitDate)
	assert.NotNil(t, s.CommitMessages)
	assert.NotNil(t, s.PullRequests)
	assert.NotNil(t, s.Issues)
	assert.Empty(t, s.RoleDistribution)
	assert.False(t, s.Partial)
}

func TestContributionStatsMissingIdentity(t *testing.T) {
	t.Parallel()

	d := repositoryData{
		commits: []Commit{
			{SHA: "1", AuthorLogin: "bob", Date: time.Date(2024, 5, 1, 23, 59, 0, 0, time.FixedZone("CEST", 2*3600))},
			{SHA: "2"},
			{SHA: "3", AuthorName: "  "},
		},
		detailMisses: 1,
	}

	s := contributionStats(d, "bob", 30)
	assert.Equal(t, 3, s.TotalCommits)
	assert.Equal(t, 1, s.UserCommits)
	assert.Equal(t, 33.3, s.CommitPercentage)
	// dates are reported in UTC
	assert.Equal(t, "2024-05-01", s.FirstCommitDate)
	assert.Equal(t, map[int]int{21: 1}, s.HourlyActivity)
	assert.True(t, s.Partial)

	tallies := authorTallies(d.commits)
	assert.Equal(t, map[string]authorTally{"bob": {commits: 1}}, tallies)
}

func TestRollupTieBreaks(t *testing.T) {
	t.Parallel()

	results := []repositoryResult{
		{
			repository: Repository{Name: "zeta", FullName: "acme/zeta"},
			stats:      ContributionStats{TotalCommits: 4, UserCommits: 2, CommitPercentage: 50},
			authors:    map[string]authorTally{"bob": {commits: 2}, "carol": {commits: 2}},
		},
		{
			repository: Repository{Name: "alpha", FullName: "acme/alpha"},
			stats:      ContributionStats{TotalCommits: 2, UserCommits: 1, CommitPercentage: 50},
			authors:    map[string]authorTally{"bob": {commits: 1, avatarURL: "bob.png"}, "alice": {commits: 1}},
		},
		{
			repository: Repository{Name: "broken", FullName: "acme/broken"},
			failed:     true,
		},
		{
			repository: Repository{Name: "empty", FullName: "acme/empty"},
			stats:      ContributionStats{},
		},
	}

	s := rollup("acme", "bob", results)
	assert.Equal(t, 3, s.RepositoryCount)
	assert.Equal(t, 2, s.RepositoriesContributed)
	assert.Equal(t, 6, s.TotalCommits)
	assert.Equal(t, 3, s.UserCommits)
	assert.Equal(t, 50.0, s.OverallPercentage)
	assert.Equal(t, []string{"acme/broken"}, s.FailedRepositories)
	assert.True(t, s.Partial)

	var names []string
	for _, r := range s.Repositories {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"alpha", "zeta", "empty"}, names)

	assert.Equal(t, []TeamMember{
		{Login: "bob", AvatarURL: "bob.png", Commits: 3, Percentage: 50},
		{Login: "carol", Commits: 2, Percentage: 33.3},
		{Login: "alice", Commits: 1, Percentage: 16.7},
	}, s.TeamMembers)
}

func TestRollupEmpty(t *testing.T) {
	t.Parallel()

	s := rollup("acme", "bob", nil)
	assert.Equal(t, 0.0, s.OverallPercentage)
	assert.NotNil(t, s.Repositories)
	assert.NotNil(t, s.TeamMembers)
	assert.False(t, s.Partial)
}

func TestSelectBranches(t *testing.T) {
	t.Parallel()

	branches := func(names ...string) []Branch {
		var result []Branch
		for _, n := range names {
			result = append(result, Branch{Name: n})
		}
		return result
	}

	tests := []struct {
		name          string
		defaultBranch string
		branches      []Branch
		limit         int
		want          []string
	}{
		{"default first", "main", branches("a", "main", "b"), 10, []string{"main", "a", "b"}},
		{"capped", "main", branches("a", "b", "c", "main"), 2, []string{"main", "a"}},
		{"no limit", "main", branches("a", "b", "main"), 0, []string{"main", "a", "b"}},
		{"default not listed", "main", branches("a", "b"), 1, []string{"a"}},
		{"duplicates", "main", branches("a", "a", "main"), 10, []string{"main", "a"}},
		{"nothing listed", "main", nil, 10, []string{"main"}},
		{"nothing known", "", nil, 10, []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, selectBranches(tt.defaultBranch, tt.branches, tt.limit))
		})
	}
}
