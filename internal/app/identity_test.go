package app

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchesUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		commit Commit
		login  string
		want   bool
	}{
		{
			name:   "linked login, different case",
			commit: Commit{AuthorLogin: "bob", AuthorName: "Robert"},
			login:  "Bob",
			want:   true,
		},
		{
			name:   "linked login wins over matching name",
			commit: Commit{AuthorLogin: "alice", AuthorName: "bob"},
			login:  "bob",
			want:   false,
		},
		{
			name:   "fallback to author name",
			commit: Commit{AuthorName: "BOB"},
			login:  "bob",
			want:   true,
		},
		{
			name:   "fallback ignores surrounding spaces",
			commit: Commit{AuthorName: " bob "},
			login:  "bob",
			want:   true,
		},
		{
			name:   "blank name",
			commit: Commit{AuthorName: "  "},
			login:  "bob",
			want:   false,
		},
		{
			name:   "fallback requires exact name",
			commit: Commit{AuthorName: "bob@example"},
			login:  "bob",
			want:   false,
		},
		{
			name:   "missing identity",
			commit: Commit{},
			login:  "bob",
			want:   false,
		},
		{
			name:   "empty target",
			commit: Commit{AuthorName: ""},
			login:  "",
			want:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesUser(tt.commit, tt.login))
		})
	}
}

func TestMatchesAccount(t *testing.T) {
	assert.True(t, MatchesAccount("Octocat", "octocat"))
	assert.False(t, MatchesAccount("octocat", "octodog"))
	assert.False(t, MatchesAccount("", "octocat"))
	assert.False(t, MatchesAccount("octocat", ""))
}

func TestAuthorKey(t *testing.T) {
	assert.Equal(t, "bob", AuthorKey(Commit{AuthorLogin: "bob", AuthorName: "Robert"}))
	assert.Equal(t, "Robert", AuthorKey(Commit{AuthorName: " Robert "}))
	assert.Equal(t, "", AuthorKey(Commit{}))
}

func TestDedupCommits(t *testing.T) {
	t.Parallel()

	makeCommits := func(prefix string, from, to int) []Commit {
		var cs []Commit
		for i := from; i < to; i++ {
			cs = append(cs, Commit{SHA: fmt.Sprintf("%s%02d", prefix, i)})
		}
		return cs
	}

	// 10 commits on main, 8 on feature; 3 of feature's are shared with main.
	main := makeCommits("sha", 0, 10)
	feature := append(makeCommits("sha", 7, 10), makeCommits("feat", 0, 5)...)
	require.Len(t, feature, 8)

	got := DedupCommits(main, feature)
	require.Len(t, got, 15)

	seen := make(map[string]int)
	for _, c := range got {
		seen[c.SHA]++
	}
	for sha, n := range seen {
		assert.Equal(t, 1, n, "sha %s", sha)
	}

	// first-seen order
	assert.Equal(t, "sha00", got[0].SHA)
	assert.Equal(t, "sha09", got[9].SHA)
	assert.Equal(t, "feat00", got[10].SHA)
}

func TestDedupCommitsEdgeCases(t *testing.T) {
	assert.Empty(t, DedupCommits())
	assert.Empty(t, DedupCommits(nil, nil))

	got := DedupCommits([]Commit{{SHA: ""}, {SHA: "a"}, {SHA: "a", Message: "dup"}})
	require.Len(t, got, 1)
	assert.Equal(t, "", got[0].Message)
}
