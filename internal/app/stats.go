package app

import (
	"math"
	"sort"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// repositoryData is everything fetched for one repository and one user.
type repositoryData struct {
	repository Repository
	branches   []string

	// commits is the deduplicated commit set of all queried branches.
	commits []Commit
	// details are detailed user commits, most recent first. Failed fetches are skipped.
	details      []Commit
	pullRequests []PullRequest
	issues       []Issue

	// failures describes listing units (branches, commit pages, PRs, issues) which failed.
	failures []string
	// detailMisses counts commit details which couldn't be fetched.
	detailMisses int
}

func (d repositoryData) failed() bool {
	return len(d.failures) > 0
}

// Percentage returns part/total as percent rounded half up to one decimal place.
// Returns 0 when total isn't positive.
func Percentage(part int, total int) float64 {
	if total <= 0 || part <= 0 {
		return 0
	}
	p := float64(part) / float64(total) * 100
	if p > 100 {
		p = 100
	}

	return round1(p)
}

func round1(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}

// userCommitsByRecency returns commits authored by user, most recent first.
func userCommitsByRecency(commits []Commit, user string) []Commit {
	var result []Commit
	for _, c := range commits {
		if MatchesUser(c, user) {
			result = append(result, c)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})

	return result
}

// subject returns the first line of a commit message.
func subject(message string) string {
	if i := strings.IndexAny(message, "\r\n"); i >= 0 {
		message = message[:i]
	}

	return strings.TrimSpace(message)
}

// contributionStats computes user's stats for one repository from fetched data.
func contributionStats(d repositoryData, user string, messageLimit int) ContributionStats {
	s := ContributionStats{
		User:                 user,
		Repository:           d.repository,
		Branches:             append([]string{}, d.branches...),
		TotalCommits:         len(d.commits),
		RoleDistribution:     make(map[Role]RoleStats),
		LanguageDistribution: make(map[string]int),
		HourlyActivity:       make(map[int]int),
		DailyActivity:        make(map[string]int),
		PullRequests:         []PullRequest{},
		Issues:               []Issue{},
		CommitMessages:       []string{},
		Partial:              d.failed() || d.detailMisses > 0,
	}

	userCommits := userCommitsByRecency(d.commits, user)
	s.UserCommits = len(userCommits)
	s.CommitPercentage = Percentage(s.UserCommits, s.TotalCommits)

	for _, c := range userCommits {
		if !c.Date.IsZero() {
			date := c.Date.UTC()
			day := date.Format(dateLayout)
			if s.FirstCommitDate == "" || day < s.FirstCommitDate {
				s.FirstCommitDate = day
			}
			if day > s.LastCommitDate {
				s.LastCommitDate = day
			}
			s.HourlyActivity[date.Hour()]++
			s.DailyActivity[date.Weekday().String()]++
		}

		if len(s.CommitMessages) < messageLimit {
			if msg := subject(c.Message); msg != "" {
				s.CommitMessages = append(s.CommitMessages, msg)
			}
		}
	}

	roleCommits := make(map[Role]int)
	for _, c := range d.details {
		s.AnalyzedCommits++
		for _, r := range commitRoles(c) {
			roleCommits[r]++
		}
		for _, f := range c.Files {
			s.Additions += f.Additions
			s.Deletions += f.Deletions
			s.LanguageDistribution[DetectLanguage(f.Path)]++
		}
	}
	for r, n := range roleCommits {
		s.RoleDistribution[r] = RoleStats{
			Commits:    n,
			Percentage: Percentage(n, s.AnalyzedCommits),
		}
	}

	for _, pr := range d.pullRequests {
		if MatchesAccount(pr.AuthorLogin, user) {
			s.PullRequests = append(s.PullRequests, pr)
		}
	}
	for _, i := range d.issues {
		if MatchesAccount(i.AuthorLogin, user) {
			s.Issues = append(s.Issues, i)
		}
	}

	return s
}

// authorTally is the per-repository commit count of one author.
type authorTally struct {
	commits   int
	avatarURL string
}

// authorTallies counts commits of all authors keyed by AuthorKey.
// Commits with no usable identity are left out.
func authorTallies(commits []Commit) map[string]authorTally {
	tallies := make(map[string]authorTally)
	for _, c := range commits {
		key := AuthorKey(c)
		if key == "" {
			continue
		}
		t := tallies[key]
		t.commits++
		if t.avatarURL == "" {
			t.avatarURL = c.AuthorAvatarURL
		}
		tallies[key] = t
	}

	return tallies
}

// repositoryResult is the outcome of analyzing one repository of an organization.
type repositoryResult struct {
	repository Repository
	failed     bool
	partial    bool
	stats      ContributionStats
	authors    map[string]authorTally

	pullRequests int
	issues       int
}

// newRepositoryResult computes everything the rollup needs from one repository's data.
func newRepositoryResult(d repositoryData, user string, messageLimit int) repositoryResult {
	if d.failed() {
		return repositoryResult{
			repository: d.repository,
			failed:     true,
		}
	}

	stats := contributionStats(d, user, messageLimit)
	return repositoryResult{
		repository:   d.repository,
		partial:      stats.Partial,
		stats:        stats,
		authors:      authorTallies(d.commits),
		pullRequests: len(d.pullRequests),
		issues:       len(d.issues),
	}
}

// rollup folds per-repository results into organization stats.
// Failed repositories contribute zero to every sum.
func rollup(org string, user string, results []repositoryResult) OrganizationStats {
	s := OrganizationStats{
		Organization: org,
		User:         user,
		Repositories: []RepositoryContribution{},
		TeamMembers:  []TeamMember{},
	}

	members := make(map[string]authorTally)
	for _, r := range results {
		if s.AvatarURL == "" {
			s.AvatarURL = r.repository.OwnerAvatarURL
		}
		if r.failed {
			s.FailedRepositories = append(s.FailedRepositories, r.repository.FullName)
			s.Partial = true
			continue
		}
		if r.partial {
			s.Partial = true
		}

		s.RepositoryCount++
		s.TotalCommits += r.stats.TotalCommits
		s.UserCommits += r.stats.UserCommits
		s.TotalPullRequests += r.pullRequests
		s.TotalIssues += r.issues
		s.UserPullRequests += len(r.stats.PullRequests)
		s.UserIssues += len(r.stats.Issues)
		if r.stats.UserCommits > 0 {
			s.RepositoriesContributed++
		}

		s.Repositories = append(s.Repositories, RepositoryContribution{
			Name:                   r.repository.Name,
			FullName:               r.repository.FullName,
			HTMLURL:                r.repository.HTMLURL,
			TotalCommits:           r.stats.TotalCommits,
			UserCommits:            r.stats.UserCommits,
			ContributionPercentage: r.stats.CommitPercentage,
			LastUpdated:            r.repository.UpdatedAt,
		})

		for key, t := range r.authors {
			m := members[key]
			m.commits += t.commits
			if m.avatarURL == "" {
				m.avatarURL = t.avatarURL
			}
			members[key] = m
		}
	}

	s.OverallPercentage = Percentage(s.UserCommits, s.TotalCommits)

	sort.SliceStable(s.Repositories, func(i, j int) bool {
		a, b := s.Repositories[i], s.Repositories[j]
		if a.ContributionPercentage != b.ContributionPercentage {
			return a.ContributionPercentage > b.ContributionPercentage
		}
		return a.Name < b.Name
	})

	for login, m := range members {
		s.TeamMembers = append(s.TeamMembers, TeamMember{
			Login:      login,
			AvatarURL:  m.avatarURL,
			Commits:    m.commits,
			Percentage: Percentage(m.commits, s.TotalCommits),
		})
	}
	sort.Slice(s.TeamMembers, func(i, j int) bool {
		a, b := s.TeamMembers[i], s.TeamMembers[j]
		if a.Commits != b.Commits {
			return a.Commits > b.Commits
		}
		return a.Login < b.Login
	})

	return s
}

// analyzedAt truncates timestamps stored with stats.
func analyzedAt(now time.Time) time.Time {
	return now.UTC().Truncate(time.Second)
}
