package app

import "time"

// Repository entity
type Repository struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	FullName       string    `json:"fullName"`
	OwnerLogin     string    `json:"ownerLogin"`
	OwnerType      string    `json:"ownerType,omitempty"`
	OwnerAvatarURL string    `json:"ownerAvatarUrl,omitempty"`
	DefaultBranch  string    `json:"defaultBranch"`
	HTMLURL        string    `json:"htmlUrl,omitempty"`
	UpdatedAt      time.Time `json:"updatedAt"`

	// Fork parent owner, set only for forks.
	ParentOwnerLogin     string `json:"parentOwnerLogin,omitempty"`
	ParentOwnerType      string `json:"parentOwnerType,omitempty"`
	ParentOwnerID        int64  `json:"parentOwnerId,omitempty"`
	ParentOwnerAvatarURL string `json:"parentOwnerAvatarUrl,omitempty"`
	OwnerID              int64  `json:"ownerId,omitempty"`
}

// Organization entity
type Organization struct {
	ID          int64  `json:"id"`
	Login       string `json:"login"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
	Description string `json:"description,omitempty"`
}

// Branch entity
type Branch struct {
	Name string `json:"name"`
	SHA  string `json:"sha"`
}

// FileChange is a single file touched by a commit.
type FileChange struct {
	Path      string `json:"path"`
	Status    string `json:"status"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
}

// Commit entity. AuthorLogin is empty when the git identity is not linked to an account.
type Commit struct {
	SHA             string       `json:"sha"`
	AuthorLogin     string       `json:"authorLogin,omitempty"`
	AuthorName      string       `json:"authorName"`
	AuthorAvatarURL string       `json:"authorAvatarUrl,omitempty"`
	Date            time.Time    `json:"date"`
	Message         string       `json:"message"`
	Files           []FileChange `json:"files,omitempty"`
}

// PullRequest entity
type PullRequest struct {
	Number      int        `json:"number"`
	Title       string     `json:"title"`
	State       string     `json:"state"`
	AuthorLogin string     `json:"authorLogin"`
	Body        string     `json:"body,omitempty"`
	HTMLURL     string     `json:"htmlUrl,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	ClosedAt    *time.Time `json:"closedAt,omitempty"`
	MergedAt    *time.Time `json:"mergedAt,omitempty"`
}

// Issue entity
type Issue struct {
	Number      int        `json:"number"`
	Title       string     `json:"title"`
	State       string     `json:"state"`
	AuthorLogin string     `json:"authorLogin"`
	Body        string     `json:"body,omitempty"`
	HTMLURL     string     `json:"htmlUrl,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	ClosedAt    *time.Time `json:"closedAt,omitempty"`
}

// RoleStats is the share of analyzed commits touching files of one role.
type RoleStats struct {
	Commits    int     `json:"commits"`
	Percentage float64 `json:"percentage"`
}

// ContributionStats describes a single user's contribution to one repository.
//
// Role, language and line counts are computed over AnalyzedCommits, the most recent
// user commits fetched in detail, not over the whole history.
type ContributionStats struct {
	ID               string     `json:"id"`
	User             string     `json:"user"`
	Repository       Repository `json:"repository"`
	Branches         []string   `json:"branches"`
	TotalCommits     int        `json:"totalCommits"`
	UserCommits      int        `json:"userCommits"`
	CommitPercentage float64    `json:"commitPercentage"`
	FirstCommitDate  string     `json:"firstCommitDate,omitempty"`
	LastCommitDate   string     `json:"lastCommitDate,omitempty"`

	AnalyzedCommits      int                `json:"analyzedCommits"`
	RoleDistribution     map[Role]RoleStats `json:"roleDistribution"`
	LanguageDistribution map[string]int     `json:"languageDistribution"`
	Additions            int                `json:"additions"`
	Deletions            int                `json:"deletions"`

	HourlyActivity map[int]int    `json:"hourlyActivity"`
	DailyActivity  map[string]int `json:"dailyActivity"`

	PullRequests   []PullRequest `json:"pullRequests"`
	Issues         []Issue       `json:"issues"`
	CommitMessages []string      `json:"commitMessages"`

	Partial    bool      `json:"partial"`
	AnalyzedAt time.Time `json:"analyzedAt"`
}

// RepositoryContribution is one repository line of an organization rollup.
type RepositoryContribution struct {
	Name                   string    `json:"name"`
	FullName               string    `json:"fullName"`
	HTMLURL                string    `json:"htmlUrl,omitempty"`
	TotalCommits           int       `json:"totalCommits"`
	UserCommits            int       `json:"userCommits"`
	ContributionPercentage float64   `json:"contributionPercentage"`
	LastUpdated            time.Time `json:"lastUpdated"`
}

// TeamMember is one leaderboard entry of an organization rollup.
type TeamMember struct {
	Login      string  `json:"login"`
	AvatarURL  string  `json:"avatarUrl,omitempty"`
	Commits    int     `json:"commits"`
	Percentage float64 `json:"percentage"`
}

// OrganizationStats describes a single user's contribution across an organization.
type OrganizationStats struct {
	ID           string `json:"id"`
	Organization string `json:"organization"`
	User         string `json:"user"`
	AvatarURL    string `json:"avatarUrl,omitempty"`

	RepositoryCount         int     `json:"repositoryCount"`
	RepositoriesContributed int     `json:"repositoriesContributed"`
	TotalCommits            int     `json:"totalCommits"`
	UserCommits             int     `json:"userCommits"`
	OverallPercentage       float64 `json:"overallPercentage"`

	TotalPullRequests int `json:"totalPullRequests"`
	TotalIssues       int `json:"totalIssues"`
	UserPullRequests  int `json:"userPullRequests"`
	UserIssues        int `json:"userIssues"`

	Repositories       []RepositoryContribution `json:"repositories"`
	TeamMembers        []TeamMember             `json:"teamMembers"`
	FailedRepositories []string                 `json:"failedRepositories,omitempty"`

	Partial    bool      `json:"partial"`
	AnalyzedAt time.Time `json:"analyzedAt"`
}
