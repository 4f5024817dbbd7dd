package github

import (
	"time"

	"github.com/Tally-lab/Tally-BE/internal/app"
	"github.com/google/go-github/v57/github"
)

func toRepository(r *github.Repository) app.Repository {
	repo := app.Repository{
		ID:             r.GetID(),
		Name:           r.GetName(),
		FullName:       r.GetFullName(),
		OwnerID:        r.GetOwner().GetID(),
		OwnerLogin:     r.GetOwner().GetLogin(),
		OwnerType:      r.GetOwner().GetType(),
		OwnerAvatarURL: r.GetOwner().GetAvatarURL(),
		DefaultBranch:  r.GetDefaultBranch(),
		HTMLURL:        r.GetHTMLURL(),
		UpdatedAt:      utc(r.GetUpdatedAt()),
	}
	if parent := r.GetParent(); parent != nil {
		repo.ParentOwnerID = parent.GetOwner().GetID()
		repo.ParentOwnerLogin = parent.GetOwner().GetLogin()
		repo.ParentOwnerType = parent.GetOwner().GetType()
		repo.ParentOwnerAvatarURL = parent.GetOwner().GetAvatarURL()
	}

	return repo
}

func toRepositories(rs []*github.Repository) []app.Repository {
	result := make([]app.Repository, 0, len(rs))
	for _, r := range rs {
		result = append(result, toRepository(r))
	}

	return result
}

func toBranches(bs []*github.Branch) []app.Branch {
	result := make([]app.Branch, 0, len(bs))
	for _, b := range bs {
		result = append(result, app.Branch{
			Name: b.GetName(),
			SHA:  b.GetCommit().GetSHA(),
		})
	}

	return result
}

// toCommit converts a listed or detailed commit.
// Login and avatar come from the linked account, name and date from the raw git author.
func toCommit(c *github.RepositoryCommit) app.Commit {
	commit := app.Commit{
		SHA:             c.GetSHA(),
		AuthorLogin:     c.GetAuthor().GetLogin(),
		AuthorAvatarURL: c.GetAuthor().GetAvatarURL(),
		AuthorName:      c.GetCommit().GetAuthor().GetName(),
		Date:            utc(c.GetCommit().GetAuthor().GetDate()),
		Message:         c.GetCommit().GetMessage(),
	}
	if len(c.Files) > 0 {
		commit.Files = toFileChanges(c.Files)
	}

	return commit
}

func toCommits(cs []*github.RepositoryCommit) []app.Commit {
	result := make([]app.Commit, 0, len(cs))
	for _, c := range cs {
		result = append(result, toCommit(c))
	}

	return result
}

func toFileChanges(fs []*github.CommitFile) []app.FileChange {
	result := make([]app.FileChange, 0, len(fs))
	for _, f := range fs {
		result = append(result, app.FileChange{
			Path:      f.GetFilename(),
			Status:    f.GetStatus(),
			Additions: f.GetAdditions(),
			Deletions: f.GetDeletions(),
		})
	}

	return result
}

func toPullRequests(ps []*github.PullRequest) []app.PullRequest {
	result := make([]app.PullRequest, 0, len(ps))
	for _, p := range ps {
		result = append(result, app.PullRequest{
			Number:      p.GetNumber(),
			Title:       p.GetTitle(),
			State:       p.GetState(),
			AuthorLogin: p.GetUser().GetLogin(),
			Body:        p.GetBody(),
			HTMLURL:     p.GetHTMLURL(),
			CreatedAt:   utc(p.GetCreatedAt()),
			ClosedAt:    optionalTime(p.GetClosedAt()),
			MergedAt:    optionalTime(p.GetMergedAt()),
		})
	}

	return result
}

// toIssues converts issues, leaving out pull requests which the issues listing includes.
func toIssues(is []*github.Issue) []app.Issue {
	result := make([]app.Issue, 0, len(is))
	for _, i := range is {
		if i.IsPullRequest() {
			continue
		}
		result = append(result, app.Issue{
			Number:      i.GetNumber(),
			Title:       i.GetTitle(),
			State:       i.GetState(),
			AuthorLogin: i.GetUser().GetLogin(),
			Body:        i.GetBody(),
			HTMLURL:     i.GetHTMLURL(),
			CreatedAt:   utc(i.GetCreatedAt()),
			ClosedAt:    optionalTime(i.GetClosedAt()),
		})
	}

	return result
}

func toOrganizations(orgs []*github.Organization) []app.Organization {
	result := make([]app.Organization, 0, len(orgs))
	for _, o := range orgs {
		result = append(result, app.Organization{
			ID:          o.GetID(),
			Login:       o.GetLogin(),
			AvatarURL:   o.GetAvatarURL(),
			Description: o.GetDescription(),
		})
	}

	return result
}

func utc(t github.Timestamp) time.Time {
	if t.IsZero() {
		return time.Time{}
	}

	return t.UTC()
}

func optionalTime(t github.Timestamp) *time.Time {
	if t.IsZero() {
		return nil
	}
	v := t.UTC()

	return &v
}
