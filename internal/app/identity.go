package app

import "strings"

// MatchesUser tells whether the commit was authored by the account with given login.
//
// A linked account login is authoritative. Commits without one (made before the
// email was linked to an account) fall back to the raw git author name.
func MatchesUser(c Commit, login string) bool {
	if login == "" {
		return false
	}
	if c.AuthorLogin != "" {
		return strings.EqualFold(c.AuthorLogin, login)
	}
	if name := strings.TrimSpace(c.AuthorName); name != "" {
		return strings.EqualFold(name, login)
	}

	return false
}

// MatchesAccount compares account logins of pull requests and issues.
func MatchesAccount(author string, login string) bool {
	if author == "" || login == "" {
		return false
	}

	return strings.EqualFold(author, login)
}

// AuthorKey returns the identity used to group commits by author: account login if linked,
// git author name otherwise. Empty when the commit carries no usable identity.
func AuthorKey(c Commit) string {
	if c.AuthorLogin != "" {
		return c.AuthorLogin
	}

	return strings.TrimSpace(c.AuthorName)
}

// DedupCommits merges per-branch commit lists into one list, unique by SHA.
// Order is first-seen across the given lists.
func DedupCommits(branches ...[]Commit) []Commit {
	var size int
	for _, b := range branches {
		size += len(b)
	}

	seen := make(map[string]struct{}, size)
	result := make([]Commit, 0, size)
	for _, b := range branches {
		for _, c := range b {
			if c.SHA == "" {
				continue
			}
			if _, ok := seen[c.SHA]; ok {
				continue
			}
			seen[c.SHA] = struct{}{}
			result = append(result, c)
		}
	}

	return result
}
