package project

import (
	"fmt"
	"strings"
)

// Fallbacks used when the repository URL has no org/repo path
const (
	DefaultOrg  = "YarlisAISolutions"
	DefaultRepo = "rapidtriageME"
)

// minRepoSegments is the segment count of "https://host/org/repo" split on "/"
const minRepoSegments = 5

// Derived holds values computed from Settings
type Derived struct {
	Org       string
	Repo      string
	DocsURL   string
	IssuesURL string
}

// Derive computes org, repo and site URLs from s.
// The repository URL is not validated beyond its segment count.
func Derive(s Settings) Derived {
	org, repo := DefaultOrg, DefaultRepo
	if parts := strings.Split(s.RepositoryURL, "/"); len(parts) >= minRepoSegments {
		org, repo = parts[3], parts[4]
	}

	return Derived{
		Org:       org,
		Repo:      repo,
		DocsURL:   "https://docs." + s.Domain,
		IssuesURL: s.RepositoryURL + "/issues",
	}
}

// RepoName returns "org/repo"
func (d Derived) RepoName() string {
	return d.Org + "/" + d.Repo
}

// GitCloneURL returns the clone URL of the repository
func (s Settings) GitCloneURL() string {
	return s.RepositoryURL + ".git"
}

// RawContentURL returns the raw.githubusercontent.com URL of file on branch.
// An empty branch means main.
func (d Derived) RawContentURL(branch, file string) string {
	if branch == "" {
		branch = "main"
	}
	return fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/%s/%s", d.Org, d.Repo, branch, file)
}
