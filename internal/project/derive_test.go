package project_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aescanero/rapidtriage/internal/project"
)

func TestDerive(t *testing.T) {
	s := project.Resolve(project.Map{
		"REPOSITORY_URL": "https://github.com/Org/Repo",
		"DOMAIN":         "example.dev",
	})

	d := project.Derive(s)

	assert.Equal(t, "Org", d.Org)
	assert.Equal(t, "Repo", d.Repo)
	assert.Equal(t, "https://docs.example.dev", d.DocsURL)
	assert.Equal(t, "https://github.com/Org/Repo/issues", d.IssuesURL)
	assert.Equal(t, "Org/Repo", d.RepoName())
	assert.Equal(t, "https://github.com/Org/Repo.git", s.GitCloneURL())
}

func TestDerive_ShortURLFallsBack(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"no slash", "github.com"},
		{"bare host", "https://github.com"},
		{"org only", "https://github.com/Org"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := project.Derive(project.Settings{RepositoryURL: tt.url, Domain: "x"})

			assert.Equal(t, project.DefaultOrg, d.Org)
			assert.Equal(t, project.DefaultRepo, d.Repo)
			assert.Equal(t, tt.url+"/issues", d.IssuesURL)
		})
	}
}

func TestDerive_ExtraSegmentsIgnored(t *testing.T) {
	d := project.Derive(project.Settings{RepositoryURL: "https://gitlab.com/group/project/tree/main"})

	assert.Equal(t, "group", d.Org)
	assert.Equal(t, "project", d.Repo)
}

func TestRawContentURL(t *testing.T) {
	d := project.Derive(project.Settings{RepositoryURL: "https://github.com/Org/Repo"})

	assert.Equal(t, "https://raw.githubusercontent.com/Org/Repo/main/README.md", d.RawContentURL("", "README.md"))
	assert.Equal(t, "https://raw.githubusercontent.com/Org/Repo/dev/docs/a.md", d.RawContentURL("dev", "docs/a.md"))
}

func TestGitCloneURL_FromSettingsLiteral(t *testing.T) {
	s := project.Settings{RepositoryURL: "https://github.com/Org/Repo"}

	assert.Equal(t, "https://github.com/Org/Repo.git", s.GitCloneURL())
}
