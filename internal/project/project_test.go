package project_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aescanero/rapidtriage/internal/project"
)

func writeProjectFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".project")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFile(t *testing.T) {
	m, err := project.Load(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestLoad_TrimsAndSplitsOnFirstEquals(t *testing.T) {
	path := writeProjectFile(t, "  PROJECT_NAME =  Demo  \nDESCRIPTION=a=b=c\n\nnot a pair\n# DOMAIN=commented.example\n")

	m, err := project.Load(path)
	require.NoError(t, err)

	assert.Equal(t, project.Map{
		"PROJECT_NAME": "Demo",
		"DESCRIPTION":  "a=b=c",
	}, m)
}

func TestLoad_LastDuplicateWins(t *testing.T) {
	path := writeProjectFile(t, "DOMAIN=first.example\nDOMAIN=second.example\n")

	m, err := project.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "second.example", m["DOMAIN"])
}

func TestLoad_LongLine(t *testing.T) {
	long := strings.Repeat("x", 70*1024)
	path := writeProjectFile(t, "DESCRIPTION="+long+"\nDOMAIN=ok.example\n")

	m, err := project.Load(path)
	require.NoError(t, err)
	assert.Equal(t, long, m["DESCRIPTION"])
	assert.Equal(t, "ok.example", m["DOMAIN"])
}

func TestLoad_LastLineWithoutNewline(t *testing.T) {
	path := writeProjectFile(t, "REGION=EU\r\nDOMAIN=tail.example")

	m, err := project.Load(path)
	require.NoError(t, err)
	assert.Equal(t, project.Map{"REGION": "EU", "DOMAIN": "tail.example"}, m)
}

func TestLoad_UnreadableFile(t *testing.T) {
	dir := t.TempDir()

	_, err := project.Load(dir)
	require.Error(t, err)

	var fileErr *project.FileError
	require.True(t, errors.As(err, &fileErr))
	assert.Equal(t, dir, fileErr.Path)
}

func TestResolve_Defaults(t *testing.T) {
	s := project.Resolve(project.Map{})

	assert.Equal(t, project.Settings{
		ProjectName:   "RapidTriageME",
		RepositoryURL: "https://github.com/YarlisAISolutions/rapidtriageME",
		Provider:      "CLOUDFLARE",
		Region:        "GLOBAL",
		Domain:        "rapidtriage.me",
		Description:   "Remote Browser Tools MCP Platform",
	}, s)
}

func TestResolve_PresentKeyOverridesDefault(t *testing.T) {
	s := project.Resolve(project.Map{"REGION": "EU", "PROVIDER": ""})

	assert.Equal(t, "EU", s.Region)
	assert.Equal(t, "", s.Provider)
	assert.Equal(t, project.DefaultDomain, s.Domain)
}

func TestOpen(t *testing.T) {
	path := writeProjectFile(t, "REPOSITORY_URL=https://github.com/Org/Repo\nDOMAIN=example.dev\n")

	p, err := project.Open(path)
	require.NoError(t, err)

	assert.Equal(t, "Org", p.Derived.Org)
	assert.Equal(t, "Repo", p.Derived.Repo)
	assert.Equal(t, "https://docs.example.dev", p.Derived.DocsURL)
	assert.Equal(t, "RapidTriageME Documentation", p.SiteConfig().SiteName)
}

func TestOpen_PropagatesFileError(t *testing.T) {
	_, err := project.Open(t.TempDir())

	var fileErr *project.FileError
	assert.ErrorAs(t, err, &fileErr)
}
