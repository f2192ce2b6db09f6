package project

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// Recognized .project keys
const (
	KeyProjectName   = "PROJECT_NAME"
	KeyRepositoryURL = "REPOSITORY_URL"
	KeyProvider      = "PROVIDER"
	KeyRegion        = "REGION"
	KeyDomain        = "DOMAIN"
	KeyDescription   = "DESCRIPTION"
)

// Defaults used when a key is absent from the .project file
const (
	DefaultProjectName   = "RapidTriageME"
	DefaultRepositoryURL = "https://github.com/YarlisAISolutions/rapidtriageME"
	DefaultProvider      = "CLOUDFLARE"
	DefaultRegion        = "GLOBAL"
	DefaultDomain        = "rapidtriage.me"
	DefaultDescription   = "Remote Browser Tools MCP Platform"
)

// Map is the raw key/value content of a .project file
type Map map[string]string

// FileError is returned when a .project file exists but cannot be read
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("read project file %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Load parses the .project file at path.
// A missing file yields an empty map and no error.
func Load(path string) (Map, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Map{}, nil
	}
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	defer f.Close()

	m := Map{}
	r := bufio.NewReader(f)
	for {
		// Lines have no length limit
		raw, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, &FileError{Path: path, Err: err}
		}

		parseLine(m, raw)

		if err != nil {
			return m, nil
		}
	}
}

func parseLine(m Map, raw string) {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}

	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return
	}
	m[strings.TrimSpace(key)] = strings.TrimSpace(value)
}

// Settings holds the resolved .project values
type Settings struct {
	ProjectName   string
	RepositoryURL string
	Provider      string
	Region        string
	Domain        string
	Description   string
}

// Resolve applies defaults for every key missing from m.
// A key present with an empty value stays empty.
func Resolve(m Map) Settings {
	get := func(key, def string) string {
		if v, ok := m[key]; ok {
			return v
		}
		return def
	}

	return Settings{
		ProjectName:   get(KeyProjectName, DefaultProjectName),
		RepositoryURL: get(KeyRepositoryURL, DefaultRepositoryURL),
		Provider:      get(KeyProvider, DefaultProvider),
		Region:        get(KeyRegion, DefaultRegion),
		Domain:        get(KeyDomain, DefaultDomain),
		Description:   get(KeyDescription, DefaultDescription),
	}
}

// Project is the immutable result of loading a .project file.
// It is built once at startup and handed to whoever needs it.
type Project struct {
	Settings Settings
	Derived  Derived
}

// Open loads, resolves and derives the project at path
func Open(path string) (*Project, error) {
	m, err := Load(path)
	if err != nil {
		return nil, err
	}

	settings := Resolve(m)
	return &Project{
		Settings: settings,
		Derived:  Derive(settings),
	}, nil
}

// SiteConfig returns the documentation site metadata for the project
func (p *Project) SiteConfig() SiteConfig {
	return NewSiteConfig(p.Settings, p.Derived)
}
