package project

import (
	"fmt"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"
)

const (
	editURI       = "edit/main/docs/"
	copyrightHome = "https://yarlis.ai"
)

// SiteConfig is the MkDocs metadata derived from a project
type SiteConfig struct {
	SiteName        string    `yaml:"site_name"`
	SiteURL         string    `yaml:"site_url"`
	RepoURL         string    `yaml:"repo_url"`
	RepoName        string    `yaml:"repo_name"`
	SiteDescription string    `yaml:"site_description"`
	SiteAuthor      string    `yaml:"site_author"`
	EditURI         string    `yaml:"edit_uri"`
	Copyright       string    `yaml:"copyright"`
	Extra           SiteExtra `yaml:"extra"`
}

// SiteExtra carries project values exposed to templates
type SiteExtra struct {
	Provider  string `yaml:"provider"`
	Region    string `yaml:"region"`
	Domain    string `yaml:"domain"`
	IssuesURL string `yaml:"issues_url"`
}

// NewSiteConfig assembles the site metadata from resolved and derived values
func NewSiteConfig(s Settings, d Derived) SiteConfig {
	return SiteConfig{
		SiteName:        s.ProjectName + " Documentation",
		SiteURL:         d.DocsURL,
		RepoURL:         s.RepositoryURL,
		RepoName:        d.RepoName(),
		SiteDescription: s.Description + " - Complete Documentation",
		SiteAuthor:      d.Org,
		EditURI:         editURI,
		Copyright: fmt.Sprintf(`&copy; 2025 <a href="%s" target="_blank" rel="noopener">%s</a>`,
			copyrightHome, d.Org),
		Extra: SiteExtra{
			Provider:  s.Provider,
			Region:    s.Region,
			Domain:    s.Domain,
			IssuesURL: d.IssuesURL,
		},
	}
}

// YAML returns the YAML encoding of c
func (c SiteConfig) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal site config: %w", err)
	}
	return data, nil
}

// WriteFile atomically replaces path with the YAML encoding of c
func (c SiteConfig) WriteFile(path string) error {
	data, err := c.YAML()
	if err != nil {
		return err
	}

	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write site config: %w", err)
	}

	return nil
}
