package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aescanero/rapidtriage/internal/config"
	"github.com/aescanero/rapidtriage/internal/logging"
	"github.com/aescanero/rapidtriage/internal/project"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadProject()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel)
	defer logger.Sync()

	p, err := project.Open(cfg.File)
	if err != nil {
		logger.Fatal("failed to load project file", zap.String("path", cfg.File), zap.Error(err))
	}

	printProject(os.Stdout, p)

	if cfg.MkDocsOutput != "" {
		if err := p.SiteConfig().WriteFile(cfg.MkDocsOutput); err != nil {
			logger.Fatal("failed to write site config", zap.String("path", cfg.MkDocsOutput), zap.Error(err))
		}
		logger.Info("site config written", zap.String("path", cfg.MkDocsOutput))
	}
}

func printProject(w io.Writer, p *project.Project) {
	fmt.Fprintln(w, "Project Configuration:")
	fmt.Fprintf(w, "  Name: %s\n", p.Settings.ProjectName)
	fmt.Fprintf(w, "  Repository: %s\n", p.Settings.RepositoryURL)
	fmt.Fprintf(w, "  Domain: %s\n", p.Settings.Domain)
	fmt.Fprintf(w, "  Docs URL: %s\n", p.Derived.DocsURL)
	fmt.Fprintf(w, "  GitHub Org: %s\n", p.Derived.Org)
	fmt.Fprintf(w, "  GitHub Repo: %s\n", p.Derived.Repo)
}
