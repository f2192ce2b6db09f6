// Package project loads the flat .project file shared by the RapidTriage tooling.
//
// A .project file holds one KEY=VALUE pair per line. Missing keys fall back to
// built-in defaults, and the repository URL is split into the GitHub org and
// repo used by the documentation site.
//
// Example usage:
//
//	p, err := project.Open(".project")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("docs live at %s\n", p.Derived.DocsURL)
package project
