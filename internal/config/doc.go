// Package config provides configuration management for the RapidTriage tools.
//
// Configuration is loaded from environment variables using the env package.
// Each binary has its own struct; all values have defaults suitable for local
// development, so neither binary needs flags.
//
// Example usage:
//
//	cfg, err := config.LoadServer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("test server will listen on %s\n", cfg.GetHTTPAddr())
package config
