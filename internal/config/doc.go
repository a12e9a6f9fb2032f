// Package config provides configuration management for greetd.
//
// Configuration is loaded from environment variables using the env package.
// All configuration values have sensible defaults, so the server runs with
// no environment set at all: port 8888, all interfaces.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("HTTP server will listen on %s\n", cfg.GetHTTPAddr())
package config
