// Package config provides configuration loading, merging, and validation
// facilities for the recipebook server.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//
//  1. Environment variables (caarlos0/env struct tags)
//  2. Command-line flags
//  3. An optional JSON file whose path comes from the first two sources
//
// The sources are merged with mergo and the result is validated before the
// application starts.
package config
