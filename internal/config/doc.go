// Package config provides configuration loading, merging, and validation
// facilities for the wallet daemon.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (WALLET_ prefix)
//  3. Command-line flags
//  4. JSON or YAML config file
//
// The main entry points are [GetStructuredConfig] for the merged view and
// [GetClientConfig] for the validated daemon configuration.
package config
