// Package config provides configuration loading, merging, and validation
// facilities for the SDK client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. A dotenv file (".env" unless VCARDS_DOTENV names another one)
//  3. Environment variables, all prefixed with VCARDS_
//  4. JSON config file (path from VCARDS_CONFIG)
//
// The main entry point is [GetClientConfig]. Command-line flags are never
// parsed: the SDK is a library and the process flags belong to its host.
package config
