// Package config loads and validates the growth engine's tunable
// parameters (split threshold, force-kernel factors, worker count,
// seed iterations) from a YAML file via viper, in the same
// defaults-then-override shape perf-analysis's pkg/config uses for its
// service configuration.
package config
