// Package logx provides the structured logger the growth driver and CLI
// use for per-iteration and per-command status lines.
//
// Adapted from perf-analysis's pkg/utils logger: same leveled-interface
// plus WithField/WithFields shape, trimmed to the three implementations
// this module actually wires (Default, Null, Std) and renamed away from
// the generic "utils" package the teacher buried it in.
package logx
