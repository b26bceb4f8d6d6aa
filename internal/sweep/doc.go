// Package sweep drives many generation trials per length over a range of
// lengths and reduces each length to one summary point.
//
// It imports only core packages and its worker/logging libraries; CLI,
// writers and apps sit above it.
package sweep
