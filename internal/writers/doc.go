// Package writers persists finished sweeps as files.
//
// Design:
//   • Writers own file naming and layout; formatting lives in internal/output.
//   • Nothing is written until the sweep has completed.
//   • Each file goes to a temp name in the target directory and is renamed.
package writers
