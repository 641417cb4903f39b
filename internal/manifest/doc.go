// Package manifest reads, merges, and writes back the project's package.json.
// Merging is monotonic: script entries a user or a prior run already set are
// never replaced, only missing keys are added.
package manifest
