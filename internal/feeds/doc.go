// Package feeds reads RSS and Atom feeds as community signals for the
// trend report.
package feeds
