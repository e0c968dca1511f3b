// Package trend holds the domain model of a monitoring run and the keyword
// heuristics that annotate each candidate repository.
//
// [Annotator.Annotate] is a pure function from a description and a star
// count to an ordered list of commentary lines. [Build] turns the candidates
// returned by the source client into a [Report] without reordering,
// filtering or deduplicating them.
package trend
