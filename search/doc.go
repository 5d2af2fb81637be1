// Package search provides step producers for Binary Search over a sorted
// sequence and Knuth-Morris-Pratt substring search.
//
// Binary probes the midpoint floor((low+high)/2) of the remaining window,
// emitting Visit for the probed position followed by a Compare against the
// target, and ends with Found or NotFound. An empty input yields no events.
//
// KMP builds the longest-proper-prefix-suffix table up front without events,
// then emits one Compare per character test and one Found per occurrence.
// After a match the pattern index falls back to lps[j-1], so occurrences may
// overlap ("AA" occurs three times in "AAAA").
package search
