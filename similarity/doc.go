// Package similarity scores how alike two phonemes are in mouth shape.
//
// The Engine compares phonemes by the Euclidean distance between their chart
// positions, normalized by the diagonal of their category's plane and
// discounted when the binary feature (roundedness or voicing) differs:
//
//	similarity = clamp((1 - d/maxDiagonal) * penalty, 0, 1)
//
// Vowels and consonants are incomparable: their similarity is 0 and their
// distance is +Inf. On top of the pairwise score the Engine builds similarity
// matrices, ranks nearest neighbors, and partitions phonemes with a seeded
// k-means.
//
// An Engine works on an immutable snapshot of a catalog and its feature
// vectors. Reload swaps the snapshot atomically, and View pins one snapshot
// for callers that issue several related queries.
package similarity
