// Package match ranks member names by similarity so that resolution errors
// can suggest what the caller probably meant.
//
// Key functions:
//   - Normalize: case-folds an identifier and strips separators
//   - Distance: Levenshtein edit distance over runes
//   - Similarity: normalized similarity score in [0, 1]
//   - Suggest: best candidates above a threshold
package match
