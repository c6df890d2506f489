// Package match ranks field and type names by similarity so that
// diagnostics can suggest what a misspelled name was meant to be.
//
// Key functions:
//   - NormalizeIdent: folds case and separators ("user_id", "userId" -> "userid")
//   - Levenshtein: edit distance between two names
//   - Rank: orders candidate names by normalized similarity to a target
//   - Suggest: the few closest candidates above a similarity threshold
package match
