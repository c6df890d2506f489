// Package diagnostic provides structured errors, warnings and infos for
// registry configuration checks.
//
// Diagnostics are accumulated rather than returned one at a time, so a
// single pass reports every problem of a configuration. Each diagnostic
// carries a stable code, the resource type and field it concerns, and
// optional "did you mean" suggestions.
package diagnostic
