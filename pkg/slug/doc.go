// Package slug derives URL-safe identifiers from human-readable names.
//
// The normalization pipeline is fixed: lowercase, whitespace runs become a
// single hyphen, everything outside [a-z0-9-] is stripped, hyphen runs are
// collapsed, and leading/trailing hyphens are trimmed. The result is stable
// under repeated application, which lets callers store slugs and re-derive
// them without drift.
//
// # Usage
//
//	base := slug.Make("Jay's Barbershop") // "jays-barbershop"
//	if base == "" {
//		base = "page-" + slug.Random(6)
//	}
//
// Uniqueness is a caller concern: this package only normalizes. See the
// booking allocator for the collision-probing loop built on top of it.
package slug
