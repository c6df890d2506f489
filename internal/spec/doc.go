// Package spec provides the declarative Specification of a resource type,
// the override objects it is built from, and the YAML registry configuration
// format.
//
// A Specification answers "how is a resource of this type sliced out of a
// record":
//
//   - which field holds the identifier (default "id")
//   - which fields are attributes (unset: every scalar field)
//   - which fields are relationships (unset: inferred from record shape)
//   - which relationships are side-loaded as included resources
//     (unset: all of them, recursively; dot paths select nested ones)
//   - which fields are ignored entirely
//   - per-relationship nested specifications
//
// # Nested specifications
//
// A nested entry is a tagged variant:
//
//   - Explicit: a complete Specification to use for the relationship
//   - Named: a type name, resolved through a registry when registered,
//     otherwise used as a bare type label with inferred fields
//   - Absent: no entry; the caller falls back to the registry and then to
//     the relationship field name as the type
//
// Inline override objects (Inline) are compiled into Explicit entries when a
// Specification is constructed; their type defaults to the field name.
//
// # Configuration file
//
//	version: "1"
//	types:
//	  users:
//	    attributes: [email]
//	    ignored: passwordHash
//	    included: [profile, posts.comments]
//	    nested:
//	      friends: users
//	      profile:
//	        type: userProfile
//	        attributes: name
//
// List fields accept a single string or a list of strings.
//
// A Specification is immutable: every derived configuration is a new value.
package spec
