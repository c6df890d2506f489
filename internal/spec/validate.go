package spec

import (
	"fmt"
	"maps"
	"slices"

	"resource-assembler/internal/diagnostic"
	"resource-assembler/internal/match"
)

const maxSuggestions = 3

// Validate checks a registry configuration. This is a structural check only;
// records are never consulted. Every problem is reported, none is fatal.
func Validate(cfg *Config) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if cfg == nil {
		res.AddError("config_is_nil", "config is nil", "", "")
		return res
	}

	known := cfg.TypeNames()

	for _, name := range known {
		if name == "" {
			res.AddError("empty_type", "type name is empty", "", "")
			continue
		}

		validateOverride(res, known, name, "", cfg.Types[name])
	}

	return res
}

// validateOverride checks one override object. loc is the location of the
// object under its type ("" for the type itself, "nested.profile" for an
// inline entry).
func validateOverride(res *diagnostic.Diagnostics, known []string, typ, loc string, o Override) {
	idField := o.ID
	if idField == "" {
		idField = DefaultIDField
	}

	if o.Ignored.Contains(idField) {
		res.AddError("id_ignored",
			fmt.Sprintf("identifier field %q is ignored", idField), typ, JoinPath(loc, "ignored", idField))
	}

	for _, attr := range o.Attributes {
		switch {
		case o.Ignored.Contains(attr):
			res.AddWarning("attribute_ignored",
				fmt.Sprintf("attribute %q is also ignored and will never be emitted", attr),
				typ, JoinPath(loc, "attributes", attr))
		case attr == idField:
			res.AddInfo("attribute_is_id",
				fmt.Sprintf("identifier field %q is never emitted as an attribute", attr),
				typ, JoinPath(loc, "attributes", attr))
		}
	}

	for _, rel := range o.Relationships {
		if o.Ignored.Contains(rel) {
			res.AddWarning("relationship_ignored",
				fmt.Sprintf("relationship %q is also ignored and will never be emitted", rel),
				typ, JoinPath(loc, "relationships", rel))
		}
	}

	validateIncluded(res, typ, loc, o)

	for _, field := range slices.Sorted(maps.Keys(o.Nested)) {
		validateNested(res, known, typ, JoinPath(loc, "nested", field), field, o)
	}
}

func validateIncluded(res *diagnostic.Diagnostics, typ, loc string, o Override) {
	for _, path := range o.Included {
		at := JoinPath(loc, "included", path)

		if err := ValidatePath(path); err != nil {
			res.AddError("invalid_path", err.Error(), typ, at)
			continue
		}

		head, _ := SplitPath(path)

		switch {
		case o.Ignored.Contains(head):
			res.AddWarning("included_ignored",
				fmt.Sprintf("included relationship %q is ignored", head), typ, at)
		case o.Relationships.IsSet() && !o.Relationships.Contains(head):
			res.AddWarning("included_not_relationship",
				fmt.Sprintf("included relationship %q is not a declared relationship", head), typ, at,
				match.Suggest(head, o.Relationships, maxSuggestions)...)
		}
	}
}

func validateNested(res *diagnostic.Diagnostics, known []string, typ, at, field string, parent Override) {
	if parent.Ignored.Contains(field) {
		res.AddWarning("nested_ignored",
			fmt.Sprintf("nested specification for ignored field %q is never used", field), typ, at)
	}

	n := parent.Nested[field]

	switch n.Kind() {
	case NestedNamed:
		name := n.Name()

		switch {
		case name == "":
			res.AddError("empty_type", "nested type name is empty", typ, at)
		case slices.Contains(known, name):
		default:
			suggestions := match.Suggest(name, known, maxSuggestions)
			msg := fmt.Sprintf("type %q is not registered; its fields are inferred", name)

			// a close registered name is most likely a typo
			if len(suggestions) > 0 {
				res.AddWarning("nested_type_inferred", msg, typ, at, suggestions...)
			} else {
				res.AddInfo("nested_type_inferred", msg, typ, at)
			}
		}
	case NestedInline:
		validateOverride(res, known, typ, at, *n.Override())
	case NestedExplicit, NestedAbsent:
	}
}
