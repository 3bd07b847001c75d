// Package schema parses and validates the //enum: directives attached to an
// enumeration and its variants.
//
// # Enumeration directives
//
// Directives on the type declaration may repeat; they merge, and a later
// occurrence of the same sub-form overwrites the earlier one:
//
//	//enum:name(base = "title case")
//	//enum:name(extra(plural = "title case plural", lower = "title case lower"))
//	//enum:name(pluralizer(base, plural))
//	//enum:predicates
//	//enum:variants(chain)
//
// Several sub-forms may share one name(...). A bare //enum:name requests
// accessors without declaring rules, which fails unless a base rule is
// declared elsewhere.
//
// # Variant directives
//
//	//enum:name = "Baz"                  // override of the base key
//	//enum:name(plural = "Quuxes")       // override of any declared key
//
// # Format literals
//
// "title case", "title case lower", "title case plural" and
// "title case lower plural". Literals follow Go string syntax, so raw
// strings work too.
//
// # Validation
//
// Parse fails on the first violation with a *SchemaError carrying the
// directive position: MissingBase, UnknownKey, ReservedKeyName,
// DuplicateOverride, AccessorCollision, InvalidFormat or Syntax.
// ShapeError is reported by the variant enumerator for payload-bearing or
// empty enumerations.
package schema
