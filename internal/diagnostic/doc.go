// Package diagnostic provides location-tagged errors and warnings reported
// while generating enumeration helpers.
//
// Generation is all-or-nothing per enumeration: a failing enumeration
// contributes exactly one error diagnostic and no output, while the other
// enumerations of the same run are unaffected.
package diagnostic
