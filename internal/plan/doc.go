// Package plan provides the resolution pipeline that produces an EnumPlan
// consumed by code generation.
//
// Resolution pipeline:
//  1. Analyze packages → enumeration declarations
//  2. Parse directives → validated schema
//  3. For every variant and every declared format key, first match wins:
//     - the variant's explicit override for the key
//     - the key's rule applied to the variant's base override
//     - the key's rule applied to the variant identifier
//  4. Freeze the results into an immutable Table
package plan
