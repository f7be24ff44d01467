// Package imports turns Java import declarations into the package names they
// depend on, and filters those packages against a list of excluded prefixes.
//
// # Resolution
//
// [Resolve] maps a single [Import] to its owning package:
//
//   - A regular import drops the last dot-segment ("com.acme.util.Strings"
//     resolves to "com.acme.util"). A name without a qualifier resolves to
//     [DefaultPackage].
//   - A static import drops the last segment (the imported member) and then
//     keeps only the leading run of segments that start with a lowercase
//     letter, stopping at the first TitleCase segment, which is taken to be
//     a type name ("com.acme.Util.MAX" resolves to "com.acme").
//
// The static rule relies on the lowercase-package / TitleCase-type naming
// convention. Inputs that break the convention resolve to a truncated or
// empty package name, never to an error. Keep it that way: changing the rule
// changes the graph users already rely on.
//
// # Exclusions
//
// [Exclusions] is a prefix filter. Any entry that the candidate package
// starts with excludes it, so "java" excludes "java.util" and "javax.swing"
// alike.
package imports
