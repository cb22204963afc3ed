// Package domain defines the core business entities for issueblog.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawIssue: An issue record as supplied by the issue tracker
//   - ParsedPostData: Metadata and content extracted from an issue body
//   - Post: A normalised, locale-resolved blog post
//   - Heading: A markdown heading used for tables of contents
//   - Settings: Application configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
