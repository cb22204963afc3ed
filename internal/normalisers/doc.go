// Package normalisers holds the implementations of the PostNormaliser port.
// The post subpackage extracts blog posts from issue bodies.
package normalisers
