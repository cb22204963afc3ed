// Package mcp provides an MCP (Model Context Protocol) server adapter for
// issueblog. It lets AI assistants list and read the blog's posts.
package mcp

import "errors"

// ErrMissingPostService is returned when the post service is not provided.
var ErrMissingPostService = errors.New("mcp: post service is required")
