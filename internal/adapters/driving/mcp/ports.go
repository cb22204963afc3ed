package mcp

import (
	"github.com/custodia-labs/issueblog/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the MCP server.
type Ports struct {
	// Posts serves blog posts.
	Posts driving.PostService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Posts == nil {
		return ErrMissingPostService
	}
	return nil
}
