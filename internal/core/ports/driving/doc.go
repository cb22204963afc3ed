// Package driving defines the interfaces that the outside world calls IN to core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI, HTTP API and MCP adapters depend on these interfaces, and core
// services implement them.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or service package
package driving
