// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - IssueSource: Lists labelled issues from the issue tracker
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - IssueCache: Backing store for the issue page reuse window.
//     Without it every read goes to the issue tracker.
//   - TokenProvider: Access tokens for the issue tracker API.
//     Without it the tracker is accessed anonymously.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
