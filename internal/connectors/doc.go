// Package connectors provides implementations of the IssueSource port.
// Each connector knows how to list labelled issues from one place: the
// GitHub REST API or a directory of exported issue dumps.
package connectors
