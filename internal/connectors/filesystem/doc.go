// Package filesystem serves issues from a directory of JSON dumps.
//
// Each *.json file holds one GitHub issue object or an array of them, in
// the shape returned by the GitHub REST API. The directory is typically
// produced by "issueblog export" and lets a blog be previewed offline.
//
// Label and state filtering, newest-first ordering and pagination are done
// locally so the source behaves like the GitHub one. [Source.Watch]
// reports dump changes, which the server uses to drop cached pages.
package filesystem
