// Package services implements the driving port interfaces.
// Services hold the blog logic and orchestrate calls to driven ports:
// PostService turns labelled issues into posts, ExportService dumps them
// for offline use and SettingsService resolves configuration.
package services
