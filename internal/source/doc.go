// Package source reads import payloads and pages from either a local path or
// an http(s) URL.
package source
