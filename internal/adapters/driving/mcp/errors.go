// Package mcp provides an MCP (Model Context Protocol) server adapter for growlaw.
// It enables AI assistants like Claude to grade documents, search the firm
// directory, and run visibility checks.
package mcp

import "errors"

// ErrMissingSearchService is returned when the firm search service is not provided.
var ErrMissingSearchService = errors.New("mcp: firm search service is required")

// ErrMissingGradingService is returned when the document grading service is not provided.
var ErrMissingGradingService = errors.New("mcp: document grading service is required")
