// Package psapi defines the public types and interfaces for the PhotoShelter
// API client. It covers both API namespaces: v4 (plain JSON responses) and v3
// (responses wrapped in a data envelope).
//
// Use github.com/skylight-io/psapi-client/pkg/psclient to construct clients.
package psapi
