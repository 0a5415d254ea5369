// Package api handles incoming HTTP requests and response formatting. It
// adapts the decision table to HTTP: a liveness probe, the profile listing,
// the per-profile decision lookup, and the OpenAPI documentation pages.
package api
