// Package nodeconfig serves per-node JSON configuration.
//
// A node asks for its configuration with GET /<node-name>. The server starts from
// a fixed set of defaults and applies the node's override file, if any; the result
// is returned as a JSON object. Failures never reach the node: a missing or broken
// override file is logged and the defaults are served.
//
// # Node names
//
// The request path is trimmed of slashes and hyphens become underscores, so
// GET /non-existent-node reads non_existent_node.toml. Names that could leave the
// nodes directory (separators, "..") are rejected before any file access.
//
// # Override files
//
// Files are read on every request from a source.Source and decoded by a
// format.Format (TOML by default, YAML or the legacy dict(...) literal).
// Only boolean and integer values are accepted. Keys without a default are
// passed through to the node unchanged.
//
// # HTTP Endpoints
//
//   - GET /             : empty 200 response.
//   - GET /favicon.ico  : empty 200 response.
//   - GET /<node-name>  : resolved configuration as JSON.
package nodeconfig
