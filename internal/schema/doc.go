// Package schema models the studio's directory taxonomy: which
// subdirectories (and permission strings) each hierarchy level carries,
// which subdirectory holds the next level down, and which creative
// programs exist per work part.
//
// A Schema is decoded from a TOML, YAML, or JSON document, validated once
// with Validate, and treated as immutable afterwards. Validation is total:
// a single missing attribute anywhere fails the whole load with ErrConfig,
// so configuration mistakes surface at process start rather than while
// directories are being created.
package schema
