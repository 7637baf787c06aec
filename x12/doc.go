// Package x12 provides the core types for ASC X12 005010 EDI messages:
// delimiters, fields, segments, locations, and diagnostics. It has no
// knowledge of loops, transaction sets, or schemas — those live in the
// schema, dispatch, model, and validate packages built on top of it.
package x12
