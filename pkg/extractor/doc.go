// Package extractor turns parsed TypeScript files into a compact surface
// description: function signatures with reduced parameter types and top-level
// constants with their rendered type text. Parameter types are collapsed into
// four canonical shapes (primitive, enum, object, array) by a two-tier
// reducer that prefers the written annotation and falls back to rendered-text
// heuristics and declaration lookup. The package never rejects malformed
// input; it reports whatever declarations the parse recovered.
package extractor
