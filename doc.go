// Package ragconfig normalizes loosely-typed RAG settings mappings into
// a validated, fully populated pipeline configuration.
//
// The input is a generic map[string]any as produced by an agent or tool
// configuration surface (or a decoded YAML document). Load checks every
// key against a closed settings schema, coerces strings onto closed
// enumerations, recursively normalizes the nested vector store mapping,
// fills absent fields from documented defaults, and returns either a
// complete RAGConfig or a ValidationErrors pinpointing each invalid key
// or value. Typos never pass silently.
//
// The loader is a pure synchronous function with no shared state; it is
// safe for concurrent use.
package ragconfig
