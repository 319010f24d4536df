package ragconfig

import (
	"fmt"
	"strings"
)

// ErrorKind categorizes a single validation failure.
type ErrorKind string

const (
	// KindUnknownField marks a key not declared in the settings schema.
	KindUnknownField ErrorKind = "unknown_field"
	// KindInvalidEnum marks a string outside a closed enum set.
	KindInvalidEnum ErrorKind = "invalid_enum"
	// KindTypeMismatch marks a value of incompatible shape.
	KindTypeMismatch ErrorKind = "type_mismatch"
	// KindInvalidValue marks a well-typed value outside its allowed range.
	KindInvalidValue ErrorKind = "invalid_value"
)

// ValidationError represents a single configuration validation error.
// Field is the dotted path of the offending key, e.g.
// "vector_store_config.collection_name".
type ValidationError struct {
	Kind    ErrorKind
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error [%s]: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors. Load collects
// every failure of the single validation pass before aborting.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return (&errs[0]).Error()
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("found %d configuration error(s):\n", len(errs)))
	for i, err := range errs {
		b.WriteString(fmt.Sprintf("  %d. [%s] %s\n", i+1, err.Field, err.Message))
	}
	return b.String()
}

// HasKind reports whether any collected error is of kind k.
func (errs ValidationErrors) HasKind(k ErrorKind) bool {
	for _, err := range errs {
		if err.Kind == k {
			return true
		}
	}
	return false
}

// Validate range-checks the assembled configuration. Load calls it
// before returning; it is exported so callers mutating a copy of a
// loaded configuration can re-check it.
func (c *RAGConfig) Validate() error {
	var errs ValidationErrors

	if c.ChunkSize <= 0 {
		errs = append(errs, ValidationError{
			Kind:    KindInvalidValue,
			Field:   "chunk_size",
			Message: fmt.Sprintf("chunk_size must be positive, got %d", c.ChunkSize),
		})
	}
	if c.ChunkOverlap < 0 {
		errs = append(errs, ValidationError{
			Kind:    KindInvalidValue,
			Field:   "chunk_overlap",
			Message: fmt.Sprintf("chunk_overlap must be non-negative, got %d", c.ChunkOverlap),
		})
	}
	if c.ChunkSize > 0 && c.ChunkOverlap >= c.ChunkSize {
		errs = append(errs, ValidationError{
			Kind:    KindInvalidValue,
			Field:   "chunk_overlap",
			Message: fmt.Sprintf("chunk_overlap (%d) must be less than chunk_size (%d)", c.ChunkOverlap, c.ChunkSize),
		})
	}
	if c.TopK <= 0 {
		errs = append(errs, ValidationError{
			Kind:    KindInvalidValue,
			Field:   "top_k",
			Message: fmt.Sprintf("top_k must be positive, got %d", c.TopK),
		})
	}
	if c.LLMModelName == "" {
		errs = append(errs, ValidationError{
			Kind:    KindInvalidValue,
			Field:   "llm_model_name",
			Message: "llm_model_name must not be empty",
		})
	}
	if c.TableName == "" {
		errs = append(errs, ValidationError{
			Kind:    KindInvalidValue,
			Field:   "table_name",
			Message: "table_name must not be empty",
		})
	}
	if c.VectorStoreConfig.CollectionName == "" {
		errs = append(errs, ValidationError{
			Kind:    KindInvalidValue,
			Field:   "vector_store_config.collection_name",
			Message: "collection_name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
