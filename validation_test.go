package ragconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRejectsOutOfRangeScalars(t *testing.T) {
	tests := []struct {
		name  string
		raw   map[string]any
		field string
	}{
		{"zero chunk size", map[string]any{"chunk_size": 0}, "chunk_size"},
		{"negative chunk size", map[string]any{"chunk_size": -100}, "chunk_size"},
		{"negative chunk overlap", map[string]any{"chunk_overlap": -1}, "chunk_overlap"},
		{"overlap >= chunk size", map[string]any{"chunk_size": 100, "chunk_overlap": 100}, "chunk_overlap"},
		{"zero top_k", map[string]any{"top_k": 0}, "top_k"},
		{"empty model name", map[string]any{"llm_model_name": ""}, "llm_model_name"},
		{"empty table name", map[string]any{"table_name": ""}, "table_name"},
		{"empty collection name", map[string]any{
			"vector_store_config": map[string]any{"collection_name": ""},
		}, "vector_store_config.collection_name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.raw)
			assert.Nil(t, cfg)
			require.Error(t, err)

			var verrs ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.True(t, verrs.HasKind(KindInvalidValue))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	assert.NoError(t, DefaultRAGConfig().Validate())
}

func TestValidationErrorFormat(t *testing.T) {
	err := &ValidationError{
		Kind:    KindUnknownField,
		Field:   "vector_store_config.colection_name",
		Message: `unknown field "colection_name"`,
	}
	assert.Equal(t,
		`config validation error [vector_store_config.colection_name]: unknown field "colection_name"`,
		err.Error())
}

func TestValidationErrorsFormat(t *testing.T) {
	single := ValidationErrors{{Kind: KindInvalidValue, Field: "top_k", Message: "top_k must be positive, got 0"}}
	assert.Equal(t, "config validation error [top_k]: top_k must be positive, got 0", single.Error())

	multi := ValidationErrors{
		{Kind: KindUnknownField, Field: "bogus", Message: `unknown field "bogus"`},
		{Kind: KindTypeMismatch, Field: "chunk_size", Message: "expected an integer, got string (big)"},
	}
	msg := multi.Error()
	assert.Contains(t, msg, "found 2 configuration error(s)")
	assert.Contains(t, msg, "1. [bogus]")
	assert.Contains(t, msg, "2. [chunk_size]")

	assert.Empty(t, ValidationErrors{}.Error())
}

func TestHasKind(t *testing.T) {
	errs := ValidationErrors{
		{Kind: KindUnknownField, Field: "bogus", Message: "x"},
	}
	assert.True(t, errs.HasKind(KindUnknownField))
	assert.False(t, errs.HasKind(KindInvalidEnum))
}
