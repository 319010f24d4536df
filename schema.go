package ragconfig

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/spf13/cast"
)

type fieldKind int

const (
	kindString fieldKind = iota
	kindInt
	kindEnum
	kindNested
	kindOpaque
	kindOpaqueList
)

// field declares one settable key: its expected shape, its default when
// absent, and for enum/nested kinds the coercion to apply.
type field struct {
	kind       fieldKind
	defaultVal func() any
	parseEnum  func(string) (any, error)
	nested     *schema
}

// schema is a closed set of field declarations. Any key outside the set
// fails the whole load.
type schema struct {
	fields map[string]field
}

var vectorStoreSchema = &schema{
	fields: map[string]field{
		"vector_store_type": {
			kind:       kindEnum,
			defaultVal: func() any { return VectorStoreChromaDB },
			parseEnum:  func(s string) (any, error) { return ParseVectorStoreType(s) },
		},
		"collection_name":   {kind: kindString, defaultVal: func() any { return DefaultCollectionName }},
		"persist_directory": {kind: kindString, defaultVal: func() any { return "" }},
		"connection_string": {kind: kindString, defaultVal: func() any { return "" }},
	},
}

var topLevelSchema = &schema{
	fields: map[string]field{
		"retriever_type": {
			kind:       kindEnum,
			defaultVal: func() any { return RetrieverVectorStore },
			parseEnum:  func(s string) (any, error) { return ParseRetrieverType(s) },
		},
		"multi_retriever_mode": {
			kind:       kindEnum,
			defaultVal: func() any { return MultiVectorBoth },
			parseEnum:  func(s string) (any, error) { return ParseMultiVectorRetrieverMode(s) },
		},
		"embedding_model":     {kind: kindOpaque},
		"documents":           {kind: kindOpaqueList},
		"vector_store_config": {kind: kindNested, nested: vectorStoreSchema},
		"llm_model_name":      {kind: kindString, defaultVal: func() any { return DefaultLLMModel }},
		"table_name":          {kind: kindString, defaultVal: func() any { return DefaultTableName }},
		"chunk_size":          {kind: kindInt, defaultVal: func() any { return DefaultChunkSize }},
		"chunk_overlap":       {kind: kindInt, defaultVal: func() any { return DefaultChunkOverlap }},
		"top_k":               {kind: kindInt, defaultVal: func() any { return DefaultTopK }},
	},
}

// keys returns the recognized field names in sorted order, for error
// messages.
func (s *schema) keys() []string {
	out := make([]string, 0, len(s.fields))
	for name := range s.fields {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// normalize runs the single validation pass for one nesting level:
// unknown-key check, per-field coercion, default fill. The returned map
// holds one coerced value per declared field; nested fields hold the
// normalized map of their own schema. All failures are collected.
func (s *schema) normalize(raw map[string]any, path string) (map[string]any, ValidationErrors) {
	var errs ValidationErrors

	supplied := make([]string, 0, len(raw))
	for key := range raw {
		supplied = append(supplied, key)
	}
	sort.Strings(supplied)
	for _, key := range supplied {
		if _, ok := s.fields[key]; !ok {
			errs = append(errs, ValidationError{
				Kind:  KindUnknownField,
				Field: fieldPath(path, key),
				Message: fmt.Sprintf("unknown field %q (valid fields: %s)",
					key, strings.Join(s.keys(), ", ")),
			})
		}
	}

	out := make(map[string]any, len(s.fields))
	for name, spec := range s.fields {
		fp := fieldPath(path, name)
		value, present := raw[name]
		if !present {
			switch spec.kind {
			case kindNested:
				nested, nerrs := spec.nested.normalize(map[string]any{}, fp)
				errs = append(errs, nerrs...)
				out[name] = nested
			case kindOpaque, kindOpaqueList:
				out[name] = nil
			default:
				out[name] = spec.defaultVal()
			}
			continue
		}

		switch spec.kind {
		case kindString:
			str, ok := value.(string)
			if !ok {
				errs = append(errs, typeMismatch(fp, "a string", value))
				continue
			}
			out[name] = str

		case kindInt:
			n, ok := coerceInt(value)
			if !ok {
				errs = append(errs, typeMismatch(fp, "an integer", value))
				continue
			}
			out[name] = n

		case kindEnum:
			str, ok := value.(string)
			if !ok {
				errs = append(errs, typeMismatch(fp, "a string", value))
				continue
			}
			parsed, err := spec.parseEnum(str)
			if err != nil {
				errs = append(errs, ValidationError{
					Kind:    KindInvalidEnum,
					Field:   fp,
					Message: err.Error(),
				})
				continue
			}
			out[name] = parsed

		case kindNested:
			switch value.(type) {
			case map[string]any, map[any]any:
			default:
				errs = append(errs, typeMismatch(fp, "a mapping", value))
				continue
			}
			m, err := cast.ToStringMapE(value)
			if err != nil {
				errs = append(errs, typeMismatch(fp, "a mapping", value))
				continue
			}
			nested, nerrs := spec.nested.normalize(m, fp)
			errs = append(errs, nerrs...)
			out[name] = nested

		case kindOpaque:
			out[name] = value

		case kindOpaqueList:
			seq, err := cast.ToSliceE(value)
			if err != nil {
				errs = append(errs, typeMismatch(fp, "a sequence", value))
				continue
			}
			out[name] = seq
		}
	}

	return out, errs
}

func fieldPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func typeMismatch(fp, want string, got any) ValidationError {
	return ValidationError{
		Kind:    KindTypeMismatch,
		Field:   fp,
		Message: fmt.Sprintf("expected %s, got %T (%v)", want, got, got),
	}
}

// coerceInt accepts any integral numeric representation: Go ints from a
// native mapping or yaml.v3, float64 from JSON decoding. Fractional
// floats and non-numeric values are rejected.
func coerceInt(v any) (int, bool) {
	switch n := v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return cast.ToInt(n), true
	case float32:
		f := float64(n)
		if f != math.Trunc(f) {
			return 0, false
		}
		return int(f), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}
