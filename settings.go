package ragconfig

import "fmt"

// RetrieverType selects the retrieval strategy for the pipeline.
type RetrieverType string

const (
	RetrieverVectorStore RetrieverType = "vector_store"
	RetrieverAuto        RetrieverType = "auto"
	RetrieverMulti       RetrieverType = "multi"
)

// ParseRetrieverType matches s against the closed retriever type set.
// Matching is exact and case-sensitive.
func ParseRetrieverType(s string) (RetrieverType, error) {
	switch RetrieverType(s) {
	case RetrieverVectorStore, RetrieverAuto, RetrieverMulti:
		return RetrieverType(s), nil
	}
	return "", fmt.Errorf("unknown retriever type %q (valid: %q, %q, %q)",
		s, RetrieverVectorStore, RetrieverAuto, RetrieverMulti)
}

// MultiVectorRetrieverMode controls how a multi-vector retriever derives
// sub-documents from source documents.
type MultiVectorRetrieverMode string

const (
	MultiVectorSplit     MultiVectorRetrieverMode = "split"
	MultiVectorSummarize MultiVectorRetrieverMode = "summarize"
	MultiVectorBoth      MultiVectorRetrieverMode = "both"
)

// ParseMultiVectorRetrieverMode matches s against the closed mode set.
func ParseMultiVectorRetrieverMode(s string) (MultiVectorRetrieverMode, error) {
	switch MultiVectorRetrieverMode(s) {
	case MultiVectorSplit, MultiVectorSummarize, MultiVectorBoth:
		return MultiVectorRetrieverMode(s), nil
	}
	return "", fmt.Errorf("unknown multi-vector retriever mode %q (valid: %q, %q, %q)",
		s, MultiVectorSplit, MultiVectorSummarize, MultiVectorBoth)
}

// VectorStoreType identifies the backing vector store implementation.
type VectorStoreType string

const (
	VectorStoreChromaDB VectorStoreType = "chromadb"
	VectorStorePGVector VectorStoreType = "pgvector"
	VectorStoreMilvus   VectorStoreType = "milvus"
)

// ParseVectorStoreType matches s against the closed store type set.
func ParseVectorStoreType(s string) (VectorStoreType, error) {
	switch VectorStoreType(s) {
	case VectorStoreChromaDB, VectorStorePGVector, VectorStoreMilvus:
		return VectorStoreType(s), nil
	}
	return "", fmt.Errorf("unknown vector store type %q (valid: %q, %q, %q)",
		s, VectorStoreChromaDB, VectorStorePGVector, VectorStoreMilvus)
}

// Documented defaults applied by Load for absent fields.
const (
	DefaultLLMModel       = "gpt-4o"
	DefaultTableName      = "embeddings"
	DefaultCollectionName = "default_collection"
	DefaultChunkSize      = 1000
	DefaultChunkOverlap   = 50
	DefaultTopK           = 10
)

// VectorStoreConfig describes the backing vector store. It is owned
// exclusively by its parent RAGConfig and not mutated after Load.
type VectorStoreConfig struct {
	Type           VectorStoreType `json:"vector_store_type" yaml:"vector_store_type"`
	CollectionName string          `json:"collection_name" yaml:"collection_name"`
	// PersistDirectory is the on-disk location for chromadb stores.
	PersistDirectory string `json:"persist_directory,omitempty" yaml:"persist_directory,omitempty"`
	// ConnectionString is the DSN for pgvector stores.
	ConnectionString string `json:"connection_string,omitempty" yaml:"connection_string,omitempty"`
}

// DefaultVectorStoreConfig returns the store configuration used when the
// caller supplies no vector_store_config mapping at all.
func DefaultVectorStoreConfig() VectorStoreConfig {
	return VectorStoreConfig{
		Type:           VectorStoreChromaDB,
		CollectionName: DefaultCollectionName,
	}
}

// RAGConfig is the fully validated configuration consumed by the
// retrieval pipeline builder. Every field is populated after a
// successful Load; there is no partially configured state.
type RAGConfig struct {
	RetrieverType      RetrieverType            `json:"retriever_type" yaml:"retriever_type"`
	MultiRetrieverMode MultiVectorRetrieverMode `json:"multi_retriever_mode" yaml:"multi_retriever_mode"`

	// EmbeddingModel is an inert handle to a caller-constructed embedding
	// model. Load never inspects it.
	EmbeddingModel any `json:"-" yaml:"-"`
	// Documents is an ordered sequence of inert document handles.
	Documents []any `json:"-" yaml:"-"`

	VectorStoreConfig VectorStoreConfig `json:"vector_store_config" yaml:"vector_store_config"`

	LLMModelName string `json:"llm_model_name" yaml:"llm_model_name"`
	TableName    string `json:"table_name" yaml:"table_name"`
	ChunkSize    int    `json:"chunk_size" yaml:"chunk_size"`
	ChunkOverlap int    `json:"chunk_overlap" yaml:"chunk_overlap"`
	TopK         int    `json:"top_k" yaml:"top_k"`
}

// DefaultRAGConfig returns the configuration produced by Load for an
// empty input mapping.
func DefaultRAGConfig() *RAGConfig {
	return &RAGConfig{
		RetrieverType:      RetrieverVectorStore,
		MultiRetrieverMode: MultiVectorBoth,
		VectorStoreConfig:  DefaultVectorStoreConfig(),
		LLMModelName:       DefaultLLMModel,
		TableName:          DefaultTableName,
		ChunkSize:          DefaultChunkSize,
		ChunkOverlap:       DefaultChunkOverlap,
		TopK:               DefaultTopK,
	}
}

// RawMap returns the canonical raw-mapping equivalent of c: enums as
// their canonical strings, the store configuration as a nested mapping.
// Loading the result yields a configuration equal to c.
func (c *RAGConfig) RawMap() map[string]any {
	raw := map[string]any{
		"retriever_type":       string(c.RetrieverType),
		"multi_retriever_mode": string(c.MultiRetrieverMode),
		"vector_store_config": map[string]any{
			"vector_store_type": string(c.VectorStoreConfig.Type),
			"collection_name":   c.VectorStoreConfig.CollectionName,
			"persist_directory": c.VectorStoreConfig.PersistDirectory,
			"connection_string": c.VectorStoreConfig.ConnectionString,
		},
		"llm_model_name": c.LLMModelName,
		"table_name":     c.TableName,
		"chunk_size":     c.ChunkSize,
		"chunk_overlap":  c.ChunkOverlap,
		"top_k":          c.TopK,
	}
	if c.EmbeddingModel != nil {
		raw["embedding_model"] = c.EmbeddingModel
	}
	if c.Documents != nil {
		raw["documents"] = c.Documents
	}
	return raw
}
