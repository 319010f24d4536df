package ragconfig

// Load converts a raw settings mapping into a fully populated RAGConfig.
//
// Every key in raw must be declared in the settings schema; a single
// unrecognized key (top-level or nested) fails the whole load. Enum
// fields are matched case-sensitively against their closed sets, the
// vector_store_config mapping is normalized recursively under the same
// policy, opaque handles pass through untouched, and every absent field
// is filled from its documented default. On failure the returned error
// is a ValidationErrors naming each offending key and value; no partial
// configuration is ever returned.
func Load(raw map[string]any) (*RAGConfig, error) {
	if raw == nil {
		raw = map[string]any{}
	}
	vals, errs := topLevelSchema.normalize(raw, "")
	if len(errs) > 0 {
		return nil, errs
	}

	cfg := &RAGConfig{
		RetrieverType:      vals["retriever_type"].(RetrieverType),
		MultiRetrieverMode: vals["multi_retriever_mode"].(MultiVectorRetrieverMode),
		EmbeddingModel:     vals["embedding_model"],
		VectorStoreConfig:  assembleVectorStore(vals["vector_store_config"].(map[string]any)),
		LLMModelName:       vals["llm_model_name"].(string),
		TableName:          vals["table_name"].(string),
		ChunkSize:          vals["chunk_size"].(int),
		ChunkOverlap:       vals["chunk_overlap"].(int),
		TopK:               vals["top_k"].(int),
	}
	if docs, ok := vals["documents"].([]any); ok {
		cfg.Documents = docs
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func assembleVectorStore(vals map[string]any) VectorStoreConfig {
	return VectorStoreConfig{
		Type:             vals["vector_store_type"].(VectorStoreType),
		CollectionName:   vals["collection_name"].(string),
		PersistDirectory: vals["persist_directory"].(string),
		ConnectionString: vals["connection_string"].(string),
	}
}
