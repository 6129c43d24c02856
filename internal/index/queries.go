package index

const (
	searchChunksQuery = `
		SELECT
			id::text,
			content,
			COALESCE(category, ''),
			embedding <=> $1 AS distance
		FROM chunk_embeddings
		ORDER BY embedding <=> $1
		LIMIT $2
	`

	searchChunksByCategoryQuery = `
		SELECT
			id::text,
			content,
			COALESCE(category, ''),
			embedding <=> $1 AS distance
		FROM chunk_embeddings
		WHERE category = $2
		ORDER BY embedding <=> $1
		LIMIT $3
	`

	searchChunksByCategoriesQuery = `
		SELECT
			id::text,
			content,
			COALESCE(category, ''),
			embedding <=> $1 AS distance
		FROM chunk_embeddings
		WHERE category = ANY($2)
		ORDER BY embedding <=> $1
		LIMIT $3
	`
)
