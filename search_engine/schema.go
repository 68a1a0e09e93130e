package search_engine

// IndexSchema is the mapping and analysis configuration for the book index.
// title and author carry phonetic subfields (double metaphone, via the
// engine's phonetic analysis plugin) so "Smyth" finds "Smith"; title also
// carries a completion subfield for autocomplete, author a keyword subfield
// for the authors facet.
func IndexSchema() map[string]any {
	return map[string]any{
		"settings": map[string]any{
			"analysis": map[string]any{
				"filter": map[string]any{
					"book_phonetic_filter": map[string]any{
						"type":    "phonetic",
						"encoder": "double_metaphone",
						"replace": false,
					},
				},
				"analyzer": map[string]any{
					"book_phonetic": map[string]any{
						"tokenizer": "standard",
						"filter":    []string{"lowercase", "book_phonetic_filter"},
					},
				},
			},
		},
		"mappings": map[string]any{
			"properties": map[string]any{
				"title": map[string]any{
					"type": "text",
					"fields": map[string]any{
						"phonetic": map[string]any{"type": "text", "analyzer": "book_phonetic"},
						"suggest":  map[string]any{"type": "completion"},
					},
				},
				"author": map[string]any{
					"type": "text",
					"fields": map[string]any{
						"keyword":  map[string]any{"type": "keyword"},
						"phonetic": map[string]any{"type": "text", "analyzer": "book_phonetic"},
					},
				},
				"category":       map[string]any{"type": "keyword"},
				"published_date": map[string]any{"type": "date"},
			},
		},
	}
}
