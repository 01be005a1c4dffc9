package anthropic

// CachedSystem builds a single system block with a 5-minute cache
// breakpoint. The advisor's system prompts are fixed per operation, so
// repeated calls within a session hit the warm cache.
func CachedSystem(text string) []SystemBlock {
	return []SystemBlock{
		{
			Text:         text,
			CacheControl: &CacheControl{TTL: "5m"},
		},
	}
}
