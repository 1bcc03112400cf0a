package aggregator

import "github.com/SiddheshKanawade/news-hub-backend/provider"

// Dedup removes exact-duplicate raw records, preserving first-seen order.
// LiveArticle is all strings, so structural equality is map-key equality.
func Dedup(data []provider.LiveArticle) []provider.LiveArticle {
	seen := make(map[provider.LiveArticle]bool, len(data))
	unique := make([]provider.LiveArticle, 0, len(data))
	for _, article := range data {
		if seen[article] {
			continue
		}
		seen[article] = true
		unique = append(unique, article)
	}
	return unique
}
