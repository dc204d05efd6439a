package attrsearch

import (
	"sort"
	"strings"
)

// Search filters entries by a case-insensitive substring match over value and
// label, ranking prefix matches first.
func Search(entries []Entry, query string, limit int, opts Options) []Entry {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if opts.EmptySearchMode == EmptySearchTop {
			if len(entries) <= limit {
				return append([]Entry{}, entries...)
			}
			return append([]Entry{}, entries[:limit]...)
		}
		return nil
	}

	q := strings.ToLower(query)
	matches := make([]matchedEntry, 0, 32)
	for _, entry := range entries {
		lowerValue := strings.ToLower(entry.Value)
		lowerLabel := strings.ToLower(entry.Label)
		if !strings.Contains(lowerValue, q) && !strings.Contains(lowerLabel, q) {
			continue
		}
		matches = append(matches, matchedEntry{
			entry:    entry,
			isPrefix: strings.HasPrefix(lowerValue, q) || strings.HasPrefix(lowerLabel, q),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].isPrefix != matches[j].isPrefix {
			return matches[i].isPrefix
		}
		return matches[i].entry.Value < matches[j].entry.Value
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]Entry, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.entry)
	}
	return out
}

// SearchOptions maps search results to option-list payloads.
func SearchOptions(entries []Entry, query string, limit int, opts Options) []Option {
	results := Search(entries, query, limit, opts)
	if len(results) == 0 {
		return nil
	}

	out := make([]Option, 0, len(results))
	for _, entry := range results {
		out = append(out, Option{Value: entry.Value, Label: entry.Label})
	}
	return out
}

type matchedEntry struct {
	entry    Entry
	isPrefix bool
}
