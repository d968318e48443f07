package ui

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/fluxtab/tabaction/internal/browser"
)

// FilterTabs returns the tabs matching the query, fuzzy-ranked over titles
// with a substring fallback over titles and URLs.
func FilterTabs(tabs []browser.Tab, query string) []browser.Tab {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return cloneTabs(tabs)
	}
	labels := make([]string, len(tabs))
	for i, tab := range tabs {
		labels[i] = tab.Title
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]browser.Tab, 0, len(matches))
		for idx, tab := range tabs {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, tab)
			}
		}
		if len(filtered) > 0 {
			return filtered
		}
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]browser.Tab, 0, len(tabs))
	for _, tab := range tabs {
		if strings.Contains(strings.ToLower(tab.Title), lower) || strings.Contains(strings.ToLower(tab.URL), lower) {
			filtered = append(filtered, tab)
		}
	}
	return filtered
}

func cloneTabs(tabs []browser.Tab) []browser.Tab {
	if len(tabs) == 0 {
		return nil
	}
	dup := make([]browser.Tab, len(tabs))
	copy(dup, tabs)
	return dup
}
