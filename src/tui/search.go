package tui

import (
	"strings"
)

// keep reports whether an item passes the given header filter.
func keep(item Item, filter string) bool {
	switch filter {
	case FilterAll:
		return true
	case FilterRecommendations:
		return item.Kind == KindRecommendation
	case FilterCoordinations:
		return item.Kind == KindCoordination
	default:
		return item.Involves(filter)
	}
}

// filterItems applies the header filter and then the search query.
func filterItems(items []Item, filter, query string) []Item {
	query = strings.ToLower(strings.TrimSpace(query))

	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if !keep(item, filter) {
			continue
		}
		if query != "" && !item.Matches(query) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// applyFilter refreshes the list from the current filter and search query
func (m *MainModel) applyFilter() {
	m.listView.SetItems(filterItems(m.items, m.header.GetFilter(), m.searchQuery))
	if selectedItem, ok := m.listView.Selected(); ok {
		m.updateDetailContent(selectedItem)
	} else {
		m.detailViewport.SetContent("")
	}
}
