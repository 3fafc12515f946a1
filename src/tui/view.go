package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// ReportList is the left-hand table of recommendations and coordination events.
type ReportList struct {
	list     list.Model
	delegate *Delegate
}

func NewReportList(styles *StyleConfig) ReportList {
	delegate := NewDelegateWithStyles(styles)
	l := list.New(nil, &delegate, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	// Filtering is done by the header and search box, not by bubbles/list.
	l.SetFilteringEnabled(false)
	return ReportList{list: l, delegate: &delegate}
}

func (r ReportList) Update(msg tea.Msg) (ReportList, tea.Cmd) {
	var cmd tea.Cmd
	r.list, cmd = r.list.Update(msg)
	return r, cmd
}

func (r *ReportList) SetSize(width, height int) {
	r.list.SetSize(width, height)
}

// SetItems replaces the rows. Items arrive ranked in ascending order.
func (r *ReportList) SetItems(items []Item) {
	rows := make([]list.Item, 0, len(items))
	maxRank := 0
	for _, it := range items {
		rows = append(rows, it)
		maxRank = max(maxRank, it.Rank)
	}
	r.delegate.SetColumnWidths(maxRank)
	r.list.SetItems(rows)
}

// Selected returns the highlighted row, if any.
func (r ReportList) Selected() (Item, bool) {
	if r.Len() == 0 {
		return Item{}, false
	}
	it, ok := r.list.SelectedItem().(Item)
	return it, ok
}

func (r ReportList) Len() int {
	return len(r.list.Items())
}

func (r ReportList) Render() string {
	return r.list.View()
}

func (r ReportList) Delegate() *Delegate {
	return r.delegate
}
