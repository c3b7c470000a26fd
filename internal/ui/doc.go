// Package ui is the interactive console: a Bubble Tea program that lists the
// records of a state.Store and keeps up with new ones.
//
// # Refresh
//
// The model subscribes to the store with a feed. The feed's observer runs on
// the appending goroutine and only parks the newest record sequence in an
// atomic pointer. A tea.Tick at the refresh interval takes whatever is
// parked, so bursts of appends cause at most one re-render per interval and
// the render always shows the latest state.
//
// # Rows
//
// Each record takes two lines: its small place tag with the timestamp on the
// right, then the message (lifecycle records lead with INIT #n or DEINIT #n).
// The filter is a case-insensitive substring match on the record's formatted
// string; the first match in the tag and the message is highlighted.
//
// # Following
//
// While following, every refresh selects the last row. Moving up pauses;
// reaching the last row, pressing G, or confirming or cancelling the filter
// resumes. While paused, refreshes keep the selected record and the scroll
// offset.
//
// # Keys
//
//	j/k, g/G, pgup/pgdown, ctrl+u/d   navigate
//	/                                 edit filter (enter apply, esc cancel)
//	esc                               clear filter
//	p                                 filter by the selected record's place
//	enter, y                          copy the formatted record
//	T                                 cycle theme (saved to prefs)
//	h, ?                              help and icon legend
//	e, ctrl+c                         quit
package ui
