package models

import "sort"

// EntryMap is a sparse mapping from day (YYYY-MM-DD) to Status. A missing
// key means the day is untracked. Consumers that need order sort explicitly.
type EntryMap map[string]Status

// Get returns the status for a day and whether an entry exists
func (m EntryMap) Get(day string) (Status, bool) {
	st, ok := m[day]
	return st, ok
}

// Set records a status for a day, overwriting any existing entry
func (m EntryMap) Set(day string, st Status) {
	m[day] = st
}

// Unset removes the entry for a day. Clearing a day is always expressed as
// deletion, never as an empty status value.
func (m EntryMap) Unset(day string) {
	delete(m, day)
}

// Clone returns an independent copy of the map
func (m EntryMap) Clone() EntryMap {
	c := make(EntryMap, len(m))
	for day, st := range m {
		c[day] = st
	}
	return c
}

// DoneDaysDesc returns all days marked done, newest first
func (m EntryMap) DoneDaysDesc() []string {
	var days []string
	for day, st := range m {
		if st == StatusDone {
			days = append(days, day)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))
	return days
}

// CountDoneWithPrefix counts done entries whose day starts with prefix,
// e.g. "2026-08" for a calendar month
func (m EntryMap) CountDoneWithPrefix(prefix string) int {
	n := 0
	for day, st := range m {
		if st == StatusDone && len(day) >= len(prefix) && day[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}
