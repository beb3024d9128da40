package models

import (
	"reflect"
	"testing"
)

func TestEntryMapSetGetUnset(t *testing.T) {
	m := EntryMap{}

	if _, ok := m.Get("2026-08-01"); ok {
		t.Errorf("Get() on empty map reported an entry")
	}

	m.Set("2026-08-01", StatusPlanned)
	if st, ok := m.Get("2026-08-01"); !ok || st != StatusPlanned {
		t.Errorf("Get() = %v, %v, want planned, true", st, ok)
	}

	m.Set("2026-08-01", StatusDone)
	if st, _ := m.Get("2026-08-01"); st != StatusDone {
		t.Errorf("Set() did not overwrite, got %v", st)
	}
	if len(m) != 1 {
		t.Errorf("overwriting a day duplicated the key, len = %d", len(m))
	}

	m.Unset("2026-08-01")
	if _, ok := m.Get("2026-08-01"); ok {
		t.Errorf("Unset() left the key present")
	}
	if len(m) != 0 {
		t.Errorf("Unset() left %d keys", len(m))
	}
}

func TestEntryMapClone(t *testing.T) {
	m := EntryMap{
		"2026-08-01": StatusDone,
		"2026-08-02": StatusPlanned,
	}

	c := m.Clone()
	if !reflect.DeepEqual(m, c) {
		t.Fatalf("Clone() = %v, want %v", c, m)
	}

	c.Set("2026-08-03", StatusDone)
	c.Unset("2026-08-01")
	if _, ok := m.Get("2026-08-03"); ok {
		t.Errorf("mutating the clone leaked into the original")
	}
	if _, ok := m.Get("2026-08-01"); !ok {
		t.Errorf("unsetting on the clone removed the original's key")
	}
}

func TestDoneDaysDesc(t *testing.T) {
	m := EntryMap{
		"2026-08-03": StatusDone,
		"2026-08-01": StatusDone,
		"2026-08-02": StatusPlanned,
		"2026-07-30": StatusDone,
	}

	got := m.DoneDaysDesc()
	want := []string{"2026-08-03", "2026-08-01", "2026-07-30"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DoneDaysDesc() = %v, want %v", got, want)
	}
}

func TestCountDoneWithPrefix(t *testing.T) {
	m := EntryMap{
		"2026-08-03": StatusDone,
		"2026-08-05": StatusDone,
		"2026-08-06": StatusPlanned,
		"2026-07-31": StatusDone,
	}

	if got := m.CountDoneWithPrefix("2026-08"); got != 2 {
		t.Errorf("CountDoneWithPrefix(2026-08) = %d, want 2", got)
	}
	if got := m.CountDoneWithPrefix("2026-07"); got != 1 {
		t.Errorf("CountDoneWithPrefix(2026-07) = %d, want 1", got)
	}
}
