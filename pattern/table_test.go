package pattern

import (
	"reflect"
	"testing"
)

func TestTable_SetGet(t *testing.T) {
	tab := NewTable(3)
	if tab.Len() != 3 || tab.Size() != 4 {
		t.Fatalf("Len()/Size() = %d/%d, want 3/4", tab.Len(), tab.Size())
	}
	if tab.Count() != 0 {
		t.Errorf("new table Count() = %d, want 0", tab.Count())
	}

	tab.Set(0, 2)
	tab.Set(3, 3)

	tests := []struct {
		begin, end int
		want       bool
	}{
		{0, 2, true},
		{3, 3, true},
		{0, 3, false},
		{2, 0, false},
		{1, 1, false},
	}
	for _, tt := range tests {
		if got := tab.Get(tt.begin, tt.end); got != tt.want {
			t.Errorf("Get(%d, %d) = %v, want %v", tt.begin, tt.end, got, tt.want)
		}
	}
}

func TestTable_Intervals(t *testing.T) {
	tab := NewTable(4)
	tab.Set(2, 4)
	tab.Set(0, 0)
	tab.Set(0, 3)

	want := []Interval{{0, 0}, {0, 3}, {2, 4}}
	if got := tab.Intervals(); !reflect.DeepEqual(got, want) {
		t.Errorf("Intervals() = %v, want %v", got, want)
	}
	if tab.Count() != len(want) {
		t.Errorf("Count() = %d, want %d", tab.Count(), len(want))
	}
}

func TestTable_OutOfRangePanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(*Table)
	}{
		{"get end past len", func(tab *Table) { tab.Get(0, 3) }},
		{"get negative begin", func(tab *Table) { tab.Get(-1, 0) }},
		{"set past len", func(tab *Table) { tab.Set(3, 3) }},
		{"set inverted", func(tab *Table) { tab.Set(2, 1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn(NewTable(2))
		})
	}
}

func TestTable_Equal(t *testing.T) {
	a, b := NewTable(2), NewTable(2)
	if !a.Equal(b) {
		t.Error("empty tables of same size should be equal")
	}
	a.Set(0, 1)
	if a.Equal(b) {
		t.Error("tables with different contents reported equal")
	}
	b.Set(0, 1)
	if !a.Equal(b) {
		t.Error("tables with same contents reported different")
	}
	if a.Equal(NewTable(3)) {
		t.Error("tables of different sizes reported equal")
	}
	var nilTable *Table
	if a.Equal(nilTable) || !nilTable.Equal(nil) {
		t.Error("nil handling in Equal is wrong")
	}
}

func TestInterval(t *testing.T) {
	iv := Interval{Begin: 2, End: 5}
	if iv.Len() != 3 || iv.IsEmpty() {
		t.Errorf("Len()/IsEmpty() = %d/%v, want 3/false", iv.Len(), iv.IsEmpty())
	}
	if iv.String() != "[2, 5)" {
		t.Errorf("String() = %q, want %q", iv.String(), "[2, 5)")
	}
	if !(Interval{Begin: 1, End: 1}).IsEmpty() {
		t.Error("[1, 1) should be empty")
	}
}
