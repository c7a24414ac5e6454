package disjointset

import "testing"

func TestDisjointSet_StartsAsSingletons(t *testing.T) {
	d := New(5)
	if d.Count() != 5 {
		t.Errorf("Expected 5 sets, got %d", d.Count())
	}
	for i := 0; i < 5; i++ {
		if d.Find(i) != i {
			t.Errorf("Expected %d to be its own root, got %d", i, d.Find(i))
		}
	}
	if d.Connected(0, 1) {
		t.Error("Expected fresh elements to be disconnected")
	}
}

func TestDisjointSet_UnionMerges(t *testing.T) {
	d := New(4)

	if !d.Union(0, 1) {
		t.Error("Expected first union to merge")
	}
	if !d.Connected(0, 1) {
		t.Error("Expected 0 and 1 connected after union")
	}
	if d.Count() != 3 {
		t.Errorf("Expected 3 sets after one union, got %d", d.Count())
	}

	if d.Union(1, 0) {
		t.Error("Expected repeated union to report no merge")
	}
	if d.Count() != 3 {
		t.Errorf("Expected count unchanged by no-op union, got %d", d.Count())
	}
}

func TestDisjointSet_TransitiveConnectivity(t *testing.T) {
	d := New(6)
	d.Union(0, 1)
	d.Union(1, 2)
	d.Union(3, 4)

	tests := []struct {
		a, b     int
		expected bool
	}{
		{0, 2, true},
		{2, 0, true},
		{3, 4, true},
		{0, 3, false},
		{2, 5, false},
	}
	for _, tt := range tests {
		if got := d.Connected(tt.a, tt.b); got != tt.expected {
			t.Errorf("Connected(%d, %d): expected %v, got %v", tt.a, tt.b, got, tt.expected)
		}
	}

	if d.Count() != 3 {
		t.Errorf("Expected 3 sets ({0,1,2}, {3,4}, {5}), got %d", d.Count())
	}
}

func TestDisjointSet_ReportingChain(t *testing.T) {
	// Employees 1..6 each report to a boss; 6 reports to itself. Linking
	// every employee to its boss collapses the whole chart into one group.
	bosses := map[int]int{1: 3, 2: 1, 3: 5, 4: 5, 5: 6, 6: 6}

	d := New(7)
	for employee, boss := range bosses {
		d.Union(employee, boss)
	}

	root := d.Find(6)
	for employee := 1; employee <= 6; employee++ {
		if d.Find(employee) != root {
			t.Errorf("Expected employee %d in the chart rooted at %d, got %d", employee, root, d.Find(employee))
		}
	}
	if d.Count() != 2 { // the chart plus unused ID 0
		t.Errorf("Expected 2 sets, got %d", d.Count())
	}
}

func TestDisjointSet_FindIsStableAcrossCalls(t *testing.T) {
	d := New(8)
	d.Union(0, 1)
	d.Union(2, 3)
	d.Union(1, 3)

	first := d.Find(0)
	for i := 0; i < 5; i++ {
		if got := d.Find(0); got != first {
			t.Fatalf("Expected stable root %d, got %d on call %d", first, got, i)
		}
	}
	for _, x := range []int{0, 1, 2, 3} {
		if d.Find(x) != first {
			t.Errorf("Expected %d to share root %d, got %d", x, first, d.Find(x))
		}
	}
}
