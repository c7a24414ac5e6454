package search

import "testing"

func TestPeakIndex(t *testing.T) {
	tests := []struct {
		name     string
		nums     []int
		expected int
	}{
		{"empty", nil, -1},
		{"single element", []int{7}, 0},
		{"two ascending", []int{1, 2}, 1},
		{"two descending", []int{5, 3}, 0},
		{"strictly increasing", []int{1, 2, 3, 4, 5}, 4},
		{"strictly decreasing", []int{9, 7, 5, 3}, 0},
		{"peak in the middle", []int{1, 3, 9, 4, 2}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PeakIndex(tt.nums); got != tt.expected {
				t.Errorf("Expected index %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestPeakIndex_AnyPeakAccepted(t *testing.T) {
	// Multiple peaks: the search may land on any of them, so assert the
	// peak property instead of a fixed index.
	nums := []int{1, 5, 2, 8, 3, 9, 4}
	idx := PeakIndex(nums)
	assertPeak(t, nums, idx)
}

func TestPeakIndex_PeakPropertyHolds(t *testing.T) {
	cases := [][]int{
		{2, 1},
		{1, 2, 1},
		{10, 20, 15, 2, 23, 90, 67},
		{6, 5, 4, 3, 2, 1, 7},
		{1, 2, 3, 1, 2, 3, 1},
	}
	for _, nums := range cases {
		assertPeak(t, nums, PeakIndex(nums))
	}
}

func assertPeak(t *testing.T, nums []int, idx int) {
	t.Helper()
	if idx < 0 || idx >= len(nums) {
		t.Fatalf("Index %d out of range for %v", idx, nums)
	}
	if idx > 0 && nums[idx] < nums[idx-1] {
		t.Errorf("Expected peak at %d in %v, but left neighbor is larger", idx, nums)
	}
	if idx < len(nums)-1 && nums[idx] < nums[idx+1] {
		t.Errorf("Expected peak at %d in %v, but right neighbor is larger", idx, nums)
	}
}
