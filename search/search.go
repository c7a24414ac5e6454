// Package search provides binary searches over integer slices.
package search

// PeakIndex returns the index of a local peak in nums, an element no smaller
// than its neighbors, with positions beyond either end treated as negative
// infinity. The search narrows until two candidates remain, so it never
// reads outside the slice. An empty slice returns -1; when several peaks
// exist any one of them may be chosen.
func PeakIndex(nums []int) int {
	if len(nums) == 0 {
		return -1
	}
	left, right := 0, len(nums)-1
	for left+1 < right {
		// mid has neighbors on both sides while the window holds three
		// or more elements.
		mid := left + (right-left)/2
		switch {
		case nums[mid] > nums[mid-1] && nums[mid] > nums[mid+1]:
			return mid
		case nums[mid] < nums[mid-1]:
			right = mid
		default:
			left = mid
		}
	}
	if nums[right] > nums[left] {
		return right
	}
	return left
}
