// Package container holds slice helpers shared by callers of the support library.
package container

// SwapRemove removes s[i] in O(1) by moving the last element into its slot.
// Element order is not preserved. It panics if i is out of range, like s[i].
// The vacated tail slot is zeroed so the backing array does not retain it.
func SwapRemove[S ~[]E, E any](s S, i int) S {
	last := len(s) - 1
	s[i] = s[last]

	var zero E
	s[last] = zero

	return s[:last]
}
