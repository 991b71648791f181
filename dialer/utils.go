package dialer

// Distinct reports whether no number occurs twice in numbers.
// Time Complexity: O(n).
func Distinct(numbers []string) bool {
	seen := make(map[string]struct{}, len(numbers))
	for _, n := range numbers {
		if _, dup := seen[n]; dup {
			return false
		}
		seen[n] = struct{}{}
	}

	return true
}
