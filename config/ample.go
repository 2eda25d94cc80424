package config

// AmpleThreshold computes the default backer/witness receipt threshold for
// n backers (spec §4.5 `ample(n)`): 0->0, 1->1, 2->2, n>=3 ->
// floor((n-1)/3)+1. Shared by icp/vcp/vrt so both KEL and TEL inception
// pick the same default.
func AmpleThreshold(n int) int {
	switch {
	case n == 0:
		return 0
	case n == 1:
		return 1
	case n == 2:
		return 2
	default:
		return (n-1)/3 + 1
	}
}
