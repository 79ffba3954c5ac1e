package engine

import "github.com/rivo/uniseg"

// DropLastGrapheme removes the final user-perceived character from s,
// keeping combining marks and ZWJ emoji sequences intact.
func DropLastGrapheme(s string) string {
	last, offset := 0, 0
	state := -1
	rest := s
	for len(rest) > 0 {
		cluster, r, _, st := uniseg.StepString(rest, state)
		last = offset
		offset += len(cluster)
		rest = r
		state = st
	}
	return s[:last]
}
