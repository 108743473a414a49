package dictionary

import "decoder/internal/domain"

// Merge computes the effective dictionary from the three layers. Inputs are
// not modified. A user entry is visible even when its key is suppressed.
func Merge(base, user domain.Mapping, suppressed map[string]struct{}) domain.Mapping {
	out := make(domain.Mapping, len(base)+len(user))
	for k, v := range base {
		if _, gone := suppressed[k]; gone {
			continue
		}
		out[k] = v
	}
	for k, v := range user {
		out[k] = v
	}
	return out
}
