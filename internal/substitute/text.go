package substitute

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"decoder/internal/domain"
)

// Text returns s with every mapped unit replaced. When nothing matches, s
// itself is returned so callers can skip the write.
func Text(s string, dict domain.Mapping) string {
	if s == "" || len(dict) == 0 {
		return s
	}

	var b strings.Builder
	changed := false
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		from, to := g.Positions()
		out, hit := lookup(s[from:to], dict)
		if !hit {
			if changed {
				b.WriteString(s[from:to])
			}
			continue
		}
		if !changed {
			b.Grow(len(s))
			b.WriteString(s[:from])
			changed = true
		}
		b.WriteString(out)
	}
	if !changed {
		return s
	}
	return b.String()
}

// lookup resolves one grapheme cluster. Empty values count as unmapped.
func lookup(cluster string, dict domain.Mapping) (string, bool) {
	if v := dict[cluster]; v != "" {
		return v, true
	}
	if utf8.RuneCountInString(cluster) < 2 {
		return "", false
	}

	var b strings.Builder
	hit := false
	for _, r := range cluster {
		ch := string(r)
		if v := dict[ch]; v != "" {
			b.WriteString(v)
			hit = true
			continue
		}
		b.WriteString(ch)
	}
	if !hit {
		return "", false
	}
	return b.String(), true
}
