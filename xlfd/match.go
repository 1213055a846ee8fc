package xlfd

// Match reports whether name matches pattern using ListFonts rules: '*'
// matches any run of characters, including hyphens, '?' matches exactly one
// character, and the comparison ignores case.
func Match(pattern, name string) bool {
	return matchRunes([]rune(fold(pattern)), []rune(fold(name)))
}

// Filter returns the names that match pattern, in input order. At most limit
// names are returned; limit <= 0 means no limit.
func Filter(pattern string, names []string, limit int) []string {
	var out []string
	for _, n := range names {
		if limit > 0 && len(out) >= limit {
			break
		}
		if Match(pattern, n) {
			out = append(out, n)
		}
	}
	return out
}

// matchRunes is an iterative glob matcher with single-star backtracking.
func matchRunes(p, s []rune) bool {
	pi, si := 0, 0
	star, mark := -1, 0
	for si < len(s) {
		switch {
		case pi < len(p) && (p[pi] == '?' || p[pi] == s[si]):
			pi++
			si++
		case pi < len(p) && p[pi] == '*':
			star = pi
			mark = si
			pi++
		case star >= 0:
			pi = star + 1
			mark++
			si = mark
		default:
			return false
		}
	}
	for pi < len(p) && p[pi] == '*' {
		pi++
	}
	return pi == len(p)
}
