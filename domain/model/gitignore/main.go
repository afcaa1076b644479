// Package gitignore implements gitignore-style pattern compilation and path
// matching. It is pure: no I/O happens here, rule files are read by
// domain/service/gitignoreScan.
package gitignore

import (
	"strings"
)

// RawRule is one non-blank, non-comment line taken from a rule file.
// OriginDir is the slash-separated directory owning the rule file, relative
// to the repository root ("" for the root itself). Sequence is a globally
// monotonic discovery order: root-to-leaf over directories, top-to-bottom
// inside a file.
type RawRule struct {
	Text      string
	OriginDir string
	Sequence  int
}

// segment is one compiled path segment of a pattern.
type segment struct {
	// text is the raw segment source.
	text string
	// anyDepth marks a "**" occupying the whole segment.
	anyDepth bool
	// wildcard reports whether text contains glob meta ("*", "?", "[").
	wildcard bool
}

// Pattern is the immutable compiled form of one rule. Compile is a pure
// function; equivalent raw text always yields an equivalent Pattern.
type Pattern struct {
	segments  []segment
	body      string
	originDir string
	sequence  int
	anchored  bool
	hasSlash  bool
	dirOnly   bool
	negated   bool
}

// Compile turns one raw rule into a Pattern. It never fails: glob syntax it
// cannot interpret (such as an unterminated character class) degrades to a
// literal segment match at matching time.
func Compile(raw RawRule) Pattern {
	text := raw.Text

	p := Pattern{
		originDir: raw.OriginDir,
		sequence:  raw.Sequence,
	}

	if strings.HasPrefix(text, "!") {
		p.negated = true
		text = text[1:]
	} else if strings.HasPrefix(text, `\!`) {
		text = text[1:]
	}

	if strings.HasPrefix(text, `\#`) {
		text = text[1:]
	}

	if strings.HasSuffix(text, "/") {
		p.dirOnly = true
		text = strings.TrimSuffix(text, "/")
	}

	if strings.HasPrefix(text, "/") {
		p.anchored = true
		text = strings.TrimPrefix(text, "/")
	}

	p.body = text
	p.hasSlash = strings.Contains(text, "/")

	for _, s := range strings.Split(text, "/") {
		if s == "" {
			continue
		}
		if s == "**" {
			p.segments = append(p.segments, segment{text: s, anyDepth: true})
			continue
		}
		p.segments = append(p.segments, segment{
			text:     s,
			wildcard: strings.ContainsAny(s, "*?["),
		})
	}

	return p
}

// Negated reports whether the rule re-includes matching paths.
func (p Pattern) Negated() bool {
	return p.negated
}

// OriginDir returns the rule file directory the pattern is scoped to.
func (p Pattern) OriginDir() string {
	return p.originDir
}

// Matches reports whether the pattern matches rel, a slash-separated path
// relative to the pattern's origin directory.
//
// Anchored patterns and patterns containing an internal "/" align at the
// origin directory. Slash-free patterns match the basename at any depth.
// Directory-only patterns match directories, or file paths through one of
// their ancestor directory segments.
func (p Pattern) Matches(rel string, isDir bool) bool {
	if len(p.segments) == 0 || rel == "" {
		return false
	}

	segs := strings.Split(rel, "/")

	if !p.anchored && !p.hasSlash {
		if !p.dirOnly {
			return matchSegment(p.segments[0], segs[len(segs)-1])
		}

		// For file paths the basename is not a directory, so it cannot
		// satisfy a dir-only rule itself.
		limit := len(segs)
		if !isDir {
			limit--
		}
		for i := 0; i < limit; i++ {
			if matchSegment(p.segments[0], segs[i]) {
				return true
			}
		}
		return false
	}

	if p.dirOnly && !isDir {
		for k := 1; k < len(segs); k++ {
			if matchSegments(p.segments, segs[:k]) {
				return true
			}
		}
		return false
	}

	return matchSegments(p.segments, segs)
}

// matchSegments matches compiled pattern segments against path segments.
// An any-depth token consumes zero or more whole path segments; every split
// point is tried (classic recursive-descent glob matching).
func matchSegments(pattern []segment, segs []string) bool {
	if len(pattern) == 0 {
		return len(segs) == 0
	}

	if pattern[0].anyDepth {
		for i := 0; i <= len(segs); i++ {
			if matchSegments(pattern[1:], segs[i:]) {
				return true
			}
		}
		return false
	}

	if len(segs) == 0 {
		return false
	}

	return matchSegment(pattern[0], segs[0]) && matchSegments(pattern[1:], segs[1:])
}

// matchSegment matches one pattern segment against one path segment.
func matchSegment(seg segment, name string) bool {
	if seg.anyDepth {
		return true
	}
	if !seg.wildcard {
		return seg.text == name
	}
	return matchGlob(seg.text, name)
}

// matchGlob matches "*", "?" and "[...]" against one path segment. None of
// the operators cross a "/" boundary because matching is per segment.
func matchGlob(pattern string, name string) bool {
	pIdx := 0
	nIdx := 0
	starPattern := -1
	starName := 0

	for nIdx < len(name) {
		if pIdx < len(pattern) {
			c := pattern[pIdx]

			if c == '*' {
				// Remember star position, let it consume nothing first.
				// "**" inside a segment is just two adjacent stars.
				starPattern = pIdx
				starName = nIdx
				pIdx++
				continue
			}

			if c == '?' {
				pIdx++
				nIdx++
				continue
			}

			if c == '[' {
				if end := charClassEnd(pattern, pIdx); end >= 0 {
					if matchCharClass(pattern[pIdx+1:end], name[nIdx]) {
						pIdx = end + 1
						nIdx++
						continue
					}
				} else if name[nIdx] == '[' {
					// Unterminated class degrades to a literal bracket.
					pIdx++
					nIdx++
					continue
				}
			} else if c == name[nIdx] {
				pIdx++
				nIdx++
				continue
			}
		}

		if starPattern >= 0 {
			// Backtrack: the last star consumes one more byte.
			starName++
			pIdx = starPattern + 1
			nIdx = starName
			continue
		}

		return false
	}

	for pIdx < len(pattern) && pattern[pIdx] == '*' {
		pIdx++
	}

	return pIdx == len(pattern)
}

// charClassEnd locates the closing bracket of a "[...]" class, or -1.
func charClassEnd(pattern string, start int) int {
	idx := start + 1
	if idx < len(pattern) && (pattern[idx] == '!' || pattern[idx] == '^') {
		idx++
	}
	if idx < len(pattern) && pattern[idx] == ']' {
		idx++
	}
	for ; idx < len(pattern); idx++ {
		if pattern[idx] == ']' {
			return idx
		}
	}
	return -1
}

// matchCharClass matches one byte against a class body (without brackets).
// A leading "!" or "^" negates the class; "a-z" ranges are supported.
func matchCharClass(class string, c byte) bool {
	if class == "" {
		return false
	}

	negated := false
	if class[0] == '!' || class[0] == '^' {
		negated = true
		class = class[1:]
	}

	matched := false
	for i := 0; i < len(class); i++ {
		if i+2 < len(class) && class[i+1] == '-' {
			if class[i] <= c && c <= class[i+2] {
				matched = true
			}
			i += 2
			continue
		}
		if class[i] == c {
			matched = true
		}
	}

	return matched != negated
}

// RuleIndex aggregates compiled patterns from every rule file, grouped by
// origin directory. It is built once per run and read-only afterwards, so
// queries are safe from concurrent goroutines.
type RuleIndex struct {
	groups  map[string][]Pattern
	origins []string
	total   int
}

// Stats describes the loaded pattern set.
type Stats struct {
	TotalPatterns    int
	RegularPatterns  int
	NegationPatterns int
	RuleFiles        int
}

// NewRuleIndex compiles raw rules into an index. Rules must arrive in
// discovery order; sequence order inside each origin directory is preserved.
func NewRuleIndex(rules []RawRule) *RuleIndex {
	idx := &RuleIndex{
		groups: make(map[string][]Pattern),
	}

	for _, raw := range rules {
		p := Compile(raw)
		if len(p.segments) == 0 {
			continue
		}
		if _, ok := idx.groups[p.originDir]; !ok {
			idx.origins = append(idx.origins, p.originDir)
		}
		idx.groups[p.originDir] = append(idx.groups[p.originDir], p)
		idx.total++
	}

	return idx
}

// Len returns the number of compiled patterns in the index.
func (x *RuleIndex) Len() int {
	return x.total
}

// IsIgnored decides whether rel, a slash-separated path relative to the
// repository root, is excluded.
//
// Every ancestor directory of rel is decided first: an excluded ancestor
// excludes everything beneath it and no deeper negation can re-include it
// (directory-exclusion-wins). Otherwise the path itself is decided with
// last-matching-rule-wins over rules from its directory chain, root first.
func (x *RuleIndex) IsIgnored(rel string, isDir bool) bool {
	rel = strings.Trim(rel, "/")
	if rel == "" || x.total == 0 {
		return false
	}

	for i := 0; i < len(rel); i++ {
		if rel[i] == '/' && x.decide(rel[:i], true) {
			return true
		}
	}

	return x.decide(rel, isDir)
}

// decide evaluates rel against every rule file at or above rel's directory.
// Rule files closer to the root are considered first, so deeper and later
// rules override earlier ones.
func (x *RuleIndex) decide(rel string, isDir bool) bool {
	ignored := false

	x.applyGroup("", rel, isDir, &ignored)
	for i := 0; i < len(rel); i++ {
		if rel[i] == '/' {
			x.applyGroup(rel[:i], rel, isDir, &ignored)
		}
	}

	return ignored
}

// applyGroup runs one origin directory's rules against rel in sequence
// order, updating the tentative decision on every match.
func (x *RuleIndex) applyGroup(origin string, rel string, isDir bool, ignored *bool) {
	group := x.groups[origin]
	if len(group) == 0 {
		return
	}

	sub := rel
	if origin != "" {
		// Rules from "dir/.gitignore" apply to paths under dir, never to
		// the dir entry itself.
		if rel == origin || !strings.HasPrefix(rel, origin+"/") {
			return
		}
		sub = rel[len(origin)+1:]
	}

	for i := range group {
		if group[i].Matches(sub, isDir) {
			*ignored = !group[i].negated
		}
	}
}

// LegacyPatterns flattens the index into simple glob strings for consumers
// that only accept flat exclusion lists. The conversion is lossy and
// best-effort: negations and directory scoping are dropped, unanchored
// patterns gain a "**/" prefix and dir-only patterns a "/**" suffix.
func (x *RuleIndex) LegacyPatterns() []string {
	out := make([]string, 0, x.total)

	for _, origin := range x.origins {
		for _, p := range x.groups[origin] {
			if p.negated || p.body == "" {
				continue
			}

			glob := p.body
			if !p.anchored {
				glob = "**/" + glob
			}
			if p.dirOnly {
				glob += "/**"
			}
			out = append(out, glob)
		}
	}

	return out
}

// Stats returns counters over the loaded pattern set.
func (x *RuleIndex) Stats() Stats {
	s := Stats{
		TotalPatterns: x.total,
		RuleFiles:     len(x.origins),
	}

	for _, group := range x.groups {
		for i := range group {
			if group[i].negated {
				s.NegationPatterns++
			} else {
				s.RegularPatterns++
			}
		}
	}

	return s
}
