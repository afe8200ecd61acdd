// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package record turns one logical BRENDA record into structured fields.
// tags.go locates the four delimiter kinds ({}, (), <>, #…#, |…|) in a text
// span and extracts their contents. The format is not context-free: delimiters
// are inconsistently nested, sometimes absent, and sometimes appear inside
// free-text compound names, so the scanner works from small plausibility
// predicates rather than a grammar. Delimiters that fail the predicates are
// treated as noise and stripped or left as plain text, never as errors.
package record

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// maxIDTagLen bounds the body of an id tag. Longer spans between a pair of
// delimiters are free text that happens to contain the delimiter character.
const maxIDTagLen = 512

var (
	// hashSpanRe and angleSpanRe over-match on purpose; every candidate body
	// still has to pass plausibleIDGroup before it counts as a tag.
	hashSpanRe  = regexp.MustCompile(`#([^#]*)#`)
	angleSpanRe = regexp.MustCompile(`<([^<>]*)>`)
	braceSpanRe = regexp.MustCompile(`\{([^{}]*)\}`)

	numberRe  = regexp.MustCompile(`\d+`)
	idGroupRe = regexp.MustCompile(`^\s*\d+(?:[,;\s]+\d+)*\s*$`)
)

// plausibleIDGroup reports whether body looks like the inside of an id tag:
// numbers separated by commas, semicolons, or blanks, on a single line, and
// short enough to be a tag rather than surrounding text.
func plausibleIDGroup(body string) bool {
	if body == "" || len(body) > maxIDTagLen || strings.ContainsAny(body, "\n\r") {
		return false
	}
	return idGroupRe.MatchString(body)
}

// splitIDGroup parses the body of one id tag into its numbers, in written
// order. Ranges do not occur in this position in BRENDA files.
func splitIDGroup(body string) []int {
	var ids []int
	for _, m := range numberRe.FindAllString(body, -1) {
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		ids = append(ids, n)
	}
	return ids
}

// hasTagStructure reports whether text contains at least one plausible
// protein or reference tag. Presence of a tag is the evidence that a
// parenthesised span is a comment rather than chemical nomenclature.
func hasTagStructure(text string) bool {
	for _, m := range hashSpanRe.FindAllStringSubmatch(text, -1) {
		if plausibleIDGroup(m[1]) {
			return true
		}
	}
	for _, m := range angleSpanRe.FindAllStringSubmatch(text, -1) {
		if plausibleIDGroup(m[1]) {
			return true
		}
	}
	return false
}

func charIndexes(text string, c byte) []int {
	var idx []int
	for i := 0; i < len(text); i++ {
		if text[i] == c {
			idx = append(idx, i)
		}
	}
	return idx
}

// cleanStrayHashes removes '#' characters that cannot delimit a protein tag.
// A lone '#' is deleted. With an odd count above one, the first consecutive
// pair whose span is not id-shaped loses its closing '#'; that closing hash
// is the typographic stray (e.g. "N,N#-diacetylchitobiose").
func cleanStrayHashes(text string) string {
	idx := charIndexes(text, '#')
	if len(idx)%2 == 0 {
		return text
	}
	if len(idx) == 1 {
		return text[:idx[0]] + text[idx[0]+1:]
	}
	for i := 0; i+1 < len(idx); i++ {
		if !plausibleIDGroup(text[idx[i]+1 : idx[i+1]]) {
			return text[:idx[i+1]] + text[idx[i+1]+1:]
		}
	}
	return text
}

// cleanStrayPipes removes a '|' that cannot be paired. With an odd count the
// first occurrence is the stray, matching how unbalanced pipes appear in the
// source files (a bogus pipe dropped into the reaction equation).
func cleanStrayPipes(text string) string {
	idx := charIndexes(text, '|')
	if len(idx)%2 == 0 {
		return text
	}
	return text[:idx[0]] + text[idx[0]+1:]
}

// extractInformation removes the {…} information tag and returns its trimmed
// content. When the braces occur more than once the last occurrence is the
// information tag; earlier ones belong to chemical nomenclature in the
// message. An empty or whitespace-only body is absent, not an empty string.
func extractInformation(text string) (residual, info string) {
	ms := braceSpanRe.FindAllStringSubmatchIndex(text, -1)
	if ms == nil {
		return text, ""
	}
	m := ms[len(ms)-1]
	info = strings.TrimSpace(text[m[2]:m[3]])
	return text[:m[0]] + text[m[1]:], info
}

// extractPipeComments removes |…| comment spans and returns their trimmed
// contents in order. Pipes are paired left to right; cleanStrayPipes must run
// first so the count is even. A span that cannot be a comment (line break
// inside, empty body) contributes its content back as plain text, with the
// pipes dropped as noise.
func extractPipeComments(text string) (string, []string) {
	idx := charIndexes(text, '|')
	if len(idx) < 2 {
		return text, nil
	}

	var parts []string
	var b strings.Builder
	last := 0
	for i := 0; i+1 < len(idx); i += 2 {
		body := text[idx[i]+1 : idx[i+1]]
		b.WriteString(text[last:idx[i]])
		last = idx[i+1] + 1

		trimmed := strings.TrimSpace(body)
		if trimmed != "" && !strings.ContainsAny(body, "\n\r") {
			parts = append(parts, trimmed)
		} else {
			b.WriteString(body)
		}
	}
	b.WriteString(text[last:])
	return b.String(), parts
}

// matchClose returns the index of the ')' balancing the '(' at open, or -1.
func matchClose(text string, open int) int {
	depth := 0
	for i := open; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// trailingOnly reports whether rest contains nothing but id tags, an
// information tag, and whitespace. A structureless parenthesised span
// followed only by such material sits in comment position at the end of the
// record.
func trailingOnly(rest string) bool {
	rest = hashSpanRe.ReplaceAllStringFunc(rest, func(m string) string {
		if plausibleIDGroup(m[1 : len(m)-1]) {
			return ""
		}
		return m
	})
	rest = angleSpanRe.ReplaceAllStringFunc(rest, func(m string) string {
		if plausibleIDGroup(m[1 : len(m)-1]) {
			return ""
		}
		return m
	})
	rest = braceSpanRe.ReplaceAllString(rest, "")
	return strings.TrimSpace(rest) == ""
}

// parenCommentSpan locates the (…) comment in text and returns the indexes
// of its delimiters. Only a '(' at the start of the span or preceded by a
// blank is a candidate; parentheses glued to a word, as in NAD(P)H, are
// compound-name text. The chosen span must carry tag structure, or — when no
// candidate does — be the last balanced candidate in trailing position.
// With lenient set (PROTEIN records, ID lines) the evidence requirement is
// dropped and the last balanced candidate wins.
func parenCommentSpan(text string, lenient bool) (left, right int, ok bool) {
	var opens []int
	for _, i := range charIndexes(text, '(') {
		if i == 0 || text[i-1] == ' ' || text[i-1] == '\t' {
			opens = append(opens, i)
		}
	}
	rights := charIndexes(text, ')')
	if len(opens) == 0 || len(rights) == 0 {
		return 0, 0, false
	}

	// First candidate whose span up to the next candidate (or the first
	// close after it) shows tag structure.
	left = -1
	for i, l := range opens {
		next := len(text)
		if i+1 < len(opens) {
			next = opens[i+1]
		} else {
			for _, r := range rights {
				if r > l {
					next = r + 1
					break
				}
			}
		}
		if hasTagStructure(text[l:next]) {
			left = l
			break
		}
	}

	if left >= 0 {
		// Last close whose preceding segment still shows tag structure;
		// this survives unbalanced parentheses inside the comment.
		for i := len(rights) - 1; i >= 0; i-- {
			if rights[i] <= left {
				break
			}
			prev := left
			if i > 0 && rights[i-1] > left {
				prev = rights[i-1]
			}
			if hasTagStructure(text[prev:rights[i]]) {
				return left, rights[i], true
			}
		}
	}

	// No structured span: fall back to the last balanced candidate, accepted
	// only in trailing comment position unless lenient.
	for i := len(opens) - 1; i >= 0; i-- {
		r := matchClose(text, opens[i])
		if r < 0 {
			continue
		}
		if strings.ContainsAny(text[opens[i]:r], "\n\r") {
			continue
		}
		if lenient || trailingOnly(text[r+1:]) {
			return opens[i], r, true
		}
	}
	return 0, 0, false
}

// extractParenComment removes the (…) comment span and returns its content.
func extractParenComment(text string, lenient bool) (residual, comment string, ok bool) {
	l, r, ok := parenCommentSpan(text, lenient)
	if !ok {
		return text, "", false
	}
	return text[:l] + text[r+1:], text[l+1 : r], true
}

// extractIDGroups removes every plausible id tag matched by re and returns
// one group per tag occurrence, in order. Implausible matches stay in the
// text untouched.
func extractIDGroups(text string, re *regexp.Regexp) (string, [][]int) {
	var groups [][]int
	var b strings.Builder
	last := 0
	for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
		body := text[m[2]:m[3]]
		if !plausibleIDGroup(body) {
			continue
		}
		groups = append(groups, splitIDGroup(body))
		b.WriteString(text[last:m[0]])
		last = m[1]
	}
	if groups == nil {
		return text, nil
	}
	b.WriteString(text[last:])
	return b.String(), groups
}

// tagSpan is one plausible id tag located inside a comment body.
type tagSpan struct {
	start, end int
	ids        []int
	protein    bool
}

// scanCommentTags strips the protein and reference tags embedded in a comment
// body and collects their ids, flattened in encounter order across the whole
// comment. Duplicates are kept.
func scanCommentTags(comment string) (clean string, proteins, references []int) {
	var spans []tagSpan
	for _, m := range hashSpanRe.FindAllStringSubmatchIndex(comment, -1) {
		if body := comment[m[2]:m[3]]; plausibleIDGroup(body) {
			spans = append(spans, tagSpan{m[0], m[1], splitIDGroup(body), true})
		}
	}
	for _, m := range angleSpanRe.FindAllStringSubmatchIndex(comment, -1) {
		if body := comment[m[2]:m[3]]; plausibleIDGroup(body) {
			spans = append(spans, tagSpan{m[0], m[1], splitIDGroup(body), false})
		}
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	var b strings.Builder
	last := 0
	for _, s := range spans {
		if s.start < last {
			continue
		}
		b.WriteString(comment[last:s.start])
		last = s.end
		if s.protein {
			proteins = append(proteins, s.ids...)
		} else {
			references = append(references, s.ids...)
		}
	}
	b.WriteString(comment[last:])
	return normalizeSpace(b.String()), proteins, references
}

// normalizeSpace collapses runs of whitespace to single blanks and trims.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
