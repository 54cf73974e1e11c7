/*
 * Copyright (c) 2021 Gilles Chehade <gilles@poolp.org>
 *
 * Permission to use, copy, modify, and distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package histogram

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/poolpOrg/charfreq/defaultmap"
)

// Entry is one histogram row: a character, how many times it was
// recorded, and its share of the running total.
type Entry struct {
	Char       rune
	Count      int
	Percentage float64
}

// Histogram counts character frequencies over the text fed to Add.
// Counts and the running total only grow; there is no removal.
type Histogram struct {
	counts *defaultmap.Map[rune, int]
	total  int
}

func New() *Histogram {
	return &Histogram{
		counts: defaultmap.New[rune, int](0),
	}
}

// Add records every non-whitespace character of text, case-folded to
// lowercase when foldCase is set, to uppercase otherwise. Characters
// are counted per Unicode code point, never per byte. Empty text is a
// no-op.
func (h *Histogram) Add(text string, foldCase bool) {
	text = stripWhitespace(text)
	if foldCase {
		text = strings.ToLower(text)
	} else {
		text = strings.ToUpper(text)
	}

	for _, char := range text {
		h.counts.Set(char, h.counts.Get(char)+1)
		h.total++
	}
}

// AddReader consumes r until EOF, feeding Add one line-sized chunk at a
// time so that multi-byte characters never straddle a read boundary.
// It returns the number of bytes consumed; text consumed before a read
// error stays recorded.
func (h *Histogram) AddReader(r io.Reader, foldCase bool) (int64, error) {
	rd := bufio.NewReader(r)

	var nbytes int64
	for {
		chunk, err := rd.ReadString('\n')
		nbytes += int64(len(chunk))
		if chunk != "" {
			h.Add(chunk, foldCase)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nbytes, nil
			}
			return nbytes, err
		}
	}
}

// Entries returns the histogram rows sorted by decreasing count, ties
// broken by increasing code point, with percentages relative to the
// running total. Rows for the literal space and newline characters are
// dropped, as are rows whose percentage falls strictly below threshold.
// A zero total yields IEEE NaN or +Inf percentages, never a panic.
func (h *Histogram) Entries(threshold float64) []Entry {
	entries := make([]Entry, 0, h.counts.Len())
	for _, char := range h.counts.Keys() {
		// whitespace never survives Add; this only matters for
		// histograms assembled by hand
		if char == ' ' || char == '\n' {
			continue
		}

		count := h.counts.Get(char)
		percentage := float64(count) / float64(h.total) * 100
		if percentage < threshold {
			continue
		}
		entries = append(entries, Entry{Char: char, Count: count, Percentage: percentage})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Char < entries[j].Char
	})
	return entries
}

// Render formats each entry as "<character>: <bar> <percentage>%", the
// bar being one '#' per percentage point, rounded half-up. Lines are
// joined with newlines; no trailing newline is appended.
func (h *Histogram) Render(threshold float64) string {
	entries := h.Entries(threshold)

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("%c: %s %.2f%%", entry.Char, bar(entry.Percentage), entry.Percentage))
	}
	return strings.Join(lines, "\n")
}

// Total returns the number of characters recorded so far, whitespace
// excluded.
func (h *Histogram) Total() int {
	return h.total
}

// Distinct returns the number of distinct characters recorded.
func (h *Histogram) Distinct() int {
	return h.counts.Len()
}

func stripWhitespace(text string) string {
	return strings.Map(func(char rune) rune {
		if unicode.IsSpace(char) {
			return -1
		}
		return char
	}, text)
}

func bar(percentage float64) string {
	if math.IsNaN(percentage) || math.IsInf(percentage, 0) {
		return ""
	}
	length := int(math.Round(percentage))
	if length < 0 {
		length = 0
	}
	return strings.Repeat("#", length)
}
