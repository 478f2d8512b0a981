// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package frontmatter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"
)

// Delimiter opens and closes a front-matter block
const Delimiter = "---"

// DateLayout is the layout of Meta.Date
const DateLayout = "2006/01/02"

const maxLineSize = 1024 * 1024

// ErrFrontMatterNotClosed is raised to signal that a front-matter
// block was opened but the closing `---` was never found
var ErrFrontMatterNotClosed = errors.New("missing closing frontmatter `---`")

var (
	datePattern  = regexp.MustCompile(`^date:\s*(.+)$`)
	draftPattern = regexp.MustCompile(`^draft:\s*true$`)
)

// accepted date layouts, tried in order
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Meta holds the post properties found in a front-matter block
type Meta struct {
	// Date is formatted as DateLayout, empty if the block declares none
	Date  string
	Draft bool
}

// DateError reports a date value none of the accepted layouts matches
type DateError struct {
	Value string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("unsupported date %q, expected an ISO-8601 date like 2006-01-02", e.Value)
}

// Parse reads the leading front-matter block of a post. Lines before the
// opening delimiter are ignored and reading stops at the closing one.
// Only the `date` and `draft` keys are recognized.
func Parse(r io.Reader) (*Meta, error) {
	var (
		meta    = &Meta{}
		started bool
		closed  bool
	)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == Delimiter {
			if started {
				closed = true
				break
			}
			started = true
			continue
		}
		if !started {
			continue
		}
		if m := datePattern.FindStringSubmatch(line); m != nil {
			date, err := ParseDate(m[1])
			if err != nil {
				return nil, err
			}
			meta.Date = date
			continue
		}
		if draftPattern.MatchString(line) {
			meta.Draft = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if started && !closed {
		return nil, ErrFrontMatterNotClosed
	}
	return meta, nil
}

// ParseDate parses a front-matter date value and formats it as DateLayout
func ParseDate(value string) (string, error) {
	value = unquote(strings.TrimSpace(value))
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(DateLayout), nil
		}
	}
	return "", &DateError{Value: value}
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
