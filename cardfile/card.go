// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cardfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const defaultHeader = "Sample runcard"

type entry struct {
	key   string
	value string
}

// Card is a parameter card: "key = value" lines in a fixed order, preceded
// by a "# header" comment line. The zero value is an empty card without a
// header.
type Card struct {
	Header string

	entries []entry
	index   map[string]int
}

func NewCard() *Card {
	return &Card{
		Header: defaultHeader,
		index:  make(map[string]int),
	}
}

// Set assigns value to key. A new key is appended after the existing ones;
// an existing key keeps its position.
func (c *Card) Set(key string, value any) {
	v := formatValue(value)
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if i, ok := c.index[key]; ok {
		c.entries[i].value = v
		return
	}
	c.index[key] = len(c.entries)
	c.entries = append(c.entries, entry{key: key, value: v})
}

func (c *Card) Get(key string) (string, bool) {
	i, ok := c.index[key]
	if !ok {
		return "", false
	}
	return c.entries[i].value, true
}

// Float returns the value of key parsed as a number.
func (c *Card) Float(key string) (float64, error) {
	v, ok := c.Get(key)
	if !ok {
		return 0, fmt.Errorf("Float: key %q not set", key)
	}
	return strconv.ParseFloat(v, 64)
}

// Keys returns the keys in card order.
func (c *Card) Keys() []string {
	keys := make([]string, len(c.entries))
	for i, e := range c.entries {
		keys[i] = e.key
	}
	return keys
}

func (c *Card) Len() int {
	return len(c.entries)
}

// WriteTo writes the card to w. The returned count is the number of bytes
// that reached w.
func (c *Card) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	if c.Header != "" {
		if _, err := fmt.Fprintf(bw, "# %s\n", c.Header); err != nil {
			return cw.n, err
		}
	}
	for _, e := range c.entries {
		if _, err := fmt.Fprintf(bw, "%s = %s\n", e.key, e.value); err != nil {
			return cw.n, err
		}
	}
	err := bw.Flush()
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// ParseCard reads a card written by WriteTo. The first comment line becomes
// the header; later comments and blank lines are skipped.
func ParseCard(r io.Reader) (*Card, error) {
	c := NewCard()
	c.Header = ""
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if comment, ok := strings.CutPrefix(text, "#"); ok {
			if c.Header == "" && c.Len() == 0 {
				c.Header = strings.TrimSpace(comment)
			}
			continue
		}
		key, value, ok := strings.Cut(text, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("ParseCard: line %d: %q: %w", line, text, ErrMalformedLine)
		}
		c.Set(key, strings.TrimSpace(value))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return FormatNumber(v)
	case float32:
		return FormatNumber(float64(v))
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(value)
}
