// Package catalog holds the immutable sticker catalog and the browse state
// that derives filtered views from it.
package catalog

import (
	"log"
	"strings"
)

// Sticker is one catalog entry. Filename is the unique identifier and also
// names the image asset; Caption may be empty.
type Sticker struct {
	Filename string
	Caption  string
}

// Catalog is an ordered, read-only collection of stickers. Insertion order is
// preserved and is the default display order.
type Catalog struct {
	stickers []Sticker
	byName   map[string]int
}

// New builds a catalog from records, preserving order. Records without a
// filename are skipped rather than failing the whole load; duplicates keep
// the first occurrence. A nil or empty input is a valid empty catalog.
func New(records []Sticker) *Catalog {
	c := &Catalog{
		stickers: make([]Sticker, 0, len(records)),
		byName:   make(map[string]int, len(records)),
	}
	for _, record := range records {
		if strings.TrimSpace(record.Filename) == "" {
			log.Printf("catalog: skipping record with empty filename (caption %q)", record.Caption)
			continue
		}
		if _, exists := c.byName[record.Filename]; exists {
			log.Printf("catalog: skipping duplicate filename %q", record.Filename)
			continue
		}
		c.byName[record.Filename] = len(c.stickers)
		c.stickers = append(c.stickers, record)
	}
	return c
}

// All returns every sticker in catalog order. The returned slice is shared
// and must not be mutated.
func (c *Catalog) All() []Sticker {
	if c == nil {
		return nil
	}
	return c.stickers
}

// Len reports the number of stickers.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.stickers)
}

// Resolve looks up one sticker by exact filename. A missing filename is a
// normal outcome, not an error.
func (c *Catalog) Resolve(filename string) (Sticker, bool) {
	if c == nil {
		return Sticker{}, false
	}
	idx, ok := c.byName[filename]
	if !ok {
		return Sticker{}, false
	}
	return c.stickers[idx], true
}
