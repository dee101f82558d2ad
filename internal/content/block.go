// Package content holds the ordered block model of a blog post body and
// the compiler that turns it into HTML.
//
// A post body is a Collection of typed Blocks. Block ids are local to one
// post: appends take max+1, a reorder renumbers 1..N. The stored form is
// JSON ({"Items":[{"Id":1,"Type":"paragraph","Content":"..."}]}) so rows
// written by the previous site keep loading.
package content

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Type block type tag as stored
type Type string

// Block types. The tag values are the stored wire values.
const (
	TypeParagraph      Type = "paragraph"
	TypeHeading2       Type = "h2"
	TypeHeading3       Type = "h3"
	TypeBold           Type = "b"
	TypeLink           Type = "a"
	TypeDefinitionList Type = "li"
)

// Known reports whether the type has a renderer
func (t Type) Known() bool {
	_, ok := renderers[t]
	return ok
}

// Block one typed fragment of a post body
type Block struct {
	ID      int    `json:"Id"`
	Type    Type   `json:"Type"`
	Content string `json:"Content"`
}

// Item one entry of a reorder request
type Item struct {
	Content string
	Type    Type
}

// Collection the blocks of one post, kept sorted by ID
type Collection struct {
	Items []Block `json:"Items"`
}

// New returns an empty collection
func New() *Collection {
	return &Collection{Items: []Block{}}
}

// Parse decodes the stored form. Blank input is an empty collection.
func Parse(raw string) (*Collection, error) {
	if strings.TrimSpace(raw) == "" {
		return New(), nil
	}

	var c Collection
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return nil, fmt.Errorf("decode blocks: %w", err)
	}
	if c.Items == nil {
		c.Items = []Block{}
	}
	slices.SortStableFunc(c.Items, byID)
	return &c, nil
}

// Serialize encodes the collection to its stored form
func (c *Collection) Serialize() (string, error) {
	items := c.Items
	if items == nil {
		items = []Block{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(Collection{Items: items}); err != nil {
		return "", fmt.Errorf("encode blocks: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// Len number of blocks
func (c *Collection) Len() int {
	return len(c.Items)
}

// Blocks returns a copy of the blocks in id order
func (c *Collection) Blocks() []Block {
	return slices.Clone(c.Items)
}

// NextID the id an append would receive: max existing + 1, or 1 when empty
func (c *Collection) NextID() int {
	if len(c.Items) == 0 {
		return 1
	}
	return c.Items[len(c.Items)-1].ID + 1
}

// Upsert appends or replaces a block.
// A nil id, or an id no block carries, appends with NextID. An existing id
// is overwritten in full (type and content), keeping the id.
// Returns the id the block ended up with and whether it replaced one.
func (c *Collection) Upsert(id *int, typ Type, body string) (int, bool) {
	if id != nil {
		if i, ok := c.index(*id); ok {
			c.Items[i] = Block{ID: *id, Type: typ, Content: body}
			return *id, true
		}
	}

	next := c.NextID()
	c.Items = append(c.Items, Block{ID: next, Type: typ, Content: body})
	return next, false
}

// Rebuild replaces everything with items, numbered 1..N in the given order
func Rebuild(items []Item) *Collection {
	c := &Collection{Items: make([]Block, 0, len(items))}
	for i, it := range items {
		c.Items = append(c.Items, Block{ID: i + 1, Type: it.Type, Content: it.Content})
	}
	return c
}

func (c *Collection) index(id int) (int, bool) {
	i, found := slices.BinarySearchFunc(c.Items, id, func(b Block, target int) int {
		return cmp.Compare(b.ID, target)
	})
	return i, found
}

func byID(a, b Block) int {
	return cmp.Compare(a.ID, b.ID)
}
