package request

// Column is one name/value pair of an ordered mapping.
type Column struct {
	Name  string
	Value any
}

// Columns is an insertion-ordered mapping with unique names. The zero value
// is ready to use.
type Columns struct {
	items []Column
	index map[string]int
}

// NewColumns builds a mapping from alternating name, value arguments.
// A trailing name without a value is paired with nil.
func NewColumns(pairs ...any) Columns {
	var c Columns
	for i := 0; i < len(pairs); i += 2 {
		name, _ := pairs[i].(string)
		var v any
		if i+1 < len(pairs) {
			v = pairs[i+1]
		}
		c.Set(name, v)
	}
	return c
}

// Set appends name, or replaces its value in place when already present.
func (c *Columns) Set(name string, value any) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if i, ok := c.index[name]; ok {
		c.items[i].Value = value
		return
	}
	c.index[name] = len(c.items)
	c.items = append(c.items, Column{Name: name, Value: value})
}

// Get returns the value stored for name.
func (c Columns) Get(name string) (any, bool) {
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return c.items[i].Value, true
}

func (c Columns) Len() int {
	return len(c.items)
}

// Names returns the column names in insertion order.
func (c Columns) Names() []string {
	names := make([]string, len(c.items))
	for i, it := range c.items {
		names[i] = it.Name
	}
	return names
}

// Items returns a copy of the pairs in insertion order.
func (c Columns) Items() []Column {
	out := make([]Column, len(c.items))
	copy(out, c.items)
	return out
}
