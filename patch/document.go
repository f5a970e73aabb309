package patch

import (
	"github.com/iancoleman/orderedmap"
)

// Document is a parsed configuration file. Fields the patcher does not
// know about are kept as-is and survive a rewrite in their original key
// order.
type Document struct {
	root orderedmap.OrderedMap
}

// Tables returns the entries of the "Tables" array. A missing or
// malformed field is an empty configuration, not an error.
func (d *Document) Tables() []Table {
	raw, ok := d.root.Get("Tables")
	if !ok {
		return nil
	}
	arr, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	res := make([]Table, 0, len(arr))
	for _, item := range arr {
		om, ok := item.(orderedmap.OrderedMap)
		if !ok {
			continue
		}
		res = append(res, Table{om: om})
	}
	return res
}

// Table is a single table entry.
type Table struct {
	om orderedmap.OrderedMap
}

// Name returns the "<Schema>.<Table>" name of the entry.
func (t Table) Name() string { return stringField(t.om, "TableName") }

// Columns returns the entries of the table's "Columns" array.
func (t Table) Columns() []Column {
	raw, ok := t.om.Get("Columns")
	if !ok {
		return nil
	}
	arr, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	res := make([]Column, 0, len(arr))
	for i, item := range arr {
		om, ok := item.(orderedmap.OrderedMap)
		if !ok {
			continue
		}
		res = append(res, Column{arr: arr, idx: i, om: om})
	}
	return res
}

// Column is a single column entry. It remembers its place in the parent
// array so Disable can store the modified entry back.
type Column struct {
	arr []interface{}
	idx int
	om  orderedmap.OrderedMap
}

func (c Column) Name() string { return stringField(c.om, "ColumnName") }

// Enabled reports the column's flag. An absent flag counts as enabled.
func (c Column) Enabled() bool {
	raw, ok := c.om.Get("Enabled")
	if !ok {
		return true
	}
	enabled, ok := raw.(bool)
	return !ok || enabled
}

// Disable sets the column's Enabled flag to false.
func (c Column) Disable() {
	c.om.Set("Enabled", false)
	c.arr[c.idx] = c.om
}

func stringField(om orderedmap.OrderedMap, key string) string {
	raw, ok := om.Get(key)
	if !ok {
		return ""
	}
	s, _ := raw.(string)
	return s
}
