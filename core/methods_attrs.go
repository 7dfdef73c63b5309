// File: methods_attrs.go
// Role: Attribute mutation on vertices and edges, plus numeric decoding helpers.
// Events:
//   - Set* emits *AttrAdded for a new key and *AttrChanged for an existing one.
//   - Remove* emits *AttrRemoved only when the key was present.

package core

import (
	"math"
	"strconv"
	"strings"
)

// SetVertexAttr sets attribute key on vertex id.
// Complexity: O(1).
func (g *Graph) SetVertexAttr(id, key string, value interface{}) error {
	g.muVert.Lock()
	v, ok := g.vertices[id]
	if !ok {
		g.muVert.Unlock()
		return ErrVertexNotFound
	}
	_, existed := v.Attrs[key]
	v.Attrs[key] = value
	g.muVert.Unlock()

	kind := NodeAttrAdded
	if existed {
		kind = NodeAttrChanged
	}
	g.emit(Event{Kind: kind, Vertex: id, Key: key, Value: value})

	return nil
}

// RemoveVertexAttr deletes attribute key from vertex id.
// Removing an absent key is a silent no-op.
func (g *Graph) RemoveVertexAttr(id, key string) error {
	g.muVert.Lock()
	v, ok := g.vertices[id]
	if !ok {
		g.muVert.Unlock()
		return ErrVertexNotFound
	}
	_, existed := v.Attrs[key]
	delete(v.Attrs, key)
	g.muVert.Unlock()

	if existed {
		g.emit(Event{Kind: NodeAttrRemoved, Vertex: id, Key: key})
	}

	return nil
}

// SetEdgeAttr sets attribute key on edge eid.
// Complexity: O(1).
func (g *Graph) SetEdgeAttr(eid, key string, value interface{}) error {
	g.muEdgeAdj.Lock()
	e, ok := g.edges[eid]
	if !ok {
		g.muEdgeAdj.Unlock()
		return ErrEdgeNotFound
	}
	_, existed := e.Attrs[key]
	e.Attrs[key] = value
	g.muEdgeAdj.Unlock()

	kind := EdgeAttrAdded
	if existed {
		kind = EdgeAttrChanged
	}
	g.emit(Event{Kind: kind, Edge: eid, Key: key, Value: value})

	return nil
}

// RemoveEdgeAttr deletes attribute key from edge eid.
// Removing an absent key is a silent no-op.
func (g *Graph) RemoveEdgeAttr(eid, key string) error {
	g.muEdgeAdj.Lock()
	e, ok := g.edges[eid]
	if !ok {
		g.muEdgeAdj.Unlock()
		return ErrEdgeNotFound
	}
	_, existed := e.Attrs[key]
	delete(e.Attrs, key)
	g.muEdgeAdj.Unlock()

	if existed {
		g.emit(Event{Kind: EdgeAttrRemoved, Edge: eid, Key: key})
	}

	return nil
}

// Int64Attr looks up key in attrs and decodes it as an integer.
// It reports false when the key is absent or the value is non-numeric.
//
// Accepted values: every Go integer kind, finite float32/float64 (truncated
// toward zero), and strings holding such a number. Unsigned values above
// math.MaxInt64 are rejected.
func Int64Attr(attrs map[string]interface{}, key string) (int64, bool) {
	if key == "" {
		return 0, false
	}
	v, ok := attrs[key]
	if !ok {
		return 0, false
	}

	return AsInt64(v)
}

// AsInt64 decodes a single attribute value; see Int64Attr.
func AsInt64(v interface{}) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return fromUint(x)
	case float32:
		return fromFloat(float64(x))
	case float64:
		return fromFloat(x)
	case string:
		s := strings.TrimSpace(x)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return fromFloat(f)
		}
	}

	return 0, false
}

func fromUint(u uint64) (int64, bool) {
	if u > math.MaxInt64 {
		return 0, false
	}

	return int64(u), true
}

func fromFloat(f float64) (int64, bool) {
	if math.IsNaN(f) || f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0, false
	}

	return int64(f), true
}
