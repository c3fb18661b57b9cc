// Package shapegraph implements the typed directed multigraph that
// projects shape-definition events into queryable nodes and edges: one
// CoreShape per kind, user Shape/Field/ShapeParameter nodes, and the
// IsDescendantOf/IsFieldOf/BelongsTo/HasBinding edges connecting them.
//
// The projection is derived state: it is built exclusively by
// appending nodes and edges as events are applied, and is otherwise
// read-only. See the events package for the event-application entry
// point.
package shapegraph

import (
	"context"
	"log/slog"
	"sync"

	"github.com/shapelang/shapecore/ids"
	"github.com/shapelang/shapecore/internal/trace"
	"github.com/shapelang/shapecore/kind"
)

// Graph is the live shape graph projection. The zero value is not
// usable; construct with New.
//
// Graph is safe for concurrent use: read methods take a read lock and
// mutation methods (Add*) take a write lock. This serializes queries
// against concurrent event application but does not provide snapshot
// isolation across a multi-call query sequence.
type Graph struct {
	mu     sync.RWMutex
	logger *slog.Logger

	nodes []Node
	edges []Edge

	shapeIndex     map[ids.ShapeId]NodeIndex
	fieldIndex     map[ids.FieldId]NodeIndex
	parameterIndex map[ids.ShapeParameterId]NodeIndex
	coreShapeIndex map[kind.Kind]NodeIndex
}

// New constructs an empty Graph with one CoreShape node seeded per
// kind.Kind.
func New(opts ...Option) *Graph {
	cfg := &graphConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	g := &Graph{
		logger:         cfg.logger,
		shapeIndex:     make(map[ids.ShapeId]NodeIndex),
		fieldIndex:     make(map[ids.FieldId]NodeIndex),
		parameterIndex: make(map[ids.ShapeParameterId]NodeIndex),
		coreShapeIndex: make(map[kind.Kind]NodeIndex),
	}

	for _, k := range allKinds {
		idx := g.appendNode(CoreShape{Kind: k})
		g.coreShapeIndex[k] = idx
	}

	return g
}

var allKinds = []kind.Kind{
	kind.String, kind.Number, kind.Boolean, kind.Unknown, kind.Any,
	kind.Object, kind.List, kind.Map, kind.Nullable, kind.Optional,
	kind.OneOf, kind.Identifier, kind.Reference,
}

func (g *Graph) appendNode(n Node) NodeIndex {
	idx := NodeIndex(len(g.nodes))
	g.nodes = append(g.nodes, n)
	return idx
}

// CoreShapeNode returns the single CoreShape node index for k.
func (g *Graph) CoreShapeNode(k kind.Kind) (NodeIndex, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	idx, ok := g.coreShapeIndex[k]
	return idx, ok
}

// AddShape appends a new Shape node descending from the CoreShape of
// core via a single IsDescendantOf edge, and indexes it by id.
func (g *Graph) AddShape(ctx context.Context, id ids.ShapeId, name string, core kind.Kind) (NodeIndex, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	op := trace.Begin(ctx, g.logger, "shapecore.shapegraph.addShape", slog.String("shape_id", string(id)))
	var err error
	defer func() { op.End(err) }()

	if _, exists := g.shapeIndex[id]; exists {
		err = ErrDuplicateID
		return 0, err
	}

	coreIdx, ok := g.coreShapeIndex[core]
	if !ok {
		err = ErrInternal
		return 0, err
	}

	shapeIdx := g.appendNode(Shape{ShapeID: id, Name: name})
	g.shapeIndex[id] = shapeIdx
	g.edges = append(g.edges, Edge{Kind: IsDescendantOf, Source: shapeIdx, Target: coreIdx})

	return shapeIdx, nil
}

// AddField appends a new Field node owned by the object node at owner,
// and indexes it by id.
func (g *Graph) AddField(ctx context.Context, id ids.FieldId, name string, owner NodeIndex) (NodeIndex, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	op := trace.Begin(ctx, g.logger, "shapecore.shapegraph.addField", slog.String("field_id", string(id)))
	var err error
	defer func() { op.End(err) }()

	if _, exists := g.fieldIndex[id]; exists {
		err = ErrDuplicateID
		return 0, err
	}

	fieldIdx := g.appendNode(Field{FieldID: id, Name: name})
	g.fieldIndex[id] = fieldIdx
	g.edges = append(g.edges, Edge{Kind: IsFieldOf, Source: fieldIdx, Target: owner})

	return fieldIdx, nil
}

// SetFieldShape records shapeIdx as the Shape currently bound as the
// type of the field at fieldIdx via a BelongsTo edge. Rebinding a field
// (as the edit planner does when stripping or wrapping) appends a new
// edge rather than mutating an existing one; readers must take the
// last BelongsTo edge for a field as authoritative.
func (g *Graph) SetFieldShape(ctx context.Context, shapeIdx, fieldIdx NodeIndex) {
	g.mu.Lock()
	defer g.mu.Unlock()

	op := trace.Begin(ctx, g.logger, "shapecore.shapegraph.setFieldShape")
	defer func() { op.End(nil) }()

	g.edges = append(g.edges, Edge{Kind: BelongsTo, Source: shapeIdx, Target: fieldIdx})
}

// RemoveField tombstones the field at fieldIdx: its ID and node remain,
// but it is excluded from subsequent FieldsOf results.
func (g *Graph) RemoveField(ctx context.Context, fieldIdx NodeIndex) {
	g.mu.Lock()
	defer g.mu.Unlock()

	op := trace.Begin(ctx, g.logger, "shapecore.shapegraph.removeField")
	defer func() { op.End(nil) }()

	if f, ok := g.nodes[fieldIdx].(Field); ok {
		f.Removed = true
		g.nodes[fieldIdx] = f
	}
}

// AddShapeParameter appends a new ShapeParameter node and indexes it by
// id. An id that is already indexed returns its existing node, so every
// shape declaring a well-known parameter such as $nullableInner binds
// through the same ShapeParameter node.
func (g *Graph) AddShapeParameter(ctx context.Context, id ids.ShapeParameterId, name string) NodeIndex {
	g.mu.Lock()
	defer g.mu.Unlock()

	op := trace.Begin(ctx, g.logger, "shapecore.shapegraph.addShapeParameter", slog.String("parameter_id", string(id)))
	defer func() { op.End(nil) }()

	if idx, exists := g.parameterIndex[id]; exists {
		return idx
	}

	idx := g.appendNode(ShapeParameter{ParameterID: id, Name: name})
	g.parameterIndex[id] = idx
	return idx
}

// SetParameterShape records boundShapeID as the shape bound to the
// parameter at parameterIdx via a HasBinding edge from shapeIdx.
func (g *Graph) SetParameterShape(ctx context.Context, shapeIdx, parameterIdx NodeIndex, boundShapeID ids.ShapeId) {
	g.mu.Lock()
	defer g.mu.Unlock()

	op := trace.Begin(ctx, g.logger, "shapecore.shapegraph.setParameterShape", slog.String("bound_shape_id", string(boundShapeID)))
	defer func() { op.End(nil) }()

	g.edges = append(g.edges, Edge{Kind: HasBinding, Source: shapeIdx, Target: parameterIdx, BoundShapeID: boundShapeID})
}

// AddBatchCommit appends an inert provenance marker node.
func (g *Graph) AddBatchCommit(commitID string) NodeIndex {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.appendNode(BatchCommit{CommitID: commitID})
}

// ShapeNode returns the node index for a ShapeId, or false if absent.
func (g *Graph) ShapeNode(id ids.ShapeId) (NodeIndex, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	idx, ok := g.shapeIndex[id]
	return idx, ok
}

// FieldNode returns the node index and Field data for a FieldId, or
// false if absent.
func (g *Graph) FieldNode(id ids.FieldId) (NodeIndex, *Field, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	idx, ok := g.fieldIndex[id]
	if !ok {
		return 0, nil, false
	}
	f, ok := g.nodes[idx].(Field)
	if !ok {
		return 0, nil, false
	}
	return idx, &f, true
}

// ParameterNode returns the node index for a ShapeParameterId, or false
// if absent.
func (g *Graph) ParameterNode(id ids.ShapeParameterId) (NodeIndex, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	idx, ok := g.parameterIndex[id]
	return idx, ok
}

// NodeAt returns the node stored at idx. Panics if idx is out of range,
// which indicates a caller-side bug (an index obtained from a prior
// query on this same graph instance is always in range).
func (g *Graph) NodeAt(idx NodeIndex) Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.nodes[idx]
}

// AncestorCoreShape follows the single outgoing IsDescendantOf edge
// from shapeIdx to its CoreShape. This resolves exactly one hop; it
// does not walk an intermediate Shape -> Shape -> CoreShape chain.
// Returns false if shapeIdx has no outgoing IsDescendantOf edge or its
// target is not a CoreShape node.
func (g *Graph) AncestorCoreShape(shapeIdx NodeIndex) (NodeIndex, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.edges {
		if e.Kind == IsDescendantOf && e.Source == shapeIdx {
			if _, ok := g.nodes[e.Target].(CoreShape); ok {
				return e.Target, true
			}
			return 0, false
		}
	}
	return 0, false
}

// CoreShapeChildren enumerates the CoreShape nodes reachable from the
// shape at shapeIdx along its descendant chain. Since AncestorCoreShape
// only resolves one hop, a shape has at most one such ancestor, so the
// result has length 0 or 1; the slice shape keeps the door open for a
// future multi-level descendant chain without changing callers.
func (g *Graph) CoreShapeChildren(shapeIdx NodeIndex) []CoreShape {
	coreIdx, ok := g.AncestorCoreShape(shapeIdx)
	if !ok {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	cs, ok := g.nodes[coreIdx].(CoreShape)
	if !ok {
		return nil
	}
	return []CoreShape{cs}
}

// FieldsOf returns the non-removed fields declared on the object shape
// at shapeIdx, in insertion order.
func (g *Graph) FieldsOf(shapeIdx NodeIndex) []Field {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Field
	for _, e := range g.edges {
		if e.Kind != IsFieldOf || e.Target != shapeIdx {
			continue
		}
		if f, ok := g.nodes[e.Source].(Field); ok && !f.Removed {
			out = append(out, f)
		}
	}
	return out
}

// Owner returns the declaring parent of node: for a Field, its object
// Shape (via IsFieldOf); for a Shape bound as the type of a Field, that
// Field (via BelongsTo, most recent binding wins); for any other Shape
// bound into a parameter slot, the combinator Shape that binds it (via
// HasBinding, most recent binding wins); for anything else, false.
func (g *Graph) Owner(node NodeIndex) (NodeIndex, Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	switch n := g.nodes[node].(type) {
	case Field:
		for _, e := range g.edges {
			if e.Kind == IsFieldOf && e.Source == node {
				return e.Target, g.nodes[e.Target], true
			}
		}
	case Shape:
		var owner NodeIndex
		found := false
		for _, e := range g.edges {
			if e.Kind == BelongsTo && e.Source == node {
				owner = e.Target
				found = true
			}
		}
		if !found {
			for _, e := range g.edges {
				if e.Kind == HasBinding && e.BoundShapeID == n.ShapeID {
					owner = e.Source
					found = true
				}
			}
		}
		if found {
			return owner, g.nodes[owner], true
		}
	}
	return 0, nil, false
}

// EdgesFrom returns, in insertion order, the edges of kind k whose
// Source is node.
func (g *Graph) EdgesFrom(node NodeIndex, k EdgeKind) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge
	for _, e := range g.edges {
		if e.Kind == k && e.Source == node {
			out = append(out, e)
		}
	}
	return out
}

// EdgesTo returns, in insertion order, the edges of kind k whose Target
// is node.
func (g *Graph) EdgesTo(node NodeIndex, k EdgeKind) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge
	for _, e := range g.edges {
		if e.Kind == k && e.Target == node {
			out = append(out, e)
		}
	}
	return out
}
