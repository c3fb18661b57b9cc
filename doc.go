// Package shapecore provides a graph-structured model of user-defined API
// shapes and the queries and edit commands that operate over it.
//
// shapecore maintains a typed multigraph projection of shape definitions
// (objects, lists, maps, and the nullable/optional/one-of combinators that
// wrap them), resolves trails through that graph to concrete core shapes,
// enumerates the possible choices a trail can resolve to, and plans the
// sequence of commands needed to change the shape assigned at a trail.
//
// # Architecture Overview
//
// The module is organized into layers with strict dependency ordering:
//
//	Foundation tier (no dependencies outside this tier; kind uses ids):
//	  - ids: Identifier types and generation for shapes, fields, and parameters
//	  - kind: The closed set of shape kinds and their parameter descriptors
//	  - fault: Typed errors for the query and command layers
//
//	Core library tier:
//	  - shapegraph: Typed multigraph of shape, field, and parameter nodes
//	  - events: Wire events that construct and mutate a shape graph
//	  - trail: Paths through a shape graph (object fields, list items,
//	    nullable/optional/one-of members)
//
//	Query and command tier:
//	  - query: Trail resolution, choice enumeration, and shape-edit planning
//	  - command: Wire commands emitted by the planner
//
// # Entry Points
//
// Building a graph from events:
//
//	import (
//	    "github.com/shapelang/shapecore/events"
//	    "github.com/shapelang/shapecore/shapegraph"
//	)
//
//	g := shapegraph.New()
//	for _, ev := range decodedEvents {
//	    if err := events.Apply(ctx, g, ev); err != nil {
//	        // unsupported or malformed event
//	    }
//	}
//
// Resolving trails and enumerating choices:
//
//	import "github.com/shapelang/shapecore/query"
//
//	q := query.New(g)
//	choices := q.ListTrailChoices(trail.ShapeTrail{RootShapeID: rootID})
//
// Planning a shape edit:
//
//	cmds, ok := q.EditShapeTrailCommands(fieldTrail, []kind.Kind{kind.Optional}, gen)
//	if !ok {
//	    // trail does not select an editable field
//	}
//	for _, c := range cmds {
//	    // emit c to the event log
//	}
//
// # Subpackages
//
// See the individual package documentation for detailed usage:
//
//   - [github.com/shapelang/shapecore/ids]: Identifier types and generation
//   - [github.com/shapelang/shapecore/kind]: Shape kinds and parameter descriptors
//   - [github.com/shapelang/shapecore/fault]: Error taxonomy for queries and planning
//   - [github.com/shapelang/shapecore/shapegraph]: Shape graph construction and traversal
//   - [github.com/shapelang/shapecore/events]: Wire event decoding and application
//   - [github.com/shapelang/shapecore/trail]: Shape trails and path components
//   - [github.com/shapelang/shapecore/query]: Trail resolution and shape-edit planning
//   - [github.com/shapelang/shapecore/command]: Wire commands emitted by the planner
package shapecore
