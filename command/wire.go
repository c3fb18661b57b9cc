package command

import (
	"encoding/json"
	"fmt"

	"github.com/shapelang/shapecore/ids"
	"github.com/shapelang/shapecore/kind"
)

// wire mirrors the event wire format's tagged-union envelope
// ({"AddShape": {...}}) with Add*/Set*/Remove* verbs.
type addShapeWire struct {
	ShapeID ids.ShapeId `json:"shapeId"`
	Kind    string      `json:"kind"`
	Name    string      `json:"name"`
}

type setParameterShapeWire struct {
	ShapeID      ids.ShapeId          `json:"shapeId"`
	ParameterID  ids.ShapeParameterId `json:"parameterId"`
	BoundShapeID ids.ShapeId          `json:"boundShapeId"`
}

type setFieldShapeWire struct {
	FieldID ids.FieldId `json:"fieldId"`
	ShapeID ids.ShapeId `json:"shapeId"`
}

type removeFieldWire struct {
	FieldID ids.FieldId `json:"fieldId"`
}

// MarshalJSON renders c as its tagged-union wire envelope.
func MarshalJSON(c ShapeCommand) ([]byte, error) {
	switch v := c.(type) {
	case AddShape:
		return json.Marshal(map[string]addShapeWire{
			"AddShape": {ShapeID: v.ShapeID, Kind: v.Kind.String(), Name: v.Name},
		})
	case SetParameterShape:
		return json.Marshal(map[string]setParameterShapeWire{
			"SetParameterShape": {ShapeID: v.ShapeID, ParameterID: v.ParameterID, BoundShapeID: v.BoundShapeID},
		})
	case SetFieldShape:
		return json.Marshal(map[string]setFieldShapeWire{
			"SetFieldShape": {FieldID: v.FieldID, ShapeID: v.ShapeID},
		})
	case RemoveField:
		return json.Marshal(map[string]removeFieldWire{
			"RemoveField": {FieldID: v.FieldID},
		})
	default:
		return nil, fmt.Errorf("command: unsupported ShapeCommand variant %T", c)
	}
}

// kindByName inverts kind.Kind.String() for wire decoding.
func kindByName(name string) (kind.Kind, bool) {
	for _, k := range []kind.Kind{
		kind.String, kind.Number, kind.Boolean, kind.Unknown, kind.Any,
		kind.Object, kind.List, kind.Map, kind.Nullable, kind.Optional,
		kind.OneOf, kind.Identifier, kind.Reference,
	} {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// UnmarshalJSON decodes a single tagged-union wire envelope into a
// ShapeCommand.
func UnmarshalJSON(data []byte) (ShapeCommand, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("command: decode envelope: %w", err)
	}
	if len(envelope) != 1 {
		return nil, fmt.Errorf("command: expected exactly one tagged variant, got %d", len(envelope))
	}

	for tag, raw := range envelope {
		switch tag {
		case "AddShape":
			var w addShapeWire
			if err := json.Unmarshal(raw, &w); err != nil {
				return nil, fmt.Errorf("command: decode AddShape: %w", err)
			}
			k, ok := kindByName(w.Kind)
			if !ok {
				return nil, fmt.Errorf("command: unknown shape kind %q", w.Kind)
			}
			return AddShape{ShapeID: w.ShapeID, Kind: k, Name: w.Name}, nil
		case "SetParameterShape":
			var w setParameterShapeWire
			if err := json.Unmarshal(raw, &w); err != nil {
				return nil, fmt.Errorf("command: decode SetParameterShape: %w", err)
			}
			return SetParameterShape{ShapeID: w.ShapeID, ParameterID: w.ParameterID, BoundShapeID: w.BoundShapeID}, nil
		case "SetFieldShape":
			var w setFieldShapeWire
			if err := json.Unmarshal(raw, &w); err != nil {
				return nil, fmt.Errorf("command: decode SetFieldShape: %w", err)
			}
			return SetFieldShape{FieldID: w.FieldID, ShapeID: w.ShapeID}, nil
		case "RemoveField":
			var w removeFieldWire
			if err := json.Unmarshal(raw, &w); err != nil {
				return nil, fmt.Errorf("command: decode RemoveField: %w", err)
			}
			return RemoveField{FieldID: w.FieldID}, nil
		default:
			return nil, fmt.Errorf("command: unknown tagged variant %q", tag)
		}
	}
	panic("unreachable")
}
