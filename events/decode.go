package events

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/tidwall/jsonc"

	"github.com/shapelang/shapecore/ids"
)

// wire structs mirror the tagged-union envelope each event is encoded
// as: {"ShapeAdded": {...}}, {"FieldAdded": {...}}, and so on. Field
// and parameter bindings arrive nested inside tagged shape descriptors
// ({"FieldShapeFromShape": {...}}, {"ProviderInShape": {...}}); unknown
// sibling keys such as eventContext are ignored.
type shapeAddedWire struct {
	ShapeID     ids.ShapeId `json:"shapeId"`
	BaseShapeID string      `json:"baseShapeId"`
	Name        string      `json:"name"`
}

type shapeParameterAddedWire struct {
	ShapeID     ids.ShapeId          `json:"shapeId"`
	ParameterID ids.ShapeParameterId `json:"shapeParameterId"`
	Name        string               `json:"name"`
}

type shapeProviderWire struct {
	ShapeID ids.ShapeId `json:"shapeId"`
}

type providerDescriptorWire struct {
	ShapeProvider *shapeProviderWire `json:"ShapeProvider"`
}

type providerInShapeWire struct {
	ShapeID              ids.ShapeId            `json:"shapeId"`
	ProviderDescriptor   providerDescriptorWire `json:"providerDescriptor"`
	ConsumingParameterID ids.ShapeParameterId   `json:"consumingParameterId"`
}

type parameterShapeDescriptorWire struct {
	ProviderInShape *providerInShapeWire `json:"ProviderInShape"`
}

type shapeParameterShapeSetWire struct {
	ShapeDescriptor parameterShapeDescriptorWire `json:"shapeDescriptor"`
}

type fieldShapeFromShapeWire struct {
	FieldID ids.FieldId `json:"fieldId"`
	ShapeID ids.ShapeId `json:"shapeId"`
}

type fieldShapeDescriptorWire struct {
	FieldShapeFromShape *fieldShapeFromShapeWire `json:"FieldShapeFromShape"`
}

type fieldAddedWire struct {
	FieldID         ids.FieldId              `json:"fieldId"`
	ShapeID         ids.ShapeId              `json:"shapeId"`
	Name            string                   `json:"name"`
	ShapeDescriptor fieldShapeDescriptorWire `json:"shapeDescriptor"`
}

type fieldRemovedWire struct {
	FieldID ids.FieldId `json:"fieldId"`
}

// DecodeStream decodes a JSON (optionally JSONC - comments and trailing
// commas are tolerated) array of tagged-union events into a []Event, in
// stream order.
func DecodeStream(r io.Reader) ([]Event, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("events: reading stream: %w", err)
	}

	processed := jsonc.ToJSON(data)

	dec := json.NewDecoder(bytes.NewReader(processed))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("events: invalid JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, fmt.Errorf("events: expected array at root, got %v", tok)
	}

	var out []Event
	idx := 0
	for dec.More() {
		var envelope map[string]json.RawMessage
		if err := dec.Decode(&envelope); err != nil {
			return nil, fmt.Errorf("events: decoding event %d: %w", idx, err)
		}
		ev, err := decodeEnvelope(envelope)
		if err != nil {
			return nil, fmt.Errorf("events: event %d: %w", idx, err)
		}
		out = append(out, ev)
		idx++
	}

	return out, nil
}

func decodeEnvelope(envelope map[string]json.RawMessage) (Event, error) {
	if len(envelope) != 1 {
		return nil, fmt.Errorf("expected exactly one tagged variant, got %d", len(envelope))
	}

	for tag, raw := range envelope {
		switch tag {
		case "ShapeAdded":
			var w shapeAddedWire
			if err := json.Unmarshal(raw, &w); err != nil {
				return nil, fmt.Errorf("decode ShapeAdded: %w", err)
			}
			return ShapeAdded{ShapeID: w.ShapeID, BaseShapeID: w.BaseShapeID, Name: w.Name}, nil
		case "ShapeParameterAdded":
			var w shapeParameterAddedWire
			if err := json.Unmarshal(raw, &w); err != nil {
				return nil, fmt.Errorf("decode ShapeParameterAdded: %w", err)
			}
			return ShapeParameterAdded{ShapeID: w.ShapeID, ParameterID: w.ParameterID, Name: w.Name}, nil
		case "ShapeParameterShapeSet":
			var w shapeParameterShapeSetWire
			if err := json.Unmarshal(raw, &w); err != nil {
				return nil, fmt.Errorf("decode ShapeParameterShapeSet: %w", err)
			}
			in := w.ShapeDescriptor.ProviderInShape
			if in == nil {
				return nil, fmt.Errorf("decode ShapeParameterShapeSet: missing ProviderInShape descriptor")
			}
			if in.ProviderDescriptor.ShapeProvider == nil {
				return nil, fmt.Errorf("decode ShapeParameterShapeSet: missing ShapeProvider descriptor")
			}
			return ShapeParameterShapeSet{
				ShapeID:         in.ShapeID,
				ParameterID:     in.ConsumingParameterID,
				ProviderShapeID: in.ProviderDescriptor.ShapeProvider.ShapeID,
			}, nil
		case "FieldAdded":
			var w fieldAddedWire
			if err := json.Unmarshal(raw, &w); err != nil {
				return nil, fmt.Errorf("decode FieldAdded: %w", err)
			}
			from := w.ShapeDescriptor.FieldShapeFromShape
			if from == nil {
				return nil, fmt.Errorf("decode FieldAdded: missing FieldShapeFromShape descriptor")
			}
			return FieldAdded{FieldID: w.FieldID, ShapeID: w.ShapeID, Name: w.Name, FieldShapeID: from.ShapeID}, nil
		case "FieldRemoved":
			var w fieldRemovedWire
			if err := json.Unmarshal(raw, &w); err != nil {
				return nil, fmt.Errorf("decode FieldRemoved: %w", err)
			}
			return FieldRemoved{FieldID: w.FieldID}, nil
		default:
			return nil, fmt.Errorf("unknown event tag %q", tag)
		}
	}
	panic("unreachable")
}
