package treespec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/flitsinc/juicy/value"
)

// BadSpecError reports that a user-supplied spec did not match the grammar
// of spec.md §6.4. No parse begins when this is returned.
type BadSpecError struct {
	Reason string
}

func (e *BadSpecError) Error() string { return "treespec: bad spec: " + e.Reason }

// Validate typechecks raw against the spec grammar without building a Spec
// (spec.md §6.1's validate_spec).
func Validate(raw []byte) error {
	_, err := FromJSON(raw)
	return err
}

// FromJSON parses the wire grammar of spec.md §6.4:
//
//	node := [type, options]            // type == "any"
//	      | [type, options, payload]   // type in {"map", "map_keys", "array"}
//
// options is a JSON object with recognized keys
// {stream, struct_atom, atom_mappings, ignore_not_mapped}; payload is a
// child node for "map"/"array", or an object of key -> child node for
// "map_keys".
func FromJSON(raw []byte) (*Spec, error) {
	var tuple []json.RawMessage
	if err := json.Unmarshal(raw, &tuple); err != nil {
		return nil, &BadSpecError{Reason: "top-level spec must be a JSON array: " + err.Error()}
	}
	s := newSpec()
	if _, err := s.parseNode(tuple, SentinelID); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Spec) parseNode(tuple []json.RawMessage, parent NodeId) (NodeId, error) {
	if len(tuple) < 2 || len(tuple) > 3 {
		return 0, &BadSpecError{Reason: fmt.Sprintf("node tuple must have 2 or 3 elements, got %d", len(tuple))}
	}
	var typ string
	if err := json.Unmarshal(tuple[0], &typ); err != nil {
		return 0, &BadSpecError{Reason: "node type must be a string: " + err.Error()}
	}
	opts, err := parseOptions(tuple[1])
	if err != nil {
		return 0, err
	}

	switch typ {
	case "any":
		if len(tuple) != 2 {
			return 0, &BadSpecError{Reason: `"any" nodes take no payload`}
		}
		return s.addNode(VariantAny, parent, opts), nil

	case "array":
		if len(tuple) != 3 {
			return 0, &BadSpecError{Reason: `"array" nodes require a payload`}
		}
		id := s.addNode(VariantArray, parent, opts)
		var childTuple []json.RawMessage
		if err := json.Unmarshal(tuple[2], &childTuple); err != nil {
			return 0, &BadSpecError{Reason: "array payload must be a node tuple: " + err.Error()}
		}
		childID, err := s.parseNode(childTuple, id)
		if err != nil {
			return 0, err
		}
		s.Node(id).Child = childID
		return id, nil

	case "map":
		if len(tuple) != 3 {
			return 0, &BadSpecError{Reason: `"map" nodes require a payload`}
		}
		id := s.addNode(VariantMap, parent, opts)
		var childTuple []json.RawMessage
		if err := json.Unmarshal(tuple[2], &childTuple); err != nil {
			return 0, &BadSpecError{Reason: "map payload must be a node tuple: " + err.Error()}
		}
		childID, err := s.parseNode(childTuple, id)
		if err != nil {
			return 0, err
		}
		s.Node(id).Child = childID
		return id, nil

	case "map_keys":
		if len(tuple) != 3 {
			return 0, &BadSpecError{Reason: `"map_keys" nodes require a payload`}
		}
		id := s.addNode(VariantMapKeys, parent, opts)
		s.Node(id).Children = make(map[string]NodeId)
		keys, tuples, err := orderedObject(tuple[2])
		if err != nil {
			return 0, &BadSpecError{Reason: "map_keys payload must be an object of node tuples: " + err.Error()}
		}
		for i, key := range keys {
			var childTuple []json.RawMessage
			if err := json.Unmarshal(tuples[i], &childTuple); err != nil {
				return 0, &BadSpecError{Reason: fmt.Sprintf("map_keys[%q] must be a node tuple: %v", key, err)}
			}
			childID, err := s.parseNode(childTuple, id)
			if err != nil {
				return 0, err
			}
			n := s.Node(id)
			n.Children[key] = childID
			n.ChildOrder = append(n.ChildOrder, key)
		}
		return id, nil

	default:
		return 0, &BadSpecError{Reason: fmt.Sprintf("unknown node type %q", typ)}
	}
}

var recognizedOptionKeys = map[string]bool{
	"stream":            true,
	"struct_atom":       true,
	"atom_mappings":     true,
	"ignore_not_mapped": true,
}

func parseOptions(raw json.RawMessage) (Options, error) {
	var opts Options
	keys, values, err := orderedObject(raw)
	if err != nil {
		return opts, &BadSpecError{Reason: "options must be an object: " + err.Error()}
	}
	for i, k := range keys {
		if !recognizedOptionKeys[k] {
			return opts, &BadSpecError{Reason: fmt.Sprintf("unrecognized spec option %q", k)}
		}
		switch k {
		case "stream":
			var v bool
			if err := json.Unmarshal(values[i], &v); err != nil {
				return opts, &BadSpecError{Reason: `"stream" must be a bool: ` + err.Error()}
			}
			opts.Stream = v
		case "ignore_not_mapped":
			var v bool
			if err := json.Unmarshal(values[i], &v); err != nil {
				return opts, &BadSpecError{Reason: `"ignore_not_mapped" must be a bool: ` + err.Error()}
			}
			opts.IgnoreNotMapped = v
		case "struct_atom":
			var v string
			if err := json.Unmarshal(values[i], &v); err != nil {
				return opts, &BadSpecError{Reason: `"struct_atom" must be a string: ` + err.Error()}
			}
			a := value.Atom(v)
			opts.StructAtom = &a
		case "atom_mappings":
			mkeys, mvalues, err := orderedObject(values[i])
			if err != nil {
				return opts, &BadSpecError{Reason: `"atom_mappings" must be an object: ` + err.Error()}
			}
			opts.AtomMappings = make(map[string]value.Atom, len(mkeys))
			for j, mk := range mkeys {
				var mv string
				if err := json.Unmarshal(mvalues[j], &mv); err != nil {
					return opts, &BadSpecError{Reason: fmt.Sprintf("atom_mappings[%q] must be a string: %v", mk, err)}
				}
				opts.AtomMappings[mk] = value.Atom(mv)
			}
		}
	}
	return opts, nil
}

// orderedObject decodes a JSON object's keys and raw values in source
// order, since encoding/json's map[string]T destroys insertion order.
func orderedObject(raw json.RawMessage) ([]string, []json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		return nil, nil, fmt.Errorf("expected a JSON object")
	}
	var keys []string
	var values []json.RawMessage
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("object key must be a string")
		}
		var v json.RawMessage
		if err := dec.Decode(&v); err != nil {
			return nil, nil, err
		}
		keys = append(keys, key)
		values = append(values, v)
	}
	return keys, values, nil
}
