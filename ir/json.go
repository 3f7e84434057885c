package ir

import (
	"encoding/json"
	"fmt"
)

// JSON decoding of the upstream parser's wire format. Every node carries a
// "kind" field for type discrimination; payload fields depend on the kind.
//
// Example:
//
//	{"kind": "module", "name": "\"my-mod\"", "statements": [
//	  {"kind": "var", "name": "count", "type": {"kind": "number"}}
//	]}

// DecodeDecl decodes a declaration tree from the parser's JSON output.
func DecodeDecl(data []byte) (Decl, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid declaration document: %w", err)
	}
	return decodeDecl(raw)
}

// DecodeType decodes a single type node from the parser's JSON output.
func DecodeType(data []byte) (Type, error) {
	return decodeType(data)
}

type declEnvelope struct {
	Kind       string            `json:"kind"`
	Name       string            `json:"name"`
	Type       json.RawMessage   `json:"type"`
	Statements []json.RawMessage `json:"statements"`
	Raw        string            `json:"raw"`
}

func decodeDecl(data json.RawMessage) (Decl, error) {
	var env declEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("invalid declaration node: %w", err)
	}

	switch env.Kind {
	case "var", "func", "type", "class", "exports":
		typ, err := decodeType(env.Type)
		if err != nil {
			return nil, fmt.Errorf("declaration %q: %w", env.Name, err)
		}
		switch env.Kind {
		case "var":
			return &VarDecl{Name: env.Name, Type: typ}, nil
		case "func":
			return &FuncDecl{Name: env.Name, Type: typ}, nil
		case "type":
			return &TypeDecl{Name: env.Name, Type: typ}, nil
		case "class":
			return &ClassDecl{Name: env.Name, Type: typ}, nil
		default:
			return &ExportsDecl{Type: typ}, nil
		}
	case "module":
		stmts := make([]Decl, 0, len(env.Statements))
		for i, raw := range env.Statements {
			stmt, err := decodeDecl(raw)
			if err != nil {
				return nil, fmt.Errorf("module %q statement %d: %w", env.Name, i, err)
			}
			stmts = append(stmts, stmt)
		}
		return &ModuleDecl{Name: env.Name, Statements: stmts}, nil
	case "unknown":
		return &UnknownDecl{Raw: env.Raw}, nil
	default:
		return nil, fmt.Errorf("unrecognized declaration kind %q", env.Kind)
	}
}

type typeEnvelope struct {
	Kind    string            `json:"kind"`
	Name    string            `json:"name"`
	Elem    json.RawMessage   `json:"elem"`
	Elems   []json.RawMessage `json:"elems"`
	Props   []propEnvelope    `json:"props"`
	Params  []paramEnvelope   `json:"params"`
	Return  json.RawMessage   `json:"return"`
	Members []json.RawMessage `json:"members"`
}

type propEnvelope struct {
	Name string          `json:"name"`
	Type json.RawMessage `json:"type"`
}

type paramEnvelope struct {
	Name string          `json:"name"`
	Type json.RawMessage `json:"type"`
}

var primitiveKinds = map[string]PrimitiveKind{
	"number":  PrimitiveNumber,
	"string":  PrimitiveString,
	"boolean": PrimitiveBoolean,
	"unit":    PrimitiveUnit,
	"null":    PrimitiveNull,
	"any":     PrimitiveAny,
	"unknown": PrimitiveUnknown,
	"regex":   PrimitiveRegex,
}

func decodeType(data json.RawMessage) (Type, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("missing type node")
	}
	var env typeEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("invalid type node: %w", err)
	}

	if pk, ok := primitiveKinds[env.Kind]; ok {
		return &PrimitiveType{PrimitiveKind: pk}, nil
	}

	switch env.Kind {
	case "dict":
		elem, err := decodeType(env.Elem)
		if err != nil {
			return nil, fmt.Errorf("dict: %w", err)
		}
		return &DictType{Elem: elem}, nil
	case "array":
		elem, err := decodeType(env.Elem)
		if err != nil {
			return nil, fmt.Errorf("array: %w", err)
		}
		return &ArrayType{Elem: elem}, nil
	case "tuple":
		elems, err := decodeTypeList(env.Elems)
		if err != nil {
			return nil, fmt.Errorf("tuple: %w", err)
		}
		return &TupleType{Elems: elems}, nil
	case "object", "class":
		props := make([]Prop, 0, len(env.Props))
		for _, p := range env.Props {
			typ, err := decodeType(p.Type)
			if err != nil {
				return nil, fmt.Errorf("prop %q: %w", p.Name, err)
			}
			props = append(props, Prop{Name: p.Name, Type: typ})
		}
		if env.Kind == "class" {
			return &ClassType{Props: props}, nil
		}
		return &ObjectType{Props: props}, nil
	case "function":
		params := make([]Param, 0, len(env.Params))
		for _, p := range env.Params {
			typ, err := decodeType(p.Type)
			if err != nil {
				return nil, fmt.Errorf("param %q: %w", p.Name, err)
			}
			params = append(params, Param{Name: p.Name, Type: typ})
		}
		ret, err := decodeType(env.Return)
		if err != nil {
			return nil, fmt.Errorf("return: %w", err)
		}
		return &FunctionType{Params: params, Return: ret}, nil
	case "named":
		return &NamedType{Name: env.Name}, nil
	case "union":
		members, err := decodeTypeList(env.Members)
		if err != nil {
			return nil, fmt.Errorf("union: %w", err)
		}
		if len(members) == 0 {
			return nil, fmt.Errorf("union: must have at least one member")
		}
		return &UnionType{Members: members}, nil
	case "optional":
		elem, err := decodeType(env.Elem)
		if err != nil {
			return nil, fmt.Errorf("optional: %w", err)
		}
		return &OptionalType{Elem: elem}, nil
	default:
		return nil, fmt.Errorf("unrecognized type kind %q", env.Kind)
	}
}

func decodeTypeList(raws []json.RawMessage) ([]Type, error) {
	types := make([]Type, 0, len(raws))
	for i, raw := range raws {
		typ, err := decodeType(raw)
		if err != nil {
			return nil, fmt.Errorf("member %d: %w", i, err)
		}
		types = append(types, typ)
	}
	return types, nil
}
