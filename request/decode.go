package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Konsultn-Engineering/smartcrud/result"
)

// Envelope keys of the JSON request format.
const (
	KeyOperation = "main_sign"
	KeyTable     = "qtn"
	KeyData      = "qdt"
	KeyColumns   = "qcl"
	KeyCondition = "qcn"
	KeyVerb      = "qvb"
	KeyTemplate  = "qtx"
	KeyParams    = "qpm"
	KeyMode      = "qrm"
)

// Decode parses a JSON envelope into a typed request. Object key order
// of the data and params objects is preserved.
func Decode(data []byte) (Request, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, result.NullInput("request")
	}

	var env map[string]json.RawMessage
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, malformed(err)
	}
	if len(env) == 0 {
		return nil, result.NullInput("request")
	}

	rawOp, ok := env[KeyOperation]
	if !ok {
		return nil, result.Unsupported("")
	}
	op := stringField(rawOp)
	kind, ok := ParseKind(op)
	if !ok {
		return nil, result.Unsupported(op)
	}

	mode := QueryOnly
	if raw, ok := env[KeyMode]; ok {
		s := stringField(raw)
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "", "query":
		case "execute":
			mode = Execute
		default:
			return nil, result.Unsupported("return mode " + s)
		}
	}

	switch kind {
	case Insert:
		table, err := required(env, KeyTable)
		if err != nil {
			return nil, err
		}
		cols, err := requiredObject(env, KeyData)
		if err != nil {
			return nil, err
		}
		r := &InsertRequest{Table: table, Columns: cols, Mode: mode}
		return validated(r)
	case Select:
		table, err := required(env, KeyTable)
		if err != nil {
			return nil, err
		}
		raw, ok := env[KeyColumns]
		if !ok {
			return nil, result.MissingField(KeyColumns)
		}
		cols, err := decodeList(raw)
		if err != nil {
			return nil, err
		}
		if _, ok := env[KeyCondition]; !ok {
			return nil, result.MissingField(KeyCondition)
		}
		cond := optional(env, KeyCondition)
		r := &SelectRequest{Table: table, Columns: cols, Condition: cond, Mode: mode}
		return validated(r)
	case Update:
		table, err := required(env, KeyTable)
		if err != nil {
			return nil, err
		}
		cols, err := requiredObject(env, KeyData)
		if err != nil {
			return nil, err
		}
		cond := optional(env, KeyCondition)
		r := &UpdateRequest{Table: table, Columns: cols, Condition: cond, Mode: mode}
		return validated(r)
	case Delete:
		table, err := required(env, KeyTable)
		if err != nil {
			return nil, err
		}
		cond := optional(env, KeyCondition)
		r := &DeleteRequest{Table: table, Condition: cond, Mode: mode}
		return validated(r)
	case Template:
		tmpl, err := required(env, KeyTemplate)
		if err != nil {
			return nil, err
		}
		params, err := requiredObject(env, KeyParams)
		if err != nil {
			return nil, err
		}
		verb, err := required(env, KeyVerb)
		if err != nil {
			return nil, err
		}
		r := &TemplateRequest{Verb: verb, Template: tmpl, Params: params, Mode: mode}
		return validated(r)
	}
	return nil, result.Unsupported(op)
}

func validated(r Request) (Request, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func required(env map[string]json.RawMessage, key string) (string, error) {
	raw, ok := env[key]
	if !ok {
		return "", result.MissingField(key)
	}
	s := stringField(raw)
	if Blank(s) {
		return "", result.MissingField(key)
	}
	return s, nil
}

func optional(env map[string]json.RawMessage, key string) string {
	raw, ok := env[key]
	if !ok {
		return ""
	}
	return stringField(raw)
}

func requiredObject(env map[string]json.RawMessage, key string) (Columns, error) {
	raw, ok := env[key]
	if !ok {
		return Columns{}, result.MissingField(key)
	}
	cols, err := decodeObject(raw)
	if err != nil {
		return Columns{}, err
	}
	if cols.Len() == 0 {
		return Columns{}, result.MissingField(key)
	}
	return cols, nil
}

func stringField(raw json.RawMessage) string {
	s, _ := scalar(raw).(string)
	return s
}

// decodeObject walks an object token by token so keys keep document order.
func decodeObject(raw json.RawMessage) (Columns, error) {
	var cols Columns
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return cols, malformed(err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return cols, malformed(fmt.Errorf("expected object, got %v", tok))
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return cols, malformed(err)
		}
		key, _ := tok.(string)
		var v json.RawMessage
		if err := dec.Decode(&v); err != nil {
			return cols, malformed(err)
		}
		cols.Set(key, scalar(v))
	}
	return cols, nil
}

func decodeList(raw json.RawMessage) ([]string, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, malformed(err)
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, stringField(it))
	}
	return out, nil
}

// scalar returns JSON strings unquoted, null as nil and any other value as its
// JSON text.
func scalar(raw json.RawMessage) any {
	t := bytes.TrimSpace(raw)
	switch {
	case len(t) == 0, string(t) == "null":
		return nil
	case t[0] == '"':
		var s string
		if err := json.Unmarshal(t, &s); err == nil {
			return s
		}
	}
	return string(t)
}

func malformed(err error) error {
	return &result.Error{Code: result.CodeNullInput, Message: "malformed request payload", Err: err}
}
