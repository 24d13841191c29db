package attrio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/vango-dev/attrs/pkg/attr"
)

// DecodeJSON decodes one JSON value, keeping object key order.
func DecodeJSON(data []byte, opts ...Option) (attr.Value, error) {
	o := newOptions(opts)
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := o.decodeJSONValue(dec, 0)
	if err != nil {
		return nil, decodeErr(err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, decodeErr(errors.New("unexpected data after top-level value"))
	}
	return v, nil
}

// DecodeJSONAttrs decodes a JSON object as attribute declarations.
func DecodeJSONAttrs(data []byte, opts ...Option) ([]attr.Attr, error) {
	v, err := DecodeJSON(data, opts...)
	if err != nil {
		return nil, err
	}
	return Attrs(v)
}

func (o options) decodeJSONValue(dec *json.Decoder, depth int) (attr.Value, error) {
	if depth > o.maxDepth {
		return nil, attr.ErrTooDeep
	}

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case nil:
		return attr.Absent{}, nil
	case bool:
		return attr.Bool(t), nil
	case string:
		return attr.String(t), nil
	case json.Number:
		return jsonNumber(t)
	case json.Delim:
		switch t {
		case '{':
			m := attr.Map{}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key %v", keyTok)
				}
				v, err := o.decodeJSONValue(dec, depth+1)
				if err != nil {
					return nil, err
				}
				m = append(m, attr.Field{Key: ParseKey(key), Value: v})
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return m, nil

		case '[':
			list := attr.List{}
			for dec.More() {
				v, err := o.decodeJSONValue(dec, depth+1)
				if err != nil {
					return nil, err
				}
				list = append(list, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return list, nil
		}
	}

	return nil, fmt.Errorf("unexpected token %v", tok)
}

func jsonNumber(n json.Number) (attr.Value, error) {
	if i, err := n.Int64(); err == nil {
		return attr.Int(i), nil
	}
	if u, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
		return attr.Uint(u), nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", n, err)
	}
	return attr.Float(f), nil
}
