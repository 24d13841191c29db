package attrio

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/vango-dev/attrs/pkg/attr"
)

// DecodeYAML decodes one YAML document, keeping mapping key order.
func DecodeYAML(data []byte, opts ...Option) (attr.Value, error) {
	o := newOptions(opts)
	var raw any
	dec := yaml.NewDecoder(bytes.NewReader(data), yaml.UseOrderedMap())
	if err := dec.Decode(&raw); err != nil {
		return nil, decodeErr(err)
	}

	v, err := o.fromYAML(raw, 0)
	if err != nil {
		return nil, decodeErr(err)
	}
	return v, nil
}

// DecodeYAMLAttrs decodes a YAML mapping as attribute declarations.
func DecodeYAMLAttrs(data []byte, opts ...Option) ([]attr.Attr, error) {
	v, err := DecodeYAML(data, opts...)
	if err != nil {
		return nil, err
	}
	return Attrs(v)
}

func (o options) fromYAML(raw any, depth int) (attr.Value, error) {
	if depth > o.maxDepth {
		return nil, attr.ErrTooDeep
	}

	switch t := raw.(type) {
	case yaml.MapSlice:
		m := make(attr.Map, 0, len(t))
		for _, item := range t {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprint(item.Key)
			}
			v, err := o.fromYAML(item.Value, depth+1)
			if err != nil {
				return nil, err
			}
			m = append(m, attr.Field{Key: ParseKey(key), Value: v})
		}
		return m, nil

	case []any:
		list := make(attr.List, 0, len(t))
		for _, el := range t {
			v, err := o.fromYAML(el, depth+1)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	}

	return attr.From(raw)
}
