package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"tsurface/extractor-go/pkg/model"
)

// Format selects a report encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat reads a format name. The empty string means JSON.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(FormatJSON):
		return FormatJSON, nil
	case string(FormatYAML), "yml":
		return FormatYAML, nil
	}
	return FormatJSON, fmt.Errorf("driver: unknown format %q (expected json or yaml)", value)
}

// Encode renders the report. Files keep scan order in both formats.
func (r *Report) Encode(format Format) ([]byte, error) {
	return encodeValue(r, format)
}

// MarshalJSON writes files as a JSON object keyed by path in scan order.
// encoding/json maps would sort keys and lose it.
func (r Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"files":{`)
	for i, name := range r.fileOrder() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(r.Files[name])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	if len(r.Warnings) > 0 {
		buf.WriteString(`,"warnings":`)
		warnings, err := json.Marshal(r.Warnings)
		if err != nil {
			return nil, err
		}
		buf.Write(warnings)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// fileOrder lists file keys in scan order. Keys recorded without an order,
// as in a hand-built report, follow in name order so encoding stays
// deterministic.
func (r Report) fileOrder() []string {
	seen := make(map[string]bool, len(r.order))
	names := make([]string, 0, len(r.Files))
	for _, name := range r.order {
		if _, ok := r.Files[name]; !ok || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	if len(names) == len(r.Files) {
		return names
	}
	rest := make([]string, 0, len(r.Files)-len(names))
	for name := range r.Files {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

// EncodeSurface renders a single file's surface on its own.
func EncodeSurface(surface model.Surface, format Format) ([]byte, error) {
	return encodeValue(surface, format)
}

// encodeValue renders through JSON first in both cases. YAML is rebuilt
// from the JSON token stream rather than marshalled directly, because the
// shape types only define JSON marshalling and a map round-trip would
// re-order object properties.
func encodeValue(value any, format Format) ([]byte, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("driver: encode: %w", err)
	}
	if format != FormatYAML {
		return append(data, '\n'), nil
	}
	node, err := yamlFromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("driver: encode yaml: %w", err)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return nil, fmt.Errorf("driver: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("driver: encoder close: %w", err)
	}
	return buf.Bytes(), nil
}

func yamlFromJSON(data []byte) (*yaml.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return yamlValue(dec)
}

func yamlValue(dec *json.Decoder) (*yaml.Node, error) {
	token, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := token.(type) {
	case json.Delim:
		switch t {
		case '{':
			node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			for dec.More() {
				keyToken, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyToken.(string)
				if !ok {
					return nil, fmt.Errorf("non-string object key %v", keyToken)
				}
				value, err := yamlValue(dec)
				if err != nil {
					return nil, err
				}
				node.Content = append(node.Content,
					&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
					value)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return node, nil
		case '[':
			node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
			for dec.More() {
				item, err := yamlValue(dec)
				if err != nil {
					return nil, err
				}
				node.Content = append(node.Content, item)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return node, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: t}, nil
	case json.Number:
		tag := "!!int"
		if strings.ContainsAny(t.String(), ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: t.String()}, nil
	case bool:
		value := "false"
		if t {
			value = "true"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: value}, nil
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	}
	return nil, fmt.Errorf("unexpected token %v", token)
}
