package underwriting

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/etnz/underwriting/date"
	"gopkg.in/yaml.v2"
)

// Format is the encoding of an input document.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatOf returns the format of a file from its extension, JSON by default.
func FormatOf(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// Decode reads a document into a value of type T. YAML documents are read
// with the JSON field names, so both formats share one schema.
func Decode[T any](r io.Reader, f Format) (T, error) {
	var v T
	data, err := io.ReadAll(r)
	if err != nil {
		return v, fmt.Errorf("cannot read %s document: %w", f, err)
	}
	if f == YAML {
		if data, err = yamlToJSON(data); err != nil {
			return v, err
		}
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return v, fmt.Errorf("cannot decode %s document: %w", f, err)
	}
	return v, nil
}

// DecodeDeal reads a deal document.
func DecodeDeal(r io.Reader, f Format) (DealInput, error) { return Decode[DealInput](r, f) }

func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("cannot decode yaml document: %w", err)
	}
	return json.Marshal(jsonCompatible(doc))
}

// jsonCompatible converts the map[interface{}]interface{} of YAML mappings to
// map[string]any, and timestamps to dates.
func jsonCompatible(v any) any {
	switch v := v.(type) {
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, e := range v {
			m[fmt.Sprint(k)] = jsonCompatible(e)
		}
		return m
	case []any:
		for i, e := range v {
			v[i] = jsonCompatible(e)
		}
		return v
	case time.Time:
		return date.FromTime(v).String()
	default:
		return v
	}
}
