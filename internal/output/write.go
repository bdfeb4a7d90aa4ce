package output

import (
	"encoding/json"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"
)

// Tabular is implemented by values that know how to render themselves as a table.
type Tabular interface {
	Table() *Table
}

// Write renders v to w in the given format. Table output requires v to implement Tabular.
func Write(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	case FormatTable:
		t, ok := v.(Tabular)
		if !ok {
			return fmt.Errorf("format %s not supported for %T", format, v)
		}
		_, err := fmt.Fprintln(w, t.Table().String())
		return err
	}
	return fmt.Errorf("unknown output format %q", format)
}
