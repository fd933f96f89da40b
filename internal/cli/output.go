package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Format represents the output format
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatCSV   Format = "csv"
	FormatTSV   Format = "tsv"
	FormatHuman Format = "human"
)

// IsValid checks if a format string is valid
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatJSONL, FormatCSV, FormatTSV, FormatHuman:
		return true
	}
	return false
}

// OutputOptions controls output behavior
type OutputOptions struct {
	Format   Format
	Fields   []string // Field names to include (empty = all)
	NoHeader bool     // Skip header row for CSV/TSV
}

// output prints data in the specified format. Results are flat structs (or
// slices of them) whose fields are already rendered as scalars, so a single
// column extraction serves every format.
func output(data any, opts OutputOptions) error {
	if !opts.Format.IsValid() {
		return fmt.Errorf("invalid format %q, valid formats: json, jsonl, csv, tsv, human", opts.Format)
	}

	fieldSet := makeFieldSet(opts.Fields)

	switch opts.Format {
	case FormatJSONL:
		return outputJSONL(data, fieldSet)
	case FormatCSV:
		return outputDelimited(data, ',', fieldSet, opts.NoHeader)
	case FormatTSV:
		return outputDelimited(data, '\t', fieldSet, opts.NoHeader)
	case FormatHuman:
		return outputHuman(data, fieldSet)
	default:
		return outputJSON(data, fieldSet)
	}
}

// outputJSON prints data as formatted JSON
func outputJSON(data any, fieldSet map[string]bool) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(filterFields(data, fieldSet))
}

// outputJSONL prints data as JSON Lines (one JSON object per line)
func outputJSONL(data any, fieldSet map[string]bool) error {
	enc := json.NewEncoder(os.Stdout)

	v := derefValue(reflect.ValueOf(data))
	if v.IsValid() && (v.Kind() == reflect.Slice || v.Kind() == reflect.Array) {
		for i := 0; i < v.Len(); i++ {
			if err := enc.Encode(filterFields(v.Index(i).Interface(), fieldSet)); err != nil {
				return fmt.Errorf("encode item %d: %w", i, err)
			}
		}
		return nil
	}

	return enc.Encode(filterFields(data, fieldSet))
}

// outputDelimited prints data as CSV or TSV using encoding/csv
func outputDelimited(data any, delimiter rune, fieldSet map[string]bool, noHeader bool) error {
	headers, rows := extractTableData(data, fieldSet)
	if len(rows) == 0 {
		return nil
	}

	w := csv.NewWriter(os.Stdout)
	w.Comma = delimiter

	if !noHeader && len(headers) > 0 {
		if err := w.Write(headers); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for i, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	w.Flush()
	return w.Error()
}

// outputHuman prints slices as a table and single results as aligned
// key-value pairs
func outputHuman(data any, fieldSet map[string]bool) error {
	headers, rows := extractTableData(data, fieldSet)
	if len(rows) == 0 {
		fmt.Println("(no results)")
		return nil
	}

	v := derefValue(reflect.ValueOf(data))
	if v.IsValid() && v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		maxLen := 0
		for _, h := range headers {
			if len(h) > maxLen {
				maxLen = len(h)
			}
		}
		for i, h := range headers {
			fmt.Printf("%-*s  %s\n", maxLen+1, h+":", rows[0][i])
		}
		return nil
	}

	for i, h := range headers {
		headers[i] = strings.ToUpper(h)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	table.AppendBulk(rows)
	table.Render()
	return nil
}

// extractTableData extracts column headers and string rows from a struct or
// slice of structs
func extractTableData(data any, fieldSet map[string]bool) ([]string, [][]string) {
	v := derefValue(reflect.ValueOf(data))
	if !v.IsValid() {
		return nil, nil
	}

	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		v = reflect.ValueOf([]any{data})
	}
	if v.Len() == 0 {
		return nil, nil
	}

	first := derefValue(v.Index(0))
	if !first.IsValid() || first.Kind() != reflect.Struct {
		var rows [][]string
		for i := 0; i < v.Len(); i++ {
			rows = append(rows, []string{fmt.Sprint(v.Index(i).Interface())})
		}
		return nil, rows
	}

	t := first.Type()
	var headers []string
	var indices []int
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue
		}
		name := jsonFieldName(field)
		if len(fieldSet) > 0 && !fieldSet[name] {
			continue
		}
		headers = append(headers, name)
		indices = append(indices, i)
	}

	var rows [][]string
	for i := 0; i < v.Len(); i++ {
		elem := derefValue(v.Index(i))
		if !elem.IsValid() {
			continue
		}
		var row []string
		for _, idx := range indices {
			row = append(row, fmt.Sprint(elem.Field(idx).Interface()))
		}
		rows = append(rows, row)
	}

	return headers, rows
}

// filterFields narrows struct (or slice-of-struct) data to the selected
// fields, keyed by json tag name
func filterFields(data any, fieldSet map[string]bool) any {
	if len(fieldSet) == 0 {
		return data
	}

	v := derefValue(reflect.ValueOf(data))
	if !v.IsValid() {
		return data
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		var result []map[string]any
		for i := 0; i < v.Len(); i++ {
			if item := structToMap(derefValue(v.Index(i)), fieldSet); item != nil {
				result = append(result, item)
			}
		}
		return result
	case reflect.Struct:
		return structToMap(v, fieldSet)
	}

	return data
}

// structToMap converts a struct to a map with only the selected fields
func structToMap(v reflect.Value, fieldSet map[string]bool) map[string]any {
	if !v.IsValid() || v.Kind() != reflect.Struct {
		return nil
	}

	t := v.Type()
	result := make(map[string]any)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue
		}
		name := jsonFieldName(field)
		if !fieldSet[name] {
			continue
		}
		result[name] = v.Field(i).Interface()
	}
	return result
}

// jsonFieldName returns the json tag name or lowercased field name
func jsonFieldName(f reflect.StructField) string {
	name := f.Tag.Get("json")
	if name == "" || name == "-" {
		return strings.ToLower(f.Name)
	}
	if idx := strings.Index(name, ","); idx != -1 {
		name = name[:idx]
	}
	return name
}

// makeFieldSet creates a set of field names for filtering
func makeFieldSet(fields []string) map[string]bool {
	if len(fields) == 0 {
		return nil
	}
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[strings.TrimSpace(f)] = true
	}
	return set
}

// derefValue unwraps pointer and interface values
func derefValue(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}
