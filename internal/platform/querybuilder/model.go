package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel builds an insert from a struct's db-tagged fields.
// Fields tagged db:"-" and untagged fields are skipped.
func InsertModel(table string, model any) (*InsertBuilder, error) {
	columns, values, err := modelColumns(model)
	if err != nil {
		return nil, err
	}
	return InsertInto(table).Columns(columns...).Values(values...), nil
}

func modelColumns(model any) ([]string, []any, error) {
	v := reflect.ValueOf(model)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, nil, fmt.Errorf("model is nil")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be a struct, got %s", v.Kind())
	}

	t := v.Type()
	var (
		columns []string
		values  []any
	)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		// Tag options like ",omitempty" are not supported here.
		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			continue
		}

		columns = append(columns, name)
		values = append(values, v.Field(i).Interface())
	}
	if len(columns) == 0 {
		return nil, nil, fmt.Errorf("model has no db-tagged fields")
	}

	return columns, values, nil
}
