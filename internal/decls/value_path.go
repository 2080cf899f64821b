package decls

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ErrNotStructured reports a path operation against a declaration whose
// value is not an array or object literal.
var ErrNotStructured = errors.New("declaration value is not an array or object")

// ValueAt reads one element of an array- or object-typed value by gjson
// path, e.g. "towers.2.name".
func (d *Declaration) ValueAt(path string) (string, error) {
	if d.ValueType != TypeArray && d.ValueType != TypeObject {
		return "", fmt.Errorf("%w: %s is %s", ErrNotStructured, d.Name, d.ValueType)
	}
	res := gjson.Get(d.Value, path)
	if !res.Exists() {
		return "", fmt.Errorf("no value at path %q in %s", path, d.Name)
	}
	return res.String(), nil
}

// SetValueAt rewrites one element of an array- or object-typed value by
// path. Raw JSON literals (numbers, booleans, nested arrays or objects) are
// inserted verbatim; anything else is inserted as a string. The record's
// value type is re-inferred from the rewritten literal.
func (d *Declaration) SetValueAt(path, value string) error {
	if d.ValueType != TypeArray && d.ValueType != TypeObject {
		return fmt.Errorf("%w: %s is %s", ErrNotStructured, d.Name, d.ValueType)
	}

	var (
		updated string
		err     error
	)
	if gjson.Valid(value) {
		updated, err = sjson.SetRaw(d.Value, path, value)
	} else {
		updated, err = sjson.Set(d.Value, path, value)
	}
	if err != nil {
		return fmt.Errorf("set %s at %q: %w", d.Name, path, err)
	}

	d.Value = updated
	d.ValueType = InferType(updated)
	return nil
}
