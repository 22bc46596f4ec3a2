package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// lookup returns the values for a parameter name, reporting false when absent.
type lookup func(name string) ([]string, bool)

func fromMap(values map[string][]string) lookup {
	return func(name string) ([]string, bool) {
		v, ok := values[name]
		return v, ok && len(v) > 0
	}
}

// bindToStruct fills the exported fields of the struct pointed to by v that
// carry tagName. Untagged fields are bound by their lowercased name; fields
// tagged "-" and parameters that are absent are left untouched. Untagged
// embedded structs are bound as if their fields were declared inline.
func bindToStruct(v any, tagName string, get lookup, bindErr error) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: %w", bindErr, ErrInvalidTarget)
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := range rv.NumField() {
		field := rv.Field(i)
		sf := rt.Field(i)
		if !field.CanSet() {
			continue
		}
		if sf.Anonymous && field.Kind() == reflect.Struct && sf.Tag.Get(tagName) == "" {
			if err := bindToStruct(field.Addr().Interface(), tagName, get, bindErr); err != nil {
				return err
			}
			continue
		}
		name, skip := parseFieldTag(sf, tagName)
		if skip {
			continue
		}
		values, ok := get(name)
		if !ok {
			continue
		}
		if err := setFieldValue(field, values[0]); err != nil {
			return fmt.Errorf("%w: field %s: %w", bindErr, sf.Name, err)
		}
	}
	return nil
}

func parseFieldTag(sf reflect.StructField, tagName string) (name string, skip bool) {
	tag := sf.Tag.Get(tagName)
	switch tag {
	case "":
		return strings.ToLower(sf.Name), false
	case "-":
		return "", true
	}
	name, _, _ = strings.Cut(tag, ",")
	return name, false
}

// setFieldValue converts raw into the field's kind. Named types such as
// card.Brand bind through their underlying kind.
func setFieldValue(field reflect.Value, raw string) error {
	if field.Kind() == reflect.Pointer {
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		return setFieldValue(field.Elem(), raw)
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", raw)
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q", raw)
		}
		field.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(strings.TrimSpace(raw), field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid float value %q", raw)
		}
		field.SetFloat(n)
	case reflect.Bool:
		b, err := parseBool(raw)
		if err != nil {
			return err
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported type %s", field.Kind())
	}
	return nil
}

// parseBool accepts strconv.ParseBool input plus HTML checkbox values.
func parseBool(raw string) (bool, error) {
	if b, err := strconv.ParseBool(raw); err == nil {
		return b, nil
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "yes":
		return true, nil
	case "off", "no", "":
		return false, nil
	}
	return false, fmt.Errorf("invalid bool value %q", raw)
}
