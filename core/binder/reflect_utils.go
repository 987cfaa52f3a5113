package binder

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

// bindToStruct binds values to a struct using reflection.
// tagName specifies which struct tag to use (e.g., "query").
// values is a map of parameter names to their string values.
// bindErr is the specific error to use for binding failures.
func bindToStruct(v any, tagName string, values map[string][]string, bindErr error) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer", bindErr)
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a pointer to struct", bindErr)
	}

	rt := rv.Type()

	for i := range rv.NumField() {
		field := rv.Field(i)
		fieldType := rt.Field(i)

		// Skip unexported fields
		if !field.CanSet() {
			continue
		}

		paramName, required, skip := parseFieldTag(fieldType, tagName)
		if skip {
			continue
		}

		fieldValues, exists := values[paramName]
		if !exists || len(fieldValues) == 0 {
			if required {
				return fmt.Errorf("%w: %w %q", bindErr, ErrMissingField, paramName)
			}
			continue // No value provided, leave as zero value
		}

		if err := setFieldValue(field, fieldType.Type, fieldValues); err != nil {
			return fmt.Errorf("%w: field %s: %v", bindErr, fieldType.Name, err)
		}
	}

	return nil
}

// parseFieldTag extracts the parameter name from struct tags and determines if the field should be skipped.
// If no tag is present, it defaults to the lowercase field name.
func parseFieldTag(field reflect.StructField, tagName string) (paramName string, required, skip bool) {
	tag := field.Tag.Get(tagName)
	if tag == "" {
		return strings.ToLower(field.Name), false, false
	}
	if tag == "-" {
		return "", false, true
	}

	tagParts := strings.Split(tag, ",")
	paramName = tagParts[0]
	if paramName == "" {
		paramName = strings.ToLower(field.Name)
	}
	for _, opt := range tagParts[1:] {
		if strings.TrimSpace(opt) == "required" {
			required = true
		}
	}
	return paramName, required, false
}

// setFieldValue sets the field value from string values.
func setFieldValue(field reflect.Value, fieldType reflect.Type, values []string) error {
	if len(values) == 0 {
		return nil
	}

	// TextUnmarshaler wins over kind-based parsing so types like uuid.UUID
	// ([16]byte) and time.Time decode from their text form.
	if reflect.PointerTo(fieldType).Implements(textUnmarshalerType) {
		return ParseText(values[0], field)
	}

	// Dereference pointers, creating new instances for nil pointers
	if fieldType.Kind() == reflect.Pointer {
		if field.IsNil() {
			field.Set(reflect.New(fieldType.Elem()))
		}
		return setFieldValue(field.Elem(), fieldType.Elem(), values)
	}

	if fieldType.Kind() == reflect.Slice {
		return setSliceValue(field, fieldType, values)
	}

	// Use first value for scalar types, ignoring additional values
	return ParseText(values[0], field)
}

// setSliceValue sets slice field values, one element per repeated parameter.
func setSliceValue(field reflect.Value, fieldType reflect.Type, values []string) error {
	elemType := fieldType.Elem()
	slice := reflect.MakeSlice(fieldType, len(values), len(values))

	for i, value := range values {
		if err := setFieldValue(slice.Index(i), elemType, []string{value}); err != nil {
			return err
		}
	}

	field.Set(slice)
	return nil
}

// ParseText parses raw into the settable value target.
// Types implementing encoding.TextUnmarshaler are decoded through it; otherwise
// strings, booleans, integers and floats are supported by kind.
func ParseText(raw string, target reflect.Value) error {
	if target.CanAddr() {
		if u, ok := target.Addr().Interface().(encoding.TextUnmarshaler); ok {
			if err := u.UnmarshalText([]byte(raw)); err != nil {
				return fmt.Errorf("invalid %s value %q: %v", target.Type(), raw, err)
			}
			return nil
		}
	}

	switch target.Kind() {
	case reflect.String:
		target.SetString(raw)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, target.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", raw)
		}
		target.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, target.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q", raw)
		}
		target.SetUint(n)

	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(raw, target.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid float value %q", raw)
		}
		target.SetFloat(n)

	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			// Accept common boolean representations for user-friendly parsing
			switch strings.ToLower(raw) {
			case "on", "yes":
				b = true
			case "off", "no":
				b = false
			default:
				return fmt.Errorf("invalid bool value %q", raw)
			}
		}
		target.SetBool(b)

	case reflect.Pointer:
		if target.IsNil() {
			target.Set(reflect.New(target.Type().Elem()))
		}
		return ParseText(raw, target.Elem())

	default:
		return fmt.Errorf("%w %s", ErrUnsupportedType, target.Type())
	}

	return nil
}
