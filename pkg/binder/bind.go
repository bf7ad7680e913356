package binder

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Bind stores values into the struct pointed to by dst. All fields are
// attempted; failures are joined.
func Bind(dst any, values map[string]any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return ErrInvalidTarget
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return ErrInvalidTarget
	}

	rt := rv.Type()
	var errs []error
	for i := range rv.NumField() {
		field := rv.Field(i)
		sf := rt.Field(i)
		if !field.CanSet() {
			continue
		}

		name, skip := parseFieldTag(sf)
		if skip {
			continue
		}
		value, ok := values[name]
		if !ok || value == nil {
			continue
		}

		if err := setFieldValue(field, value); err != nil {
			errs = append(errs, fmt.Errorf("%w: field %s (%s): %w", ErrFailedToBind, sf.Name, name, err))
		}
	}
	return errors.Join(errs...)
}

// Fields lists the row names Bind reads for the struct type of dst.
func Fields(dst any) []string {
	rt := reflect.TypeOf(dst)
	for rt != nil && rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt == nil || rt.Kind() != reflect.Struct {
		return nil
	}

	var names []string
	for i := range rt.NumField() {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		if name, skip := parseFieldTag(sf); !skip {
			names = append(names, name)
		}
	}
	return names
}

func parseFieldTag(sf reflect.StructField) (name string, skip bool) {
	tag := sf.Tag.Get("row")
	switch tag {
	case "":
		return strings.ToLower(sf.Name), false
	case "-":
		return "", true
	}
	name, _, _ = strings.Cut(tag, ",")
	return name, false
}
