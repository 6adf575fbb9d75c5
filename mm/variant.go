/*
 * Copyright 2014 Canonical Ltd.
 *
 * Authors:
 * Sergio Schvezov: sergio.schvezov@cannical.com
 *
 * This file is part of mmwrapper.
 *
 * mmwrapper is free software; you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation; version 3.
 *
 * mmwrapper is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package mm

import (
	"fmt"
	"math"
	"reflect"

	"launchpad.net/go-dbus"
)

// ErrorPropertyMissing is returned when a dictionary reported by the daemon
// lacks an item the caller asked for.
type ErrorPropertyMissing string

func (e ErrorPropertyMissing) Error() string {
	return fmt.Sprintf("property missing: %s", string(e))
}

// ErrorPropertyType is returned when a value reported by the daemon does not
// have the type the D-Bus API documents for it.
type ErrorPropertyType struct {
	property       string
	wantType, have interface{}
}

func (e ErrorPropertyType) Error() string {
	return fmt.Sprintf("property \"%s\" type is %T, want %T", e.property, e.have, e.wantType)
}

// Property returns the name of the offending property.
func (e ErrorPropertyType) Property() string {
	return e.property
}

// The as* helpers coerce a decoded variant value. go-dbus hands containers
// back either as typed slices/structs or as []interface{}, so both are taken.

func asString(name string, value interface{}) (string, error) {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || rv.Kind() != reflect.String {
		return "", ErrorPropertyType{name, "", value}
	}
	return rv.String(), nil
}

func asObjectPath(name string, value interface{}) (dbus.ObjectPath, error) {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || rv.Kind() != reflect.String {
		return "", ErrorPropertyType{name, dbus.ObjectPath(""), value}
	}
	return dbus.ObjectPath(rv.String()), nil
}

func asBool(name string, value interface{}) (bool, error) {
	b, ok := value.(bool)
	if !ok {
		return false, ErrorPropertyType{name, false, value}
	}
	return b, nil
}

func asUint32(name string, value interface{}) (uint32, error) {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() {
		return 0, ErrorPropertyType{name, uint32(0), value}
	}
	switch rv.Kind() {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return uint32(rv.Uint()), nil
	}
	return 0, ErrorPropertyType{name, uint32(0), value}
}

func asInt32(name string, value interface{}) (int32, error) {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() {
		return 0, ErrorPropertyType{name, int32(0), value}
	}
	switch rv.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return int32(rv.Int()), nil
	case reflect.Uint8, reflect.Uint16:
		return int32(rv.Uint()), nil
	case reflect.Uint32:
		// some enums are signed in C but sent as "u"
		if rv.Uint() <= math.MaxInt32 {
			return int32(rv.Uint()), nil
		}
	}
	return 0, ErrorPropertyType{name, int32(0), value}
}

func asUint64(name string, value interface{}) (uint64, error) {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() {
		return 0, ErrorPropertyType{name, uint64(0), value}
	}
	switch rv.Kind() {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint(), nil
	}
	return 0, ErrorPropertyType{name, uint64(0), value}
}

// asList returns the elements of an array value.
func asList(name string, value interface{}, want interface{}) ([]interface{}, error) {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, ErrorPropertyType{name, want, value}
	}
	list := make([]interface{}, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		list[i] = rv.Index(i).Interface()
	}
	return list, nil
}

// asStruct returns the n fields of a struct value.
func asStruct(name string, value interface{}, n int, want interface{}) ([]interface{}, error) {
	rv := reflect.ValueOf(value)
	if rv.IsValid() && rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil, ErrorPropertyType{name, want, value}
	}
	var fields []interface{}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			fields = append(fields, rv.Index(i).Interface())
		}
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			if rv.Type().Field(i).PkgPath != "" {
				continue
			}
			fields = append(fields, rv.Field(i).Interface())
		}
	default:
		return nil, ErrorPropertyType{name, want, value}
	}
	if len(fields) != n {
		return nil, ErrorPropertyType{name, want, value}
	}
	return fields, nil
}

func asStrings(name string, value interface{}) ([]string, error) {
	list, err := asList(name, value, []string{})
	if err != nil {
		return nil, err
	}
	strs := make([]string, len(list))
	for i := range list {
		if strs[i], err = asString(name, list[i]); err != nil {
			return nil, ErrorPropertyType{name, []string{}, value}
		}
	}
	return strs, nil
}

func asObjectPaths(name string, value interface{}) ([]dbus.ObjectPath, error) {
	list, err := asList(name, value, []dbus.ObjectPath{})
	if err != nil {
		return nil, err
	}
	paths := make([]dbus.ObjectPath, len(list))
	for i := range list {
		if paths[i], err = asObjectPath(name, list[i]); err != nil {
			return nil, ErrorPropertyType{name, []dbus.ObjectPath{}, value}
		}
	}
	return paths, nil
}

func asUint32s(name string, value interface{}) ([]uint32, error) {
	list, err := asList(name, value, []uint32{})
	if err != nil {
		return nil, err
	}
	values := make([]uint32, len(list))
	for i := range list {
		if values[i], err = asUint32(name, list[i]); err != nil {
			return nil, ErrorPropertyType{name, []uint32{}, value}
		}
	}
	return values, nil
}

func asBytes(name string, value interface{}) ([]byte, error) {
	if b, ok := value.([]byte); ok {
		return b, nil
	}
	list, err := asList(name, value, []byte{})
	if err != nil {
		return nil, err
	}
	data := make([]byte, len(list))
	for i := range list {
		b, ok := list[i].(byte)
		if !ok {
			return nil, ErrorPropertyType{name, []byte{}, value}
		}
		data[i] = b
	}
	return data, nil
}

// asProperties coerces an a{sv} value.
func asProperties(name string, value interface{}) (PropertiesType, error) {
	if p, ok := value.(PropertiesType); ok {
		return p, nil
	}
	if p, ok := value.(map[string]dbus.Variant); ok {
		return PropertiesType(p), nil
	}
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || rv.Kind() != reflect.Map {
		return nil, ErrorPropertyType{name, PropertiesType{}, value}
	}
	props := make(PropertiesType, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key, err := asString(name, iter.Key().Interface())
		if err != nil {
			return nil, ErrorPropertyType{name, PropertiesType{}, value}
		}
		switch v := iter.Value().Interface().(type) {
		case dbus.Variant:
			props[key] = v
		case *dbus.Variant:
			props[key] = *v
		default:
			props[key] = dbus.Variant{Value: v}
		}
	}
	return props, nil
}

// asUint32Map coerces an a{uu} value.
func asUint32Map(name string, value interface{}) (map[uint32]uint32, error) {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || rv.Kind() != reflect.Map {
		return nil, ErrorPropertyType{name, map[uint32]uint32{}, value}
	}
	m := make(map[uint32]uint32, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k, err := asUint32(name, iter.Key().Interface())
		if err != nil {
			return nil, ErrorPropertyType{name, map[uint32]uint32{}, value}
		}
		v, err := asUint32(name, iter.Value().Interface())
		if err != nil {
			return nil, ErrorPropertyType{name, map[uint32]uint32{}, value}
		}
		m[k] = v
	}
	return m, nil
}

// The lookup helpers below read one item of an a{sv} dictionary.

func (p PropertiesType) lookup(key string) (interface{}, bool) {
	v, ok := p[key]
	if !ok {
		return nil, false
	}
	return v.Value, true
}

// String returns the string stored under key.
func (p PropertiesType) String(key string) (string, error) {
	v, ok := p.lookup(key)
	if !ok {
		return "", ErrorPropertyMissing(key)
	}
	return asString(key, v)
}

// Bool returns the boolean stored under key.
func (p PropertiesType) Bool(key string) (bool, error) {
	v, ok := p.lookup(key)
	if !ok {
		return false, ErrorPropertyMissing(key)
	}
	return asBool(key, v)
}

// Uint32 returns the unsigned integer stored under key.
func (p PropertiesType) Uint32(key string) (uint32, error) {
	v, ok := p.lookup(key)
	if !ok {
		return 0, ErrorPropertyMissing(key)
	}
	return asUint32(key, v)
}

// Int32 returns the signed integer stored under key.
func (p PropertiesType) Int32(key string) (int32, error) {
	v, ok := p.lookup(key)
	if !ok {
		return 0, ErrorPropertyMissing(key)
	}
	return asInt32(key, v)
}

// Uint64 returns the unsigned 64-bit integer stored under key.
func (p PropertiesType) Uint64(key string) (uint64, error) {
	v, ok := p.lookup(key)
	if !ok {
		return 0, ErrorPropertyMissing(key)
	}
	return asUint64(key, v)
}

// Has reports whether key is present.
func (p PropertiesType) Has(key string) bool {
	_, ok := p[key]
	return ok
}

func isMissing(err error) bool {
	_, ok := err.(ErrorPropertyMissing)
	return ok
}
