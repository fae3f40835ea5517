package main

import (
	"math"
	"reflect"
	"strconv"
	"unicode"
	"unicode/utf8"

	"esfront/pkg/ast"
	"esfront/pkg/source"
)

var (
	locType      = reflect.TypeOf(ast.Loc{})
	positionType = reflect.TypeOf(source.Position{})
)

// treeJSON converts a tree into maps and slices for encoding/json. Every
// node gets a "type" key naming its kind plus "start" and "end" positions;
// other fields keep their Go names with a lower-case first letter.
func treeJSON(n ast.Node) interface{} {
	return jsonValue(reflect.ValueOf(n))
}

func jsonValue(v reflect.Value) interface{} {
	switch v.Kind() {
	case reflect.Invalid:
		return nil
	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return jsonValue(v.Elem())
	case reflect.Ptr:
		if v.IsNil() {
			return nil
		}
		if n, ok := v.Interface().(ast.Node); ok && v.Elem().Kind() == reflect.Struct {
			m := map[string]interface{}{
				"type":  n.Kind().String(),
				"start": positionJSON(n.Start()),
				"end":   positionJSON(n.End()),
			}
			fieldsJSON(v.Elem(), m)
			return m
		}
		return jsonValue(v.Elem())
	case reflect.Slice:
		if v.IsNil() {
			return nil
		}
		out := make([]interface{}, v.Len())
		for i := range out {
			out[i] = jsonValue(v.Index(i))
		}
		return out
	case reflect.Struct:
		if v.Type() == positionType {
			return positionJSON(v.Interface().(source.Position))
		}
		m := map[string]interface{}{}
		fieldsJSON(v, m)
		return m
	case reflect.Float32, reflect.Float64:
		// 1e400 and friends have no JSON form.
		if f := v.Float(); math.IsInf(f, 0) || math.IsNaN(f) {
			return strconv.FormatFloat(f, 'g', -1, 64)
		}
	}
	return v.Interface()
}

func fieldsJSON(v reflect.Value, m map[string]interface{}) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			if f.Type != locType {
				fieldsJSON(v.Field(i), m)
			}
			continue
		}
		m[lowerFirst(f.Name)] = jsonValue(v.Field(i))
	}
}

func positionJSON(p source.Position) map[string]int {
	return map[string]int{"line": p.Line, "column": p.Column, "offset": p.Offset}
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
