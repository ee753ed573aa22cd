/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dataenum

import (
	"math"
	"reflect"
)

// KeyKind is the kind of primary key a type uses. A type never mixes kinds.
type KeyKind int32

const (
	// KindInferred takes the kind of the first registered key.
	KindInferred KeyKind = iota
	// KindString keys are strings; they cannot be auto-assigned.
	KindString
	// KindInt keys are integers, stored as int64.
	KindInt
)

func (k KeyKind) String() string {
	switch k {
	case KindInferred:
		return "inferred"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	default:
		return "unknown"
	}
}

// ParseKeyKind parses "string", "int" or "" (inferred).
func ParseKeyKind(s string) (KeyKind, bool) {
	switch s {
	case "", "inferred":
		return KindInferred, true
	case "string", "str":
		return KindString, true
	case "int", "integer":
		return KindInt, true
	}
	return KindInferred, false
}

// normalizeKey maps string-like values to string and integer-like values to
// int64, so that Get(1) and Get(int64(1)) address the same member.
func normalizeKey(v any) (any, KeyKind, bool) {
	switch k := v.(type) {
	case string:
		return k, KindString, true
	case int64:
		return k, KindInt, true
	case int:
		return int64(k), KindInt, true
	case nil:
		return nil, KindInferred, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), KindString, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), KindInt, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return nil, KindInferred, false
		}
		return int64(u), KindInt, true
	}
	return nil, KindInferred, false
}

// indexValue is the form a unique attribute value takes in its index.
func indexValue(v any) any {
	if k, _, ok := normalizeKey(v); ok {
		return k
	}
	return v
}

func kindOf(key any) KeyKind {
	switch key.(type) {
	case string:
		return KindString
	case int64:
		return KindInt
	}
	return KindInferred
}
