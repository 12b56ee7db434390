package ast

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// NewLiteralString builds a string Literal. This, NewLiteralNumber and
// Convert never produce a numeric Literal with negative text (negatives are
// wrapped in Neg; C8, resolving the numeric-literal Open Question).
// NewNode and Load do not inspect Literal text, so a Literal built through
// them is stored exactly as given.
func (t *Tree) NewLiteralString(s string) NodeID {
	id, _ := t.NewNode(Literal, map[SlotID]Arg{
		SlotThis:     StringArg(s),
		SlotIsString: BoolArg(true),
	})
	return id
}

// NewLiteralNumber builds a numeric Literal from its canonical text form,
// wrapping it in Neg and storing the absolute value when it's negative, so
// every numeric Literal argument text that exists in a tree is already
// non-negative.
func (t *Tree) NewLiteralNumber(text string) NodeID {
	negative := strings.HasPrefix(text, "-")
	if negative {
		text = strings.TrimPrefix(text, "-")
	}
	id, _ := t.NewNode(Literal, map[SlotID]Arg{
		SlotThis:     StringArg(text),
		SlotIsString: BoolArg(false),
	})
	if !negative {
		return id
	}
	neg, _ := t.NewNode(Neg, map[SlotID]Arg{SlotThis: NodeArg(id)})
	return neg
}

func (t *Tree) newBoolean(b bool) NodeID {
	id, _ := t.NewNode(Boolean, map[SlotID]Arg{SlotThis: BoolArg(b)})
	return id
}

func (t *Tree) newNull() NodeID {
	id, _ := t.NewNode(Null, nil)
	return id
}

func (t *Tree) newHexString(hexText string) NodeID {
	id, _ := t.NewNode(HexString, map[SlotID]Arg{SlotThis: StringArg(hexText)})
	return id
}

// Convert maps a host Go value into an equivalent Node, grafting it into t
// (C8). Unrepresentable values yield UnconvertibleValueError.
func (t *Tree) Convert(value any) (NodeID, error) {
	switch v := value.(type) {
	case nil:
		return t.newNull(), nil
	case string:
		return t.NewLiteralString(v), nil
	case bool:
		return t.newBoolean(v), nil
	case int:
		return t.NewLiteralNumber(strconv.Itoa(v)), nil
	case int32:
		return t.NewLiteralNumber(strconv.FormatInt(int64(v), 10)), nil
	case int64:
		return t.NewLiteralNumber(strconv.FormatInt(v, 10)), nil
	case float32:
		return t.convertFloat(float64(v))
	case float64:
		return t.convertFloat(v)
	case []byte:
		return t.newHexString(fmt.Sprintf("%x", v)), nil
	case time.Time:
		return t.convertTime(v)
	case []any:
		return t.convertSlice(v)
	case map[string]any:
		return t.convertMap(v)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return t.convertSlice(out)
	case reflect.Map:
		m := make(map[string]any, rv.Len())
		for _, k := range rv.MapKeys() {
			m[fmt.Sprint(k.Interface())] = rv.MapIndex(k).Interface()
		}
		return t.convertMap(m)
	case reflect.Struct:
		return t.convertStruct(rv)
	case reflect.Ptr:
		if rv.IsNil() {
			return t.newNull(), nil
		}
		return t.Convert(rv.Elem().Interface())
	}

	return NilID, &UnconvertibleValueError{Value: value}
}

func (t *Tree) convertFloat(f float64) (NodeID, error) {
	if math.IsNaN(f) {
		return t.newNull(), nil
	}
	return t.NewLiteralNumber(strconv.FormatFloat(f, 'g', -1, 64)), nil
}

// convertTime distinguishes a date-only, time-of-day-only, and full
// timestamp value by whether the hour/minute/second and the
// year/month/day components are their zero values, matching the
// source's separate datetime/date/time branches.
func (t *Tree) convertTime(v time.Time) (NodeID, error) {
	hasDate := v.Year() != 1 || v.Month() != time.January || v.Day() != 1
	hasClock := v.Hour() != 0 || v.Minute() != 0 || v.Second() != 0 || v.Nanosecond() != 0

	switch {
	case hasDate && hasClock:
		lit := t.NewLiteralString(v.Format("2006-01-02 15:04:05"))
		args := map[SlotID]Arg{SlotThis: NodeArg(lit)}
		if v.Location() != time.UTC && v.Location() != nil {
			args[SlotZone] = NodeArg(t.NewLiteralString(v.Location().String()))
		}
		id, _ := t.NewNode(TimeStrToTime, args)
		return id, nil
	case hasDate:
		lit := t.NewLiteralString(v.Format("2006-01-02"))
		id, _ := t.NewNode(DateStrToDate, map[SlotID]Arg{SlotThis: NodeArg(lit)})
		return id, nil
	default:
		lit := t.NewLiteralString(v.Format("15:04:05"))
		id, _ := t.NewNode(TsOrDsToTime, map[SlotID]Arg{SlotThis: NodeArg(lit)})
		return id, nil
	}
}

func (t *Tree) convertSlice(vals []any) (NodeID, error) {
	ids := make([]NodeID, len(vals))
	for i, v := range vals {
		id, err := t.Convert(v)
		if err != nil {
			return NilID, err
		}
		ids[i] = id
	}
	id, _ := t.NewNode(Array, map[SlotID]Arg{SlotExpressions: ListArg(ids...)})
	return id, nil
}

func (t *Tree) convertMap(m map[string]any) (NodeID, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	keyIDs := make([]NodeID, len(keys))
	valIDs := make([]NodeID, len(keys))
	for i, k := range keys {
		keyIDs[i] = t.NewLiteralString(k)
		v, err := t.Convert(m[k])
		if err != nil {
			return NilID, err
		}
		valIDs[i] = v
	}
	keysArr, _ := t.NewNode(Array, map[SlotID]Arg{SlotExpressions: ListArg(keyIDs...)})
	valsArr, _ := t.NewNode(Array, map[SlotID]Arg{SlotExpressions: ListArg(valIDs...)})
	id, _ := t.NewNode(Map, map[SlotID]Arg{SlotKeys: NodeArg(keysArr), SlotVals: NodeArg(valsArr)})
	return id, nil
}

// convertStruct folds an arbitrary named struct into a Struct node of
// PropertyEQ(field, value) pairs, mirroring the source's fallback for any
// object exposing __dict__ / namedtuple fields.
func (t *Tree) convertStruct(rv reflect.Value) (NodeID, error) {
	rt := rv.Type()
	var ids []NodeID
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		val, err := t.Convert(rv.Field(i).Interface())
		if err != nil {
			return NilID, err
		}
		key, _ := t.NewNode(Identifier, map[SlotID]Arg{SlotThis: StringArg(f.Name)})
		pair, _ := t.NewNode(PropertyEQ, map[SlotID]Arg{SlotThis: NodeArg(key), SlotExpression: NodeArg(val)})
		ids = append(ids, pair)
	}
	id, _ := t.NewNode(Struct, map[SlotID]Arg{SlotExpressions: ListArg(ids...)})
	return id, nil
}
