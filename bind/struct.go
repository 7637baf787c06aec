package bind

import (
	"fmt"
	"reflect"
	"time"

	"github.com/edihub/x12/x12"
)

// TagName is the struct tag key the Segment binder reads, mirroring
// golevel7's marshal package reading an "hl7" tag — here the tag
// identifies an element position within the segment being bound rather
// than a full message location, since one Go struct always corresponds to
// exactly one X12 segment type in the transactions package.
const TagName = "x12"

// Segment populates the struct pointed to by v from seg's elements, using
// `x12:"N"` struct tags to map each field to a 1-based element position.
// Supported field kinds are string, int, float64, bool ("1"/"0" presence),
// and time.Time (CCYYMMDD by default, or HHMM[SS] when tagged ",time").
func Segment(seg x12.Segment, v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("bind: target must be a non-nil pointer")
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("bind: target must point to a struct")
	}
	return bindStruct(seg, rv)
}

func bindStruct(seg x12.Segment, rv reflect.Value) error {
	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		ft := rt.Field(i)
		if !field.CanSet() {
			continue
		}

		tag := ft.Tag.Get(TagName)
		if tag == "" {
			continue
		}
		info, err := parseTag(tag)
		if err != nil {
			return fmt.Errorf("bind: field %s: %w", ft.Name, err)
		}
		if info.ignore {
			continue
		}
		if err := bindField(seg, field, info); err != nil {
			return fmt.Errorf("bind: field %s: %w", ft.Name, err)
		}
	}
	return nil
}

func bindField(seg x12.Segment, field reflect.Value, info *tagInfo) error {
	if field.Type() == reflect.TypeOf(time.Time{}) {
		var t time.Time
		var ok bool
		if info.isTime {
			t, ok = ClockTime(seg, info.position)
		} else {
			t, ok = Date(seg, info.position)
		}
		if ok {
			field.Set(reflect.ValueOf(t))
		}
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(seg.At(info.position).String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n, ok := Int(seg, info.position); ok {
			field.SetInt(int64(n))
		}
	case reflect.Float32, reflect.Float64:
		if f, ok := Decimal(seg, info.position); ok {
			field.SetFloat(f)
		}
	case reflect.Bool:
		field.SetBool(seg.At(info.position).String() == "1")
	default:
		return fmt.Errorf("unsupported field kind %s", field.Kind())
	}
	return nil
}
