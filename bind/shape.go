// Package bind coerces and shape-checks raw x12.Segment elements against a
// schema.Segment declaration, and binds segments into tagged Go structs for
// the transactions package's typed accessor layer. Shape failures are
// reported as accumulated x12.Diagnostic values; binding never aborts a
// parse on its own (spec §7).
package bind

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/edihub/x12/schema"
	"github.com/edihub/x12/x12"
)

// Shape checks every element def declares against the raw values present
// in seg, returning one Diagnostic per violation. A segment with no
// violations returns nil.
func Shape(seg x12.Segment, def schema.Segment) []x12.Diagnostic {
	var diags []x12.Diagnostic
	for _, f := range def.Fields {
		val, present := seg.Element(f.Position)
		loc := seg.Loc(f.Position)

		if !present || val.Empty() {
			if f.Required {
				diags = append(diags, x12.Diagnostic{
					Severity: x12.SeverityError,
					Kind:     x12.KindShape,
					Location: loc,
					Message:  fmt.Sprintf("%s is required", f.Name),
					Rule:     "required",
				})
			}
			continue
		}

		raw := val.String()

		if f.MinLength > 0 && len(raw) < f.MinLength {
			diags = append(diags, tooShort(loc, f, raw))
		}
		if f.MaxLength > 0 && len(raw) > f.MaxLength {
			diags = append(diags, tooLong(loc, f, raw))
		}
		if !f.ValidCode(raw) {
			diags = append(diags, x12.Diagnostic{
				Severity: x12.SeverityError,
				Kind:     x12.KindShape,
				Location: loc,
				Message:  fmt.Sprintf("%s value %q is not in the allowed code set", f.Name, raw),
				Rule:     "code-table",
			})
		}
		if f.Pattern != nil && !f.Pattern.MatchString(raw) {
			diags = append(diags, x12.Diagnostic{
				Severity: x12.SeverityError,
				Kind:     x12.KindShape,
				Location: loc,
				Message:  fmt.Sprintf("%s value %q does not match the required pattern", f.Name, raw),
				Rule:     "pattern",
			})
		}
		if d := typeDiagnostic(loc, f, raw); d != nil {
			diags = append(diags, *d)
		}
	}
	return diags
}

func tooShort(loc x12.Location, f schema.Field, raw string) x12.Diagnostic {
	return x12.Diagnostic{
		Severity: x12.SeverityError,
		Kind:     x12.KindShape,
		Location: loc,
		Message:  fmt.Sprintf("%s value %q shorter than minimum length %d", f.Name, raw, f.MinLength),
		Rule:     "length",
	}
}

func tooLong(loc x12.Location, f schema.Field, raw string) x12.Diagnostic {
	return x12.Diagnostic{
		Severity: x12.SeverityError,
		Kind:     x12.KindShape,
		Location: loc,
		Message:  fmt.Sprintf("%s value %q longer than maximum length %d", f.Name, raw, f.MaxLength),
		Rule:     "length",
	}
}

func typeDiagnostic(loc x12.Location, f schema.Field, raw string) *x12.Diagnostic {
	switch f.Type {
	case schema.Numeric:
		if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
			return &x12.Diagnostic{Severity: x12.SeverityError, Kind: x12.KindShape, Location: loc,
				Message: fmt.Sprintf("%s value %q is not a valid integer", f.Name, raw), Rule: "type"}
		}
	case schema.Decimal:
		if _, err := strconv.ParseFloat(raw, 64); err != nil {
			return &x12.Diagnostic{Severity: x12.SeverityError, Kind: x12.KindShape, Location: loc,
				Message: fmt.Sprintf("%s value %q is not a valid decimal", f.Name, raw), Rule: "type"}
		}
	case schema.Date:
		if len(raw) != 8 || !allDigits(raw) {
			return &x12.Diagnostic{Severity: x12.SeverityError, Kind: x12.KindShape, Location: loc,
				Message: fmt.Sprintf("%s value %q is not a valid CCYYMMDD date", f.Name, raw), Rule: "type"}
		}
	case schema.Time:
		if (len(raw) != 4 && len(raw) != 6 && len(raw) != 8) || !allDigits(raw) {
			return &x12.Diagnostic{Severity: x12.SeverityError, Kind: x12.KindShape, Location: loc,
				Message: fmt.Sprintf("%s value %q is not a valid HHMM[SS[DD]] time", f.Name, raw), Rule: "type"}
		}
	}
	return nil
}

func allDigits(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) == -1
}
