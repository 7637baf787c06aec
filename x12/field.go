package x12

// Field is a single raw element value as it appeared on the wire. X12
// fields are opaque scalars at the tokenizer layer — per spec, composite
// (component-separated) and repeated (repetition-separated) sub-structure
// inside a field is preserved verbatim and is the schema/binder layer's
// concern, not the tokenizer's. An empty Field denotes "absent" (spec §3).
type Field string

// Empty reports whether the field carries no value.
func (f Field) Empty() bool { return f == "" }

// String returns the raw field text.
func (f Field) String() string { return string(f) }
