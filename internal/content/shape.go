package content

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Shape is the structural fingerprint of a Bundle: one entry per leaf path.
// String leaves contribute only their path; every other leaf also records its
// value, so two bundles share a Shape exactly when they have the same keys,
// the same list lengths and the same non-text values.
type Shape []string

// ShapeOf walks b and returns its sorted shape.
func ShapeOf(b *Bundle) Shape {
	var out Shape
	walkShape(reflect.ValueOf(*b), "", &out)
	sort.Strings(out)
	return out
}

func walkShape(v reflect.Value, path string, out *Shape) {
	switch v.Kind() {
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			walkShape(v.Field(i), joinPath(path, fieldName(t.Field(i))), out)
		}
	case reflect.Slice, reflect.Array:
		*out = append(*out, fmt.Sprintf("%s#len=%d", path, v.Len()))
		for i := 0; i < v.Len(); i++ {
			walkShape(v.Index(i), fmt.Sprintf("%s[%d]", path, i), out)
		}
	case reflect.String:
		*out = append(*out, path)
	default:
		*out = append(*out, fmt.Sprintf("%s=%v", path, v.Interface()))
	}
}

func fieldName(f reflect.StructField) string {
	if tag, ok := f.Tag.Lookup("yaml"); ok {
		if name, _, _ := strings.Cut(tag, ","); name != "" {
			return name
		}
	}
	return f.Name
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

// CheckParity reports ErrShapeMismatch when a and b differ in shape. The
// error lists the first few differing paths.
func CheckParity(a, b *Bundle) error {
	missing, extra := diffShapes(ShapeOf(a), ShapeOf(b))
	if len(missing) == 0 && len(extra) == 0 {
		return nil
	}
	return fmt.Errorf("%w: only in first: %s; only in second: %s",
		ErrShapeMismatch, summarize(missing), summarize(extra))
}

func diffShapes(a, b Shape) (onlyA, onlyB []string) {
	inB := make(map[string]struct{}, len(b))
	for _, p := range b {
		inB[p] = struct{}{}
	}
	inA := make(map[string]struct{}, len(a))
	for _, p := range a {
		inA[p] = struct{}{}
		if _, ok := inB[p]; !ok {
			onlyA = append(onlyA, p)
		}
	}
	for _, p := range b {
		if _, ok := inA[p]; !ok {
			onlyB = append(onlyB, p)
		}
	}
	return onlyA, onlyB
}

func summarize(paths []string) string {
	const limit = 5
	if len(paths) == 0 {
		return "none"
	}
	if len(paths) > limit {
		return fmt.Sprintf("%s (+%d more)", strings.Join(paths[:limit], ", "), len(paths)-limit)
	}
	return strings.Join(paths, ", ")
}
