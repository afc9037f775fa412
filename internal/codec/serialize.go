package codec

import (
	"context"
	"reflect"

	"github.com/specialistvlad/resmap/internal/ctxlog"
	"github.com/specialistvlad/resmap/internal/record"
	"github.com/specialistvlad/resmap/internal/schema"
)

// Serialize converts one instance into a wire record. Fields are visited in
// declaration order; a field whose value is nil or equals its declared
// default is omitted from the output. There is no error path: values the
// engine does not recognize pass through unchanged as opaque scalars.
func Serialize(ctx context.Context, in *schema.Instance) *record.Record {
	s := in.Schema()
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Serializing instance.", "resource", s.Name(), "inflect", string(s.Inflect()))

	out := record.New()
	for i := 0; i < s.Len(); i++ {
		fs := s.SpecAt(i)
		v, _ := in.Get(fs.Name)

		if v == nil || reflect.DeepEqual(v, fs.Default) {
			continue
		}
		out.Set(s.KeyAt(i), serializeValue(ctx, v))
	}
	return out
}

// SerializeList converts a list of instances element-wise, preserving order.
func SerializeList(ctx context.Context, ins []*schema.Instance) []*record.Record {
	out := make([]*record.Record, len(ins))
	for i, in := range ins {
		out[i] = Serialize(ctx, in)
	}
	return out
}

// serializeValue recursively serializes one field value. Dispatch is a
// capability check on the value itself: instances carry their own schema, so
// nesting needs no knowledge of the declared type, and values of types with
// no schema fall through unchanged.
func serializeValue(ctx context.Context, v any) any {
	switch val := v.(type) {
	case *schema.Instance:
		return Serialize(ctx, val)
	case []*schema.Instance:
		return SerializeList(ctx, val)
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			if elem == nil {
				out[i] = nil
				continue
			}
			out[i] = serializeValue(ctx, elem)
		}
		return out
	default:
		return v
	}
}
