package codec

import (
	"context"
	"fmt"

	"github.com/specialistvlad/resmap/internal/ctxlog"
	"github.com/specialistvlad/resmap/internal/record"
	"github.com/specialistvlad/resmap/internal/schema"
)

// Deserialize converts one wire record into an instance of the target
// resource type. The instance starts fully populated from field defaults;
// each field whose wire key is present in the record is then overwritten
// with the recursively converted raw value. A conversion failure on any
// field aborts the whole record: no partially populated instance escapes.
func Deserialize(ctx context.Context, s *schema.Schema, rec *record.Record) (*schema.Instance, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Deserializing record.", "resource", s.Name(), "inflect", string(s.Inflect()))

	in := schema.NewInstance(s)
	for i := 0; i < s.Len(); i++ {
		fs := s.SpecAt(i)

		raw, ok := rec.Get(s.KeyAt(i))
		if !ok {
			continue // absent key: the default stands
		}

		v, err := decodeValue(ctx, fs.Type, raw)
		if err != nil {
			return nil, fmt.Errorf("resource %q: in field %q: %w", s.Name(), fs.Name, err)
		}
		if err := in.Set(fs.Name, v); err != nil {
			return nil, err
		}
	}
	return in, nil
}

// DeserializeList converts a list of wire records element-wise.
func DeserializeList(ctx context.Context, s *schema.Schema, recs []*record.Record) ([]*schema.Instance, error) {
	out := make([]*schema.Instance, len(recs))
	for i, rec := range recs {
		in, err := Deserialize(ctx, s, rec)
		if err != nil {
			return nil, fmt.Errorf("in element %d: %w", i, err)
		}
		out[i] = in
	}
	return out, nil
}

// decodeValue recursively converts one raw wire value against a declared
// type. Resource and list tags recurse; primitive and unresolvable tags pass
// the raw value through unchanged, leaving type enforcement to whatever
// consumes the field.
func decodeValue(ctx context.Context, t schema.Type, raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}

	switch t.Kind() {
	case schema.KindResource:
		rec, ok := record.AsRecord(raw)
		if !ok {
			return nil, fmt.Errorf("cannot decode %T into %s", raw, t)
		}
		return Deserialize(ctx, t.Schema(), rec)

	case schema.KindList:
		elems, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("cannot decode %T into %s", raw, t)
		}
		out := make([]any, len(elems))
		for i, elem := range elems {
			v, err := decodeValue(ctx, t.Elem(), elem)
			if err != nil {
				return nil, fmt.Errorf("in element %d: %w", i, err)
			}
			out[i] = v
		}
		return out, nil

	default:
		return raw, nil
	}
}
