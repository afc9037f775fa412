// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package manifest

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// ctyToNative converts a literal cty value into the native JSON-like Go
// representation the conversion engines operate on: nil, string, float64,
// bool, []any, and map[string]any. Manifest defaults go through this once at
// declaration time so the hot path never touches cty.
func ctyToNative(val cty.Value) (any, error) {
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsKnown() {
		return nil, fmt.Errorf("value is not known; defaults must be literals")
	}

	ty := val.Type()
	switch {
	case ty.Equals(cty.String):
		return val.AsString(), nil

	case ty.Equals(cty.Number):
		f, _ := val.AsBigFloat().Float64()
		return f, nil

	case ty.Equals(cty.Bool):
		return val.True(), nil

	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		out := make([]any, 0, val.LengthInt())
		it := val.ElementIterator()
		for it.Next() {
			_, elem := it.Element()
			native, err := ctyToNative(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, native)
		}
		return out, nil

	case ty.IsObjectType() || ty.IsMapType():
		out := make(map[string]any, val.LengthInt())
		for key, elem := range val.AsValueMap() {
			native, err := ctyToNative(elem)
			if err != nil {
				return nil, err
			}
			out[key] = native
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unsupported literal of type %s", ty.FriendlyName())
	}
}
