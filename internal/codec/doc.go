// Package codec implements the two conversion engines: serializing resource
// instances into generic wire records and deserializing wire records back
// into instances.
//
// Both engines walk the same immutable schema and run field names through
// the same precomputed wire keys, which is what guarantees symmetric key
// handling. The directions are deliberately asymmetric about defaults:
// serialization omits any field whose value is nil or equals its declared
// default (outbound payloads stay minimal), while deserialization starts
// from a fully defaulted instance and only overwrites fields whose wire key
// is present (absent keys are the designed behavior for optional and
// evolving payloads, not an error).
//
// Conversions are pure, synchronous functions of their inputs and the
// schema; every call is independently parallelizable.
package codec
