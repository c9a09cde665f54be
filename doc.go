package skema

// Package skema provides:
//
// - Schema-driven decoding and encoding of dynamically shaped trees (Value) against
//   a declared Descriptor graph held in a Registry
// - A stable error model via *Violation (JSON Pointer, code, key, enclosing type, expected shape)
// - Token drivers for JSON (encoding/json, go-json) and YAML with duplicate-key/depth/size enforcement
// - A batch Codec that turns wire JSON arrays into Records and back
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place token drivers under source/, domain schemas under country/, and the CLI under cmd/skema.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  reg := skema.MustRegistry(map[string]skema.Descriptor{
//      "Point": skema.Closed(skema.Field("x", skema.Number()), skema.Field("y", skema.Number())),
//  })
//  c := skema.NewCodec(reg, "Point")
//  records, err := c.Decode(data)
//  wire, err := c.Encode(records)
//
// Violations report the first failure only; callers fix and retry.
