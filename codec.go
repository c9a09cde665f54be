package skema

import (
	"fmt"
	"io"
)

// Codec decodes and encodes batches of records of one registry type. A Codec
// is immutable and safe for concurrent use.
type Codec struct {
	reg   *Registry
	root  string
	batch Descriptor
	opt   Options
}

// NewCodec builds a Codec for arrays of the registry type root. When several
// Options are given the last one wins. It panics with *UnknownReferenceError
// if root is not defined in reg.
func NewCodec(reg *Registry, root string, opts ...Options) *Codec {
	if _, ok := reg.Lookup(root); !ok {
		panic(&UnknownReferenceError{Name: root})
	}
	var opt Options
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return &Codec{reg: reg, root: root, batch: ArrayOf(Ref(root)), opt: opt}
}

// Registry returns the registry the codec resolves against.
func (c *Codec) Registry() *Registry { return c.reg }

// Root returns the name of the record type.
func (c *Codec) Root() string { return c.root }

// Decode parses JSON text holding an array of records, validates every
// element and returns the decoded records. Records are returned only when
// the whole batch is valid.
func (c *Codec) Decode(data []byte) ([]Record, error) {
	return c.DecodeFrom(JSONBytes(data))
}

// DecodeReader is the io.Reader form of Decode.
func (c *Codec) DecodeReader(r io.Reader) ([]Record, error) {
	return c.DecodeFrom(JSONReader(r))
}

// DecodeFrom decodes records from any Source (JSON, YAML or a custom driver).
func (c *Codec) DecodeFrom(src Source) ([]Record, error) {
	v, err := ParseValue(src, c.opt.ParseOpt)
	if err != nil {
		return nil, err
	}
	return c.DecodeValue(v)
}

// DecodeValue decodes an already parsed tree.
func (c *Codec) DecodeValue(v Value) ([]Record, error) {
	out, err := c.Transform(v, Decode)
	if err != nil {
		return nil, err
	}
	records := make([]Record, len(out.items))
	for i, it := range out.items {
		rec, err := ToRecord(it, c.opt.NumberMode)
		if err != nil {
			return nil, err
		}
		records[i] = rec
	}
	return records, nil
}

// Transform validates a batch Value and converts it in direction dir without
// leaving the Value model.
func (c *Codec) Transform(v Value, dir Direction) (Value, error) {
	return c.reg.Transform(v, c.batch, dir)
}

// Encode converts internal-keyed records back to wire form and serializes
// them as JSON, indented with two spaces unless Options.Compact is set.
func (c *Codec) Encode(records []Record) ([]byte, error) {
	v, err := recordsValue(records)
	if err != nil {
		return nil, err
	}
	return c.EncodeValue(v)
}

// EncodeTo writes the encoded records to w.
func (c *Codec) EncodeTo(w io.Writer, records []Record) error {
	v, err := recordsValue(records)
	if err != nil {
		return err
	}
	out, err := c.Transform(v, Encode)
	if err != nil {
		return err
	}
	return WriteValue(w, out, c.indent())
}

// EncodeValue encodes a Value sequence whose mappings use internal keys.
func (c *Codec) EncodeValue(v Value) ([]byte, error) {
	out, err := c.Transform(v, Encode)
	if err != nil {
		return nil, err
	}
	return MarshalValue(out, c.indent())
}

func (c *Codec) indent() string {
	if c.opt.Compact {
		return ""
	}
	return DefaultIndent
}

func recordsValue(records []Record) (Value, error) {
	items := make([]Value, len(records))
	for i, r := range records {
		v, err := fromNative(r, fmt.Sprintf("/%d", i))
		if err != nil {
			return Value{}, err
		}
		items[i] = v
	}
	return SequenceValue(items...), nil
}
