// Package register implements the normalized register layout model.
//
// A Descriptor is built once from a parsed register declaration by Normalize
// and is immutable afterwards. Its fields cover every bit of the register
// exactly once, ordered from the highest to the lowest bit, with gaps between
// declared fields filled by unnamed padding fields.
package register

import (
	"fmt"
)

// Field is a contiguous inclusive bit range of a register.
// An empty name marks padding or an anonymous declared field.
type Field struct {
	From uint32
	To   uint32
	Name string
}

// Descriptor is the normalized and validated layout of a register.
type Descriptor struct {
	Name   string
	Bits   uint32
	Fields []Field // descending by To, partitioning [0, Bits)
	Array  *ArrayRange
}

// ArrayRange is the index range of a register declared as an array.
// The register is stored once, the range is informational.
type ArrayRange struct {
	From uint32
	To   uint32
}

// Width returns the number of bits of the field.
func (f Field) Width() uint64 {
	return uint64(f.To) - uint64(f.From) + 1
}

// Label returns the bit range label of the field, "to..from" or just the
// bit index for single bit fields.
func (f Field) Label() string {
	if f.From == f.To {
		return fmt.Sprintf("%d", f.To)
	}
	return fmt.Sprintf("%d..%d", f.To, f.From)
}

// Mask returns the mask of the field bits within a 64 bit value. Bits above
// bit 63 are not representable and are not part of the mask.
func (f Field) Mask() uint64 {
	if f.From >= 64 {
		return 0
	}
	width := f.Width()
	if f.To >= 64 {
		width = uint64(64 - f.From)
	}
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1)<<width - 1) << f.From
}

// Extract returns the value of the field within the given register value.
func (f Field) Extract(value uint64) uint64 {
	if f.From >= 64 {
		return 0
	}
	return (value & f.Mask()) >> f.From
}

// Decode splits the value into the values of all fields, in field order.
func (d *Descriptor) Decode(value uint64) []uint64 {
	values := make([]uint64, len(d.Fields))
	for i, field := range d.Fields {
		values[i] = field.Extract(value)
	}
	return values
}

// Select returns a selection of the register without a value to decode.
func (d *Descriptor) Select() Selection {
	return Selection{Register: d}
}

// Selection is a register picked in an interactive session, optionally
// decorated with a value to decode. The register itself is shared with the
// catalog and never modified.
type Selection struct {
	Register *Descriptor
	Value    uint64
	HasValue bool
}

// Update returns a copy of the selection carrying the given value.
func (s Selection) Update(value uint64) Selection {
	s.Value = value
	s.HasValue = true
	return s
}

// Name returns the name of the selected register.
func (s Selection) Name() string {
	return s.Register.Name
}
