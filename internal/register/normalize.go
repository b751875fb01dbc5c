package register

import (
	"errors"
	"fmt"

	"github.com/retroenv/regview/internal/ast"
)

// maxOverlapCheckBits is the largest register width that is checked for
// overlapping declared fields.
const maxOverlapCheckBits = 64

// Reasons for rejecting a register declaration, wrapped by ValidationError.
var (
	ErrZeroWidth     = errors.New("register has zero width")
	ErrInvertedRange = errors.New("field low bit is above its high bit")
	ErrOutOfBounds   = errors.New("field exceeds register width")
	ErrOverlap       = errors.New("field overlaps a previous field")
	ErrUnordered     = errors.New("field is not declared in descending bit order")
)

// ValidationError describes why a register declaration was rejected.
type ValidationError struct {
	Register string
	Field    *ast.Bitfield // nil for register level errors
	Err      error
}

func (e *ValidationError) Error() string {
	if e.Field == nil {
		return fmt.Sprintf("register %s: %s", e.Register, e.Err)
	}
	if e.Field.Name == "" {
		return fmt.Sprintf("register %s: field %d:%d: %s", e.Register, e.Field.To, e.Field.From, e.Err)
	}
	return fmt.Sprintf("register %s: field %s %d:%d: %s", e.Register, e.Field.Name, e.Field.To, e.Field.From, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Normalize validates a parsed register declaration and converts it to a
// descriptor whose fields cover every bit of the register exactly once.
func Normalize(reg *ast.Register) (*Descriptor, error) {
	if err := validate(reg); err != nil {
		return nil, err
	}

	fields, err := layout(reg)
	if err != nil {
		return nil, err
	}

	desc := &Descriptor{
		Name:   reg.Name,
		Bits:   reg.Bits,
		Fields: fields,
	}
	if reg.Array != nil {
		desc.Array = &ArrayRange{From: reg.Array.From, To: reg.Array.To}
	}
	return desc, nil
}

// validate checks the declared fields against the register width and, for
// registers of up to 64 bits, against each other.
func validate(reg *ast.Register) error {
	if reg.Bits == 0 {
		return &ValidationError{Register: reg.Name, Err: ErrZeroWidth}
	}

	var used uint64
	for i := range reg.Fields {
		field := &reg.Fields[i]

		switch {
		case field.From > field.To:
			return &ValidationError{Register: reg.Name, Field: field, Err: ErrInvertedRange}
		case field.To >= reg.Bits:
			return &ValidationError{Register: reg.Name, Field: field, Err: ErrOutOfBounds}
		case reg.Bits > maxOverlapCheckBits:
			continue
		}

		mask := Field{From: field.From, To: field.To}.Mask()
		if used&mask != 0 {
			return &ValidationError{Register: reg.Name, Field: field, Err: ErrOverlap}
		}
		used |= mask
	}
	return nil
}

// layout walks the declared fields from the highest to the lowest bit and
// inserts padding fields for every gap.
func layout(reg *ast.Register) ([]Field, error) {
	fields := make([]Field, 0, 2*len(reg.Fields)+1)

	expected := int64(reg.Bits) - 1 // next bit that needs to be covered, -1 when done
	for i := range reg.Fields {
		declared := &reg.Fields[i]
		to := int64(declared.To)

		if to > expected {
			return nil, &ValidationError{Register: reg.Name, Field: declared, Err: ErrUnordered}
		}
		if expected > to {
			fields = append(fields, Field{
				From: declared.To + 1,
				To:   uint32(expected),
			})
		}

		fields = append(fields, Field{
			From: declared.From,
			To:   declared.To,
			Name: declared.Name,
		})
		expected = int64(declared.From) - 1
	}

	if expected >= 0 {
		fields = append(fields, Field{
			From: 0,
			To:   uint32(expected),
		})
	}
	return fields, nil
}
