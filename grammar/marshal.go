package grammar

import (
	"fmt"

	"github.com/dekarrin/rezi"
)

// MarshalBinary converts p into a slice of bytes that can be decoded with
// UnmarshalBinary.
func (p Production) MarshalBinary() ([]byte, error) {
	var data []byte
	data = append(data, rezi.EncString(p.LHS)...)
	data = append(data, rezi.EncSliceString(p.RHS)...)
	return data, nil
}

// UnmarshalBinary decodes a slice of bytes created by MarshalBinary into p.
// All of p's fields will be replaced by the fields decoded from data.
func (p *Production) UnmarshalBinary(data []byte) error {
	var n int
	var err error

	p.LHS, n, err = rezi.DecString(data)
	if err != nil {
		return fmt.Errorf("lhs: %w", err)
	}
	data = data[n:]

	p.RHS, _, err = rezi.DecSliceString(data)
	if err != nil {
		return fmt.Errorf("rhs: %w", err)
	}

	return nil
}

// MarshalBinary converts g into a slice of bytes that can be decoded with
// UnmarshalBinary. The production order, and with it the index of every
// production, survives the round trip.
func (g Grammar) MarshalBinary() ([]byte, error) {
	var data []byte
	data = append(data, rezi.EncInt(len(g.prods))...)
	for i := range g.prods {
		data = append(data, rezi.EncBinary(g.prods[i])...)
	}
	return data, nil
}

// UnmarshalBinary decodes a slice of bytes created by MarshalBinary into g.
func (g *Grammar) UnmarshalBinary(data []byte) error {
	count, n, err := rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("production count: %w", err)
	}
	data = data[n:]

	g.prods = nil
	for i := 0; i < count; i++ {
		var p Production
		n, err = rezi.DecBinary(data, &p)
		if err != nil {
			return fmt.Errorf("production %d: %w", i, err)
		}
		data = data[n:]
		g.prods = append(g.prods, p)
	}

	return nil
}
