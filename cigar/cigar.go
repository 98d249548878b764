// 15 Oct 2026
// Package cigar turns a pair of aligned sequences into a CIGAR and back.
// The CIGAR itself is the one from the biogo sam package, so it can go
// straight into a SAM record.
package cigar

import (
	"errors"
	"fmt"

	"github.com/andrew-torda/alnmat/gapdec"
	"github.com/biogo/hts/sam"
)

var (
	ErrLengthMismatch = errors.New("cigar: aligned sequences differ in length")
	ErrEmpty          = errors.New("cigar: empty alignment")
	ErrBadCigar       = errors.New("cigar: cigar does not fit the sequences")
)

// Aligned is one row of an alignment, such as a gapdec.Decorator.
type Aligned[T any] interface {
	Len() int
	At(i int) gapdec.Gapped[T]
}

// Clip has the number of clipped read bases at each end. Hard clips are
// outermost.
type Clip struct {
	HardFront int
	SoftFront int
	SoftBack  int
	HardBack  int
}

// add appends n of t, growing the last op if it is the same type.
func add(c sam.Cigar, t sam.CigarOpType, n int) sam.Cigar {
	if n == 0 {
		return c
	}
	if k := len(c) - 1; k >= 0 && c[k].Type() == t {
		c[k] = sam.NewCigarOp(t, c[k].Len()+n)
		return c
	}
	return append(c, sam.NewCigarOp(t, n))
}

// FromAlignment walks ref and read column by column. Residue against
// residue is M, or = and X if extended is set. A gap in the read is D,
// one in the reference is I and a gap in both is P.
func FromAlignment[T comparable](ref, read Aligned[T], clip Clip, extended bool) (sam.Cigar, error) {
	if ref.Len() != read.Len() {
		return nil, fmt.Errorf("%w: %d and %d", ErrLengthMismatch, ref.Len(), read.Len())
	}
	if ref.Len() == 0 {
		return nil, ErrEmpty
	}
	var c sam.Cigar
	c = add(c, sam.CigarHardClipped, clip.HardFront)
	c = add(c, sam.CigarSoftClipped, clip.SoftFront)
	for i := 0; i < ref.Len(); i++ {
		r, q := ref.At(i), read.At(i)
		var t sam.CigarOpType
		switch {
		case r.Gap && q.Gap:
			t = sam.CigarPadded
		case r.Gap:
			t = sam.CigarInsertion
		case q.Gap:
			t = sam.CigarDeletion
		case !extended:
			t = sam.CigarMatch
		case r.Val == q.Val:
			t = sam.CigarEqual
		default:
			t = sam.CigarMismatch
		}
		c = add(c, t, 1)
	}
	if clip.SoftBack > 0 {
		c = append(c, sam.NewCigarOp(sam.CigarSoftClipped, clip.SoftBack))
	}
	if clip.HardBack > 0 {
		c = append(c, sam.NewCigarOp(sam.CigarHardClipped, clip.HardBack))
	}
	return c, nil
}

// ToAlignment rebuilds the gapped pair from a CIGAR. The reference piece
// starts at refStart. query is the whole read as it would be in a SAM
// record, soft clipped bases included.
func ToAlignment[T comparable](c sam.Cigar, ref []T, refStart int, query []T) (refAl, queryAl *gapdec.Decorator[T], err error) {
	var refLen, qLen, softFront int
	inBody := false
	for i, co := range c {
		switch t := co.Type(); t {
		case sam.CigarBack:
			return nil, nil, fmt.Errorf("%w: %v has a backwards skip", ErrBadCigar, c)
		case sam.CigarSoftClipped, sam.CigarHardClipped:
			if !clipAtEnd(c, i) {
				return nil, nil, fmt.Errorf("%w: %v has a clip in the middle", ErrBadCigar, c)
			}
			if t == sam.CigarSoftClipped && !inBody {
				softFront = co.Len()
			}
		default:
			inBody = true
		}
		con := co.Type().Consumes()
		refLen += co.Len() * con.Reference
		qLen += co.Len() * con.Query
	}
	if refStart < 0 || refStart+refLen > len(ref) || qLen != len(query) {
		return nil, nil, fmt.Errorf("%w: %v needs %d reference from %d and %d query, have %d and %d",
			ErrBadCigar, c, refLen, refStart, qLen, len(ref), len(query))
	}
	_, qAligned := alignedLengths(c)
	refAl = gapdec.New(ref[refStart : refStart+refLen])
	queryAl = gapdec.New(query[softFront : softFront+qAligned])
	pos := 0
	for _, co := range c {
		n := co.Len()
		switch co.Type() {
		case sam.CigarMatch, sam.CigarEqual, sam.CigarMismatch:
		case sam.CigarInsertion:
			refAl.InsertGap(pos, n)
		case sam.CigarDeletion, sam.CigarSkipped:
			queryAl.InsertGap(pos, n)
		case sam.CigarPadded:
			refAl.InsertGap(pos, n)
			queryAl.InsertGap(pos, n)
		default:
			continue
		}
		pos += n
	}
	return refAl, queryAl, nil
}

// clipAtEnd says if op i only has clips between it and one end.
func clipAtEnd(c sam.Cigar, i int) bool {
	isClip := func(co sam.CigarOp) bool {
		return co.Type() == sam.CigarSoftClipped || co.Type() == sam.CigarHardClipped
	}
	front, back := true, true
	for _, co := range c[:i] {
		front = front && isClip(co)
	}
	for _, co := range c[i+1:] {
		back = back && isClip(co)
	}
	return front || back
}

// alignedLengths counts the columns each side covers, clips left out.
func alignedLengths(c sam.Cigar) (ref, query int) {
	for _, co := range c {
		switch co.Type() {
		case sam.CigarSoftClipped, sam.CigarHardClipped:
			continue
		}
		con := co.Type().Consumes()
		ref += co.Len() * con.Reference
		query += co.Len() * con.Query
	}
	return ref, query
}
