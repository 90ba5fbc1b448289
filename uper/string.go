package uper

import (
	"github.com/asn1rt/asn1rt/asn1type"
	"github.com/asn1rt/asn1rt/bitio"
	"github.com/asn1rt/asn1rt/constraint"
	"github.com/asn1rt/asn1rt/internal/chunk"
	"github.com/asn1rt/asn1rt/limits"
)

// writeGeneralBytes emits data under the general (possibly fragmented)
// length form, interleaving fragment markers with the payload exactly as
// spec.md §4.3/§5 require: largest chunk first, payload immediately
// following each marker, short/long form closing the chain.
func writeGeneralBytes(w *bitio.Writer, data []byte) {
	frags, rem := chunk.Plan(int64(len(data)))
	offset := 0
	for _, f := range frags {
		w.WriteBit(true)
		w.WriteBit(true)
		w.WriteBits(uint64(f/fragmentUnit), 6)
		w.WriteOctets(data[offset : offset+int(f)])
		offset += int(f)
	}
	writeShortOrLongForm(w, rem)
	w.WriteOctets(data[offset : offset+int(rem)])
}

func readGeneralBytes(r *bitio.Reader, lim limits.Limits) ([]byte, error) {
	var buf []byte
	_, err := drainLengthDeterminant(r, lim, func(n int64) error {
		b, err := r.ReadOctets(int(n))
		if err != nil {
			return err
		}
		buf = append(buf, b...)
		return nil
	})
	return buf, err
}

// WriteOctetString implements codec.Writer.
func (w *Writer) WriteOctetString(v []byte, size constraint.Size) error {
	general, err := writeSizePrefix(w.bc, len(v), size)
	if err != nil {
		return err
	}
	if !general {
		w.bc.WriteOctets(v)
		return nil
	}
	writeGeneralBytes(w.bc, v)
	return nil
}

// ReadOctetString implements codec.Reader.
func (r *Reader) ReadOctetString(size constraint.Size) ([]byte, error) {
	n, general, err := readSizePrefix(r.bc, size)
	if err != nil {
		return nil, err
	}
	if !general {
		return r.bc.ReadOctets(n)
	}
	return readGeneralBytes(r.bc, r.lim)
}

// WriteBitString implements codec.Writer. Trailing unused bits of the
// final octet, if any, are simply whatever the caller packed there;
// spec.md leaves their value unspecified on decode.
func (w *Writer) WriteBitString(v asn1type.BitString, size constraint.Size) error {
	general, err := writeSizePrefix(w.bc, v.BitLen, size)
	if err != nil {
		return err
	}
	if !general {
		writeBitsFromBytes(w.bc, v.Bits, v.BitLen)
		return nil
	}
	// General form fragments by bit count; chunk.Plan operates on whole
	// units, and for BIT STRING the unit is a single bit.
	frags, rem := chunk.Plan(int64(v.BitLen))
	offset := 0
	for _, f := range frags {
		w.bc.WriteBit(true)
		w.bc.WriteBit(true)
		w.bc.WriteBits(uint64(f/fragmentUnit), 6)
		writeBitRange(w.bc, v.Bits, offset, int(f))
		offset += int(f)
	}
	writeShortOrLongForm(w.bc, rem)
	writeBitRange(w.bc, v.Bits, offset, int(rem))
	return nil
}

// ReadBitString implements codec.Reader.
func (r *Reader) ReadBitString(size constraint.Size) (asn1type.BitString, error) {
	n, general, err := readSizePrefix(r.bc, size)
	if err != nil {
		return asn1type.BitString{}, err
	}
	if !general {
		bits, err := readBitsToBytes(r.bc, n)
		if err != nil {
			return asn1type.BitString{}, err
		}
		return asn1type.BitString{Bits: bits, BitLen: n}, nil
	}
	var bits []byte
	bitLen := 0
	total, err := drainLengthDeterminant(r.bc, r.lim, func(f int64) error {
		frag, err := readBitsToBytes(r.bc, int(f))
		if err != nil {
			return err
		}
		bits = appendBits(bits, bitLen, frag, int(f))
		bitLen += int(f)
		return nil
	})
	if err != nil {
		return asn1type.BitString{}, err
	}
	return asn1type.BitString{Bits: bits, BitLen: int(total)}, nil
}

func writeBitsFromBytes(w *bitio.Writer, data []byte, bitLen int) {
	writeBitRange(w, data, 0, bitLen)
}

// writeBitRange writes bitLen bits of data starting at bit offset
// bitOffset, MSB-first.
func writeBitRange(w *bitio.Writer, data []byte, bitOffset, bitLen int) {
	for i := 0; i < bitLen; i++ {
		pos := bitOffset + i
		byteIdx := pos / 8
		bitIdx := 7 - uint(pos%8)
		bit := byteIdx < len(data) && data[byteIdx]&(1<<bitIdx) != 0
		w.WriteBit(bit)
	}
}

func readBitsToBytes(r *bitio.Reader, bitLen int) ([]byte, error) {
	out := make([]byte, (bitLen+7)/8)
	for i := 0; i < bitLen; i++ {
		bit, err := r.ReadBit()
		if err != nil {
			return nil, err
		}
		if bit {
			out[i/8] |= 1 << uint(7-i%8)
		}
	}
	return out, nil
}

// appendBits appends bitLen bits from chunk onto the end of an
// existing bit-packed byte slice already holding existingBits bits.
func appendBits(existing []byte, existingBits int, chunkBytes []byte, bitLen int) []byte {
	needed := (existingBits + bitLen + 7) / 8
	for len(existing) < needed {
		existing = append(existing, 0)
	}
	for i := 0; i < bitLen; i++ {
		byteIdx := i / 8
		bitIdx := uint(7 - i%8)
		if byteIdx >= len(chunkBytes) {
			continue
		}
		if chunkBytes[byteIdx]&(1<<bitIdx) == 0 {
			continue
		}
		pos := existingBits + i
		existing[pos/8] |= 1 << uint(7-pos%8)
	}
	return existing
}

// writeCharString encodes a character string using cs's fixed bits-per-
// character alphabet index packing (spec.md §4.3's character string
// rule); for CharsetUtf8 every rune is instead emitted as raw UTF-8 bytes
// under the general octet-string rule since it has no fixed alphabet.
func (w *Writer) writeCharString(v string, size constraint.Size, cs constraint.Charset) error {
	if cs == constraint.CharsetUtf8 {
		return w.WriteOctetString([]byte(v), size)
	}
	runes := []rune(v)
	general, err := writeSizePrefix(w.bc, len(runes), size)
	if err != nil {
		return err
	}
	bits := cs.BitsPerChar()
	writeChars := func(rs []rune) error {
		for _, ch := range rs {
			idx, ok := cs.Index(ch)
			if !ok {
				return &invalidCharsetError{charset: cs.String(), char: ch}
			}
			w.bc.WriteBits(uint64(idx), bits)
		}
		return nil
	}
	if !general {
		return writeChars(runes)
	}
	frags, rem := chunk.Plan(int64(len(runes)))
	offset := 0
	for _, f := range frags {
		w.bc.WriteBit(true)
		w.bc.WriteBit(true)
		w.bc.WriteBits(uint64(f/fragmentUnit), 6)
		if err := writeChars(runes[offset : offset+int(f)]); err != nil {
			return err
		}
		offset += int(f)
	}
	writeShortOrLongForm(w.bc, rem)
	return writeChars(runes[offset : offset+int(rem)])
}

func (r *Reader) readCharString(size constraint.Size, cs constraint.Charset) (string, error) {
	if cs == constraint.CharsetUtf8 {
		b, err := r.ReadOctetString(size)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	n, general, err := readSizePrefix(r.bc, size)
	if err != nil {
		return "", err
	}
	bits := cs.BitsPerChar()
	readN := func(count int) (string, error) {
		out := make([]rune, count)
		for i := 0; i < count; i++ {
			idx, err := r.bc.ReadBits(bits)
			if err != nil {
				return "", err
			}
			ch, ok := cs.Char(int(idx))
			if !ok {
				return "", &invalidCharsetError{charset: cs.String(), char: rune(idx)}
			}
			out[i] = ch
		}
		return string(out), nil
	}
	if !general {
		return readN(n)
	}
	var sb []rune
	_, err = drainLengthDeterminant(r.bc, r.lim, func(f int64) error {
		s, err := readN(int(f))
		if err != nil {
			return err
		}
		sb = append(sb, []rune(s)...)
		return nil
	})
	return string(sb), err
}

type invalidCharsetError struct {
	charset string
	char    rune
}

func (e *invalidCharsetError) Error() string {
	return "uper: character not in " + e.charset + " alphabet"
}

// WriteUtf8String implements codec.Writer.
func (w *Writer) WriteUtf8String(v string, size constraint.Size) error {
	return w.writeCharString(v, size, constraint.CharsetUtf8)
}

// ReadUtf8String implements codec.Reader.
func (r *Reader) ReadUtf8String(size constraint.Size) (string, error) {
	return r.readCharString(size, constraint.CharsetUtf8)
}

// WriteIa5String implements codec.Writer.
func (w *Writer) WriteIa5String(v string, size constraint.Size) error {
	return w.writeCharString(v, size, constraint.CharsetIa5)
}

// ReadIa5String implements codec.Reader.
func (r *Reader) ReadIa5String(size constraint.Size) (string, error) {
	return r.readCharString(size, constraint.CharsetIa5)
}

// WritePrintableString implements codec.Writer.
func (w *Writer) WritePrintableString(v string, size constraint.Size) error {
	return w.writeCharString(v, size, constraint.CharsetPrintable)
}

// ReadPrintableString implements codec.Reader.
func (r *Reader) ReadPrintableString(size constraint.Size) (string, error) {
	return r.readCharString(size, constraint.CharsetPrintable)
}

// WriteNumericString implements codec.Writer.
func (w *Writer) WriteNumericString(v string, size constraint.Size) error {
	return w.writeCharString(v, size, constraint.CharsetNumeric)
}

// ReadNumericString implements codec.Reader.
func (r *Reader) ReadNumericString(size constraint.Size) (string, error) {
	return r.readCharString(size, constraint.CharsetNumeric)
}
