package fixture

import (
	"encoding/binary"

	"github.com/dringlabs/fixturegen/pkg/detrand"
)

// Layout constants for the header-mutation pair.
const (
	headerMagicLen   = 4
	headerVersionLen = 2
	headerBodyLen    = 120
)

// Header magic values: the modified variant flips exactly one magic byte.
var (
	magicOriginal = []byte{0x7F, 'E', 'L', 'F'}
	magicModified = []byte{0x7F, 'O', 'L', 'F'}
)

// scatterEdits maps the five fixed offsets of the simple pair to their
// sentinel replacement values.
var scatterEdits = map[int]byte{
	0:  0xFF,
	15: 0xAA,
	31: 0xBB,
	47: 0xCC,
	63: 0xDD,
}

// textBlock is a fixed pangram corpus, newline-terminated lines.
var textBlock = []byte("The quick brown fox jumps over the lazy dog.\n" +
	"Pack my box with five dozen liquor jugs.\n" +
	"How vexingly quick daft zebras jump!\n" +
	"The five boxing wizards jump quickly.\n")

// textEdits maps five fixed offsets inside textBlock to replacement
// characters, simulating isolated corruption in otherwise natural text.
var textEdits = map[int]byte{
	4:   'Q', // quick -> Quick
	10:  'B', // brown -> Brown
	35:  'L', // lazy  -> Lazy
	80:  'Z', // mid-word corruption in the second line
	120: '!', // punctuation swap
}

// SimpleScatter builds a small pair with a handful of scattered
// single-byte differences: 64 bytes counting 0..63, against a copy with
// five fixed positions overwritten by sentinel values.
func SimpleScatter() Pair {
	base := make([]byte, 64)
	for i := range base {
		base[i] = byte(i)
	}

	modified := overwrite(base, scatterEdits)

	return Pair{
		Key:  "simple",
		Desc: "5 scattered single-byte edits",
		A:    File{Name: "simple_v1.bin", Data: base},
		B:    File{Name: "simple_v2.bin", Data: modified},
	}
}

// HeaderMutation builds a pair simulating a binary whose header was
// rewritten: 4 magic bytes plus a little-endian uint16 version, followed
// by a 120-byte random body shared verbatim by both files. Only the first
// 6 bytes differ.
func HeaderMutation(src *detrand.Source) Pair {
	body := src.Bytes(headerBodyLen)

	return Pair{
		Key:  "header",
		Desc: "magic+version header mutation, shared body",
		A:    File{Name: "header_original.bin", Data: assembleHeader(magicOriginal, 1, body)},
		B:    File{Name: "header_modified.bin", Data: assembleHeader(magicModified, 2, body)},
	}
}

func assembleHeader(magic []byte, version uint16, body []byte) []byte {
	out := make([]byte, 0, headerMagicLen+headerVersionLen+len(body))
	out = append(out, magic...)
	out = binary.LittleEndian.AppendUint16(out, version)
	return append(out, body...)
}

// Firmware builds a larger pair with many differences, in the manner of a
// firmware update: 512 random bytes, against a copy where 80 distinct
// positions had a random nonzero delta added modulo 256. Adding a value
// in [1,255] mod 256 never maps a byte to itself, so all 80 positions are
// guaranteed to differ.
func Firmware(src *detrand.Source) Pair {
	const (
		size  = 512
		edits = 80
	)

	v1 := src.Bytes(size)
	v2 := make([]byte, size)
	copy(v2, v1)

	for _, i := range src.SampleIndices(size, edits) {
		v2[i] = v1[i] + byte(src.IntIn(1, 255))
	}

	return Pair{
		Key:  "firmware",
		Desc: "80 randomized byte deltas",
		A:    File{Name: "firmware_v1.bin", Data: v1},
		B:    File{Name: "firmware_v2.bin", Data: v2},
	}
}

// TextSubstitution builds two text-like files where a few characters were
// swapped or corrupted at fixed offsets.
func TextSubstitution() Pair {
	original := make([]byte, len(textBlock))
	copy(original, textBlock)

	modified := overwrite(original, textEdits)

	return Pair{
		Key:  "text",
		Desc: "5 character substitutions",
		A:    File{Name: "text_original.bin", Data: original},
		B:    File{Name: "text_modified.bin", Data: modified},
	}
}

// IdenticalPair builds two byte-for-byte identical files, useful for
// verifying the diff tool's "no differences" path. The two files get
// independent backing arrays so mutating one downstream cannot leak into
// the other.
func IdenticalPair() Pair {
	a := make([]byte, 256)
	for i := range a {
		a[i] = byte(i)
	}
	b := make([]byte, len(a))
	copy(b, a)

	return Pair{
		Key:  "identical",
		Desc: "exact duplicates",
		A:    File{Name: "identical_a.bin", Data: a},
		B:    File{Name: "identical_b.bin", Data: b},
	}
}

// overwrite returns a copy of base with the given offset -> value edits
// applied. The base slice is left untouched.
func overwrite(base []byte, edits map[int]byte) []byte {
	out := make([]byte, len(base))
	copy(out, base)
	for off, val := range edits {
		out[off] = val
	}
	return out
}
