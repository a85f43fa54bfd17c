// Package source implements the Range abstraction (spec C6): a small sum
// type over {contiguous, forward-iterator, stdio, erased} source
// categories, instead of virtual dispatch over every one of them. The fast
// path (contiguous) returns views that borrow from the source; every other
// path funnels through internal/buffer's putback arena.
package source

import (
	"bufio"
	"io"
	"os"
	"unicode/utf8"

	"github.com/daedaluz/scn/internal/buffer"
	"github.com/daedaluz/scn/internal/scnerr"
	"github.com/daedaluz/scn/internal/uniseg"
	xunicode "golang.org/x/text/encoding/unicode"
)

// kind distinguishes whether a Range reads narrow (UTF-8 byte) code units or
// wide (already-decoded code point) units. In the C++ original, wide means
// char16_t/char32_t code units; in Go the idiomatic equivalent of "wide
// character" is already a rune, so a wide Range's code unit *is* a code
// point — this is a deliberate simplification, recorded in DESIGN.md, that
// collapses the UTF-16-vs-UTF-32-as-source-type distinction into "has this
// source already been decoded to runes".
type kind int

const (
	narrow kind = iota
	wide
)

// Range is a forward cursor over either bytes (narrow/UTF-8) or runes
// (wide), contiguous or buffered.
type Range struct {
	k      kind
	contig bool

	// contiguous storage
	s  string // narrow
	rs []rune // wide
	p  int    // cursor, in the same unit as k (byte offset for narrow, rune index for wide)

	// buffered storage
	bbuf *buffer.Buffer[byte]
	rbuf *buffer.Buffer[rune]
}

// FromString builds a contiguous narrow Range over s (zero-copy: s's
// backing bytes are never duplicated).
func FromString(s string) *Range {
	return &Range{k: narrow, contig: true, s: s}
}

// FromBytes builds a contiguous narrow Range over a string copy of b; later
// changes to b are not seen by the Range.
func FromBytes(b []byte) *Range {
	return FromString(string(b))
}

// FromRunes builds a contiguous wide Range over rs (zero-copy).
func FromRunes(rs []rune) *Range {
	return &Range{k: wide, contig: true, rs: rs}
}

// FromReader builds a buffered narrow Range over any io.Reader (spec's
// "erased" source category).
func FromReader(r io.Reader) *Range {
	return &Range{k: narrow, bbuf: buffer.New[byte](buffer.NewReaderByteSource(r))}
}

// FromRuneReader builds a buffered wide Range over any io.RuneReader.
func FromRuneReader(r io.RuneReader) *Range {
	return &Range{k: wide, rbuf: buffer.New[rune](buffer.NewRuneReaderSource(r))}
}

// FromUTF16Reader builds a buffered wide Range over a byte-oriented
// io.Reader carrying UTF-16 text (optionally BOM-prefixed), transcoding it
// to code points as it is pulled. This is the entry point for a "wide"
// source that arrives as a raw byte stream rather than as native []rune,
// e.g. a file read in binary mode on a platform whose wchar_t is 16 bits.
func FromUTF16Reader(r io.Reader, bo xunicode.BOMPolicy) *Range {
	decoded := uniseg.DecodeUTF16Stream(r, bo)
	return FromRuneReader(bufio.NewReader(decoded))
}

// FromByteIterator builds a buffered narrow Range over a forward iterator
// of bytes (spec's "forward iterator" source category, kept distinct from
// FromReader because it need not be I/O-backed at all).
func FromByteIterator(it buffer.Iterator[byte]) *Range {
	return &Range{k: narrow, bbuf: buffer.New[byte](buffer.NewIteratorSource[byte](it))}
}

// FromFile builds a buffered narrow Range over an *os.File (spec's "stdio"
// source category); Sync becomes a real Seek when f is seekable.
func FromFile(f *os.File) *Range {
	return &Range{k: narrow, bbuf: buffer.New[byte](buffer.NewFileByteSource(f))}
}

// Stdin returns a Range over the process-wide stdin buffer. Callers must
// hold buffer.StdinLock() for the duration of the scan, per spec.md §5.
func Stdin() *Range {
	return &Range{k: narrow, bbuf: buffer.Stdin()}
}

// Wide reports whether this Range's code unit is a decoded rune (true) or
// a UTF-8 byte (false).
func (r *Range) Wide() bool { return r.k == wide }

// Contiguous reports whether this Range can hand out zero-copy views
// (I-B3).
func (r *Range) Contiguous() bool { return r.contig }

// Pos returns the cursor's logical position (byte offset for narrow, rune
// index for wide).
func (r *Range) Pos() int {
	if r.contig {
		return r.p
	}
	if r.k == narrow {
		return r.bbuf.Pos()
	}
	return r.rbuf.Pos()
}

// SetPos rewinds or fast-forwards the cursor to a previously reachable
// position (I-B1/I-B2: safe because nothing is ever discarded from a
// contiguous slice or a buffer's arena).
func (r *Range) SetPos(p int) {
	if r.contig {
		if p < 0 {
			p = 0
		}
		max := len(r.s)
		if r.k == wide {
			max = len(r.rs)
		}
		if p > max {
			p = max
		}
		r.p = p
		return
	}
	if r.k == narrow {
		r.bbuf.SetPos(p)
	} else {
		r.rbuf.SetPos(p)
	}
}

// AtEnd reports whether the cursor has reached the end of everything the
// source can ever produce.
func (r *Range) AtEnd() bool {
	if r.contig {
		if r.k == narrow {
			return r.p >= len(r.s)
		}
		return r.p >= len(r.rs)
	}
	if r.k == narrow {
		return r.bbuf.AtEnd()
	}
	return r.rbuf.AtEnd()
}

// PeekRune returns the code point at the cursor without advancing, its
// width in the Range's native code units (bytes for narrow, always 1 for
// wide), and whether one was available. A malformed UTF-8 sequence on a
// narrow source yields utf8.RuneError with width 1, matching
// utf8.DecodeRuneInString's own convention; callers distinguish "no more
// input" (ok=false) from "garbage input" (ok=true, r==utf8.RuneError) by
// also checking AtEnd.
func (r *Range) PeekRune() (cp rune, width int, ok bool) {
	if r.k == wide {
		return r.peekWideRune()
	}
	return r.peekNarrowRune()
}

func (r *Range) peekWideRune() (rune, int, bool) {
	if r.contig {
		if r.p >= len(r.rs) {
			return 0, 0, false
		}
		return r.rs[r.p], 1, true
	}
	v, ok := r.rbuf.Current()
	if !ok {
		return 0, 0, false
	}
	return v, 1, true
}

func (r *Range) peekNarrowRune() (rune, int, bool) {
	if r.contig {
		if r.p >= len(r.s) {
			return 0, 0, false
		}
		cp, w := utf8.DecodeRuneInString(r.s[r.p:])
		return cp, w, true
	}
	// Buffered: pull up to utf8.UTFMax bytes starting at the cursor into
	// a small local array without disturbing the buffer's own cursor.
	var tmp [utf8.UTFMax]byte
	n := 0
	for ; n < utf8.UTFMax; n++ {
		b, ok := r.bbuf.At(r.bbuf.Pos() + n)
		if !ok {
			break
		}
		tmp[n] = b
	}
	if n == 0 {
		return 0, 0, false
	}
	cp, w := utf8.DecodeRune(tmp[:n])
	return cp, w, true
}

// Advance moves the cursor forward by width native code units (as returned
// by PeekRune).
func (r *Range) Advance(width int) {
	if width <= 0 {
		return
	}
	if r.contig {
		r.p += width
		return
	}
	if r.k == narrow {
		for i := 0; i < width; i++ {
			r.bbuf.Advance()
		}
		return
	}
	for i := 0; i < width; i++ {
		r.rbuf.Advance()
	}
}

// ContiguousTail returns the remaining unread narrow bytes as a string
// without copying, when this is a contiguous narrow Range. The nocopy path
// spec.md reserves for string_view and regex targets.
func (r *Range) ContiguousTail() (string, bool) {
	if !r.contig || r.k != narrow {
		return "", false
	}
	return r.s[r.p:], true
}

// ContiguousRuneTail is ContiguousTail's wide counterpart.
func (r *Range) ContiguousRuneTail() ([]rune, bool) {
	if !r.contig || r.k != wide {
		return nil, false
	}
	return r.rs[r.p:], true
}

// Sync repositions the underlying source to match the cursor (I-B4); a
// no-op for contiguous ranges (there is no separate underlying source to
// reposition) and for buffered ranges whose source doesn't support it.
func (r *Range) Sync() error {
	if r.contig {
		return nil
	}
	var err error
	if r.k == narrow {
		err = r.bbuf.Sync()
	} else {
		err = r.rbuf.Sync()
	}
	if err != nil {
		return scnerr.NewWrappedError(scnerr.BadSource, "sync failed", err)
	}
	return nil
}
