package lang

import "sort"

// BufferID identifies a SourceBuffer registered with a SourceManager. IDs
// are 1-based and monotonically increasing; zero is never a valid ID.
type BufferID uint64

// lineOffsets is a size-specialized cache of newline byte offsets within a
// buffer, built lazily on first use and sized to the smallest unsigned
// integer width that can index the buffer's length. This keeps the common
// case of small source files from paying for a []int64 cache.
type lineOffsets struct {
	width int // 1, 2, 4, or 8 bytes per element
	off8  []uint8
	off16 []uint16
	off32 []uint32
	off64 []uint64
	built bool
}

func newLineOffsets(bufLen int) *lineOffsets {
	width := 8
	switch {
	case bufLen <= 1<<8-1:
		width = 1
	case bufLen <= 1<<16-1:
		width = 2
	case bufLen <= 1<<32-1:
		width = 4
	}

	return &lineOffsets{width: width}
}

func (lo *lineOffsets) build(data []byte) {
	if lo.built {
		return
	}

	lo.built = true

	for i, b := range data {
		if b != '\n' {
			continue
		}

		switch lo.width {
		case 1:
			if i <= 1<<8-1 {
				lo.off8 = append(lo.off8, uint8(i))
			}
		case 2:
			if i <= 1<<16-1 {
				lo.off16 = append(lo.off16, uint16(i))
			}
		case 4:
			lo.off32 = append(lo.off32, uint32(i))
		default:
			lo.off64 = append(lo.off64, uint64(i))
		}
	}
}

func (lo *lineOffsets) count() int {
	switch lo.width {
	case 1:
		return len(lo.off8)
	case 2:
		return len(lo.off16)
	case 4:
		return len(lo.off32)
	default:
		return len(lo.off64)
	}
}

func (lo *lineOffsets) at(i int) int {
	switch lo.width {
	case 1:
		return int(lo.off8[i])
	case 2:
		return int(lo.off16[i])
	case 4:
		return int(lo.off32[i])
	default:
		return int(lo.off64[i])
	}
}

// lineForOffset returns the 1-based line number containing byte offset, and
// the byte offset of the start of that line.
func (lo *lineOffsets) lineForOffset(offset int) (line uint16, lineStart int) {
	n := lo.count()

	idx := sort.Search(n, func(i int) bool { return lo.at(i) >= offset })

	if idx == 0 {
		return 1, 0
	}

	return uint16(idx + 1), lo.at(idx-1) + 1
}

// SourceBuffer is an immutable, registered source text along with its
// owning namespace name, an optional backing filename, and a lazily built
// line-offset cache. Buffers are never mutated or freed once registered;
// reloading a namespace always produces a new SourceBuffer with a new
// BufferID.
type SourceBuffer struct {
	id        BufferID
	namespace string
	filename  string
	hasFile   bool
	data      []byte
	lines     *lineOffsets
}

// ID returns the buffer's registration identifier.
func (b *SourceBuffer) ID() BufferID { return b.id }

// Namespace returns the dotted namespace name this buffer was loaded for.
func (b *SourceBuffer) Namespace() string { return b.namespace }

// Filename returns the backing path and whether one exists (a buffer
// registered directly from in-memory text has none).
func (b *SourceBuffer) Filename() (string, bool) { return b.filename, b.hasFile }

// Bytes returns the buffer's raw contents. Callers must not mutate the
// returned slice.
func (b *SourceBuffer) Bytes() []byte { return b.data }

// LocationFor builds a fully known Location at the given byte offset,
// lazily building the line-offset cache on first call.
func (b *SourceBuffer) LocationFor(offset int) Location {
	if b.lines == nil {
		b.lines = newLineOffsets(len(b.data))
	}

	b.lines.build(b.data)

	line, lineStart := b.lines.lineForOffset(offset)
	col := uint16(offset-lineStart) + 1

	return Location{
		Namespace:   b.namespace,
		Filename:    b.filename,
		HasFilename: b.hasFile,
		Offset:      offset,
		Line:        line,
		Column:      col,
		Known:       true,
	}
}

// PointerForLine returns the byte offset of the first byte of the given
// 1-based line, lazily building the line-offset cache on first call.
// lineNo == 0 is treated as 1. It returns false if the buffer has fewer
// than lineNo lines.
func (b *SourceBuffer) PointerForLine(lineNo int) (int, bool) {
	if lineNo <= 0 {
		lineNo = 1
	}

	if lineNo == 1 {
		return 0, true
	}

	if b.lines == nil {
		b.lines = newLineOffsets(len(b.data))
	}

	b.lines.build(b.data)

	idx := lineNo - 2
	if idx >= b.lines.count() {
		return 0, false
	}

	return b.lines.at(idx) + 1, true
}
