package lang

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ardnew/mung"
	"github.com/klauspost/readahead"
)

// DefaultSuffix is the file extension probed for when a namespace's dotted
// name is resolved against the load path.
const DefaultSuffix = "srn"

// SourceManager owns the registry of SourceBuffers loaded for a running
// compilation: it assigns monotonically increasing BufferIDs, never reuses
// or frees a buffer once registered, and always allocates a fresh buffer on
// reload — by design there is no content-addressed deduplication here, so a
// namespace read twice (even with identical bytes) gets two distinct
// SourceBuffers and the namespace-to-buffer map always points at the most
// recently loaded one.
type SourceManager struct {
	mu        sync.Mutex
	buffers   []*SourceBuffer
	latest    map[string]BufferID
	loadPaths []string
}

// NewSourceManager returns a SourceManager with an empty load path.
func NewSourceManager() *SourceManager {
	return &SourceManager{latest: make(map[string]BufferID)}
}

// SetLoadPaths normalizes and deduplicates dirs (in order, first occurrence
// wins) using mung's PATH-like list munging.
func (sm *SourceManager) SetLoadPaths(dirs ...string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	joined := mung.Make(
		mung.WithSubjectItems(dirs...),
		mung.WithDelim(string(os.PathListSeparator)),
	).String()

	sm.loadPaths = splitNonEmpty(joined, os.PathListSeparator)
}

// LoadPaths returns the manager's current search path, in probe order.
func (sm *SourceManager) LoadPaths() []string {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return append([]string(nil), sm.loadPaths...)
}

func splitNonEmpty(s string, sep rune) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == sep })

	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}

	return out
}

// AddBuffer registers data under namespace with an optional filename,
// allocating the next monotonic BufferID and recording it as namespace's
// latest buffer (superseding any prior mapping, without freeing the
// superseded SourceBuffer — it remains addressable by its own ID).
func (sm *SourceManager) AddBuffer(namespace, filename string, hasFile bool, data []byte) *SourceBuffer {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	buf := &SourceBuffer{
		id:        BufferID(len(sm.buffers) + 1),
		namespace: namespace,
		filename:  filename,
		hasFile:   hasFile,
		data:      data,
	}

	sm.buffers = append(sm.buffers, buf)
	sm.latest[namespace] = buf.id

	return buf
}

// IsValidID reports whether id was allocated by this manager.
func (sm *SourceManager) IsValidID(id BufferID) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return id >= 1 && int(id) <= len(sm.buffers)
}

// GetBuffer returns the buffer registered under id.
func (sm *SourceManager) GetBuffer(id BufferID) (*SourceBuffer, bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if id < 1 || int(id) > len(sm.buffers) {
		return nil, false
	}

	return sm.buffers[id-1], true
}

// LatestBuffer returns the most recently loaded buffer for namespace.
func (sm *SourceManager) LatestBuffer(namespace string) (*SourceBuffer, bool) {
	sm.mu.Lock()
	id, ok := sm.latest[namespace]
	sm.mu.Unlock()

	if !ok {
		return nil, false
	}

	return sm.GetBuffer(id)
}

// PointerForLineNumber returns the byte offset of the first byte of the
// given 1-based line within the buffer registered under id, or false if id
// is unknown or the buffer has fewer than lineNo lines. lineNo == 0 is
// treated as 1.
func (sm *SourceManager) PointerForLineNumber(id BufferID, lineNo int) (int, bool) {
	buf, ok := sm.GetBuffer(id)
	if !ok {
		return 0, false
	}

	return buf.PointerForLine(lineNo)
}

// ConvertNamespaceToPath maps a dotted namespace name to the relative file
// path probed for in the load path: dots become path separators and
// DefaultSuffix is appended, e.g. "a.b.c" -> "a/b/c.srn".
func ConvertNamespaceToPath(namespace string) string {
	parts := strings.Split(namespace, ".")

	return filepath.Join(parts...) + "." + DefaultSuffix
}

// FindFileInLoadPath probes each configured load-path directory in order
// for namespace's resolved relative path, returning the first hit.
func (sm *SourceManager) FindFileInLoadPath(namespace string) (string, bool) {
	rel := ConvertNamespaceToPath(namespace)

	for _, dir := range sm.LoadPaths() {
		candidate := filepath.Join(dir, rel)

		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

// ReadNamespace resolves namespace against the load path, reads its file
// contents (wrapped in a read-ahead buffer to amortize disk latency),
// registers a fresh SourceBuffer, parses it into forms, and returns both the
// buffer and the parsed Ast. Every call allocates a new SourceBuffer, even
// if namespace was already loaded — see the SourceManager docs.
func (sm *SourceManager) ReadNamespace(ctx context.Context, namespace string) (*SourceBuffer, Ast, error) {
	path, ok := sm.FindFileInLoadPath(namespace)
	if !ok {
		return nil, nil, NewErrorAt(KindNSLoadError, LocationRange{}).
			WithMessage("namespace " + namespace + " not found in load path")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, NewErrorAt(KindNSLoadError, LocationRange{}).Wrap(err)
	}
	defer f.Close()

	ra := readahead.NewReader(f)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, nil, NewErrorAt(KindNSLoadError, LocationRange{}).Wrap(err)
	}

	buf := sm.AddBuffer(namespace, path, true, data)

	forms, err := Read(ctx, data, namespace)
	if err != nil {
		return buf, forms, err
	}

	return buf, forms, nil
}
