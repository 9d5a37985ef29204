// Package walker discovers file paths in an object store by recursive
// single-level listings.
package walker

import (
	"context"
	"strings"

	"github.com/feichai0017/inquiry-reader/pkg/logger"
	"github.com/feichai0017/inquiry-reader/pkg/storage/types"
)

// SupportedExtensions are the document kinds the pipeline can materialize.
var SupportedExtensions = []string{".pdf", ".html", ".htm"}

// sampleSize bounds the raw listing sample kept per visited prefix.
const sampleSize = 5

// Lister lists one directory level. Empty or "/" prefix means the root.
type Lister interface {
	ListLevel(ctx context.Context, prefix string) ([]types.Entry, error)
}

// TraceEntry records one visited prefix for operator troubleshooting of
// storage-policy misconfiguration. Program logic never reads it.
type TraceEntry struct {
	Prefix string
	Depth  int
	Sample []string
	Err    string
}

// Trace is the diagnostic record of one walk.
type Trace struct {
	Walk []TraceEntry
}

type Walker struct {
	lister Lister
	logger logger.Logger
}

func New(lister Lister, log logger.Logger) *Walker {
	return &Walker{
		lister: lister,
		logger: log,
	}
}

// ListFiles walks the tree depth-first from prefix (depth 0) up to maxDepth
// levels, returning root-relative paths of the supported document kinds and
// the diagnostic trace. A listing failure aborts only that subtree; the
// listing API is external and possibly inconsistent, so a (prefix, depth)
// visited guard protects against cycles and repeated directory entries.
func (w *Walker) ListFiles(ctx context.Context, prefix string, maxDepth int) ([]string, *Trace) {
	trace := &Trace{}

	type visitKey struct {
		prefix string
		depth  int
	}
	visited := make(map[visitKey]struct{})

	var results []string

	var walk func(pfx string, depth int)
	walk = func(pfx string, depth int) {
		key := visitKey{prefix: pfx, depth: depth}
		if depth > maxDepth {
			return
		}
		if _, ok := visited[key]; ok {
			return
		}
		visited[key] = struct{}{}

		listing, err := w.lister.ListLevel(ctx, pfx)
		if err != nil {
			trace.Walk = append(trace.Walk, TraceEntry{
				Prefix: pfx,
				Depth:  depth,
				Err:    err.Error(),
			})
			w.logger.Warn("Listing failed, skipping subtree",
				logger.String("prefix", pfx),
				logger.Int("depth", depth),
				logger.Error(err),
			)
			return
		}

		sample := make([]string, 0, sampleSize)
		for _, it := range listing {
			if len(sample) == sampleSize {
				break
			}
			sample = append(sample, it.Name)
		}
		trace.Walk = append(trace.Walk, TraceEntry{
			Prefix: pfx,
			Depth:  depth,
			Sample: sample,
		})

		for _, it := range listing {
			path := joinPath(pfx, it.Name)
			if it.IsFile() {
				results = append(results, path)
			} else {
				walk(path, depth+1)
			}
		}
	}

	walk(normalizeRoot(prefix), 0)

	var files []string
	for _, p := range results {
		if hasSupportedExtension(p) {
			files = append(files, p)
		}
	}

	return files, trace
}

func hasSupportedExtension(path string) bool {
	low := strings.ToLower(path)
	for _, ext := range SupportedExtensions {
		if strings.HasSuffix(low, ext) {
			return true
		}
	}
	return false
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return strings.TrimSuffix(prefix, "/") + "/" + name
}

func normalizeRoot(prefix string) string {
	if prefix == "/" {
		return ""
	}
	return prefix
}
