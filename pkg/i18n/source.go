package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
)

// Source supplies catalogs to a Translator.
type Source interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapSource serves catalogs held in memory.
type MapSource map[string]map[string]any

func (s MapSource) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}
	out := make(map[string]map[string]any, len(s))
	for lang, messages := range s {
		out[lang] = cloneMessages(messages)
	}
	return out, nil
}

type fsSource struct {
	fsys fs.FS
	dir  string
}

// FSSource reads every catalog file in dir of fsys. Subdirectories and files
// with other extensions are skipped; a file that fails to parse fails the
// whole load.
func FSSource(fsys fs.FS, dir string) Source {
	return fsSource{fsys: fsys, dir: dir}
}

func (s fsSource) Load(ctx context.Context) (map[string]map[string]any, error) {
	entries, err := fs.ReadDir(s.fsys, s.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	all := make(map[string]map[string]any)
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		parser := ParserForFile(entry.Name())
		if parser == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		name := path.Join(s.dir, entry.Name())
		content, err := fs.ReadFile(s.fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		catalogs, err := parser.Parse(content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		mergeCatalogs(all, catalogs)
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslationFiles, s.dir)
	}
	return all, nil
}

type mergedSource []Source

// Merge loads sources in order; messages from later sources replace those
// with the same key in earlier ones.
func Merge(sources ...Source) Source {
	return mergedSource(sources)
}

func (m mergedSource) Load(ctx context.Context) (map[string]map[string]any, error) {
	all := make(map[string]map[string]any)
	for _, src := range m {
		if src == nil {
			return nil, ErrNilSource
		}
		catalogs, err := src.Load(ctx)
		if err != nil {
			return nil, err
		}
		mergeCatalogs(all, catalogs)
	}
	return all, nil
}

func mergeCatalogs(dst, src map[string]map[string]any) {
	for lang, messages := range src {
		if dst[lang] == nil {
			dst[lang] = make(map[string]any, len(messages))
		}
		mergeMessages(dst[lang], messages)
	}
}

func mergeMessages(dst, src map[string]any) {
	for key, val := range src {
		srcMap, srcIsMap := val.(map[string]any)
		dstMap, dstIsMap := dst[key].(map[string]any)
		if srcIsMap && dstIsMap {
			mergeMessages(dstMap, srcMap)
			continue
		}
		if srcIsMap {
			val = cloneMessages(srcMap)
		}
		dst[key] = val
	}
}

func cloneMessages(src map[string]any) map[string]any {
	out := make(map[string]any, len(src))
	for key, val := range src {
		if nested, ok := val.(map[string]any); ok {
			val = cloneMessages(nested)
		}
		out[key] = val
	}
	return out
}
