package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
)

// TranslationAdapter loads the full translation set keyed by language.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FSAdapter loads every file in dir that parser supports and merges the
// results. Works with embed.FS, os.DirFS and fstest.MapFS alike.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSAdapter returns nil if parser or fsys is nil. An empty dir means the
// filesystem root.
func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	if parser == nil || fsys == nil {
		return nil
	}
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	all := make(map[string]map[string]any)
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !a.parser.SupportsFileExtension(path.Ext(entry.Name())) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}
		if err := a.loadFile(ctx, path.Join(a.dir, entry.Name()), all); err != nil {
			return nil, err
		}
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslationFiles, a.dir)
	}
	return all, nil
}

func (a *FSAdapter) loadFile(ctx context.Context, name string, all map[string]map[string]any) error {
	content, err := fs.ReadFile(a.fsys, name)
	if err != nil {
		return errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return fmt.Errorf("%w: %q is empty", ErrFailedToParseFile, name)
	}

	parsed, err := a.parser.Parse(ctx, string(content))
	if err != nil {
		return errors.Join(fmt.Errorf("%w: %q", ErrFailedToParseFile, name), err)
	}

	for lang, tree := range parsed {
		if all[lang] == nil {
			all[lang] = make(map[string]any, len(tree))
		}
		maps.Copy(all[lang], tree)
	}
	return nil
}
