// Package local implements the on-device stores: a JSON key-value layout on
// an afero filesystem with one directory per context.
package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// Keys of the persisted collections.
const (
	KeyParticipants = "participants"
	KeyGames        = "games"
	KeyGameTitles   = "game_titles"
)

// KV stores one JSON snapshot per (context, key). A missing key reads as
// empty and every write replaces the whole snapshot.
type KV struct {
	fs   afero.Fs
	root string
}

// NewKV creates a KV rooted at dir on the given filesystem.
func NewKV(fsys afero.Fs, dir string) *KV {
	return &KV{fs: fsys, root: dir}
}

// NewOsKV creates a KV on the real filesystem.
func NewOsKV(dir string) *KV {
	return NewKV(afero.NewOsFs(), dir)
}

func (kv *KV) path(contextID, key string) string {
	return filepath.Join(kv.root, url.PathEscape(contextID), key+".json")
}

// Get decodes the snapshot into dst. It reports false when the key was never written.
func (kv *KV) Get(ctx context.Context, contextID, key string, dst any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	data, err := afero.ReadFile(kv.fs, kv.path(contextID, key))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s/%s: %w", contextID, key, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("decode %s/%s: %w", contextID, key, err)
	}

	return true, nil
}

// Put encodes v and replaces the snapshot. The write goes to a temporary
// file first so a crash never leaves a half-written snapshot behind.
func (kv *KV) Put(ctx context.Context, contextID, key string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", contextID, key, err)
	}

	target := kv.path(contextID, key)
	if err := kv.fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", contextID, err)
	}

	tmp := target + "." + uuid.NewString() + ".tmp"
	if err := afero.WriteFile(kv.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s/%s: %w", contextID, key, err)
	}

	if err := kv.fs.Rename(tmp, target); err != nil {
		_ = kv.fs.Remove(tmp)
		return fmt.Errorf("replace %s/%s: %w", contextID, key, err)
	}

	return nil
}

// Contexts lists the context ids that have any stored data.
func (kv *KV) Contexts() ([]string, error) {
	entries, err := afero.ReadDir(kv.fs, kv.root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list contexts: %w", err)
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		id, err := url.PathUnescape(e.Name())
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// Ping checks that the root directory exists or can be created.
func (kv *KV) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := kv.fs.MkdirAll(kv.root, 0o755); err != nil {
		return fmt.Errorf("data dir %s: %w", kv.root, err)
	}
	return nil
}
