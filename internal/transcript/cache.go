package transcript

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nguyentantai21042004/vidprompt/internal/apperr"
)

const (
	tempPrefix = ".pending-"
	filePerm   = 0644
)

func (c *implCache) Dir() string {
	return c.dir
}

func (c *implCache) EnsureStoreExists() error {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return apperr.Storage("create transcription folder", err)
	}
	return nil
}

// ValidateRef rejects an empty or whitespace-only video reference.
func ValidateRef(videoRef string) error {
	if strings.TrimSpace(videoRef) == "" {
		return apperr.Validation("resolve transcript", "Please select a video file.")
	}
	return nil
}

// locate validates the reference, ensures the store and returns the record
// skeleton for it.
func (c *implCache) locate(videoRef string) (Record, error) {
	if err := ValidateRef(videoRef); err != nil {
		return Record{}, err
	}
	if err := c.EnsureStoreExists(); err != nil {
		return Record{}, err
	}

	key := Key(videoRef)
	return Record{
		VideoRef: videoRef,
		Key:      key,
		Path:     filepath.Join(c.dir, key),
	}, nil
}

func (c *implCache) Lookup(ctx context.Context, videoRef string) (Record, bool, error) {
	rec, err := c.locate(videoRef)
	if err != nil {
		return Record{}, false, err
	}

	// existing content is trusted as-is: no emptiness or freshness check
	data, err := os.ReadFile(rec.Path)
	if errors.Is(err, os.ErrNotExist) {
		return rec, false, nil
	}
	if err != nil {
		return Record{}, false, apperr.Storage("read transcript", err)
	}

	rec.Text = string(data)
	rec.Cached = true
	return rec, true, nil
}

func (c *implCache) GetOrCreate(ctx context.Context, videoRef string) (Record, error) {
	rec, ok, err := c.Lookup(ctx, videoRef)
	if err != nil {
		return Record{}, err
	}
	if ok {
		c.logger.Info(ctx, "Transcription already exists: %s", rec.Path)
		return rec, nil
	}

	c.logger.Info(ctx, "No cached transcript for %s, transcribing", videoRef)

	result, err := c.transcriber.Transcribe(ctx, videoRef)
	if err != nil {
		return Record{}, apperr.Transcription("transcribe "+videoRef, err)
	}

	if err := c.write(rec.Path, result.Text); err != nil {
		return Record{}, err
	}

	c.logger.Info(ctx, "Transcription saved to: %s", rec.Path)
	rec.Text = result.Text
	return rec, nil
}

// write persists text with write-then-rename so a failed write never leaves
// a partial transcript under the final name.
func (c *implCache) write(path, text string) error {
	tmp, err := os.CreateTemp(c.dir, tempPrefix+"*")
	if err != nil {
		return apperr.Storage("create transcript", err)
	}
	tmpPath := tmp.Name()

	// CreateTemp uses 0600; transcripts are meant to be opened by hand
	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return apperr.Storage("chmod transcript", err)
	}
	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return apperr.Storage("write transcript", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return apperr.Storage("sync transcript", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return apperr.Storage("close transcript", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return apperr.Storage("rename transcript", err)
	}
	return nil
}

func (c *implCache) List(ctx context.Context) ([]Entry, error) {
	dirEntries, err := os.ReadDir(c.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Storage("list transcripts", err)
	}

	var entries []Entry
	for _, e := range dirEntries {
		name := e.Name()
		// keys may start with a dot ("./a.mp4"), only in-flight writes are skipped
		if e.IsDir() || strings.HasPrefix(name, tempPrefix) || !strings.HasSuffix(name, Suffix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			c.logger.Warn(ctx, "Skipping %s: %v", name, err)
			continue
		}
		entries = append(entries, Entry{
			Key:     name,
			Path:    filepath.Join(c.dir, name),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries, nil
}

func (c *implCache) Remove(ctx context.Context, videoRef string) (bool, error) {
	if err := ValidateRef(videoRef); err != nil {
		return false, err
	}

	path := filepath.Join(c.dir, Key(videoRef))
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, apperr.Storage("remove transcript", fmt.Errorf("%s: %w", path, err))
	}

	c.logger.Info(ctx, "Removed transcript: %s", path)
	return true, nil
}
