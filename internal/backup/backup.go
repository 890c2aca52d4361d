// Package backup escribe y lee snapshots del store como JSON comprimido con zstd.
package backup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"github.com/klauspost/compress/zstd"

	"pawnote/internal/localdb"
)

var ErrEmptyPath = errors.New("backup: empty path")

// Codec comprime/descomprime snapshots. Es seguro para uso concurrente.
type Codec struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func NewCodec() (*Codec, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("backup: zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	if err != nil {
		encoder.Close()
		return nil, fmt.Errorf("backup: zstd decoder: %w", err)
	}
	return &Codec{encoder: encoder, decoder: decoder}, nil
}

func (c *Codec) Close() {
	_ = c.encoder.Close()
	c.decoder.Close()
}

func (c *Codec) Encode(snap localdb.Snapshot) ([]byte, error) {
	raw, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("backup: encode: %w", err)
	}
	return c.encoder.EncodeAll(raw, make([]byte, 0, len(raw)/2)), nil
}

func (c *Codec) Decode(data []byte) (localdb.Snapshot, error) {
	raw, err := c.decoder.DecodeAll(data, nil)
	if err != nil {
		return localdb.Snapshot{}, fmt.Errorf("backup: decompress: %w", err)
	}
	var snap localdb.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return localdb.Snapshot{}, fmt.Errorf("backup: decode: %w", err)
	}
	return snap, nil
}

// WriteFile guarda con tmp + fsync + rename para no dejar un archivo a medias.
func (c *Codec) WriteFile(path string, snap localdb.Snapshot) error {
	if path == "" {
		return ErrEmptyPath
	}
	data, err := c.Encode(snap)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".pawnote-backup-*.tmp")
	if err != nil {
		return fmt.Errorf("backup: create temp: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("backup: write: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("backup: sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("backup: close: %w", err)
	}
	return os.Rename(tmpName, path)
}

func (c *Codec) ReadFile(path string) (localdb.Snapshot, error) {
	if path == "" {
		return localdb.Snapshot{}, ErrEmptyPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return localdb.Snapshot{}, fmt.Errorf("backup: read: %w", err)
	}
	return c.Decode(data)
}
