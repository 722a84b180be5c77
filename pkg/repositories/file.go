package repositories

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// FileRepository stores the save slot as a single file. Files with a
// .zst extension are transparently zstd-compressed. Writes go through
// a temporary file and a rename so a crash mid-save never corrupts an
// existing slot.
type FileRepository struct {
	path     string
	compress bool
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path:     path,
		compress: strings.HasSuffix(path, ".zst"),
	}
}

func (r *FileRepository) Close(ctx context.Context) error {
	return nil
}

func (r *FileRepository) SaveState(ctx context.Context, encoded string) error {
	data := []byte(encoded)
	if r.compress {
		compressed, err := compressState(data)
		if err != nil {
			return err
		}
		data = compressed
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write save file: %v", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("failed to replace save file: %v", err)
	}

	return nil
}

func (r *FileRepository) LoadState(ctx context.Context) (string, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &ErrNotFound{}
		}
		return "", fmt.Errorf("failed to read save file: %v", err)
	}

	if r.compress {
		data, err = decompressState(data)
		if err != nil {
			return "", err
		}
	}

	return string(data), nil
}

func (r *FileRepository) ClearState(ctx context.Context) error {
	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove save file: %v", err)
	}
	return nil
}

func compressState(data []byte) ([]byte, error) {
	compressed := bytes.NewBuffer(nil)
	compWriter, err := zstd.NewWriter(compressed, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %v", err)
	}
	if _, err := compWriter.Write(data); err != nil {
		return nil, fmt.Errorf("failed to compress save data: %v", err)
	}
	if err := compWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zstd writer: %v", err)
	}
	return compressed.Bytes(), nil
}

func decompressState(data []byte) ([]byte, error) {
	compReader, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %v", err)
	}
	defer compReader.Close()
	decompressed, err := io.ReadAll(compReader)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress save data: %v", err)
	}
	return decompressed, nil
}
