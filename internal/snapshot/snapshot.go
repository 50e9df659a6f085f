// Package snapshot exports a finished generation run to disk: the
// committed grids and placements as zstd-compressed JSONL, plus an
// optional grayscale PNG preview of the heightmap.
package snapshot

import (
	"bufio"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/letstrythisshit/terragen/pkg/terrain"
)

// Writer streams JSON rows through a zstd encoder, one row per line.
type Writer struct {
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
}

// NewWriter creates (truncating) the snapshot file at path.
func NewWriter(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create snapshot: %w", err)
	}
	enc, err := zstd.NewWriter(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("init zstd: %w", err)
	}
	return &Writer{f: f, enc: enc, w: bufio.NewWriter(enc)}, nil
}

// Write appends one row.
func (w *Writer) Write(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(b); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// Close flushes and closes the underlying encoder and file.
func (w *Writer) Close() error {
	if err := w.w.Flush(); err != nil {
		w.enc.Close()
		w.f.Close()
		return err
	}
	if err := w.enc.Close(); err != nil {
		w.f.Close()
		return err
	}
	return w.f.Close()
}

// Row is one snapshot line. Kind is "meta", "heights", "weights",
// "tree" or "object"; the matching payload field is set.
type Row struct {
	Kind string `json:"kind"`

	Seed  int64   `json:"seed,omitempty"`
	SizeX float64 `json:"size_x,omitempty"`
	SizeY float64 `json:"size_y,omitempty"`
	SizeZ float64 `json:"size_z,omitempty"`

	Heights terrain.HeightGrid    `json:"heights,omitempty"`
	Weights terrain.WeightGrid    `json:"weights,omitempty"`
	Tree    *terrain.TreeInstance `json:"tree,omitempty"`
	Object  *terrain.PlacedObject `json:"object,omitempty"`
}

// WriteRun exports everything committed to data in one snapshot file.
func WriteRun(path string, seed int64, data *terrain.Data) error {
	w, err := NewWriter(path)
	if err != nil {
		return err
	}
	if err := writeRows(w, seed, data); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func writeRows(w *Writer, seed int64, data *terrain.Data) error {
	sx, sy, sz := data.Size()
	rows := []Row{
		{Kind: "meta", Seed: seed, SizeX: sx, SizeY: sy, SizeZ: sz},
		{Kind: "heights", Heights: data.Heights()},
	}
	if data.Alphamaps() != nil {
		rows = append(rows, Row{Kind: "weights", Weights: data.Alphamaps()})
	}
	for _, r := range rows {
		if err := w.Write(r); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
	}
	for i := range data.Trees() {
		t := data.Trees()[i]
		if err := w.Write(Row{Kind: "tree", Tree: &t}); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
	}
	for i := range data.Objects() {
		o := data.Objects()[i]
		if err := w.Write(Row{Kind: "object", Object: &o}); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
	}
	return nil
}

// WritePreview renders the height grid as a grayscale PNG, black at
// height 0 and white at 1.
func WritePreview(path string, h terrain.HeightGrid) error {
	res := h.Resolution()
	img := image.NewGray16(image.Rect(0, 0, res, res))
	for z := 0; z < res; z++ {
		for x := 0; x < res; x++ {
			img.SetGray16(x, z, color.Gray16{Y: uint16(h[z][x] * 65535)})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create preview: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode preview: %w", err)
	}
	return f.Close()
}
