// Package input loads CLI payloads: plain, gzip or zstd compressed JSON,
// JSON with comments (JSONC) or YAML.
package input

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/tidwall/jsonc"

	skema "github.com/reoring/skema"
)

// Format identifies the payload syntax.
type Format string

const (
	FormatAuto  Format = ""
	FormatJSON  Format = "json"
	FormatJSONC Format = "jsonc"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a --input-format value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatAuto, FormatJSON, FormatJSONC, FormatYAML:
		return Format(s), nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown input format %q (want json, jsonc or yaml)", s)
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Open reads path ("-" or "" for stdin) and returns a Source over its
// decompressed content. maxBytes > 0 caps the decompressed size.
func Open(path string, stdin io.Reader, format Format, maxBytes int64) (skema.Source, error) {
	var r io.Reader = stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", displayName(path), err)
	}
	data, inner, err := decompress(raw, path, maxBytes)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", displayName(path), err)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%s exceeds max_bytes (%d)", displayName(path), maxBytes)
	}
	if format == FormatAuto {
		format = formatFromExt(inner)
	}
	switch format {
	case FormatYAML:
		return skema.YAMLBytes(data), nil
	case FormatJSONC:
		// Strip comments and trailing commas before parsing as standard JSON.
		return skema.JSONBytes(jsonc.ToJSON(data)), nil
	}
	return skema.JSONBytes(data), nil
}

// decompress undoes gzip or zstd framing, detected by magic bytes, and
// returns the path with the compression suffix removed.
func decompress(raw []byte, path string, maxBytes int64) ([]byte, string, error) {
	inner := strings.TrimSuffix(strings.TrimSuffix(path, ".gz"), ".zst")
	limit := func(r io.Reader) io.Reader {
		if maxBytes > 0 {
			return io.LimitReader(r, maxBytes+1)
		}
		return r
	}
	switch {
	case bytes.HasPrefix(raw, gzipMagic):
		zr, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, "", err
		}
		defer zr.Close()
		out, err := io.ReadAll(limit(zr))
		return out, inner, err
	case bytes.HasPrefix(raw, zstdMagic):
		zr, err := zstd.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, "", err
		}
		defer zr.Close()
		out, err := io.ReadAll(limit(zr))
		return out, inner, err
	}
	return raw, inner, nil
}

func formatFromExt(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".jsonc":
		return FormatJSONC
	}
	return FormatJSON
}

func displayName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}
