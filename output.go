package stationicon

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Output file names inside the result directory.
const (
	stationFilePrefix = "__station__"
	clusterFileName   = "__interchange.png"
)

// StationFileName returns the output file name for a station key.
func StationFileName(key string) string {
	return stationFilePrefix + key + ".png"
}

// ClusterFileName returns the output file name of an interchange cluster.
// Every cluster writes to the same name; the last one wins.
func ClusterFileName() string {
	return clusterFileName
}

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return backendErr("encode png", png.Encode(w, img))
}

// writePNG encodes img into dir/name. The image goes to a uniquely named
// temporary file first and is renamed into place, so a failed write never
// leaves a partial file under the final name.
func writePNG(dir, name string, img image.Image) (path string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", backendErr("create result dir", err)
	}

	path = filepath.Join(dir, name)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", name, uuid.NewString()))

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", backendErr("create temp file", err)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	bw := bufio.NewWriter(f)
	if err = EncodePNG(bw, img); err != nil {
		return "", err
	}
	if err = bw.Flush(); err != nil {
		return "", backendErr("write temp file", err)
	}
	if err = f.Close(); err != nil {
		return "", backendErr("close temp file", err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return "", backendErr("rename output", err)
	}
	return path, nil
}
