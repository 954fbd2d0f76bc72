package genesis

import (
	"bytes"
	"github.com/klauspost/compress/zip"
	"github.com/mholt/archiver/v3"
	"github.com/stretchr/testify/require"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type fakeFileInfo struct {
	size int64
}

func (fi *fakeFileInfo) Name() string {
	return ""
}

func (fi *fakeFileInfo) Size() int64 {
	return fi.size
}

func (fi *fakeFileInfo) Mode() os.FileMode {
	return 0644
}

func (fi *fakeFileInfo) ModTime() time.Time {
	return time.Unix(0, 0)
}

func (fi *fakeFileInfo) IsDir() bool {
	return false
}

func (fi *fakeFileInfo) Sys() interface{} {
	return nil
}

type zipEntry struct {
	name string
	data []byte
}

// writeZip creates a zip archive at path holding the given entries.
func writeZip(t *testing.T, path string, entries ...zipEntry) {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	out, err := os.Create(path)
	require.NoError(t, err)
	defer out.Close()

	z := archiver.NewZip()
	require.NoError(t, z.Create(out))
	for _, e := range entries {
		require.NoError(t, z.Write(archiver.File{
			FileInfo: archiver.FileInfo{
				CustomName: e.name,
				FileInfo:   &fakeFileInfo{size: int64(len(e.data))},
			},
			ReadCloser: ioutil.NopCloser(bytes.NewReader(e.data)),
		}))
	}
	require.NoError(t, z.Close())
}

func readFile(t *testing.T, path string) []byte {
	data, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	return data
}

func writeFile(t *testing.T, path string, data []byte) {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, ioutil.WriteFile(path, data, 0644))
}

func stateBytes(size int) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i*31 + i/7)
	}
	return data
}

// unknownMethod is a compression method no zip reader can decompress.
const unknownMethod uint16 = 77

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

type rawEntry struct {
	name   string
	method uint16
	data   []byte
}

// writeRawZip creates a zip archive with explicit per entry compression methods. Entries using
// unknownMethod are stored verbatim but cannot be opened on read.
func writeRawZip(t *testing.T, path string, entries ...rawEntry) {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	out, err := os.Create(path)
	require.NoError(t, err)
	defer out.Close()

	zw := zip.NewWriter(out)
	zw.RegisterCompressor(unknownMethod, func(w io.Writer) (io.WriteCloser, error) {
		return nopWriteCloser{w}, nil
	})
	for _, e := range entries {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: e.name, Method: e.method})
		require.NoError(t, err)
		_, err = w.Write(e.data)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
}

// corruptFile flips the first byte of the given content inside the file at path.
func corruptFile(t *testing.T, path string, content []byte) {
	data := readFile(t, path)
	idx := bytes.Index(data, content)
	require.True(t, idx >= 0)
	data[idx] ^= 0xff
	require.NoError(t, ioutil.WriteFile(path, data, 0644))
}
