package rindex

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"context"
	"errors"
	"hash/crc32"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestListInputs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b_coordinates.tsv"), []byte(sampleCoordinates))
	writeFile(t, filepath.Join(dir, "a_coordinates.tsv"), []byte(sampleCoordinates))
	writeFile(t, filepath.Join(dir, "notes.txt"), []byte("ignored"))
	if err := os.Mkdir(filepath.Join(dir, "nested.tsv"), 0755); err != nil {
		t.Fatal(err)
	}

	inputs, err := ListInputs(context.Background(), dir, nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(inputs) != 2 {
		t.Fatalf("Expected 2 inputs, got %d: %+v", len(inputs), inputs)
	}
	if inputs[0].Name != "a_coordinates.tsv" || inputs[1].Name != "b_coordinates.tsv" {
		t.Errorf("Inputs are not sorted by name: %+v", inputs)
	}
	if inputs[0].Path != filepath.Join(dir, "a_coordinates.tsv") {
		t.Errorf("Unexpected path %s", inputs[0].Path)
	}
}

func TestListInputsEmpty(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "notes.txt"), []byte("ignored"))

	if _, err := ListInputs(context.Background(), dir, nil); !errors.Is(err, ErrNoInputs) {
		t.Fatalf("Expected ErrNoInputs, got %v", err)
	}
}

func TestListInputsMissingDirectory(t *testing.T) {
	if _, err := ListInputs(context.Background(), filepath.Join(t.TempDir(), "missing"), nil); err == nil {
		t.Fatal("Expected an error for a missing directory")
	}
}

func TestListInputsGoogleStorageNeedsClient(t *testing.T) {
	if _, err := ListInputs(context.Background(), "gs://bucket/prefix", nil); err == nil {
		t.Fatal("Expected an error without a storage client")
	}
}

func TestSplitGSPath(t *testing.T) {
	for _, v := range []struct {
		In     string
		Bucket string
		Object string
		Err    bool
	}{
		{"gs://bucket/dir/file.tsv", "bucket", "dir/file.tsv", false},
		{"gs://bucket/dir/", "bucket", "dir/", false},
		{"gs://bucket", "bucket", "", false},
		{"gs:///file.tsv", "", "", true},
	} {
		bucket, object, err := splitGSPath(v.In)
		if (err != nil) != v.Err {
			t.Fatalf("%s: unexpected error state %v", v.In, err)
		}
		if bucket != v.Bucket || object != v.Object {
			t.Errorf("%s: got %q %q, expected %q %q", v.In, bucket, object, v.Bucket, v.Object)
		}
	}
}

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	return buf.Bytes()
}

func zlibBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	return buf.Bytes()
}

func zipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	// Stored with sizes in the local header, so the stream needs no data
	// descriptor.
	f, err := w.CreateRaw(&zip.FileHeader{
		Name:               "sample.tsv",
		Method:             zip.Store,
		CRC32:              crc32.ChecksumIEEE(data),
		CompressedSize64:   uint64(len(data)),
		UncompressedSize64: uint64(len(data)),
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	return buf.Bytes()
}

func readTestdata(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatal(err)
	}

	return data
}

func TestOpenInputCompressed(t *testing.T) {
	plain := []byte(sampleCoordinates)

	for _, v := range []struct {
		Name string
		Data []byte
		DT   DataType
	}{
		{"gzip", gzipBytes(t, plain), DataTypeGzip},
		{"zlib", zlibBytes(t, plain), DataTypeZlib},
		{"zip", zipBytes(t, plain), DataTypeZip},
		{"bzip2", readTestdata(t, "sample.tsv.bz2"), DataTypeBZip2},
		{"xz", readTestdata(t, "sample.tsv.xz"), DataTypeXZ},
		{"uncompressed", plain, DataTypeNoCompression},
	} {
		if dt := DetectDataType(v.Data); dt != v.DT {
			t.Errorf("%s: detected as %s", v.Name, dt)
		}

		path := filepath.Join(t.TempDir(), v.Name+".tsv")
		writeFile(t, path, v.Data)

		rc, err := OpenInput(context.Background(), path, nil)
		if err != nil {
			t.Fatalf("%s: %v", v.Name, err)
		}
		got, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("%s: %v", v.Name, err)
		}
		if string(got) != sampleCoordinates {
			t.Errorf("%s: decompressed contents differ:\n%s", v.Name, got)
		}

		c, err := OpenCoordinates(context.Background(), path, nil)
		if err != nil {
			t.Fatalf("%s: %v", v.Name, err)
		}
		n := 0
		for row := c.Read(); row != nil; row = c.Read() {
			n++
		}
		if err := c.Err(); err != nil {
			t.Errorf("%s: %v", v.Name, err)
		}
		c.Close()
		if n != 3 {
			t.Errorf("%s: expected 3 rows, got %d", v.Name, n)
		}
	}
}

func TestOpenCoordinatesPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.tsv")
	writeFile(t, path, []byte(sampleCoordinates))

	c, err := OpenCoordinates(context.Background(), path, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	n := 0
	for row := c.Read(); row != nil; row = c.Read() {
		n++
	}
	if err := c.Err(); err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("Expected 3 rows, got %d", n)
	}
}

func TestDetectDataType(t *testing.T) {
	for _, v := range []struct {
		Head []byte
		DT   DataType
	}{
		{[]byte{0x1f, 0x8b, 0x08, 0x00}, DataTypeGzip},
		{[]byte{0x50, 0x4b, 0x03, 0x04, 0x14}, DataTypeZip},
		{[]byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}, DataTypeXZ},
		{[]byte{0x42, 0x5a, 0x68, 0x39}, DataTypeBZip2},
		{[]byte{0x78, 0x9c}, DataTypeZlib},
		{[]byte{0x78, 0x01}, DataTypeZlib},
		{[]byte{0x78, 0xda}, DataTypeZlib},
		{[]byte{0x1f, 0x9d, 0x90}, DataTypeNoCompression},
		{[]byte("x\tComplete"), DataTypeNoCompression},
		{[]byte("1\tComplete"), DataTypeNoCompression},
		{nil, DataTypeNoCompression},
	} {
		if dt := DetectDataType(v.Head); dt != v.DT {
			t.Errorf("%x: got %s, expected %s", v.Head, dt, v.DT)
		}
	}
}

func TestExpandHome(t *testing.T) {
	if got, err := ExpandHome("relative/dir"); err != nil || got != "relative/dir" {
		t.Errorf("Unexpected expansion %q %v", got, err)
	}
}
