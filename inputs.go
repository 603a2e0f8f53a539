package rindex

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"google.golang.org/api/iterator"
)

// InputExtension is the suffix that marks a file as a coordinates file.
const InputExtension = ".tsv"

// Input is one coordinates file discovered in an input location.
type Input struct {
	// Name is the base name of the file. It labels the genome's column in
	// every output table.
	Name string

	// Path is local, or a full gs://bucket/object URL.
	Path string
}

func IsGoogleStorage(path string) bool {
	return strings.HasPrefix(path, "gs://")
}

// splitGSPath splits gs://bucket/some/object into its bucket and object
// names. The object name may be empty.
func splitGSPath(gsPath string) (string, string, error) {
	pathParts := strings.SplitN(strings.TrimPrefix(gsPath, "gs://"), "/", 2)
	if pathParts[0] == "" {
		return "", "", fmt.Errorf("%s: no bucket name in google storage path", gsPath)
	}

	if len(pathParts) < 2 {
		return pathParts[0], "", nil
	}

	return pathParts[0], pathParts[1], nil
}

// ListInputs finds every file ending in .tsv directly inside location, which
// may be a local directory or a gs://bucket/prefix. Subdirectories are not
// searched. The result is sorted by name so that runs are reproducible.
func ListInputs(ctx context.Context, location string, client *storage.Client) ([]Input, error) {
	var inputs []Input
	var err error

	if IsGoogleStorage(location) {
		inputs, err = listGoogleStorage(ctx, location, client)
	} else {
		inputs, err = listDirectory(location)
	}
	if err != nil {
		return nil, err
	}

	if len(inputs) < 1 {
		return nil, fmt.Errorf("%s: %w", location, ErrNoInputs)
	}

	sort.Slice(inputs, func(i, j int) bool { return inputs[i].Name < inputs[j].Name })

	return inputs, nil
}

func listDirectory(dir string) ([]Input, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, pfx.Err(err)
	}

	inputs := make([]Input, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), InputExtension) {
			continue
		}

		inputs = append(inputs, Input{
			Name: entry.Name(),
			Path: filepath.Join(dir, entry.Name()),
		})
	}

	return inputs, nil
}

func listGoogleStorage(ctx context.Context, location string, client *storage.Client) ([]Input, error) {
	if client == nil {
		return nil, fmt.Errorf("%s: a google storage client is required", location)
	}

	bucketName, prefix, err := splitGSPath(location)
	if err != nil {
		return nil, err
	}
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	inputs := make([]Input, 0)

	// The delimiter keeps the listing to a single "directory" level.
	it := client.Bucket(bucketName).Objects(ctx, &storage.Query{Prefix: prefix, Delimiter: "/"})
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		} else if err != nil {
			return nil, pfx.Err(fmt.Errorf("%s: %w", location, err))
		}

		// Synthetic "directory" entries only carry a prefix
		if attrs.Name == "" || !strings.HasSuffix(attrs.Name, InputExtension) {
			continue
		}

		inputs = append(inputs, Input{
			Name: path.Base(attrs.Name),
			Path: fmt.Sprintf("gs://%s/%s", bucketName, attrs.Name),
		})
	}

	return inputs, nil
}

// OpenInput opens a local or gs:// file for reading and transparently
// decompresses it. client may be nil for local files.
func OpenInput(ctx context.Context, filePath string, client *storage.Client) (io.ReadCloser, error) {
	var rc io.ReadCloser

	if IsGoogleStorage(filePath) {
		if client == nil {
			return nil, fmt.Errorf("%s: a google storage client is required", filePath)
		}

		bucketName, objectName, err := splitGSPath(filePath)
		if err != nil {
			return nil, err
		}

		r, err := client.Bucket(bucketName).Object(objectName).NewReader(ctx)
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("%s: %w", filePath, err))
		}
		rc = r
	} else {
		f, err := os.Open(filePath)
		if err != nil {
			return nil, pfx.Err(err)
		}
		rc = f
	}

	out, err := MaybeDecompressReadCloser(rc)
	if err != nil {
		rc.Close()
		return nil, pfx.Err(fmt.Errorf("%s: %w", filePath, err))
	}

	return out, nil
}
