package dataset

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	schemeEmbed = "embed:"
	schemeS3    = "s3://"
)

// LoadOption tweaks Load and Save.
type LoadOption func(*loadOptions)

type loadOptions struct {
	store ObjectStore
}

// WithObjectStore supplies the client used for s3:// URIs.
func WithObjectStore(s ObjectStore) LoadOption {
	return func(o *loadOptions) { o.store = s }
}

// Load resolves uri to a Document. Accepted forms:
//
//	embed:<name>         bundled dataset
//	s3://bucket/key      object fetched through the configured ObjectStore
//	<path>               local file
//
// Keys and paths ending in .zst or .lz4 are decompressed transparently.
func Load(ctx context.Context, uri string, opts ...LoadOption) (*Document, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	switch {
	case strings.HasPrefix(uri, schemeEmbed):
		return Embedded(strings.TrimPrefix(uri, schemeEmbed))

	case strings.HasPrefix(uri, schemeS3):
		bucket, key, err := splitS3(uri)
		if err != nil {
			return nil, err
		}
		if o.store == nil {
			return nil, ErrNoObjectStore
		}
		body, err := o.store.Get(ctx, bucket, key)
		if err != nil {
			return nil, fmt.Errorf("dataset: fetch %s: %w", uri, err)
		}
		defer body.Close()
		return parseNamed(key, body)

	case strings.Contains(uri, "://"):
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedURI, uri)

	default:
		f, err := os.Open(uri)
		if err != nil {
			return nil, fmt.Errorf("dataset: open %s: %w", uri, err)
		}
		defer f.Close()
		return parseNamed(uri, f)
	}
}

// Save writes doc to a local path or s3:// URI, compressing by suffix.
func Save(ctx context.Context, uri string, doc *Document, opts ...LoadOption) error {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	if doc == nil {
		return fmt.Errorf("%w: nil document", ErrMalformed)
	}

	var buf bytes.Buffer
	w, err := compress(uri, &buf)
	if err != nil {
		return fmt.Errorf("dataset: compress %s: %w", uri, err)
	}
	if err := writeDocument(w, doc); err != nil {
		return fmt.Errorf("dataset: save %s: %w", uri, err)
	}

	switch {
	case strings.HasPrefix(uri, schemeS3):
		bucket, key, err := splitS3(uri)
		if err != nil {
			return err
		}
		if o.store == nil {
			return ErrNoObjectStore
		}
		if err := o.store.Put(ctx, bucket, key, buf.Bytes()); err != nil {
			return fmt.Errorf("dataset: upload %s: %w", uri, err)
		}
		return nil

	case strings.HasPrefix(uri, schemeEmbed), strings.Contains(uri, "://"):
		return fmt.Errorf("%w: cannot write %s", ErrUnsupportedURI, uri)

	default:
		if err := os.WriteFile(uri, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("dataset: write %s: %w", uri, err)
		}
		return nil
	}
}

// writeDocument encodes doc into w and always closes w, releasing the
// compressor's buffers even when encoding fails.
func writeDocument(w io.WriteCloser, doc *Document) error {
	if err := Encode(w, doc); err != nil {
		_ = w.Close()
		return err
	}

	return w.Close()
}

func parseNamed(name string, r io.Reader) (*Document, error) {
	rc, err := decompress(name, r)
	if err != nil {
		return nil, fmt.Errorf("dataset: decompress %s: %w", name, err)
	}
	defer rc.Close()

	return Parse(rc)
}

func splitS3(uri string) (bucket, key string, err error) {
	rest := strings.TrimPrefix(uri, schemeS3)
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: %s (want s3://bucket/key)", ErrUnsupportedURI, uri)
	}

	return bucket, key, nil
}
