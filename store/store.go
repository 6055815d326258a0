// Package store opens inputs and creates outputs that may live either on the local
// filesystem or in a GCS bucket (paths of the form gs://bucket/object).
package store

import(
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

const gcsPrefix = "gs://"

var ErrNotExist = errors.New("store: object does not exist")

// Store hands out readers and writers. The GCS client is only created if a gs:// path
// is actually used, so purely local runs need no credentials.
type Store struct {
	opts   []option.ClientOption

	mu     sync.Mutex
	client *storage.Client
}

func New(opts ...option.ClientOption) *Store {
	return &Store{opts: opts}
}

func (s *Store)Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil { return nil }
	err := s.client.Close()
	s.client = nil
	return err
}

func (s *Store)gcs(ctx context.Context) (*storage.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client != nil { return s.client, nil }

	client,err := storage.NewClient(ctx, s.opts...)
	if err != nil { return nil, fmt.Errorf("store: new GCS client: %w", err) }
	s.client = client
	return client, nil
}

// {{{ path helpers

func IsGCS(p string) bool { return strings.HasPrefix(p, gcsPrefix) }

func splitGCS(p string) (bucket, object string, err error) {
	rest := strings.TrimPrefix(p, gcsPrefix)
	i := strings.Index(rest, "/")
	if i <= 0 { return "", "", fmt.Errorf("store: '%s' is not of the form gs://bucket/object", p) }
	return rest[:i], rest[i+1:], nil
}

// Join is filepath.Join for local paths, and slash-joining for GCS paths.
func Join(base string, elem ...string) string {
	if IsGCS(base) {
		return gcsPrefix + path.Join(append([]string{strings.TrimPrefix(base, gcsPrefix)}, elem...)...)
	}
	return filepath.Join(append([]string{base}, elem...)...)
}

// }}}
// {{{ s.Open, s.Create

func (s *Store)Open(ctx context.Context, p string) (io.ReadCloser, error) {
	if !IsGCS(p) {
		f,err := os.Open(p)
		if errors.Is(err, os.ErrNotExist) { return nil, fmt.Errorf("%s: %w", p, ErrNotExist) }
		return f, err
	}

	bucket,object,err := splitGCS(p)
	if err != nil { return nil, err }
	client,err := s.gcs(ctx)
	if err != nil { return nil, err }

	rdr,err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) { return nil, fmt.Errorf("%s: %w", p, ErrNotExist) }
	if err != nil { return nil, fmt.Errorf("store: open %s: %w", p, err) }
	return rdr, nil
}

// Create returns a writer for p; local parent directories are created as needed. For GCS
// the object is only committed when the writer is closed without error.
func (s *Store)Create(ctx context.Context, p string) (io.WriteCloser, error) {
	if !IsGCS(p) {
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil { return nil, err }
		return os.Create(p)
	}

	bucket,object,err := splitGCS(p)
	if err != nil { return nil, err }
	client,err := s.gcs(ctx)
	if err != nil { return nil, err }

	w := client.Bucket(bucket).Object(object).NewWriter(ctx)
	if strings.HasSuffix(object, ".csv") {
		w.ContentType = "text/csv"
	} else if strings.HasSuffix(object, ".pdf") {
		w.ContentType = "application/pdf"
	}
	return w, nil
}

// }}}
// {{{ s.Exists, s.List

func (s *Store)Exists(ctx context.Context, p string) (bool, error) {
	if !IsGCS(p) {
		_,err := os.Stat(p)
		if errors.Is(err, os.ErrNotExist) { return false, nil }
		return err == nil, err
	}

	bucket,object,err := splitGCS(p)
	if err != nil { return false, err }
	client,err := s.gcs(ctx)
	if err != nil { return false, err }

	_,err = client.Bucket(bucket).Object(object).Attrs(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) { return false, nil }
	return err == nil, err
}

// List returns all the files under dir (recursively), sorted.
func (s *Store)List(ctx context.Context, dir string) ([]string, error) {
	ret := []string{}

	if !IsGCS(dir) {
		err := filepath.WalkDir(dir, func(p string, d os.DirEntry, err error) error {
			if err != nil { return err }
			if !d.IsDir() { ret = append(ret, p) }
			return nil
		})
		sort.Strings(ret)
		return ret, err
	}

	bucket,prefix,err := splitGCS(strings.TrimSuffix(dir, "/") + "/")
	if err != nil { return nil, err }
	client,err := s.gcs(ctx)
	if err != nil { return nil, err }

	it := client.Bucket(bucket).Objects(ctx, &storage.Query{Prefix: prefix})
	for {
		attrs,err := it.Next()
		if err == iterator.Done { break }
		if err != nil { return nil, fmt.Errorf("store: list %s: %w", dir, err) }
		ret = append(ret, gcsPrefix + bucket + "/" + attrs.Name)
	}
	sort.Strings(ret)
	return ret, nil
}

// }}}
// {{{ s.LocalCopy

// LocalCopy returns a local filename holding the contents of p, for readers that need
// random access. Local paths are returned unchanged. The cleanup func removes any
// temporary copy, and is always safe to call.
func (s *Store)LocalCopy(ctx context.Context, p string) (string, func(), error) {
	noop := func() {}
	if !IsGCS(p) { return p, noop, nil }

	rdr,err := s.Open(ctx, p)
	if err != nil { return "", noop, err }
	defer rdr.Close()

	f,err := os.CreateTemp("", "altcheck-*" + path.Ext(p))
	if err != nil { return "", noop, err }
	cleanup := func() { os.Remove(f.Name()) }

	if _,err := io.Copy(f, rdr); err != nil {
		f.Close()
		cleanup()
		return "", noop, fmt.Errorf("store: copy %s: %w", p, err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", noop, err
	}
	return f.Name(), cleanup, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
