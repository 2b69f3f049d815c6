// Package loader implements the schema.Loader contract with per-kind
// strategies for files, fs.FS entries, and HTTP URLs.
package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	pkgschema "github.com/goliatone/go-formschema/pkg/schema"
)

// Loader delegates to file, fs.FS, or HTTP strategies depending on the
// source kind.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// Ensure the implementation satisfies the public interface.
var _ pkgschema.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgschema.LoaderOptions) *Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches a document from the provided source and wraps it in a
// Document.
func (l *Loader) Load(ctx context.Context, src pkgschema.Source) (pkgschema.Document, error) {
	if src == nil {
		return pkgschema.Document{}, errors.New("loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgschema.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case pkgschema.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case pkgschema.SourceKindURL:
		if !l.allowHTTP {
			return pkgschema.Document{}, errors.New("loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("loader: unsupported source kind")
	}
	if err != nil {
		return pkgschema.Document{}, err
	}

	return pkgschema.NewDocument(src, data)
}
