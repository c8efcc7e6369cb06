package asset

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// A Resource is a readable scene source. It wraps either a local file or a
// file streamed over http/https.
type Resource struct {
	io.ReadCloser
	url *url.URL
}

// Returns the path (or URL) to this resource.
func (r *Resource) Path() string {
	return r.url.String()
}

// Returns true if the Resource is streamed over http/https.
func (r *Resource) IsRemote() bool {
	return r.url.Scheme != ""
}

// Open a scene resource. If relTo is specified and pathToResource is not an
// absolute path or URL, the new resource is resolved relative to the
// directory containing relTo. This lets scene files include other scene
// files using paths relative to themselves.
//
// The caller must close the returned resource.
func NewResource(pathToResource string, relTo *Resource) (*Resource, error) {
	resURL, err := url.Parse(strings.Replace(pathToResource, `\`, `/`, -1))
	if err != nil {
		return nil, fmt.Errorf("resource: invalid path %q: %w", pathToResource, err)
	}

	if resURL.Scheme == "" && relTo != nil && !filepath.IsAbs(resURL.Path) {
		if resURL, err = resolveRelative(resURL.Path, relTo); err != nil {
			return nil, err
		}
	}

	var reader io.ReadCloser
	switch resURL.Scheme {
	case "":
		reader, err = os.Open(filepath.Clean(resURL.Path))
		if err != nil {
			return nil, fmt.Errorf("resource: could not open '%s': %w", resURL.Path, err)
		}
	case "http", "https":
		resp, err := http.Get(resURL.String())
		if err != nil {
			return nil, fmt.Errorf("resource: could not fetch '%s': %s", resURL.String(), err)
		}
		if resp.StatusCode >= 400 {
			resp.Body.Close()
			return nil, fmt.Errorf("resource: could not fetch '%s': status %d", resURL.String(), resp.StatusCode)
		}
		reader = resp.Body
	default:
		return nil, fmt.Errorf("resource: unsupported scheme '%s'", resURL.Scheme)
	}

	return &Resource{
		ReadCloser: reader,
		url:        resURL,
	}, nil
}

// Create a resource from a reader. Relative includes resolve against name.
func NewResourceFromStream(name string, source io.Reader) *Resource {
	resURL, err := url.Parse(name)
	if err != nil {
		resURL = &url.URL{Path: name}
	}
	return &Resource{
		ReadCloser: io.NopCloser(source),
		url:        resURL,
	}
}

// Build the URL of relPath relative to the parent resource.
func resolveRelative(relPath string, parent *Resource) (*url.URL, error) {
	if parent.IsRemote() {
		out := *parent.url
		out.Path = path.Join(path.Dir(parent.url.Path), relPath)
		return &out, nil
	}

	parentPath, err := filepath.Abs(parent.url.Path)
	if err != nil {
		return nil, fmt.Errorf("resource: could not detect abs path for %s: %w", parent.url.Path, err)
	}
	return &url.URL{Path: filepath.Join(filepath.Dir(parentPath), relPath)}, nil
}
