//Package data fetches and caches the pretrained model archives published for
//this library. It only moves bytes around: parsing the archives into weights
//belongs to whatever runs the models.
package data

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//cacheDirName is where downloaded models live under the user's home
//directory, unless caching is disabled.
const cacheDirName = ".graphpot/models"

//ModelSource is a local or remote source for a pretrained model. Remote
//sources are downloaded once into the cache (or the working directory, with
//the cache disabled) and opened from there.
type ModelSource struct {
	uri       string
	localPath string
}

//NewModelSource prepares the model identified by uri for reading, downloading
//it if there is no local copy yet. With useCache, downloads are kept at
//$HOME/.graphpot/models under the last element of the uri; otherwise they land
//in the current working directory. A model already present locally is reused
//unless forceDownload is given.
func NewModelSource(uri string, useCache, forceDownload bool) (*ModelSource, error) {
	name := uri[strings.LastIndex(uri, "/")+1:]
	if name == "" {
		return nil, &Error{fmt.Sprintf("data.NewModelSource: uri %q has no file name", uri), nil}
	}
	m := &ModelSource{uri: uri, localPath: name}
	if useCache {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, &Error{fmt.Sprintf("data.NewModelSource: no home directory for the cache: %v", err), nil}
		}
		dir := filepath.Join(home, cacheDirName)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &Error{fmt.Sprintf("data.NewModelSource: %v", err), nil}
		}
		m.localPath = filepath.Join(dir, name)
	}
	if _, err := os.Stat(m.localPath); os.IsNotExist(err) || forceDownload {
		if err := m.download(); err != nil {
			return nil, err
		}
	}
	return m, nil
}

//LocalPath returns the path of the local copy of the model.
func (M *ModelSource) LocalPath() string {
	return M.localPath
}

//URI returns the uri the model came from.
func (M *ModelSource) URI() string {
	return M.uri
}

func (M *ModelSource) download() error {
	resp, err := http.Get(M.uri)
	if err != nil {
		return &Error{fmt.Sprintf("data: downloading %s: %v", M.uri, err), nil}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &Error{fmt.Sprintf("data: downloading %s: %s", M.uri, resp.Status), nil}
	}
	f, err := os.Create(M.localPath)
	if err != nil {
		return &Error{fmt.Sprintf("data: %v", err), nil}
	}
	defer f.Close()
	if _, err := io.Copy(f, resp.Body); err != nil {
		os.Remove(M.localPath)
		return &Error{fmt.Sprintf("data: writing %s: %v", M.localPath, err), nil}
	}
	return nil
}

//Open returns a stream on the local copy of the model, decompressing
//transparently: .zst archives go through zstd, .gz through gzip, anything
//else is read as-is. The caller closes the returned stream.
func (M *ModelSource) Open() (io.ReadCloser, error) {
	f, err := os.Open(M.localPath)
	if err != nil {
		return nil, &Error{fmt.Sprintf("data: %v", err), nil}
	}
	switch {
	case strings.HasSuffix(M.localPath, ".zst"):
		d, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, &Error{fmt.Sprintf("data: opening %s: %v", M.localPath, err), nil}
		}
		return zstdReadCloser{d, f}, nil
	case strings.HasSuffix(M.localPath, ".gz"):
		g, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, &Error{fmt.Sprintf("data: opening %s: %v", M.localPath, err), nil}
		}
		return readCloserPair{g, f}, nil
	default:
		return f, nil
	}
}

//zstd.Decoder does not implement io.ReadCloser (its Close returns nothing),
//so it needs a wrapper that also closes the underlying file.
type zstdReadCloser struct {
	*zstd.Decoder
	f *os.File
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return z.f.Close()
}

type readCloserPair struct {
	io.ReadCloser
	f *os.File
}

func (r readCloserPair) Close() error {
	err := r.ReadCloser.Close()
	if err2 := r.f.Close(); err == nil {
		err = err2
	}
	return err
}

//Error is the same as graphpot.Error, redeclared here to avoid a circular import.
type Error struct {
	message string
	deco    []string
}

func (err *Error) Error() string { return err.message }

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}
