package store

import (
	"archive/zip"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	log "github.com/sirupsen/logrus"
)

//go:embed tables/*.csv
var embeddedFS embed.FS

// Store is the filesystem-backed Reader implementation. Build one with
// Open or Embedded.
type Store struct {
	fsys   fs.FS
	closer io.Closer
}

// Open opens path as a dataset container. A directory is read as loose
// <key>.csv files; a regular file is read as a zip archive with the same
// layout. Close the store when done; closing a directory store is a no-op.
func Open(path string) (*Store, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w: %v", path, ErrUnavailable, err)
	}
	if info.IsDir() {
		return &Store{fsys: os.DirFS(path)}, nil
	}
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w: %v", path, ErrUnavailable, err)
	}
	return &Store{fsys: &rc.Reader, closer: rc}, nil
}

// Embedded returns the dataset compiled into the binary.
func Embedded() *Store {
	sub, err := fs.Sub(embeddedFS, "tables")
	if err != nil {
		panic("store: embedded dataset missing: " + err.Error())
	}
	return &Store{fsys: sub}
}

// Read parses the dataset stored under key into named columns.
func (s *Store) Read(key string) (Table, error) {
	start := time.Now()
	f, err := s.fsys.Open(key + ".csv")
	if err != nil {
		return nil, fmt.Errorf("read %s: %w: %v", key, ErrUnavailable, err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DefaultType(series.Float),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("read %s: %w: %v", key, ErrUnavailable, df.Err)
	}

	t := make(Table, len(df.Names()))
	for _, name := range df.Names() {
		t[name] = df.Col(name).Float()
	}
	log.WithFields(log.Fields{
		"key":     key,
		"rows":    df.Nrow(),
		"columns": len(t),
		"took":    time.Since(start),
	}).Debug("dataset loaded")
	return t, nil
}

// Keys lists the dataset keys present in the container, sorted.
func (s *Store) Keys() ([]string, error) {
	matches, err := fs.Glob(s.fsys, "*.csv")
	if err != nil {
		return nil, fmt.Errorf("keys: %w: %v", ErrUnavailable, err)
	}
	keys := make([]string, 0, len(matches))
	for _, m := range matches {
		keys = append(keys, strings.TrimSuffix(path.Base(m), ".csv"))
	}
	sort.Strings(keys)
	return keys, nil
}

// Close releases the underlying archive handle, if any.
func (s *Store) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
