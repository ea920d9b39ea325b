package ingest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/dhowden/tag"
	"golang.org/x/sync/errgroup"

	"oai-dc-mapper/internal/item"
)

// TypeSound is the dc:type of every ingested record.
const TypeSound = "Sound"

// DefaultExtensions are the file extensions considered when Options names
// none.
var DefaultExtensions = []string{".mp3", ".m4a", ".ogg", ".oga", ".flac"}

// Options control an ingest run.
type Options struct {
	// FirstID is the id of the first record. Later records count up in
	// path order. Defaults to 1.
	FirstID int64

	// Workers bounds concurrent tag parsing. Defaults to runtime.NumCPU().
	Workers int

	// Derivatives resolves the files of produced records. May be nil.
	Derivatives item.DerivativeResolver

	// Extensions limits Dir to files with these extensions, compared
	// case-insensitively. Defaults to DefaultExtensions.
	Extensions []string
}

// Skip is a file that could not be read.
type Skip struct {
	Path string
	Err  error
}

// Result holds the records of an ingest run in path order.
type Result struct {
	Records []*item.Record
	Skipped []Skip
}

// Walk returns the files below root with one of exts in lexical order.
func Walk(root string, exts []string) ([]string, error) {
	want := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}

		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		want[ext] = true
	}

	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if want[strings.ToLower(filepath.Ext(path))] {
			paths = append(paths, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	return paths, nil
}

// Dir reads every audio file below root. Unreadable files are reported in
// Result.Skipped and do not consume an id.
func Dir(ctx context.Context, root string, opts Options) (*Result, error) {
	if len(opts.Extensions) == 0 {
		opts.Extensions = DefaultExtensions
	}

	paths, err := Walk(root, opts.Extensions)
	if err != nil {
		return nil, err
	}

	return Files(ctx, paths, opts)
}

// Files reads the given audio files concurrently.
func Files(ctx context.Context, paths []string, opts Options) (*Result, error) {
	if opts.FirstID <= 0 {
		opts.FirstID = 1
	}

	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}

	recs := make([]*item.Record, len(paths))
	errs := make([]error, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			recs[i], errs[i] = readFile(path, opts.Derivatives)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{}
	next := opts.FirstID

	for i, rec := range recs {
		if errs[i] != nil {
			res.Skipped = append(res.Skipped, Skip{Path: paths[i], Err: errs[i]})
			continue
		}

		rec.RecordID = next
		next++

		res.Records = append(res.Records, rec)
	}

	return res, nil
}

func readFile(path string, derivatives item.DerivativeResolver) (*item.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	m, err := tag.ReadFrom(f)
	if err != nil {
		if errors.Is(err, tag.ErrNoTagsFound) {
			return nil, fmt.Errorf("%s: no tags", filepath.Base(path))
		}

		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	rec := recordFromTags(m, path)
	rec.UpdatedAt = info.ModTime().UTC()
	rec.AddFile(filepath.Base(path), derivatives)

	return rec, nil
}

// recordFromTags maps tag metadata to a record without id or files.
func recordFromTags(m tag.Metadata, path string) *item.Record {
	rec := &item.Record{}

	title := strings.TrimSpace(m.Title())
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	creator := strings.TrimSpace(m.AlbumArtist())
	if creator == "" {
		creator = strings.TrimSpace(m.Artist())
	}

	rec.Add(item.SetDublinCore, "Title", title)
	addIf(rec, item.SetDublinCore, "Creator", creator)
	addIf(rec, item.SetDublinCore, "Subject", strings.TrimSpace(m.Genre()))
	addIf(rec, item.SetDublinCore, "Description", strings.TrimSpace(m.Comment()))

	if year := m.Year(); year > 0 {
		rec.Add(item.SetDublinCore, "Date", strconv.Itoa(year))
	}

	rec.Add(item.SetDublinCore, "Type", TypeSound)
	addIf(rec, item.SetDublinCore, "Source", strings.TrimSpace(m.Album()))
	addIf(rec, item.SetItemType, "Original Format", string(m.FileType()))

	return rec
}

func addIf(rec *item.Record, set, element, text string) {
	if text != "" {
		rec.Add(set, element, text)
	}
}

// Since returns the records modified after t.
func (r *Result) Since(t time.Time) []*item.Record {
	var out []*item.Record

	for _, rec := range r.Records {
		if rec.UpdatedAt.After(t) {
			out = append(out, rec)
		}
	}

	return out
}
