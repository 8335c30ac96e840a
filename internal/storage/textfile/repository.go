// Package textfile implements the storage interfaces on newline-delimited
// text files, one encoded record per line. Every mutation rewrites the
// whole file; there is no atomic temp-file swap, so a crash mid-write can
// leave a file truncated. The process is assumed to be the only writer.
package textfile

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
)

// repository owns the in-memory mirror of one record file. It is loaded
// lazily on first access and kept consistent with the file afterwards:
// mutations build the new collection, rewrite the file, and only commit
// the collection to memory when the write succeeded.
type repository[T any] struct {
	path   string
	codec  Codec[T]
	logger *slog.Logger

	// createIfMissing makes a missing file an empty collection (and
	// creates the file) instead of an error.
	createIfMissing bool

	records []T
	loaded  bool
}

func (r *repository[T]) ensureLoaded() error {
	if r.loaded {
		return nil
	}
	records, err := r.loadAll()
	if err != nil {
		return err
	}
	r.records = records
	r.loaded = true
	return nil
}

// loadAll reads the backing file line by line in file order, skipping and
// logging lines that fail to decode.
func (r *repository[T]) loadAll() ([]T, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) && r.createIfMissing {
			if err := r.saveAll(nil); err != nil {
				return nil, err
			}
			r.logger.Info("Created empty record file", "file", r.path)
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", r.path, err)
	}
	defer f.Close()

	var records []T
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		record, err := r.codec.Decode(scanner.Text())
		if err != nil {
			r.logger.Warn("Skipping malformed record",
				"file", r.path,
				"line", lineno,
				"error", err,
			)
			continue
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}
	return records, nil
}

// saveAll rewrites the backing file with one encoded line per record,
// truncating prior content.
func (r *repository[T]) saveAll(records []T) error {
	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("rewrite %s: %w", r.path, err)
	}
	w := bufio.NewWriter(f)
	for _, record := range records {
		if _, err := fmt.Fprintln(w, r.codec.Encode(record)); err != nil {
			f.Close()
			return fmt.Errorf("rewrite %s: %w", r.path, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("rewrite %s: %w", r.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("rewrite %s: %w", r.path, err)
	}
	return nil
}

// all returns a copy of the loaded collection in file order.
func (r *repository[T]) all() ([]T, error) {
	if err := r.ensureLoaded(); err != nil {
		return nil, err
	}
	out := make([]T, len(r.records))
	copy(out, r.records)
	return out, nil
}

// add appends the record and persists. The in-memory collection is only
// updated when the file rewrite succeeded.
func (r *repository[T]) add(record T) error {
	if err := r.ensureLoaded(); err != nil {
		return err
	}
	next := make([]T, 0, len(r.records)+1)
	next = append(next, r.records...)
	next = append(next, record)
	if err := r.saveAll(next); err != nil {
		return err
	}
	r.records = next
	return nil
}

// remove deletes the first record matching the predicate and persists.
// Reports whether a record matched.
func (r *repository[T]) remove(match func(T) bool) (bool, error) {
	if err := r.ensureLoaded(); err != nil {
		return false, err
	}
	for i, record := range r.records {
		if !match(record) {
			continue
		}
		next := make([]T, 0, len(r.records)-1)
		next = append(next, r.records[:i]...)
		next = append(next, r.records[i+1:]...)
		if err := r.saveAll(next); err != nil {
			return false, err
		}
		r.records = next
		return true, nil
	}
	return false, nil
}
