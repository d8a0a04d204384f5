// Package combine merges the many small JSON dictionaries a message dump
// produces, one per module, into a single dictionary.
//
// Walk reads every matching file under a directory into a Result, whether it
// parsed or not, and Merge folds the Results in order. A later file's key
// shadows the same key from an earlier file. What Merge does with a Result
// that failed is a Policy; the default logs it and carries on.
package combine

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DefaultSuffix is the file name suffix of dumped message dictionaries.
const DefaultSuffix = ".msg.23.json"

// Result is the outcome of reading one file: either Dict or Err is set.
type Result struct {
	Path string
	Dict *Dict
	Err  error
}

// OK reports whether the file was read and parsed.
func (r Result) OK() bool {
	return r.Err == nil
}

// Policy decides what Merge does with a failed Result.
type Policy int

const (
	// SkipOnError logs the failure and merges the remaining files.
	SkipOnError Policy = iota
	// FailOnError stops at the first failure and returns it.
	FailOnError
)

func (p Policy) String() string {
	switch p {
	case SkipOnError:
		return "skip"
	case FailOnError:
		return "fail"
	}
	return "unknown"
}

// ParsePolicy returns the Policy named by s, "skip" or "fail".
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "skip":
		return SkipOnError, nil
	case "fail":
		return FailOnError, nil
	}
	return SkipOnError, errors.Errorf("unknown error policy %q, want skip or fail", s)
}

// Walk returns a Result for every file under root whose name ends
// with suffix, in lexical order. Only a failure to walk root itself is
// returned as an error; everything else is recorded in the Results.
func Walk(root, suffix string) ([]Result, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read input directory %v", root)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("input %v is not a directory", root)
	}

	var results []Result
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			results = append(results, Result{
				Path: path,
				Err:  errors.Wrapf(err, "cannot read %v", path),
			})
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), suffix) {
			return nil
		}
		results = append(results, readFile(path))
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "cannot fully walk directory %v", root)
	}
	return results, nil
}

func readFile(path string) Result {
	f, err := os.Open(path)
	if err != nil {
		return Result{Path: path, Err: errors.Wrapf(err, "cannot open %v", path)}
	}
	defer f.Close()

	d, err := Decode(f)
	if err != nil {
		return Result{Path: path, Err: errors.Wrapf(err, "cannot parse %v", path)}
	}
	return Result{Path: path, Dict: d}
}

// Option configures Merge.
type Option func(*merger)

// WithPolicy sets the failure policy. The default is SkipOnError.
func WithPolicy(p Policy) Option {
	return func(m *merger) {
		m.policy = p
	}
}

// WithLogger sets the entry failures and progress are logged to.
func WithLogger(l *log.Entry) Option {
	return func(m *merger) {
		if l != nil {
			m.log = l
		}
	}
}

type merger struct {
	policy Policy
	log    *log.Entry
}

// Merge folds results into one Dict, last write wins.
func Merge(results []Result, opts ...Option) (*Dict, error) {
	m := merger{
		policy: SkipOnError,
		log:    log.NewEntry(log.StandardLogger()),
	}
	for _, o := range opts {
		o(&m)
	}

	combined := NewDict()
	var skipped int
	for _, r := range results {
		if !r.OK() {
			if m.policy == FailOnError {
				return nil, r.Err
			}
			m.log.WithField("path", r.Path).Warnf("Error processing file: %v", r.Err)
			skipped++
			continue
		}
		for _, k := range r.Dict.Keys() {
			if _, ok := combined.Get(k); ok {
				m.log.WithFields(log.Fields{
					"path": r.Path,
					"key":  k,
				}).Debug("key shadows an earlier file")
			}
		}
		combined.Update(r.Dict)
	}

	m.log.WithFields(log.Fields{
		"files":   len(results) - skipped,
		"skipped": skipped,
		"keys":    combined.Len(),
	}).Info("combined dictionaries")
	return combined, nil
}
