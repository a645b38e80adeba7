// SPDX-License-Identifier: GPL-3.0-or-later

package drivediff

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gofrs/flock"
)

type recordEntry struct {
	Value1 int64 `json:"value1"`
	Value2 int64 `json:"value2"`
	Diff   int64 `json:"diff"`
}

// Record returns the result as one line of JSON: a "meta" object plus one
// {value1, value2, diff} object per disk label.
func (r *Result) Record() ([]byte, error) {
	m := make(map[string]any, len(r.Records)+1)
	for disk, rec := range r.Records {
		m[disk] = recordEntry{Value1: rec.Before, Value2: rec.After, Diff: rec.Delta}
	}
	m["meta"] = r.Meta

	return json.Marshal(m)
}

// AppendRecord appends record and a newline to the file at path, creating the file
// with mode 0644 if needed. Existing content is never rewritten. Concurrent
// writers are serialised with an advisory lock on the file itself.
func AppendRecord(path string, record []byte) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	lock := flock.New(path)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock '%s': %w", path, err)
	}
	defer func() { _ = lock.Unlock() }()

	buf := make([]byte, 0, len(record)+1)
	buf = append(append(buf, record...), '\n')

	if _, err := f.Write(buf); err != nil {
		return fmt.Errorf("append to '%s': %w", path, err)
	}
	return nil
}
