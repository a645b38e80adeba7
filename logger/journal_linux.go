// SPDX-License-Identifier: GPL-3.0-or-later

//go:build linux

package logger

import (
	"github.com/coreos/go-systemd/v22/journal"
)

// isStderrConnectedToJournal reports whether systemd (JOURNAL_STREAM) captures
// our stderr; the journal then stamps records itself.
func isStderrConnectedToJournal() bool {
	ok, err := journal.StderrIsJournalStream()
	return ok && err == nil
}
