package pdb

import (
	"fmt"

	"github.com/go-logr/logr"
)

// badgerLogger adapts a logr.Logger to BadgerDB's badger.Logger interface
// (Errorf/Warningf/Infof/Debugf), the same shape of adapter the teacher
// reaches for whenever a third-party component wants its own logging
// interface instead of the one actually in use — except the teacher's
// Storage disables Badger logging outright (opts.Logger = nil); a
// long-running PDB build is worth seeing compaction and value-log
// messages for, so this wires Badger's logger through instead of
// discarding it.
type badgerLogger struct {
	log logr.Logger
}

// newBadgerLogger builds a badger.Logger backed by log.
func newBadgerLogger(log logr.Logger) badgerLogger {
	return badgerLogger{log: log}
}

func (b badgerLogger) Errorf(format string, args ...interface{}) {
	b.log.Error(nil, fmt.Sprintf(format, args...))
}

func (b badgerLogger) Warningf(format string, args ...interface{}) {
	b.log.V(0).Info(fmt.Sprintf(format, args...))
}

func (b badgerLogger) Infof(format string, args ...interface{}) {
	b.log.V(1).Info(fmt.Sprintf(format, args...))
}

func (b badgerLogger) Debugf(format string, args ...interface{}) {
	b.log.V(2).Info(fmt.Sprintf(format, args...))
}
