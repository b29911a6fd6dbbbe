// Package logger is the public API of StreamLogger. Most users only
// need to import this package.
//
// A Logger appends timestamped, severity-tagged entries to a single
// file, <directory>/StreamLogger.log. Nothing is created on disk until
// the first entry is written:
//
//	log := logger.New("/var/log/myapp")
//	defer log.Close()
//
//	log.Info().Print("listening on ", addr, "\n").End()
//
// Info, Warn and Error write the prefix ("[15:04:05] [INFO ] : ") and
// return an Entry. The caller composes the body through the Entry,
// which is an io.Writer, and must call End. The Entry holds the
// process-wide logging lock until End returns, so bodies written by
// concurrent callers never interleave and SetEnabled cannot swap the
// sink out from under an entry in progress. Forgetting End blocks all
// logging in the process.
//
// For one-shot messages use Log or the Infof family, which write a
// complete newline-terminated entry and release the lock themselves.
//
// SetEnabled(false) replaces the file with a discarding sink; the file
// is flushed and closed first. Re-enabling reopens the same path in
// append mode and writes a fresh banner before the next entry.
//
// Every Logger built without WithLock shares one mutex with every
// other Logger in the process.
package logger
