// Package log exposes the log15 logger under the names the rest of the repo uses.
package log

import (
	"github.com/inconshreveable/log15"
	"io"
)

type (
	Logger  = log15.Logger
	Handler = log15.Handler
	Format  = log15.Format
	Lvl     = log15.Lvl
)

const (
	LvlCrit  = log15.LvlCrit
	LvlError = log15.LvlError
	LvlWarn  = log15.LvlWarn
	LvlInfo  = log15.LvlInfo
	LvlDebug = log15.LvlDebug
)

// Package level helpers call log15 directly so the recorded caller stays the call site.
var (
	Debug = log15.Debug
	Info  = log15.Info
	Warn  = log15.Warn
	Error = log15.Error
)

func Root() Logger {
	return log15.Root()
}

// New returns a child of the root logger carrying the given context.
func New(ctx ...interface{}) Logger {
	return log15.New(ctx...)
}

func StreamHandler(wr io.Writer, fmtr Format) Handler {
	return log15.StreamHandler(wr, fmtr)
}

func LvlFilterHandler(maxLvl Lvl, h Handler) Handler {
	return log15.LvlFilterHandler(maxLvl, h)
}

// CallerFileHandler adds the file:line of the logging call to every record.
func CallerFileHandler(h Handler) Handler {
	return log15.CallerFileHandler(h)
}

func LogfmtFormat() Format {
	return log15.LogfmtFormat()
}

// TerminalFormat is log15's colored terminal format; without color it falls back to logfmt.
func TerminalFormat(usecolor bool) Format {
	if !usecolor {
		return log15.LogfmtFormat()
	}
	return log15.TerminalFormat()
}
