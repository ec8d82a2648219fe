package logger

import (
	"io"
	"os"

	"github.com/Madhav-Gupta-28/noemie-shop-go/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var DefaultOptions = &Options{
	Environment: config.Development,
}

type Options struct {
	Environment config.Environment
	Output      io.Writer
}

func safe(opts ...Options) *Options {
	if len(opts) == 0 {
		return DefaultOptions
	}
	return &opts[0]
}

// Init configures the global zerolog logger for the given environment.
func Init(opts ...Options) {
	o := safe(opts...)
	out := o.Output
	if out == nil {
		out = os.Stdout
	}

	if o.Environment.IsProduction() {
		log.Logger = zerolog.New(out).With().Timestamp().Logger().Level(zerolog.InfoLevel)
		return
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out}).With().Timestamp().Caller().Logger()
	log.Logger = log.Logger.Level(zerolog.DebugLevel)
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}
