// Package logger configura el logging estructurado de la aplicación sobre
// zerolog: consola legible en desarrollo, JSON en el resto de entornos.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones para el logger.
type Config struct {
	Env   string // development usa consola legible; cualquier otro valor, JSON
	Level string // trace, debug, info, warn, error
}

// Logger envoltorio sobre zerolog para inyectarlo como dependencia.
type Logger struct {
	zl zerolog.Logger
}

// New crea el logger raíz y lo fija también como logger global de zerolog,
// para las librerías que escriben a través de él.
func New(cfg Config) *Logger {
	var salida io.Writer = os.Stdout
	if cfg.Env == "development" {
		salida = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zl := zerolog.New(salida).
		Level(nivelDe(cfg.Level)).
		With().Timestamp().
		Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

func nivelDe(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Eventos por nivel, delegados a zerolog.
func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With crea un sublogger con campos fijos.
func (l *Logger) With() zerolog.Context { return l.zl.With() }
