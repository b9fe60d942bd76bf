package logger

import (
	"sync"

	"github.com/gobwas/glob"
	"go.uber.org/zap"
)

var (
	mu           sync.Mutex
	logger       *zap.Logger
	loggerConfig zap.Config
	namedLevels  []namedLevel
	namedGlobs   = make(map[string]glob.Glob)
	namedLoggers = make(map[string]NamedLogger)
)

type namedLevel struct {
	name  string
	level zap.AtomicLevel
}

func init() {
	loggerConfig = zap.NewDevelopmentConfig()
	logger, _ = loggerConfig.Build()
}

// NamedLogger is a component logger, its level follows the named levels
type NamedLogger struct {
	*zap.Logger
	name string
}

func (nl NamedLogger) With(fields ...zap.Field) NamedLogger {
	return NamedLogger{nl.Logger.With(fields...), nl.name}
}

// SetDefault replaces the default logger
// call SetNamedLevels afterwards so existing named loggers pick up the new core
func SetDefault(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	*logger = *l
}

// SetNamedLevels sets levels for named loggers
// names may be glob patterns like "common.*"
func SetNamedLevels(nls []NamedLevel) {
	mu.Lock()
	defer mu.Unlock()
	namedLevels = namedLevels[:0]

	var minLevel = logger.Level()
	for _, nl := range nls {
		l, err := zap.ParseAtomicLevel(nl.Level)
		if err != nil {
			continue
		}
		namedLevels = append(namedLevels, namedLevel{name: nl.Name, level: l})
		if g, err := glob.Compile(nl.Name); err == nil {
			namedGlobs[nl.Name] = g
		}
		if l.Level() < minLevel {
			minLevel = l.Level()
		}
	}

	if minLevel < logger.Level() {
		// the root core must pass the lowest named level
		loggerConfig.Level = zap.NewAtomicLevelAt(minLevel)
		logger, _ = loggerConfig.Build()
	}

	for name, nl := range namedLoggers {
		newCore := zap.New(logger.Core()).Named(name).WithOptions(
			zap.IncreaseLevel(getLevel(name)),
		)
		*(nl.Logger) = *newCore
	}
}

func Default() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// getLevel returns the level of the first name or glob pattern matching the given name
func getLevel(name string) zap.AtomicLevel {
	for _, nl := range namedLevels {
		if nl.name == name {
			return nl.level
		}
		if g, ok := namedGlobs[nl.name]; ok && g.Match(name) {
			return nl.level
		}
	}
	return zap.NewAtomicLevelAt(logger.Level())
}

func NewNamed(name string, fields ...zap.Field) NamedLogger {
	mu.Lock()
	defer mu.Unlock()

	if l, ok := namedLoggers[name]; ok {
		return l
	}

	l := zap.New(logger.Core()).Named(name).WithOptions(
		zap.IncreaseLevel(getLevel(name)),
		zap.Fields(fields...),
	)
	nl := NamedLogger{Logger: l, name: name}
	namedLoggers[name] = nl
	return nl
}
