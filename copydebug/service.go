package copydebug

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/anyproto/any-copydebug/app"
	"github.com/anyproto/any-copydebug/app/debugstat"
	"github.com/anyproto/any-copydebug/app/logger"
	"github.com/anyproto/any-copydebug/util/typename"
)

const CName = "common.copydebug"

var log = logger.NewNamed(CName)

type configGetter interface {
	GetCopyDebug() Config
}

// Service exposes the Debugger of one engine as an app component and reports watched types to debugstat
type Service interface {
	app.ComponentRunnable
	debugstat.StatProvider
	// Watch adds the types of the samples to the stat report and makes them resolvable by name
	Watch(samples ...any)
	Debugger() *Debugger
}

func NewService(engine any) Service {
	return &service{engine: engine}
}

type service struct {
	engine   any
	debugger *Debugger
	stat     debugstat.StatService

	mu      sync.Mutex
	watched []any
}

type typeStat struct {
	Report
	Error string `json:"error,omitempty"`
}

func (s *service) Init(a *app.App) (err error) {
	conf := DefaultConfig()
	if cg, ok := a.Component("config").(configGetter); ok {
		conf = cg.GetCopyDebug()
	}
	s.mu.Lock()
	s.debugger = New(s.engine, conf)
	s.debugger.RegisterTypes(s.watched...)
	s.mu.Unlock()

	stat, ok := a.Component(debugstat.CName).(debugstat.StatService)
	if !ok {
		stat = debugstat.NewNoOp()
	}
	s.stat = stat
	return nil
}

func (s *service) Name() (name string) {
	return CName
}

func (s *service) Run(ctx context.Context) (err error) {
	rules, err := s.debugger.FilterRules()
	if err != nil {
		// the engine is still reported, the error shows up in the stat
		log.Warn("can't read copy filters", zap.Error(err))
	} else {
		log.Debug("copy filters loaded", zap.Int("count", len(rules)))
	}
	s.stat.AddProvider(s)
	return nil
}

func (s *service) Close(ctx context.Context) (err error) {
	s.stat.RemoveProvider(s)
	return nil
}

func (s *service) Watch(samples ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watched = append(s.watched, samples...)
	if s.debugger != nil {
		s.debugger.RegisterTypes(samples...)
	}
}

func (s *service) Debugger() *Debugger {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.debugger
}

func (s *service) ProvideStat() any {
	s.mu.Lock()
	watched := append([]any(nil), s.watched...)
	d := s.debugger
	s.mu.Unlock()
	if d == nil {
		// not initialized yet
		return []typeStat{}
	}

	stats := make([]typeStat, 0, len(watched))
	for _, sample := range watched {
		report, err := d.Inspect(sample)
		if err != nil {
			stats = append(stats, typeStat{
				Report: Report{Type: typename.OfValue(sample)},
				Error:  err.Error(),
			})
			continue
		}
		stats = append(stats, typeStat{Report: report})
	}
	return stats
}

func (s *service) StatId() string {
	return "copy-filters"
}

func (s *service) StatType() string {
	return CName
}
