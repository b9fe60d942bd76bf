//go:generate mockgen -destination mock_debugstat/mock_debugstat.go github.com/anyproto/any-copydebug/app/debugstat StatService
package debugstat

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/anyproto/any-copydebug/app"
	"github.com/anyproto/any-copydebug/app/logger"
)

var log = logger.NewNamed(CName)

const CName = "common.debugstat"

type StatProvider interface {
	ProvideStat() any
	StatId() string
	StatType() string
}

type AggregatableStatProvider interface {
	AggregateStat(stats []StatValue) any
}

type StatService interface {
	app.ComponentRunnable
	AddProvider(provider StatProvider)
	RemoveProvider(provider StatProvider)
	GetStat() StatSummary
}

func New() StatService {
	return &statService{}
}

type statService struct {
	providers map[string]StatProvider
	sync.Mutex
}

func (s *statService) Init(a *app.App) (err error) {
	s.providers = map[string]StatProvider{}
	return nil
}

func (s *statService) Name() (name string) {
	return CName
}

func (s *statService) AddProvider(provider StatProvider) {
	s.Lock()
	defer s.Unlock()
	s.providers[s.provId(provider)] = provider
	log.Debug("provider added", zap.String("id", s.provId(provider)))
}

func (s *statService) RemoveProvider(provider StatProvider) {
	s.Lock()
	defer s.Unlock()
	delete(s.providers, s.provId(provider))
}

func (s *statService) provId(provider StatProvider) string {
	return provider.StatType() + "-" + provider.StatId()
}

func (s *statService) GetStat() (st StatSummary) {
	s.Lock()
	allProviders := map[string][]StatProvider{}
	for _, prov := range s.providers {
		tp := prov.StatType()
		allProviders[tp] = append(allProviders[tp], prov)
	}
	s.Unlock()

	types := make([]string, 0, len(allProviders))
	for tp := range allProviders {
		types = append(types, tp)
	}
	sort.Strings(types)

	for _, tp := range types {
		provs := allProviders[tp]
		sort.Slice(provs, func(i, j int) bool {
			return provs[i].StatId() < provs[j].StatId()
		})
		stType := StatType{Type: tp}
		for _, prov := range provs {
			stType.Values = append(stType.Values, StatValue{
				Key:   prov.StatId(),
				Value: prov.ProvideStat(),
			})
		}
		if aggregate, ok := provs[0].(AggregatableStatProvider); ok {
			stType.Aggregate = aggregate.AggregateStat(stType.Values)
			stType.Values = nil
		}
		st.Stats = append(st.Stats, stType)
	}
	return st
}

func (s *statService) Run(ctx context.Context) (err error) {
	return nil
}

func (s *statService) Close(ctx context.Context) (err error) {
	return nil
}
