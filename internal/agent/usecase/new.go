package usecase

import (
	"github.com/prometheus/client_golang/prometheus"

	"ikraph-email-agent/internal/agent"
	"ikraph-email-agent/internal/knowledge"
	"ikraph-email-agent/internal/mail"
	"ikraph-email-agent/internal/router"
	pkgLog "ikraph-email-agent/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	router    router.Router
	knowledge knowledge.UseCase
	mail      mail.UseCase
	metrics   *agentMetrics
}

var _ agent.UseCase = (*implUseCase)(nil)

// New creates a new agent UseCase instance.
// reg may be nil, in which case no metrics are recorded.
func New(l pkgLog.Logger, r router.Router, kn knowledge.UseCase, m mail.UseCase, reg prometheus.Registerer) (*implUseCase, error) {
	metrics, err := newAgentMetrics(reg)
	if err != nil {
		return nil, err
	}
	return &implUseCase{
		l:         l,
		router:    r,
		knowledge: kn,
		mail:      m,
		metrics:   metrics,
	}, nil
}
