package usecase

import (
	"ikraph-email-agent/internal/knowledge"
	"ikraph-email-agent/internal/knowledge/repository"
	"ikraph-email-agent/pkg/llmprovider"
	pkgLog "ikraph-email-agent/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	cypherLLM  llmprovider.Provider
	summaryLLM llmprovider.Provider
	repo       repository.GraphRepository
}

var _ knowledge.UseCase = (*implUseCase)(nil)

// New creates a new knowledge UseCase instance.
func New(
	l pkgLog.Logger,
	cypherLLM llmprovider.Provider,
	summaryLLM llmprovider.Provider,
	repo repository.GraphRepository,
) *implUseCase {
	return &implUseCase{
		l:          l,
		cypherLLM:  cypherLLM,
		summaryLLM: summaryLLM,
		repo:       repo,
	}
}
