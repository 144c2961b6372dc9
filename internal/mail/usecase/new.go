package usecase

import (
	"ikraph-email-agent/internal/mail"
	"ikraph-email-agent/internal/mail/transport"
	"ikraph-email-agent/pkg/llmprovider"
	pkgLog "ikraph-email-agent/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	llm    llmprovider.Provider
	sender transport.Sender
	from   string
	tone   string
}

var _ mail.UseCase = (*implUseCase)(nil)

// New creates a new mail UseCase instance.
// A nil sender disables delivery: Deliver then returns mail.ErrTransportDisabled.
func New(l pkgLog.Logger, llm llmprovider.Provider, sender transport.Sender, from, tone string) *implUseCase {
	if tone == "" {
		tone = DefaultTone
	}
	return &implUseCase{
		l:      l,
		llm:    llm,
		sender: sender,
		from:   from,
		tone:   tone,
	}
}
