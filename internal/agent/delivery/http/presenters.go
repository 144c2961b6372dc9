package http

import (
	"strings"

	"ikraph-email-agent/internal/agent"
	"ikraph-email-agent/internal/model"
	"ikraph-email-agent/internal/router"
)

// --- Request DTOs ---

type promptReq struct {
	Prompt string `json:"prompt"`
}

func (r promptReq) validate() error {
	if strings.TrimSpace(r.Prompt) == "" {
		return agent.ErrEmptyPrompt
	}
	return nil
}

func (r promptReq) toAskInput() agent.AskInput {
	return agent.AskInput{Prompt: r.Prompt}
}

func (r promptReq) toRouteInput() agent.RouteInput {
	return agent.RouteInput{Prompt: r.Prompt}
}

// --- Response DTOs ---

type emailResp struct {
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	To        string `json:"to,omitempty"`
	Subject   string `json:"subject,omitempty"`
	Body      string `json:"body,omitempty"`
	Transport string `json:"transport,omitempty"`
}

type askResp struct {
	RunID   string              `json:"run_id"`
	Routing router.RouterOutput `json:"routing"`
	Cypher  string              `json:"cypher"`
	Records []model.PathRecord  `json:"records"`
	Answer  string              `json:"answer"`
	Email   emailResp           `json:"email"`
}

func (h *handler) newAskResp(out agent.AskOutput) askResp {
	records := out.Records
	if records == nil {
		records = []model.PathRecord{}
	}
	return askResp{
		RunID:   out.RunID,
		Routing: out.Routing,
		Cypher:  out.Cypher,
		Records: records,
		Answer:  out.Answer,
		Email: emailResp{
			Status:    string(out.Email.Status),
			Message:   out.Email.Message,
			To:        out.Email.To,
			Subject:   out.Email.Subject,
			Body:      out.Email.Body,
			Transport: out.Email.Transport,
		},
	}
}

// askFailureResp is attached to a failed ask once a run has started.
type askFailureResp struct {
	RunID   string               `json:"run_id"`
	Routing *router.RouterOutput `json:"routing,omitempty"`
	Cypher  string               `json:"cypher,omitempty"`
}

func (h *handler) newAskFailureResp(out agent.AskOutput) any {
	if out.RunID == "" {
		return nil
	}
	resp := askFailureResp{RunID: out.RunID, Cypher: out.Cypher}
	if out.Routing.Intent != "" {
		routing := out.Routing
		resp.Routing = &routing
	}
	return resp
}

type routeResp struct {
	RunID   string              `json:"run_id"`
	Routing router.RouterOutput `json:"routing"`
}

func (h *handler) newRouteResp(out agent.RouteOutput) routeResp {
	return routeResp{RunID: out.RunID, Routing: out.Routing}
}
