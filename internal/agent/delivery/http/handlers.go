package http

import (
	"github.com/gin-gonic/gin"

	"ikraph-email-agent/pkg/response"
)

// Ask godoc
// @Summary     Answer a medical question
// @Description Routes the prompt, answers it from the iKraph knowledge graph and emails the answer when the prompt asks for it.
// @Tags        Agent
// @Accept      json
// @Produce     json
// @Param       body body promptReq true "User prompt"
// @Success     200  {object} askResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     502  {object} response.Resp{data=askFailureResp} "Upstream model or graph failure"
// @Router      /api/v1/agent/ask [POST]
func (h *handler) Ask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPromptReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Ask(ctx, req.toAskInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Ask: %v", err)
		response.ErrorWithData(c, h.mapError(err), h.newAskFailureResp(output))
		return
	}

	response.OK(c, h.newAskResp(output))
}

// Route godoc
// @Summary     Classify a prompt
// @Description Returns the routing decision (intent, medical question, email block) without answering.
// @Tags        Agent
// @Accept      json
// @Produce     json
// @Param       body body promptReq true "User prompt"
// @Success     200  {object} routeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     502  {object} response.Resp "Upstream model failure"
// @Router      /api/v1/agent/route [POST]
func (h *handler) Route(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPromptReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Route(ctx, req.toRouteInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Route: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRouteResp(output))
}
