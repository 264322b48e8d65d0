package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/Gunvolt24/wb_basket/internal/domain"
	"github.com/Gunvolt24/wb_basket/pkg/httpx"
	"github.com/gin-gonic/gin"
)

type timeRequest struct {
	Time *string `json:"time"`
}

type flagRequest struct {
	Faster      *bool `json:"faster"`
	SelfService *bool `json:"self_service"`
}

func (h *Handler) getConfig(c *gin.Context) {
	itemID, ok := httpx.PathID(c, "itemId")
	if !ok {
		badRequest(c, "invalid item id")
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	c.JSON(http.StatusOK, h.service.GetConfig(ctx, httpx.SessionID(c), itemID))
}

func (h *Handler) setTime(c *gin.Context) {
	var req timeRequest
	if !bindJSON(c, &req) || req.Time == nil {
		badRequest(c, "field time is required")
		return
	}
	h.transition(c, func(ctx context.Context, sessionID, itemID string) (domain.ItemConfig, error) {
		return h.service.SetTime(ctx, sessionID, itemID, *req.Time)
	})
}

func (h *Handler) setFaster(c *gin.Context) {
	var req flagRequest
	if !bindJSON(c, &req) || req.Faster == nil {
		badRequest(c, "field faster is required")
		return
	}
	h.transition(c, func(ctx context.Context, sessionID, itemID string) (domain.ItemConfig, error) {
		return h.service.SetFaster(ctx, sessionID, itemID, *req.Faster)
	})
}

func (h *Handler) setSelfService(c *gin.Context) {
	var req flagRequest
	if !bindJSON(c, &req) || req.SelfService == nil {
		badRequest(c, "field self_service is required")
		return
	}
	h.transition(c, func(ctx context.Context, sessionID, itemID string) (domain.ItemConfig, error) {
		return h.service.SetSelfService(ctx, sessionID, itemID, *req.SelfService)
	})
}

func (h *Handler) toggleSelfService(c *gin.Context) {
	h.transition(c, h.service.ToggleSelfService)
}

func (h *Handler) focusTimeField(c *gin.Context) {
	h.transition(c, h.service.FocusTimeField)
}

func (h *Handler) commitTimeField(c *gin.Context) {
	var req timeRequest
	if !bindJSON(c, &req) || req.Time == nil {
		badRequest(c, "field time is required")
		return
	}
	h.transition(c, func(ctx context.Context, sessionID, itemID string) (domain.ItemConfig, error) {
		return h.service.CommitTimeField(ctx, sessionID, itemID, *req.Time)
	})
}

func (h *Handler) getArea(c *gin.Context) {
	areaID, ok := httpx.PathID(c, "areaId")
	if !ok {
		badRequest(c, "invalid area id")
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	area, err := h.service.Area(ctx, areaID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, area)
}

func (h *Handler) getBasket(c *gin.Context) {
	areaID, itemID, ok := httpx.AreaItem(c)
	if !ok {
		badRequest(c, "invalid area or item id")
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	view, err := h.service.Basket(ctx, httpx.SessionID(c), areaID, itemID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) checkout(c *gin.Context) {
	areaID, itemID, ok := httpx.AreaItem(c)
	if !ok {
		badRequest(c, "invalid area or item id")
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	ev, err := h.service.Checkout(ctx, httpx.SessionID(c), areaID, itemID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ev)
}

// transition — общий путь для переходов параметров позиции.
func (h *Handler) transition(c *gin.Context, fn func(ctx context.Context, sessionID, itemID string) (domain.ItemConfig, error)) {
	itemID, ok := httpx.PathID(c, "itemId")
	if !ok {
		badRequest(c, "invalid item id")
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	cfg, err := fn(ctx, httpx.SessionID(c), itemID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// writeError — sentinel-ошибки домена в HTTP-статусы; остальное — 500.
func (h *Handler) writeError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, domain.ErrAreaNotFound), errors.Is(err, domain.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidTime):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrCheckoutNotAllowed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrCheckoutPublish):
		c.JSON(http.StatusBadGateway, gin.H{"error": "checkout is temporarily unavailable"})
	default:
		h.log.Errorf(c.Request.Context(), "request failed path=%s err=%v", c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func bindJSON(c *gin.Context, dst any) bool {
	return c.ShouldBindJSON(dst) == nil
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
