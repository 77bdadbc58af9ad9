package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roguecreek/quartermaster/internal/api/handler/v1/response"
	"github.com/roguecreek/quartermaster/internal/domain"
	"github.com/roguecreek/quartermaster/internal/service"
)

type LedgerService interface {
	Snapshot(ctx context.Context, dom domain.Domain) ([]domain.StockRow, error)
	Render(ctx context.Context, dom domain.Domain) (string, error)
}

// StockHandler serves read-only snapshots. All mutation goes through
// the Discord front end.
type StockHandler struct {
	svc LedgerService
}

func NewStockHandler(svc LedgerService) *StockHandler {
	return &StockHandler{
		svc: svc,
	}
}

func (h *StockHandler) HandleGetStocks(ctx *gin.Context) {
	dom := domain.Domain(ctx.Param("domain"))
	if dom != domain.DomainAmmunition && dom != domain.DomainMedical {
		response.RenderErr(ctx, response.ErrNotFound("domain", "name", ctx.Param("domain")))
		return
	}

	rows, err := h.svc.Snapshot(ctx.Request.Context(), dom)
	if err != nil {
		h.renderErr(ctx, fmt.Errorf("HandleGetStocks -> h.svc.Snapshot -> %w", err))
		return
	}

	rendered, err := h.svc.Render(ctx.Request.Context(), dom)
	if err != nil {
		h.renderErr(ctx, fmt.Errorf("HandleGetStocks -> h.svc.Render -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewStockTable(dom, rows, rendered))
}

func (h *StockHandler) renderErr(ctx *gin.Context, err error) {
	if errors.Is(err, service.ErrStorageUnavailable) {
		response.RenderErr(ctx, response.ErrServiceUnavailable("storage unavailable"))
		return
	}

	response.RenderErr(ctx, response.ErrInternalServerError(err))
}
