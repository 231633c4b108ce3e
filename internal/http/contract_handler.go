package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listContracts(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	contracts, err := h.contracts.List(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContractResponses(contracts))
}

func (h *Handler) recordPayment(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	contract, err := h.contracts.RecordPayment(c.Request.Context(), id, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContractResponse(*contract))
}

func (h *Handler) exportContractDocument(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	doc, err := h.contracts.Document(c.Request.Context(), id, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	content, err := h.pdf.Generate(*doc)
	if err != nil {
		h.handleError(c, err)
		return
	}

	fileName := fmt.Sprintf("contract-%s.pdf", doc.Contract.ID)
	c.Header("Content-Disposition", "attachment; filename=\""+fileName+"\"")
	c.Data(http.StatusOK, "application/pdf", content)
}

func (h *Handler) exportContractSchedule(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	schedule, err := h.contracts.Schedule(c.Request.Context(), id, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	content, err := h.excel.Generate(*schedule)
	if err != nil {
		h.handleError(c, err)
		return
	}

	fileName := fmt.Sprintf("payment-schedule-%s.xlsx", schedule.Contract.ID)
	c.Header("Content-Disposition", "attachment; filename=\""+fileName+"\"")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}
