package schedule

import (
	"net/http"
	"strconv"

	"photopro/internal/errors"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

type ScheduleItemRequest struct {
	Time        string `json:"time" binding:"required,hhmm"`
	Title       string `json:"title" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=2000"`
	Location    string `json:"location" binding:"max=255"`
	Type        string `json:"type" binding:"required,oneof=prep ceremony portrait reception"`
}

func (r *ScheduleItemRequest) toItem() Item {
	return Item{
		Time:        r.Time,
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Type:        r.Type,
	}
}

func (h *Handler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *Handler) Create(c *gin.Context) {
	var req ScheduleItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidationError(err))
		return
	}

	item, err := h.service.Add(c.Request.Context(), req.toItem())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Error(errors.BadRequest("Invalid schedule item id", err))
		return
	}

	var req ScheduleItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidationError(err))
		return
	}

	item, err := h.service.Update(c.Request.Context(), id, req.toItem())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *Handler) ToggleCompleted(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Error(errors.BadRequest("Invalid schedule item id", err))
		return
	}

	item, err := h.service.ToggleCompleted(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Error(errors.BadRequest("Invalid schedule item id", err))
		return
	}

	if err := h.service.Remove(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) Reset(c *gin.Context) {
	list, err := h.service.Reset(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// Draft endpoints stash unsaved edits while a dialog is open. Drafts skip
// full validation on purpose: half-filled forms are legal drafts.
func (h *Handler) SaveDraft(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Error(errors.BadRequest("Invalid schedule item id", err))
		return
	}

	var item Item
	if err := c.ShouldBindJSON(&item); err != nil {
		c.Error(errors.NewValidationError(err))
		return
	}

	if err := h.service.SaveDraft(c.Request.Context(), id, item); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ShowDraft(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Error(errors.BadRequest("Invalid schedule item id", err))
		return
	}

	item, err := h.service.LoadDraft(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *Handler) DiscardDraft(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Error(errors.BadRequest("Invalid schedule item id", err))
		return
	}

	if err := h.service.DiscardDraft(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
