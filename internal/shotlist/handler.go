package shotlist

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

type ShotRequest struct {
	Title         string                `json:"title" binding:"required,min=1,max=255"`
	Description   string                `json:"description" binding:"max=2000"`
	Category      string                `json:"category" binding:"required,oneof=preparation ceremony portrait reception details venue"`
	ImagePath     string                `json:"imagePath"`
	ImagePosition *ImagePositionRequest `json:"imagePosition" binding:"omitempty"`
}

type ImagePositionRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y" binding:"min=0,max=100"`
}

func (r *ShotRequest) toItem() Item {
	item := Item{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		ImagePath:   r.ImagePath,
	}
	if r.ImagePosition != nil {
		item.ImagePosition = &ImagePosition{X: r.ImagePosition.X, Y: r.ImagePosition.Y}
	}
	return item
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
	var req ShotRequest
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
		c.Error(errors.BadRequest("Invalid shot id", err))
		return
	}

	var req ShotRequest
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
		c.Error(errors.BadRequest("Invalid shot id", err))
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
		c.Error(errors.BadRequest("Invalid shot id", err))
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

// UploadImage takes a multipart "image" file and attaches it to the shot.
func (h *Handler) UploadImage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Error(errors.BadRequest("Invalid shot id", err))
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.Error(errors.BadRequest("Missing image file", err))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(errors.BadRequest("Can't read image file", err))
		return
	}
	defer file.Close()

	item, err := h.service.SetImage(
		c.Request.Context(),
		id,
		fileHeader.Filename,
		file,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, item)
}
