package configdoc

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

func (h *Handler) Show(c *gin.Context) {
	doc, err := h.service.Load(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

func (h *Handler) Update(c *gin.Context) {
	var doc Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.Error(errors.NewValidationError(err))
		return
	}

	saved, err := h.service.Save(c.Request.Context(), doc)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, saved)
}

func (h *Handler) Reset(c *gin.Context) {
	doc, err := h.service.Reset(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// UploadAvatar takes a multipart "avatar" file, stores it through the asset
// store and persists the new reference.
func (h *Handler) UploadAvatar(c *gin.Context) {
	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.Error(errors.BadRequest("Missing avatar file", err))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(errors.BadRequest("Can't read avatar file", err))
		return
	}
	defer file.Close()

	doc, err := h.service.SetAvatar(
		c.Request.Context(),
		fileHeader.Filename,
		file,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

func (h *Handler) ListPackages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"packages": h.service.Packages()})
}

type AddGroupShotRequest struct {
	Description string `json:"description" binding:"required,min=1,max=255"`
}

func (h *Handler) AddGroupShot(c *gin.Context) {
	var req AddGroupShotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidationError(err))
		return
	}

	doc, err := h.service.AddGroupShot(c.Request.Context(), req.Description)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, doc)
}

func (h *Handler) RemoveGroupShot(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Error(errors.BadRequest("Invalid group shot id", err))
		return
	}

	doc, err := h.service.RemoveGroupShot(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, doc)
}
