package assets

import (
	"net/http"

	"photopro/internal/errors"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) ListBlobs(c *gin.Context) {
	blobs, err := h.store.List(c.Request.Context())
	if err != nil {
		c.Error(errors.Internal(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"blobs": blobs})
}

// ServeLocal serves an ephemeral blob back to the session that uploaded it.
// Only meaningful while running on the local fallback strategy.
func (h *Handler) ServeLocal(c *gin.Context) {
	ephemeral, ok := h.store.(*EphemeralStore)
	if !ok {
		c.Error(errors.NotFound("No local assets on this store", nil))
		return
	}

	data, contentType, ok := ephemeral.Open(c.Param("handle"))
	if !ok {
		c.Error(errors.NotFound("Asset not found", nil))
		return
	}

	c.Data(http.StatusOK, contentType, data)
}
