package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/linknest/linknest/backend/internal/models"
	"github.com/linknest/linknest/backend/internal/store"
)

// LinksHandler serves the link page store: the link collection plus the
// profile with its embedded social links. Mutations on a missing id are
// no-ops by design, so those routes answer 200 with the current state.
type LinksHandler struct {
	store *store.LinkStore
}

func NewLinksHandler(links *store.LinkStore) *LinksHandler {
	return &LinksHandler{store: links}
}

func (h *LinksHandler) GetLinks(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Links())
}

func (h *LinksHandler) AddLink(c *gin.Context) {
	var req models.AddLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	link := h.store.AddLink(req.Title, req.URL)
	c.JSON(http.StatusCreated, link)
}

func (h *LinksHandler) UpdateLink(c *gin.Context) {
	var req models.UpdateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.store.UpdateLink(c.Param("id"), req)
	c.JSON(http.StatusOK, h.store.Links())
}

func (h *LinksHandler) DeleteLink(c *gin.Context) {
	h.store.DeleteLink(c.Param("id"))
	c.JSON(http.StatusOK, h.store.Links())
}

func (h *LinksHandler) ReorderLinks(c *gin.Context) {
	var req models.ReorderLinksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.store.ReorderLinks(req.IDs)
	c.JSON(http.StatusOK, h.store.Links())
}

func (h *LinksHandler) ToggleLinkActive(c *gin.Context) {
	h.store.ToggleLinkActive(c.Param("id"))
	c.JSON(http.StatusOK, h.store.Links())
}

func (h *LinksHandler) IncrementLinkClicks(c *gin.Context) {
	h.store.IncrementLinkClicks(c.Param("id"))
	c.JSON(http.StatusOK, h.store.Links())
}

func (h *LinksHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Profile())
}

func (h *LinksHandler) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.TemplateStyle != nil && !req.TemplateStyle.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown template style"})
		return
	}

	c.JSON(http.StatusOK, h.store.UpdateProfile(req))
}

func (h *LinksHandler) AddSocialLink(c *gin.Context) {
	var req models.AddSocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Platform.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown platform"})
		return
	}

	social := h.store.AddSocialLink(req.Platform, req.URL)
	c.JSON(http.StatusCreated, social)
}

func (h *LinksHandler) UpdateSocialLink(c *gin.Context) {
	var req models.UpdateSocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Platform != nil && !req.Platform.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown platform"})
		return
	}

	h.store.UpdateSocialLink(c.Param("id"), req)
	c.JSON(http.StatusOK, h.store.Profile())
}

func (h *LinksHandler) DeleteSocialLink(c *gin.Context) {
	h.store.DeleteSocialLink(c.Param("id"))
	c.JSON(http.StatusOK, h.store.Profile())
}

func (h *LinksHandler) ToggleSocialActive(c *gin.Context) {
	h.store.ToggleSocialActive(c.Param("id"))
	c.JSON(http.StatusOK, h.store.Profile())
}
