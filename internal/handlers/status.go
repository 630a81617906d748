package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	statusOK     = "ok"
	errNoReading = "no reading yet"
)

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Daemon status
// @Description  Counters and the latest reading since startup
// @Tags         status
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/status [get]
func (h *Handler) getStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Monitoring.Status())
}

// @Summary      Latest reading
// @Tags         status
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/reading/latest [get]
func (h *Handler) getLatestReading(c *gin.Context) {
	r, ok := h.services.Monitoring.LastReading()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": errNoReading})
		return
	}
	c.JSON(http.StatusOK, r)
}
