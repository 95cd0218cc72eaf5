package handlers

import (
	"net/http"

	"travelbook/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest Redis/Mongo health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"health": utils.GetHealthStatus(),
	})
}
