package handlers

import (
	"net/http"

	"purpoise-api/internal/tagging"

	"github.com/gin-gonic/gin"
)

// ClassifyItem is one headline to tag.
type ClassifyItem struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// ClassifyRequest is a batch of headlines, typically one fetched feed page.
type ClassifyRequest struct {
	Items []ClassifyItem `json:"items" binding:"required"`
}

// ClassifiedItem echoes the input with its tags attached.
type ClassifiedItem struct {
	ClassifyItem
	tagging.Tags
}

// ClassifyContent handles POST /api/tagging/classify
// Tags each item so the dashboard can bucket articles without the server
// ever fetching feeds itself.
func ClassifyContent(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := make([]ClassifiedItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, ClassifiedItem{
			ClassifyItem: item,
			Tags:         tagging.ClassifyAll(item.Title, item.Description),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}
