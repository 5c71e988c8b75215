package handlers

import (
	"net/http"
	"time"

	"purpoise-api/internal/cache"
	"purpoise-api/internal/tarot"

	"github.com/gin-gonic/gin"
)

// The draw is deterministic per date, so one cached entry per day serves
// every user. The TTL only bounds memory; a stale entry would still be
// recomputed identically.
var tarotCache = cache.New[string, []tarot.Card]()

// GetDailyTarot handles GET /api/tarot/daily
func GetDailyTarot(c *gin.Context) {
	date := Clock.Today().Date

	cards, ok := tarotCache.Get(date)
	if !ok {
		cards = tarot.DailyDraw(date)
		tarotCache.Set(date, cards, 48*time.Hour)
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"cards": cards,
	})
}
