package httpserver

import (
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"boutique/internal/persist"
	"boutique/internal/spinwheel"
)

var (
	spinMu  sync.Mutex
	spinRNG = rand.New(rand.NewSource(time.Now().UnixNano()))
)

func spinWheelStateHandler(keeper *persist.Keeper) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"eligible": !keeper.WheelSeen(c.Request.Context()),
			"prizes":   spinwheel.Prizes(),
		})
	}
}

// spinWheelSpinHandler performs the one-shot draw. The eligibility flag is
// recorded before responding so a second spin is refused even if the first
// response is lost.
func spinWheelSpinHandler(keeper *persist.Keeper) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if keeper.WheelSeen(ctx) {
			c.JSON(http.StatusConflict, gin.H{"message": "the wheel has already been spun"})
			return
		}
		spinMu.Lock()
		prize := spinwheel.Spin(spinRNG)
		spinMu.Unlock()
		keeper.MarkWheelSeen(ctx)
		c.JSON(http.StatusOK, gin.H{"prize": prize})
	}
}
