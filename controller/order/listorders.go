package order

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"pharmapp/dto"
	"pharmapp/lib/sl"
	"pharmapp/store"
)

func ListOrders(c *gin.Context, orders store.OrderStore) {
	pharmacyID := c.MustGet("pharmacyId").(string)

	list, err := orders.ListOrders(c.Request.Context(), pharmacyID)
	if err != nil {
		slog.Error("list orders failed", sl.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := make([]dto.OrderResponse, 0, len(list))
	for i := range list {
		items = append(items, dto.OrderResponseFrom(&list[i]))
	}

	c.JSON(http.StatusOK, gin.H{"orders": items})
}
