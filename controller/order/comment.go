package order

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pharmapp/dto"
	"pharmapp/lib/sl"
	"pharmapp/model"
	"pharmapp/services"
	"pharmapp/store"
)

// AddOrderComment appends to the order's comment list. Comments are never
// edited or removed once written.
func AddOrderComment(c *gin.Context, orders store.OrderStore) {
	user := c.MustGet("user").(*model.User)
	pharmacyID := c.MustGet("pharmacyId").(string)

	orderID := services.CleanString(c.Param("orderId"))
	if orderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid orderId is required"})
		return
	}

	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment text is required"})
		return
	}

	text := services.CleanString(req.Text)
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment text is required"})
		return
	}
	if len([]rune(text)) > maxCommentLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment text is too long"})
		return
	}

	comment := model.OrderComment{
		CommentID:    uuid.New().String(),
		AuthorUserID: user.UserID,
		AuthorName:   commentAuthorName(user.DisplayName, user.Email),
		Text:         text,
		CreatedAt:    time.Now(),
	}

	updated, err := orders.AppendComment(c.Request.Context(), orderID, pharmacyID, comment)
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		slog.Error("add comment failed", sl.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Comment added successfully",
		"order":   dto.OrderResponseFrom(updated),
	})
}
