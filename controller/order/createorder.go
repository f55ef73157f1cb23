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

// CreateOrder validates every field, forces the initial status to "Not Yet"
// regardless of input and appends the optional inline comment as the order's
// first comment, authored by the creator.
func CreateOrder(c *gin.Context, orders store.OrderStore) {
	user := c.MustGet("user").(*model.User)
	pharmacyID := c.MustGet("pharmacyId").(string)

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	patientName := services.CleanSingleLine(req.PatientName)
	if patientName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Patient name is required"})
		return
	}

	phone := services.CleanPhone(req.Phone)
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone is required"})
		return
	}
	if !services.IsValidPhone(phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone must contain digits only"})
		return
	}

	productName := services.CleanSingleLine(req.ProductName)
	if productName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product name is required"})
		return
	}

	arrivalDate := services.CleanString(req.ArrivalDate)
	if arrivalDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Arrival date is required"})
		return
	}
	if !services.IsValidArrivalDate(arrivalDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Arrival date must be YYYY-MM-DD"})
		return
	}

	urgency := services.CleanSingleLine(req.Urgency)
	if urgency == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Urgency is required"})
		return
	}
	if urgency != model.UrgencyUrgent && urgency != model.UrgencyNormal {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid urgency value"})
		return
	}

	now := time.Now()
	newOrder := &model.Order{
		OrderID:     uuid.New().String(),
		PharmacyID:  pharmacyID,
		PatientName: patientName,
		Phone:       phone,
		ProductName: productName,
		ArrivalDate: arrivalDate,
		Urgency:     urgency,
		Status:      model.StatusNotYet,
		Comments:    []model.OrderComment{},
		CreatedAt:   now,
	}

	if text := services.CleanString(req.Comment); text != "" {
		if len([]rune(text)) > maxCommentLength {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Comment text is too long"})
			return
		}
		newOrder.Comments = append(newOrder.Comments, model.OrderComment{
			CommentID:    uuid.New().String(),
			AuthorUserID: user.UserID,
			AuthorName:   commentAuthorName(user.DisplayName, user.Email),
			Text:         text,
			CreatedAt:    now,
		})
	}

	if err := orders.CreateOrder(c.Request.Context(), newOrder); err != nil {
		slog.Error("create order failed", sl.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"order":   dto.OrderResponseFrom(newOrder),
	})
}
