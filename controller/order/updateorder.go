package order

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"pharmapp/dto"
	"pharmapp/lib/sl"
	"pharmapp/model"
	"pharmapp/services"
	"pharmapp/store"
)

// UpdateOrder is a merge patch over the allow-listed fields. Each present
// field is validated by the creation rules; absent fields stay untouched.
func UpdateOrder(c *gin.Context, orders store.OrderStore) {
	pharmacyID := c.MustGet("pharmacyId").(string)

	orderID := services.CleanString(c.Param("orderId"))
	if orderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid orderId is required"})
		return
	}

	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	var patch store.OrderPatch

	if req.PatientName != nil {
		value := services.CleanSingleLine(*req.PatientName)
		if value == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "patientName cannot be empty"})
			return
		}
		patch.PatientName = &value
	}

	if req.Phone != nil {
		value := services.CleanPhone(*req.Phone)
		if value == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "phone cannot be empty"})
			return
		}
		if !services.IsValidPhone(value) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Phone must contain digits only"})
			return
		}
		patch.Phone = &value
	}

	if req.ProductName != nil {
		value := services.CleanSingleLine(*req.ProductName)
		if value == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productName cannot be empty"})
			return
		}
		patch.ProductName = &value
	}

	if req.ArrivalDate != nil {
		value := services.CleanString(*req.ArrivalDate)
		if value == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "arrivalDate cannot be empty"})
			return
		}
		if !services.IsValidArrivalDate(value) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Arrival date must be YYYY-MM-DD"})
			return
		}
		patch.ArrivalDate = &value
	}

	if req.Urgency != nil {
		value := services.CleanSingleLine(*req.Urgency)
		if value != model.UrgencyUrgent && value != model.UrgencyNormal {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid urgency value"})
			return
		}
		patch.Urgency = &value
	}

	if req.Status != nil {
		value := services.CleanSingleLine(*req.Status)
		if value != model.StatusNotYet && value != model.StatusOrdered && value != model.StatusArrived {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value"})
			return
		}
		patch.Status = &value
	}

	updated, err := orders.UpdateOrder(c.Request.Context(), orderID, pharmacyID, patch)
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		slog.Error("update order failed", sl.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order updated successfully",
		"order":   dto.OrderResponseFrom(updated),
	})
}
