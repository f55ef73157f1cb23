package onboarding

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"pharmapp/dto"
	"pharmapp/lib/sl"
	"pharmapp/middleware"
	"pharmapp/model"
	"pharmapp/services"
	"pharmapp/store"
)

func OnboardingController(router *gin.Engine, users store.UserStore) {
	routes := router.Group("/api/onboarding", middleware.AccessTokenMiddleware(users))
	{
		routes.POST("/choose-role", func(c *gin.Context) {
			ChooseRole(c, users)
		})
		routes.POST("/activate-subscription", func(c *gin.Context) {
			ActivateSubscription(c, users)
		})
	}
}

// ChooseRole is a one-way transition: once onboarding is completed the primary
// role is frozen and a repeated call conflicts.
func ChooseRole(c *gin.Context, users store.UserStore) {
	user := c.MustGet("user").(*model.User)

	var req dto.ChooseRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Allowed values are owner or pharmacist"})
		return
	}

	role := services.NormalizeRole(req.Role)
	if role != model.PrimaryRoleOwner && role != model.PrimaryRolePharmacist {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Allowed values are owner or pharmacist"})
		return
	}

	if user.OnboardingCompleted {
		c.JSON(http.StatusConflict, gin.H{"error": "Onboarding is already completed"})
		return
	}

	if err := users.ChooseUserRole(c.Request.Context(), user.UserID, role); err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		slog.Error("choose role failed", sl.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	user.PrimaryRole = role
	user.OnboardingCompleted = true

	// Flow hint for frontend routing after role selection.
	nextStep := "pending_invitations"
	if role == model.PrimaryRoleOwner {
		nextStep = "subscription"
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Role saved successfully",
		"user":     dto.UserResponseFrom(user),
		"nextStep": nextStep,
	})
}

// ActivateSubscription flips the flag for owners. Billing is an external
// concern; this endpoint stands in for the payment provider's confirmation.
// Re-activating an already active subscription is a no-op, not an error.
func ActivateSubscription(c *gin.Context, users store.UserStore) {
	user := c.MustGet("user").(*model.User)

	if user.PrimaryRole != model.PrimaryRoleOwner {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only owners can activate subscriptions"})
		return
	}

	if err := users.ActivateSubscription(c.Request.Context(), user.UserID); err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		slog.Error("activate subscription failed", sl.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":            "Subscription activated",
		"subscriptionActive": true,
	})
}
