package pharmacy

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pharmapp/dto"
	"pharmapp/lib/sl"
	"pharmapp/middleware"
	"pharmapp/model"
	"pharmapp/services"
	"pharmapp/store"
)

func PharmacyController(router *gin.Engine, users store.UserStore, pharmacies store.PharmacyStore, memberships store.MembershipStore) {
	routes := router.Group("/api/pharmacy", middleware.AccessTokenMiddleware(users))
	{
		routes.POST("/create", func(c *gin.Context) {
			CreatePharmacy(c, pharmacies, memberships)
		})
	}
}

// CreatePharmacy opens a new workspace. Both gates are permission errors, not
// validation errors: the request shape is fine, the caller is not entitled.
func CreatePharmacy(c *gin.Context, pharmacies store.PharmacyStore, memberships store.MembershipStore) {
	user := c.MustGet("user").(*model.User)

	var req dto.CreatePharmacyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Pharmacy name is required"})
		return
	}

	name := services.CleanSingleLine(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Pharmacy name is required"})
		return
	}

	if user.PrimaryRole != model.PrimaryRoleOwner {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only owners can create a pharmacy workspace"})
		return
	}
	if !user.SubscriptionActive {
		c.JSON(http.StatusForbidden, gin.H{"error": "An active subscription is required before pharmacy creation"})
		return
	}

	ctx := c.Request.Context()
	pharmacy := &model.Pharmacy{
		PharmacyID:         uuid.New().String(),
		Name:               name,
		OwnerUserID:        user.UserID,
		SubscriptionStatus: model.SubscriptionActive,
		CreatedAt:          time.Now(),
	}

	if err := pharmacies.CreatePharmacy(ctx, pharmacy); err != nil {
		slog.Error("create pharmacy failed", sl.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ownerMembership := &model.Membership{
		UserID:     user.UserID,
		PharmacyID: pharmacy.PharmacyID,
		Role:       model.RoleOwner,
		CreatedAt:  time.Now(),
	}
	if err := memberships.CreateMembership(ctx, ownerMembership); err != nil && err != store.ErrAlreadyExists {
		slog.Error("create owner membership failed", sl.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Pharmacy created successfully",
		"pharmacy": dto.PharmacyResponseFrom(pharmacy),
	})
}
