package session

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"pharmapp/dto"
	"pharmapp/lib/sl"
	"pharmapp/middleware"
	"pharmapp/model"
	"pharmapp/store"
)

func SessionController(router *gin.Engine, users store.UserStore, pharmacies store.PharmacyStore, memberships store.MembershipStore) {
	routes := router.Group("/api/session", middleware.AccessTokenMiddleware(users))
	{
		routes.GET("/bootstrap", func(c *gin.Context) {
			GetBootstrapSession(c, pharmacies, memberships)
		})
	}
}

// GetBootstrapSession returns everything the frontend needs after a reload:
// the caller's profile, memberships and the deduplicated workspace list.
func GetBootstrapSession(c *gin.Context, pharmacies store.PharmacyStore, memberships store.MembershipStore) {
	user := c.MustGet("user").(*model.User)
	ctx := c.Request.Context()

	items, err := memberships.ListMembershipsByUser(ctx, user.UserID)
	if err != nil {
		slog.Error("bootstrap: list memberships failed", sl.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	membershipItems := make([]dto.MembershipResponse, 0, len(items))
	workspaces := make([]dto.WorkspaceResponse, 0, len(items))
	seen := make(map[string]bool)

	for _, membership := range items {
		pharmacy, err := pharmacies.GetPharmacy(ctx, membership.PharmacyID)
		if err != nil {
			// Skip memberships whose pharmacy document has gone missing.
			continue
		}

		membershipItems = append(membershipItems, dto.MembershipResponse{
			ID:         membership.MembershipID,
			PharmacyID: membership.PharmacyID,
			Role:       membership.Role,
		})

		if !seen[pharmacy.PharmacyID] {
			seen[pharmacy.PharmacyID] = true
			workspaces = append(workspaces, dto.WorkspaceResponse{
				ID:                 pharmacy.PharmacyID,
				Name:               pharmacy.Name,
				OwnerUserID:        pharmacy.OwnerUserID,
				SubscriptionStatus: pharmacy.SubscriptionStatus,
			})
		}
	}

	c.JSON(http.StatusOK, dto.BootstrapResponse{
		User:        dto.UserResponseFrom(user),
		Memberships: membershipItems,
		Workspaces:  workspaces,
	})
}
