package invitation

import (
	"log/slog"
	"net/http"
	"strings"
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

func InvitationController(router *gin.Engine, users store.UserStore, pharmacies store.PharmacyStore, memberships store.MembershipStore, invitations store.InvitationStore) {
	routes := router.Group("/api/invitations", middleware.AccessTokenMiddleware(users))
	{
		routes.POST("/invite", middleware.RequireMembership(memberships, model.RoleOwner), func(c *gin.Context) {
			CreateInvitation(c, invitations)
		})
		routes.GET("/pending", func(c *gin.Context) {
			GetPendingInvitations(c, invitations, pharmacies)
		})
		routes.GET("/workspace", middleware.RequireMembership(memberships, model.RoleOwner, model.RoleAdmin), func(c *gin.Context) {
			GetWorkspacePendingInvitations(c, invitations)
		})
		routes.POST("/accept", func(c *gin.Context) {
			AcceptInvitation(c, invitations)
		})
		routes.POST("/decline", func(c *gin.Context) {
			DeclineInvitation(c, invitations)
		})
	}
}

func CreateInvitation(c *gin.Context, invitations store.InvitationStore) {
	user := c.MustGet("user").(*model.User)
	pharmacyID := c.MustGet("pharmacyId").(string)

	var req dto.InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invitee email is required"})
		return
	}

	email := services.CleanEmail(req.Email)
	if email == "" || !services.IsValidEmail(email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invitee email is required"})
		return
	}

	role := services.NormalizeRole(req.Role)
	if role != model.RoleAdmin && role != model.RolePharmacist {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invitation role. Use pharmacist or admin"})
		return
	}

	invitation := &model.Invitation{
		InvitationID:    uuid.New().String(),
		PharmacyID:      pharmacyID,
		Email:           email,
		Role:            role,
		InvitedByUserID: user.UserID,
		Status:          model.InvitationPending,
		CreatedAt:       time.Now(),
	}

	if err := invitations.CreateInvitation(c.Request.Context(), invitation); err != nil {
		if err == store.ErrAlreadyExists {
			c.JSON(http.StatusConflict, gin.H{"error": "Pending invitation already exists"})
			return
		}
		slog.Error("create invitation failed", sl.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Invitation created successfully",
		"invitation": dto.InvitationResponseFrom(invitation),
	})
}

// GetPendingInvitations lists invitations addressed to the caller's own email,
// decorated with the pharmacy name for display.
func GetPendingInvitations(c *gin.Context, invitations store.InvitationStore, pharmacies store.PharmacyStore) {
	user := c.MustGet("user").(*model.User)
	ctx := c.Request.Context()

	pending, err := invitations.ListPendingInvitationsByEmail(ctx, strings.ToLower(user.Email))
	if err != nil {
		slog.Error("list pending invitations failed", sl.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := make([]dto.InvitationResponse, 0, len(pending))
	for i := range pending {
		item := dto.InvitationResponseFrom(&pending[i])
		if pharmacy, err := pharmacies.GetPharmacy(ctx, pending[i].PharmacyID); err == nil {
			item.PharmacyName = pharmacy.Name
		}
		items = append(items, item)
	}

	c.JSON(http.StatusOK, gin.H{"invitations": items})
}

func GetWorkspacePendingInvitations(c *gin.Context, invitations store.InvitationStore) {
	pharmacyID := c.MustGet("pharmacyId").(string)

	pending, err := invitations.ListPendingInvitationsByPharmacy(c.Request.Context(), pharmacyID)
	if err != nil {
		slog.Error("list workspace invitations failed", sl.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := make([]dto.InvitationResponse, 0, len(pending))
	for i := range pending {
		items = append(items, dto.InvitationResponseFrom(&pending[i]))
	}

	c.JSON(http.StatusOK, gin.H{"invitations": items})
}

func AcceptInvitation(c *gin.Context, invitations store.InvitationStore) {
	user := c.MustGet("user").(*model.User)

	var req dto.InvitationActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid invitationId is required"})
		return
	}

	invitationID := services.CleanString(req.InvitationID)
	if invitationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid invitationId is required"})
		return
	}

	invitation, membership, err := invitations.AcceptInvitation(c.Request.Context(), invitationID, strings.ToLower(user.Email), user.UserID)
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pending invitation not found"})
			return
		}
		slog.Error("accept invitation failed", sl.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Invitation accepted",
		"membership": dto.MembershipResponse{
			ID:         membership.MembershipID,
			UserID:     membership.UserID,
			PharmacyID: invitation.PharmacyID,
			Role:       membership.Role,
		},
	})
}

func DeclineInvitation(c *gin.Context, invitations store.InvitationStore) {
	user := c.MustGet("user").(*model.User)

	var req dto.InvitationActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid invitationId is required"})
		return
	}

	invitationID := services.CleanString(req.InvitationID)
	if invitationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid invitationId is required"})
		return
	}

	invitation, err := invitations.DeclineInvitation(c.Request.Context(), invitationID, strings.ToLower(user.Email))
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pending invitation not found"})
			return
		}
		slog.Error("decline invitation failed", sl.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Invitation declined",
		"invitation": gin.H{
			"id":     invitation.InvitationID,
			"status": invitation.Status,
		},
	})
}
