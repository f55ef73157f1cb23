package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"pharmapp/lib/sl"
	"pharmapp/services"
	"pharmapp/store"
)

// RequireMembership is the single tenant-isolation point. It resolves the
// pharmacyId from the route, body or query, looks up the caller's membership
// and optionally enforces a role allow-list. A missing membership answers 404
// so callers cannot tell a foreign pharmacy from a nonexistent one; only a
// recognized member with the wrong role sees a 403.
func RequireMembership(memberships store.MembershipStore, allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		pharmacyID := resolvePharmacyID(c)
		if pharmacyID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Valid pharmacyId is required"})
			return
		}

		userID := c.MustGet("userId").(string)
		membership, err := memberships.FindMembership(c.Request.Context(), userID, pharmacyID)
		if err != nil {
			if err != store.ErrNotFound {
				slog.Error("membership lookup failed", sl.Err(err))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Pharmacy not found"})
			return
		}

		if len(allowedRoles) > 0 && !containsRole(allowedRoles, membership.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient membership role"})
			return
		}

		c.Set("membership", membership)
		c.Set("pharmacyId", pharmacyID)
		c.Next()
	}
}

func containsRole(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// resolvePharmacyID checks the route param first, then the JSON body, then the
// query string. The body is restored after peeking so the controller can still
// bind it.
func resolvePharmacyID(c *gin.Context) string {
	if id := services.CleanString(c.Param("pharmacyId")); id != "" {
		return id
	}

	if c.Request.Body != nil && c.Request.Body != http.NoBody {
		raw, err := io.ReadAll(c.Request.Body)
		if err == nil {
			c.Request.Body = io.NopCloser(bytes.NewBuffer(raw))
			var probe struct {
				PharmacyID string `json:"pharmacyId"`
			}
			if json.Unmarshal(raw, &probe) == nil {
				if id := services.CleanString(probe.PharmacyID); id != "" {
					return id
				}
			}
		}
	}

	return services.CleanString(c.Query("pharmacyId"))
}
