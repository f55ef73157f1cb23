// Package order implements the per-pharmacy order CRUD and comment endpoints.
// Every route passes the membership guard; handlers trust the resolved
// pharmacyId and never re-check tenancy on their own.
package order

import (
	"github.com/gin-gonic/gin"

	"pharmapp/middleware"
	"pharmapp/store"
)

func OrderController(router *gin.Engine, users store.UserStore, memberships store.MembershipStore, orders store.OrderStore) {
	routes := router.Group("/api/orders", middleware.AccessTokenMiddleware(users), middleware.RequireMembership(memberships))
	{
		routes.GET("", func(c *gin.Context) {
			ListOrders(c, orders)
		})
		routes.POST("", func(c *gin.Context) {
			CreateOrder(c, orders)
		})
		routes.PATCH("/:orderId", func(c *gin.Context) {
			UpdateOrder(c, orders)
		})
		routes.POST("/:orderId/comments", func(c *gin.Context) {
			AddOrderComment(c, orders)
		})
	}
}

const maxCommentLength = 1000

// commentAuthorName snapshots the display name at post time so later profile
// renames never rewrite old comments.
func commentAuthorName(displayName, email string) string {
	if displayName != "" {
		return displayName
	}
	return email
}
