package session

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pharmapp/dto"
	"pharmapp/model"
	"pharmapp/store"
	"pharmapp/store/storetest"
)

func bootstrapRouter(user *model.User, pharmacies store.PharmacyStore, memberships store.MembershipStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userId", user.UserID)
		c.Set("user", user)
	})
	router.GET("/bootstrap", func(c *gin.Context) {
		GetBootstrapSession(c, pharmacies, memberships)
	})
	return router
}

func TestGetBootstrapSession(t *testing.T) {
	user := &model.User{
		UserID:              "tech-1",
		Email:               "tech@x.com",
		DisplayName:         "Tech One",
		OnboardingCompleted: true,
		PrimaryRole:         model.PrimaryRolePharmacist,
	}

	memberships := new(storetest.MockMembershipStore)
	pharmacies := new(storetest.MockPharmacyStore)

	memberships.On("ListMembershipsByUser", mock.Anything, "tech-1").Return([]model.Membership{
		{MembershipID: "tech-1_ph-1", UserID: "tech-1", PharmacyID: "ph-1", Role: model.RolePharmacist},
		{MembershipID: "tech-1_ph-gone", UserID: "tech-1", PharmacyID: "ph-gone", Role: model.RoleAdmin},
	}, nil)
	pharmacies.On("GetPharmacy", mock.Anything, "ph-1").
		Return(&model.Pharmacy{PharmacyID: "ph-1", Name: "Central", OwnerUserID: "owner-1", SubscriptionStatus: model.SubscriptionActive}, nil)
	pharmacies.On("GetPharmacy", mock.Anything, "ph-gone").Return(nil, store.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/bootstrap", nil)
	rec := httptest.NewRecorder()
	bootstrapRouter(user, pharmacies, memberships).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.BootstrapResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "tech@x.com", resp.User.Email)
	require.Len(t, resp.Memberships, 1) // membership with a vanished pharmacy is dropped
	assert.Equal(t, "ph-1", resp.Memberships[0].PharmacyID)
	assert.Equal(t, "pharmacist", resp.Memberships[0].Role)
	require.Len(t, resp.Workspaces, 1)
	assert.Equal(t, "Central", resp.Workspaces[0].Name)
}
