package order

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pharmapp/model"
	"pharmapp/store"
	"pharmapp/store/storetest"
)

func orderRouter(user *model.User, pharmacyID string, orders store.OrderStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userId", user.UserID)
		c.Set("user", user)
		c.Set("pharmacyId", pharmacyID)
	})
	router.GET("/orders", func(c *gin.Context) {
		ListOrders(c, orders)
	})
	router.POST("/orders", func(c *gin.Context) {
		CreateOrder(c, orders)
	})
	router.PATCH("/orders/:orderId", func(c *gin.Context) {
		UpdateOrder(c, orders)
	})
	router.POST("/orders/:orderId/comments", func(c *gin.Context) {
		AddOrderComment(c, orders)
	})
	return router
}

func jsonRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

var tech = &model.User{UserID: "tech-1", Email: "tech@x.com", DisplayName: "Tech One"}

func validCreateBody() gin.H {
	return gin.H{
		"patientName": "J Doe",
		"phone":       "055-000-0000",
		"productName": "Amoxicillin",
		"arrivalDate": "2026-03-01",
		"urgency":     "Normal",
	}
}

func TestCreateOrder(t *testing.T) {
	t.Run("status forced to Not Yet and phone normalized", func(t *testing.T) {
		orders := new(storetest.MockOrderStore)
		var created *model.Order
		orders.On("CreateOrder", mock.Anything, mock.AnythingOfType("*model.Order")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*model.Order)
			}).Return(nil)

		body := validCreateBody()
		body["status"] = "Arrived" // must be ignored
		rec := jsonRequest(orderRouter(tech, "ph-1", orders), http.MethodPost, "/orders", body)

		assert.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, created)
		assert.Equal(t, model.StatusNotYet, created.Status)
		assert.Equal(t, "0550000000", created.Phone)
		assert.Equal(t, "ph-1", created.PharmacyID)
		assert.Empty(t, created.Comments)
	})

	t.Run("inline comment becomes the first comment", func(t *testing.T) {
		orders := new(storetest.MockOrderStore)
		var created *model.Order
		orders.On("CreateOrder", mock.Anything, mock.AnythingOfType("*model.Order")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*model.Order)
			}).Return(nil)

		body := validCreateBody()
		body["comment"] = "  note "
		rec := jsonRequest(orderRouter(tech, "ph-1", orders), http.MethodPost, "/orders", body)

		assert.Equal(t, http.StatusCreated, rec.Code)
		require.Len(t, created.Comments, 1)
		assert.Equal(t, "note", created.Comments[0].Text)
		assert.Equal(t, "tech-1", created.Comments[0].AuthorUserID)
		assert.Equal(t, "Tech One", created.Comments[0].AuthorName)
	})

	t.Run("phone with letters rejected", func(t *testing.T) {
		orders := new(storetest.MockOrderStore)
		body := validCreateBody()
		body["phone"] = "055abc0000"
		rec := jsonRequest(orderRouter(tech, "ph-1", orders), http.MethodPost, "/orders", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "digits only")
		orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})

	t.Run("bad arrival date rejected", func(t *testing.T) {
		orders := new(storetest.MockOrderStore)
		body := validCreateBody()
		body["arrivalDate"] = "01-03-2026"
		rec := jsonRequest(orderRouter(tech, "ph-1", orders), http.MethodPost, "/orders", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad urgency rejected", func(t *testing.T) {
		orders := new(storetest.MockOrderStore)
		body := validCreateBody()
		body["urgency"] = "ASAP"
		rec := jsonRequest(orderRouter(tech, "ph-1", orders), http.MethodPost, "/orders", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("patient name collapsed to single line", func(t *testing.T) {
		orders := new(storetest.MockOrderStore)
		var created *model.Order
		orders.On("CreateOrder", mock.Anything, mock.AnythingOfType("*model.Order")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*model.Order)
			}).Return(nil)

		body := validCreateBody()
		body["patientName"] = " J \n  Doe "
		jsonRequest(orderRouter(tech, "ph-1", orders), http.MethodPost, "/orders", body)

		require.NotNil(t, created)
		assert.Equal(t, "J Doe", created.PatientName)
	})
}

func TestUpdateOrder(t *testing.T) {
	t.Run("patch carries only present fields", func(t *testing.T) {
		orders := new(storetest.MockOrderStore)
		updated := &model.Order{OrderID: "o1", PharmacyID: "ph-1", Status: model.StatusArrived}
		orders.On("UpdateOrder", mock.Anything, "o1", "ph-1", mock.MatchedBy(func(patch store.OrderPatch) bool {
			return patch.Status != nil && *patch.Status == model.StatusArrived &&
				patch.PatientName == nil && patch.Phone == nil &&
				patch.ProductName == nil && patch.ArrivalDate == nil && patch.Urgency == nil
		})).Return(updated, nil)

		rec := jsonRequest(orderRouter(tech, "ph-1", orders), http.MethodPatch, "/orders/o1", gin.H{"status": "Arrived"})

		assert.Equal(t, http.StatusOK, rec.Code)
		orders.AssertExpectations(t)
	})

	t.Run("invalid status rejected before any store call", func(t *testing.T) {
		orders := new(storetest.MockOrderStore)
		rec := jsonRequest(orderRouter(tech, "ph-1", orders), http.MethodPatch, "/orders/o1", gin.H{"status": "Done"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		orders.AssertNotCalled(t, "UpdateOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty patient name rejected", func(t *testing.T) {
		orders := new(storetest.MockOrderStore)
		rec := jsonRequest(orderRouter(tech, "ph-1", orders), http.MethodPatch, "/orders/o1", gin.H{"patientName": "   "})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("cross-tenant order is not found", func(t *testing.T) {
		orders := new(storetest.MockOrderStore)
		orders.On("UpdateOrder", mock.Anything, "o-foreign", "ph-1", mock.Anything).
			Return(nil, store.ErrNotFound)

		rec := jsonRequest(orderRouter(tech, "ph-1", orders), http.MethodPatch, "/orders/o-foreign", gin.H{"status": "Arrived"})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Order not found")
	})
}

func TestAddOrderComment(t *testing.T) {
	t.Run("append with author snapshot", func(t *testing.T) {
		orders := new(storetest.MockOrderStore)
		updated := &model.Order{OrderID: "o1", PharmacyID: "ph-1", Comments: []model.OrderComment{{
			AuthorUserID: "tech-1", AuthorName: "Tech One", Text: "note", CreatedAt: time.Now(),
		}}}
		orders.On("AppendComment", mock.Anything, "o1", "ph-1", mock.MatchedBy(func(comment model.OrderComment) bool {
			return comment.Text == "note" && comment.AuthorUserID == "tech-1" && comment.AuthorName == "Tech One"
		})).Return(updated, nil)

		rec := jsonRequest(orderRouter(tech, "ph-1", orders), http.MethodPost, "/orders/o1/comments", gin.H{"text": " note "})

		assert.Equal(t, http.StatusOK, rec.Code)
		orders.AssertExpectations(t)
	})

	t.Run("author falls back to email when display name empty", func(t *testing.T) {
		noName := &model.User{UserID: "tech-1", Email: "tech@x.com"}
		orders := new(storetest.MockOrderStore)
		updated := &model.Order{OrderID: "o1", PharmacyID: "ph-1"}
		orders.On("AppendComment", mock.Anything, "o1", "ph-1", mock.MatchedBy(func(comment model.OrderComment) bool {
			return comment.AuthorName == "tech@x.com"
		})).Return(updated, nil)

		rec := jsonRequest(orderRouter(noName, "ph-1", orders), http.MethodPost, "/orders/o1/comments", gin.H{"text": "note"})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("blank text rejected", func(t *testing.T) {
		orders := new(storetest.MockOrderStore)
		rec := jsonRequest(orderRouter(tech, "ph-1", orders), http.MethodPost, "/orders/o1/comments", gin.H{"text": "   "})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("overlong text rejected", func(t *testing.T) {
		long := make([]byte, maxCommentLength+1)
		for i := range long {
			long[i] = 'a'
		}
		orders := new(storetest.MockOrderStore)
		rec := jsonRequest(orderRouter(tech, "ph-1", orders), http.MethodPost, "/orders/o1/comments", gin.H{"text": string(long)})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListOrders(t *testing.T) {
	orders := new(storetest.MockOrderStore)
	list := []model.Order{{
		OrderID:     "o1",
		PharmacyID:  "ph-1",
		PatientName: "J Doe",
		Phone:       "0550000000",
		ProductName: "Amoxicillin",
		ArrivalDate: "2026-03-01",
		Urgency:     model.UrgencyNormal,
		Status:      model.StatusNotYet,
		CreatedAt:   time.Now(),
	}}
	orders.On("ListOrders", mock.Anything, "ph-1").Return(list, nil)

	rec := jsonRequest(orderRouter(tech, "ph-1", orders), http.MethodGet, "/orders", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"Not Yet"`)
	assert.Contains(t, rec.Body.String(), `"patientName":"J Doe"`)
}
