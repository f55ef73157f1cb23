package dto

type CreatePharmacyRequest struct {
	Name string `json:"name" binding:"required"`
}

type PharmacyResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	OwnerUserID        string `json:"ownerUserId"`
	SubscriptionStatus string `json:"subscriptionStatus"`
}
