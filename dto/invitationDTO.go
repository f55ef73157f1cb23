package dto

type InviteRequest struct {
	PharmacyID string `json:"pharmacyId" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Role       string `json:"role" binding:"required"`
}

type InvitationActionRequest struct {
	InvitationID string `json:"invitationId" binding:"required"`
}

type InvitationResponse struct {
	ID           string `json:"id"`
	PharmacyID   string `json:"pharmacyId"`
	PharmacyName string `json:"pharmacyName,omitempty"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	InvitedBy    string `json:"invitedBy,omitempty"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

type MembershipResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"userId,omitempty"`
	PharmacyID string `json:"pharmacyId"`
	Role       string `json:"role"`
}
