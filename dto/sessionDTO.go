package dto

type WorkspaceResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	OwnerUserID        string `json:"ownerUserId"`
	SubscriptionStatus string `json:"subscriptionStatus"`
}

type BootstrapResponse struct {
	User        UserResponse         `json:"user"`
	Memberships []MembershipResponse `json:"memberships"`
	Workspaces  []WorkspaceResponse  `json:"workspaces"`
}
