package dto

type ChooseRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type UserResponse struct {
	ID                  string `json:"id"`
	GoogleID            string `json:"googleId,omitempty"`
	Email               string `json:"email"`
	DisplayName         string `json:"displayName"`
	Picture             string `json:"picture,omitempty"`
	OnboardingCompleted bool   `json:"onboardingCompleted"`
	PrimaryRole         string `json:"primaryRole,omitempty"`
	SubscriptionActive  bool   `json:"subscriptionActive"`
}
