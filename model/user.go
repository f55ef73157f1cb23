package model

import "time"

type User struct {
	UserID              string    `firestore:"userid,omitempty"`
	GoogleID            string    `firestore:"googleid,omitempty"`
	Email               string    `firestore:"email,omitempty"` // always lowercased
	DisplayName         string    `firestore:"displayname,omitempty"`
	Picture             string    `firestore:"picture,omitempty"`
	OnboardingCompleted bool      `firestore:"onboardingcompleted"`
	PrimaryRole         string    `firestore:"primaryrole"` // "" until chosen, then "owner" or "pharmacist"
	SubscriptionActive  bool      `firestore:"subscriptionactive"`
	CreatedAt           time.Time `firestore:"createdat,omitempty"`
}

const (
	PrimaryRoleOwner      = "owner"
	PrimaryRolePharmacist = "pharmacist"
)
