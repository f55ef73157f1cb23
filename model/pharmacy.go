package model

import "time"

type Pharmacy struct {
	PharmacyID         string    `firestore:"pharmacyid,omitempty"`
	Name               string    `firestore:"name,omitempty"`
	OwnerUserID        string    `firestore:"owneruserid,omitempty"`
	SubscriptionStatus string    `firestore:"subscriptionstatus,omitempty"` // "active" or "inactive"
	CreatedAt          time.Time `firestore:"createdat,omitempty"`
}

const (
	SubscriptionActive   = "active"
	SubscriptionInactive = "inactive"
)
