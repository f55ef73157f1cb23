package model

import "time"

type Invitation struct {
	InvitationID    string     `firestore:"invitationid,omitempty"`
	PharmacyID      string     `firestore:"pharmacyid,omitempty"`
	Email           string     `firestore:"email,omitempty"` // invitee email, lowercased
	Role            string     `firestore:"role,omitempty"`  // "admin" or "pharmacist"
	InvitedByUserID string     `firestore:"invitedbyuserid,omitempty"`
	Status          string     `firestore:"status,omitempty"` // "pending", "accepted" or "declined"
	CreatedAt       time.Time  `firestore:"createdat,omitempty"`
	AcceptedAt      *time.Time `firestore:"acceptedat,omitempty"`
}

const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
	InvitationDeclined = "declined"
)
