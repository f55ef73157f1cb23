package model

import "time"

// Membership grants one user one role inside one pharmacy. The document ID is
// userid + "_" + pharmacyid so the pair can never exist twice.
type Membership struct {
	MembershipID string    `firestore:"membershipid,omitempty"`
	UserID       string    `firestore:"userid,omitempty"`
	PharmacyID   string    `firestore:"pharmacyid,omitempty"`
	Role         string    `firestore:"role,omitempty"` // "owner", "admin" or "pharmacist"
	CreatedAt    time.Time `firestore:"createdat,omitempty"`
}

const (
	RoleOwner      = "owner"
	RoleAdmin      = "admin"
	RolePharmacist = "pharmacist"
)

// MembershipDocID builds the deterministic document ID for a (user, pharmacy) pair.
func MembershipDocID(userID, pharmacyID string) string {
	return userID + "_" + pharmacyID
}
