package model

import "time"

type Order struct {
	OrderID     string         `firestore:"orderid,omitempty"`
	PharmacyID  string         `firestore:"pharmacyid,omitempty"`
	PatientName string         `firestore:"patientname,omitempty"`
	Phone       string         `firestore:"phone,omitempty"` // digits only
	ProductName string         `firestore:"productname,omitempty"`
	ArrivalDate string         `firestore:"arrivaldate,omitempty"` // YYYY-MM-DD, compared lexicographically
	Urgency     string         `firestore:"urgency,omitempty"`     // "Urgent" or "Normal"
	Status      string         `firestore:"status,omitempty"`      // "Not Yet", "Ordered" or "Arrived"
	Comments    []OrderComment `firestore:"comments"`
	CreatedAt   time.Time      `firestore:"createdat,omitempty"`
}

// OrderComment is embedded in its order and never edited after creation.
// AuthorName is a snapshot of the author's display name at post time; a later
// display-name change must not rewrite old comments.
type OrderComment struct {
	CommentID    string    `firestore:"commentid,omitempty"`
	AuthorUserID string    `firestore:"authoruserid,omitempty"`
	AuthorName   string    `firestore:"authorname,omitempty"`
	Text         string    `firestore:"text,omitempty"`
	CreatedAt    time.Time `firestore:"createdat,omitempty"`
}

const (
	UrgencyUrgent = "Urgent"
	UrgencyNormal = "Normal"

	StatusNotYet  = "Not Yet"
	StatusOrdered = "Ordered"
	StatusArrived = "Arrived"
)
