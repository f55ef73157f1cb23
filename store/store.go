// Package store is the Firestore persistence layer. Controllers depend on the
// narrow interfaces below so handlers can be tested without a live project.
package store

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"pharmapp/model"
)

var (
	// ErrNotFound covers both "document absent" and "document outside the
	// caller's tenant"; the two must stay indistinguishable.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

type UserStore interface {
	GetUserByID(ctx context.Context, userID string) (*model.User, error)
	FindUserByGoogleID(ctx context.Context, googleID string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
	// ChooseUserRole sets primaryrole and onboardingcompleted in one write.
	ChooseUserRole(ctx context.Context, userID, role string) error
	ActivateSubscription(ctx context.Context, userID string) error
}

type PharmacyStore interface {
	CreatePharmacy(ctx context.Context, pharmacy *model.Pharmacy) error
	GetPharmacy(ctx context.Context, pharmacyID string) (*model.Pharmacy, error)
}

type MembershipStore interface {
	CreateMembership(ctx context.Context, membership *model.Membership) error
	FindMembership(ctx context.Context, userID, pharmacyID string) (*model.Membership, error)
	ListMembershipsByUser(ctx context.Context, userID string) ([]model.Membership, error)
}

type InvitationStore interface {
	// CreateInvitation fails with ErrAlreadyExists while a pending invitation
	// for the same (pharmacy, email) pair exists.
	CreateInvitation(ctx context.Context, invitation *model.Invitation) error
	ListPendingInvitationsByEmail(ctx context.Context, email string) ([]model.Invitation, error)
	ListPendingInvitationsByPharmacy(ctx context.Context, pharmacyID string) ([]model.Invitation, error)
	// AcceptInvitation marks the invitation accepted and creates the membership
	// when none exists yet. ErrNotFound when the invitation is not pending or
	// is addressed to a different email.
	AcceptInvitation(ctx context.Context, invitationID, email, userID string) (*model.Invitation, *model.Membership, error)
	DeclineInvitation(ctx context.Context, invitationID, email string) (*model.Invitation, error)
}

// OrderPatch carries the allow-listed mutable order fields; nil means "leave
// untouched". Values must be validated before they reach the store.
type OrderPatch struct {
	PatientName *string
	Phone       *string
	ProductName *string
	ArrivalDate *string
	Urgency     *string
	Status      *string
}

type OrderStore interface {
	CreateOrder(ctx context.Context, order *model.Order) error
	ListOrders(ctx context.Context, pharmacyID string) ([]model.Order, error)
	GetOrder(ctx context.Context, orderID, pharmacyID string) (*model.Order, error)
	UpdateOrder(ctx context.Context, orderID, pharmacyID string, patch OrderPatch) (*model.Order, error)
	AppendComment(ctx context.Context, orderID, pharmacyID string, comment model.OrderComment) (*model.Order, error)
}

// FirestoreStore implements every store interface on one Firestore client.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

const (
	usersCollection       = "Users"
	pharmaciesCollection  = "Pharmacies"
	membershipsCollection = "Memberships"
	invitationsCollection = "Invitations"
	ordersCollection      = "Orders"
)

// mapError translates Firestore RPC codes to the store sentinels.
func mapError(err error) error {
	switch status.Code(err) {
	case codes.NotFound:
		return ErrNotFound
	case codes.AlreadyExists:
		return ErrAlreadyExists
	}
	return err
}
