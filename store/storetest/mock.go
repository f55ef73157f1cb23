// Package storetest provides testify mocks for the store interfaces.
package storetest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pharmapp/model"
	"pharmapp/store"
)

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetUserByID(ctx context.Context, userID string) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserStore) FindUserByGoogleID(ctx context.Context, googleID string) (*model.User, error) {
	args := m.Called(ctx, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserStore) CreateUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) ChooseUserRole(ctx context.Context, userID, role string) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

func (m *MockUserStore) ActivateSubscription(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockPharmacyStore struct {
	mock.Mock
}

func (m *MockPharmacyStore) CreatePharmacy(ctx context.Context, pharmacy *model.Pharmacy) error {
	args := m.Called(ctx, pharmacy)
	return args.Error(0)
}

func (m *MockPharmacyStore) GetPharmacy(ctx context.Context, pharmacyID string) (*model.Pharmacy, error) {
	args := m.Called(ctx, pharmacyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pharmacy), args.Error(1)
}

type MockMembershipStore struct {
	mock.Mock
}

func (m *MockMembershipStore) CreateMembership(ctx context.Context, membership *model.Membership) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockMembershipStore) FindMembership(ctx context.Context, userID, pharmacyID string) (*model.Membership, error) {
	args := m.Called(ctx, userID, pharmacyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Membership), args.Error(1)
}

func (m *MockMembershipStore) ListMembershipsByUser(ctx context.Context, userID string) ([]model.Membership, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Membership), args.Error(1)
}

type MockInvitationStore struct {
	mock.Mock
}

func (m *MockInvitationStore) CreateInvitation(ctx context.Context, invitation *model.Invitation) error {
	args := m.Called(ctx, invitation)
	return args.Error(0)
}

func (m *MockInvitationStore) ListPendingInvitationsByEmail(ctx context.Context, email string) ([]model.Invitation, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Invitation), args.Error(1)
}

func (m *MockInvitationStore) ListPendingInvitationsByPharmacy(ctx context.Context, pharmacyID string) ([]model.Invitation, error) {
	args := m.Called(ctx, pharmacyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Invitation), args.Error(1)
}

func (m *MockInvitationStore) AcceptInvitation(ctx context.Context, invitationID, email, userID string) (*model.Invitation, *model.Membership, error) {
	args := m.Called(ctx, invitationID, email, userID)
	var invitation *model.Invitation
	var membership *model.Membership
	if args.Get(0) != nil {
		invitation = args.Get(0).(*model.Invitation)
	}
	if args.Get(1) != nil {
		membership = args.Get(1).(*model.Membership)
	}
	return invitation, membership, args.Error(2)
}

func (m *MockInvitationStore) DeclineInvitation(ctx context.Context, invitationID, email string) (*model.Invitation, error) {
	args := m.Called(ctx, invitationID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invitation), args.Error(1)
}

type MockOrderStore struct {
	mock.Mock
}

func (m *MockOrderStore) CreateOrder(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderStore) ListOrders(ctx context.Context, pharmacyID string) ([]model.Order, error) {
	args := m.Called(ctx, pharmacyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderStore) GetOrder(ctx context.Context, orderID, pharmacyID string) (*model.Order, error) {
	args := m.Called(ctx, orderID, pharmacyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderStore) UpdateOrder(ctx context.Context, orderID, pharmacyID string, patch store.OrderPatch) (*model.Order, error) {
	args := m.Called(ctx, orderID, pharmacyID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderStore) AppendComment(ctx context.Context, orderID, pharmacyID string, comment model.OrderComment) (*model.Order, error) {
	args := m.Called(ctx, orderID, pharmacyID, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}
