package store

import (
	"context"

	"cloud.google.com/go/firestore"

	"pharmapp/model"
)

// CreateMembership relies on the deterministic document ID: a second create for
// the same (user, pharmacy) pair fails with ErrAlreadyExists instead of racing
// into a duplicate row.
func (s *FirestoreStore) CreateMembership(ctx context.Context, membership *model.Membership) error {
	docID := model.MembershipDocID(membership.UserID, membership.PharmacyID)
	membership.MembershipID = docID
	_, err := s.client.Collection(membershipsCollection).Doc(docID).Create(ctx, membership)
	return mapError(err)
}

func (s *FirestoreStore) FindMembership(ctx context.Context, userID, pharmacyID string) (*model.Membership, error) {
	docID := model.MembershipDocID(userID, pharmacyID)
	doc, err := s.client.Collection(membershipsCollection).Doc(docID).Get(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	var membership model.Membership
	if err := doc.DataTo(&membership); err != nil {
		return nil, err
	}
	return &membership, nil
}

func (s *FirestoreStore) ListMembershipsByUser(ctx context.Context, userID string) ([]model.Membership, error) {
	query := s.client.Collection(membershipsCollection).
		Where("userid", "==", userID).
		OrderBy("createdat", firestore.Asc)
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, mapError(err)
	}

	memberships := make([]model.Membership, 0, len(docs))
	for _, doc := range docs {
		var membership model.Membership
		if err := doc.DataTo(&membership); err != nil {
			return nil, err
		}
		memberships = append(memberships, membership)
	}
	return memberships, nil
}
