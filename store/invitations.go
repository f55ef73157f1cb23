package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"pharmapp/model"
)

// CreateInvitation checks for an existing pending invitation and creates the
// new one inside a single transaction, so two concurrent invites for the same
// (pharmacy, email) pair cannot both land.
func (s *FirestoreStore) CreateInvitation(ctx context.Context, invitation *model.Invitation) error {
	newRef := s.client.Collection(invitationsCollection).Doc(invitation.InvitationID)

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		query := s.client.Collection(invitationsCollection).
			Where("pharmacyid", "==", invitation.PharmacyID).
			Where("email", "==", invitation.Email).
			Where("status", "==", model.InvitationPending).
			Limit(1)

		iter := tx.Documents(query)
		defer iter.Stop()

		if _, err := iter.Next(); err != iterator.Done {
			if err != nil {
				return err
			}
			return ErrAlreadyExists
		}

		return tx.Create(newRef, invitation)
	})
	return mapError(err)
}

func (s *FirestoreStore) ListPendingInvitationsByEmail(ctx context.Context, email string) ([]model.Invitation, error) {
	query := s.client.Collection(invitationsCollection).
		Where("email", "==", email).
		Where("status", "==", model.InvitationPending).
		OrderBy("createdat", firestore.Desc)
	return collectInvitations(ctx, query)
}

func (s *FirestoreStore) ListPendingInvitationsByPharmacy(ctx context.Context, pharmacyID string) ([]model.Invitation, error) {
	query := s.client.Collection(invitationsCollection).
		Where("pharmacyid", "==", pharmacyID).
		Where("status", "==", model.InvitationPending).
		OrderBy("createdat", firestore.Desc)
	return collectInvitations(ctx, query)
}

func collectInvitations(ctx context.Context, query firestore.Query) ([]model.Invitation, error) {
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, mapError(err)
	}

	invitations := make([]model.Invitation, 0, len(docs))
	for _, doc := range docs {
		var invitation model.Invitation
		if err := doc.DataTo(&invitation); err != nil {
			return nil, err
		}
		invitations = append(invitations, invitation)
	}
	return invitations, nil
}

// AcceptInvitation flips the invitation to accepted and, in the same
// transaction, creates the membership when the (user, pharmacy) pair has none
// yet. An invitation that is not pending, or is addressed to a different
// email, reports ErrNotFound.
func (s *FirestoreStore) AcceptInvitation(ctx context.Context, invitationID, email, userID string) (*model.Invitation, *model.Membership, error) {
	invRef := s.client.Collection(invitationsCollection).Doc(invitationID)

	var invitation model.Invitation
	var membership model.Membership

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(invRef)
		if err != nil {
			return err
		}
		if err := doc.DataTo(&invitation); err != nil {
			return err
		}
		if invitation.Status != model.InvitationPending || invitation.Email != email {
			return ErrNotFound
		}

		memID := model.MembershipDocID(userID, invitation.PharmacyID)
		memRef := s.client.Collection(membershipsCollection).Doc(memID)
		memDoc, err := tx.Get(memRef)

		now := time.Now()
		switch {
		case err == nil:
			// Membership already exists; keep it as-is.
			if err := memDoc.DataTo(&membership); err != nil {
				return err
			}
		case mapError(err) == ErrNotFound:
			membership = model.Membership{
				MembershipID: memID,
				UserID:       userID,
				PharmacyID:   invitation.PharmacyID,
				Role:         invitation.Role,
				CreatedAt:    now,
			}
			if err := tx.Create(memRef, &membership); err != nil {
				return err
			}
		default:
			return err
		}

		invitation.Status = model.InvitationAccepted
		invitation.AcceptedAt = &now
		return tx.Set(invRef, &invitation)
	})
	if err != nil {
		return nil, nil, mapError(err)
	}
	return &invitation, &membership, nil
}

func (s *FirestoreStore) DeclineInvitation(ctx context.Context, invitationID, email string) (*model.Invitation, error) {
	invRef := s.client.Collection(invitationsCollection).Doc(invitationID)

	var invitation model.Invitation
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(invRef)
		if err != nil {
			return err
		}
		if err := doc.DataTo(&invitation); err != nil {
			return err
		}
		if invitation.Status != model.InvitationPending || invitation.Email != email {
			return ErrNotFound
		}

		invitation.Status = model.InvitationDeclined
		return tx.Set(invRef, &invitation)
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &invitation, nil
}
