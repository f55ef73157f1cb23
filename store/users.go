package store

import (
	"context"

	"cloud.google.com/go/firestore"

	"pharmapp/model"
)

func (s *FirestoreStore) GetUserByID(ctx context.Context, userID string) (*model.User, error) {
	doc, err := s.client.Collection(usersCollection).Doc(userID).Get(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	var user model.User
	if err := doc.DataTo(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *FirestoreStore) FindUserByGoogleID(ctx context.Context, googleID string) (*model.User, error) {
	query := s.client.Collection(usersCollection).Where("googleid", "==", googleID).Limit(1)
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, mapError(err)
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}

	var user model.User
	if err := docs[0].DataTo(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *FirestoreStore) CreateUser(ctx context.Context, user *model.User) error {
	_, err := s.client.Collection(usersCollection).Doc(user.UserID).Create(ctx, user)
	return mapError(err)
}

func (s *FirestoreStore) ChooseUserRole(ctx context.Context, userID, role string) error {
	_, err := s.client.Collection(usersCollection).Doc(userID).Update(ctx, []firestore.Update{
		{Path: "primaryrole", Value: role},
		{Path: "onboardingcompleted", Value: true},
	})
	return mapError(err)
}

func (s *FirestoreStore) ActivateSubscription(ctx context.Context, userID string) error {
	_, err := s.client.Collection(usersCollection).Doc(userID).Update(ctx, []firestore.Update{
		{Path: "subscriptionactive", Value: true},
	})
	return mapError(err)
}
