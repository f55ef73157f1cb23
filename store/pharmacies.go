package store

import (
	"context"

	"pharmapp/model"
)

func (s *FirestoreStore) CreatePharmacy(ctx context.Context, pharmacy *model.Pharmacy) error {
	_, err := s.client.Collection(pharmaciesCollection).Doc(pharmacy.PharmacyID).Create(ctx, pharmacy)
	return mapError(err)
}

func (s *FirestoreStore) GetPharmacy(ctx context.Context, pharmacyID string) (*model.Pharmacy, error) {
	doc, err := s.client.Collection(pharmaciesCollection).Doc(pharmacyID).Get(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	var pharmacy model.Pharmacy
	if err := doc.DataTo(&pharmacy); err != nil {
		return nil, err
	}
	return &pharmacy, nil
}
