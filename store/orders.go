package store

import (
	"context"

	"cloud.google.com/go/firestore"

	"pharmapp/model"
)

func (s *FirestoreStore) CreateOrder(ctx context.Context, order *model.Order) error {
	_, err := s.client.Collection(ordersCollection).Doc(order.OrderID).Create(ctx, order)
	return mapError(err)
}

func (s *FirestoreStore) ListOrders(ctx context.Context, pharmacyID string) ([]model.Order, error) {
	query := s.client.Collection(ordersCollection).
		Where("pharmacyid", "==", pharmacyID).
		OrderBy("createdat", firestore.Desc)
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, mapError(err)
	}

	orders := make([]model.Order, 0, len(docs))
	for _, doc := range docs {
		var order model.Order
		if err := doc.DataTo(&order); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// GetOrder treats an order from another pharmacy exactly like a missing one.
func (s *FirestoreStore) GetOrder(ctx context.Context, orderID, pharmacyID string) (*model.Order, error) {
	doc, err := s.client.Collection(ordersCollection).Doc(orderID).Get(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	var order model.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, err
	}
	if order.PharmacyID != pharmacyID {
		return nil, ErrNotFound
	}
	return &order, nil
}

func (s *FirestoreStore) UpdateOrder(ctx context.Context, orderID, pharmacyID string, patch OrderPatch) (*model.Order, error) {
	ref := s.client.Collection(ordersCollection).Doc(orderID)

	var order model.Order
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			return err
		}
		if err := doc.DataTo(&order); err != nil {
			return err
		}
		if order.PharmacyID != pharmacyID {
			return ErrNotFound
		}

		if patch.PatientName != nil {
			order.PatientName = *patch.PatientName
		}
		if patch.Phone != nil {
			order.Phone = *patch.Phone
		}
		if patch.ProductName != nil {
			order.ProductName = *patch.ProductName
		}
		if patch.ArrivalDate != nil {
			order.ArrivalDate = *patch.ArrivalDate
		}
		if patch.Urgency != nil {
			order.Urgency = *patch.Urgency
		}
		if patch.Status != nil {
			order.Status = *patch.Status
		}

		return tx.Set(ref, &order)
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &order, nil
}

// AppendComment adds to the embedded comment list in a read-modify-write
// transaction; prior comments are never touched.
func (s *FirestoreStore) AppendComment(ctx context.Context, orderID, pharmacyID string, comment model.OrderComment) (*model.Order, error) {
	ref := s.client.Collection(ordersCollection).Doc(orderID)

	var order model.Order
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			return err
		}
		if err := doc.DataTo(&order); err != nil {
			return err
		}
		if order.PharmacyID != pharmacyID {
			return ErrNotFound
		}

		order.Comments = append(order.Comments, comment)
		return tx.Set(ref, &order)
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &order, nil
}
