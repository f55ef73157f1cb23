package dto

import (
	"time"

	"pharmapp/model"
)

func UserResponseFrom(user *model.User) UserResponse {
	return UserResponse{
		ID:                  user.UserID,
		GoogleID:            user.GoogleID,
		Email:               user.Email,
		DisplayName:         user.DisplayName,
		Picture:             user.Picture,
		OnboardingCompleted: user.OnboardingCompleted,
		PrimaryRole:         user.PrimaryRole,
		SubscriptionActive:  user.SubscriptionActive,
	}
}

func PharmacyResponseFrom(pharmacy *model.Pharmacy) PharmacyResponse {
	return PharmacyResponse{
		ID:                 pharmacy.PharmacyID,
		Name:               pharmacy.Name,
		OwnerUserID:        pharmacy.OwnerUserID,
		SubscriptionStatus: pharmacy.SubscriptionStatus,
	}
}

func OrderResponseFrom(order *model.Order) OrderResponse {
	comments := make([]CommentResponse, 0, len(order.Comments))
	for _, comment := range order.Comments {
		comments = append(comments, CommentResponse{
			ID:        comment.CommentID,
			Author:    comment.AuthorName,
			Text:      comment.Text,
			CreatedAt: comment.CreatedAt.Format(time.RFC3339),
		})
	}
	return OrderResponse{
		ID:          order.OrderID,
		PharmacyID:  order.PharmacyID,
		PatientName: order.PatientName,
		Phone:       order.Phone,
		ProductName: order.ProductName,
		ArrivalDate: order.ArrivalDate,
		Urgency:     order.Urgency,
		Status:      order.Status,
		CreatedAt:   order.CreatedAt.Format(time.RFC3339),
		Comments:    comments,
	}
}

func InvitationResponseFrom(invitation *model.Invitation) InvitationResponse {
	return InvitationResponse{
		ID:         invitation.InvitationID,
		PharmacyID: invitation.PharmacyID,
		Email:      invitation.Email,
		Role:       invitation.Role,
		InvitedBy:  invitation.InvitedByUserID,
		Status:     invitation.Status,
		CreatedAt:  invitation.CreatedAt.Format(time.RFC3339),
	}
}
