// Package client is a typed client for the Pharmacy Manager REST API plus the
// session state the browser frontend keeps between reloads. Nothing here is
// authoritative: every cached list can be rebuilt from the backend.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"pharmapp/dto"
)

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// APIError carries the backend's {"error": ...} payload and status code.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var payload struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		if payload.Error == "" {
			payload.Error = resp.Status
		}
		return &APIError{StatusCode: resp.StatusCode, Message: payload.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) Bootstrap(ctx context.Context) (*dto.BootstrapResponse, error) {
	var out dto.BootstrapResponse
	if err := c.do(ctx, http.MethodGet, "/api/session/bootstrap", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ChooseRole(ctx context.Context, role string) (*dto.UserResponse, string, error) {
	var out struct {
		User     dto.UserResponse `json:"user"`
		NextStep string           `json:"nextStep"`
	}
	err := c.do(ctx, http.MethodPost, "/api/onboarding/choose-role", dto.ChooseRoleRequest{Role: role}, &out)
	if err != nil {
		return nil, "", err
	}
	return &out.User, out.NextStep, nil
}

func (c *Client) ActivateSubscription(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/onboarding/activate-subscription", nil, nil)
}

func (c *Client) CreatePharmacy(ctx context.Context, name string) (*dto.PharmacyResponse, error) {
	var out struct {
		Pharmacy dto.PharmacyResponse `json:"pharmacy"`
	}
	err := c.do(ctx, http.MethodPost, "/api/pharmacy/create", dto.CreatePharmacyRequest{Name: name}, &out)
	if err != nil {
		return nil, err
	}
	return &out.Pharmacy, nil
}

func (c *Client) Invite(ctx context.Context, pharmacyID, email, role string) (*dto.InvitationResponse, error) {
	var out struct {
		Invitation dto.InvitationResponse `json:"invitation"`
	}
	err := c.do(ctx, http.MethodPost, "/api/invitations/invite", dto.InviteRequest{
		PharmacyID: pharmacyID,
		Email:      email,
		Role:       role,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out.Invitation, nil
}

func (c *Client) PendingInvitations(ctx context.Context) ([]dto.InvitationResponse, error) {
	var out struct {
		Invitations []dto.InvitationResponse `json:"invitations"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/invitations/pending", nil, &out); err != nil {
		return nil, err
	}
	return out.Invitations, nil
}

func (c *Client) WorkspaceInvitations(ctx context.Context, pharmacyID string) ([]dto.InvitationResponse, error) {
	var out struct {
		Invitations []dto.InvitationResponse `json:"invitations"`
	}
	path := "/api/invitations/workspace?pharmacyId=" + url.QueryEscape(pharmacyID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Invitations, nil
}

func (c *Client) AcceptInvitation(ctx context.Context, invitationID string) (*dto.MembershipResponse, error) {
	var out struct {
		Membership dto.MembershipResponse `json:"membership"`
	}
	err := c.do(ctx, http.MethodPost, "/api/invitations/accept", dto.InvitationActionRequest{InvitationID: invitationID}, &out)
	if err != nil {
		return nil, err
	}
	return &out.Membership, nil
}

func (c *Client) DeclineInvitation(ctx context.Context, invitationID string) error {
	return c.do(ctx, http.MethodPost, "/api/invitations/decline", dto.InvitationActionRequest{InvitationID: invitationID}, nil)
}

func (c *Client) ListOrders(ctx context.Context, pharmacyID string) ([]dto.OrderResponse, error) {
	var out struct {
		Orders []dto.OrderResponse `json:"orders"`
	}
	path := "/api/orders?pharmacyId=" + url.QueryEscape(pharmacyID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

func (c *Client) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	var out struct {
		Order dto.OrderResponse `json:"order"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/orders", req, &out); err != nil {
		return nil, err
	}
	return &out.Order, nil
}

func (c *Client) UpdateOrder(ctx context.Context, orderID string, req dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	var out struct {
		Order dto.OrderResponse `json:"order"`
	}
	if err := c.do(ctx, http.MethodPatch, "/api/orders/"+url.PathEscape(orderID), req, &out); err != nil {
		return nil, err
	}
	return &out.Order, nil
}

func (c *Client) AddOrderComment(ctx context.Context, orderID, pharmacyID, text string) (*dto.OrderResponse, error) {
	var out struct {
		Order dto.OrderResponse `json:"order"`
	}
	path := "/api/orders/" + url.PathEscape(orderID) + "/comments"
	err := c.do(ctx, http.MethodPost, path, dto.AddCommentRequest{PharmacyID: pharmacyID, Text: text}, &out)
	if err != nil {
		return nil, err
	}
	return &out.Order, nil
}
