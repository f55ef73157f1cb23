package dto

type CreateOrderRequest struct {
	PharmacyID  string `json:"pharmacyId"`
	PatientName string `json:"patientName" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	ProductName string `json:"productName" binding:"required"`
	ArrivalDate string `json:"arrivalDate" binding:"required"`
	Urgency     string `json:"urgency" binding:"required"`
	Comment     string `json:"comment"`
}

// UpdateOrderRequest is a merge patch: nil pointers mean "leave untouched".
// There is no status-less replace; unknown body keys are never applied.
type UpdateOrderRequest struct {
	PharmacyID  string  `json:"pharmacyId"`
	PatientName *string `json:"patientName"`
	Phone       *string `json:"phone"`
	ProductName *string `json:"productName"`
	ArrivalDate *string `json:"arrivalDate"`
	Urgency     *string `json:"urgency"`
	Status      *string `json:"status"`
}

type AddCommentRequest struct {
	PharmacyID string `json:"pharmacyId"`
	Text       string `json:"text" binding:"required"`
}

type OrderResponse struct {
	ID          string            `json:"id"`
	PharmacyID  string            `json:"pharmacyId"`
	PatientName string            `json:"patientName"`
	Phone       string            `json:"phone"`
	ProductName string            `json:"productName"`
	ArrivalDate string            `json:"arrivalDate"`
	Urgency     string            `json:"urgency"`
	Status      string            `json:"status"`
	CreatedAt   string            `json:"createdAt"`
	Comments    []CommentResponse `json:"comments"`
}

type CommentResponse struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
}
