package payout

import "time"

// PageSize is the fixed number of payout records per page.
const PageSize = 3

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusPaid     Status = "paid"
)

type UserType string

const (
	UserTypeAffiliate UserType = "affiliate"
	UserTypePartner   UserType = "partner"
)

type PayoutDocument struct {
	Id          string     `bson:"_id"`
	UserId      string     `bson:"userId"`
	Amount      float64    `bson:"amount"`
	Status      string     `bson:"status"`
	UserType    string     `bson:"userType"`
	Created     time.Time  `bson:"created"`
	PaymentDate *time.Time `bson:"paymentDate,omitempty"`
}

type UserDocument struct {
	Id    string `bson:"_id"`
	Email string `bson:"email"`
	Role  string `bson:"role"`
}

// WalletBalance is derived per request from the owning user's payouts,
// partitioned by whether paymentDate has passed. It is never persisted.
type WalletBalance struct {
	AvailableBalance float64
	PendingBalance   float64
}

type PayoutItem struct {
	Id                string     `json:"id"`
	UserId            string     `json:"userId"`
	Amount            float64    `json:"amount"`
	Status            string     `json:"status"`
	UserType          string     `json:"userType"`
	Created           time.Time  `json:"created"`
	PaymentDate       *time.Time `json:"paymentDate"`
	AvailableBalance  float64    `json:"availableBalance"`
	PendingBalance    float64    `json:"pendingBalance"`
	BalanceIncomplete bool       `json:"balanceIncomplete"`
}

type PageResult struct {
	Page       int          `json:"page"`
	PageSize   int          `json:"pageSize"`
	TotalPages int          `json:"totalPages"`
	TotalDocs  int64        `json:"totalDocs"`
	Results    []PayoutItem `json:"results"`
}
