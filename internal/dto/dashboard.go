package dto

// RepaymentRequest repays part of an approved loan
type RepaymentRequest struct {
	LoanID string `json:"loanId" validate:"required"`
	Amount string `json:"amount" validate:"required,positive_amount"`
}

// RepaymentBody is the body sent to POST /repay/repay/{loanId}
type RepaymentBody struct {
	Amount float64 `json:"amount"`
}

// TransferRequest moves money between two accounts
type TransferRequest struct {
	SenderAccount   string  `json:"senderAccount" validate:"required"`
	ReceiverAccount string  `json:"receiverAccount" validate:"required"`
	Amount          float64 `json:"amount" validate:"required,positive_amount"`
	Password        string  `json:"password" validate:"required"`
}

// LoanEligibilityRequest is the loan check form. Username is filled from the
// session subject when omitted.
type LoanEligibilityRequest struct {
	Username        string  `json:"username"`
	Income          float64 `json:"income" validate:"required,positive_amount"`
	CreditScore     int     `json:"creditScore" validate:"required,credit_score"`
	RequestedAmount float64 `json:"requestedAmount" validate:"required,positive_amount"`
	Adhar           string  `json:"adhar" validate:"required,aadhaar_number"`
	Pan             string  `json:"pan" validate:"required,pan_number"`
}

// MaxIncomeMultiple bounds the requested loan amount relative to income
const MaxIncomeMultiple = 2
