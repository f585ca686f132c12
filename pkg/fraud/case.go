// Package fraud is the case-verification core behind the bank fraud
// alert agent. Case records keep the camelCase field names of the
// original DB file so existing data stays readable.
package fraud

// Case statuses.
const (
	StatusPendingReview      = "pending_review"
	StatusConfirmedSafe      = "confirmed_safe"
	StatusConfirmedFraud     = "confirmed_fraud"
	StatusVerificationFailed = "verification_failed"
)

// Case is one flagged transaction under review.
type Case struct {
	ID                    string  `json:"id"`
	UserName              string  `json:"userName"`
	Status                string  `json:"status"`
	SecurityQuestion      string  `json:"securityQuestion"`
	SecurityAnswer        string  `json:"securityAnswer"`
	TransactionAmount     float64 `json:"transactionAmount"`
	TransactionCurrency   string  `json:"transactionCurrency"`
	TransactionName       string  `json:"transactionName"`
	TransactionTime       string  `json:"transactionTime"`
	TransactionLocation   string  `json:"transactionLocation"`
	CardEnding            string  `json:"cardEnding"`
	Outcome               string  `json:"outcome,omitempty"`
	VerificationTimestamp string  `json:"verificationTimestamp,omitempty"`
}

// DefaultCases returns the sample cases seeded on first run.
func DefaultCases() []Case {
	return []Case{
		{
			ID:                  "CASE-1001",
			UserName:            "Priya Sharma",
			Status:              StatusPendingReview,
			SecurityQuestion:    "What is the name of your first school?",
			SecurityAnswer:      "St. Xavier's",
			TransactionAmount:   24999,
			TransactionCurrency: "INR",
			TransactionName:     "Luxe Electronics Online",
			TransactionTime:     "2025-01-14T02:37:00",
			TransactionLocation: "Gurugram",
			CardEnding:          "4421",
		},
		{
			ID:                  "CASE-1002",
			UserName:            "Arjun Mehta",
			Status:              StatusPendingReview,
			SecurityQuestion:    "What is your mother's maiden name?",
			SecurityAnswer:      "Kapoor",
			TransactionAmount:   8750,
			TransactionCurrency: "INR",
			TransactionName:     "QuickCab Rides",
			TransactionTime:     "2025-01-13T23:12:00",
			TransactionLocation: "Pune",
			CardEnding:          "7710",
		},
	}
}
