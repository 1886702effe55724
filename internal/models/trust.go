package models

import (
	"time"

	"github.com/google/uuid"
)

// TrustAccount holds a SPAC's escrowed IPO proceeds. Balance is maintained by
// the trust service as transactions are recorded.
type TrustAccount struct {
	ID            uuid.UUID `json:"id" db:"id"`
	SPACID        uuid.UUID `json:"spac_id" db:"spac_id"`
	Trustee       string    `json:"trustee" db:"trustee"`
	Balance       float64   `json:"balance" db:"balance"`
	PerShareValue float64   `json:"per_share_value" db:"per_share_value"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// TrustTransaction is one movement on a trust account. Redemptions carry a
// negative amount.
type TrustTransaction struct {
	ID         uuid.UUID `json:"id" db:"id"`
	AccountID  uuid.UUID `json:"account_id" db:"account_id"`
	TxType     string    `json:"tx_type" db:"tx_type"`
	Amount     float64   `json:"amount" db:"amount"`
	Memo       string    `json:"memo" db:"memo"`
	OccurredAt time.Time `json:"occurred_at" db:"occurred_at"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Trust transaction types
const (
	TrustDeposit    = "DEPOSIT"
	TrustInterest   = "INTEREST"
	TrustRedemption = "REDEMPTION"
	TrustRelease    = "RELEASE"
)

// KnownTrustTxType reports whether a string is an enumerated transaction type.
func KnownTrustTxType(txType string) bool {
	switch txType {
	case TrustDeposit, TrustInterest, TrustRedemption, TrustRelease:
		return true
	}
	return false
}
