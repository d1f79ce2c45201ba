package models

import "time"

// Wallet represents a user's balance in a single currency
type Wallet struct {
	ID        int32     `json:"id" example:"1" description:"Unique identifier for the wallet"`
	UserID    int32     `json:"user_id" example:"1" description:"Associated user ID"`
	Balance   float64   `json:"balance" example:"100" description:"Current balance"`
	Currency  string    `json:"currency" example:"USD" description:"Currency code (e.g., USD, EUR)"`
	CreatedAt time.Time `json:"created_at" example:"2025-06-01T12:00:00Z" description:"Wallet creation timestamp"`
}

// TransferRequest moves an amount between two wallets. The idempotency key is
// carried through unchanged; it is not used for deduplication. Zero is a
// legal id and amount, so required fields are pointers.
type TransferRequest struct {
	FromWalletID   *int32   `json:"from_wallet_id" binding:"required" example:"1" description:"Source wallet ID"`
	ToWalletID     *int32   `json:"to_wallet_id" binding:"required" example:"2" description:"Destination wallet ID"`
	Amount         *float64 `json:"amount" binding:"required" example:"25.5" description:"Amount to transfer"`
	IdempotencyKey *string  `json:"idempotency_key" example:"7f1c2e3a-transfer-1" description:"Optional idempotency key"`
}
