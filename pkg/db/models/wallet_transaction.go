package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/enums"
)

// WalletTransaction is one entry in the append-only guide earnings ledger.
type WalletTransaction struct {
	ID        uuid.UUID                   `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	GuideID   uuid.UUID                   `gorm:"column:guide_id;type:uuid;not null;index"`
	Type      enums.WalletTransactionType `gorm:"column:type;type:text;not null"`
	Amount    decimal.Decimal             `gorm:"column:amount;type:numeric(12,2);not null"`
	Reference *string                     `gorm:"column:reference"`
	CreatedAt time.Time                   `gorm:"column:created_at;autoCreateTime;index"`
}

// TableName overrides the default pluralization.
func (WalletTransaction) TableName() string { return "wallet_transactions" }
