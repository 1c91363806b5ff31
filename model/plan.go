package model

import "time"

const (
	PlanFree     = "Free"
	PlanBasic    = "Basic"
	PlanStandard = "Standard"
	PlanPremium  = "Premium"
)

type Plan struct {
	Title      string   `json:"title"`
	Price      string   `json:"price"`
	PriceCents int64    `json:"priceCents"`
	Features   []string `json:"features"`
	IsPopular  bool     `json:"isPopular"`
}

func (p Plan) IsPaid() bool {
	return p.PriceCents > 0
}

type ActivatePlanReq struct {
	Plan          string `json:"plan"`
	PaymentRef    string `json:"paymentRef"`
	WalletAddress string `json:"walletAddress"`
}

// PlanActivation is a row of the postgres plan ledger.
type PlanActivation struct {
	Id            int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserId        string    `gorm:"column:userId;index" json:"userId"`
	Plan          string    `gorm:"column:plan" json:"plan"`
	PriceCents    int64     `gorm:"column:priceCents" json:"priceCents"`
	PaymentRef    string    `gorm:"column:paymentRef" json:"paymentRef"`
	WalletAddress string    `gorm:"column:walletAddress" json:"walletAddress"`
	CreatedAt     time.Time `gorm:"column:createdAt" json:"createdAt"`
}

func (PlanActivation) TableName() string {
	return "PlanActivation"
}
