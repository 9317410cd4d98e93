package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ComplianceStatus string

const (
	ComplianceStatusPending  ComplianceStatus = "pending"
	ComplianceStatusApproved ComplianceStatus = "approved"
	ComplianceStatusRejected ComplianceStatus = "rejected"
)

type Message struct {
	ID        uuid.UUID `json:"id"`
	Company   string    `json:"company"`
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"date"`
}

type Notice struct {
	Date time.Time `json:"date" yaml:"date"`
	Text string    `json:"text" yaml:"text"`
}

type AuctionStatus string

const AuctionStatusOpen AuctionStatus = "Open"

type Auction struct {
	Name      string          `json:"name" yaml:"name"`
	Reserve   decimal.Decimal `json:"reserve" yaml:"reserve"`
	Status    AuctionStatus   `json:"status" yaml:"status"`
	CreatedAt time.Time       `json:"created" yaml:"created"`
}

type ReportKind string

const (
	ReportKindProduction ReportKind = "production"
	ReportKindEmissions  ReportKind = "emissions"
	ReportKindCompliance ReportKind = "compliance"
)

var ReportKinds = []ReportKind{ReportKindProduction, ReportKindEmissions, ReportKindCompliance}

func (k ReportKind) Valid() bool {
	switch k {
	case ReportKindProduction, ReportKindEmissions, ReportKindCompliance:
		return true
	}
	return false
}

type Report struct {
	ID       uuid.UUID  `json:"id" yaml:"-"`
	Date     time.Time  `json:"date" yaml:"date"`
	Kind     ReportKind `json:"kind" yaml:"kind"`
	Type     string     `json:"type" yaml:"type"`
	URL      string     `json:"url" yaml:"url"`
	Filename string     `json:"filename,omitempty" yaml:"filename"`
}
