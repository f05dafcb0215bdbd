package models

import (
	"time"
)

type Identifier interface {
	GetId() int
}

// interface for dataloader result
type Data interface {
	Identifier
	GetDefault(int) Data
}

func (i Invoice) GetDefault(id int) Data {
	return Invoice{
		ID:        id,
		Status:    InvoiceStatusUnpaid,
		IssueDate: time.Now(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}
