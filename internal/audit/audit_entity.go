package audit

import (
	"time"

	"github.com/google/uuid"
)

const (
	KindEmployeeStatusChanged = "EMPLOYEE_STATUS_CHANGED"
	KindCreditsAllocated      = "CREDITS_ALLOCATED"
)

type Entry struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID int64     `gorm:"not null;index:idx_audit_company_time"`
	EventID   string    `gorm:"type:varchar(64);not null;uniqueIndex:uq_audit_event"`
	Kind      string    `gorm:"type:varchar(40);not null;index"`
	SubjectID string    `gorm:"type:varchar(64)"`
	ActorID   string    `gorm:"type:varchar(64);not null"`
	RequestID string    `gorm:"type:varchar(64)"`
	Summary   string    `gorm:"type:text;not null"`
	Payload   []byte    `gorm:"type:jsonb"`

	OccurredAt time.Time `gorm:"not null;index:idx_audit_company_time"`
	CreatedAt  time.Time
}

func (Entry) TableName() string { return "audit_entries" }
