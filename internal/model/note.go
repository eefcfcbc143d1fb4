package model

import "time"

type ContactMethod string

const (
	ContactMeeting ContactMethod = "meeting"
	ContactCall    ContactMethod = "call"
	ContactEmail   ContactMethod = "email"
	ContactOther   ContactMethod = "other"
)

// ContactNote is a counselor's log entry for one student contact.
//
// swagger:model ContactNote
type ContactNote struct {
	BaseModel
	StudentID   uint          `gorm:"not null;index" json:"studentId"`
	Counselor   string        `gorm:"size:100;not null" json:"counselor"`
	Method      ContactMethod `gorm:"size:20;default:'meeting'" json:"method"`
	Note        string        `gorm:"type:text" json:"note"`
	ContactedAt time.Time     `json:"contactedAt"`
}

func (ContactNote) TableName() string {
	return "contact_notes"
}
