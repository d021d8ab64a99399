package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// dateLayout is the wire format for schedule phase dates.
const dateLayout = "2006-01-02"

// SchedulePhase is one labeled [start, end] interval of an award's lifecycle.
type SchedulePhase struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label"`
}

// Contains reports whether instant t falls inside the phase. A phase with
// unparseable dates never contains anything.
func (p SchedulePhase) Contains(t time.Time) bool {
	start, err := time.Parse(dateLayout, p.Start)
	if err != nil {
		return false
	}
	end, err := time.Parse(dateLayout, p.End)
	if err != nil {
		return false
	}
	return !t.Before(start) && !t.After(end)
}

// Schedule custom type for JSON storage
type Schedule []SchedulePhase

func (s Schedule) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *Schedule) Scan(value interface{}) error {
	if value == nil {
		*s = Schedule{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, s)
}

// ActiveAt reports whether any phase of the schedule contains instant t.
// An empty schedule is never active.
func (s Schedule) ActiveAt(t time.Time) bool {
	for _, phase := range s {
		if phase.Contains(t) {
			return true
		}
	}
	return false
}

// Award represents a named competition cycle with a schedule and a creator
type Award struct {
	ID          string   `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string   `json:"name" gorm:"not null"`
	Description string   `json:"description" gorm:"not null"`
	Schedule    Schedule `json:"schedule" gorm:"type:jsonb;default:'[]'"`
	Year        int      `json:"year" gorm:"not null"`
	CreatedByID string   `json:"createdById" gorm:"type:uuid;index"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	CreatedBy User      `json:"createdBy,omitempty" gorm:"foreignKey:CreatedByID"`
	Projects  []Project `json:"projects,omitempty" gorm:"foreignKey:AwardID"`
}

func (a *Award) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
