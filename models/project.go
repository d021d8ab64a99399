package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EvaluationThreshold is the number of accepted evaluations that flips a
// project to evaluated and locks its structural fields.
const EvaluationThreshold = 3

// Project represents a submission tied to one award and one or more authors
type Project struct {
	ID                string    `json:"id" gorm:"primaryKey;type:uuid"`
	Title             string    `json:"title" gorm:"not null"`
	ThematicArea      string    `json:"thematicArea" gorm:"not null"`
	Abstract          string    `json:"abstract" gorm:"not null"`
	SubmittedAt       time.Time `json:"submittedAt" gorm:"not null"`
	Evaluated         bool      `json:"evaluated" gorm:"default:false"`
	Winner            bool      `json:"winner" gorm:"default:false"`
	PrincipalAuthorID string    `json:"principalAuthorId" gorm:"type:uuid;not null;index"`
	AwardID           string    `json:"awardId" gorm:"type:uuid;not null;index"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Award       Award        `json:"award,omitempty" gorm:"foreignKey:AwardID"`
	Authors     []User       `json:"authors,omitempty" gorm:"many2many:project_authors;"`
	Evaluations []Evaluation `json:"evaluations,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// HasAuthor reports whether the given user is in the project's author set.
// The Authors relation must be loaded.
func (p *Project) HasAuthor(userID string) bool {
	for _, author := range p.Authors {
		if author.ID == userID {
			return true
		}
	}
	return false
}
