package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role represents user role types
type Role string

const (
	RoleAuthor    Role = "author"
	RoleEvaluator Role = "evaluator"
	RoleAdmin     Role = "admin"
)

// Valid reports whether the role is one of the known variants.
func (r Role) Valid() bool {
	switch r {
	case RoleAuthor, RoleEvaluator, RoleAdmin:
		return true
	}
	return false
}

// User represents a portal user: an author, an evaluator or an admin
type User struct {
	ID        string `json:"id" gorm:"primaryKey;type:uuid"`
	Name      string `json:"name" gorm:"not null"`
	Email     string `json:"email" gorm:"uniqueIndex;not null"`
	CPF       string `json:"cpf" gorm:"uniqueIndex;not null"`
	BirthDate string `json:"birthDate" gorm:"not null"`
	Phone     string `json:"phone" gorm:"not null"`
	Country   string `json:"country" gorm:"not null"`
	City      string `json:"city" gorm:"not null"`
	State     string `json:"state" gorm:"not null"`
	Street    string `json:"street" gorm:"default:null"`
	Avenue    string `json:"avenue" gorm:"default:null"`
	Lot       string `json:"lot" gorm:"default:null"`
	Number    string `json:"number" gorm:"default:null"`
	Password  string `json:"-" gorm:"not null"` // Password is not exposed in JSON
	Role      Role   `json:"role" gorm:"type:varchar(10);default:'author'"`
	Specialty string `json:"specialty" gorm:"default:null"` // required when role = evaluator

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Projects    []Project    `json:"projects,omitempty" gorm:"many2many:project_authors;"`
	Evaluations []Evaluation `json:"evaluations,omitempty" gorm:"foreignKey:EvaluatorID"`
	Awards      []Award      `json:"awards,omitempty" gorm:"foreignKey:CreatedByID"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
