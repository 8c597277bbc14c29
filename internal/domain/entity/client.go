package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client represents a billable customer of one of the user's companies
type Client struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID           uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name             string         `gorm:"size:255" json:"name"`
	ContactFirstname string         `gorm:"size:255" json:"contact_firstname"`
	ContactLastname  string         `gorm:"size:255" json:"contact_lastname"`
	Address          string         `gorm:"size:255" json:"address"`
	PostalCode       string         `gorm:"size:20" json:"postal_code"`
	City             string         `gorm:"size:100" json:"city"`
	Country          string         `gorm:"size:100" json:"country"`
	Email            *string        `gorm:"size:255" json:"email,omitempty"`
	Phone            *string        `gorm:"size:50" json:"phone,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User      User       `gorm:"foreignKey:UserID" json:"-"`
	Documents []Document `gorm:"foreignKey:ClientID" json:"-"`
}

// DisplayName returns the client name, falling back to the contact's
// full name when the company name is blank
func (c *Client) DisplayName() string {
	if strings.TrimSpace(c.Name) != "" {
		return c.Name
	}
	return strings.TrimSpace(c.ContactFirstname + " " + c.ContactLastname)
}

// BeforeCreate generates a UUID before creating a new client
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Client model
func (Client) TableName() string {
	return "clients"
}
