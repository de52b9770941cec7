package models

import (
	"time"
)

// Contact représente une demande de contact dans la base de données
// @Description Modèle complet d'une demande de contact
// @Scheme Contact
type Contact struct {
	ID           string    `json:"id" gorm:"primaryKey;default:gen_random_uuid()"`
	Name         string    `json:"name" binding:"required,min=2"`
	Email        string    `json:"email" binding:"required,email"`
	Phone        string    `json:"phone,omitempty"`
	Budget       string    `json:"budget,omitempty"`
	ProjectTypes []string  `json:"projectTypes,omitempty" gorm:"serializer:json"`
	Message      string    `json:"message" gorm:"type:text" binding:"required,min=10"`
	Newsletter   bool      `json:"newsletter"`
	CreatedAt    time.Time `json:"createdAt" gorm:"default:CURRENT_TIMESTAMP" swaggerignore:"true"`
}

func (Contact) TableName() string {
	return "contacts"
}

// ContactCreate modèle pour créer une demande de contact
// @Description modèle pour créer une demande de contact
type ContactCreate struct {
	Name         string   `json:"name" binding:"required,min=2" example:"Jean Dupont"`
	Email        string   `json:"email" binding:"required,email" example:"jean.dupont@exemple.fr"`
	Phone        string   `json:"phone" example:"06 12 34 56 78"`
	Budget       string   `json:"budget" example:"3000-5000"`
	ProjectTypes []string `json:"projectTypes" example:"site vitrine,refonte"`
	Message      string   `json:"message" binding:"required,min=10" example:"Bonjour, je souhaite un devis pour mon site."`
	Newsletter   bool     `json:"newsletter" example:"true"`
}
