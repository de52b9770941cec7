package models

import (
	"time"
)

// NewsletterSubscriber représente un abonné à la newsletter
// @Description Modèle complet d'un abonné newsletter
type NewsletterSubscriber struct {
	ID               string     `json:"id" gorm:"primaryKey;default:gen_random_uuid()"`
	Email            string     `json:"email" gorm:"uniqueIndex" binding:"required,email"`
	FirstName        string     `json:"firstName,omitempty" gorm:"column:first_name"`
	LastName         string     `json:"lastName,omitempty" gorm:"column:last_name"`
	Interests        []string   `json:"interests,omitempty" gorm:"serializer:json"`
	Source           string     `json:"source,omitempty"`
	UnsubscribeToken string     `json:"-" gorm:"column:unsubscribe_token;uniqueIndex"`
	IsActive         bool       `json:"isActive" gorm:"column:is_active"`
	SubscribedAt     time.Time  `json:"subscribedAt" gorm:"column:subscribed_at"`
	UnsubscribedAt   *time.Time `json:"unsubscribedAt,omitempty" gorm:"column:unsubscribed_at"`
	CreatedAt        time.Time  `json:"createdAt" swaggerignore:"true"`
	UpdatedAt        time.Time  `json:"updatedAt" swaggerignore:"true"`
}

func (NewsletterSubscriber) TableName() string {
	return "newsletter_subscribers"
}

// SubscribeRequest modèle pour s'abonner à la newsletter
// @Description modèle pour créer ou réactiver un abonnement newsletter
type SubscribeRequest struct {
	Email     string   `json:"email" binding:"required,email" example:"jean.dupont@exemple.fr"`
	FirstName string   `json:"firstName" example:"Jean"`
	LastName  string   `json:"lastName" example:"Dupont"`
	Interests []string `json:"interests" example:"seo,ecommerce"`
	Source    string   `json:"source" example:"footer"`
}

// UnsubscribeRequest modèle pour se désabonner via le jeton opaque
type UnsubscribeRequest struct {
	Token string `json:"token" binding:"required"`
}

// NewsletterStats agrégats exposés sur /api/newsletter/stats
type NewsletterStats struct {
	TotalSubscribers    int64   `json:"totalSubscribers"`
	ActiveSubscribers   int64   `json:"activeSubscribers"`
	RecentSubscriptions int64   `json:"recentSubscriptions"`
	UnsubscribeRate     float64 `json:"unsubscribeRate"`
}
