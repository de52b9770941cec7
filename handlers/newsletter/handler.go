package newsletter

import (
	"errors"
	"math"
	"net/http"
	"time"
	"webatelier-backend/db"
	"webatelier-backend/models"
	"webatelier-backend/utils"
	mailsmodels "webatelier-backend/utils/mails-models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnrollSubscriber crée ou réactive un abonné. Idempotent par email:
// un abonné actif est renvoyé tel quel, un abonné inactif est réactivé
// sans nouvelle ligne et sans changer son jeton de désabonnement.
func EnrollSubscriber(input models.SubscribeRequest) (*models.NewsletterSubscriber, bool, error) {
	var subscriber models.NewsletterSubscriber
	err := db.DB.Where("email = ?", input.Email).First(&subscriber).Error

	if err == nil {
		if subscriber.IsActive {
			return &subscriber, false, nil
		}

		now := time.Now()
		updates := map[string]interface{}{
			"is_active":       true,
			"subscribed_at":   now,
			"unsubscribed_at": nil,
		}
		if err := db.DB.Model(&subscriber).Updates(updates).Error; err != nil {
			return nil, false, err
		}
		subscriber.IsActive = true
		subscriber.SubscribedAt = now
		subscriber.UnsubscribedAt = nil
		return &subscriber, false, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	subscriber = models.NewsletterSubscriber{
		Email:            input.Email,
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Interests:        input.Interests,
		Source:           input.Source,
		UnsubscribeToken: uuid.NewString(),
		IsActive:         true,
		SubscribedAt:     time.Now(),
	}
	if err := db.DB.Create(&subscriber).Error; err != nil {
		return nil, false, err
	}
	return &subscriber, true, nil
}

// @Summary Subscribe to the newsletter
// @Description Subscribe an email address, reactivating it if it previously unsubscribed
// @Tags newsletter
// @Accept json
// @Produce json
// @Param subscription body models.SubscribeRequest true "Subscriber information"
// @Success 200 {object} utils.Response "Subscription confirmed"
// @Failure 400 {object} utils.Response "error: Invalid input"
// @Failure 500 {object} utils.Response "error: Error message"
// @Router /api/newsletter/subscribe [post]
func Subscribe(c *gin.Context) {
	var input models.SubscribeRequest
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	if !utils.ValidateEmail(input.Email) {
		utils.SendError(c, http.StatusBadRequest, "Invalid email format")
		return
	}

	subscriber, created, err := EnrollSubscriber(input)
	if err != nil {
		utils.LogError(err, "Error when subscribing to the newsletter")
		utils.SendError(c, http.StatusInternalServerError, "Unable to subscribe")
		return
	}

	if created {
		go mailsmodels.NewsletterWelcome(subscriber.Email, subscriber.FirstName, subscriber.UnsubscribeToken)
	}

	utils.SendSuccess(c, http.StatusOK, "Subscription confirmed", gin.H{
		"email":    subscriber.Email,
		"isActive": subscriber.IsActive,
	})
}

// @Summary Unsubscribe from the newsletter
// @Description Deactivate a subscription using the opaque token sent by email
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body models.UnsubscribeRequest true "Unsubscribe token"
// @Success 200 {object} utils.Response "Unsubscribed"
// @Failure 404 {object} utils.Response "error: Subscription not found"
// @Router /api/newsletter/unsubscribe [post]
func Unsubscribe(c *gin.Context) {
	var input models.UnsubscribeRequest
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	unsubscribeByToken(c, input.Token)
}

// UnsubscribeByLink même opération que Unsubscribe, déclenchée par le
// lien GET présent dans les mails
func UnsubscribeByLink(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		utils.SendError(c, http.StatusBadRequest, "Missing token")
		return
	}

	unsubscribeByToken(c, token)
}

func unsubscribeByToken(c *gin.Context, token string) {
	var subscriber models.NewsletterSubscriber
	err := db.DB.Where("unsubscribe_token = ?", token).First(&subscriber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Subscription not found")
			return
		}
		utils.LogError(err, "Error when looking up the unsubscribe token")
		utils.SendError(c, http.StatusInternalServerError, "Unable to unsubscribe")
		return
	}

	// Un second passage avec le même jeton ne change rien
	if !subscriber.IsActive {
		utils.SendSuccess(c, http.StatusOK, "Already unsubscribed", gin.H{"email": subscriber.Email})
		return
	}

	now := time.Now()
	updates := map[string]interface{}{
		"is_active":       false,
		"unsubscribed_at": now,
	}
	if err := db.DB.Model(&subscriber).Updates(updates).Error; err != nil {
		utils.LogError(err, "Error when unsubscribing")
		utils.SendError(c, http.StatusInternalServerError, "Unable to unsubscribe")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Unsubscribed", gin.H{"email": subscriber.Email})
}

// @Summary Newsletter statistics
// @Description Aggregate subscriber counts and unsubscribe rate
// @Tags newsletter
// @Produce json
// @Success 200 {object} models.NewsletterStats
// @Failure 500 {object} utils.Response "error: Error message"
// @Router /api/newsletter/stats [get]
func GetStats(c *gin.Context) {
	var stats models.NewsletterStats

	if err := db.DB.Model(&models.NewsletterSubscriber{}).Count(&stats.TotalSubscribers).Error; err != nil {
		utils.LogError(err, "Error when counting subscribers")
		utils.SendError(c, http.StatusInternalServerError, "Unable to compute newsletter stats")
		return
	}

	if err := db.DB.Model(&models.NewsletterSubscriber{}).
		Where("is_active = ?", true).
		Count(&stats.ActiveSubscribers).Error; err != nil {
		utils.LogError(err, "Error when counting active subscribers")
		utils.SendError(c, http.StatusInternalServerError, "Unable to compute newsletter stats")
		return
	}

	since := time.Now().AddDate(0, 0, -30)
	if err := db.DB.Model(&models.NewsletterSubscriber{}).
		Where("subscribed_at > ?", since).
		Count(&stats.RecentSubscriptions).Error; err != nil {
		utils.LogError(err, "Error when counting recent subscriptions")
		utils.SendError(c, http.StatusInternalServerError, "Unable to compute newsletter stats")
		return
	}

	if stats.TotalSubscribers > 0 {
		unsubscribed := stats.TotalSubscribers - stats.ActiveSubscribers
		rate := float64(unsubscribed) / float64(stats.TotalSubscribers)
		stats.UnsubscribeRate = math.Round(rate*100) / 100
	}

	c.JSON(http.StatusOK, stats)
}

// @Summary List active subscribers
// @Description Mapping email -> metadata of active subscribers (admin only)
// @Tags newsletter
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]models.NewsletterSubscriber
// @Failure 500 {object} utils.Response "error: Error message"
// @Router /api/admin/newsletter/subscribers [get]
func GetActiveSubscribers(c *gin.Context) {
	var subscribers []models.NewsletterSubscriber
	if err := db.DB.Where("is_active = ?", true).Order("subscribed_at DESC").Find(&subscribers).Error; err != nil {
		utils.LogError(err, "Error when listing subscribers")
		utils.SendError(c, http.StatusInternalServerError, "Unable to list subscribers")
		return
	}

	byEmail := make(map[string]models.NewsletterSubscriber, len(subscribers))
	for _, s := range subscribers {
		byEmail[s.Email] = s
	}

	c.JSON(http.StatusOK, gin.H{"subscribers": byEmail, "count": len(byEmail)})
}
