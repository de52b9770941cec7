package contacts

import (
	"net/http"
	"strings"
	"time"
	"webatelier-backend/db"
	"webatelier-backend/handlers/newsletter"
	"webatelier-backend/models"
	"webatelier-backend/utils"
	mailsmodels "webatelier-backend/utils/mails-models"

	"github.com/gin-gonic/gin"
)

// @Summary Create a new contact request
// @Description Submit a new contact request with the provided information
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body models.ContactCreate true "Contact information"
// @Success 201 {object} map[string]interface{} "message: Contact request submitted successfully, id: contact ID"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /api/contact [post]
func CreateContact(c *gin.Context) {
	var contactInput models.ContactCreate

	if err := c.ShouldBindJSON(&contactInput); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	if !utils.ValidateEmail(contactInput.Email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid email format",
		})
		return
	}

	if contactInput.Phone != "" && !utils.ValidateFrenchPhone(contactInput.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid phone format, French number expected",
		})
		return
	}

	contact := models.Contact{
		Name:         contactInput.Name,
		Email:        contactInput.Email,
		Phone:        contactInput.Phone,
		Budget:       contactInput.Budget,
		ProjectTypes: contactInput.ProjectTypes,
		Message:      contactInput.Message,
		Newsletter:   contactInput.Newsletter,
		CreatedAt:    time.Now(),
	}

	result := db.DB.Create(&contact)
	if result.Error != nil {
		utils.LogError(result.Error, "Error when creating the contact request")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Unable to save the contact request",
		})
		return
	}

	mailData := mailsmodels.ContactEmailData{
		Name:    contact.Name,
		Email:   contact.Email,
		Phone:   contact.Phone,
		Budget:  contact.Budget,
		Message: contact.Message,
	}
	go mailsmodels.ContactConfirmation(mailData)
	go mailsmodels.ContactNotification(mailData)

	if contactInput.Newsletter {
		enrollInNewsletter(contact.Name, contact.Email)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Contact request submitted successfully",
		"id":      contact.ID,
		"contact": contact,
	})
}

// Inscription newsletter adossée à la case cochée du formulaire de
// contact. Un échec ici ne fait pas échouer la demande de contact.
func enrollInNewsletter(name string, email string) {
	firstName := name
	if idx := strings.Index(name, " "); idx > 0 {
		firstName = name[:idx]
	}

	_, _, err := newsletter.EnrollSubscriber(models.SubscribeRequest{
		Email:     email,
		FirstName: firstName,
		Source:    "contact-form",
	})
	if err != nil {
		utils.LogError(err, "Newsletter enrollment from contact form failed")
	}
}
