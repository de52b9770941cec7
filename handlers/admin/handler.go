package admin

import (
	"net/http"
	"os"
	"webatelier-backend/db"
	"webatelier-backend/models"
	"webatelier-backend/monitoring"
	"webatelier-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// LoginRequest identifiants d'administration
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"********"`
}

// DevFallbackEnabled indique si le couple admin/admin123 de
// développement est accepté. Jamais un défaut silencieux: le drapeau
// doit être posé explicitement et chaque usage est loggué.
func DevFallbackEnabled() bool {
	return os.Getenv("ADMIN_DEV_FALLBACK") == "true"
}

// WarnIfDevFallback loggue au démarrage si le fallback de dev est actif
func WarnIfDevFallback() {
	if DevFallbackEnabled() {
		utils.LogWarning("ADMIN_DEV_FALLBACK est actif: identifiants admin/admin123 acceptés. Ne jamais activer en production.")
	}
}

func checkCredentials(username string, password string) bool {
	configuredUser := os.Getenv("ADMIN_USERNAME")
	configuredHash := os.Getenv("ADMIN_PASSWORD_HASH")

	if configuredUser != "" && configuredHash != "" {
		if username != configuredUser {
			return false
		}
		return bcrypt.CompareHashAndPassword([]byte(configuredHash), []byte(password)) == nil
	}

	if DevFallbackEnabled() && username == "admin" && password == "admin123" {
		utils.LogWarning("Connexion admin via le fallback de développement")
		return true
	}

	return false
}

// @Summary Admin login
// @Description Authenticate the administrator and return a bearer token
// @Tags admin
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{} "success: true, token: JWT"
// @Failure 401 {object} map[string]interface{} "error: Invalid credentials"
// @Router /api/admin/login [post]
func Login(c *gin.Context) {
	var input LoginRequest

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	if !checkCredentials(input.Username, input.Password) {
		// Message générique: pas d'énumération d'utilisateurs
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(input.Username, "ADMIN", 24)
	if err != nil {
		utils.LogError(err, "Error when generating the admin token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to generate token"})
		return
	}

	utils.LogSuccess("Connexion admin réussie")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
	})
}

// @Summary List contact requests
// @Description Stored contact requests, newest first (admin only)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "contacts: list"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /api/admin/contacts [get]
func GetContacts(c *gin.Context) {
	var contacts []models.Contact
	if err := db.DB.Order("created_at DESC").Find(&contacts).Error; err != nil {
		utils.LogError(err, "Error when listing contact requests")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to list contact requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contacts": contacts,
		"count":    len(contacts),
	})
}

// GetErrors expose le journal circulaire d'erreurs du processus
// @Summary Diagnostics error log
// @Description Last captured handler errors (admin only)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "errors: list"
// @Router /api/admin/errors [get]
func GetErrors(m *monitoring.Monitor) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries := m.Errors()
		c.JSON(http.StatusOK, gin.H{
			"errors": entries,
			"count":  len(entries),
		})
	}
}
