package uploads

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
	"webatelier-backend/models"
	"webatelier-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MaxUploadSize plafond de taille d'un fichier téléversé (25MB)
const MaxUploadSize = 25 * 1024 * 1024

// marge pour les entêtes et délimiteurs multipart autour du fichier
const multipartOverhead = 10 * 1024

// LimitRequestBody coupe la lecture du corps au plafond avant tout
// parsing multipart: un envoi trop volumineux est rejeté sans être
// consommé en entier
func LimitRequestBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadSize+multipartOverhead)
		c.Next()
	}
}

var allowedMimeTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"image/svg+xml":   true,
	"application/pdf": true,
	"text/plain":      true,
}

func uploadDir() string {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	return dir
}

// @Summary Upload a file
// @Description Accept one multipart file, validated against a MIME allow-list and a 25MB ceiling
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 200 {object} models.UploadedFile
// @Failure 400 {object} map[string]interface{} "error: Invalid file"
// @Failure 500 {object} map[string]interface{} "error: Upload failed"
// @Router /api/upload [post]
func UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "File too large, maximum 25MB"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file field"})
		return
	}

	if file.Size > MaxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large, maximum 25MB"})
		return
	}

	mimeType := file.Header.Get("Content-Type")
	if !allowedMimeTypes[mimeType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unsupported file type: %s", mimeType)})
		return
	}

	// Nom de stockage opaque, jamais dérivé du nom fourni par le client
	ext := strings.ToLower(filepath.Ext(file.Filename))
	id := uuid.NewString()
	storedName := id + ext

	dir := uploadDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		utils.LogError(err, "Unable to create the upload directory")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}

	dst := filepath.Join(dir, storedName)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		utils.LogError(err, "Unable to save the uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}

	c.JSON(http.StatusOK, models.UploadedFile{
		ID:           id,
		OriginalName: file.Filename,
		StoredName:   storedName,
		MimeType:     mimeType,
		Size:         file.Size,
		Path:         dst,
		UploadedAt:   time.Now(),
	})
}
