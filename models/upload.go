package models

import (
	"time"
)

// UploadedFile métadonnées renvoyées après un téléversement réussi.
// Le fichier vit sur disque, aucune table n'est créée pour lui.
type UploadedFile struct {
	ID           string    `json:"id"`
	OriginalName string    `json:"originalName"`
	StoredName   string    `json:"storedName"`
	MimeType     string    `json:"mimeType"`
	Size         int64     `json:"size"`
	Path         string    `json:"path"`
	UploadedAt   time.Time `json:"uploadedAt"`
}
