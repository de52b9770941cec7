package utils

import (
	"regexp"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	// Numéros français: 0X ou +33X / 0033X, mobile ou fixe, séparateurs optionnels
	phoneRegex = regexp.MustCompile(`^(?:(?:\+|00)33[\s.\-]?|0)[1-9](?:[\s.\-]?\d{2}){4}$`)
)

// ValidateEmail vérifie le format d'une adresse email
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateFrenchPhone vérifie le format d'un numéro de téléphone français
func ValidateFrenchPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}
