package utils

import (
	"fmt"
	"net/smtp"
	"os"
)

// MailEnabled indique si l'envoi SMTP est configuré
func MailEnabled() bool {
	return os.Getenv("GOOGLE_SMTP_MDP") != ""
}

func SendMail(email string, message []byte) error {
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "contact.webatelier@gmail.com"
	}
	password := os.Getenv("GOOGLE_SMTP_MDP")
	to := email

	smtpHost := "smtp.gmail.com"
	smtpPort := "587"
	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{to}, message)
	if err != nil {
		fmt.Println(err)
		return err
	}

	fmt.Println("Email envoyé avec succès.")
	return nil
}
