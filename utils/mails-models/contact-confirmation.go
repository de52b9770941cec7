package mailsmodels

import (
	"fmt"
	"time"

	"webatelier-backend/db"
	"webatelier-backend/models"
	"webatelier-backend/utils"
)

type ContactEmailData struct {
	Name    string
	Email   string
	Phone   string
	Budget  string
	Message string
}

// ContactConfirmation envoie l'accusé de réception au visiteur
func ContactConfirmation(contact ContactEmailData) {
	if !utils.MailEnabled() {
		utils.LogInfo("SMTP non configuré, mail de confirmation ignoré")
		return
	}

	subject := "Subject: Confirmation de votre demande de contact - Web Atelier \r\n"
	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"
	body := fmt.Sprintf(`
	<div style="background-color: #1C3D5A; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%;  min-height: 300px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">Merci pour votre message !</h1></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">
						<p>Bonjour %s,</p>
						<p>Nous avons bien reçu votre demande de contact.</p>
						<p>Nous vous répondrons dans les plus brefs délais.</p>
						<p>Votre message :</p>
						<blockquote style="background-color: #f5f5f5; padding: 15px; border-left: 5px solid #1C3D5A;">
							%s
						</blockquote>
					</td>
				</tr>
			</tbody>
		</table>
	</div>
`, contact.Name, contact.Message)

	message := []byte(subject + mime + body)
	err := utils.SendMail(contact.Email, message)
	recordEmail(contact.Email, "Confirmation de votre demande de contact - Web Atelier", "contact-confirmation", err)
}

// ContactNotification prévient l'agence d'une nouvelle demande
func ContactNotification(contact ContactEmailData) {
	if !utils.MailEnabled() {
		utils.LogInfo("SMTP non configuré, mail de notification ignoré")
		return
	}

	recipient := notificationRecipient()
	subject := "Subject: Nouvelle demande de contact \r\n"
	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"
	body := fmt.Sprintf(`
	<div style="padding: 20px;">
		<h2>Nouvelle demande de contact</h2>
		<p><strong>Nom :</strong> %s</p>
		<p><strong>Email :</strong> %s</p>
		<p><strong>Téléphone :</strong> %s</p>
		<p><strong>Budget :</strong> %s</p>
		<p><strong>Message :</strong></p>
		<blockquote style="background-color: #f5f5f5; padding: 15px;">%s</blockquote>
	</div>
`, contact.Name, contact.Email, contact.Phone, contact.Budget, contact.Message)

	message := []byte(subject + mime + body)
	err := utils.SendMail(recipient, message)
	recordEmail(recipient, "Nouvelle demande de contact", "contact-notification", err)
}

func recordEmail(recipient, subject, kind string, sendErr error) {
	if db.DB == nil {
		return
	}
	entry := models.Email{
		Recipient: recipient,
		Subject:   subject,
		Kind:      kind,
		SentAt:    time.Now(),
	}
	if sendErr != nil {
		entry.Error = sendErr.Error()
	}
	if err := db.DB.Create(&entry).Error; err != nil {
		utils.LogError(err, "Impossible d'enregistrer le mail dans le journal")
	}
}
