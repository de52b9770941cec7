package mailsmodels

import (
	"fmt"
	"os"

	"webatelier-backend/utils"
)

func notificationRecipient() string {
	recipient := os.Getenv("CONTACT_NOTIFICATION_EMAIL")
	if recipient == "" {
		recipient = "contact.webatelier@gmail.com"
	}
	return recipient
}

// NewsletterWelcome envoie le mail de bienvenue avec le lien de désabonnement
func NewsletterWelcome(email string, firstName string, unsubscribeToken string) {
	if !utils.MailEnabled() {
		utils.LogInfo("SMTP non configuré, mail de bienvenue ignoré")
		return
	}

	siteURL := os.Getenv("SITE_URL")
	if siteURL == "" {
		siteURL = "http://localhost:8080"
	}

	greeting := "Bonjour,"
	if firstName != "" {
		greeting = fmt.Sprintf("Bonjour %s,", firstName)
	}

	subject := "Subject: Bienvenue dans la newsletter Web Atelier \r\n"
	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"
	body := fmt.Sprintf(`
	<div style="background-color: #1C3D5A; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%;  min-height: 300px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">Bienvenue !</h1></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">
						<p>%s</p>
						<p>Vous recevrez désormais nos actualités : conseils web, réalisations et offres.</p>
						<p style="font-size: 12px; color: #888;">
							Pour vous désabonner à tout moment :
							<a href="%s/api/newsletter/unsubscribe?token=%s">cliquez ici</a>
						</p>
					</td>
				</tr>
			</tbody>
		</table>
	</div>
`, greeting, siteURL, unsubscribeToken)

	message := []byte(subject + mime + body)
	err := utils.SendMail(email, message)
	recordEmail(email, "Bienvenue dans la newsletter Web Atelier", "newsletter-welcome", err)
}
