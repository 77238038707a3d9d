package utils

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"kursdunyasi/config"
)

// SendPurchaseReceipt emails the buyer after the callback reconciler marks a
// purchase COMPLETED. Failures are logged and swallowed: the entitlement is
// already granted and a missing email must not roll that back.
func SendPurchaseReceipt(toEmail, toName, itemName string, amount float64) {
	if config.AppConfig.SendgridApiKey == "" {
		log.Printf("Sendgrid not configured, skipping receipt email for %s", toEmail)
		return
	}

	from := mail.NewEmail("Kurs Dünyası", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	subject := "Satın alma onayı - " + itemName

	plain := fmt.Sprintf("Merhaba %s,\n\n%s satın alımınız tamamlandı. Tutar: %.2f TL.\n\nİyi çalışmalar,\nKurs Dünyası", toName, itemName, amount)
	html := fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		<h2>Satın alma onayı</h2>
		<p>Merhaba %s,</p>
		<p><strong>%s</strong> satın alımınız tamamlandı.</p>
		<p>Tutar: <strong>%.2f TL</strong></p>
		<p>Panelinizden hemen erişebilirsiniz.</p>
		<p>İyi çalışmalar,<br>Kurs Dünyası</p>
	</div>`, toName, itemName, amount)

	message := mail.NewSingleEmail(from, subject, to, plain, html)
	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)

	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending receipt email to %s: %v", toEmail, err)
		return
	}
	if resp.StatusCode >= 400 {
		log.Printf("Receipt email rejected for %s: %d %s", toEmail, resp.StatusCode, resp.Body)
		return
	}

	log.Printf("Receipt email sent to %s for %s", toEmail, itemName)
}
