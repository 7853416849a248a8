package util

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kitfest-dev/event-pass-api/common"
	"github.com/kitfest-dev/event-pass-api/internal/pass"
	"gopkg.in/gomail.v2"
)

func InitDialer() {
	dialer := gomail.NewDialer(*common.Config.MailHost, 587, *common.Config.MailUser, *common.Config.MailPass)
	common.Dialer = dialer
}

// SendPassNotification sends the team captain one consolidated email listing
// every successfully generated pass. Inline data-URI artifacts are linked
// as-is; the captain's mail client renders them like any other href.
func SendPassNotification(to string, teamName string, artifacts []*pass.PublishedArtifact) error {
	mailer := gomail.NewMessage()
	mailer.SetHeader("From", *common.Config.MailUser)
	mailer.SetHeader("To", to)
	mailer.SetHeader("Subject", fmt.Sprintf("Event Passes Ready - %s", teamName))

	var rows strings.Builder
	for _, artifact := range artifacts {
		rows.WriteString(fmt.Sprintf(`
					<tr>
						<td style="padding: 12px 16px; border-bottom: 1px solid rgba(229, 231, 235, 0.8); font-size: 15px; color: #1f2937;">%s</td>
						<td style="padding: 12px 16px; border-bottom: 1px solid rgba(229, 231, 235, 0.8); text-align: right;">
							<a href="%s" style="color: #244dad; font-weight: 600; text-decoration: none;">View Pass →</a>
						</td>
					</tr>`, artifact.Name, artifact.URL))
	}

	htmlBody := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<meta name="viewport" content="width=device-width, initial-scale=1.0">
			<style>
				body {
					font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
					line-height: 1.6;
					margin: 0;
					padding: 0;
					background: linear-gradient(135deg, #e5e7eb 0%%, #d5d8de 100%%);
				}
				.container {
					max-width: 600px;
					margin: 40px auto;
					background: rgba(255, 255, 255, 0.95);
					border-radius: 28px;
					border: 1px solid rgba(255, 255, 255, 0.6);
					overflow: hidden;
				}
				.header {
					background: linear-gradient(135deg, #244dad 0%%, #1e3d8f 100%%);
					color: white;
					padding: 48px 32px;
					text-align: center;
				}
				.header h1 {
					margin: 0;
					font-size: 28px;
					font-weight: 700;
				}
				.content {
					padding: 40px 32px;
				}
				.message {
					font-size: 16px;
					color: #374151;
					margin-bottom: 24px;
				}
				.pass-table {
					width: 100%%;
					border-collapse: collapse;
					background: rgba(229, 231, 235, 0.25);
					border-radius: 16px;
					overflow: hidden;
				}
				.footer {
					background: rgba(249, 250, 251, 0.8);
					padding: 32px;
					text-align: center;
					font-size: 13px;
					color: #9ca3af;
				}
			</style>
		</head>
		<body>
			<div class="container">
				<div class="header">
					<h1>Your Event Passes</h1>
					<p>Team %s</p>
				</div>
				<div class="content">
					<p class="message">
						Payment for your team has been verified and entry passes have been
						generated for the members listed below. Each member should carry
						their pass (printed or on a phone) for scanning at the venue.
					</p>
					<table class="pass-table">%s
					</table>
				</div>
				<div class="footer">
					<p><strong>KitFest</strong> - Event Registration</p>
					<p style="margin-top: 12px;">This is an automated notification. Please do not reply to this email.</p>
				</div>
			</div>
		</body>
		</html>
	`, teamName, rows.String())

	mailer.SetBody("text/html", htmlBody)

	if err := common.Dialer.DialAndSend(mailer); err != nil {
		slog.Error("Error sending pass notification", "error", err, "recipient", to, "team", teamName)
		return err
	}

	slog.Info("Pass notification sent successfully", "recipient", to, "team", teamName, "passes", len(artifacts))
	return nil
}
