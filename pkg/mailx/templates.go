package mailx

import (
	"fmt"
	"time"
)

const appName = "Tracker"

func VerificationMessage(to, link string, ttl time.Duration) Message {
	return Message{
		To:      to,
		Subject: appName + " - Verify your email address",
		Body: fmt.Sprintf(
			"Hello,\n\n"+
				"Please confirm your email address by opening the link below:\n\n"+
				"%s\n\n"+
				"The link expires in %s.\n\n"+
				"The %s Team",
			link, formatTTL(ttl), appName),
	}
}

func LoginCodeMessage(to, code string, ttl time.Duration) Message {
	return Message{
		To:      to,
		Subject: appName + " - Your login verification code",
		Body: fmt.Sprintf(
			"Hello,\n\n"+
				"Your verification code is: %s\n\n"+
				"This code will expire in %s. If you did not try to sign in, you can ignore this email.\n\n"+
				"The %s Team",
			code, formatTTL(ttl), appName),
	}
}

func formatTTL(d time.Duration) string {
	switch {
	case d >= time.Hour && d%time.Hour == 0:
		return fmt.Sprintf("%d hours", int(d.Hours()))
	default:
		return fmt.Sprintf("%d minutes", int(d.Minutes()))
	}
}
