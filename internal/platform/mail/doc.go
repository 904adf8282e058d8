// Package mail implements notification.Sender over SMTP.
package mail
