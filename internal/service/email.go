package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}
	return nil
}

func (s *emailService) SendApprovalNotification(ctx context.Context, email, username, gatheringTitle string) error {
	body := fmt.Sprintf("Hello %s,\n\nYou have been approved to join the gathering: %s.\n\nSee you at the table,\nThe BoardLink Team", username, gatheringTitle)
	return s.send(email, fmt.Sprintf("Approved: %s", gatheringTitle), body)
}

func (s *emailService) SendTradeApprovedNotification(ctx context.Context, email, username string, listingID int32) error {
	body := fmt.Sprintf("Hello %s,\n\nThe seller accepted your purchase request (listing #%d). Submit your settlement details to move the trade forward.\n\nThe BoardLink Team", username, listingID)
	return s.send(email, "Purchase request accepted", body)
}

func (s *emailService) SendTradeCompletedNotification(ctx context.Context, email, username string, priceCents int32) error {
	body := fmt.Sprintf("Hello %s,\n\nYour trade has been completed at a final price of $%.2f.\n\nThe BoardLink Team", username, float64(priceCents)/100)
	return s.send(email, "Trade completed", body)
}
