package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/resend/resend-go/v3"

	"amlak-backend/internal/config"
)

type Service interface {
	SendRequestCreatedEmail(ctx context.Context, toEmail, recipientName, requesterName, apartmentNumber string) error
	SendRequestDecisionEmail(ctx context.Context, toEmail, recipientName, approvalType, decision, reviewerName string) error
	SendPasswordResetEmail(ctx context.Context, toEmail, name, resetToken string) error
}

type service struct {
	client       *resend.Client
	config       *config.Config
	templatePath string
}

func NewService(cfg *config.Config) Service {
	client := resend.NewClient(cfg.ResendAPIKey)
	templatePath := "internal/service/templates/email"
	return &service{
		client:       client,
		config:       cfg,
		templatePath: templatePath,
	}
}

func (s *service) sendEmail(toEmail, subject, templateName string, data interface{}) error {
	tmpl, err := template.ParseFiles(
		filepath.Join(s.templatePath, "layout.html"),
		filepath.Join(s.templatePath, templateName),
	)
	if err != nil {
		return fmt.Errorf("failed to parse email templates: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Amlak <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    body.String(),
		Subject: subject,
	}

	_, err = s.client.Emails.Send(params)
	return err
}

func (s *service) SendRequestCreatedEmail(ctx context.Context, toEmail, recipientName, requesterName, apartmentNumber string) error {
	data := struct {
		Title           string
		Name            string
		RequesterName   string
		ApartmentNumber string
		Link            string
	}{
		Title:           "New Maintenance Request",
		Name:            recipientName,
		RequesterName:   requesterName,
		ApartmentNumber: apartmentNumber,
		Link:            fmt.Sprintf("https://%s/dashboard/maintenance-requests", s.config.Domain),
	}

	return s.sendEmail(toEmail, "New maintenance request awaiting review", "request_created.html", data)
}

func (s *service) SendRequestDecisionEmail(ctx context.Context, toEmail, recipientName, approvalType, decision, reviewerName string) error {
	data := struct {
		Title        string
		Name         string
		ApprovalType string
		Decision     string
		ReviewerName string
		Link         string
	}{
		Title:        "Maintenance Request Reviewed",
		Name:         recipientName,
		ApprovalType: approvalType,
		Decision:     decision,
		ReviewerName: reviewerName,
		Link:         fmt.Sprintf("https://%s/dashboard/maintenance-requests", s.config.Domain),
	}

	return s.sendEmail(toEmail, fmt.Sprintf("Your maintenance request was %s", decision), "request_decision.html", data)
}

func (s *service) SendPasswordResetEmail(ctx context.Context, toEmail, name, resetToken string) error {
	data := struct {
		Title string
		Name  string
		Link  string
	}{
		Title: "Reset Your Password",
		Name:  name,
		Link:  fmt.Sprintf("https://%s/reset-password?token=%s", s.config.Domain, resetToken),
	}

	return s.sendEmail(toEmail, "Reset your password", "password_reset.html", data)
}
