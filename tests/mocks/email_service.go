package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) SendRequestCreatedEmail(ctx context.Context, toEmail, recipientName, requesterName, apartmentNumber string) error {
	args := m.Called(ctx, toEmail, recipientName, requesterName, apartmentNumber)
	return args.Error(0)
}

func (m *EmailService) SendRequestDecisionEmail(ctx context.Context, toEmail, recipientName, approvalType, decision, reviewerName string) error {
	args := m.Called(ctx, toEmail, recipientName, approvalType, decision, reviewerName)
	return args.Error(0)
}

func (m *EmailService) SendPasswordResetEmail(ctx context.Context, toEmail, name, resetToken string) error {
	args := m.Called(ctx, toEmail, name, resetToken)
	return args.Error(0)
}
