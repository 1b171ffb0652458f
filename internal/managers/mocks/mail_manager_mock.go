package mocks

import "github.com/stretchr/testify/mock"

type MockMailManager struct {
	mock.Mock
}

func (m *MockMailManager) Send(to, subject, htmlBody string) error {
	args := m.Called(to, subject, htmlBody)
	return args.Error(0)
}

func (m *MockMailManager) SendWithAttachment(to, subject, htmlBody string, attachment []byte, filename string) error {
	args := m.Called(to, subject, htmlBody, attachment, filename)
	return args.Error(0)
}

func (m *MockMailManager) SendActivationMail(to, fullName, activationLink string) error {
	args := m.Called(to, fullName, activationLink)
	return args.Error(0)
}
