package mailer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withMockClient(t *testing.T) *MockClient {
	t.Helper()
	old := mailClient
	mock := NewMockClient()
	mailClient = mock
	t.Cleanup(func() {
		mailClient = old
	})
	return mock
}

func TestMockClientSend(t *testing.T) {
	mock := NewMockClient()

	require.NoError(t, mock.Send(context.Background(), "ops@containeriq.io", "subject", "body"))
	assert.Equal(t, 1, mock.CallCount())
	assert.Equal(t, MockCall{To: "ops@containeriq.io", Subject: "subject", Body: "body"}, mock.LastCall())
}

func TestMockClientFailNext(t *testing.T) {
	mock := NewMockClient()
	mock.FailNext = true

	err := mock.Send(context.Background(), "ops@containeriq.io", "subject", "body")
	require.Error(t, err)

	// FailNext 自动复位，失败的调用也会被记录
	assert.Equal(t, 1, mock.CallCount())
	require.NoError(t, mock.Send(context.Background(), "ops@containeriq.io", "subject", "body"))
}

func TestSendOTPMail(t *testing.T) {
	mock := withMockClient(t)

	require.NoError(t, SendOTPMail(context.Background(), "ops@containeriq.io", "123456", 10))

	call := mock.LastCall()
	assert.Equal(t, "ops@containeriq.io", call.To)
	assert.Contains(t, call.Subject, "verification code")
	assert.Contains(t, call.Body, "123456")
	assert.Contains(t, call.Body, "10 minutes")
}

func TestSendWelcomeMail(t *testing.T) {
	mock := withMockClient(t)

	require.NoError(t, SendWelcomeMail(context.Background(), "ops@containeriq.io"))

	call := mock.LastCall()
	assert.Contains(t, call.Subject, "Welcome")
	assert.Contains(t, call.Body, "onboarding")
}

func TestSendOnboardingReminderMail(t *testing.T) {
	mock := withMockClient(t)

	require.NoError(t, SendOnboardingReminderMail(context.Background(), "ops@containeriq.io"))

	call := mock.LastCall()
	assert.Contains(t, call.Subject, "Finish setting up")
	assert.Contains(t, call.Body, "incomplete")
}
