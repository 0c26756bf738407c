package queue

import (
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryDelay_WebhookSchedule(t *testing.T) {
	task := asynq.NewTask(TypeWebhookDeliver, []byte(`{}`))

	want := []time.Duration{5 * time.Second, 10 * time.Second, 20 * time.Second, 40 * time.Second, 80 * time.Second}
	for n, expected := range want {
		assert.Equal(t, expected, retryDelay(n+1, nil, task))
	}
}

func TestRetryDelay_WebhookSchedule_ClampsPastLastAttempt(t *testing.T) {
	task := asynq.NewTask(TypeWebhookDeliver, []byte(`{}`))
	assert.Equal(t, 80*time.Second, retryDelay(9, nil, task))
}

func TestRetryDelay_PaymentSchedule(t *testing.T) {
	task := asynq.NewTask(TypePaymentDispatch, []byte(`{}`))

	want := []time.Duration{2 * time.Second, 4 * time.Second, 8 * time.Second}
	for n, expected := range want {
		assert.Equal(t, expected, retryDelay(n+1, nil, task))
	}
}

func TestDecodeTask_Success(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}
	task := asynq.NewTask(TypePaymentDispatch, []byte(`{"name":"test"}`))

	var dst payload
	err := decodeTask(task, &dst)
	require.NoError(t, err)
	assert.Equal(t, "test", dst.Name)
}

func TestDecodeTask_InvalidJSON_IsNonRetryable(t *testing.T) {
	task := asynq.NewTask(TypePaymentDispatch, []byte(`not-json`))

	var dst struct{}
	err := decodeTask(task, &dst)
	require.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry), "malformed payloads must not be retried")
}
