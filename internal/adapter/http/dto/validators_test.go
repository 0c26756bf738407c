package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	name := "  Jane Doe  "
	req := CreatePaymentRequest{
		Channel:      "moncash",
		Amount:       "500.00",
		Currency:     "HTG",
		CustomerName: &name,
	}
	SanitizeStruct(&req)

	assert.Equal(t, "Jane Doe", *req.CustomerName)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	reason := "customer <script>alert('x')</script> request"
	req := RefundRequest{Reason: reason}
	SanitizeStruct(&req)

	assert.Contains(t, req.Reason, "&lt;script&gt;")
	assert.NotContains(t, req.Reason, "<script>")
}

func TestSanitizeStruct_HandlesPointerString(t *testing.T) {
	orderID := "  order-001  "
	req := CreatePaymentRequest{OrderID: &orderID}
	SanitizeStruct(&req)

	assert.Equal(t, "order-001", *req.OrderID)
}

func TestSanitizeStruct_NilPointerIsNoOp(t *testing.T) {
	req := CreatePaymentRequest{Channel: "moncash"}
	SanitizeStruct(&req)
	assert.Nil(t, req.CustomerName)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

func TestSafeID_Valid(t *testing.T) {
	cases := []string{
		"order-001",
		"ORDER_002",
		"a.b.c",
		"simple123",
		"ABC-def_GHI.123",
	}
	for _, tc := range cases {
		assert.True(t, safeStringRe.MatchString(tc), "expected valid: %s", tc)
	}
}

func TestSafeID_Invalid(t *testing.T) {
	cases := []string{
		"order 001",
		"order<001>",
		"order;DROP",
		"",
		"hello world",
		"order\n001",
	}
	for _, tc := range cases {
		assert.False(t, safeStringRe.MatchString(tc), "expected invalid: %s", tc)
	}
}
