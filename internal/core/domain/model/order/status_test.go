package order_test

import (
	"testing"

	"foodorders/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status   order.Status
		expected string
	}{
		{order.Unknown, "unknown"},
		{order.Pending, "pending"},
		{order.InProcess, "in process"},
		{order.Sent, "sent"},
		{order.Delivered, "delivered"},
		{order.Status(42), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.status.String())
	}
}
