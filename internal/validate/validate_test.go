package validate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	inErrors "github.com/Alturino/storefront/internal/errors"
)

type namedRequest struct {
	Name     string `validate:"required,notblank"`
	Quantity int    `validate:"gte=1"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name        string
		input       namedRequest
		expectedErr error
	}{
		{
			name:  "given valid request should return nil",
			input: namedRequest{Name: "socks", Quantity: 1},
		},
		{
			name:        "given blank name should return invalid request",
			input:       namedRequest{Name: "   ", Quantity: 1},
			expectedErr: inErrors.ErrInvalidRequest,
		},
		{
			name:        "given zero quantity should return invalid request",
			input:       namedRequest{Name: "socks", Quantity: 0},
			expectedErr: inErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(context.Background(), tt.input)
			if tt.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}
