package service

import (
	"testing"

	"numberhunt/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestSessionService_DefaultState(t *testing.T) {
	service := NewSessionService()

	assert.Equal(t, domain.StateIdle, service.State(42))
}

func TestSessionService_Begin(t *testing.T) {
	service := NewSessionService()

	service.Begin(42)

	assert.Equal(t, domain.StateAwaitingNumber, service.State(42))
	// Other users are unaffected
	assert.Equal(t, domain.StateIdle, service.State(43))
}

func TestSessionService_SetNumber(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      int
		expectError   bool
		expectedState domain.UserState
	}{
		{
			name:          "valid number",
			input:         "123",
			expected:      123,
			expectedState: domain.StateAwaitingPhoto,
		},
		{
			name:          "zero padded number",
			input:         "007",
			expected:      7,
			expectedState: domain.StateAwaitingPhoto,
		},
		{
			name:          "all zeros is a valid number",
			input:         "000",
			expected:      0,
			expectedState: domain.StateAwaitingPhoto,
		},
		{
			name:          "non-digit input keeps the number step",
			input:         "abc",
			expectError:   true,
			expectedState: domain.StateAwaitingNumber,
		},
		{
			name:          "empty input keeps the number step",
			input:         "",
			expectError:   true,
			expectedState: domain.StateAwaitingNumber,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewSessionService()
			service.Begin(42)

			number, err := service.SetNumber(42, tt.input)

			assert.Equal(t, tt.expectedState, service.State(42))

			if tt.expectError {
				assert.ErrorIs(t, err, domain.ErrNotANumber)
				_, pendingErr := service.PendingNumber(42)
				assert.ErrorIs(t, pendingErr, ErrNoPendingNumber)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, number)

				pending, pendingErr := service.PendingNumber(42)
				assert.NoError(t, pendingErr)
				assert.Equal(t, tt.expected, pending)
			}
		})
	}
}

func TestSessionService_PendingNumber_RequiresPhotoStep(t *testing.T) {
	service := NewSessionService()

	// Idle
	_, err := service.PendingNumber(42)
	assert.ErrorIs(t, err, ErrNoPendingNumber)

	// Number step, nothing recorded yet
	service.Begin(42)
	_, err = service.PendingNumber(42)
	assert.ErrorIs(t, err, ErrNoPendingNumber)
}

func TestSessionService_Reset(t *testing.T) {
	service := NewSessionService()

	service.Begin(42)
	_, err := service.SetNumber(42, "5")
	assert.NoError(t, err)

	service.Reset(42)

	assert.Equal(t, domain.StateIdle, service.State(42))
	_, err = service.PendingNumber(42)
	assert.ErrorIs(t, err, ErrNoPendingNumber)
}
