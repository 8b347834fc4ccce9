package testutil

import (
	"github.com/stretchr/testify/mock"
)

// MockCounterRepository is a mock for CounterRepository
type MockCounterRepository struct {
	mock.Mock
}

func (m *MockCounterRepository) Get() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockCounterRepository) Set(n int) error {
	args := m.Called(n)
	return args.Error(0)
}

// MockPhotoRepository is a mock for PhotoRepository
type MockPhotoRepository struct {
	mock.Mock
}

func (m *MockPhotoRepository) Put(number int, data []byte) error {
	args := m.Called(number, data)
	return args.Error(0)
}

func (m *MockPhotoRepository) Exists(number int) bool {
	args := m.Called(number)
	return args.Bool(0)
}

func (m *MockPhotoRepository) ListAll() ([]int, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockPhotoRepository) Path(number int) string {
	args := m.Called(number)
	return args.String(0)
}

// MockTextSender is a mock for TextSender
type MockTextSender struct {
	mock.Mock
}

func (m *MockTextSender) SendText(userID int64, text string) error {
	args := m.Called(userID, text)
	return args.Error(0)
}

// MockNotifier is a mock for Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyFound(submitterID int64, foundNumber, nextNumber int) {
	m.Called(submitterID, foundNumber, nextNumber)
}
