// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/mock"
)

// MockObjectAPI is a mock implementation of the s3.ObjectAPI interface
type MockObjectAPI struct {
	mock.Mock
}

// GetObject provides a mock function with given fields: ctx, params
// Functional options are accepted but not recorded.
func (m *MockObjectAPI) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	ret := m.Called(ctx, params)

	var r0 *s3.GetObjectOutput
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *s3.GetObjectInput) (*s3.GetObjectOutput, error)); ok {
		return rf(ctx, params)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*s3.GetObjectOutput)
	}

	r1 = ret.Error(1)

	return r0, r1
}

// NewMockObjectAPI creates a new instance of MockObjectAPI
func NewMockObjectAPI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockObjectAPI {
	mock_1 := &MockObjectAPI{}
	mock_1.Mock.Test(t)

	t.Cleanup(func() { mock_1.AssertExpectations(t) })

	return mock_1
}
