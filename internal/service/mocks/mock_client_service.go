package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"crmapi/internal/model"
)

type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) List(ctx context.Context) ([]model.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Client), args.Error(1)
}

func (m *MockClientService) Get(ctx context.Context, id int64) (*model.Client, []model.Document, error) {
	args := m.Called(ctx, id)
	var client *model.Client
	if args.Get(0) != nil {
		client = args.Get(0).(*model.Client)
	}
	var docs []model.Document
	if args.Get(1) != nil {
		docs = args.Get(1).([]model.Document)
	}
	return client, docs, args.Error(2)
}

func (m *MockClientService) Create(ctx context.Context, in *model.ClientInput) (*model.Client, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockClientService) Update(ctx context.Context, id int64, in *model.ClientInput) (*model.Client, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockClientService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
