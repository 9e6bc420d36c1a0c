package testutil

import (
	"context"

	"github.com/stretchr/testify/suite"

	"github.com/orderdocs/orderdocs/internal/logger"
)

// BaseServiceTestSuite provides the shared fixtures service tests need:
// a context, in-memory stores, and a stub rasterizer, all reset per test.
type BaseServiceTestSuite struct {
	suite.Suite
	ctx           context.Context
	logger        *logger.Logger
	orderStore    *InMemoryOrderStore
	settingsStore *InMemorySettingsStore
	rasterizer    *StubRasterizer
}

func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.logger = logger.NewNop()
	s.orderStore = NewInMemoryOrderStore()
	s.settingsStore = NewInMemorySettingsStore()
	s.rasterizer = NewStubRasterizer()
}

func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

func (s *BaseServiceTestSuite) GetOrderStore() *InMemoryOrderStore {
	return s.orderStore
}

func (s *BaseServiceTestSuite) GetSettingsStore() *InMemorySettingsStore {
	return s.settingsStore
}

func (s *BaseServiceTestSuite) GetRasterizer() *StubRasterizer {
	return s.rasterizer
}
