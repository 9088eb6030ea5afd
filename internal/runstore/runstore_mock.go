package runstore

import (
	"github.com/seolens/seolens/internal/contract"
	"github.com/seolens/seolens/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetRunStore implements the StoreManager interface.
func (m *MockStoreManager) GetRunStore() contract.RunStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.RunStore)
	return store
}

// MockRunStore is a mock implementation of RunStore for testing.
type MockRunStore struct {
	mock.Mock
}

var _ contract.RunStore = &MockRunStore{} // Compile-time check

// SaveRun implements the RunStore interface.
func (m *MockRunStore) SaveRun(overall schema.OverallScoreData, configParams string) (int64, error) {
	args := m.Called(overall, configParams)
	return args.Get(0).(int64), args.Error(1)
}

// ListRuns implements the RunStore interface.
func (m *MockRunStore) ListRuns(limit int) ([]schema.ScoreRunRecord, error) {
	args := m.Called(limit)
	runs, _ := args.Get(0).([]schema.ScoreRunRecord)
	return runs, args.Error(1)
}

// ListMetricScores implements the RunStore interface.
func (m *MockRunStore) ListMetricScores(runID int64) ([]schema.MetricScoreRecord, error) {
	args := m.Called(runID)
	scores, _ := args.Get(0).([]schema.MetricScoreRecord)
	return scores, args.Error(1)
}

// CountRuns implements the RunStore interface.
func (m *MockRunStore) CountRuns() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// Clear implements the RunStore interface.
func (m *MockRunStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}

// Close implements the RunStore interface.
func (m *MockRunStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
