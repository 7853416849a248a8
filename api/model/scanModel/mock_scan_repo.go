package scanmodel

// IScanLogRepository defines the interface for scan log operations
type IScanLogRepository interface {
	Record(record *ScanRecord) error
}

// Ensure ScanLogRepository implements IScanLogRepository
var _ IScanLogRepository = (*ScanLogRepository)(nil)

// MockScanLogRepository is a mock implementation for testing
type MockScanLogRepository struct {
	RecordFunc func(record *ScanRecord) error
}

// Ensure MockScanLogRepository implements IScanLogRepository
var _ IScanLogRepository = (*MockScanLogRepository)(nil)

// NewMockScanLogRepository creates a new mock repository
func NewMockScanLogRepository() *MockScanLogRepository {
	return &MockScanLogRepository{}
}

func (m *MockScanLogRepository) Record(record *ScanRecord) error {
	if m.RecordFunc != nil {
		return m.RecordFunc(record)
	}
	return nil
}
