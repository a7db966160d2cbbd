package resutils

// Statistics summarizes the entries registered with a resource pool
type Statistics struct {
	// EntryCount is the number of live registered entries
	EntryCount int
	// FreeCount is the number of live entries currently available for reuse
	FreeCount int
	// CreateCount is the number of device objects created over the lifetime of the pool
	CreateCount int
	// ReuseCount is the number of requests satisfied from an existing free entry
	ReuseCount int
}

func (s *Statistics) Clear() {
	s.EntryCount = 0
	s.FreeCount = 0
	s.CreateCount = 0
	s.ReuseCount = 0
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.EntryCount += other.EntryCount
	s.FreeCount += other.FreeCount
	s.CreateCount += other.CreateCount
	s.ReuseCount += other.ReuseCount
}

// InUseCount is the number of live entries currently held by a caller
func (s *Statistics) InUseCount() int {
	return s.EntryCount - s.FreeCount
}
