package mocks

import "github.com/user/rendervid/pkg/ports"

// RunLock is a mock implementation of ports.RunLock.
type RunLock struct {
	AcquireFunc func() error
	ReleaseFunc func() error

	Acquired bool
	Released bool
}

func (m *RunLock) Acquire() error {
	if m.AcquireFunc != nil {
		if err := m.AcquireFunc(); err != nil {
			return err
		}
	}
	m.Acquired = true
	return nil
}

func (m *RunLock) Release() error {
	m.Released = true
	if m.ReleaseFunc != nil {
		return m.ReleaseFunc()
	}
	return nil
}

var _ ports.RunLock = (*RunLock)(nil)
