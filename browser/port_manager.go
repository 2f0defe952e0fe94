package browser

import (
	"fmt"
	"sync"
)

// PortManager hands out ChromeDriver ports so concurrent Selenium sessions do
// not collide
type PortManager struct {
	basePort  int
	portRange int
	inUse     map[int]bool
	mutex     sync.Mutex
}

var (
	defaultPortManager *PortManager
	once               sync.Once
)

// DefaultPortManager returns the process-wide manager for ports 4444-4459
func DefaultPortManager() *PortManager {
	once.Do(func() {
		defaultPortManager = NewPortManager(4444, 16)
	})
	return defaultPortManager
}

// NewPortManager creates a new port manager with the specified base port and range
func NewPortManager(basePort, portRange int) *PortManager {
	return &PortManager{
		basePort:  basePort,
		portRange: portRange,
		inUse:     make(map[int]bool, portRange),
	}
}

// GetPort reserves the lowest free port
func (pm *PortManager) GetPort() (int, error) {
	pm.mutex.Lock()
	defer pm.mutex.Unlock()

	for i := 0; i < pm.portRange; i++ {
		port := pm.basePort + i
		if !pm.inUse[port] {
			pm.inUse[port] = true
			return port, nil
		}
	}

	return 0, fmt.Errorf("no available ports in range %d-%d", pm.basePort, pm.basePort+pm.portRange-1)
}

// ReleasePort makes port available again
func (pm *PortManager) ReleasePort(port int) {
	pm.mutex.Lock()
	defer pm.mutex.Unlock()

	delete(pm.inUse, port)
}
