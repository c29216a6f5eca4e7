package wallet

import "sync"

// customerLocks hands out one mutex per customer so balance mutations for the
// same customer serialize while different customers proceed in parallel.
// Entries are never evicted; one mutex per customer seen by this process is
// an acceptable footprint.
type customerLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func newCustomerLocks() *customerLocks {
	return &customerLocks{locks: make(map[uint]*sync.Mutex)}
}

func (c *customerLocks) get(customerID uint) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.locks[customerID]
	if !ok {
		l = &sync.Mutex{}
		c.locks[customerID] = l
	}
	return l
}
