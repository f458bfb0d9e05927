package critical

import (
	"sync"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestSectionSerializesWriters(t *testing.T) {
	c := qt.New(t)

	// Two bytes updated together must never be observed apart.
	var hi, lo uint8
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 10000; i++ {
			s := Enter()
			lo++
			if lo == 0 {
				hi++
			}
			Exit(s)
		}
	}()

	prev := -1
	for i := 0; i < 10000; i++ {
		s := Enter()
		v := int(hi)<<8 | int(lo)
		Exit(s)
		c.Assert(v >= prev, qt.IsTrue, qt.Commentf("read %d after %d", v, prev))
		prev = v
	}
	wg.Wait()

	s := Enter()
	got := int(hi)<<8 | int(lo)
	Exit(s)
	c.Assert(got, qt.Equals, 10000)
}
