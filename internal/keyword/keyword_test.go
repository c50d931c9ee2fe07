package keyword_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/statements/internal/keyword"
)

func TestSet_Contains(t *testing.T) {
	set := keyword.NewSet("Total", "balance due", "minimum")

	assert.True(t, set.Contains("NEW BALANCE DUE 03/25"))
	assert.True(t, set.Contains("Subtotal"))
	assert.True(t, set.Contains("MINIMUM PAYMENT"))
	assert.False(t, set.Contains("STARBUCKS #123"))
	assert.False(t, set.Contains(""))
}

func TestSet_Empty(t *testing.T) {
	set := keyword.NewSet()

	assert.False(t, set.Contains("anything"))

	_, ok := set.First("anything")
	assert.False(t, ok)
}

func TestSet_FirstUsesConstructionOrder(t *testing.T) {
	set := keyword.NewSet("chase", "american express", "amex")

	got, ok := set.First("Paid with AMERICAN EXPRESS, transferred from Chase")
	assert.True(t, ok)
	assert.Equal(t, "chase", got)

	got, ok = set.First("amex card")
	assert.True(t, ok)
	assert.Equal(t, "amex", got)
}

func TestSet_Words(t *testing.T) {
	set := keyword.NewSet(" Payroll ", "", "DIRECT DEP")
	assert.Equal(t, []string{"payroll", "direct dep"}, set.Words())
}

func TestSet_ConcurrentUse(t *testing.T) {
	set := keyword.NewSet("refund", "credit")

	var wg sync.WaitGroup
	for n := 0; n < 16; n++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for n := 0; n < 100; n++ {
				assert.True(t, set.Contains("ONLINE CREDIT ADJUSTMENT"))
				assert.False(t, set.Contains("WHOLE FOODS"))
			}
		}()
	}

	wg.Wait()
}
