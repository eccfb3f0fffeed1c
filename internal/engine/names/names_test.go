package names_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.veld.sh/veld/internal/core/domain"
	"go.veld.sh/veld/internal/engine/names"
)

func TestTable_InternSharesStorage(t *testing.T) {
	table := names.NewTable()

	a := table.InternString("prototype")
	b := table.InternString("prototype")

	require.False(t, a.IsSmall())
	assert.True(t, a.Equal(b))
	assert.Same(t, &a.Units()[0], &b.Units()[0], "equal names must share one block")
	assert.Equal(t, 1, table.Len())
}

func TestTable_InternCopiesInput(t *testing.T) {
	table := names.NewTable()

	units := domain.UnitsOf("writable")
	v := table.Intern(units)
	units[0] = 'X'

	assert.Equal(t, "writable", v.String())
	assert.True(t, table.InternString("writable").Equal(v))
	assert.Equal(t, 1, table.Len())
}

func TestTable_DistinctNames(t *testing.T) {
	table := names.NewTable()

	table.InternString("length")
	table.InternString("charAt")
	table.InternString("length")
	table.InternString("0")

	assert.Equal(t, 3, table.Len())
	assert.True(t, table.InternString("0").IsSmall())
}

func TestTable_ConcurrentIntern(t *testing.T) {
	table := names.NewTable()

	nameSet := make([]string, 64)
	for i := range nameSet {
		nameSet[i] = fmt.Sprintf("property_%d", i)
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, name := range nameSet {
				v := table.InternString(name)
				assert.Equal(t, name, v.String())
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, len(nameSet), table.Len())
}
