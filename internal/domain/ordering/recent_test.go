package ordering

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRecentProductsMostRecentFirst(t *testing.T) {
	r := NewRecentProducts(5)
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	r.Record(a)
	r.Record(b)
	r.Record(c)

	require.Equal(t, []uuid.UUID{c, b, a}, r.IDs())
}

func TestRecentProductsDeduplicates(t *testing.T) {
	r := NewRecentProducts(5)
	a, b := uuid.New(), uuid.New()

	r.Record(a)
	r.Record(b)
	r.Record(a) // moves to the front, no duplicate

	require.Equal(t, []uuid.UUID{a, b}, r.IDs())
}

func TestRecentProductsBounded(t *testing.T) {
	r := NewRecentProducts(3)
	ids := make([]uuid.UUID, 5)
	for i := range ids {
		ids[i] = uuid.New()
		r.Record(ids[i])
	}

	require.Equal(t, []uuid.UUID{ids[4], ids[3], ids[2]}, r.IDs())
}

func TestRecentProductsDefaultCapacity(t *testing.T) {
	r := NewRecentProducts(0)
	for i := 0; i < DefaultRecentCapacity+4; i++ {
		r.Record(uuid.New())
	}
	require.Len(t, r.IDs(), DefaultRecentCapacity)
}
