package services_test

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/transit"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tenantPOL = kernel.MustTenantID("POL")

type orderSpec struct {
	number   string
	status   order.Status
	priority order.Priority
	express  bool
	pickup   *time.Time
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func buildOrder(t *testing.T, s orderSpec) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(kernel.NewUUID(), tenantPOL, s.status, order.Details{
		Number:       s.number,
		CustomerName: "Customer " + s.number,
		Fulfillment:  order.Pickup,
		Priority:     s.priority,
		IsExpress:    s.express,
		PickupDate:   s.pickup,
	})
	require.NoError(t, err)
	return o
}

func numbers(orders []*order.Order) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.Number())
	}
	return out
}

func TestEligibilityComputer_Compute(t *testing.T) {
	computer := services.NewEligibilityComputer()

	t.Run("should rank express ahead of earlier normal orders", func(t *testing.T) {
		o1 := buildOrder(t, orderSpec{number: "O1", status: order.Pending, priority: order.Normal, pickup: date(2025, 6, 2)})
		o2 := buildOrder(t, orderSpec{number: "O2", status: order.Pending, express: true, pickup: date(2025, 6, 5)})

		result, err := computer.Compute(transit.ToFactory, []*order.Order{o1, o2}, nil, 0)

		require.NoError(t, err)
		assert.Equal(t, []string{"O2", "O1"}, numbers(result))
	})

	t.Run("should treat high and urgent priority as express", func(t *testing.T) {
		normal := buildOrder(t, orderSpec{number: "N", status: order.Pending, pickup: date(2025, 1, 1)})
		high := buildOrder(t, orderSpec{number: "H", status: order.Pending, priority: order.High, pickup: date(2025, 2, 1)})
		urgent := buildOrder(t, orderSpec{number: "U", status: order.Pending, priority: order.Urgent})
		low := buildOrder(t, orderSpec{number: "L", status: order.Pending, priority: order.Low})

		result, err := computer.Compute(transit.ToFactory, []*order.Order{low, urgent, normal, high}, nil, 0)

		require.NoError(t, err)
		assert.Equal(t, []string{"H", "U", "N", "L"}, numbers(result))
	})

	t.Run("should exclude claimed orders", func(t *testing.T) {
		o1 := buildOrder(t, orderSpec{number: "O1", status: order.Pending})
		o2 := buildOrder(t, orderSpec{number: "O2", status: order.Pending})

		result, err := computer.Compute(transit.ToFactory, []*order.Order{o1, o2}, []kernel.UUID{o1.ID()}, 0)

		require.NoError(t, err)
		assert.Equal(t, []string{"O2"}, numbers(result))
	})

	t.Run("should keep only the direction's source status", func(t *testing.T) {
		pending := buildOrder(t, orderSpec{number: "P", status: order.Pending})
		processing := buildOrder(t, orderSpec{number: "R", status: order.Processing})
		ready := buildOrder(t, orderSpec{number: "X", status: order.ReadyForPickup})
		all := []*order.Order{pending, processing, ready}

		toFactory, err := computer.Compute(transit.ToFactory, all, nil, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"P"}, numbers(toFactory))

		toStore, err := computer.Compute(transit.ReturnToStore, all, nil, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"R"}, numbers(toStore))

		either, err := computer.Compute(transit.UnknownMovement, all, nil, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"P", "R"}, numbers(either))
	})

	t.Run("should cap at the limit", func(t *testing.T) {
		candidates := make([]*order.Order, 0, 30)
		for i := range 30 {
			candidates = append(candidates, buildOrder(t, orderSpec{number: fmt.Sprintf("O%02d", i), status: order.Pending}))
		}

		byDefault, err := computer.Compute(transit.ToFactory, candidates, nil, 0)
		require.NoError(t, err)
		assert.Len(t, byDefault, services.DefaultEligibleLimit)

		more, err := computer.Compute(transit.ToFactory, candidates, nil, 25)
		require.NoError(t, err)
		assert.Len(t, more, 25)
		assert.Equal(t, "O00", more[0].Number())
	})

	t.Run("should reject invalid input", func(t *testing.T) {
		_, err := computer.Compute(transit.ToFactory, nil, nil, -1)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = computer.Compute(transit.ToFactory, []*order.Order{{}}, nil, 0)
		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestEligibilityComputer_OrderingLaw(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	priorities := []order.Priority{order.Low, order.Normal, order.High, order.Urgent}

	for round := range 50 {
		candidates := make([]*order.Order, 0, 40)
		for i := range 40 {
			s := orderSpec{
				number:   fmt.Sprintf("R%02d-%02d", round, i),
				status:   order.Pending,
				priority: priorities[rng.IntN(len(priorities))],
				express:  rng.IntN(4) == 0,
			}
			if rng.IntN(3) > 0 {
				s.pickup = date(2025, time.Month(1+rng.IntN(12)), 1+rng.IntN(28))
			}
			candidates = append(candidates, buildOrder(t, s))
		}
		rng.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })

		result, err := services.NewEligibilityComputer().Compute(transit.ToFactory, candidates, nil, services.MaxEligibleLimit)
		require.NoError(t, err)
		require.Len(t, result, len(candidates))

		for i := 1; i < len(result); i++ {
			prev, cur := result[i-1], result[i]
			if prev.IsExpedited() != cur.IsExpedited() {
				assert.True(t, prev.IsExpedited(), "non-expedited order before expedited one")
				continue
			}
			switch {
			case prev.PickupDate() == nil:
				assert.Nil(t, cur.PickupDate(), "dated order after undated one")
			case cur.PickupDate() != nil:
				assert.False(t, cur.PickupDate().Before(*prev.PickupDate()), "pickup dates out of order")
			}
		}
	}
}

func TestNormalizeLimit(t *testing.T) {
	tests := []struct {
		in, out int
	}{
		{0, services.DefaultEligibleLimit},
		{1, 1},
		{150, 150},
		{services.MaxEligibleLimit, services.MaxEligibleLimit},
		{5000, services.MaxEligibleLimit},
	}
	for _, tt := range tests {
		got, err := services.NormalizeLimit(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.out, got, "limit %d", tt.in)
	}
}
