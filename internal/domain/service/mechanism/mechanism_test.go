package mechanism

import (
	"math"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"closing_table/internal/domain"
	"closing_table/internal/domain/value"
	"closing_table/pkg/errcodes"
	"closing_table/pkg/tests"
)

func TestCompute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		ceiling       float64
		floor         float64
		wantStatus    value.OutcomeStatus
		wantFinal     *int64
		wantSuggested *int64
		wantSurplus   decimal.Decimal
		wantGap       decimal.Decimal
	}{
		{
			name:        "Overlap splits surplus",
			ceiling:     200000,
			floor:       150000,
			wantStatus:  value.OutcomeSuccess,
			wantFinal:   lo.ToPtr(int64(175000)),
			wantSurplus: decimal.NewFromInt(50000),
		},
		{
			name:        "Equal amounts",
			ceiling:     120000,
			floor:       120000,
			wantStatus:  value.OutcomeSuccess,
			wantFinal:   lo.ToPtr(int64(120000)),
			wantSurplus: decimal.Zero,
		},
		{
			name:        "Midpoint half rounds up",
			ceiling:     101000,
			floor:       90000,
			wantStatus:  value.OutcomeSuccess,
			wantFinal:   lo.ToPtr(int64(96000)),
			wantSurplus: decimal.NewFromInt(11000),
		},
		{
			name:        "Fractional inputs",
			ceiling:     100400.5,
			floor:       100000.25,
			wantStatus:  value.OutcomeSuccess,
			wantFinal:   lo.ToPtr(int64(100000)),
			wantSurplus: decimal.RequireFromString("400.25"),
		},
		{
			name:          "Gap on the bridge zone boundary",
			ceiling:       100000,
			floor:         110000,
			wantStatus:    value.OutcomeClose,
			wantSuggested: lo.ToPtr(int64(105000)),
			wantGap:       decimal.NewFromInt(10000),
		},
		{
			name:          "Small gap",
			ceiling:       200000,
			floor:         201500,
			wantStatus:    value.OutcomeClose,
			wantSuggested: lo.ToPtr(int64(201000)),
			wantGap:       decimal.NewFromInt(1500),
		},
		{
			name:       "Gap just past the bridge zone",
			ceiling:    100000,
			floor:      110001,
			wantStatus: value.OutcomeFail,
			wantGap:    decimal.NewFromInt(10001),
		},
		{
			name:       "Far apart",
			ceiling:    50000,
			floor:      500000,
			wantStatus: value.OutcomeFail,
			wantGap:    decimal.NewFromInt(450000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rq := require.New(t)

			outcome, err := Compute(tt.ceiling, tt.floor, DefaultParams())
			rq.NoError(err)
			rq.Equal(tt.wantStatus, outcome.Status)
			rq.Equal(tt.wantFinal, outcome.Final)
			rq.Equal(tt.wantSuggested, outcome.Suggested)
			rq.True(tt.wantSurplus.Equal(outcome.Surplus), "surplus %s", outcome.Surplus)
			rq.True(tt.wantGap.Equal(outcome.Gap), "gap %s", outcome.Gap)
		})
	}
}

func TestComputeInvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ceiling  float64
		floor    float64
		wantCode string
	}{
		{name: "Ceiling below min", ceiling: 49999, floor: 100000, wantCode: errcodes.InvalidCeiling.String()},
		{name: "Ceiling above max", ceiling: 500001, floor: 100000, wantCode: errcodes.InvalidCeiling.String()},
		{name: "Ceiling NaN", ceiling: math.NaN(), floor: 100000, wantCode: errcodes.InvalidCeiling.String()},
		{name: "Ceiling infinite", ceiling: math.Inf(1), floor: 100000, wantCode: errcodes.InvalidCeiling.String()},
		{name: "Floor below min", ceiling: 100000, floor: 0, wantCode: errcodes.InvalidFloor.String()},
		{name: "Floor negative infinite", ceiling: 100000, floor: math.Inf(-1), wantCode: errcodes.InvalidFloor.String()},
		{name: "Floor above max", ceiling: 100000, floor: 1e9, wantCode: errcodes.InvalidFloor.String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rq := require.New(t)

			_, err := Compute(tt.ceiling, tt.floor, DefaultParams())
			rq.Error(err)
			rq.True(failure.IsInvalidArgumentError(err))
			rq.Equal(tt.wantCode, failure.Code(err).String())
			rq.NotContains(err.Error(), "49999")
			rq.NotContains(failure.Description(err), "500001")
		})
	}
}

func TestComputeBoundsInclusive(t *testing.T) {
	t.Parallel()

	rq := require.New(t)

	outcome, err := Compute(50000, 50000, DefaultParams())
	rq.NoError(err)
	rq.Equal(value.OutcomeSuccess, outcome.Status)

	outcome, err = Compute(500000, 500000, DefaultParams())
	rq.NoError(err)
	rq.Equal(int64(500000), *outcome.Final)
}

func TestParamsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Params)
		ok     bool
	}{
		{name: "Defaults", mutate: func(*Params) {}, ok: true},
		{name: "Zero bridge zone", mutate: func(p *Params) { p.BridgeZonePct = 0 }, ok: true},
		{name: "Zero granularity", mutate: func(p *Params) { p.Granularity = 0 }},
		{name: "Min above max", mutate: func(p *Params) { p.TotalMin = p.TotalMax + 1 }},
		{name: "Non-positive min", mutate: func(p *Params) { p.TotalMin = 0 }},
		{name: "Negative bridge zone", mutate: func(p *Params) { p.BridgeZonePct = -0.1 }},
		{name: "NaN max", mutate: func(p *Params) { p.TotalMax = math.NaN() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rq := require.New(t)

			params := DefaultParams()
			tt.mutate(&params)

			err := params.Validate()
			if tt.ok {
				rq.NoError(err)
				return
			}

			code, ok := domain.GetCode(err)
			rq.True(ok)
			rq.Equal(errcodes.InvalidDealParams, code)

			_, err = Compute(100000, 100000, params)
			rq.Error(err)
		})
	}
}

func TestComputeProperties(t *testing.T) {
	t.Parallel()

	rq := require.New(t)
	random := tests.NewRandomizer()
	params := DefaultParams()
	half := float64(params.Granularity) / 2

	for range 5000 {
		ceiling := math.Round(random.Between(params.TotalMin, params.TotalMax))
		floor := math.Round(random.Between(params.TotalMin, params.TotalMax))

		outcome, err := Compute(ceiling, floor, params)
		rq.NoError(err)

		again, err := Compute(ceiling, floor, params)
		rq.NoError(err)
		rq.Equal(outcome, again)

		switch outcome.Status {
		case value.OutcomeSuccess:
			rq.LessOrEqual(floor, ceiling)
			rq.NotNil(outcome.Final)
			rq.Nil(outcome.Suggested)
			rq.Zero(*outcome.Final % params.Granularity)
			final := float64(*outcome.Final)
			rq.InDelta((ceiling+floor)/2, final, half)
			rq.GreaterOrEqual(final, floor-half)
			rq.LessOrEqual(final, ceiling+half)
		case value.OutcomeClose:
			rq.Greater(floor, ceiling)
			rq.LessOrEqual(floor-ceiling, ceiling*params.BridgeZonePct+1e-6)
			rq.Nil(outcome.Final)
			rq.NotNil(outcome.Suggested)
			rq.Zero(*outcome.Suggested % params.Granularity)
			rq.InDelta((ceiling+floor)/2, float64(*outcome.Suggested), half)
		case value.OutcomeFail:
			rq.Greater(floor-ceiling, ceiling*params.BridgeZonePct-1e-6)
			rq.Nil(outcome.Final)
			rq.Nil(outcome.Suggested)
		}
	}
}
