// Package mechanism computes the outcome of one blind negotiation from the two
// private amounts. It is pure: no I/O, no clock, no randomness.
package mechanism

import (
	"math"
	"strconv"

	"git.appkode.ru/pub/go/failure"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"closing_table/internal/domain"
	"closing_table/internal/domain/entity"
	"closing_table/internal/domain/value"
	"closing_table/pkg/errcodes"
)

var two = decimal.NewFromInt(2) //nolint:gochecknoglobals,mnd

// Params are the deployment-wide deal constants.
type Params struct {
	TotalMin      float64
	TotalMax      float64
	BridgeZonePct float64
	Granularity   int64
}

func DefaultParams() Params {
	return Params{
		TotalMin:      50000,  //nolint:mnd
		TotalMax:      500000, //nolint:mnd
		BridgeZonePct: 0.10,   //nolint:mnd
		Granularity:   1000,   //nolint:mnd
	}
}

func (p Params) Validate() error {
	switch {
	case !finite(p.TotalMin) || !finite(p.TotalMax) || p.TotalMin <= 0 || p.TotalMin > p.TotalMax:
		return domain.NewError(errcodes.InvalidDealParams, "bounds must be finite with 0 < min <= max")
	case !finite(p.BridgeZonePct) || p.BridgeZonePct < 0:
		return domain.NewError(errcodes.InvalidDealParams, "bridge zone must be a finite non-negative fraction")
	case p.Granularity <= 0:
		return domain.NewError(errcodes.InvalidDealParams, "granularity must be positive")
	}

	return nil
}

// ValidateCeiling checks the initiator's amount. The error never carries the
// rejected value.
func ValidateCeiling(ceiling float64, p Params) error {
	return validateAmount("ceiling", errcodes.InvalidCeiling, ceiling, p)
}

func ValidateFloor(floor float64, p Params) error {
	return validateAmount("floor", errcodes.InvalidFloor, floor, p)
}

func validateAmount(name string, code failure.ErrorCode, amount float64, p Params) error {
	if finite(amount) && amount >= p.TotalMin && amount <= p.TotalMax {
		return nil
	}

	description := name + " must be a number between " +
		strconv.FormatFloat(p.TotalMin, 'f', -1, 64) + " and " + strconv.FormatFloat(p.TotalMax, 'f', -1, 64)

	return failure.NewInvalidArgumentError(
		name+" out of bounds",
		failure.WithCode(code),
		failure.WithDescription(description),
	)
}

// Compute classifies a ceiling/floor pair.
//
//   - floor <= ceiling: success, final is the midpoint rounded to granularity.
//   - gap <= ceiling*BridgeZonePct: close, suggested is the midpoint rounded.
//   - otherwise: fail, no number at all.
//
// Rounding is half away from zero, which for positive amounts is half-up.
func Compute(ceiling, floor float64, p Params) (entity.Outcome, error) {
	if err := p.Validate(); err != nil {
		return entity.Outcome{}, err
	}

	if err := ValidateCeiling(ceiling, p); err != nil {
		return entity.Outcome{}, err
	}

	if err := ValidateFloor(floor, p); err != nil {
		return entity.Outcome{}, err
	}

	c := decimal.NewFromFloat(ceiling)
	f := decimal.NewFromFloat(floor)
	granularity := decimal.NewFromInt(p.Granularity)

	if f.LessThanOrEqual(c) {
		surplus := c.Sub(f)

		return entity.Outcome{
			Status:  value.OutcomeSuccess,
			Final:   lo.ToPtr(roundTo(f.Add(surplus.Div(two)), granularity)),
			Surplus: surplus,
		}, nil
	}

	gap := f.Sub(c)

	// gap/ceiling <= pct, multiplied out to stay exact.
	if gap.LessThanOrEqual(c.Mul(decimal.NewFromFloat(p.BridgeZonePct))) {
		return entity.Outcome{
			Status:    value.OutcomeClose,
			Suggested: lo.ToPtr(roundTo(c.Add(f).Div(two), granularity)),
			Gap:       gap,
		}, nil
	}

	return entity.Outcome{
		Status: value.OutcomeFail,
		Gap:    gap,
	}, nil
}

func roundTo(v, granularity decimal.Decimal) int64 {
	return v.Div(granularity).Round(0).Mul(granularity).IntPart()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
