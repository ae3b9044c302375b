package rules

import (
	"fmt"

	"clubmanager/internal/apperrors"
	. "clubmanager/internal/models"

	"github.com/shopspring/decimal"
)

const MaxInstallments = 4

var (
	MajorFee = decimal.NewFromInt(200)
	MinorFee = decimal.NewFromInt(100)

	// MaxAmount is the largest value a numeric(10,2) amount column holds.
	MaxAmount = decimal.RequireFromString("99999999.99")
)

// CheckAmount rejects amounts the money columns cannot store exactly:
// non-positive, finer than a cent, or above MaxAmount.
func CheckAmount(amount decimal.Decimal) error {
	var reason string
	switch {
	case !amount.IsPositive():
		reason = "must be greater than 0"
	case !amount.Equal(amount.Round(2)):
		reason = "must have at most 2 decimal places"
	case amount.GreaterThan(MaxAmount):
		reason = "must not exceed " + MaxAmount.StringFixed(2)
	default:
		return nil
	}
	return apperrors.Validation("invalid amount", map[string]string{"amount": reason})
}

func RequiredFee(category AgeCategory) decimal.Decimal {
	if category == CategoryMajor {
		return MajorFee
	}
	return MinorFee
}

// Installments keeps the non-donation payments.
func Installments(payments []Payment) []Payment {
	installments := make([]Payment, 0, len(payments))
	for _, payment := range payments {
		if !payment.IsDonation {
			installments = append(installments, payment)
		}
	}
	return installments
}

// TotalPaid sums the non-donation payments. Donations never count toward
// the membership fee.
func TotalPaid(payments []Payment) decimal.Decimal {
	total := decimal.Zero
	for _, payment := range Installments(payments) {
		total = total.Add(payment.Amount)
	}
	return total
}

func TotalDonated(payments []Payment) decimal.Decimal {
	total := decimal.Zero
	for _, payment := range payments {
		if payment.IsDonation {
			total = total.Add(payment.Amount)
		}
	}
	return total
}

// RecommendedAmount is what is still owed for the year, never negative.
func RecommendedAmount(category AgeCategory, payments []Payment) decimal.Decimal {
	remaining := RequiredFee(category).Sub(TotalPaid(payments))
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// Allocation is one payment row a request turns into.
type Allocation struct {
	Amount     decimal.Decimal
	IsDonation bool
}

// PlanPayment splits an incoming amount. Anything above what is still owed
// becomes a donation. Once the fee is covered, further non-donation
// payments stay installments.
func PlanPayment(amount, recommended decimal.Decimal, isDonation bool) []Allocation {
	if isDonation {
		return []Allocation{{Amount: amount, IsDonation: true}}
	}
	if !recommended.IsPositive() || amount.LessThanOrEqual(recommended) {
		return []Allocation{{Amount: amount}}
	}
	return []Allocation{
		{Amount: recommended},
		{Amount: amount.Sub(recommended), IsDonation: true},
	}
}

func HasInstallment(plan []Allocation) bool {
	for _, allocation := range plan {
		if !allocation.IsDonation {
			return true
		}
	}
	return false
}

// CheckInstallmentLimit rejects another installment once the member already
// has MaxInstallments for the year.
func CheckInstallmentLimit(payments []Payment) error {
	if count := len(Installments(payments)); count >= MaxInstallments {
		return apperrors.BusinessRule(
			apperrors.CodeInstallmentLimit,
			fmt.Sprintf("maximum of %d installments per membership year reached (%d recorded)", MaxInstallments, count),
		)
	}
	return nil
}

// Summarize reports the fee state for one member and year.
func Summarize(memberID, year int, category AgeCategory, payments []Payment) FeeSummary {
	installments := len(Installments(payments))
	left := MaxInstallments - installments
	if left < 0 {
		left = 0
	}
	return FeeSummary{
		MemberID:         memberID,
		MembershipYear:   year,
		Category:         category,
		RequiredFee:      RequiredFee(category),
		TotalPaid:        TotalPaid(payments),
		Recommended:      RecommendedAmount(category, payments),
		Donations:        TotalDonated(payments),
		Installments:     installments,
		InstallmentsLeft: left,
	}
}
