package rules

import (
	"testing"

	"clubmanager/internal/apperrors"
	. "clubmanager/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payment(amount string, donation bool) Payment {
	return Payment{Amount: decimal.RequireFromString(amount), IsDonation: donation, MembershipYear: 2025}
}

func TestRecommendedAmount(t *testing.T) {
	tests := []struct {
		name     string
		category AgeCategory
		payments []Payment
		expected string
	}{
		{name: "major with nothing paid", category: CategoryMajor, expected: "200"},
		{name: "minor with nothing paid", category: CategoryMinor, expected: "100"},
		{name: "major after 120", category: CategoryMajor, payments: []Payment{payment("120", false)}, expected: "80"},
		{name: "donations are ignored", category: CategoryMajor, payments: []Payment{payment("50", true), payment("20", false)}, expected: "180"},
		{name: "overpaid never negative", category: CategoryMinor, payments: []Payment{payment("150", false)}, expected: "0"},
		{name: "cents", category: CategoryMinor, payments: []Payment{payment("33.33", false), payment("33.33", false)}, expected: "33.34"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecommendedAmount(tt.category, tt.payments)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(got), "got %s", got)
		})
	}
}

func TestPlanPayment(t *testing.T) {
	d := decimal.RequireFromString

	tests := []struct {
		name        string
		amount      string
		recommended string
		isDonation  bool
		expected    []Allocation
	}{
		{
			name: "exact amount", amount: "200", recommended: "200",
			expected: []Allocation{{Amount: d("200")}},
		},
		{
			name: "partial amount", amount: "120", recommended: "200",
			expected: []Allocation{{Amount: d("120")}},
		},
		{
			name: "excess becomes a donation", amount: "250", recommended: "80",
			expected: []Allocation{{Amount: d("80")}, {Amount: d("170"), IsDonation: true}},
		},
		{
			name: "explicit donation", amount: "30", recommended: "80", isDonation: true,
			expected: []Allocation{{Amount: d("30"), IsDonation: true}},
		},
		{
			name: "fee already covered", amount: "40", recommended: "0",
			expected: []Allocation{{Amount: d("40")}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := PlanPayment(d(tt.amount), d(tt.recommended), tt.isDonation)
			require.Len(t, plan, len(tt.expected))
			for i, allocation := range plan {
				assert.True(t, tt.expected[i].Amount.Equal(allocation.Amount), "allocation %d amount %s", i, allocation.Amount)
				assert.Equal(t, tt.expected[i].IsDonation, allocation.IsDonation)
			}
			assert.Equal(t, !tt.isDonation, HasInstallment(plan))
		})
	}
}

func TestCheckInstallmentLimit(t *testing.T) {
	var payments []Payment
	for i := 0; i < MaxInstallments; i++ {
		assert.NoError(t, CheckInstallmentLimit(payments), "installment %d", i+1)
		payments = append(payments, payment("10", false))
	}

	err := CheckInstallmentLimit(payments)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInstallmentLimit))
	assert.Equal(t, 400, apperrors.From(err).HTTPStatus())

	donations := []Payment{payment("1", true), payment("1", true), payment("1", true), payment("1", true), payment("1", true)}
	assert.NoError(t, CheckInstallmentLimit(donations))
}

func TestSummarize(t *testing.T) {
	payments := []Payment{payment("120", false), payment("25", true)}

	summary := Summarize(7, 2025, CategoryMajor, payments)

	assert.Equal(t, 7, summary.MemberID)
	assert.Equal(t, 2025, summary.MembershipYear)
	assert.True(t, summary.RequiredFee.Equal(MajorFee))
	assert.True(t, summary.TotalPaid.Equal(decimal.NewFromInt(120)))
	assert.True(t, summary.Recommended.Equal(decimal.NewFromInt(80)))
	assert.True(t, summary.Donations.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, 1, summary.Installments)
	assert.Equal(t, 3, summary.InstallmentsLeft)
}

func TestCheckAmount(t *testing.T) {
	tests := []struct {
		amount string
		valid  bool
	}{
		{"0.01", true},
		{"100", true},
		{"100.50", true},
		{"99999999.99", true},
		{"0", false},
		{"-1", false},
		{"100.005", false},
		{"0.0001", false},
		{"100000000", false},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			err := CheckAmount(decimal.RequireFromString(tt.amount))
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
			assert.Contains(t, apperrors.From(err).Fields, "amount")
		})
	}
}
