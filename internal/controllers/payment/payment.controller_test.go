package paymentController

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"clubmanager/internal/apperrors"
	"clubmanager/internal/controllers/controllertest"
	. "clubmanager/internal/models"
	"clubmanager/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

func newController(t *testing.T) (*PaymentController, ClubMember, ClubMember) {
	t.Helper()

	env := controllertest.New(t)
	members := repositories.NewMember(env.DB)

	adult := ClubMember{
		FirstName: "Ana", LastName: "Lopez",
		DOB:      NewDate(1990, time.March, 3),
		Identity: Identity{SSN: "1", MedicareCard: "M1"},
		Gender:   GenderFemale, Status: StatusActive,
		JoinDate: NewDate(2024, time.January, 1),
	}
	minor := ClubMember{
		FirstName: "Bea", LastName: "Lopez",
		DOB:      NewDate(2012, time.March, 3),
		Identity: Identity{SSN: "2", MedicareCard: "M2"},
		Gender:   GenderFemale, Status: StatusActive,
		JoinDate: NewDate(2024, time.January, 1),
	}
	require.NoError(t, members.Create(ctx, &adult))
	require.NoError(t, members.Create(ctx, &minor))

	return New(repositories.NewPayment(env.DB), members, env.Services), adult, minor
}

func pay(memberID int, amount string, donation bool) PaymentRequest {
	return PaymentRequest{
		MemberID:       memberID,
		PaymentDate:    NewDate(2025, time.April, 2),
		Amount:         decimal.RequireFromString(amount),
		Method:         PaymentCredit,
		MembershipYear: 2025,
		IsDonation:     donation,
	}
}

func TestPaymentController_Recommendation(t *testing.T) {
	controller, adult, _ := newController(t)

	receipt, err := controller.Create(ctx, pay(adult.ID, "120", false))
	require.NoError(t, err)

	require.Len(t, receipt.Payments, 1)
	require.NotNil(t, receipt.Installment)
	assert.Nil(t, receipt.Donation)
	assert.True(t, decimal.NewFromInt(80).Equal(receipt.Remaining), "remaining %s", receipt.Remaining)
}

func TestPaymentController_SplitsOverpayment(t *testing.T) {
	controller, _, minor := newController(t)

	_, err := controller.Create(ctx, pay(minor.ID, "60", false))
	require.NoError(t, err)

	receipt, err := controller.Create(ctx, pay(minor.ID, "65.50", false))
	require.NoError(t, err)

	require.Len(t, receipt.Payments, 2)
	require.NotNil(t, receipt.Installment)
	require.NotNil(t, receipt.Donation)
	assert.True(t, decimal.NewFromInt(40).Equal(receipt.Installment.Amount))
	assert.True(t, decimal.RequireFromString("25.5").Equal(receipt.Donation.Amount))
	assert.True(t, receipt.Donation.IsDonation)
	assert.True(t, receipt.Remaining.IsZero())
}

func TestPaymentController_InstallmentLimit(t *testing.T) {
	controller, adult, _ := newController(t)

	for i := 0; i < 4; i++ {
		_, err := controller.Create(ctx, pay(adult.ID, "10", false))
		require.NoError(t, err)
	}

	_, err := controller.Create(ctx, pay(adult.ID, "10", false))
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInstallmentLimit))

	receipt, err := controller.Create(ctx, pay(adult.ID, "10", true))
	require.NoError(t, err, "donations are not installments")
	assert.Nil(t, receipt.Installment)
	require.NotNil(t, receipt.Donation)

	other := pay(adult.ID, "10", false)
	other.MembershipYear = 2026
	_, err = controller.Create(ctx, other)
	assert.NoError(t, err, "the limit is per membership year")
}

func TestPaymentController_CreateValidation(t *testing.T) {
	controller, adult, _ := newController(t)

	tests := []struct {
		name   string
		modify func(*PaymentRequest)
		kind   apperrors.Kind
		field  string
	}{
		{name: "zero amount", modify: func(r *PaymentRequest) { r.Amount = decimal.Zero }, kind: apperrors.KindValidation},
		{name: "negative amount", modify: func(r *PaymentRequest) { r.Amount = decimal.NewFromInt(-5) }, kind: apperrors.KindValidation},
		{name: "fraction of a cent", modify: func(r *PaymentRequest) { r.Amount = decimal.RequireFromString("100.005") }, kind: apperrors.KindValidation, field: "amount"},
		{name: "below one cent", modify: func(r *PaymentRequest) { r.Amount = decimal.RequireFromString("0.0001") }, kind: apperrors.KindValidation, field: "amount"},
		{name: "above column range", modify: func(r *PaymentRequest) { r.Amount = decimal.RequireFromString("100000000") }, kind: apperrors.KindValidation, field: "amount"},
		{name: "unknown method", modify: func(r *PaymentRequest) { r.Method = "Cheque" }, kind: apperrors.KindValidation},
		{name: "missing date", modify: func(r *PaymentRequest) { r.PaymentDate = Date{} }, kind: apperrors.KindValidation},
		{name: "unknown member", modify: func(r *PaymentRequest) { r.MemberID = 404 }, kind: apperrors.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := pay(adult.ID, "50", false)
			tt.modify(&req)

			_, err := controller.Create(ctx, req)
			require.Error(t, err)
			assert.True(t, apperrors.IsKind(err, tt.kind), "got %v", err)
			if tt.field != "" {
				assert.Contains(t, apperrors.From(err).Fields, tt.field)
			}
		})
	}

	payments, err := controller.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, payments)
}

func TestPaymentController_Export(t *testing.T) {
	controller, adult, minor := newController(t)

	_, err := controller.Create(ctx, pay(adult.ID, "250", false))
	require.NoError(t, err)
	_, err = controller.Create(ctx, pay(minor.ID, "30", false))
	require.NoError(t, err)

	var buf bytes.Buffer
	rows, err := controller.Export(ctx, 2025, &buf)
	require.NoError(t, err)
	assert.Equal(t, 3, rows)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, exportHeaders, records[0])
	assert.Equal(t, "200.00", records[1][5])
	assert.Equal(t, "false", records[1][8])
	assert.Equal(t, "50.00", records[2][5])
	assert.Equal(t, "true", records[2][8])

	buf.Reset()
	rows, err = controller.Export(ctx, 2024, &buf)
	require.NoError(t, err)
	assert.Zero(t, rows)
}
