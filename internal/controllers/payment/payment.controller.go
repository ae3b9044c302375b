package paymentController

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"clubmanager/internal/controllers"
	"clubmanager/internal/logger"
	. "clubmanager/internal/models"
	"clubmanager/internal/repositories"
	"clubmanager/internal/rules"
	"clubmanager/internal/utils"
)

type PaymentController struct {
	paymentRepo repositories.PaymentRepository
	memberRepo  repositories.MemberRepository
	services    controllers.Services
	log         logger.Logger
}

func New(
	paymentRepo repositories.PaymentRepository,
	memberRepo repositories.MemberRepository,
	services controllers.Services,
) *PaymentController {
	return &PaymentController{
		paymentRepo: paymentRepo,
		memberRepo:  memberRepo,
		services:    services,
		log:         logger.New("PaymentController"),
	}
}

func (pc *PaymentController) GetAll(ctx context.Context) ([]PaymentView, error) {
	return pc.paymentRepo.GetAll(ctx)
}

func (pc *PaymentController) Get(ctx context.Context, id int) (*Payment, error) {
	return pc.paymentRepo.GetByID(ctx, id)
}

// Create records a payment. Whatever exceeds the fee still owed for the
// membership year is recorded as a separate donation, and a fifth
// installment in one year is refused.
func (pc *PaymentController) Create(ctx context.Context, req PaymentRequest) (PaymentReceipt, error) {
	log := pc.log.Function("Create")

	if err := pc.services.Validator.Struct(req); err != nil {
		return PaymentReceipt{}, log.Err("invalid payment", err)
	}
	if err := rules.CheckAmount(req.Amount); err != nil {
		return PaymentReceipt{}, log.Err("invalid payment amount", err, "amount", req.Amount.String())
	}

	var receipt PaymentReceipt
	err := pc.services.Transactions.Execute(ctx, func(txCtx context.Context) error {
		// Concurrent payments for one member queue here, so the installment
		// count below cannot go stale.
		member, err := pc.memberRepo.GetForUpdate(txCtx, req.MemberID)
		if err != nil {
			return err
		}

		payments, err := pc.paymentRepo.ForMemberYear(txCtx, member.ID, req.MembershipYear)
		if err != nil {
			return err
		}

		category := rules.CategoryInYear(member.DOB, req.MembershipYear)
		plan := rules.PlanPayment(req.Amount, rules.RecommendedAmount(category, payments), req.IsDonation)

		if rules.HasInstallment(plan) {
			if err := rules.CheckInstallmentLimit(payments); err != nil {
				return err
			}
		}

		receipt.Payments = make([]Payment, 0, len(plan))
		for _, allocation := range plan {
			payment := Payment{
				MemberID:       member.ID,
				PaymentDate:    req.PaymentDate,
				Amount:         allocation.Amount,
				Method:         req.Method,
				MembershipYear: req.MembershipYear,
				IsDonation:     allocation.IsDonation,
			}
			if err := pc.paymentRepo.Create(txCtx, &payment); err != nil {
				return err
			}
			receipt.Payments = append(receipt.Payments, payment)
		}

		for i := range receipt.Payments {
			if receipt.Payments[i].IsDonation {
				receipt.Donation = &receipt.Payments[i]
			} else {
				receipt.Installment = &receipt.Payments[i]
			}
		}

		receipt.Remaining = rules.RecommendedAmount(category, append(payments, receipt.Payments...))
		return nil
	})
	if err != nil {
		return PaymentReceipt{}, log.Err("failed to record payment", err, "memberID", req.MemberID)
	}

	for _, payment := range receipt.Payments {
		pc.services.Committed(ctx, EntityPayment, ActionCreated, payment.ID)
	}
	return receipt, nil
}

var exportHeaders = []string{
	"id", "member_id", "first_name", "last_name", "payment_date",
	"amount", "method", "membership_year", "is_donation",
}

// Export writes every payment of a membership year as CSV and returns the
// number of rows written.
func (pc *PaymentController) Export(ctx context.Context, year int, w io.Writer) (int, error) {
	log := pc.log.Function("Export")

	if year == 0 {
		year = pc.services.Now().Year()
	}

	payments, err := pc.paymentRepo.ForYear(ctx, year)
	if err != nil {
		return 0, log.Err("failed to get payments", err, "year", year)
	}

	generator := utils.NewCSVGenerator(utils.CSVGeneratorConfig{
		Name:    fmt.Sprintf("payments-%d", year),
		Headers: exportHeaders,
		Logger:  pc.log,
		Rows: func(yield func([]string) bool) {
			for _, p := range payments {
				row := []string{
					strconv.Itoa(p.ID),
					strconv.Itoa(p.MemberID),
					p.MemberFirstName,
					p.MemberLastName,
					p.PaymentDate.String(),
					p.Amount.StringFixed(2),
					string(p.Method),
					strconv.Itoa(p.MembershipYear),
					strconv.FormatBool(p.IsDonation),
				}
				if !yield(row) {
					return
				}
			}
		},
	})

	return generator.WriteTo(ctx, w)
}
