package repositories

import (
	"context"

	"clubmanager/internal/database"
	. "clubmanager/internal/models"

	"gorm.io/gorm"
)

// PaymentRepository has no update or delete: payments are recorded once
// and never changed.
type PaymentRepository interface {
	GetAll(ctx context.Context) ([]PaymentView, error)
	GetByID(ctx context.Context, id int) (*Payment, error)
	Create(ctx context.Context, payment *Payment) error
	ForMember(ctx context.Context, memberID int) ([]Payment, error)
	ForMemberYear(ctx context.Context, memberID, year int) ([]Payment, error)
	ForYear(ctx context.Context, year int) ([]PaymentView, error)
}

type paymentRepository struct {
	entityStore[Payment]
}

func NewPayment(db database.DB) PaymentRepository {
	return &paymentRepository{
		entityStore: newEntityStore[Payment](db, EntityPayment, "paymentRepository"),
	}
}

func (r *paymentRepository) views(ctx context.Context) *gorm.DB {
	return r.getDB(ctx).
		Table("payments").
		Select("payments.*, club_members.first_name AS member_first_name, club_members.last_name AS member_last_name").
		Joins("JOIN club_members ON club_members.id = payments.member_id")
}

func (r *paymentRepository) GetAll(ctx context.Context) ([]PaymentView, error) {
	log := r.log.Function("GetAll")

	var payments []PaymentView
	if err := r.views(ctx).Order("payments.payment_date DESC, payments.id DESC").Scan(&payments).Error; err != nil {
		return nil, log.Err("failed to get payments", err)
	}

	return payments, nil
}

func (r *paymentRepository) ForMember(ctx context.Context, memberID int) ([]Payment, error) {
	log := r.log.Function("ForMember")

	var payments []Payment
	err := r.getDB(ctx).
		Where("member_id = ?", memberID).
		Order("membership_year DESC, payment_date DESC, id DESC").
		Find(&payments).Error
	if err != nil {
		return nil, log.Err("failed to get member payments", err, "memberID", memberID)
	}

	return payments, nil
}

func (r *paymentRepository) ForMemberYear(ctx context.Context, memberID, year int) ([]Payment, error) {
	log := r.log.Function("ForMemberYear")

	var payments []Payment
	err := r.getDB(ctx).
		Where("member_id = ? AND membership_year = ?", memberID, year).
		Order("payment_date, id").
		Find(&payments).Error
	if err != nil {
		return nil, log.Err("failed to get member payments", err, "memberID", memberID, "year", year)
	}

	return payments, nil
}

func (r *paymentRepository) ForYear(ctx context.Context, year int) ([]PaymentView, error) {
	log := r.log.Function("ForYear")

	var payments []PaymentView
	err := r.views(ctx).
		Where("payments.membership_year = ?", year).
		Order("payments.payment_date, payments.id").
		Scan(&payments).Error
	if err != nil {
		return nil, log.Err("failed to get payments for year", err, "year", year)
	}

	return payments, nil
}
