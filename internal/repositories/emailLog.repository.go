package repositories

import (
	"context"

	"clubmanager/internal/database"
	"clubmanager/internal/logger"
	. "clubmanager/internal/models"
	"clubmanager/internal/services"

	"gorm.io/gorm"
)

type EmailLogRepository interface {
	GetAll(ctx context.Context) ([]EmailLogView, error)
	CreateBatch(ctx context.Context, logs []EmailLog) error
}

type emailLogRepository struct {
	db  database.DB
	log logger.Logger
}

func NewEmailLog(db database.DB) EmailLogRepository {
	return &emailLogRepository{
		db:  db,
		log: logger.New("emailLogRepository"),
	}
}

func (r *emailLogRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *emailLogRepository) GetAll(ctx context.Context) ([]EmailLogView, error) {
	log := r.log.Function("GetAll")

	var logs []EmailLogView
	err := r.getDB(ctx).
		Table("email_logs").
		Select("email_logs.*, locations.name AS sender_location_name, locations.type AS sender_location_type").
		Joins("LEFT JOIN locations ON locations.id = email_logs.sender_location_id").
		Order("email_logs.email_date DESC, email_logs.id DESC").
		Scan(&logs).Error
	if err != nil {
		return nil, log.Err("failed to get email logs", err)
	}

	return logs, nil
}

func (r *emailLogRepository) CreateBatch(ctx context.Context, logs []EmailLog) error {
	if len(logs) == 0 {
		return nil
	}

	if err := r.getDB(ctx).Create(&logs).Error; err != nil {
		return r.log.Function("CreateBatch").Err("failed to record emails", err, "count", len(logs))
	}
	return nil
}
