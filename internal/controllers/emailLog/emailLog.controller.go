package emailLogController

import (
	"context"

	. "clubmanager/internal/models"
	"clubmanager/internal/repositories"
)

type EmailLogController struct {
	emailLogRepo repositories.EmailLogRepository
}

func New(emailLogRepo repositories.EmailLogRepository) *EmailLogController {
	return &EmailLogController{emailLogRepo: emailLogRepo}
}

func (ec *EmailLogController) GetAll(ctx context.Context) ([]EmailLogView, error) {
	return ec.emailLogRepo.GetAll(ctx)
}
