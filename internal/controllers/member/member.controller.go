package memberController

import (
	"context"
	"slices"

	"clubmanager/internal/apperrors"
	"clubmanager/internal/controllers"
	"clubmanager/internal/logger"
	. "clubmanager/internal/models"
	"clubmanager/internal/repositories"
	"clubmanager/internal/rules"
)

type MemberController struct {
	memberRepo  repositories.MemberRepository
	hobbyRepo   repositories.HobbyRepository
	paymentRepo repositories.PaymentRepository
	sessionRepo repositories.SessionRepository
	services    controllers.Services
	log         logger.Logger
}

func New(
	memberRepo repositories.MemberRepository,
	hobbyRepo repositories.HobbyRepository,
	paymentRepo repositories.PaymentRepository,
	sessionRepo repositories.SessionRepository,
	services controllers.Services,
) *MemberController {
	return &MemberController{
		memberRepo:  memberRepo,
		hobbyRepo:   hobbyRepo,
		paymentRepo: paymentRepo,
		sessionRepo: sessionRepo,
		services:    services,
		log:         logger.New("MemberController"),
	}
}

func (mc *MemberController) GetAll(ctx context.Context) ([]MemberView, error) {
	members, err := mc.memberRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return mc.enrich(ctx, members)
}

func (mc *MemberController) GetActive(ctx context.Context) ([]MemberView, error) {
	members, err := mc.memberRepo.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	return mc.enrich(ctx, members)
}

func (mc *MemberController) Get(ctx context.Context, id int) (MemberView, error) {
	member, err := mc.memberRepo.GetView(ctx, id)
	if err != nil {
		return MemberView{}, err
	}

	members, err := mc.enrich(ctx, []MemberView{*member})
	if err != nil {
		return MemberView{}, err
	}
	return members[0], nil
}

// enrich fills in the computed age, fee category and hobbies.
func (mc *MemberController) enrich(ctx context.Context, members []MemberView) ([]MemberView, error) {
	now := mc.services.Now()

	ids := make([]int, len(members))
	for i := range members {
		ids[i] = members[i].ID
	}

	hobbies, err := mc.memberRepo.Hobbies(ctx, ids...)
	if err != nil {
		return nil, mc.log.Function("enrich").Err("failed to load hobbies", err)
	}

	for i := range members {
		members[i].Age = rules.AgeOn(members[i].DOB, now)
		members[i].Category = rules.CategoryFor(members[i].DOB, now)
		members[i].Hobbies = hobbies[members[i].ID]
		if members[i].Hobbies == nil {
			members[i].Hobbies = []Hobby{}
		}
	}

	return members, nil
}

func (mc *MemberController) Create(ctx context.Context, req MemberRequest) (MemberView, error) {
	log := mc.log.Function("Create")

	if err := mc.services.Validator.Struct(req); err != nil {
		return MemberView{}, log.Err("invalid member", err)
	}

	if err := rules.CheckMinimumAge(req.DOB, mc.services.Now()); err != nil {
		return MemberView{}, log.Err("member rejected", err, "dob", req.DOB)
	}

	var member ClubMember
	req.Apply(&member)
	if member.JoinDate.IsZero() {
		member.JoinDate = mc.services.Today()
	}

	err := mc.services.Transactions.Execute(ctx, func(txCtx context.Context) error {
		if err := controllers.CheckIdentity(txCtx, mc.memberRepo, rules.KindClubMember, member.Identity, nil); err != nil {
			return err
		}

		if err := mc.memberRepo.Create(txCtx, &member); err != nil {
			return err
		}

		if member.LocationID != nil {
			if err := mc.memberRepo.MoveLocation(txCtx, member.ID, member.LocationID, member.JoinDate); err != nil {
				return err
			}
		}

		return mc.syncHobbies(txCtx, member.ID, nil, req.HobbyIDs)
	})
	if err != nil {
		return MemberView{}, log.Err("failed to create member", err)
	}

	mc.services.Committed(ctx, EntityMember, ActionCreated, member.ID)
	return mc.Get(ctx, member.ID)
}

// Update rewrites the member. The hobby list is replaced only when the
// request carries one.
func (mc *MemberController) Update(ctx context.Context, id int, req MemberRequest) (MemberView, error) {
	log := mc.log.Function("Update")

	if err := mc.services.Validator.Struct(req); err != nil {
		return MemberView{}, log.Err("invalid member", err, "id", id)
	}

	err := mc.services.Transactions.Execute(ctx, func(txCtx context.Context) error {
		existing, err := mc.memberRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		member := *existing
		req.Apply(&member)

		if err := controllers.CheckIdentity(txCtx, mc.memberRepo, rules.KindClubMember, member.Identity, &id); err != nil {
			return err
		}

		if err := mc.memberRepo.Update(txCtx, id, &member); err != nil {
			return err
		}

		if !controllers.SameLocation(existing.LocationID, member.LocationID) {
			if err := mc.memberRepo.MoveLocation(txCtx, id, member.LocationID, mc.services.Today()); err != nil {
				return err
			}
		}

		if req.HobbyIDs == nil {
			return nil
		}

		current, err := mc.memberRepo.Hobbies(txCtx, id)
		if err != nil {
			return err
		}
		return mc.syncHobbies(txCtx, id, current[id], req.HobbyIDs)
	})
	if err != nil {
		return MemberView{}, log.Err("failed to update member", err, "id", id)
	}

	mc.services.Committed(ctx, EntityMember, ActionUpdated, id)
	return mc.Get(ctx, id)
}

func (mc *MemberController) syncHobbies(ctx context.Context, memberID int, current []Hobby, wanted []int) error {
	have := make(map[int]bool, len(current))
	for _, hobby := range current {
		have[hobby.ID] = true
	}

	for _, hobbyID := range wanted {
		if have[hobbyID] {
			continue
		}
		if err := mc.memberRepo.AddHobby(ctx, memberID, hobbyID); err != nil {
			return err
		}
		have[hobbyID] = true
	}

	for _, hobby := range current {
		if slices.Contains(wanted, hobby.ID) {
			continue
		}
		if err := mc.memberRepo.RemoveHobby(ctx, memberID, hobby.ID); err != nil {
			return err
		}
	}

	return nil
}

func (mc *MemberController) Delete(ctx context.Context, id int) error {
	if err := mc.memberRepo.Delete(ctx, id); err != nil {
		return mc.log.Function("Delete").Err("failed to delete member", err, "id", id)
	}

	mc.services.Committed(ctx, EntityMember, ActionDeleted, id)
	return nil
}

func (mc *MemberController) mustExist(ctx context.Context, id int) error {
	exists, err := mc.memberRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NotFound(EntityMember, id)
	}
	return nil
}

func (mc *MemberController) Hobbies(ctx context.Context, id int) ([]Hobby, error) {
	log := mc.log.Function("Hobbies")

	if err := mc.mustExist(ctx, id); err != nil {
		return nil, log.Err("failed to get hobbies", err, "id", id)
	}

	hobbies, err := mc.memberRepo.Hobbies(ctx, id)
	if err != nil {
		return nil, log.Err("failed to get hobbies", err, "id", id)
	}

	if hobbies[id] == nil {
		return []Hobby{}, nil
	}
	return hobbies[id], nil
}

func (mc *MemberController) AddHobby(ctx context.Context, id, hobbyID int) ([]Hobby, error) {
	log := mc.log.Function("AddHobby")

	err := mc.services.Transactions.Execute(ctx, func(txCtx context.Context) error {
		if err := mc.mustExist(txCtx, id); err != nil {
			return err
		}
		if _, err := mc.hobbyRepo.GetByID(txCtx, hobbyID); err != nil {
			return err
		}
		return mc.memberRepo.AddHobby(txCtx, id, hobbyID)
	})
	if err != nil {
		return nil, log.Err("failed to add hobby", err, "id", id, "hobbyID", hobbyID)
	}

	mc.services.Committed(ctx, EntityMember, ActionUpdated, id)
	return mc.Hobbies(ctx, id)
}

func (mc *MemberController) RemoveHobby(ctx context.Context, id, hobbyID int) ([]Hobby, error) {
	log := mc.log.Function("RemoveHobby")

	if err := mc.memberRepo.RemoveHobby(ctx, id, hobbyID); err != nil {
		return nil, log.Err("failed to remove hobby", err, "id", id, "hobbyID", hobbyID)
	}

	mc.services.Committed(ctx, EntityMember, ActionUpdated, id)
	return mc.Hobbies(ctx, id)
}

func (mc *MemberController) Payments(ctx context.Context, id int) ([]Payment, error) {
	log := mc.log.Function("Payments")

	if err := mc.mustExist(ctx, id); err != nil {
		return nil, log.Err("failed to get payments", err, "id", id)
	}

	return mc.paymentRepo.ForMember(ctx, id)
}

// Fees summarises what the member owes for a membership year. A zero year
// means the current one.
func (mc *MemberController) Fees(ctx context.Context, id, year int) (FeeSummary, error) {
	log := mc.log.Function("Fees")

	now := mc.services.Now()
	if year == 0 {
		year = now.Year()
	}

	member, err := mc.memberRepo.GetByID(ctx, id)
	if err != nil {
		return FeeSummary{}, log.Err("failed to get member", err, "id", id)
	}

	payments, err := mc.paymentRepo.ForMemberYear(ctx, id, year)
	if err != nil {
		return FeeSummary{}, log.Err("failed to get payments", err, "id", id, "year", year)
	}

	return rules.Summarize(id, year, rules.CategoryInYear(member.DOB, year), payments), nil
}

// Availability reports whether the member could take part in a session
// starting at the given date and time without a scheduling conflict.
func (mc *MemberController) Availability(ctx context.Context, id int, date Date, start ClockTime) (Availability, error) {
	log := mc.log.Function("Availability")

	if date.IsZero() || start.IsZero() {
		return Availability{}, log.Err("invalid availability query", apperrors.Validation(
			"invalid request: date and startTime are required",
			map[string]string{"date": "is required", "startTime": "is required"},
		))
	}

	if err := mc.mustExist(ctx, id); err != nil {
		return Availability{}, log.Err("failed to check availability", err, "id", id)
	}

	sessions, err := mc.sessionRepo.ForMemberOn(ctx, id, date)
	if err != nil {
		return Availability{}, log.Err("failed to get sessions", err, "id", id)
	}

	availability := Availability{MemberID: id, Date: date, StartTime: start, Available: true}

	candidate := Session{SessionDate: date, StartTime: start}
	if err := rules.CheckScheduleConflict(candidate, sessions); err != nil {
		availability.Available = false
		availability.Reason = apperrors.From(err).Message
	}

	return availability, nil
}

func (mc *MemberController) LocationHistory(ctx context.Context, id int) ([]LocationHistory, error) {
	log := mc.log.Function("LocationHistory")

	if err := mc.mustExist(ctx, id); err != nil {
		return nil, log.Err("failed to get location history", err, "id", id)
	}

	return mc.memberRepo.LocationHistory(ctx, id)
}
