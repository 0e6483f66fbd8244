package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"barberbook/internal/domain/access"
	"barberbook/internal/domain/schedule"
	"barberbook/internal/domain/user"
	"barberbook/internal/infra"
	"barberbook/internal/pkg/errs"
	"barberbook/internal/usecase/queries"
)

type AvailabilityCommands interface {
	CreateTemplate(ctx context.Context, requester access.Requester, stylistID uuid.UUID, weekday int, startTime, endTime string) (*queries.TemplateView, error)
	UpdateTemplate(ctx context.Context, requester access.Requester, templateID uuid.UUID, startTime, endTime string) (*queries.TemplateView, error)
	DeactivateTemplate(ctx context.Context, requester access.Requester, templateID uuid.UUID) error
	BlockFullDay(ctx context.Context, requester access.Requester, stylistID uuid.UUID, date, reason string) error
	BlockWindow(ctx context.Context, requester access.Requester, stylistID uuid.UUID, date, startTime, endTime, reason string) error
	OverrideDay(ctx context.Context, requester access.Requester, stylistID uuid.UUID, date, startTime, endTime, reason string) error
	ClearException(ctx context.Context, requester access.Requester, stylistID uuid.UUID, date string) error
}

type availabilityUseCaseImpl struct {
	availabilityRepo AvailabilityRepository
	userRepo         UserRepository
	slotCache        SlotCacheInvalidator
	location         *time.Location
}

func NewAvailabilityUseCase(
	availabilityRepo AvailabilityRepository,
	userRepo UserRepository,
	slotCache SlotCacheInvalidator,
	location *time.Location,
) AvailabilityCommands {
	return &availabilityUseCaseImpl{
		availabilityRepo: availabilityRepo,
		userRepo:         userRepo,
		slotCache:        slotCache,
		location:         location,
	}
}

func (a *availabilityUseCaseImpl) CreateTemplate(
	ctx context.Context,
	requester access.Requester,
	stylistID uuid.UUID,
	weekday int,
	startTime, endTime string,
) (*queries.TemplateView, error) {
	if !access.CanMutateAvailability(requester, stylistID) {
		return nil, errs.ErrForbidden
	}
	if weekday < 0 || weekday > 6 {
		return nil, errs.ErrInvalidInterval
	}
	if err := a.checkStylist(ctx, stylistID); err != nil {
		return nil, err
	}

	interval, err := schedule.ParseInterval(startTime, endTime)
	if err != nil {
		return nil, markIntervalErr(err)
	}

	tmpl, err := schedule.NewWeeklyTemplate(stylistID, time.Weekday(weekday), interval)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInterval)
	}

	existing, err := a.availabilityRepo.ListActiveTemplatesForWeekday(ctx, stylistID, tmpl.Weekday())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// A matching start redefines that window in place instead of adding
	// a second one.
	var target *schedule.WeeklyTemplate
	for _, other := range existing {
		if other.Interval().Start() == interval.Start() {
			target = other
			continue
		}
		if tmpl.ConflictsWith(other) {
			return nil, errs.ErrTemplateOverlap
		}
	}

	if target != nil {
		target.UpdateInterval(interval)
		if err := a.availabilityRepo.UpdateTemplate(ctx, target); err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return templateView(target), nil
	}

	if err := a.availabilityRepo.CreateTemplate(ctx, tmpl); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrTemplateOverlap)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return templateView(tmpl), nil
}

func (a *availabilityUseCaseImpl) UpdateTemplate(
	ctx context.Context,
	requester access.Requester,
	templateID uuid.UUID,
	startTime, endTime string,
) (*queries.TemplateView, error) {
	tmpl, err := a.findTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if !access.CanMutateAvailability(requester, tmpl.StylistID()) {
		return nil, errs.ErrForbidden
	}

	interval, err := schedule.ParseInterval(startTime, endTime)
	if err != nil {
		return nil, markIntervalErr(err)
	}
	tmpl.UpdateInterval(interval)

	if err := a.checkTemplateOverlap(ctx, tmpl); err != nil {
		return nil, err
	}

	if err := a.availabilityRepo.UpdateTemplate(ctx, tmpl); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return templateView(tmpl), nil
}

func (a *availabilityUseCaseImpl) DeactivateTemplate(ctx context.Context, requester access.Requester, templateID uuid.UUID) error {
	tmpl, err := a.findTemplate(ctx, templateID)
	if err != nil {
		return err
	}
	if !access.CanMutateAvailability(requester, tmpl.StylistID()) {
		return errs.ErrForbidden
	}

	tmpl.Deactivate()
	if err := a.availabilityRepo.UpdateTemplate(ctx, tmpl); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (a *availabilityUseCaseImpl) BlockFullDay(ctx context.Context, requester access.Requester, stylistID uuid.UUID, date, reason string) error {
	if !access.CanMutateAvailability(requester, stylistID) {
		return errs.ErrForbidden
	}
	day, err := a.parseDate(date)
	if err != nil {
		return err
	}

	exc := schedule.NewFullDayBlock(stylistID, day, reason)
	return a.storeException(ctx, exc, date)
}

// BlockWindow carves a window out of the template hours for the date.
// The remainder is frozen into the exception, so a later template
// change does not reshape an already-adjusted day.
func (a *availabilityUseCaseImpl) BlockWindow(ctx context.Context, requester access.Requester, stylistID uuid.UUID, date, startTime, endTime, reason string) error {
	if !access.CanMutateAvailability(requester, stylistID) {
		return errs.ErrForbidden
	}
	day, err := a.parseDate(date)
	if err != nil {
		return err
	}
	block, err := schedule.ParseInterval(startTime, endTime)
	if err != nil {
		return markIntervalErr(err)
	}

	// The block applies to whatever the day currently resolves to,
	// template or a previous exception.
	baseHours, err := a.resolveDay(ctx, stylistID, day)
	if err != nil {
		return err
	}

	exc, err := schedule.NewPartialBlock(stylistID, day, baseHours, block, reason)
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidInterval)
	}
	return a.storeException(ctx, exc, date)
}

func (a *availabilityUseCaseImpl) OverrideDay(ctx context.Context, requester access.Requester, stylistID uuid.UUID, date, startTime, endTime, reason string) error {
	if !access.CanMutateAvailability(requester, stylistID) {
		return errs.ErrForbidden
	}
	day, err := a.parseDate(date)
	if err != nil {
		return err
	}
	window, err := schedule.ParseInterval(startTime, endTime)
	if err != nil {
		return markIntervalErr(err)
	}

	exc := schedule.NewOverride(stylistID, day, window, reason)
	return a.storeException(ctx, exc, date)
}

func (a *availabilityUseCaseImpl) ClearException(ctx context.Context, requester access.Requester, stylistID uuid.UUID, date string) error {
	if !access.CanMutateAvailability(requester, stylistID) {
		return errs.ErrForbidden
	}
	day, err := a.parseDate(date)
	if err != nil {
		return err
	}

	if err := a.availabilityRepo.DeleteException(ctx, stylistID, day); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrExceptionNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	a.slotCache.Invalidate(ctx, stylistID, date)
	return nil
}

func (a *availabilityUseCaseImpl) checkStylist(ctx context.Context, stylistID uuid.UUID) error {
	stylist, err := a.userRepo.FindByID(ctx, stylistID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrStylistNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if stylist.Role() != user.RoleStylist || !stylist.IsActive() {
		return errs.ErrNotAStylist
	}
	return nil
}

func (a *availabilityUseCaseImpl) findTemplate(ctx context.Context, templateID uuid.UUID) (*schedule.WeeklyTemplate, error) {
	tmpl, err := a.availabilityRepo.FindTemplateByID(ctx, templateID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrTemplateNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return tmpl, nil
}

func (a *availabilityUseCaseImpl) checkTemplateOverlap(ctx context.Context, tmpl *schedule.WeeklyTemplate) error {
	existing, err := a.availabilityRepo.ListActiveTemplatesForWeekday(ctx, tmpl.StylistID(), tmpl.Weekday())
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	for _, other := range existing {
		if tmpl.ConflictsWith(other) {
			return errs.ErrTemplateOverlap
		}
	}
	return nil
}

func (a *availabilityUseCaseImpl) resolveDay(ctx context.Context, stylistID uuid.UUID, day time.Time) ([]schedule.Interval, error) {
	exc, err := a.availabilityRepo.FindException(ctx, stylistID, day)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	templates, err := a.availabilityRepo.ListActiveTemplatesForWeekday(ctx, stylistID, day.Weekday())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return schedule.ResolveAvailability(templates, exc), nil
}

func (a *availabilityUseCaseImpl) storeException(ctx context.Context, exc *schedule.DateException, date string) error {
	if err := a.availabilityRepo.SetException(ctx, exc); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	a.slotCache.Invalidate(ctx, exc.StylistID(), date)
	return nil
}

func (a *availabilityUseCaseImpl) parseDate(date string) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, a.location)
	if err != nil {
		return time.Time{}, errs.Mark(err, errs.ErrInvalidTimeFormat)
	}
	return day, nil
}

func markIntervalErr(err error) error {
	if errs.Is(err, schedule.ErrInvalidTimeFormat) {
		return errs.Mark(err, errs.ErrInvalidTimeFormat)
	}
	return errs.Mark(err, errs.ErrInvalidInterval)
}

func templateView(t *schedule.WeeklyTemplate) *queries.TemplateView {
	return &queries.TemplateView{
		ID:        t.ID(),
		StylistID: t.StylistID(),
		Weekday:   int(t.Weekday()),
		StartTime: t.Interval().Start().String(),
		EndTime:   t.Interval().End().String(),
		Active:    t.IsActive(),
	}
}
