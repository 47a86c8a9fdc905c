package orderrepo

import (
	"context"
	"errors"
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/order"
	"github.com/NegritaW/Sistema-Comandas/internal/core/ports"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM comanda repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new comanda with its lines to the database.
// Returns ports.ErrDraftAlreadyOpen when another draft for the same origin
// wins the insert race on the partial unique index.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isDraftUniqueViolation(err) {
			return ports.ErrDraftAlreadyOpen
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing comanda and replaces its stored lines.
// The write matches on the status the aggregate was loaded in, so a
// concurrent transition that committed in between makes this a no-op
// instead of reverting it. Status itself only changes via UpdateStatus.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, dto.Status).
		Select("room", "customer_id", "kitchen_notes", "updated_at", "ready_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.updateMissReason(ctx, aggregate)
	}

	// lines are replaced wholesale, matching how the waiter edits a draft
	if err := r.db.WithContext(ctx).Where("order_id = ?", dto.ID).Delete(&LineDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Lines) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Lines).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a comanda with its lines by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Lines", lineOrdering).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveDraftByRoom retrieves the open draft for a room, if any.
// Returns (nil, nil) when the room has no open draft.
func (r *GormOrderRepository) GetActiveDraftByRoom(ctx context.Context, room int) (*order.Order, error) {
	return r.getActiveDraft(ctx, "room = ? AND status = ?", room, order.Draft)
}

// GetActiveDraftByCustomer retrieves the open draft for a walk-in customer, if any.
// Returns (nil, nil) when the customer has no open draft.
func (r *GormOrderRepository) GetActiveDraftByCustomer(
	ctx context.Context, customerID kernel.UUID,
) (*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	return r.getActiveDraft(ctx, "customer_id = ? AND status = ?", customerID.Bytes(), order.Draft)
}

// GetAllInStatus retrieves all comandas in the given status, oldest first.
func (r *GormOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Lines", lineOrdering).
		Order("created_at, id").
		Find(&dtos, "status = ?", status).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// UpdateStatus atomically moves a comanda from one status to another.
// Returns false without error when the comanda is missing or no longer in
// the expected status, so concurrent transitions resolve to one winner.
func (r *GormOrderRepository) UpdateStatus(
	ctx context.Context,
	id kernel.UUID,
	from order.Status,
	to order.Status,
	at time.Time,
) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	columns := map[string]any{
		"status":     int(to),
		"updated_at": at,
	}
	if to == order.Ready {
		columns["ready_at"] = at
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), int(from)).
		Updates(columns)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// DeleteStaleDrafts removes drafts not touched since the cutoff and returns
// how many were removed. Their lines go with them via the cascade.
func (r *GormOrderRepository) DeleteStaleDrafts(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("status = ? AND updated_at < ?", order.Draft, cutoff).
		Delete(&OrderDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// updateMissReason distinguishes the two ways the guarded update can
// match zero rows: the comanda is gone, or its stored status has moved
// past the one the aggregate was loaded in.
func (r *GormOrderRepository) updateMissReason(ctx context.Context, aggregate *order.Order) error {
	var current OrderDTO
	err := r.db.WithContext(ctx).Select("status").First(&current, "id = ?", aggregate.ID().Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return err
	}

	return errs.NewInvalidStateError("update", order.Status(current.Status).String())
}

func (r *GormOrderRepository) getActiveDraft(
	ctx context.Context, condition string, args ...any,
) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Lines", lineOrdering).First(&dto, append([]any{condition}, args...)...).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

func lineOrdering(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

func isDraftUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	return pgErr.Code == uniqueViolationCode &&
		(pgErr.ConstraintName == "idx_orders_draft_room" || pgErr.ConstraintName == "idx_orders_draft_customer")
}
