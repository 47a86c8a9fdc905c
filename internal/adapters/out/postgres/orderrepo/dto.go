// Package orderrepo provides data transfer objects and mapping functions for
// comanda persistence. It converts between the order domain aggregate and its
// relational representation, one row per comanda plus one row per line.
package orderrepo

import (
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderDTO represents the database structure for persisting comandas.
// The partial unique indexes on room and customer_id enforce at most one
// open draft per origin at the database level; the status predicate value
// must stay in sync with the Draft constant.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Room         *int       `gorm:"index:idx_orders_draft_room,unique,where:status = 1"`
	CustomerID   *uuid.UUID `gorm:"type:uuid;index:idx_orders_draft_customer,unique,where:status = 1"`
	Status       int        `gorm:"index"`
	CreatedBy    *uuid.UUID `gorm:"type:uuid"`
	KitchenNotes string
	CreatedAt    time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime:false"`
	ReadyAt      *time.Time
	Lines        []LineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for comandas.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO represents one comanda line with its captured name and unit price.
// Position preserves the order the waiter entered the lines in.
type LineDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID  `gorm:"type:uuid;index"`
	ProductID *uuid.UUID `gorm:"type:uuid"`
	Position  int
	Name      string
	UnitPrice int
	Quantity  int
	Notes     string
}

// TableName specifies the database table name for comanda lines.
func (LineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts a comanda aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var room *int
	if r := aggregate.Origin().Room(); r != nil {
		value := *r
		room = &value
	}

	var customerID *uuid.UUID
	if id := aggregate.Origin().CustomerID(); id != nil {
		raw := id.Bytes()
		customerID = &raw
	}

	var createdBy *uuid.UUID
	if id := aggregate.CreatedBy(); id != nil {
		raw := id.Bytes()
		createdBy = &raw
	}

	dto := OrderDTO{
		ID:           aggregate.ID().Bytes(),
		Room:         room,
		CustomerID:   customerID,
		Status:       int(aggregate.Status()),
		CreatedBy:    createdBy,
		KitchenNotes: aggregate.KitchenNotes(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
		ReadyAt:      aggregate.ReadyAt(),
		Lines:        make([]LineDTO, 0, len(aggregate.Lines())),
	}

	for i, line := range aggregate.Lines() {
		dto.Lines = append(dto.Lines, lineFromDomain(aggregate.ID(), i, line))
	}

	return dto
}

func lineFromDomain(orderID kernel.UUID, position int, line *order.Line) LineDTO {
	var productID *uuid.UUID
	if id := line.ProductID(); id != nil {
		raw := id.Bytes()
		productID = &raw
	}

	return LineDTO{
		ID:        line.ID().Bytes(),
		OrderID:   orderID.Bytes(),
		ProductID: productID,
		Position:  position,
		Name:      line.Name(),
		UnitPrice: line.UnitPrice().Amount(),
		Quantity:  line.Quantity().Value(),
		Notes:     line.Notes(),
	}
}

// toDomain converts database rows back to a comanda aggregate.
// Reconstructs the origin, lines and status using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var origin order.Origin
	if dto.Room != nil {
		origin, err = order.NewRoomOrigin(*dto.Room)
	} else if dto.CustomerID != nil {
		var customerID kernel.UUID
		customerID, err = kernel.UUIDFromBytes((*dto.CustomerID)[:])
		if err == nil {
			origin, err = order.NewCustomerOrigin(customerID)
		}
	} else {
		err = gorm.ErrInvalidData
	}
	if err != nil {
		return nil, err
	}

	var createdBy *kernel.UUID
	if dto.CreatedBy != nil {
		staffID, staffErr := kernel.UUIDFromBytes((*dto.CreatedBy)[:])
		if staffErr != nil {
			return nil, staffErr
		}
		createdBy = &staffID
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		origin,
		order.Status(dto.Status),
		createdBy,
		dto.KitchenNotes,
		lines,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.ReadyAt,
	)
}

func lineToDomain(dto LineDTO) (*order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var productID *kernel.UUID
	if dto.ProductID != nil {
		pID, productErr := kernel.UUIDFromBytes((*dto.ProductID)[:])
		if productErr != nil {
			return nil, productErr
		}
		productID = &pID
	}

	unitPrice, err := kernel.NewPrice(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	quantity, err := kernel.NewQuantity(dto.Quantity)
	if err != nil {
		return nil, err
	}

	return order.NewLine(id, productID, dto.Name, unitPrice, quantity, dto.Notes)
}
