// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/NegritaW/Sistema-Comandas/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the comanda repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to the catalog repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// StaffRepoFactory provides access to the staff repository within a transaction.
	StaffRepoFactory interface {
		StaffRepository() ports.StaffRepository
	}

	// OrderUoW manages transactions for comanda-only operations.
	// Used by submit, ready, void and draft cleanup.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new comanda unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DraftUoW manages transactions for draft creation, which verifies the
	// customer origin before opening the comanda.
	DraftUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
	}

	// DraftUoWFactory creates new draft unit of work instances.
	DraftUoWFactory interface {
		Create() DraftUoW
	}

	// OrderCatalogUoW manages transactions that touch a comanda and read the
	// catalog, such as replacing lines with product snapshots.
	OrderCatalogUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
	}

	// OrderCatalogUoWFactory creates new order/catalog unit of work instances.
	OrderCatalogUoWFactory interface {
		Create() OrderCatalogUoW
	}

	// CatalogUoW manages transactions for catalog-only operations.
	CatalogUoW interface {
		TxManager
		ProductRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// StaffUoW manages transactions for staff account operations.
	StaffUoW interface {
		TxManager
		StaffRepoFactory
	}

	// StaffUoWFactory creates new staff unit of work instances.
	StaffUoWFactory interface {
		Create() StaffUoW
	}
)
