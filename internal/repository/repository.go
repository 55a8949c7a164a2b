package repository

import (
	"path/filepath"

	"restaurant-orders/internal/models"
	"restaurant-orders/internal/repository/filestore"
)

const (
	DefaultPendingDir   = "pending-orders"
	DefaultCompletedDir = "orders"

	pendingPrefix   = "pending"
	completedPrefix = "order"
)

type OrderFiles interface {
	Save(ord models.Order) error
	Get(orderID string) (models.Order, error)
	Delete(orderID string) error
	List() ([]models.Order, error)
}

// Repository holds the two lifecycle directories: orders awaiting payment
// and orders whose payment proof was accepted.
type Repository struct {
	Pending   OrderFiles
	Completed OrderFiles
}

type Config struct {
	Root         string
	PendingDir   string
	CompletedDir string
}

func NewRepository(cfg Config) (*Repository, error) {
	if cfg.PendingDir == "" {
		cfg.PendingDir = DefaultPendingDir
	}
	if cfg.CompletedDir == "" {
		cfg.CompletedDir = DefaultCompletedDir
	}

	pending, err := filestore.NewOrderFileRepo(filepath.Join(cfg.Root, cfg.PendingDir), pendingPrefix)
	if err != nil {
		return nil, err
	}
	completed, err := filestore.NewOrderFileRepo(filepath.Join(cfg.Root, cfg.CompletedDir), completedPrefix)
	if err != nil {
		return nil, err
	}
	return &Repository{
		Pending:   pending,
		Completed: completed,
	}, nil
}
