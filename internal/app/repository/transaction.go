package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Repositories hands out repositories bound to one database handle, either
// the root connection or a single transaction.
type Repositories interface {
	Users() UserRepository
	Restaurants() RestaurantRepository
	Menus() MenuRepository
	Dishes() DishRepository
	MenuDishes() MenuDishRepository
	Reviews() ReviewRepository
	Favorites() FavoriteRepository
}

// TransactionManager runs units of work. Reads outside a transaction go
// through its embedded Repositories.
type TransactionManager interface {
	Repositories

	// Execute runs fn in one transaction. The transaction is rolled back when
	// fn returns an error or panics and committed otherwise.
	Execute(ctx context.Context, fn func(tx Repositories) error) error
}

type gormRepositories struct {
	db *gorm.DB
}

func (f *gormRepositories) Users() UserRepository             { return NewUserRepository(f.db) }
func (f *gormRepositories) Restaurants() RestaurantRepository { return NewRestaurantRepository(f.db) }
func (f *gormRepositories) Menus() MenuRepository             { return NewMenuRepository(f.db) }
func (f *gormRepositories) Dishes() DishRepository            { return NewDishRepository(f.db) }
func (f *gormRepositories) MenuDishes() MenuDishRepository    { return NewMenuDishRepository(f.db) }
func (f *gormRepositories) Reviews() ReviewRepository         { return NewReviewRepository(f.db) }
func (f *gormRepositories) Favorites() FavoriteRepository     { return NewFavoriteRepository(f.db) }

type gormTransactionManager struct {
	gormRepositories
}

func NewTransactionManager(db *gorm.DB) TransactionManager {
	return &gormTransactionManager{gormRepositories{db: db}}
}

func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(tx Repositories) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositories{db: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", wrapConstraint(err))
	}
	return nil
}
