package mysql

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"delivery-order-service/internal/domain"
	"delivery-order-service/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultPageLimit = 50

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

// Create inserts the order and its items in one repeatable-read transaction,
// so a failure at any point leaves no partial rows behind.
func (r *orderRepo) Create(ctx context.Context, order *domain.Order) error {
	tx := r.db.WithContext(ctx).Begin(&sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if tx.Error != nil {
		return tx.Error
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := tx.Create(order).Error; err != nil {
		tx.Rollback()
		log.Printf("Database save error: %v", err)
		return err
	}
	if order.ID == 0 {
		tx.Rollback()
		return errors.New("failed to assign order ID")
	}

	return tx.Commit().Error
}

func (r *orderRepo) FindByID(ctx context.Context, id uint64) (*domain.Order, error) {
	var o domain.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&o, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("FindByID error: %v", err)
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) FindByAccount(ctx context.Context, accountID uint64, status domain.OrderStatus, page repository.Page) ([]domain.Order, error) {
	q := r.db.WithContext(ctx).Where("account_id = ?", accountID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var out []domain.Order
	err := q.Preload("Items").
		Order("created_at DESC").
		Limit(pageLimit(page)).
		Offset(page.Offset).
		Find(&out).Error
	if err != nil {
		log.Printf("FindByAccount error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) FindByRestaurant(ctx context.Context, restaurantID uint64, page repository.Page) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Preload("Items").
		Order("created_at DESC").
		Limit(pageLimit(page)).
		Offset(page.Offset).
		Find(&out).Error
	if err != nil {
		log.Printf("FindByRestaurant error: %v", err)
		return nil, err
	}
	return out, nil
}

// UpdateStatus locks the order row, applies the transition against the fresh
// state and writes the result before committing. Two concurrent transition
// requests serialize on the row lock; the second sees the first one's status.
func (r *orderRepo) UpdateStatus(ctx context.Context, id uint64, apply repository.TransitionFunc) (*domain.Order, error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	var o domain.Order
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&o, id).Error
	if err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("UpdateStatus lock error: %v", err)
		return nil, err
	}

	if err := apply(&o); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Model(&domain.Order{}).Where("id = ?", id).Update("status", o.Status).Error; err != nil {
		tx.Rollback()
		log.Printf("UpdateStatus write error: %v", err)
		return nil, err
	}

	if err := tx.Where("order_id = ?", id).Find(&o.Items).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func pageLimit(page repository.Page) int {
	if page.Limit <= 0 {
		return defaultPageLimit
	}
	return page.Limit
}
