package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/wb_basket/internal/domain"
	"github.com/Gunvolt24/wb_basket/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что CatalogRepository удовлетворяет интерфейсу CatalogRepository.
var _ ports.CatalogRepository = (*CatalogRepository)(nil)

// CatalogRepository — каталог зон и позиций на Postgres (pgxpool).
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository - конструктор CatalogRepository.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// Area — зона со всеми позициями и их продуктами.
// Отсутствующая зона — ошибка, оборачивающая domain.ErrAreaNotFound.
func (r *CatalogRepository) Area(ctx context.Context, areaID string) (*domain.FoodArea, error) {
	area, err := r.selectArea(ctx, areaID)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT i.id, i.name, i.description, i.image, f.food_id
		FROM catalog_items i
		LEFT JOIN item_foods f ON f.area_id = i.area_id AND f.item_id = i.id
		WHERE i.area_id = $1
		ORDER BY i.position, i.id, f.position, f.food_id
	`, areaID)
	if err != nil {
		return nil, fmt.Errorf("select items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item   domain.CatalogItem
			foodID *string
		)
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Image, &foodID); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		// строки одной позиции идут подряд
		n := len(area.Items)
		if n == 0 || area.Items[n-1].ID != item.ID {
			area.Items = append(area.Items, item)
			n++
		}
		if foodID != nil {
			area.Items[n-1].Foods = append(area.Items[n-1].Foods, domain.Food{ID: *foodID})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("items rows: %w", err)
	}

	return area, nil
}

// Item — позиция внутри зоны (и сама зона, без списка позиций).
// Ошибки поиска оборачивают domain.ErrAreaNotFound / domain.ErrItemNotFound.
func (r *CatalogRepository) Item(ctx context.Context, areaID, itemID string) (*domain.FoodArea, *domain.CatalogItem, error) {
	area, err := r.selectArea(ctx, areaID)
	if err != nil {
		return nil, nil, err
	}

	var item domain.CatalogItem
	err = r.pool.QueryRow(ctx, `
		SELECT id, name, description, image
		FROM catalog_items WHERE area_id = $1 AND id = $2
	`, areaID, itemID).Scan(&item.ID, &item.Name, &item.Description, &item.Image)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil, fmt.Errorf("%w: area=%s item=%s", domain.ErrItemNotFound, areaID, itemID)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("select item: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT food_id FROM item_foods
		WHERE area_id = $1 AND item_id = $2
		ORDER BY position, food_id
	`, areaID, itemID)
	if err != nil {
		return nil, nil, fmt.Errorf("select foods: %w", err)
	}
	foods, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Food, error) {
		var f domain.Food
		err := row.Scan(&f.ID)
		return f, err
	})
	if err != nil {
		return nil, nil, fmt.Errorf("scan foods: %w", err)
	}
	item.Foods = foods

	return area, &item, nil
}

// SaveArea — транзакционно сохраняет зону (идемпотентный upsert, позиции заменяются целиком).
func (r *CatalogRepository) SaveArea(ctx context.Context, area *domain.FoodArea) (retErr error) {
	if area == nil || area.ID == "" {
		return errors.New("area is empty or area id is required")
	}

	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer rollbackUnlessCommitted(ctx, transaction, &retErr)

	// 1) food_areas — upsert по id.
	if _, err = transaction.Exec(ctx, `
		INSERT INTO food_areas (id, name) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name
	`, area.ID, area.Name); err != nil {
		return fmt.Errorf("upsert area: %w", err)
	}

	// 2) catalog_items — replace (item_foods удаляются каскадом).
	if _, err = transaction.Exec(ctx, `DELETE FROM catalog_items WHERE area_id = $1`, area.ID); err != nil {
		return fmt.Errorf("delete items: %w", err)
	}
	if err = copyItems(ctx, transaction, area); err != nil {
		return err
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// rollbackUnlessCommitted — откат незавершённой транзакции; сбой отката
// присоединяется к возвращаемой ошибке. ErrTxClosed после Commit — норма.
func rollbackUnlessCommitted(ctx context.Context, tx pgx.Tx, retErr *error) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		*retErr = errors.Join(*retErr, fmt.Errorf("rollback: %w", err))
	}
}

func (r *CatalogRepository) selectArea(ctx context.Context, areaID string) (*domain.FoodArea, error) {
	var area domain.FoodArea
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM food_areas WHERE id = $1`, areaID).
		Scan(&area.ID, &area.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: area=%s", domain.ErrAreaNotFound, areaID)
	}
	if err != nil {
		return nil, fmt.Errorf("select area: %w", err)
	}
	return &area, nil
}

// copyItems — пакетная вставка позиций и их продуктов через COPY.
func copyItems(ctx context.Context, tx pgx.Tx, area *domain.FoodArea) error {
	if len(area.Items) == 0 {
		return nil
	}

	itemRows := make([][]any, 0, len(area.Items))
	var foodRows [][]any
	for i := range area.Items {
		it := &area.Items[i]
		itemRows = append(itemRows, []any{area.ID, it.ID, it.Name, it.Description, it.Image, i})
		for j, f := range it.Foods {
			foodRows = append(foodRows, []any{area.ID, it.ID, f.ID, j})
		}
	}

	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"catalog_items"},
		[]string{"area_id", "id", "name", "description", "image", "position"},
		pgx.CopyFromRows(itemRows),
	); err != nil {
		return fmt.Errorf("copy items: %w", err)
	}

	if len(foodRows) == 0 {
		return nil
	}
	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"item_foods"},
		[]string{"area_id", "item_id", "food_id", "position"},
		pgx.CopyFromRows(foodRows),
	); err != nil {
		return fmt.Errorf("copy item foods: %w", err)
	}
	return nil
}
