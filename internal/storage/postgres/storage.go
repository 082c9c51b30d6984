package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/Techevery/Native-admin-dashboard-backend/internal/domain/errors"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/model"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage depends on; tests swap it
// for a pgxmock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type categoryRepository struct {
	storage *Storage
}

type subcategoryRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Categories() repository.CategoryRepository {
	return &categoryRepository{storage: s}
}

func (s *Storage) Subcategories() repository.SubcategoryRepository {
	return &subcategoryRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL DEFAULT '',
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL DEFAULT 'staff',
            status TEXT NOT NULL DEFAULT 'active',
            last_login TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS subcategories (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            status TEXT NOT NULL DEFAULT 'active',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS categories (
            id SERIAL PRIMARY KEY,
            name TEXT UNIQUE NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL DEFAULT 'active',
            image_id TEXT NOT NULL DEFAULT '',
            image_url TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS category_subcategories (
            category_id BIGINT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
            subcategory_id BIGINT NOT NULL REFERENCES subcategories(id) ON DELETE CASCADE,
            PRIMARY KEY (category_id, subcategory_id)
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            price BIGINT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL DEFAULT 'active',
            stock TEXT NOT NULL DEFAULT 'In Stock',
            image_id TEXT NOT NULL DEFAULT '',
            image_url TEXT NOT NULL DEFAULT '',
            category_id BIGINT REFERENCES categories(id),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            number TEXT UNIQUE NOT NULL,
            email TEXT NOT NULL,
            address TEXT NOT NULL,
            phone TEXT NOT NULL,
            total BIGINT NOT NULL,
            payment_type TEXT NOT NULL DEFAULT 'card',
            status TEXT NOT NULL DEFAULT 'pending',
            reference TEXT,
            idempotency_key TEXT UNIQUE,
            metadata JSONB,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
            product_id BIGINT NOT NULL,
            quantity INT NOT NULL CHECK (quantity >= 1)
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_created ON orders(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, name, email, passwordHash string, role model.UserRole) (*model.User, error) {
	const query = `INSERT INTO users (name, email, password_hash, role)
                   VALUES ($1, $2, $3, $4)
                   RETURNING id, status, created_at, updated_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, name, email, passwordHash, role).Scan(&u.ID, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Name = name
	u.Email = email
	u.PasswordHash = passwordHash
	u.Role = role
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, name, email, password_hash, role, status, last_login, created_at, updated_at
                   FROM users WHERE email=$1`
	return r.scanUser(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, name, email, password_hash, role, status, last_login, created_at, updated_at
                   FROM users WHERE id=$1`
	return r.scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Status, &u.LastLogin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) TouchLastLogin(ctx context.Context, id int64) error {
	const query = `UPDATE users SET last_login=NOW(), updated_at=NOW() WHERE id=$1`
	_, err := r.storage.pool.Exec(ctx, query, id)
	return err
}

// --- CategoryRepository implementation ---

func (r *categoryRepository) Create(ctx context.Context, category model.Category, subcategoryIDs []int64) (*model.Category, error) {
	created := category
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insert = `INSERT INTO categories (name, description, status, image_id, image_url)
                        VALUES ($1, $2, $3, $4, $5)
                        RETURNING id, created_at, updated_at`
		if err := tx.QueryRow(ctx, insert, category.Name, category.Description, category.Status, category.Image.ID, category.Image.URL).
			Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt); err != nil {
			if isUniqueViolation(err) {
				return domainErrors.ErrAlreadyExists
			}
			return err
		}

		if err := replaceSubcategoryLinks(ctx, tx, created.ID, subcategoryIDs); err != nil {
			return err
		}

		refs, err := subcategoryRefsTx(ctx, tx, created.ID)
		if err != nil {
			return err
		}
		created.Subcategories = refs
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func replaceSubcategoryLinks(ctx context.Context, tx pgx.Tx, categoryID int64, subcategoryIDs []int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM category_subcategories WHERE category_id=$1`, categoryID); err != nil {
		return err
	}
	for _, id := range subcategoryIDs {
		const link = `INSERT INTO category_subcategories (category_id, subcategory_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
		if _, err := tx.Exec(ctx, link, categoryID, id); err != nil {
			return err
		}
	}
	return nil
}

func subcategoryRefsTx(ctx context.Context, tx pgx.Tx, categoryID int64) ([]model.SubcategoryRef, error) {
	const query = `SELECT s.id, s.name FROM category_subcategories cs
                   JOIN subcategories s ON s.id = cs.subcategory_id
                   WHERE cs.category_id=$1 ORDER BY s.id`
	rows, err := tx.Query(ctx, query, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []model.SubcategoryRef
	for rows.Next() {
		var ref model.SubcategoryRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	const query = `SELECT id, name, description, status, image_id, image_url, created_at, updated_at
                   FROM categories WHERE id=$1`
	var c model.Category
	err := r.storage.pool.QueryRow(ctx, query, id).
		Scan(&c.ID, &c.Name, &c.Description, &c.Status, &c.Image.ID, &c.Image.URL, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	refs, err := r.subcategoryRefs(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Subcategories = refs
	return &c, nil
}

func (r *categoryRepository) subcategoryRefs(ctx context.Context, categoryID int64) ([]model.SubcategoryRef, error) {
	const query = `SELECT s.id, s.name FROM category_subcategories cs
                   JOIN subcategories s ON s.id = cs.subcategory_id
                   WHERE cs.category_id=$1 ORDER BY s.id`
	rows, err := r.storage.pool.Query(ctx, query, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []model.SubcategoryRef
	for rows.Next() {
		var ref model.SubcategoryRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

func (r *categoryRepository) Overview(ctx context.Context) (*model.CategoryOverview, error) {
	const listQuery = `SELECT c.id, c.name, c.description, c.status, c.image_url, s.id, s.name
                       FROM categories c
                       LEFT JOIN category_subcategories cs ON cs.category_id = c.id
                       LEFT JOIN subcategories s ON s.id = cs.subcategory_id
                       ORDER BY c.id, s.id`
	rows, err := r.storage.pool.Query(ctx, listQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []model.CategorySummary
	index := map[int64]int{}
	for rows.Next() {
		var (
			summary model.CategorySummary
			subID   *int64
			subName *string
		)
		if err := rows.Scan(&summary.ID, &summary.Name, &summary.Description, &summary.Status, &summary.ImageURL, &subID, &subName); err != nil {
			return nil, err
		}
		pos, seen := index[summary.ID]
		if !seen {
			pos = len(summaries)
			index[summary.ID] = pos
			summaries = append(summaries, summary)
		}
		if subID != nil && subName != nil {
			summaries[pos].Subcategories = append(summaries[pos].Subcategories, model.SubcategoryRef{ID: *subID, Name: *subName})
			summaries[pos].SubcategoryCount = len(summaries[pos].Subcategories)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	overview := &model.CategoryOverview{Categories: summaries}

	const countQuery = `SELECT COUNT(*), COUNT(*) FILTER (WHERE status='active') FROM categories`
	if err := r.storage.pool.QueryRow(ctx, countQuery).Scan(&overview.TotalCategories, &overview.TotalActiveCategories); err != nil {
		return nil, err
	}

	const mostOrderedQuery = `SELECT c.id, c.name, SUM(oi.quantity) AS total_ordered
                              FROM order_items oi
                              JOIN products p ON p.id = oi.product_id
                              JOIN categories c ON c.id = p.category_id
                              GROUP BY c.id, c.name
                              ORDER BY total_ordered DESC
                              LIMIT 1`
	var most model.MostOrderedCategory
	err = r.storage.pool.QueryRow(ctx, mostOrderedQuery).Scan(&most.ID, &most.Name, &most.TotalOrdered)
	switch {
	case err == nil:
		overview.MostOrdered = &most
	case errors.Is(err, pgx.ErrNoRows):
		// no orders yet
	default:
		return nil, err
	}

	return overview, nil
}

func (r *categoryRepository) Update(ctx context.Context, id int64, upd repository.CategoryUpdate) (*model.Category, error) {
	var updated *model.Category
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var imageID, imageURL *string
		if upd.Image != nil {
			imageID = &upd.Image.ID
			imageURL = &upd.Image.URL
		}

		const update = `UPDATE categories SET
                            name = COALESCE($2, name),
                            description = COALESCE($3, description),
                            status = COALESCE($4, status),
                            image_id = COALESCE($5, image_id),
                            image_url = COALESCE($6, image_url),
                            updated_at = NOW()
                        WHERE id=$1
                        RETURNING id, name, description, status, image_id, image_url, created_at, updated_at`
		var c model.Category
		err := tx.QueryRow(ctx, update, id, upd.Name, upd.Description, upd.Status, imageID, imageURL).
			Scan(&c.ID, &c.Name, &c.Description, &c.Status, &c.Image.ID, &c.Image.URL, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			if isUniqueViolation(err) {
				return domainErrors.ErrAlreadyExists
			}
			return err
		}

		if upd.SubcategoryIDs != nil {
			if err := replaceSubcategoryLinks(ctx, tx, id, upd.SubcategoryIDs); err != nil {
				return err
			}
		}

		refs, err := subcategoryRefsTx(ctx, tx, id)
		if err != nil {
			return err
		}
		c.Subcategories = refs
		updated = &c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM categories WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- SubcategoryRepository implementation ---

func (r *subcategoryRepository) Create(ctx context.Context, name string) (*model.Subcategory, error) {
	const query = `INSERT INTO subcategories (name) VALUES ($1)
                   RETURNING id, status, created_at, updated_at`
	var s model.Subcategory
	if err := r.storage.pool.QueryRow(ctx, query, name).Scan(&s.ID, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	s.Name = name
	return &s, nil
}

func (r *subcategoryRepository) List(ctx context.Context) ([]model.Subcategory, error) {
	const query = `SELECT id, name, status, created_at, updated_at FROM subcategories ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Subcategory
	for rows.Next() {
		var s model.Subcategory
		if err := rows.Scan(&s.ID, &s.Name, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func (r *subcategoryRepository) Update(ctx context.Context, id int64, name string) (*model.Subcategory, error) {
	const query = `UPDATE subcategories SET name=$2, updated_at=NOW() WHERE id=$1
                   RETURNING id, name, status, created_at, updated_at`
	var s model.Subcategory
	err := r.storage.pool.QueryRow(ctx, query, id, name).Scan(&s.ID, &s.Name, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *subcategoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM subcategories WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- ProductRepository implementation ---

func (r *productRepository) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	const query = `INSERT INTO products (name, price, description, status, stock, image_id, image_url, category_id)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, 0))
                   RETURNING id, created_at, updated_at`
	created := product
	err := r.storage.pool.QueryRow(ctx, query,
		product.Name, product.Price, product.Description, product.Status, product.Stock,
		product.Image.ID, product.Image.URL, product.CategoryID).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

const productListingQuery = `SELECT p.id, p.name, p.price, p.description, p.status, p.image_url,
                                    COALESCE(c.name, ''), COALESCE(sc.name, '')
                             FROM products p
                             LEFT JOIN categories c ON c.id = p.category_id
                             LEFT JOIN LATERAL (
                                 SELECT s.name FROM category_subcategories cs
                                 JOIN subcategories s ON s.id = cs.subcategory_id
                                 WHERE cs.category_id = c.id ORDER BY s.id LIMIT 1
                             ) sc ON TRUE`

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.ProductListing, error) {
	query := productListingQuery + ` WHERE p.id=$1`
	var p model.ProductListing
	err := r.storage.pool.QueryRow(ctx, query, id).
		Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.Status, &p.ImageURL, &p.CategoryName, &p.SubcategoryName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) GetByIDs(ctx context.Context, ids []int64) ([]model.Product, error) {
	const query = `SELECT id, name, price, description, status, stock, image_id, image_url,
                          COALESCE(category_id, 0), created_at, updated_at
                   FROM products WHERE id = ANY($1)`
	rows, err := r.storage.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.Status, &p.Stock,
			&p.Image.ID, &p.Image.URL, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (r *productRepository) List(ctx context.Context) ([]model.ProductListing, error) {
	query := productListingQuery + ` ORDER BY p.id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ProductListing
	for rows.Next() {
		var p model.ProductListing
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.Status, &p.ImageURL, &p.CategoryName, &p.SubcategoryName); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (r *productRepository) Update(ctx context.Context, id int64, upd repository.ProductUpdate) (*model.Product, error) {
	var imageID, imageURL *string
	if upd.Image != nil {
		imageID = &upd.Image.ID
		imageURL = &upd.Image.URL
	}

	const query = `UPDATE products SET
                       name = COALESCE($2, name),
                       price = COALESCE($3, price),
                       description = COALESCE($4, description),
                       status = COALESCE($5, status),
                       stock = COALESCE($6, stock),
                       image_id = COALESCE($7, image_id),
                       image_url = COALESCE($8, image_url),
                       category_id = COALESCE($9, category_id),
                       updated_at = NOW()
                   WHERE id=$1
                   RETURNING id, name, price, description, status, stock, image_id, image_url,
                             COALESCE(category_id, 0), created_at, updated_at`
	var p model.Product
	err := r.storage.pool.QueryRow(ctx, query, id, upd.Name, upd.Price, upd.Description, upd.Status, upd.Stock, imageID, imageURL, upd.CategoryID).
		Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.Status, &p.Stock,
			&p.Image.ID, &p.Image.URL, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- OrderRepository implementation ---

const orderColumns = `id, number, email, address, phone, total, payment_type, status,
                      reference, idempotency_key, metadata, created_at, updated_at`

func (r *orderRepository) Create(ctx context.Context, draft model.OrderDraft) (*model.Order, error) {
	var order model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insert = `INSERT INTO orders (number, email, address, phone, total, payment_type, status, idempotency_key, metadata)
                        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                        RETURNING id, status, created_at, updated_at`
		err := tx.QueryRow(ctx, insert,
			draft.Number, draft.Email, draft.Address, draft.Phone, draft.Total,
			draft.PaymentType, model.OrderStatusPending, draft.IdempotencyKey, draft.Metadata).
			Scan(&order.ID, &order.Status, &order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return domainErrors.ErrAlreadyExists
			}
			return err
		}

		for _, item := range draft.Items {
			const insertItem = `INSERT INTO order_items (order_id, product_id, quantity) VALUES ($1, $2, $3)`
			if _, err := tx.Exec(ctx, insertItem, order.ID, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		items, err := orderItemsTx(ctx, tx, order.ID)
		if err != nil {
			return err
		}
		order.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}

	order.Number = draft.Number
	order.Email = draft.Email
	order.Address = draft.Address
	order.Phone = draft.Phone
	order.Total = draft.Total
	order.PaymentType = draft.PaymentType
	order.IdempotencyKey = draft.IdempotencyKey
	order.Metadata = draft.Metadata
	return &order, nil
}

const orderItemsQuery = `SELECT oi.product_id, oi.quantity, COALESCE(p.name, ''), COALESCE(p.price, 0)
                         FROM order_items oi
                         LEFT JOIN products p ON p.id = oi.product_id
                         WHERE oi.order_id=$1 ORDER BY oi.id`

func orderItemsTx(ctx context.Context, tx pgx.Tx, orderID int64) ([]model.OrderItem, error) {
	rows, err := tx.Query(ctx, orderItemsQuery, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrderItems(rows)
}

func scanOrderItems(rows pgx.Rows) ([]model.OrderItem, error) {
	var items []model.OrderItem
	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Quantity, &item.Name, &item.Price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	return r.getOne(ctx, query, id)
}

func (r *orderRepository) GetByIdempotencyKey(ctx context.Context, key string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE idempotency_key=$1`
	return r.getOne(ctx, query, key)
}

func (r *orderRepository) getOne(ctx context.Context, query string, arg any) (*model.Order, error) {
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, arg).
		Scan(&o.ID, &o.Number, &o.Email, &o.Address, &o.Phone, &o.Total, &o.PaymentType, &o.Status,
			&o.Reference, &o.IdempotencyKey, &o.Metadata, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	rows, err := r.storage.pool.Query(ctx, orderItemsQuery, o.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items, err := scanOrderItems(rows)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *orderRepository) AttachReference(ctx context.Context, orderID int64, reference string) error {
	const query = `UPDATE orders SET reference=$2, updated_at=NOW()
                   WHERE id=$1 AND reference IS NULL`
	_, err := r.storage.pool.Exec(ctx, query, orderID, reference)
	return err
}

func (r *orderRepository) List(ctx context.Context, page, size int) ([]model.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}

	var total int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.storage.pool.Query(ctx, query, size, (page-1)*size)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.Number, &o.Email, &o.Address, &o.Phone, &o.Total, &o.PaymentType, &o.Status,
			&o.Reference, &o.IdempotencyKey, &o.Metadata, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range orders {
		itemRows, err := r.storage.pool.Query(ctx, orderItemsQuery, orders[i].ID)
		if err != nil {
			return nil, 0, err
		}
		items, err := scanOrderItems(itemRows)
		itemRows.Close()
		if err != nil {
			return nil, 0, err
		}
		orders[i].Items = items
	}

	return orders, total, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	const query = `UPDATE orders SET status=$2, updated_at=NOW() WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, orderID, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
