package test

import (
	"context"
	"sort"
	"strings"
	"time"

	domainErrors "github.com/Techevery/Native-admin-dashboard-backend/internal/domain/errors"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/model"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless the email is taken or the stub has an error.
func (s *UserRepositoryStub) Create(ctx context.Context, name, email, passwordHash string, role model.UserRole) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	user := &model.User{
		ID:           s.Next,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		Status:       model.StatusActive,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// TouchLastLogin stamps the login time on the stored user.
func (s *UserRepositoryStub) TouchLastLogin(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if user, ok := s.ByID[id]; ok {
		now := time.Now()
		user.LastLogin = &now
	}
	return nil
}

// ProductRepositoryStub keeps a catalog in-memory for tests.
type ProductRepositoryStub struct {
	Products map[int64]model.Product
	Next     int64
	Err      error
}

// NewProductRepositoryStub constructs stub repository with initialized maps.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{Products: make(map[int64]model.Product), Next: 1}
}

// Create stores the product with a fresh identifier.
func (s *ProductRepositoryStub) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	product.ID = s.Next
	s.Next++
	s.Products[product.ID] = product
	return &product, nil
}

// GetByID projects the stored product into a listing.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.ProductListing, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	p, ok := s.Products[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &model.ProductListing{
		ID: p.ID, Name: p.Name, Price: p.Price, Description: p.Description,
		Status: p.Status, ImageURL: p.Image.URL,
	}, nil
}

// GetByIDs returns only the products that exist.
func (s *ProductRepositoryStub) GetByIDs(ctx context.Context, ids []int64) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.Product
	for _, id := range ids {
		if p, ok := s.Products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// List returns every stored product as a listing ordered by identifier.
func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.ProductListing, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	ids := make([]int64, 0, len(s.Products))
	for id := range s.Products {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]model.ProductListing, 0, len(ids))
	for _, id := range ids {
		listing, _ := s.GetByID(ctx, id)
		out = append(out, *listing)
	}
	return out, nil
}

// Update applies non-nil fields to the stored product.
func (s *ProductRepositoryStub) Update(ctx context.Context, id int64, upd repository.ProductUpdate) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	p, ok := s.Products[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Status != nil {
		p.Status = *upd.Status
	}
	if upd.Stock != nil {
		p.Stock = *upd.Stock
	}
	if upd.Image != nil {
		p.Image = *upd.Image
	}
	if upd.CategoryID != nil {
		p.CategoryID = *upd.CategoryID
	}
	s.Products[id] = p
	return &p, nil
}

// Delete removes the stored product.
func (s *ProductRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Products[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Products, id)
	return nil
}

// OrderRepositoryStub stores orders in-memory for tests. When Catalog is set,
// created orders read back with line items populated from it, mirroring the
// real repository contract.
type OrderRepositoryStub struct {
	Orders  map[int64]*model.Order
	ByKey   map[string]*model.Order
	Catalog *ProductRepositoryStub
	Next    int64

	Err       error
	CreateErr error
	AttachErr error

	AttachCalls []string
}

// NewOrderRepositoryStub constructs stub repository with initialized maps.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{
		Orders: make(map[int64]*model.Order),
		ByKey:  make(map[string]*model.Order),
		Next:   1,
	}
}

// Create persists the draft and resolves line items against Catalog.
func (s *OrderRepositoryStub) Create(ctx context.Context, draft model.OrderDraft) (*model.Order, error) {
	if s.CreateErr != nil {
		return nil, s.CreateErr
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if draft.IdempotencyKey != nil {
		if _, exists := s.ByKey[*draft.IdempotencyKey]; exists {
			return nil, domainErrors.ErrAlreadyExists
		}
	}

	items := make([]model.OrderItem, 0, len(draft.Items))
	for _, item := range draft.Items {
		line := model.OrderItem{ProductID: item.ProductID, Quantity: item.Quantity}
		if s.Catalog != nil {
			if p, ok := s.Catalog.Products[item.ProductID]; ok {
				line.Name = p.Name
				line.Price = p.Price
			}
		}
		items = append(items, line)
	}

	order := &model.Order{
		ID:             s.Next,
		Number:         draft.Number,
		Email:          draft.Email,
		Address:        draft.Address,
		Phone:          draft.Phone,
		Items:          items,
		Total:          draft.Total,
		PaymentType:    draft.PaymentType,
		Status:         model.OrderStatusPending,
		IdempotencyKey: draft.IdempotencyKey,
		Metadata:       draft.Metadata,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	s.Next++
	s.Orders[order.ID] = order
	if draft.IdempotencyKey != nil {
		s.ByKey[*draft.IdempotencyKey] = order
	}
	return order, nil
}

// GetByID fetches order by identifier or returns not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if order, ok := s.Orders[id]; ok {
		return order, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByIdempotencyKey fetches order by key or returns not found.
func (s *OrderRepositoryStub) GetByIdempotencyKey(ctx context.Context, key string) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if order, ok := s.ByKey[key]; ok {
		return order, nil
	}
	return nil, domainErrors.ErrNotFound
}

// AttachReference records the call and sets the reference only if unset.
func (s *OrderRepositoryStub) AttachReference(ctx context.Context, orderID int64, reference string) error {
	if s.AttachErr != nil {
		return s.AttachErr
	}
	if s.Err != nil {
		return s.Err
	}
	s.AttachCalls = append(s.AttachCalls, reference)
	if order, ok := s.Orders[orderID]; ok && order.Reference == nil {
		ref := reference
		order.Reference = &ref
	}
	return nil
}

// List pages stored orders newest first by identifier.
func (s *OrderRepositoryStub) List(ctx context.Context, page, size int) ([]model.Order, int64, error) {
	if s.Err != nil {
		return nil, 0, s.Err
	}
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}
	ids := make([]int64, 0, len(s.Orders))
	for id := range s.Orders {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })

	start := (page - 1) * size
	var out []model.Order
	for i := start; i < len(ids) && i < start+size; i++ {
		out = append(out, *s.Orders[ids[i]])
	}
	return out, int64(len(ids)), nil
}

// UpdateStatus sets the status on the stored order.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if s.Err != nil {
		return s.Err
	}
	order, ok := s.Orders[orderID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	order.Status = status
	return nil
}

// CategoryRepositoryStub stores categories in-memory for tests.
type CategoryRepositoryStub struct {
	Categories    map[int64]*model.Category
	Subcategories *SubcategoryRepositoryStub
	Next          int64
	Err           error
	MostOrdered   *model.MostOrderedCategory
}

// NewCategoryRepositoryStub constructs stub repository with initialized maps.
func NewCategoryRepositoryStub() *CategoryRepositoryStub {
	return &CategoryRepositoryStub{Categories: make(map[int64]*model.Category), Next: 1}
}

// Create stores the category and resolves subcategory links.
func (s *CategoryRepositoryStub) Create(ctx context.Context, category model.Category, subcategoryIDs []int64) (*model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, existing := range s.Categories {
		if strings.EqualFold(existing.Name, category.Name) {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	category.ID = s.Next
	s.Next++
	category.Subcategories = s.resolveRefs(subcategoryIDs)
	s.Categories[category.ID] = &category
	return &category, nil
}

func (s *CategoryRepositoryStub) resolveRefs(ids []int64) []model.SubcategoryRef {
	var refs []model.SubcategoryRef
	for _, id := range ids {
		if s.Subcategories == nil {
			refs = append(refs, model.SubcategoryRef{ID: id})
			continue
		}
		if sub, ok := s.Subcategories.Items[id]; ok {
			refs = append(refs, model.SubcategoryRef{ID: sub.ID, Name: sub.Name})
		}
	}
	return refs
}

// GetByID fetches category or returns not found.
func (s *CategoryRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if c, ok := s.Categories[id]; ok {
		return c, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Overview aggregates stored categories.
func (s *CategoryRepositoryStub) Overview(ctx context.Context) (*model.CategoryOverview, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	overview := &model.CategoryOverview{MostOrdered: s.MostOrdered}
	ids := make([]int64, 0, len(s.Categories))
	for id := range s.Categories {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		c := s.Categories[id]
		overview.Categories = append(overview.Categories, model.CategorySummary{
			ID: c.ID, Name: c.Name, Description: c.Description, Status: c.Status,
			ImageURL: c.Image.URL, SubcategoryCount: len(c.Subcategories), Subcategories: c.Subcategories,
		})
		overview.TotalCategories++
		if c.Status == model.StatusActive {
			overview.TotalActiveCategories++
		}
	}
	return overview, nil
}

// Update applies non-nil fields to the stored category.
func (s *CategoryRepositoryStub) Update(ctx context.Context, id int64, upd repository.CategoryUpdate) (*model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	c, ok := s.Categories[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Description != nil {
		c.Description = *upd.Description
	}
	if upd.Status != nil {
		c.Status = *upd.Status
	}
	if upd.Image != nil {
		c.Image = *upd.Image
	}
	if upd.SubcategoryIDs != nil {
		c.Subcategories = s.resolveRefs(upd.SubcategoryIDs)
	}
	return c, nil
}

// Delete removes the stored category.
func (s *CategoryRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Categories[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Categories, id)
	return nil
}

// SubcategoryRepositoryStub stores subcategories in-memory for tests.
type SubcategoryRepositoryStub struct {
	Items map[int64]*model.Subcategory
	Next  int64
	Err   error
}

// NewSubcategoryRepositoryStub constructs stub repository with initialized maps.
func NewSubcategoryRepositoryStub() *SubcategoryRepositoryStub {
	return &SubcategoryRepositoryStub{Items: make(map[int64]*model.Subcategory), Next: 1}
}

// Create stores the subcategory.
func (s *SubcategoryRepositoryStub) Create(ctx context.Context, name string) (*model.Subcategory, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	sub := &model.Subcategory{ID: s.Next, Name: name, Status: model.StatusActive}
	s.Next++
	s.Items[sub.ID] = sub
	return sub, nil
}

// List returns all stored subcategories ordered by identifier.
func (s *SubcategoryRepositoryStub) List(ctx context.Context) ([]model.Subcategory, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	ids := make([]int64, 0, len(s.Items))
	for id := range s.Items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]model.Subcategory, 0, len(ids))
	for _, id := range ids {
		out = append(out, *s.Items[id])
	}
	return out, nil
}

// Update renames the stored subcategory.
func (s *SubcategoryRepositoryStub) Update(ctx context.Context, id int64, name string) (*model.Subcategory, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	sub, ok := s.Items[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	sub.Name = name
	return sub, nil
}

// Delete removes the stored subcategory.
func (s *SubcategoryRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Items[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Items, id)
	return nil
}

var (
	_ repository.UserRepository        = (*UserRepositoryStub)(nil)
	_ repository.ProductRepository     = (*ProductRepositoryStub)(nil)
	_ repository.OrderRepository       = (*OrderRepositoryStub)(nil)
	_ repository.CategoryRepository    = (*CategoryRepositoryStub)(nil)
	_ repository.SubcategoryRepository = (*SubcategoryRepositoryStub)(nil)
)
