package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Categories() CategoryRepository
	Subcategories() SubcategoryRepository
	Products() ProductRepository
	Orders() OrderRepository
}
