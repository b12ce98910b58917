package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaGnaRoK-thor/invsys/internal/domain"
	"github.com/RaGnaRoK-thor/invsys/internal/domain/entity"
	"github.com/RaGnaRoK-thor/invsys/internal/infrastructure/sqlite"
)

// newTestDB abre una base SQLite temporal con el esquema inicializado.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, sqlite.InitSchema(db))
	return db
}

func strPtr(s string) *string { return &s }
func i64Ptr(n int64) *int64   { return &n }

func newProduct(name string, stock, safeStock int64) *entity.Product {
	return &entity.Product{
		Name:         name,
		Price:        decimal.NewFromFloat(9.99),
		CurrencyCode: "USD",
		Stock:        stock,
		SafeStock:    safeStock,
	}
}

func TestInitSchema_Idempotente(t *testing.T) {
	db := newTestDB(t)
	// Una segunda pasada sobre el mismo archivo no debe fallar.
	require.NoError(t, sqlite.InitSchema(db))
}

func TestUserRepo_CreateYDuplicado(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)

	user := &entity.User{EmployeeID: "EMP-001", PasswordHash: "$2a$10$hash"}
	require.NoError(t, repo.Create(user))
	assert.NotZero(t, user.ID)

	got, err := repo.GetByEmployeeID("EMP-001")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "$2a$10$hash", got.PasswordHash)

	// Mismo employee_id de nuevo: violación de UNIQUE clasificada como dominio.
	err = repo.Create(&entity.User{EmployeeID: "EMP-001", PasswordHash: "otro"})
	assert.ErrorIs(t, err, domain.ErrEmployeeIDExists)
}

func TestUserRepo_GetInexistente(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)

	got, err := repo.GetByEmployeeID("EMP-999")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSupplierRepo_DuplicadoNoModificaElPrimero(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewSupplierRepository(db)

	first := &entity.Supplier{Name: "Acme", ContactPerson: strPtr("Ana")}
	require.NoError(t, repo.Create(first))

	err := repo.Create(&entity.Supplier{Name: "Acme", ContactPerson: strPtr("Otro")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Acme", list[0].Name)
	require.NotNil(t, list[0].ContactPerson)
	assert.Equal(t, "Ana", *list[0].ContactPerson)
}

func TestSupplierRepo_UpdateYDeletePorFilasAfectadas(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewSupplierRepository(db)

	s := &entity.Supplier{Name: "Acme"}
	require.NoError(t, repo.Create(s))

	s.Name = "Acme Corp"
	s.Phone = strPtr("555-0100")
	require.NoError(t, repo.Update(s))

	// id inexistente: cero filas afectadas -> ErrNotFound
	err := repo.Update(&entity.Supplier{ID: 9999, Name: "Nadie"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Borrar dos veces seguidas: la primera pasa, la segunda es ErrNotFound.
	require.NoError(t, repo.Delete(s.ID))
	assert.ErrorIs(t, repo.Delete(s.ID), domain.ErrNotFound)
}

func TestCategoryRepo_CamposNulos(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewCategoryRepository(db)

	require.NoError(t, repo.Create(&entity.Category{Name: "Bebidas"}))
	require.NoError(t, repo.Create(&entity.Category{Name: "Snacks", Description: strPtr("dulce y salado")}))

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Nil(t, list[0].Description)
	require.NotNil(t, list[1].Description)
	assert.Equal(t, "dulce y salado", *list[1].Description)
}

func TestProductRepo_ListResuelveNombresConLeftJoin(t *testing.T) {
	db := newTestDB(t)
	categories := sqlite.NewCategoryRepository(db)
	suppliers := sqlite.NewSupplierRepository(db)
	products := sqlite.NewProductRepository(db)

	cat := &entity.Category{Name: "Bebidas"}
	require.NoError(t, categories.Create(cat))
	sup := &entity.Supplier{Name: "Acme"}
	require.NoError(t, suppliers.Create(sup))

	linked := newProduct("Cola", 10, 100)
	linked.CategoryID = i64Ptr(cat.ID)
	linked.SupplierID = i64Ptr(sup.ID)
	require.NoError(t, products.Create(linked))

	orphan := newProduct("Suelto", 5, 100)
	require.NoError(t, products.Create(orphan))

	list, err := products.List()
	require.NoError(t, err)
	require.Len(t, list, 2)

	byName := make(map[string]*entity.ProductWithRelations, len(list))
	for _, p := range list {
		byName[p.Name] = p
	}

	require.NotNil(t, byName["Cola"].CategoryName)
	assert.Equal(t, "Bebidas", *byName["Cola"].CategoryName)
	require.NotNil(t, byName["Cola"].SupplierName)
	assert.Equal(t, "Acme", *byName["Cola"].SupplierName)

	// Referencia ausente -> NULL, nunca error.
	assert.Nil(t, byName["Suelto"].CategoryName)
	assert.Nil(t, byName["Suelto"].SupplierName)
}

// Borrar una categoría referenciada desvincula el producto (FK en NULL) sin
// borrarlo en cascada.
func TestCategoryRepo_DeleteDesvinculaProductos(t *testing.T) {
	db := newTestDB(t)
	categories := sqlite.NewCategoryRepository(db)
	products := sqlite.NewProductRepository(db)

	cat := &entity.Category{Name: "Bebidas"}
	require.NoError(t, categories.Create(cat))

	p := newProduct("Cola", 10, 100)
	p.CategoryID = i64Ptr(cat.ID)
	require.NoError(t, products.Create(p))

	require.NoError(t, categories.Delete(cat.ID))

	list, err := products.List()
	require.NoError(t, err)
	require.Len(t, list, 1, "el producto debe seguir existiendo")
	assert.Nil(t, list[0].CategoryID)
	assert.Nil(t, list[0].CategoryName)
}

// La desvinculación debe cumplirse en cualquier conexión del pool, no solo en
// la primera: se retiene un rows abierto para ocupar una conexión y forzar que
// el DELETE corra sobre una conexión nueva.
func TestCategoryRepo_DeleteDesvinculaEnConexionNueva(t *testing.T) {
	db := newTestDB(t)
	categories := sqlite.NewCategoryRepository(db)
	products := sqlite.NewProductRepository(db)

	cat := &entity.Category{Name: "Bebidas"}
	require.NoError(t, categories.Create(cat))

	p := newProduct("Cola", 10, 100)
	p.CategoryID = i64Ptr(cat.ID)
	require.NoError(t, products.Create(p))

	// Ocupa la conexión ya usada hasta después del DELETE.
	rows, err := db.Query(`SELECT id FROM categories`)
	require.NoError(t, err)
	defer rows.Close()

	require.NoError(t, categories.Delete(cat.ID))
	require.NoError(t, rows.Close())

	list, err := products.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].CategoryID, "la FK debe quedar en NULL tras borrar la categoría")
}

func TestProductRepo_PrecioRoundTrip(t *testing.T) {
	db := newTestDB(t)
	products := sqlite.NewProductRepository(db)

	p := newProduct("Cola", 10, 100)
	p.Price = decimal.NewFromFloat(1234.5)
	require.NoError(t, products.Create(p))

	list, err := products.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Price.Equal(decimal.NewFromFloat(1234.5)),
		"price leído: %s", list[0].Price)
}

func TestAnalyticsRepo_ConteoDeReposicion(t *testing.T) {
	db := newTestDB(t)
	products := sqlite.NewProductRepository(db)
	analytics := sqlite.NewAnalyticsRepository(db)

	// stock=10 < 50 -> cuenta; stock=60 no; safe_stock=0 queda excluido por el guard.
	require.NoError(t, products.Create(newProduct("bajo", 10, 100)))
	require.NoError(t, products.Create(newProduct("sano", 60, 100)))
	require.NoError(t, products.Create(newProduct("sin umbral", 5, 0)))

	n, err := analytics.CountProductsNeedingRestock(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	total, err := analytics.CountProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestAnalyticsRepo_ConteosBasicos(t *testing.T) {
	db := newTestDB(t)
	analytics := sqlite.NewAnalyticsRepository(db)
	users := sqlite.NewUserRepository(db)
	categories := sqlite.NewCategoryRepository(db)

	require.NoError(t, users.Create(&entity.User{EmployeeID: "EMP-001", PasswordHash: "h"}))
	require.NoError(t, categories.Create(&entity.Category{Name: "Bebidas"}))

	ctx := context.Background()
	n, err := analytics.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = analytics.CountCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = analytics.CountSuppliers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
