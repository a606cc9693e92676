package checkout

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/janjabro30/Nornex-as-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)

	port, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf(
		"host=%s port=%d user=testuser password=testpass dbname=testdb sslmode=disable",
		host, port.Int(),
	)
	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.DiscountCode{},
	))

	cleanup := func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}
	return db, cleanup
}

// seedCheckout creates a product with stock, a cart holding quantity of it,
// and returns the session plus the cart items to submit.
func seedCheckout(t *testing.T, db *gorm.DB, sid string, stock, quantity int) (*Session, []models.CartItem) {
	t.Helper()

	product := models.Product{
		SKU:    "NX-LT-001",
		NameNO: "Lenovo ThinkPad T14 (refurbished)",
		NameEN: "Lenovo ThinkPad T14 (refurbished)",
		Price:  1000,
		Grade:  models.GradeA,
		Stock:  stock,
	}
	require.NoError(t, db.Create(&product).Error)

	cart := models.Cart{SessionID: sid}
	require.NoError(t, db.Create(&cart).Error)

	item := models.CartItem{
		CartID:        cart.CartID,
		ProductID:     product.ID,
		ProductSKU:    product.SKU,
		ProductNameNO: product.NameNO,
		ProductNameEN: product.NameEN,
		ProductGrade:  product.Grade,
		UnitPrice:     product.Price,
		Quantity:      quantity,
		AddedAt:       time.Now(),
	}
	require.NoError(t, db.Create(&item).Error)

	sess := &Session{
		ID:        "chk-test",
		CartToken: sid,
		Wizard:    NewWizard(),
		CreatedAt: time.Now(),
	}
	sess.Wizard.Delivery = models.DeliveryInfo{
		Name: "Ola Nordmann", Email: "ola@example.com", Phone: "99887766",
		Address: "Storgata 1", PostalCode: "0155", City: "Oslo",
	}
	sess.Wizard.Step = StepPayment

	return sess, []models.CartItem{item}
}

func TestGormSubmitter_Submit(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	sess, items := seedCheckout(t, db, "sess_submit", 5, 2)
	sess.Wizard.Discount = &AppliedDiscount{
		Code: "SAVE10", Type: models.DiscountPercentage, Value: 10,
	}
	require.NoError(t, db.Create(&models.DiscountCode{
		Code: "SAVE10", Type: models.DiscountPercentage, Value: 10,
		CurrentUses: 3, IsActive: true,
	}).Error)

	var notified *models.Order
	submitter := &GormSubmitter{DB: db, Notify: func(o models.Order) { notified = &o }}

	order, err := submitter.Submit(context.Background(), sess, items)
	require.NoError(t, err)

	// 2000 subtotal, 200 off, 25% tax on 1800, free shipping at the threshold.
	assert.True(t, strings.HasPrefix(order.OrderNumber, "NOR-"))
	assert.Equal(t, 2000.0, order.Subtotal)
	assert.Equal(t, 200.0, order.DiscountAmount)
	assert.Equal(t, 450.0, order.Tax)
	assert.Equal(t, 0.0, order.ShippingCost)
	assert.Equal(t, 2250.0, order.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, order.Status)

	// Stock deducted inside the transaction.
	var product models.Product
	require.NoError(t, db.First(&product, "sku = ?", "NX-LT-001").Error)
	assert.Equal(t, 3, product.Stock)

	// The applied code's usage counter moved.
	var dc models.DiscountCode
	require.NoError(t, db.First(&dc, "code = ?", "SAVE10").Error)
	assert.Equal(t, 4, dc.CurrentUses)

	// Cart cleared; the order owns the snapshot now.
	var itemCount int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&itemCount).Error)
	assert.Zero(t, itemCount)

	var stored models.Order
	require.NoError(t, db.Preload("Items").First(&stored, "order_number = ?", order.OrderNumber).Error)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, "NX-LT-001", stored.Items[0].ProductSKU)
	assert.Equal(t, 2, stored.Items[0].Quantity)

	require.NotNil(t, notified)
	assert.Equal(t, order.OrderNumber, notified.OrderNumber)
}

func TestGormSubmitter_InsufficientStockRollsBack(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	sess, items := seedCheckout(t, db, "sess_nostock", 1, 2)

	notifyCalls := 0
	submitter := &GormSubmitter{DB: db, Notify: func(models.Order) { notifyCalls++ }}

	_, err := submitter.Submit(context.Background(), sess, items)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient stock")
	assert.Zero(t, notifyCalls)

	// Nothing from the failed transaction sticks.
	var product models.Product
	require.NoError(t, db.First(&product, "sku = ?", "NX-LT-001").Error)
	assert.Equal(t, 1, product.Stock)

	var itemCount, orderCount int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&itemCount).Error)
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.EqualValues(t, 1, itemCount)
	assert.Zero(t, orderCount)
}

func TestGormSubmitter_EmptyCart(t *testing.T) {
	sess := &Session{ID: "chk-empty", CartToken: "sess_empty", Wizard: NewWizard()}

	_, err := (&GormSubmitter{}).Submit(context.Background(), sess, nil)
	assert.ErrorIs(t, err, ErrEmptyCart)
}
