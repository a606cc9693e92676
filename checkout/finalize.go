package checkout

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/janjabro30/Nornex-as-sub000/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrEmptyCart = errors.New("cart is empty")

var (
	orderSeqMu  sync.Mutex
	lastOrderMs int64
)

// OrderNumber generates the customer-facing order reference from the
// millisecond timestamp. The issued value is strictly increasing, so two
// orders placed in the same millisecond never collide on the unique index.
// Example: NOR-LZX3K9F2
func OrderNumber(at time.Time) string {
	orderSeqMu.Lock()
	ms := at.UnixMilli()
	if ms <= lastOrderMs {
		ms = lastOrderMs + 1
	}
	lastOrderMs = ms
	orderSeqMu.Unlock()
	return "NOR-" + strings.ToUpper(strconv.FormatInt(ms, 36))
}

// OrderSubmitter finalizes a validated checkout. The boundary exists so the
// HTTP layer never touches persistence directly and tests can substitute
// their own implementation.
type OrderSubmitter interface {
	Submit(ctx context.Context, sess *Session, items []models.CartItem) (*models.Order, error)
}

// GormSubmitter persists the order in one transaction: stock is locked and
// deducted, discount usage is counted, and the cart is cleared. Notify, when
// set, is called with the stored order after commit.
type GormSubmitter struct {
	DB     *gorm.DB
	Notify func(models.Order)
}

func (g *GormSubmitter) Submit(ctx context.Context, sess *Session, items []models.CartItem) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	w := sess.Wizard
	subtotal := models.Subtotal(items)
	breakdown := Quote(subtotal, w.DeliveryMethod, w.Discount)

	order := models.Order{
		OrderNumber:    OrderNumber(time.Now()),
		SessionID:      sess.CartToken,
		Delivery:       w.Delivery,
		Subtotal:       breakdown.Subtotal,
		DiscountAmount: breakdown.DiscountAmount,
		Tax:            breakdown.Tax,
		ShippingCost:   breakdown.Shipping,
		TotalAmount:    breakdown.Total,
		DeliveryMethod: w.DeliveryMethod.ID,
		PaymentMethod:  w.PaymentMethod,
		Status:         models.OrderStatusPending,
		PaymentStatus:  models.PaymentStatusPending,
		CreatedAt:      time.Now(),
	}
	if w.Discount != nil {
		order.DiscountCode = w.Discount.Code
	}

	err := g.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Where("session_id = ?", sess.CartToken).First(&cart).Error; err != nil {
			return err
		}

		for _, item := range items {
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, "id = ?", item.ProductID).Error; err != nil {
				return err
			}
			if product.Stock < item.Quantity {
				return errors.New("insufficient stock for product: " + item.ProductNameNO)
			}
			product.Stock -= item.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			order.Items = append(order.Items, models.OrderItem{
				ProductID:     item.ProductID,
				ProductSKU:    item.ProductSKU,
				ProductNameNO: item.ProductNameNO,
				ProductNameEN: item.ProductNameEN,
				ProductImage:  item.ProductImage,
				ProductGrade:  item.ProductGrade,
				UnitPrice:     item.UnitPrice,
				Quantity:      item.Quantity,
			})
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Count the use of the applied code.
		if w.Discount != nil {
			if err := tx.Model(&models.DiscountCode{}).
				Where("code = ?", w.Discount.Code).
				Update("current_uses", gorm.Expr("current_uses + 1")).Error; err != nil {
				return err
			}
		}

		// Clear cart items; the order now owns the snapshot.
		return tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	if g.Notify != nil {
		g.Notify(order)
	}
	return &order, nil
}
