package checkoutControllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/janjabro30/Nornex-as-sub000/checkout"
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

	require.NoError(t, db.AutoMigrate(&models.Cart{}, &models.CartItem{}))

	cleanup := func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}
	return db, cleanup
}

// fakeSubmitter stands in for the GORM finalizer so the handler flow can be
// exercised without touching order persistence.
type fakeSubmitter struct {
	calls int
	order models.Order
}

func (f *fakeSubmitter) Submit(ctx context.Context, sess *checkout.Session, items []models.CartItem) (*models.Order, error) {
	f.calls++
	o := f.order
	return &o, nil
}

func testRouter(db *gorm.DB, store *checkout.SessionStore, submitter checkout.OrderSubmitter, sid string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("session_id", sid)
		c.Next()
	})
	r.POST("/checkout/start", StartCheckout(db, store))
	r.PUT("/checkout/:checkoutID/delivery", SubmitDelivery(db, store))
	r.PUT("/checkout/:checkoutID/shipping", SubmitShipping(db, store))
	r.POST("/checkout/:checkoutID/submit", Submit(db, store, submitter))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, target string, body any) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func seedCart(t *testing.T, db *gorm.DB, sid string, items int) {
	t.Helper()
	cart := models.Cart{SessionID: sid}
	require.NoError(t, db.Create(&cart).Error)
	for i := 0; i < items; i++ {
		require.NoError(t, db.Create(&models.CartItem{
			CartID:    cart.CartID,
			ProductID: uint(i + 1),
			UnitPrice: 500,
			Quantity:  1,
			AddedAt:   time.Now(),
		}).Error)
	}
}

func TestCheckoutFlow_TermsGateThenSubmit(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	const sid = "sess_e2e"
	seedCart(t, db, sid, 2)

	store := checkout.NewSessionStore(time.Minute)
	fake := &fakeSubmitter{order: models.Order{OrderNumber: "NOR-TEST1"}}
	r := testRouter(db, store, fake, sid)

	w, resp := doJSON(t, r, http.MethodPost, "/checkout/start", gin.H{})
	require.Equal(t, http.StatusCreated, w.Code)

	var checkoutID string
	require.NoError(t, json.Unmarshal(resp["checkout_id"], &checkoutID))
	require.NotEmpty(t, checkoutID)

	// Submitting straight from step 1 is blocked by the step gate.
	w, resp = doJSON(t, r, http.MethodPost, "/checkout/"+checkoutID+"/submit",
		gin.H{"payment_method": "card", "accept_terms": true})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, string(resp["field_errors"]), "step")
	assert.Zero(t, fake.calls)

	w, _ = doJSON(t, r, http.MethodPut, "/checkout/"+checkoutID+"/delivery", gin.H{
		"name": "Ola Nordmann", "email": "ola@example.com", "phone": "99887766",
		"address": "Storgata 1", "postal_code": "0155", "city": "Oslo",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodPut, "/checkout/"+checkoutID+"/shipping",
		gin.H{"method_id": "express"})
	require.Equal(t, http.StatusOK, w.Code)

	// Terms unchecked: rejected inline, nothing submitted, session survives.
	w, resp = doJSON(t, r, http.MethodPost, "/checkout/"+checkoutID+"/submit",
		gin.H{"payment_method": "card", "accept_terms": false})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, string(resp["field_errors"]), "accept_terms")
	assert.Zero(t, fake.calls)
	assert.Equal(t, 1, store.Len())

	// Terms checked: the submitter runs once and the session is ended.
	w, resp = doJSON(t, r, http.MethodPost, "/checkout/"+checkoutID+"/submit",
		gin.H{"payment_method": "vipps", "accept_terms": true})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, string(resp["order_number"]), "NOR-TEST1")
	assert.Equal(t, 1, fake.calls)
	assert.Zero(t, store.Len())

	// The ended session is gone.
	w, _ = doJSON(t, r, http.MethodPost, "/checkout/"+checkoutID+"/submit",
		gin.H{"payment_method": "card", "accept_terms": true})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 1, fake.calls)
}

func TestStartCheckout_EmptyCartRejected(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	const sid = "sess_empty"
	seedCart(t, db, sid, 0)

	store := checkout.NewSessionStore(time.Minute)
	r := testRouter(db, store, &fakeSubmitter{}, sid)

	w, _ := doJSON(t, r, http.MethodPost, "/checkout/start", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, store.Len())
}
