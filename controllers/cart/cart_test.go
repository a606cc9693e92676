package cartControllers

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

	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Cart{}, &models.CartItem{}))

	cleanup := func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}
	return db, cleanup
}

func cartRouter(db *gorm.DB, sid string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("session_id", sid)
		c.Next()
	})
	r.PUT("/cart/:product_id", UpdateCartQuantity(db))
	return r
}

func TestUpdateCartQuantity_ClampsToOne(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	const sid = "sess_clamp"
	cart := models.Cart{SessionID: sid}
	require.NoError(t, db.Create(&cart).Error)
	require.NoError(t, db.Create(&models.CartItem{
		CartID:    cart.CartID,
		ProductID: 7,
		UnitPrice: 500,
		Quantity:  3,
		AddedAt:   time.Now(),
	}).Error)

	r := cartRouter(db, sid)

	tests := []struct {
		name  string
		input int
		want  int
	}{
		{"zero clamps to one", 0, 1},
		{"negative clamps to one", -5, 1},
		{"positive passes through", 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := json.Marshal(gin.H{"quantity": tt.input})
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPut, "/cart/7", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)

			var returned models.CartItem
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &returned))
			assert.Equal(t, tt.want, returned.Quantity)

			var stored models.CartItem
			require.NoError(t, db.First(&stored, "cart_id = ? AND product_id = ?", cart.CartID, 7).Error)
			assert.Equal(t, tt.want, stored.Quantity)
		})
	}
}
