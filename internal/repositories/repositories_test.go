package repositories_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kopiadmin/internal/models"
	"kopiadmin/internal/repositories"
	"kopiadmin/pkg/apiclient"
)

// deadClient points at a server that is already gone, simulating an
// unreachable backend.
func deadClient(t *testing.T) *apiclient.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	return apiclient.New(srv.URL)
}

func TestProductRepository_ListFallsBackOnNetworkFailure(t *testing.T) {
	repo := repositories.NewRESTProductRepository(deadClient(t), repositories.FallbackProducts())

	products, err := repo.GetAll(nil)
	require.NoError(t, err, "fallback lists resolve, they do not reject")
	assert.NotEmpty(t, products)
}

func TestProductRepository_FallbackListIsIndependentPerCall(t *testing.T) {
	repo := repositories.NewRESTProductRepository(deadClient(t), repositories.FallbackProducts())

	first, err := repo.GetAll(nil)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	// A page reconciles its collection in place after acknowledged
	// mutations; that must never reach the repository's own dataset.
	original := first[0].Name
	first[0].Name = "Renamed Locally"

	second, err := repo.GetAll(nil)
	require.NoError(t, err)
	assert.Equal(t, original, second[0].Name)
}

func TestCategoryRepository_FallbackListIsIndependentPerCall(t *testing.T) {
	repo := repositories.NewRESTCategoryRepository(deadClient(t), repositories.FallbackCategories())

	first, err := repo.GetAll()
	require.NoError(t, err)
	require.NotEmpty(t, first)
	original := first[0].Title
	first[0].Title = "Renamed Locally"

	second, err := repo.GetAll()
	require.NoError(t, err)
	assert.Equal(t, original, second[0].Title)
}

func TestTagRepository_FallbackListIsIndependentPerCall(t *testing.T) {
	repo := repositories.NewRESTTagRepository(deadClient(t), repositories.FallbackTags())

	first, err := repo.GetAll()
	require.NoError(t, err)
	require.NotEmpty(t, first)
	original := first[0].Name
	first[0].Name = "Renamed Locally"

	second, err := repo.GetAll()
	require.NoError(t, err)
	assert.Equal(t, original, second[0].Name)
}

func TestProductRepository_ListPropagatesWithoutFallback(t *testing.T) {
	repo := repositories.NewRESTProductRepository(deadClient(t), nil)

	_, err := repo.GetAll(nil)
	assert.Error(t, err)
}

func TestProductRepository_ListSendsQueryFilters(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/product/all", r.URL.Path)
		gotQuery = r.URL.RawQuery
		io.WriteString(w, `{"products":[]}`)
	}))
	defer srv.Close()

	repo := repositories.NewRESTProductRepository(apiclient.New(srv.URL), nil)
	_, err := repo.GetAll(&repositories.ProductFilters{
		Category: "c-1",
		MinPrice: 2.5,
		Search:   "latte",
	})
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "category=c-1")
	assert.Contains(t, gotQuery, "min_price=2.5")
	assert.Contains(t, gotQuery, "search=latte")
}

func TestProductRepository_GetByIDNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"message":"no such product"}`)
	}))
	defer srv.Close()

	repo := repositories.NewRESTProductRepository(apiclient.New(srv.URL), nil)
	_, err := repo.GetByID("missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestProductRepository_CreatePicksEncoding(t *testing.T) {
	var contentTypes []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentTypes = append(contentTypes, r.Header.Get("Content-Type"))
		io.WriteString(w, `{"product":{"id":"p-1","name":"Mocha"}}`)
	}))
	defer srv.Close()

	repo := repositories.NewRESTProductRepository(apiclient.New(srv.URL), nil)
	payload := repositories.ProductPayload{
		Name:        "Mocha",
		Cost:        4.5,
		Quantity:    10,
		CategoryIDs: []string{"c-1"},
	}

	_, err := repo.Create(payload)
	require.NoError(t, err)

	payload.Image = &repositories.ImageFile{Name: "mocha.png", MIME: "image/png", Data: []byte{1}}
	_, err = repo.Create(payload)
	require.NoError(t, err)

	require.Len(t, contentTypes, 2)
	assert.Contains(t, contentTypes[0], "application/json")
	assert.True(t, strings.HasPrefix(contentTypes[1], "multipart/form-data; boundary="))
}

func TestProductRepository_PriceRange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/product/price", r.URL.Path)
		io.WriteString(w, `{"min_price":2.5,"max_price":499.99}`)
	}))
	defer srv.Close()

	repo := repositories.NewRESTProductRepository(apiclient.New(srv.URL), nil)
	min, max, err := repo.PriceRange()
	require.NoError(t, err)
	assert.InDelta(t, 2.5, min, 0.001)
	assert.InDelta(t, 499.99, max, 0.001)
}

func TestProductRepository_PriceRangePropagatesFailure(t *testing.T) {
	repo := repositories.NewRESTProductRepository(deadClient(t), repositories.FallbackProducts())
	_, _, err := repo.PriceRange()
	assert.Error(t, err)
}

func TestProductRepository_DeleteAlwaysPropagates(t *testing.T) {
	// Deliberately no fallback semantics on mutations, even when the list
	// side of the same repository has one.
	repo := repositories.NewRESTProductRepository(deadClient(t), repositories.FallbackProducts())
	assert.Error(t, repo.Delete("p-1"))
}

func TestCategoryRepository_CreateScenario(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/categories/create", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"title":"Seasonal"}`, string(body))
		io.WriteString(w, `{"category":{"id":"c-99","title":"Seasonal"}}`)
	}))
	defer srv.Close()

	repo := repositories.NewRESTCategoryRepository(apiclient.New(srv.URL), nil)
	created, err := repo.Create("Seasonal")
	require.NoError(t, err)
	assert.Equal(t, "c-99", created.ID)
	assert.Equal(t, "Seasonal", created.Title)
}

func TestCategoryRepository_ListFallsBack(t *testing.T) {
	repo := repositories.NewRESTCategoryRepository(deadClient(t), repositories.FallbackCategories())
	categories, err := repo.GetAll()
	require.NoError(t, err)
	assert.NotEmpty(t, categories)
}

func TestTagRepository_UpdateHitsEditEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/tags/edit/t-1", r.URL.Path)
		io.WriteString(w, `{"tag":{"id":"t-1","name":"Limited"}}`)
	}))
	defer srv.Close()

	repo := repositories.NewRESTTagRepository(apiclient.New(srv.URL), nil)
	updated, err := repo.Update("t-1", "Limited")
	require.NoError(t, err)
	assert.Equal(t, "Limited", updated.Name)
}

func TestOrderRepository_UpdateStatusSendsPartialBody(t *testing.T) {
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/orders/edit/42", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		io.WriteString(w, `{"order":{"id":42,"delivery_status":"shipped","payment":{"id":null,"method":"Credit Card","status":"unpaid"}}}`)
	}))
	defer srv.Close()

	repo := repositories.NewRESTOrderRepository(apiclient.New(srv.URL))
	status := models.DeliveryShipped
	updated, err := repo.UpdateStatus(42, models.OrderStatusUpdate{DeliveryStatus: &status})
	require.NoError(t, err)

	// The body names only delivery_status; payment_status is omitted so the
	// server leaves the payment sub-record alone.
	assert.Equal(t, map[string]interface{}{"delivery_status": "shipped"}, gotBody)
	assert.Equal(t, models.DeliveryShipped, updated.DeliveryStatus)
	assert.Equal(t, models.PaymentUnpaid, updated.Payment.Status)
}

func TestOrderRepository_UpdateStatusRejectsUnknownStatus(t *testing.T) {
	repo := repositories.NewRESTOrderRepository(deadClient(t))
	bogus := "teleported"
	_, err := repo.UpdateStatus(1, models.OrderStatusUpdate{DeliveryStatus: &bogus})
	assert.ErrorContains(t, err, "invalid delivery status")
}

func TestUserRepository_AdminLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/adminLogin", r.URL.Path)
		io.WriteString(w, `{"token":"tok-1","user":{"id":"u-1","username":"admin","email":"a@b.com","is_admin":true}}`)
	}))
	defer srv.Close()

	repo := repositories.NewRESTUserRepository(apiclient.New(srv.URL))
	resp, err := repo.AdminLogin("a@b.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", resp.Token)
	assert.True(t, resp.User.IsAdmin)
}

func TestDemoOrders_AreNormalized(t *testing.T) {
	orders := repositories.DemoOrders()
	require.NotEmpty(t, orders)
	for _, o := range orders {
		assert.NotZero(t, o.ID, "legacy ids must be converted to numeric form")
		assert.Equal(t, models.DeliveryPending, o.DeliveryStatus)
		assert.NotEmpty(t, o.Carts)
	}
}
