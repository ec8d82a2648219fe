package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Madhav-Gupta-28/noemie-shop-go/metrics"
	"github.com/Madhav-Gupta-28/noemie-shop-go/middleware"
	"github.com/Madhav-Gupta-28/noemie-shop-go/models"
	"github.com/Madhav-Gupta-28/noemie-shop-go/shop"
	"github.com/Madhav-Gupta-28/noemie-shop-go/storage"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type client struct {
	t      *testing.T
	e      *echo.Echo
	cookie *http.Cookie
}

func newClient(t *testing.T) *client {
	t.Helper()
	m := metrics.New()
	svc := shop.New(storage.NewMemory(), shop.Options{
		Shipping: shop.DefaultShipping(),
		Now:      func() time.Time { return time.UnixMilli(1700000012345) },
		Recorder: m,
	})
	e, err := New(svc, m, middleware.SessionConfig{Secret: "test-secret", TTL: time.Hour})
	require.NoError(t, err)
	return &client{t: t, e: e}
}

func (cl *client) do(method, target string, body io.Reader, header map[string]string) *httptest.ResponseRecorder {
	cl.t.Helper()
	req := httptest.NewRequest(method, target, body)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	if cl.cookie != nil {
		req.AddCookie(cl.cookie)
	}

	rec := httptest.NewRecorder()
	cl.e.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.SessionCookie {
			cl.cookie = ck
		}
	}
	return rec
}

func (cl *client) get(target string) *httptest.ResponseRecorder {
	return cl.do(http.MethodGet, target, nil, nil)
}

func (cl *client) postForm(target string, form url.Values) *httptest.ResponseRecorder {
	return cl.do(http.MethodPost, target, strings.NewReader(form.Encode()), map[string]string{
		echo.HeaderContentType: echo.MIMEApplicationForm,
	})
}

func (cl *client) sendJSON(method, target, body string) *httptest.ResponseRecorder {
	return cl.do(method, target, strings.NewReader(body), map[string]string{
		echo.HeaderContentType: echo.MIMEApplicationJSON,
		echo.HeaderAccept:      echo.MIMEApplicationJSON,
	})
}

func addShirt(cl *client) *httptest.ResponseRecorder {
	return cl.postForm("/cart/items", url.Values{"id": {"1"}, "name": {"Shirt"}, "price": {"120"}})
}

func TestCheckoutFlow(t *testing.T) {
	cl := newClient(t)

	rec := cl.get("/products")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<span id="cart-count">0</span>`)
	require.NotNil(t, cl.cookie, "first visit starts a session")

	rec = addShirt(cl)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/products", rec.Header().Get(echo.HeaderLocation))
	addShirt(cl)

	rec = cl.get("/cart")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<span id="cart-count">2</span>`)
	assert.Contains(t, body, `<dd id="subtotal">₪240</dd>`)
	assert.Contains(t, body, `<dd id="shipping">₪25</dd>`)
	assert.Contains(t, body, `<dd id="grand">₪265</dd>`)
	assert.Equal(t, 1, strings.Count(body, `<tr data-id="1">`), "same id is one row")

	rec = cl.postForm("/cart/items/1/increment", url.Values{})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/cart", rec.Header().Get(echo.HeaderLocation))
	cl.postForm("/cart/items/1/quantity", url.Values{"qty": {"2"}})

	rec = cl.get("/checkout")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<li>Linen Shirt × 2 — ₪240</li>")
	assert.Contains(t, rec.Body.String(), `<strong id="checkout-total">₪265</strong>`)

	rec = cl.postForm("/checkout/customer", url.Values{
		"firstName": {" Noa "}, "lastName": {"Levi"}, "phone": {"050-1234567"},
		"street": {"Herzl 1"}, "city": {"Haifa"}, "zip": {"31000"}, "email": {"noa@example.com"},
	})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/payment", rec.Header().Get(echo.HeaderLocation))

	rec = cl.get("/checkout")
	assert.Contains(t, rec.Body.String(), `name="firstName" value="Noa"`)

	rec = cl.postForm("/payment", url.Values{"cardNumber": {"123"}, "exp": {"09/27"}, "cvv": {"123"}})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid card number")
	assert.Contains(t, cl.get("/cart").Body.String(), `<span id="cart-count">2</span>`, "rejected payment keeps the cart")

	rec = cl.postForm("/payment", url.Values{"cardNumber": {"4111 1111 1111"}, "exp": {"09/27"}, "cvv": {"123"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/confirmation", rec.Header().Get(echo.HeaderLocation))

	rec = cl.get("/confirmation")
	require.Equal(t, http.StatusOK, rec.Code)
	body = rec.Body.String()
	assert.Contains(t, body, `<strong id="order-id">N00012345</strong>`)
	assert.Contains(t, body, "<li>Linen Shirt × 2 — ₪240</li>")
	assert.Contains(t, body, `<strong id="order-total">₪265</strong>`)
	assert.Contains(t, body, "Name: Noa Levi — Phone: 050-1234567 — Address: Herzl 1, Haifa 31000 — Email: noa@example.com")
	assert.Contains(t, body, `<span id="cart-count">0</span>`)

	rec = cl.get("/cart")
	assert.Contains(t, rec.Body.String(), `<div id="cart-empty">`)
}

func TestAddToCart_RedirectsToReferer(t *testing.T) {
	cl := newClient(t)

	rec := cl.do(http.MethodPost, "/cart/items",
		strings.NewReader(url.Values{"id": {"3"}, "name": {"Scarf"}, "price": {"60"}}.Encode()),
		map[string]string{
			echo.HeaderContentType: echo.MIMEApplicationForm,
			"Referer":              "http://example.com/products?page=2",
		})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/products?page=2", rec.Header().Get(echo.HeaderLocation))

	rec = cl.do(http.MethodPost, "/cart/items",
		strings.NewReader(url.Values{"id": {"3"}, "price": {"60"}}.Encode()),
		map[string]string{
			echo.HeaderContentType: echo.MIMEApplicationForm,
			"Referer":              "http://evil.example.org/phish",
		})
	assert.Equal(t, "/products", rec.Header().Get(echo.HeaderLocation))
}

func TestAddToCart_RejectsBadInput(t *testing.T) {
	cl := newClient(t)

	rec := cl.postForm("/cart/items", url.Values{"id": {"1"}, "name": {"Shirt"}, "price": {"-5"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "price must not be negative")

	rec = cl.postForm("/cart/items", url.Values{"name": {"Shirt"}, "price": {"5"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddToCart_CatalogPriceWins(t *testing.T) {
	cl := newClient(t)

	cl.postForm("/cart/items", url.Values{"id": {"2"}, "name": {"Cheap Dress"}, "price": {"1"}})
	body := cl.get("/cart").Body.String()
	assert.Contains(t, body, "<strong>Summer Dress</strong>")
	assert.Contains(t, body, `<dd id="subtotal">₪240</dd>`)

	rec := cl.sendJSON(http.MethodPost, "/api/cart", `{"id":"5","name":"Belt","price":1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Totals models.Totals `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 390.0, resp.Totals.Subtotal)
}

func TestAddToCart_HugeInputStaysRenderable(t *testing.T) {
	cl := newClient(t)

	rec := cl.postForm("/cart/items", url.Values{"id": {"x"}, "name": {"X"}, "price": {"1e308"}, "qty": {"2"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	cl.postForm("/cart/items", url.Values{"id": {"x"}, "name": {"X"}, "price": {"10"}, "qty": {"9223372036854775807"}})
	cl.postForm("/cart/items", url.Values{"id": {"x"}, "name": {"X"}, "price": {"10"}})

	rec = cl.get("/cart")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<span id="cart-count">999</span>`)
	assert.Equal(t, http.StatusOK, cl.get("/checkout").Code)
}

func TestRemoveShiftsRows(t *testing.T) {
	cl := newClient(t)
	for _, id := range []string{"a", "b", "c"} {
		cl.postForm("/cart/items", url.Values{"id": {id}, "name": {strings.ToUpper(id)}, "price": {"10"}})
	}

	cl.postForm("/cart/items/a/remove", url.Values{})
	body := cl.get("/cart").Body.String()

	assert.NotContains(t, body, `<tr data-id="a">`)
	assert.Less(t, strings.Index(body, `<tr data-id="b">`), strings.Index(body, `<tr data-id="c">`))
	assert.Contains(t, body, `<span id="cart-count">2</span>`)
}

func TestSessionsAreIsolated(t *testing.T) {
	alice := newClient(t)
	addShirt(alice)

	bob := &client{t: t, e: alice.e}
	body := bob.get("/cart").Body.String()
	assert.Contains(t, body, `<span id="cart-count">0</span>`)

	bob.cookie = &http.Cookie{Name: middleware.SessionCookie, Value: "forged"}
	body = bob.get("/cart").Body.String()
	assert.Contains(t, body, `<span id="cart-count">0</span>`)
	assert.NotEqual(t, "forged", bob.cookie.Value, "a bad cookie is replaced")
}

func TestCartAPI(t *testing.T) {
	cl := newClient(t)

	rec := cl.sendJSON(http.MethodPost, "/api/cart", `{"id":"d-200","name":"Dress","price":200,"qty":2}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items  models.Cart   `json:"items"`
		Count  int           `json:"count"`
		Totals models.Totals `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, models.Totals{Subtotal: 400, Shipping: 0, Grand: 400}, resp.Totals)

	rec = cl.sendJSON(http.MethodPut, "/api/cart/quantity", `{"id":"d-200","qty":0}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, models.Totals{Subtotal: 200, Shipping: 25, Grand: 225}, resp.Totals)

	rec = cl.sendJSON(http.MethodPost, "/api/cart", `{"id":"2","price":-1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"price must not be negative"}`, rec.Body.String())

	rec = cl.do(http.MethodDelete, "/api/cart/d-200", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Count)
	assert.Empty(t, resp.Items)

	rec = cl.get("/api/order")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddToCart_JSONClientsGetCount(t *testing.T) {
	cl := newClient(t)
	rec := cl.do(http.MethodPost, "/cart/items",
		strings.NewReader(url.Values{"id": {"1"}, "name": {"Shirt"}, "price": {"120"}}.Encode()),
		map[string]string{
			echo.HeaderContentType: echo.MIMEApplicationForm,
			echo.HeaderAccept:      echo.MIMEApplicationJSON,
		})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":1}`, rec.Body.String())
}

func TestConfirmationWithoutOrder(t *testing.T) {
	cl := newClient(t)
	rec := cl.get("/confirmation")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<strong id="order-id"></strong>`)
}

func TestCheckoutEmptyCart(t *testing.T) {
	cl := newClient(t)
	rec := cl.get("/checkout")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<a href="/products">Continue shopping</a></li>`)
	assert.Contains(t, rec.Body.String(), `<strong id="checkout-total">₪0</strong>`)
}

func TestHealthAndMetrics(t *testing.T) {
	cl := newClient(t)

	rec := cl.get("/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	addShirt(cl)
	cl.postForm("/payment", url.Values{"cardNumber": {"411111111111"}, "exp": {"1/2"}, "cvv": {"123"}})

	body := cl.get("/metrics").Body.String()
	assert.Contains(t, body, "noemie_cart_items_added_total 1")
	assert.Contains(t, body, `noemie_payment_rejections_total{field="exp"} 1`)
	assert.Contains(t, body, "noemie_http_requests_total")
}

func TestUnknownRoute(t *testing.T) {
	cl := newClient(t)
	rec := cl.get("/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = cl.get("/api/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
}
