package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/gelato-api/internal/application/auth"
	"github.com/jhoicas/gelato-api/internal/application/sanitize"
	"github.com/jhoicas/gelato-api/internal/application/usecase"
	"github.com/jhoicas/gelato-api/internal/application/validation"
	"github.com/jhoicas/gelato-api/internal/domain/entity"
	"github.com/jhoicas/gelato-api/internal/infrastructure/crypto"
	"github.com/jhoicas/gelato-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/gelato-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/gelato-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "gelato-api-test"
	testExpMin    = 60
)

type testEnv struct {
	app   *fiber.App
	store *memory.Store

	customer, staff, superuser string // cabeceras Authorization
	customerID, superuserID    int64
}

type limiterStub struct {
	allow  bool
	resets int
}

func (l *limiterStub) Allow(context.Context, string) (bool, error) { return l.allow, nil }
func (l *limiterStub) Reset(context.Context, string) error {
	l.resets++
	return nil
}

func newEnv(t *testing.T, limiter apphttp.LoginLimiter) *testEnv {
	t.Helper()
	store := memory.NewStore()
	hasher := crypto.NewBcryptHasher(bcrypt.MinCost)
	deps := usecase.Deps{Store: store, Validator: validation.New(), Sanitizer: sanitize.New(hasher)}
	authUC := auth.NewAuthUseCase(store, hasher, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer})

	app := apphttp.NewApp(apphttp.RouterDeps{
		CategoryUC:   usecase.NewCategoryUseCase(deps),
		ProductUC:    usecase.NewProductUseCase(deps),
		ComplementUC: usecase.NewComplementUseCase(deps),
		OrderUC:      usecase.NewOrderUseCase(deps),
		UserUC:       usecase.NewUserUseCase(deps),
		AuthUC:       authUC,
		LoginLimiter: limiter,
		Metrics:      apphttp.NewMetrics("gelato", prometheus.NewRegistry()),
		Logger:       zerolog.Nop(),
		AppName:      "gelato-api-test",
	}, fiber.Config{})

	env := &testEnv{app: app, store: store}
	env.customer, env.customerID = env.seedUser(t, hasher, "normal@user.com", false, false)
	env.staff, _ = env.seedUser(t, hasher, "staff@user.com", true, false)
	env.superuser, env.superuserID = env.seedUser(t, hasher, "super@user.com", true, true)
	return env
}

func (e *testEnv) seedUser(t *testing.T, hasher *crypto.BcryptHasher, email string, staff, super bool) (string, int64) {
	t.Helper()
	hash, err := hasher.Hash("foo")
	require.NoError(t, err)
	u := &entity.User{Email: email, PasswordHash: hash, IsActive: true, IsStaff: staff, IsSuperuser: super, DateJoined: time.Now().UTC()}
	require.NoError(t, e.store.Repositories().Users.Create(context.Background(), u))
	tok, err := pkgjwt.Generate(testJWTSecret, u.ID, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok, u.ID
}

// do ejecuta una petición y devuelve estado y cuerpo.
func (e *testEnv) do(t *testing.T, method, path, authHeader, body string) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v), string(body))
	return v
}

func (e *testEnv) createCategory(t *testing.T, name string) int64 {
	t.Helper()
	status, body := e.do(t, http.MethodPost, "/api/v1/categories/", e.staff, `{"name":"`+name+`"}`)
	require.Equal(t, http.StatusCreated, status, string(body))
	return int64(decode[map[string]interface{}](t, body)["id"].(float64))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	env := newEnv(t, nil)
	status, body := env.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", decode[map[string]interface{}](t, body)["status"])
}

func TestRequestID_IsEchoed(t *testing.T) {
	env := newEnv(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	resp, err = env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get("X-Request-ID"))
}

func TestCategories_AnonymousReadsStaffWrites(t *testing.T) {
	env := newEnv(t, nil)

	status, body := env.do(t, http.MethodPost, "/api/v1/categories/", "", `{"name":"Helados"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "NOT_AUTHENTICATED", decode[map[string]string](t, body)["code"])

	status, _ = env.do(t, http.MethodPost, "/api/v1/categories/", env.customer, `{"name":"Helados"}`)
	assert.Equal(t, http.StatusForbidden, status)

	id := env.createCategory(t, "Helados")

	status, body = env.do(t, http.MethodGet, "/api/v1/categories/", "", "")
	require.Equal(t, http.StatusOK, status)
	list := decode[map[string]interface{}](t, body)
	assert.EqualValues(t, 1, list["count"])
	assert.Nil(t, list["next"])
	assert.Nil(t, list["previous"])
	results := list["results"].([]interface{})
	require.Len(t, results, 1)
	assert.Equal(t, "Helados", results[0].(map[string]interface{})["name"])

	status, _ = env.do(t, http.MethodDelete, "/api/v1/categories/"+itoa(id), env.staff, "")
	assert.Equal(t, http.StatusNoContent, status)
	status, _ = env.do(t, http.MethodGet, "/api/v1/categories/"+itoa(id), "", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCategories_UnauthenticatedResponseCarriesChallenge(t *testing.T) {
	env := newEnv(t, nil)
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/categories/1", nil)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("WWW-Authenticate"), "Bearer")
}

func TestCategories_DuplicateName(t *testing.T) {
	env := newEnv(t, nil)
	env.createCategory(t, "Helados")
	status, body := env.do(t, http.MethodPost, "/api/v1/categories/", env.staff, `{"name":"Helados"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, decode[map[string][]string](t, body), "name")
}

func TestList_PaginationLinks(t *testing.T) {
	env := newEnv(t, nil)
	for _, n := range []string{"a", "b", "c"} {
		env.createCategory(t, n)
	}

	status, body := env.do(t, http.MethodGet, "/api/v1/categories/?limit=1&offset=1", "", "")
	require.Equal(t, http.StatusOK, status)
	list := decode[map[string]interface{}](t, body)
	assert.EqualValues(t, 3, list["count"])
	require.NotNil(t, list["next"])
	require.NotNil(t, list["previous"])
	assert.Contains(t, list["next"].(string), "offset=2")
	assert.Contains(t, list["next"].(string), "limit=1")
	assert.NotContains(t, list["previous"].(string), "offset=")
	results := list["results"].([]interface{})
	require.Len(t, results, 1)
	assert.Equal(t, "b", results[0].(map[string]interface{})["name"])
}

func TestProducts_ValidationBodyIsFieldMap(t *testing.T) {
	env := newEnv(t, nil)
	cat := env.createCategory(t, "Helados")

	status, body := env.do(t, http.MethodPost, "/api/v1/products/", env.staff,
		`{"name":"item1","description":"d","max_complements":2,"category":`+itoa(cat)+`}`)
	require.Equal(t, http.StatusBadRequest, status)
	fields := decode[map[string][]string](t, body)
	assert.Len(t, fields, 1)
	assert.Equal(t, []string{"Este campo es obligatorio."}, fields["price"])

	status, body = env.do(t, http.MethodPost, "/api/v1/products/", env.staff,
		`{"name":"item1","price":"1.00","description":"d","max_complements":"muchos","category":`+itoa(cat)+`}`)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, decode[map[string][]string](t, body), "max_complements")

	status, body = env.do(t, http.MethodPost, "/api/v1/products/", env.staff, `{"name":`)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, decode[map[string][]string](t, body), "non_field_errors")
}

func TestProducts_CreateAndComplements(t *testing.T) {
	env := newEnv(t, nil)
	cat := env.createCategory(t, "Helados")
	other := env.createCategory(t, "Bebidas")

	status, body := env.do(t, http.MethodPost, "/api/v1/products/", env.staff,
		`{"name":"item1","price":12.5,"description":"description test","max_complements":2,"category":`+itoa(cat)+`,"created_by":999}`)
	require.Equal(t, http.StatusCreated, status, string(body))
	product := decode[map[string]interface{}](t, body)
	assert.Equal(t, "12.50", product["price"])
	assert.Equal(t, true, product["in_stock"])
	assert.NotContains(t, product, "created_by")
	productID := int64(product["id"].(float64))

	status, body = env.do(t, http.MethodPost, "/api/v1/complements/", env.staff,
		`{"name":"candy","increase_value":"1.5","categories":[`+itoa(cat)+`]}`)
	require.Equal(t, http.StatusCreated, status, string(body))
	status, _ = env.do(t, http.MethodPost, "/api/v1/complements/", env.staff,
		`{"name":"hielo","categories":[`+itoa(other)+`]}`)
	require.Equal(t, http.StatusCreated, status)

	status, body = env.do(t, http.MethodGet, "/api/v1/products/"+itoa(productID)+"/complements", "", "")
	require.Equal(t, http.StatusOK, status)
	complements := decode[[]map[string]interface{}](t, body)
	require.Len(t, complements, 1)
	assert.Equal(t, "candy", complements[0]["name"])
	assert.Equal(t, "1.50", complements[0]["increase_value"])

	status, _ = env.do(t, http.MethodGet, "/api/v1/products/9999/complements", "", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestProducts_InvalidDecimalIsReportedOnItsField(t *testing.T) {
	env := newEnv(t, nil)
	cat := env.createCategory(t, "Helados")

	status, body := env.do(t, http.MethodPost, "/api/v1/products/", env.staff,
		`{"name":"item1","price":"abc","description":"d","max_complements":1,"category":`+itoa(cat)+`}`)
	require.Equal(t, http.StatusBadRequest, status)
	fields := decode[map[string][]string](t, body)
	assert.Equal(t, []string{"Introduzca un número válido."}, fields["price"])
	assert.NotContains(t, string(body), "error decoding")

	status, body = env.do(t, http.MethodPost, "/api/v1/complements/", env.staff,
		`{"name":"candy","increase_value":true,"categories":[`+itoa(cat)+`]}`)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, decode[map[string][]string](t, body), "increase_value")
}

func TestComplements_DuplicateCategoriesCollapse(t *testing.T) {
	env := newEnv(t, nil)
	c1 := env.createCategory(t, "Helados")
	c2 := env.createCategory(t, "Bebidas")

	status, body := env.do(t, http.MethodPost, "/api/v1/complements/", env.staff,
		`{"name":"X","categories":[`+itoa(c2)+`,`+itoa(c1)+`,`+itoa(c1)+`]}`)
	require.Equal(t, http.StatusCreated, status, string(body))
	created := decode[map[string]interface{}](t, body)
	assert.Equal(t, []interface{}{float64(c1), float64(c2)}, created["categories"])

	id := itoa(int64(created["id"].(float64)))
	status, body = env.do(t, http.MethodGet, "/api/v1/complements/"+id, "", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []interface{}{float64(c1), float64(c2)}, decode[map[string]interface{}](t, body)["categories"])
}

func TestProducts_PatchAndPut(t *testing.T) {
	env := newEnv(t, nil)
	cat := env.createCategory(t, "Helados")
	status, body := env.do(t, http.MethodPost, "/api/v1/products/", env.staff,
		`{"name":"item1","price":"3.00","description":"d","max_complements":1,"category":`+itoa(cat)+`}`)
	require.Equal(t, http.StatusCreated, status, string(body))
	id := itoa(int64(decode[map[string]interface{}](t, body)["id"].(float64)))

	status, body = env.do(t, http.MethodPatch, "/api/v1/products/"+id, env.staff, `{"name":"item2"}`)
	require.Equal(t, http.StatusOK, status, string(body))
	assert.Equal(t, "item2", decode[map[string]interface{}](t, body)["name"])

	status, body = env.do(t, http.MethodPut, "/api/v1/products/"+id, env.staff, `{"name":"item3"}`)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, decode[map[string][]string](t, body), "price")
}

func TestNonNumericIDIsNotFound(t *testing.T) {
	env := newEnv(t, nil)
	status, body := env.do(t, http.MethodGet, "/api/v1/products/abc", "", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", decode[map[string]string](t, body)["code"])
}

func TestOrders(t *testing.T) {
	env := newEnv(t, nil)

	status, _ := env.do(t, http.MethodPost, "/api/v1/orders/", "", `{"comment":"c","delivery":true,"location":"l"}`)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body := env.do(t, http.MethodPost, "/api/v1/orders/", env.customer,
		`{"comment":"sin azúcar","delivery":false,"location":"mesa 4","status":"Delivered"}`)
	require.Equal(t, http.StatusCreated, status, string(body))
	order := decode[map[string]interface{}](t, body)
	assert.Equal(t, entity.OrderStatusRequested, order["status"])
	assert.NotContains(t, order, "user")
	id := itoa(int64(order["id"].(float64)))

	status, _ = env.do(t, http.MethodGet, "/api/v1/orders/", env.customer, "")
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = env.do(t, http.MethodGet, "/api/v1/orders/"+id, env.staff, "")
	assert.Equal(t, http.StatusOK, status)

	status, _ = env.do(t, http.MethodDelete, "/api/v1/orders/"+id, env.staff, "")
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = env.do(t, http.MethodDelete, "/api/v1/orders/"+id, env.superuser, "")
	assert.Equal(t, http.StatusNoContent, status)
}

func TestUsers_RegisterAndSelfAccess(t *testing.T) {
	env := newEnv(t, nil)

	status, body := env.do(t, http.MethodPost, "/api/v1/users/", "",
		`{"email":"New@Test.com","password":"12345","is_superuser":true,"is_staff":true}`)
	require.Equal(t, http.StatusCreated, status, string(body))
	user := decode[map[string]interface{}](t, body)
	assert.Equal(t, "new@test.com", user["email"])
	assert.Equal(t, false, user["is_superuser"])
	assert.Equal(t, false, user["is_staff"])
	assert.NotContains(t, user, "password")

	self := "/api/v1/users/" + itoa(env.customerID)
	status, _ = env.do(t, http.MethodGet, self, env.customer, "")
	assert.Equal(t, http.StatusOK, status)
	status, _ = env.do(t, http.MethodGet, self, "", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	status, _ = env.do(t, http.MethodGet, "/api/v1/users/"+itoa(env.superuserID), env.customer, "")
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = env.do(t, http.MethodGet, "/api/v1/users/", env.customer, "")
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = env.do(t, http.MethodGet, "/api/v1/users/", env.superuser, "")
	assert.Equal(t, http.StatusOK, status)
}

func TestAuthToken(t *testing.T) {
	env := newEnv(t, nil)

	status, body := env.do(t, http.MethodPost, "/api/v1/auth/token", "", `{"email":"normal@user.com","password":"foo"}`)
	require.Equal(t, http.StatusOK, status, string(body))
	login := decode[map[string]interface{}](t, body)
	token := login["token"].(string)
	require.NotEmpty(t, token)
	assert.NotNil(t, login["user"].(map[string]interface{})["last_login_date"])

	status, _ = env.do(t, http.MethodPost, "/api/v1/orders/", "Bearer "+token, `{"comment":"c","delivery":true,"location":"l"}`)
	assert.Equal(t, http.StatusCreated, status)

	status, body = env.do(t, http.MethodPost, "/api/v1/auth/token", "", `{"email":"normal@user.com","password":"bar"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_CREDENTIALS", decode[map[string]string](t, body)["code"])
}

func TestInvalidTokenIsRejectedEvenOnPublicRoutes(t *testing.T) {
	env := newEnv(t, nil)
	status, _ := env.do(t, http.MethodGet, "/api/v1/categories/", "Bearer basura", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	status, _ = env.do(t, http.MethodGet, "/api/v1/categories/", "Token algo", "")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestLoginRateLimit(t *testing.T) {
	limiter := &limiterStub{allow: false}
	env := newEnv(t, limiter)
	status, body := env.do(t, http.MethodPost, "/api/v1/auth/token", "", `{"email":"normal@user.com","password":"foo"}`)
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Equal(t, "THROTTLED", decode[map[string]string](t, body)["code"])

	limiter.allow = true
	status, _ = env.do(t, http.MethodPost, "/api/v1/auth/token", "", `{"email":"normal@user.com","password":"foo"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, limiter.resets)
}

func TestMetricsEndpoint(t *testing.T) {
	env := newEnv(t, nil)
	env.do(t, http.MethodGet, "/api/v1/categories/", "", "")

	status, body := env.do(t, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "gelato_http_requests_total")
	assert.Contains(t, string(body), `path="/api/v1/categories`)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
