package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskly/internal/billing"
	dbm "taskly/internal/models/db_models"
	"taskly/internal/services"
	"taskly/pkg/middleware"
	"taskly/pkg/utils"
)

type spyProvider struct {
	name      billing.ProviderName
	result    *billing.CheckoutResult
	checkouts int
	canceled  []string
}

func (s *spyProvider) Name() billing.ProviderName {
	return s.name
}

func (s *spyProvider) CreateCheckout(_ context.Context, _ string, _ billing.PlanType, _ billing.Interval) (*billing.CheckoutResult, error) {
	s.checkouts++
	return s.result, nil
}

func (s *spyProvider) CancelAtPeriodEnd(_ context.Context, subscriptionID string) error {
	s.canceled = append(s.canceled, subscriptionID)
	return nil
}

type memUserRepo struct {
	user    *dbm.User
	updated map[uuid.UUID]dbm.SubscriptionFields
	ensured int
}

func (m *memUserRepo) FindByEmail(_ context.Context, _ string) (*dbm.User, error) {
	return nil, nil
}

func (m *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*dbm.User, error) {
	if m.user != nil && m.user.ID == id {
		return m.user, nil
	}
	return nil, nil
}

func (m *memUserRepo) Insert(_ context.Context, user *dbm.User) error {
	m.user = user
	return nil
}

func (m *memUserRepo) SubscriptionFields(user *dbm.User) (dbm.SubscriptionFields, error) {
	var fields dbm.SubscriptionFields
	if len(user.Subscription) == 0 {
		return fields, nil
	}
	err := json.Unmarshal(user.Subscription, &fields)
	return fields, err
}

func (m *memUserRepo) UpdateSubscriptionFields(_ context.Context, userID uuid.UUID, fields dbm.SubscriptionFields) error {
	if m.updated == nil {
		m.updated = make(map[uuid.UUID]dbm.SubscriptionFields)
	}
	m.updated[userID] = fields
	return nil
}

func (m *memUserRepo) EnsureSubscriptionDefaults(_ context.Context, _ uuid.UUID) (bool, error) {
	m.ensured++
	return true, nil
}

func newSubscriptionRouter(provider *spyProvider, repo *memUserRepo) *gin.Engine {
	svc := services.NewSubscriptionService(
		map[billing.ProviderName]billing.Provider{provider.name: provider},
		billing.NewPlanRegistryFromEnv(),
		repo,
	)
	ctl := NewSubscriptionController(svc)

	r := gin.New()
	r.GET("/api/plans", ctl.ListPlansHandler)
	authed := r.Group("/api")
	authed.Use(middleware.AuthMiddleware())
	authed.POST("/create-checkout", ctl.CreateCheckoutHandler)
	authed.POST("/cancel-subscription", ctl.CancelSubscriptionHandler)
	authed.POST("/ensure-user-fields", ctl.EnsureUserFieldsHandler)
	return r
}

func bearerFor(t *testing.T, userID uuid.UUID) map[string]string {
	t.Helper()
	token, err := utils.CreateToken(userID)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestCancelSubscriptionRequiresAuth(t *testing.T) {
	provider := &spyProvider{name: billing.ProviderStripe}
	r := newSubscriptionRouter(provider, &memUserRepo{})

	w := postJSON(t, r, "/api/cancel-subscription", `{"subscriptionId":"sub_123"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	// Rejected before any provider side effect.
	assert.Empty(t, provider.canceled)
}

func TestCancelSubscriptionMissingID(t *testing.T) {
	provider := &spyProvider{name: billing.ProviderStripe}
	r := newSubscriptionRouter(provider, &memUserRepo{})

	w := postJSON(t, r, "/api/cancel-subscription", `{}`, bearerFor(t, uuid.New()))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, provider.canceled)
}

func TestCancelSubscriptionSuccess(t *testing.T) {
	userID := uuid.New()
	user := &dbm.User{}
	user.ID = userID
	user.Subscription = []byte(`{"plan":"pro","status":"active"}`)

	provider := &spyProvider{name: billing.ProviderStripe}
	repo := &memUserRepo{user: user}
	r := newSubscriptionRouter(provider, repo)

	w := postJSON(t, r, "/api/cancel-subscription", `{"subscriptionId":"sub_123"}`, bearerFor(t, userID))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"sub_123"}, provider.canceled)

	fields, ok := repo.updated[userID]
	require.True(t, ok)
	assert.True(t, fields.CancelAtPeriodEnd)
	assert.NotNil(t, fields.CanceledAt)
	assert.Equal(t, "sub_123", fields.SubscriptionID)
}

func TestCreateCheckoutMockPlan(t *testing.T) {
	provider := &spyProvider{
		name:   billing.ProviderStripe,
		result: &billing.CheckoutResult{Message: "Subscription activated"},
	}
	r := newSubscriptionRouter(provider, &memUserRepo{})

	w := postJSON(t, r, "/api/create-checkout", `{"plan":"pro","interval":"monthly"}`, bearerFor(t, uuid.New()))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, provider.checkouts)

	resp := decodeResponse(t, w)
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var checkout map[string]any
	require.NoError(t, json.Unmarshal(raw, &checkout))
	assert.Equal(t, "Subscription activated", checkout["message"])
}

func TestCreateCheckoutMissingFields(t *testing.T) {
	provider := &spyProvider{name: billing.ProviderStripe}
	r := newSubscriptionRouter(provider, &memUserRepo{})

	w := postJSON(t, r, "/api/create-checkout", `{"plan":"pro"}`, bearerFor(t, uuid.New()))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, provider.checkouts)
}

func TestEnsureUserFieldsEndpoint(t *testing.T) {
	provider := &spyProvider{name: billing.ProviderStripe}
	repo := &memUserRepo{}
	r := newSubscriptionRouter(provider, repo)

	w := postJSON(t, r, "/api/ensure-user-fields", ``, bearerFor(t, uuid.New()))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, repo.ensured)
}

func TestListPlansEndpoint(t *testing.T) {
	r := newSubscriptionRouter(&spyProvider{name: billing.ProviderStripe}, &memUserRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/plans", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var plans []map[string]any
	require.NoError(t, json.Unmarshal(raw, &plans))
	assert.Len(t, plans, 6)
}
