package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripforge/backend/internal/domain"
	"github.com/tripforge/backend/internal/repo"
	"github.com/tripforge/backend/testutil"
)

// newTestItineraryRepo opens a transaction against the test database and
// returns an ItineraryRepo backed by it. The transaction is rolled back when
// the test finishes, giving free per-test isolation.
//
// Requires TEST_DATABASE_URL to be set; migrations are applied by TestMain.
func newTestItineraryRepo(t *testing.T) repo.ItineraryRepo {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return repo.NewItineraryRepo(tx)
}

// itineraryFixture returns a domain.Itinerary with sensible defaults.
// Callers can override individual fields after calling this function.
func itineraryFixture() domain.Itinerary {
	return domain.Itinerary{
		Title:       "Trip to Kyoto",
		Destination: "Kyoto",
		Description: "Five days of temples and food markets",
		StartDate:   time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 10, 5, 0, 0, 0, 0, time.UTC),
	}
}

// activityFixtures returns two parsed activities as the parser would emit
// them: no IDs, one with nullable fields set, one without.
func activityFixtures() []domain.Activity {
	desc := "see the golden pavilion"
	loc := "Kinkaku-ji"
	d := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)
	return []domain.Activity{
		{Title: "Visit Kinkaku-ji", Description: &desc, Location: &loc, Date: &d, Category: domain.CategoryActivity, Order: 0},
		{Title: "Wander Nishiki Market", Category: domain.CategoryFood, Order: 1},
	}
}

func TestItineraryRepo_Create(t *testing.T) {
	r := newTestItineraryRepo(t)
	ctx := context.Background()

	got, err := r.Create(ctx, itineraryFixture(), activityFixtures())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID, "ID should be DB-generated")
	assert.Equal(t, "Trip to Kyoto", got.Title)
	assert.Equal(t, "USD", got.BudgetCurrency, "currency defaults to USD")
	assert.Nil(t, got.Budget)
	assert.False(t, got.CreatedAt.IsZero())

	require.Len(t, got.Activities, 2)
	for _, a := range got.Activities {
		assert.NotEqual(t, uuid.Nil, a.ID)
		assert.Equal(t, got.ID, a.ItineraryID)
	}
	assert.Nil(t, got.Activities[1].Date, "unscheduled activity keeps a NULL date")
	assert.Nil(t, got.Activities[1].Description)
}

func TestItineraryRepo_Create_NoActivities(t *testing.T) {
	r := newTestItineraryRepo(t)

	got, err := r.Create(context.Background(), itineraryFixture(), nil)

	require.NoError(t, err)
	assert.Empty(t, got.Activities)
}

func TestItineraryRepo_GetByID(t *testing.T) {
	r := newTestItineraryRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, itineraryFixture(), activityFixtures())
	require.NoError(t, err)

	got, err := r.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	require.Len(t, got.Activities, 2)
	// NULL dates sort first, so the unscheduled market stroll leads.
	assert.Equal(t, "Wander Nishiki Market", got.Activities[0].Title)
	assert.Equal(t, "Visit Kinkaku-ji", got.Activities[1].Title)
}

func TestItineraryRepo_GetByID_NotFound(t *testing.T) {
	r := newTestItineraryRepo(t)

	_, err := r.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItineraryRepo_List_Paged(t *testing.T) {
	r := newTestItineraryRepo(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := r.Create(ctx, itineraryFixture(), nil)
		require.NoError(t, err)
	}

	items, total, err := r.List(ctx, domain.PaginationParams{Page: 1, Limit: 2})

	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.GreaterOrEqual(t, total, int64(3))
	for _, it := range items {
		assert.Nil(t, it.Activities, "list reads do not load activities")
	}
}

func TestItineraryRepo_UpdateBudget(t *testing.T) {
	r := newTestItineraryRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, itineraryFixture(), nil)
	require.NoError(t, err)

	budget := 2500.0
	got, err := r.UpdateBudget(ctx, created.ID, &budget, "EUR")

	require.NoError(t, err)
	require.NotNil(t, got.Budget)
	assert.InDelta(t, 2500.0, *got.Budget, 0.001)
	assert.Equal(t, "EUR", got.BudgetCurrency)
}

func TestItineraryRepo_UpdateBudget_Clear(t *testing.T) {
	r := newTestItineraryRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, itineraryFixture(), nil)
	require.NoError(t, err)

	budget := 1000.0
	_, err = r.UpdateBudget(ctx, created.ID, &budget, "USD")
	require.NoError(t, err)

	got, err := r.UpdateBudget(ctx, created.ID, nil, "")

	require.NoError(t, err)
	assert.Nil(t, got.Budget)
	assert.Equal(t, "USD", got.BudgetCurrency)
}

func TestItineraryRepo_UpdateBudget_NotFound(t *testing.T) {
	r := newTestItineraryRepo(t)

	_, err := r.UpdateBudget(context.Background(), uuid.New(), nil, "USD")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItineraryRepo_Delete(t *testing.T) {
	r := newTestItineraryRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, itineraryFixture(), activityFixtures())
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, created.ID))

	_, err = r.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItineraryRepo_Delete_NotFound(t *testing.T) {
	r := newTestItineraryRepo(t)

	err := r.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
