package service_test

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secwatch/sirt/domain/entity"
	"github.com/secwatch/sirt/domain/service"
)

// ------------------------
// Mock repository
// ------------------------
type mockIncidentRepo struct {
	data    map[int64]*entity.Incident
	nextID  int64
	addErr  error
	findErr error
}

func newMockIncidentRepo() *mockIncidentRepo {
	return &mockIncidentRepo{data: map[int64]*entity.Incident{}}
}

func (m *mockIncidentRepo) FindAll(_ context.Context) ([]entity.Incident, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	ids := make([]int64, 0, len(m.data))
	for id := range m.data {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	var incidents []entity.Incident
	for _, id := range ids {
		incidents = append(incidents, *m.data[id])
	}
	return incidents, nil
}

func (m *mockIncidentRepo) FindByID(_ context.Context, id int64) (*entity.Incident, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	if incident, ok := m.data[id]; ok {
		c := *incident
		return &c, nil
	}
	return nil, nil
}

func (m *mockIncidentRepo) Add(_ context.Context, incident *entity.Incident) (int64, error) {
	if m.addErr != nil {
		return 0, m.addErr
	}
	m.nextID++
	id := m.nextID
	stored := *incident
	stored.ID = &id
	m.data[id] = &stored
	return id, nil
}

func (m *mockIncidentRepo) Update(_ context.Context, incident *entity.Incident) error {
	if incident.ID == nil {
		return nil
	}
	if _, ok := m.data[*incident.ID]; ok {
		stored := *incident
		m.data[*incident.ID] = &stored
	}
	return nil
}

func (m *mockIncidentRepo) Delete(_ context.Context, id int64) error {
	delete(m.data, id)
	return nil
}

func newIncident(title string) entity.Incident {
	return entity.Incident{
		Title:        title,
		Description:  "something happened",
		Type:         entity.IncidentTypeOther,
		Risk:         entity.RiskMedium,
		Status:       entity.StatusNew,
		ReportedDate: time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC),
	}
}

func TestAddAndGetByIDRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := service.NewIncidentService(ctx, newMockIncidentRepo())

	incident := newIncident("Phishing attempt")
	incident.AssignedTo = "Alice"
	created := svc.Add(ctx, incident)
	require.NotNil(t, created.ID)

	found := svc.GetByID(ctx, *created.ID)
	require.NotNil(t, found)
	assert.Equal(t, created.Title, found.Title)
	assert.Equal(t, created.Description, found.Description)
	assert.Equal(t, created.Type, found.Type)
	assert.Equal(t, created.Risk, found.Risk)
	assert.Equal(t, created.Status, found.Status)
	assert.Equal(t, created.ReportedDate, found.ReportedDate)
	assert.Equal(t, created.AssignedTo, found.AssignedTo)
}

func TestAddDefaultsReportedDate(t *testing.T) {
	ctx := context.Background()
	svc := service.NewIncidentService(ctx, newMockIncidentRepo())

	incident := newIncident("No date supplied")
	incident.ReportedDate = time.Time{}
	created := svc.Add(ctx, incident)
	assert.WithinDuration(t, time.Now(), created.ReportedDate, 2*time.Second)
}

func TestAddKeepsIncidentWhenStorageFails(t *testing.T) {
	ctx := context.Background()
	repo := newMockIncidentRepo()
	svc := service.NewIncidentService(ctx, repo)
	repo.addErr = errors.New("storage down")

	created := svc.Add(ctx, newIncident("Still tracked"))
	assert.Nil(t, created.ID)

	cached := svc.Filter(ctx, nil, nil, nil)
	require.Len(t, cached, 1)
	assert.Equal(t, "Still tracked", cached[0].Title)
	assert.Nil(t, cached[0].ID)
}

func TestUpdateRequiresID(t *testing.T) {
	ctx := context.Background()
	svc := service.NewIncidentService(ctx, newMockIncidentRepo())
	svc.Add(ctx, newIncident("Original"))

	unsaved := newIncident("Changed")
	err := svc.Update(ctx, unsaved)
	require.ErrorIs(t, err, service.ErrMissingID)

	cached := svc.Filter(ctx, nil, nil, nil)
	require.Len(t, cached, 1)
	assert.Equal(t, "Original", cached[0].Title)
}

func TestUpdateReflectsEverywhere(t *testing.T) {
	ctx := context.Background()
	svc := service.NewIncidentService(ctx, newMockIncidentRepo())

	created := svc.Add(ctx, newIncident("Open incident"))
	require.NotNil(t, created.ID)

	updated := *created
	updated.Status = entity.StatusResolved
	updated.ResolutionNotes = "patched"
	require.NoError(t, svc.Update(ctx, updated))

	found := svc.GetByID(ctx, *created.ID)
	require.NotNil(t, found)
	assert.Equal(t, entity.StatusResolved, found.Status)
	assert.Equal(t, "patched", found.ResolutionNotes)

	cached := svc.Filter(ctx, nil, nil, nil)
	require.Len(t, cached, 1)
	assert.Equal(t, entity.StatusResolved, cached[0].Status)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc := service.NewIncidentService(ctx, newMockIncidentRepo())

	created := svc.Add(ctx, newIncident("Short lived"))
	require.NotNil(t, created.ID)

	svc.Delete(ctx, *created.ID)
	assert.Nil(t, svc.GetByID(ctx, *created.ID))
	assert.Empty(t, svc.Filter(ctx, nil, nil, nil))
}

func TestSearchEmptyKeywordBehavesAsGetAll(t *testing.T) {
	ctx := context.Background()
	svc := service.NewIncidentService(ctx, newMockIncidentRepo())
	svc.Add(ctx, newIncident("one"))
	svc.Add(ctx, newIncident("two"))

	assert.Equal(t, svc.GetAll(ctx), svc.Search(ctx, ""))
}

func TestSearchCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	svc := service.NewIncidentService(ctx, newMockIncidentRepo())
	svc.Add(ctx, newIncident("Phishing attempt"))
	svc.Add(ctx, newIncident("DDoS against edge"))

	lower := svc.Search(ctx, "phish")
	upper := svc.Search(ctx, "PHISH")
	require.Len(t, lower, 1)
	assert.Equal(t, lower, upper)
	assert.Equal(t, "Phishing attempt", lower[0].Title)
}

func TestSearchByAssigneeAndTitle(t *testing.T) {
	ctx := context.Background()
	svc := service.NewIncidentService(ctx, newMockIncidentRepo())

	incident := newIncident("Ransomware outbreak")
	incident.AssignedTo = "Alice"
	svc.Add(ctx, incident)

	assert.Len(t, svc.Search(ctx, "alice"), 1)
	assert.Len(t, svc.Search(ctx, "ransom"), 1)
	assert.Empty(t, svc.Search(ctx, "bob"))
}

func TestSearchMatchesIDAsText(t *testing.T) {
	ctx := context.Background()
	svc := service.NewIncidentService(ctx, newMockIncidentRepo())

	created := svc.Add(ctx, newIncident("Identified"))
	require.NotNil(t, created.ID)

	results := svc.Search(ctx, strconv.FormatInt(*created.ID, 10))
	require.Len(t, results, 1)
	assert.Equal(t, "Identified", results[0].Title)
}

func TestFilter(t *testing.T) {
	ctx := context.Background()
	svc := service.NewIncidentService(ctx, newMockIncidentRepo())

	critical := newIncident("critical one")
	critical.Risk = entity.RiskCritical
	low := newIncident("low one")
	low.Risk = entity.RiskLow
	high := newIncident("high one")
	high.Risk = entity.RiskHigh
	high.Status = entity.StatusResolved
	svc.Add(ctx, critical)
	svc.Add(ctx, low)
	svc.Add(ctx, high)

	assert.Len(t, svc.Filter(ctx, nil, nil, nil), 3)

	riskHigh := entity.RiskHigh
	byRisk := svc.Filter(ctx, nil, &riskHigh, nil)
	require.Len(t, byRisk, 1)
	assert.Equal(t, "high one", byRisk[0].Title)

	resolved := entity.StatusResolved
	byStatus := svc.Filter(ctx, &resolved, nil, nil)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "high one", byStatus[0].Title)

	riskLow := entity.RiskLow
	assert.Empty(t, svc.Filter(ctx, &resolved, &riskLow, nil), "criteria are conjunctive")
}

func TestGetAllReloadsFromStorage(t *testing.T) {
	ctx := context.Background()
	repo := newMockIncidentRepo()
	svc := service.NewIncidentService(ctx, repo)

	// A write from another process shows up only after a refresh.
	external := newIncident("written elsewhere")
	_, err := repo.Add(ctx, &external)
	require.NoError(t, err)

	assert.Empty(t, svc.Filter(ctx, nil, nil, nil))
	assert.Len(t, svc.GetAll(ctx), 1)
	assert.Len(t, svc.Filter(ctx, nil, nil, nil), 1)
}

func TestGetAllDegradesOnStorageFailure(t *testing.T) {
	ctx := context.Background()
	repo := newMockIncidentRepo()
	svc := service.NewIncidentService(ctx, repo)
	svc.Add(ctx, newIncident("present"))

	repo.findErr = errors.New("storage down")
	assert.Empty(t, svc.GetAll(ctx))
	assert.Nil(t, svc.GetByID(ctx, 1))
}
