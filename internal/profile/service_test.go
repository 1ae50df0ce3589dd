package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammadolammi/futureframe/internal/database"
	"github.com/muhammadolammi/futureframe/internal/identity"
)

type memStore struct {
	items  map[string]database.UserInfo
	gets   int
	puts   int
	getErr error
	putErr error
}

func newMemStore() *memStore {
	return &memStore{items: map[string]database.UserInfo{}}
}

func (m *memStore) PutUserInfo(_ context.Context, arg database.PutUserInfoParams) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.puts++
	m.items[arg.UserID] = database.UserInfo{
		UserID:         arg.UserID,
		FirstName:      arg.FirstName,
		LastName:       arg.LastName,
		Email:          arg.Email,
		EducationLevel: arg.EducationLevel,
		FieldOfStudy:   arg.FieldOfStudy,
		Interests:      arg.Interests,
		Skills:         arg.Skills,
		CareerGoals:    arg.CareerGoals,
		CreationDate:   arg.CreationDate,
	}
	return nil
}

func (m *memStore) GetUserInfo(_ context.Context, userID string) (database.UserInfo, error) {
	m.gets++
	if m.getErr != nil {
		return database.UserInfo{}, m.getErr
	}
	info, ok := m.items[userID]
	if !ok {
		return database.UserInfo{}, database.ErrNotFound
	}
	return info, nil
}

var student = identity.User{Subject: "auth0|123", Name: "Ada Lovelace", Email: "ada@example.com"}

func validForm() Form {
	return Form{
		FirstName:      " Ada ",
		LastName:       "Lovelace",
		Email:          "ada@example.com",
		EducationLevel: "Bachelor's Degree",
		FieldOfStudy:   "Mathematics",
		Interests:      []string{"Technology", "Science & Research"},
		Skills:         "Python, , Data Analysis ,Statistics",
		CareerGoals:    "",
	}
}

func newTestService(store Store) *Service {
	s := NewService(store, zerolog.Nop())
	s.now = func() time.Time { return time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestSave_WritesRecordAndCaches(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	cache := NewRequestCache()

	info, err := svc.Save(context.Background(), cache, student, validForm())
	require.NoError(t, err)

	assert.Equal(t, "auth0|123", info.UserID)
	assert.Equal(t, "Ada", info.FirstName)
	assert.Equal(t, []string{"Python", "Data Analysis", "Statistics"}, info.Skills)
	assert.Equal(t, time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC), info.CreationDate)
	assert.Equal(t, info, store.items["auth0|123"])
	assert.Equal(t, 1, store.puts)

	gets := store.gets
	loaded, err := svc.Load(context.Background(), cache, "auth0|123")
	require.NoError(t, err)
	assert.Equal(t, info, loaded)
	assert.Equal(t, gets, store.gets, "load after save must be served from the request cache")
}

func TestSave_KeepsCreationDateOnOverwrite(t *testing.T) {
	store := newMemStore()
	first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store.items[student.Subject] = database.UserInfo{UserID: student.Subject, FirstName: "Old", Skills: []string{"COBOL"}, CreationDate: first}
	svc := newTestService(store)

	info, err := svc.Save(context.Background(), NewRequestCache(), student, validForm())
	require.NoError(t, err)
	assert.Equal(t, first, info.CreationDate)
	assert.Equal(t, "Ada", store.items[student.Subject].FirstName)
	assert.NotContains(t, store.items[student.Subject].Skills, "COBOL")
}

func TestSave_ReadFailureDoesNotWrite(t *testing.T) {
	store := newMemStore()
	store.getErr = errors.New("throttled")
	svc := newTestService(store)

	_, err := svc.Save(context.Background(), NewRequestCache(), student, validForm())
	require.Error(t, err)
	assert.ErrorIs(t, err, store.getErr)
	assert.Zero(t, store.puts)
}

func TestSave_StoreFailure(t *testing.T) {
	store := newMemStore()
	store.putErr = &database.StoreError{Op: "put", Kind: database.KindThrottled, Err: errors.New("slow down")}
	svc := newTestService(store)
	cache := NewRequestCache()

	_, err := svc.Save(context.Background(), cache, student, validForm())
	require.Error(t, err)
	assert.True(t, database.IsKind(err, database.KindThrottled))

	_, err = svc.Load(context.Background(), cache, student.Subject)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestSave_Validation(t *testing.T) {
	cases := map[string]struct {
		mutate func(*Form)
		field  string
	}{
		"missing first name":  {func(f *Form) { f.FirstName = "  " }, "first_name"},
		"bad email":           {func(f *Form) { f.Email = "ada-at-example" }, "email"},
		"unknown education":   {func(f *Form) { f.EducationLevel = "Bootcamp" }, "education_level"},
		"missing field":       {func(f *Form) { f.FieldOfStudy = "" }, "field_of_study"},
		"no interests":        {func(f *Form) { f.Interests = nil }, "interests"},
		"too many interests":  {func(f *Form) { f.Interests = []string{"Technology", "Business", "Healthcare", "Finance", "Marketing", "Education"} }, "interests"},
		"unknown interest":    {func(f *Form) { f.Interests = []string{"Knitting"} }, "interests"},
		"duplicate interests": {func(f *Form) { f.Interests = []string{"Finance", "Finance"} }, "interests"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			store := newMemStore()
			svc := newTestService(store)
			form := validForm()
			tc.mutate(&form)

			_, err := svc.Save(context.Background(), NewRequestCache(), student, form)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidProfile)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tc.field)
			assert.Zero(t, store.puts)
			assert.Zero(t, store.gets)
		})
	}
}

func TestSave_OptionalCareerGoalsAndSkills(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	form := validForm()
	form.Skills = ""
	form.CareerGoals = ""

	info, err := svc.Save(context.Background(), nil, student, form)
	require.NoError(t, err)
	assert.Empty(t, info.Skills)
	assert.Empty(t, info.CareerGoals)
}

func TestLoad_CachesFoundAndNotFound(t *testing.T) {
	store := newMemStore()
	store.items["known"] = database.UserInfo{UserID: "known", FirstName: "Ada"}
	svc := newTestService(store)
	cache := NewRequestCache()
	ctx := context.Background()

	for range 3 {
		info, err := svc.Load(ctx, cache, "known")
		require.NoError(t, err)
		assert.Equal(t, "Ada", info.FirstName)
	}
	for range 3 {
		_, err := svc.Load(ctx, cache, "unknown")
		assert.ErrorIs(t, err, database.ErrNotFound)
	}
	assert.Equal(t, 2, store.gets)
}

func TestLoad_FailuresAreNotCached(t *testing.T) {
	store := newMemStore()
	store.getErr = errors.New("connection refused")
	svc := newTestService(store)
	cache := NewRequestCache()

	_, err := svc.Load(context.Background(), cache, "known")
	require.Error(t, err)
	assert.NotErrorIs(t, err, database.ErrNotFound)

	store.getErr = nil
	store.items["known"] = database.UserInfo{UserID: "known"}
	_, err = svc.Load(context.Background(), cache, "known")
	require.NoError(t, err)
	assert.Equal(t, 2, store.gets)
}

func TestLoad_NilCacheReadsThrough(t *testing.T) {
	store := newMemStore()
	store.items["known"] = database.UserInfo{UserID: "known"}
	svc := newTestService(store)

	_, _ = svc.Load(context.Background(), nil, "known")
	_, _ = svc.Load(context.Background(), nil, "known")
	assert.Equal(t, 2, store.gets)
}

func TestParseSkills(t *testing.T) {
	assert.Equal(t, []string{"Go", "SQL"}, ParseSkills(" Go ,,SQL, "))
	assert.Empty(t, ParseSkills(""))
}

func TestCareerInput(t *testing.T) {
	in := CareerInput(database.UserInfo{
		EducationLevel: "PhD",
		FieldOfStudy:   "Physics",
		CareerGoals:    "Teach",
		Interests:      []string{"Education"},
		Skills:         []string{"LaTeX"},
	})
	assert.Equal(t, "PhD", in.EducationLevel)
	assert.Equal(t, "Physics", in.FieldOfStudy)
	assert.Equal(t, "Teach", in.CareerGoals)
	assert.Equal(t, []string{"Education"}, in.Interests)
	assert.Equal(t, []string{"LaTeX"}, in.Skills)
}
