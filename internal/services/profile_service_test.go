package services

import (
	"testing"
	"time"

	"devconnector_backend/internal/models"
	"devconnector_backend/internal/repositories"
	"devconnector_backend/internal/services/dto"
	"devconnector_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProfileService() ProfileService {
	return NewProfileService(repositories.NewProfileRepository(), repositories.NewUserRepository())
}

func strPtr(s string) *string { return &s }

func upsertBasicProfile(t *testing.T, db *gorm.DB, svc ProfileService, userID string) *dto.ProfileResponse {
	t.Helper()
	resp, err := svc.UpsertProfile(db, userID, &dto.UpsertProfileRequest{
		Status: "Developer",
		Skills: "go, rust, c++",
	})
	require.NoError(t, err)
	return resp
}

func TestUpsertProfile_CreatesAndNormalizesSkills(t *testing.T) {
	db := newTestDB(t)
	svc := newProfileService()
	user := createTestUser(t, db, "John", "john@example.com")

	resp, err := svc.UpsertProfile(db, user.ID, &dto.UpsertProfileRequest{
		Status:  "Developer",
		Skills:  "  go ,rust,  c++ , ,",
		Company: strPtr("Acme"),
	})
	require.NoError(t, err)

	assert.Equal(t, user.ID, resp.UserID)
	assert.Equal(t, "Developer", resp.Status)
	assert.Equal(t, "Acme", resp.Company)
	assert.Equal(t, []string{"go", "rust", "c++"}, resp.Skills)
	assert.Empty(t, resp.Experience)
	assert.Empty(t, resp.Education)
}

func TestUpsertProfile_Idempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newProfileService()
	user := createTestUser(t, db, "John", "john@example.com")

	first := upsertBasicProfile(t, db, svc, user.ID)
	second := upsertBasicProfile(t, db, svc, user.ID)

	// Повторный upsert обновляет тот же документ, а не создает новый
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.Profile{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpsertProfile_PartialUpdatePreservesOtherFields(t *testing.T) {
	db := newTestDB(t)
	svc := newProfileService()
	user := createTestUser(t, db, "John", "john@example.com")

	_, err := svc.UpsertProfile(db, user.ID, &dto.UpsertProfileRequest{
		Status:   "Developer",
		Skills:   "go",
		Company:  strPtr("Acme"),
		Location: strPtr("Berlin"),
	})
	require.NoError(t, err)

	// Добавим опыт, чтобы проверить, что upsert его не трогает
	_, err = svc.AddExperience(db, user.ID, &dto.AddExperienceRequest{
		Title: "Engineer", Company: "Acme", From: time.Now(),
	})
	require.NoError(t, err)

	resp, err := svc.UpsertProfile(db, user.ID, &dto.UpsertProfileRequest{
		Status:  "Senior Developer",
		Skills:  "go, sql",
		Company: strPtr("Globex"),
		// Location отсутствует: поле не должно измениться
	})
	require.NoError(t, err)

	assert.Equal(t, "Senior Developer", resp.Status)
	assert.Equal(t, "Globex", resp.Company)
	assert.Equal(t, "Berlin", resp.Location)
	assert.Equal(t, []string{"go", "sql"}, resp.Skills)
	assert.Len(t, resp.Experience, 1)
}

func TestGetMyProfile_NoProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newProfileService()
	user := createTestUser(t, db, "John", "john@example.com")

	_, err := svc.GetMyProfile(db, user.ID)
	assert.ErrorIs(t, err, apperrors.ErrNoProfile)
}

func TestGetMyProfile_IncludesOwner(t *testing.T) {
	db := newTestDB(t)
	svc := newProfileService()
	user := createTestUser(t, db, "John", "john@example.com")
	upsertBasicProfile(t, db, svc, user.ID)

	resp, err := svc.GetMyProfile(db, user.ID)
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.Equal(t, "John", resp.User.Name)
}

func TestGetProfileByUserID_InvalidAndAbsentLookAlike(t *testing.T) {
	db := newTestDB(t)
	svc := newProfileService()

	// Синтаксически битый id и отсутствующий профиль неразличимы снаружи
	_, errInvalid := svc.GetProfileByUserID(db, "not-a-uuid")
	_, errAbsent := svc.GetProfileByUserID(db, "00000000-0000-0000-0000-000000000000")

	assert.ErrorIs(t, errInvalid, apperrors.ErrProfileNotFound)
	assert.ErrorIs(t, errAbsent, apperrors.ErrProfileNotFound)
}

func TestListProfiles(t *testing.T) {
	db := newTestDB(t)
	svc := newProfileService()

	alice := createTestUser(t, db, "Alice", "alice@example.com")
	bob := createTestUser(t, db, "Bob", "bob@example.com")
	upsertBasicProfile(t, db, svc, alice.ID)
	upsertBasicProfile(t, db, svc, bob.ID)

	profiles, err := svc.ListProfiles(db)
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	names := []string{profiles[0].User.Name, profiles[1].User.Name}
	assert.ElementsMatch(t, []string{"Alice", "Bob"}, names)
}

func TestAddExperience_PrependsNewest(t *testing.T) {
	db := newTestDB(t)
	svc := newProfileService()
	user := createTestUser(t, db, "John", "john@example.com")
	upsertBasicProfile(t, db, svc, user.ID)

	_, err := svc.AddExperience(db, user.ID, &dto.AddExperienceRequest{
		Title: "Junior", Company: "Acme", From: time.Now().AddDate(-3, 0, 0),
	})
	require.NoError(t, err)

	resp, err := svc.AddExperience(db, user.ID, &dto.AddExperienceRequest{
		Title: "Senior", Company: "Globex", From: time.Now(),
	})
	require.NoError(t, err)

	require.Len(t, resp.Experience, 2)
	assert.Equal(t, "Senior", resp.Experience[0].Title)
	assert.Equal(t, "Junior", resp.Experience[1].Title)
	assert.NotEmpty(t, resp.Experience[0].ID)
	assert.NotEqual(t, resp.Experience[0].ID, resp.Experience[1].ID)
}

func TestAddExperience_NoProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newProfileService()
	user := createTestUser(t, db, "John", "john@example.com")

	_, err := svc.AddExperience(db, user.ID, &dto.AddExperienceRequest{
		Title: "Engineer", Company: "Acme", From: time.Now(),
	})
	assert.ErrorIs(t, err, apperrors.ErrNoProfile)
}

func TestRemoveExperience_RestoresPriorSequence(t *testing.T) {
	db := newTestDB(t)
	svc := newProfileService()
	user := createTestUser(t, db, "John", "john@example.com")
	upsertBasicProfile(t, db, svc, user.ID)

	_, err := svc.AddExperience(db, user.ID, &dto.AddExperienceRequest{
		Title: "First", Company: "Acme", From: time.Now().AddDate(-2, 0, 0),
	})
	require.NoError(t, err)
	withTwo, err := svc.AddExperience(db, user.ID, &dto.AddExperienceRequest{
		Title: "Second", Company: "Globex", From: time.Now(),
	})
	require.NoError(t, err)
	require.Len(t, withTwo.Experience, 2)

	resp, err := svc.RemoveExperience(db, user.ID, withTwo.Experience[0].ID)
	require.NoError(t, err)
	require.Len(t, resp.Experience, 1)
	assert.Equal(t, "First", resp.Experience[0].Title)
}

func TestRemoveExperience_UnknownIDIsNoop(t *testing.T) {
	db := newTestDB(t)
	svc := newProfileService()
	user := createTestUser(t, db, "John", "john@example.com")
	upsertBasicProfile(t, db, svc, user.ID)

	withOne, err := svc.AddExperience(db, user.ID, &dto.AddExperienceRequest{
		Title: "Engineer", Company: "Acme", From: time.Now(),
	})
	require.NoError(t, err)

	resp, err := svc.RemoveExperience(db, user.ID, "no-such-entry")
	require.NoError(t, err)
	assert.Equal(t, withOne.Experience, resp.Experience)
}

func TestAddAndRemoveEducation(t *testing.T) {
	db := newTestDB(t)
	svc := newProfileService()
	user := createTestUser(t, db, "John", "john@example.com")
	upsertBasicProfile(t, db, svc, user.ID)

	_, err := svc.AddEducation(db, user.ID, &dto.AddEducationRequest{
		School: "MIT", Degree: "BSc", FieldOfStudy: "CS", From: time.Now().AddDate(-6, 0, 0),
	})
	require.NoError(t, err)

	withTwo, err := svc.AddEducation(db, user.ID, &dto.AddEducationRequest{
		School: "Stanford", Degree: "MSc", FieldOfStudy: "CS", From: time.Now().AddDate(-2, 0, 0),
	})
	require.NoError(t, err)

	require.Len(t, withTwo.Education, 2)
	assert.Equal(t, "Stanford", withTwo.Education[0].School)

	resp, err := svc.RemoveEducation(db, user.ID, withTwo.Education[0].ID)
	require.NoError(t, err)
	require.Len(t, resp.Education, 1)
	assert.Equal(t, "MIT", resp.Education[0].School)
}
