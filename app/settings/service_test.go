package settings

import (
	"testing"

	"scout/app/models"
	"scout/core/emitter"
	"scout/core/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestService(t *testing.T) (*SettingsService, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return NewSettingsService(gdb, emitter.New(), logger.NewNop()), mock
}

func TestGetSettingStringReturnsStoredValue(t *testing.T) {
	service, mock := newTestService(t)

	mock.ExpectQuery(`SELECT \* FROM "settings"`).
		WithArgs("site_name", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "setting_key", "value_string"}).
			AddRow(int64(1), "site_name", "Scout"))

	value := service.GetSettingString("site_name", "fallback")
	assert.Equal(t, "Scout", value)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSettingStringFallsBackToDefault(t *testing.T) {
	service, mock := newTestService(t)

	mock.ExpectQuery(`SELECT \* FROM "settings"`).
		WithArgs("missing_key", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	value := service.GetSettingString("missing_key", "fallback")
	assert.Equal(t, "fallback", value)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSettingBoolFallsBackToDefault(t *testing.T) {
	service, mock := newTestService(t)

	mock.ExpectQuery(`SELECT \* FROM "settings"`).
		WithArgs("missing_flag", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	assert.True(t, service.GetSettingBool("missing_flag", true))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertSettingCreatesAndEmits(t *testing.T) {
	service, mock := newTestService(t)

	var emitted *models.Settings
	service.Emitter.On(UpdateSettingsEvent, func(data any) {
		emitted, _ = data.(*models.Settings)
	})

	mock.ExpectQuery(`SELECT \* FROM "settings"`).
		WithArgs("site_name", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "settings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectCommit()

	err := service.UpsertSetting(&models.Settings{
		SettingKey:  "site_name",
		ValueString: "Scout",
		Type:        "string",
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	require.NotNil(t, emitted)
	assert.Equal(t, "site_name", emitted.SettingKey)
	assert.Equal(t, uint(1), emitted.Id)
}
