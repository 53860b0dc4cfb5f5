package service

import (
	"os"
	"path/filepath"
	"testing"

	"gamevault/database"
	"gamevault/logger"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	logger.InitLogger(logging.ERROR)
	os.Exit(m.Run())
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.InitDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = database.CloseDB(db)
	})
	return db
}
