package suites

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gLogger "gorm.io/gorm/logger"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

type PostgresContainer struct {
	testcontainers.Container
	ConnectionString string
	Host             string
	Port             string
}

func NewPostgresContainer(ctx context.Context) (*PostgresContainer, error) {
	const port = "5432/tcp"
	env := map[string]string{
		"POSTGRES_DB":       "testdb",
		"POSTGRES_PASSWORD": "testpass",
		"POSTGRES_USER":     "testuser",
	}

	dbURL := func(host string, port nat.Port) string {
		return fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port())
	}

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17.5-alpine3.21",
		ExposedPorts: []string{port},
		Cmd:          []string{"postgres", "-c", "fsync=off"},
		Env:          env,
		WaitingFor: wait.ForSQL(port, "postgres", dbURL).
			WithStartupTimeout(30 * time.Second).
			WithQuery("SELECT 1"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	return &PostgresContainer{
		Container:        container,
		ConnectionString: dbURL(host, mappedPort),
		Host:             host,
		Port:             mappedPort.Port(),
	}, nil
}

// RepositoryTestSuite spins up a disposable postgres container, applies the
// project migrations and hands child suites a GORM connection configured the
// same way production is (translated errors included).
type RepositoryTestSuite struct {
	suite.Suite
	Container      *PostgresContainer
	DB             *gorm.DB
	SQLDB          *sql.DB
	MigrationsPath string
}

func (suite *RepositoryTestSuite) SetupSuite() {
	suite.T().Helper()

	if testing.Short() {
		suite.T().Skip("Skipping database integration tests in short mode")
	}

	if suite.MigrationsPath == "" {
		suite.MigrationsPath = findMigrationsPath()
	}

	ctx := context.Background()
	container, err := NewPostgresContainer(ctx)
	if err != nil {
		suite.T().Fatalf("Failed to create postgres container: %v", err)
	}
	suite.Container = container

	sqlDB, err := sql.Open("postgres", container.ConnectionString)
	if err != nil {
		suite.T().Fatalf("Failed to open sql connection: %v", err)
	}
	suite.SQLDB = sqlDB

	pingCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		suite.T().Fatalf("Failed to ping database: %v", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
		Logger:         gLogger.Default.LogMode(gLogger.Silent),
	})
	if err != nil {
		suite.T().Fatalf("Failed to open gorm connection: %v", err)
	}
	suite.DB = gormDB

	if err := suite.runMigrations(); err != nil {
		suite.T().Fatalf("Failed to run migrations: %v", err)
	}

	suite.T().Cleanup(func() {
		if suite.SQLDB != nil {
			_ = suite.SQLDB.Close()
		}
		if suite.Container != nil {
			_ = suite.Container.Terminate(context.Background())
		}
	})
}

// BeforeTest wipes table contents so every test starts from an empty store.
func (suite *RepositoryTestSuite) BeforeTest(_, _ string) {
	if suite.DB == nil {
		return
	}

	var tables []string
	suite.DB.Raw(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public'
		AND table_type = 'BASE TABLE'
		AND table_name <> 'schema_migrations'
	`).Scan(&tables)

	for _, table := range tables {
		suite.DB.Exec(fmt.Sprintf(`DELETE FROM %q`, table))
	}
}

func (suite *RepositoryTestSuite) runMigrations() error {
	if suite.MigrationsPath == "" {
		return errors.New("migrations path not set")
	}

	sourceURL := fmt.Sprintf("file://%s", suite.MigrationsPath)
	m, err := migrate.New(sourceURL, suite.Container.ConnectionString)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer m.Close()

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

func (suite *RepositoryTestSuite) CountRecords(table string) int64 {
	var c int64
	suite.DB.Table(table).Count(&c)
	return c
}

// findMigrationsPath walks up from the working directory to the module root
// and returns its migrations directory.
func findMigrationsPath() string {
	wd, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(wd, "go.mod")); err == nil {
			return filepath.Join(wd, "migrations")
		}
		parent := filepath.Dir(wd)
		if parent == wd {
			return ""
		}
		wd = parent
	}
}
