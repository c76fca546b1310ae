package integration_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/cintasign/hse-portal/internal/config"
	"github.com/cintasign/hse-portal/internal/database"
	"github.com/cintasign/hse-portal/internal/models"
	"github.com/cintasign/hse-portal/internal/services"
)

// TestWithMariaDB tests the storage layer against a real MariaDB container
func TestWithMariaDB(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	dbImage := os.Getenv("DB_IMAGE")
	if dbImage == "" {
		dbImage = "mariadb:11"
	}

	// Start MariaDB container
	mariadbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        dbImage,
			ExposedPorts: []string{"3306/tcp"},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "rootpass",
				"MYSQL_DATABASE":      "testdb",
				"MYSQL_USER":          "testuser",
				"MYSQL_PASSWORD":      "testpass",
			},
			WaitingFor: wait.ForLog("ready for connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MariaDB container: %v", err)
	}
	defer func() {
		if err := mariadbContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MariaDB container: %v", err)
		}
	}()

	host, err := mariadbContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := mariadbContainer.MappedPort(ctx, "3306")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	cfg := &config.Config{
		DBType:            "mysql",
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        "testdb",
		DBUser:            "testuser",
		DBPassword:        "testpass",
		DBConnectionLimit: 5,
	}

	// Wait for database to be ready
	time.Sleep(5 * time.Second)

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	t.Run("SequenceRoundTrip", func(t *testing.T) {
		testSequenceRoundTrip(t, db)
	})
	t.Run("SubmissionRoundTrip", func(t *testing.T) {
		testSubmissionRoundTrip(t, db)
	})
}

func testSequenceRoundTrip(t *testing.T, db *gorm.DB) {
	date := time.Now().UTC().Format(models.SequenceDateFormat)

	next, err := services.PeekNextDocumentNumber(db, "bell-timber-truck", date)
	if err != nil {
		t.Fatalf("Peek failed: %v", err)
	}
	if next != models.SequenceBaseline {
		t.Errorf("Expected baseline %d, got %d", models.SequenceBaseline, next)
	}

	issued, err := services.CommitDocumentNumber(db, "bell-timber-truck", date)
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if issued != models.SequenceBaseline {
		t.Errorf("Expected first issued number %d, got %d", models.SequenceBaseline, issued)
	}

	issued, err = services.CommitDocumentNumber(db, "bell-timber-truck", date)
	if err != nil {
		t.Fatalf("Second commit failed: %v", err)
	}
	if issued != models.SequenceBaseline+1 {
		t.Errorf("Expected second issued number %d, got %d", models.SequenceBaseline+1, issued)
	}

	next, err = services.PeekNextDocumentNumber(db, "bell-timber-truck", date)
	if err != nil {
		t.Fatalf("Peek after commit failed: %v", err)
	}
	if next != models.SequenceBaseline+2 {
		t.Errorf("Expected peek %d after two commits, got %d", models.SequenceBaseline+2, next)
	}
}

func testSubmissionRoundTrip(t *testing.T, db *gorm.DB) {
	brand := models.BrandCintasign
	identity := models.Identity{UserID: "11111111-2222-3333-4444-555555555555", Role: models.RoleUser, Brand: &brand}

	input := &services.SubmissionInput{
		FormType:    "skidder",
		FormTitle:   "Skidder Inspection",
		SubmittedBy: "J. Doe",
		HasDefects:  true,
	}

	created, err := services.CreateSubmission(db, input, identity)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == "" {
		t.Error("Expected generated id")
	}
	if created.Brand != models.BrandCintasign {
		t.Errorf("Expected brand %q, got %q", models.BrandCintasign, created.Brand)
	}

	listed, err := services.ListSubmissions(db, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("Expected 1 submission, got %d", len(listed))
	}
	if listed[0].UserID != identity.UserID {
		t.Errorf("Expected user id %q, got %q", identity.UserID, listed[0].UserID)
	}

	if err := services.DeleteSubmission(db, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := services.DeleteSubmission(db, created.ID); err == nil {
		t.Error("Expected not-found error on repeated delete")
	}
}
