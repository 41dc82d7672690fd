package db

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/moodmates/moodmates/internal/models"
)

func openTestStore(t *testing.T) *Repositories {
	t.Helper()

	database, err := OpenSQLite(filepath.Join(t.TempDir(), "moodmates-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return NewRepositories(database)
}

func TestMigrationsCreateExpectedTables(t *testing.T) {
	repos := openTestStore(t)

	user := models.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	}
	if err := repos.Users.Create(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected assigned user id")
	}

	loaded, err := repos.Users.FindByNormalizedEmail("alice@example.com")
	if err != nil {
		t.Fatalf("find by email: %v", err)
	}
	if loaded.ID != user.ID {
		t.Fatalf("loaded id %d, want %d", loaded.ID, user.ID)
	}
}

func TestMigrationsAreIdempotentAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "moodmates-test.db")

	for attempt := 0; attempt < 2; attempt++ {
		database, err := OpenSQLite(dbPath)
		if err != nil {
			t.Fatalf("open attempt %d: %v", attempt, err)
		}
		sqlDB, err := database.DB()
		if err != nil {
			t.Fatalf("unwrap sql db: %v", err)
		}
		if err := sqlDB.Close(); err != nil {
			t.Fatalf("close attempt %d: %v", attempt, err)
		}
	}
}

func TestDuplicateEmailTranslatesToConflict(t *testing.T) {
	repos := openTestStore(t)

	first := models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash", CreatedAt: time.Now().UTC()}
	if err := repos.Users.Create(&first); err != nil {
		t.Fatalf("create first user: %v", err)
	}

	duplicate := models.User{Username: "other", Email: "alice@example.com", PasswordHash: "hash", CreatedAt: time.Now().UTC()}
	if err := repos.Users.Create(&duplicate); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict on duplicate email, got %v", err)
	}
}

func TestDuplicateFriendPairTranslatesToConflict(t *testing.T) {
	repos := openTestStore(t)
	alice, bob := seedUserPair(t, repos)

	edge := models.FriendEdge{UserID: alice, FriendID: bob, Status: models.FriendStatusSent}
	if err := repos.Friends.CreateEdge(&edge); err != nil {
		t.Fatalf("create edge: %v", err)
	}

	duplicate := models.FriendEdge{UserID: alice, FriendID: bob, Status: models.FriendStatusSent}
	if err := repos.Friends.CreateEdge(&duplicate); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict on duplicate pair, got %v", err)
	}

	// The reverse direction is a distinct row and must be allowed.
	reverse := models.FriendEdge{UserID: bob, FriendID: alice, Status: models.FriendStatusSent}
	if err := repos.Friends.CreateEdge(&reverse); err != nil {
		t.Fatalf("create reverse edge: %v", err)
	}
}

func TestDuplicateMoodDayTranslatesToConflict(t *testing.T) {
	repos := openTestStore(t)
	alice, _ := seedUserPair(t, repos)

	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	entry := models.MoodEntry{UserID: alice, Mood: "😊", Color: "#4ECDC4", Streak: 1, Day: day, CreatedAt: day.Add(9 * time.Hour)}
	if err := repos.Moods.Create(&entry); err != nil {
		t.Fatalf("create mood: %v", err)
	}

	duplicate := models.MoodEntry{UserID: alice, Mood: "😢", Color: "#A8A8A8", Streak: 1, Day: day, CreatedAt: day.Add(20 * time.Hour)}
	if err := repos.Moods.Create(&duplicate); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict on duplicate day, got %v", err)
	}
}

func TestAcceptPairKeepsEdgesInStep(t *testing.T) {
	repos := openTestStore(t)
	alice, bob := seedUserPair(t, repos)

	edge := models.FriendEdge{UserID: alice, FriendID: bob, Status: models.FriendStatusSent}
	if err := repos.Friends.CreateEdge(&edge); err != nil {
		t.Fatalf("create edge: %v", err)
	}

	if err := repos.Friends.AcceptPair(alice, bob); err != nil {
		t.Fatalf("accept pair: %v", err)
	}
	// Accepting again must not create extra rows or change state.
	if err := repos.Friends.AcceptPair(alice, bob); err != nil {
		t.Fatalf("repeat accept pair: %v", err)
	}

	for _, direction := range [][2]uint{{alice, bob}, {bob, alice}} {
		stored, found, err := repos.Friends.FindEdgeByPair(direction[0], direction[1])
		if err != nil || !found {
			t.Fatalf("edge %v missing after accept: %v", direction, err)
		}
		if stored.Status != models.FriendStatusAccepted {
			t.Fatalf("edge %v status = %q, want accepted", direction, stored.Status)
		}
	}
}

func seedUserPair(t *testing.T, repos *Repositories) (uint, uint) {
	t.Helper()

	alice := models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash", CreatedAt: time.Now().UTC()}
	bob := models.User{Username: "bob", Email: "bob@example.com", PasswordHash: "hash", CreatedAt: time.Now().UTC()}
	if err := repos.Users.Create(&alice); err != nil {
		t.Fatalf("create alice: %v", err)
	}
	if err := repos.Users.Create(&bob); err != nil {
		t.Fatalf("create bob: %v", err)
	}
	return alice.ID, bob.ID
}
