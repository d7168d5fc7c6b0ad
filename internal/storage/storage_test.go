package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chronosdeck/internal/model"
	"chronosdeck/internal/paths"
)

// Helper to create an in-memory database for testing
func setupTestDB(t *testing.T) *DB {
	db, err := Open(Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func testResolver() paths.Resolver {
	return paths.NewResolver("test-app")
}

// =============================================================================
// DB Tests
// =============================================================================

func TestOpenClose(t *testing.T) {
	t.Run("in_memory", func(t *testing.T) {
		db, err := Open(Options{InMemory: true})
		require.NoError(t, err)
		assert.NotNil(t, db)
		assert.NoError(t, db.Close())
	})

	t.Run("empty_path_uses_in_memory", func(t *testing.T) {
		db, err := Open(Options{Path: ""})
		require.NoError(t, err)
		assert.NotNil(t, db)
		db.Close()
	})
}

func TestDBBadger(t *testing.T) {
	db := setupTestDB(t)
	assert.NotNil(t, db.Badger())
}

// =============================================================================
// CRUD Tests
// =============================================================================

func TestCreateAssignsID(t *testing.T) {
	db := setupTestDB(t)
	col := testResolver().Subjects("user-1")

	subject := model.NewSubject("Math", "#7C3AED")
	require.NoError(t, db.Create(col, subject))
	assert.NotEmpty(t, subject.ID)

	got := &model.Subject{}
	require.NoError(t, db.Get(col, subject.ID, got))
	assert.Equal(t, "Math", got.Name)
	assert.Equal(t, "#7C3AED", got.Color)
	assert.Equal(t, subject.ID, got.ID)
}

func TestGetNotFound(t *testing.T) {
	db := setupTestDB(t)
	col := testResolver().Subjects("user-1")

	err := db.Get(col, "missing", &model.Subject{})
	require.Error(t, err)
	assert.True(t, IsErrDocNotFound(err))
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)
	col := testResolver().Subjects("user-1")

	subject := model.NewSubject("Math", "")
	require.NoError(t, db.Create(col, subject))
	require.NoError(t, db.Delete(col, subject.ID))

	err := db.Get(col, subject.ID, &model.Subject{})
	assert.True(t, IsErrDocNotFound(err))

	// Deleting an absent document is not an error.
	assert.NoError(t, db.Delete(col, subject.ID))
}

func TestExists(t *testing.T) {
	db := setupTestDB(t)
	col := testResolver().Subjects("user-1")

	exists, err := db.Exists(col, "nope")
	require.NoError(t, err)
	assert.False(t, exists)

	subject := model.NewSubject("Math", "")
	require.NoError(t, db.Create(col, subject))

	exists, err = db.Exists(col, subject.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestSnapshotUserIsolation(t *testing.T) {
	db := setupTestDB(t)
	r := testResolver()

	require.NoError(t, db.Create(r.Subjects("alice"), model.NewSubject("Math", "")))
	require.NoError(t, db.Create(r.Subjects("alice"), model.NewSubject("Art", "")))
	require.NoError(t, db.Create(r.Subjects("bob"), model.NewSubject("History", "")))

	aliceDocs, err := db.Snapshot(r.Subjects("alice"))
	require.NoError(t, err)
	assert.Len(t, aliceDocs, 2)

	bobDocs, err := db.Snapshot(r.Subjects("bob"))
	require.NoError(t, err)
	assert.Len(t, bobDocs, 1)

	// A third user sees nothing.
	emptyDocs, err := db.Snapshot(r.Subjects("carol"))
	require.NoError(t, err)
	assert.Empty(t, emptyDocs)
}

// =============================================================================
// Raw Bytes Tests
// =============================================================================

func TestBytes(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.GetBytes("session:current")
	assert.True(t, IsErrDocNotFound(err))

	require.NoError(t, db.SetBytes("session:current", []byte(`{"uid":"u1"}`)))
	data, err := db.GetBytes("session:current")
	require.NoError(t, err)
	assert.Equal(t, `{"uid":"u1"}`, string(data))

	require.NoError(t, db.DeleteBytes("session:current"))
	_, err = db.GetBytes("session:current")
	assert.True(t, IsErrDocNotFound(err))
}

// =============================================================================
// Repository Tests
// =============================================================================

func TestSubjectRepo(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubjectRepo(db, testResolver(), "user-1")

	subject := model.NewSubject("Physics", "#10B981")
	require.NoError(t, repo.Create(subject))

	subjects, err := repo.List()
	require.NoError(t, err)
	require.Len(t, subjects, 1)
	assert.Equal(t, "Physics", subjects[0].Name)

	found, err := repo.FindByName("Physics")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, subject.ID, found.ID)

	missing, err := repo.FindByName("Chemistry")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.Delete(subject.ID))
	subjects, err = repo.List()
	require.NoError(t, err)
	assert.Empty(t, subjects)
}

func TestTaskRepoFieldPatches(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepo(db, testResolver(), "user-1")

	task := model.NewTask("Read chapter 3", "Math", "")
	require.NoError(t, repo.Create(task))
	assert.False(t, task.IsComplete)

	require.NoError(t, repo.SetComplete(task.ID, true))
	got, err := repo.Get(task.ID)
	require.NoError(t, err)
	assert.True(t, got.IsComplete)
	assert.Equal(t, "Read chapter 3", got.TaskName)

	require.NoError(t, repo.SetName(task.ID, "Read chapter 4"))
	require.NoError(t, repo.SetDueDate(task.ID, "2026-09-01"))
	require.NoError(t, repo.SetSubjectTag(task.ID, "Physics"))

	got, err = repo.Get(task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Read chapter 4", got.TaskName)
	assert.Equal(t, "2026-09-01", got.DueDate)
	assert.Equal(t, "Physics", got.SubjectTag)
	assert.True(t, got.IsComplete)

	err = repo.SetComplete("missing", true)
	assert.True(t, IsErrDocNotFound(err))
}

func TestTaskKeepsSubjectTagAfterSubjectDelete(t *testing.T) {
	db := setupTestDB(t)
	r := testResolver()
	subjects := NewSubjectRepo(db, r, "user-1")
	tasks := NewTaskRepo(db, r, "user-1")

	subject := model.NewSubject("Math", "")
	require.NoError(t, subjects.Create(subject))

	task := model.NewTask("Problem set", "Math", "")
	require.NoError(t, tasks.Create(task))

	require.NoError(t, subjects.Delete(subject.ID))

	got, err := tasks.Get(task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Math", got.SubjectTag)
}

func TestDeckAndCardRepos(t *testing.T) {
	db := setupTestDB(t)
	r := testResolver()
	decks := NewDeckRepo(db, r, "user-1")
	cards := NewCardRepo(db, r, "user-1")

	deck := model.NewDeck("French Vocab")
	require.NoError(t, decks.Create(deck))

	card := model.NewCard("bonjour", "hello")
	require.NoError(t, cards.Create(deck.ID, card))

	deckCards, err := cards.List(deck.ID)
	require.NoError(t, err)
	require.Len(t, deckCards, 1)
	assert.Equal(t, "bonjour", deckCards[0].Term)

	require.NoError(t, cards.SetDefinition(deck.ID, card.ID, "hello there"))
	got, err := cards.Get(deck.ID, card.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello there", got.Definition)

	// Cards of another deck are invisible.
	other := model.NewDeck("Spanish Vocab")
	require.NoError(t, decks.Create(other))
	otherCards, err := cards.List(other.ID)
	require.NoError(t, err)
	assert.Empty(t, otherCards)
}

func TestDeckListExcludesCards(t *testing.T) {
	db := setupTestDB(t)
	r := testResolver()
	decks := NewDeckRepo(db, r, "user-1")
	cards := NewCardRepo(db, r, "user-1")

	deck := model.NewDeck("French Vocab")
	require.NoError(t, decks.Create(deck))
	require.NoError(t, cards.Create(deck.ID, model.NewCard("bonjour", "hello")))
	require.NoError(t, cards.Create(deck.ID, model.NewCard("merci", "thanks")))

	// Card documents share the decks key prefix but must not appear as decks.
	all, err := decks.List()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "French Vocab", all[0].DeckName)
}

func TestDeckDeleteLeavesCards(t *testing.T) {
	db := setupTestDB(t)
	r := testResolver()
	decks := NewDeckRepo(db, r, "user-1")
	cards := NewCardRepo(db, r, "user-1")

	deck := model.NewDeck("French Vocab")
	require.NoError(t, decks.Create(deck))
	require.NoError(t, cards.Create(deck.ID, model.NewCard("bonjour", "hello")))

	require.NoError(t, decks.Delete(deck.ID))

	// Card documents survive under the deleted deck's path.
	orphans, err := cards.List(deck.ID)
	require.NoError(t, err)
	assert.Len(t, orphans, 1)
}

func TestSessionRepoAppendOnly(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepo(db, testResolver(), "user-1")

	now := time.Now()
	require.NoError(t, repo.Create(model.NewStudySession("Math", 25, now)))
	require.NoError(t, repo.Create(model.NewStudySession("Art", 25, now)))

	sessions, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, sessions, 2)
}

func TestQuizRepo(t *testing.T) {
	db := setupTestDB(t)
	repo := NewQuizRepo(db, testResolver(), "user-1")

	require.NoError(t, repo.Create(model.NewQuizHistoryEntry("French Vocab", "3/5", time.Now())))

	entries, err := repo.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "3/5", entries[0].Score)
	assert.Equal(t, "French Vocab", entries[0].DeckName)
}

// =============================================================================
// Watch Tests
// =============================================================================

// awaitSnapshot reads one delivery from the watch or fails the test.
func awaitSnapshot(t *testing.T, w *Watch) []Document {
	t.Helper()
	select {
	case docs, ok := <-w.Updates():
		require.True(t, ok, "watch channel closed unexpectedly")
		return docs
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for snapshot")
		return nil
	}
}

// awaitSnapshotLen reads deliveries until one has the wanted size. Change
// events may be coalesced, so intermediate sizes can be skipped.
func awaitSnapshotLen(t *testing.T, w *Watch, want int) []Document {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case docs, ok := <-w.Updates():
			require.True(t, ok, "watch channel closed unexpectedly")
			if len(docs) == want {
				return docs
			}
		case <-deadline:
			t.Fatalf("timed out waiting for snapshot of %d documents", want)
			return nil
		}
	}
}

func TestWatchDeliversInitialSnapshot(t *testing.T) {
	db := setupTestDB(t)
	col := testResolver().Subjects("user-1")
	require.NoError(t, db.Create(col, model.NewSubject("Math", "")))

	w := db.Watch(col)
	defer w.Close()

	docs := awaitSnapshot(t, w)
	require.Len(t, docs, 1)

	subject := &model.Subject{}
	require.NoError(t, docs[0].Decode(subject))
	assert.Equal(t, "Math", subject.Name)
}

func TestWatchDeliversChanges(t *testing.T) {
	db := setupTestDB(t)
	col := testResolver().Subjects("user-1")

	w := db.Watch(col)
	defer w.Close()

	docs := awaitSnapshot(t, w)
	assert.Empty(t, docs)

	require.NoError(t, db.Create(col, model.NewSubject("Math", "")))
	docs = awaitSnapshotLen(t, w, 1)
	require.Len(t, docs, 1)

	subject := &model.Subject{}
	require.NoError(t, docs[0].Decode(subject))
	require.NoError(t, db.Delete(col, subject.ID))
	awaitSnapshotLen(t, w, 0)
}

func TestWatchIgnoresOtherUsers(t *testing.T) {
	db := setupTestDB(t)
	r := testResolver()

	w := db.Watch(r.Subjects("alice"))
	defer w.Close()
	awaitSnapshot(t, w)

	// A write to another user's collection must not reach this watch.
	require.NoError(t, db.Create(r.Subjects("bob"), model.NewSubject("History", "")))
	require.NoError(t, db.Create(r.Subjects("alice"), model.NewSubject("Math", "")))

	docs := awaitSnapshotLen(t, w, 1)
	subject := &model.Subject{}
	require.NoError(t, docs[0].Decode(subject))
	assert.Equal(t, "Math", subject.Name)
}

func TestWatchClose(t *testing.T) {
	db := setupTestDB(t)
	col := testResolver().Subjects("user-1")

	w := db.Watch(col)
	awaitSnapshot(t, w)

	w.Close()
	// Close is idempotent.
	w.Close()

	// The channel drains and closes; further writes deliver nothing.
	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-w.Updates():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("watch channel did not close")
		}
	}
}
