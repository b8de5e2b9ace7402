package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lee777maker/Job-Applier-sub000/internal/types"
)

func newTestStore(t *testing.T) (*Store, *MemStorage) {
	t.Helper()
	storage := NewMemStorage()
	return New(storage), storage
}

func TestNewWithEmptyStorage(t *testing.T) {
	s, _ := newTestStore(t)

	assert.False(t, s.IsLoading(), "hydration must complete during construction")
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
	assert.Nil(t, s.Profile())
	assert.Nil(t, s.JobPreferences())
	assert.Empty(t, s.RecommendedJobs())

	messages := s.ChatMessages()
	require.Len(t, messages, 1, "fresh state seeds exactly one welcome message")
	assert.Equal(t, types.RoleAssistant, messages[0].Role)
	assert.Equal(t, WelcomeMessage, messages[0].Content)
}

func TestNewWithCorruptStorage(t *testing.T) {
	storage := NewMemStorage()
	storage.Seed([]byte("invalid json"))

	s := New(storage)

	assert.False(t, s.IsLoading(), "corrupt snapshots must still finish loading")
	assert.False(t, s.IsAuthenticated(), "corrupt snapshots fall back to defaults")
	require.Len(t, s.ChatMessages(), 1)
}

func TestPersistReload(t *testing.T) {
	storage := NewMemStorage()
	s := New(storage)

	user := types.User{ID: "u1", Email: "neo@example.com", Name: "Neo", Surname: "M"}
	s.Login(user)
	s.SetProfile(&types.UserProfile{
		ContactInfo: types.ContactInfo{FirstName: "Neo", LastName: "M", Email: "neo@example.com"},
		Skills:      []types.Skill{types.NewSkill("Python")},
		ResumeText:  "resume body",
	})
	s.SetJobPreferences(types.JobPreferences{
		PreferredRole: "Engineer",
		ContractTypes: []string{"full-time"},
	})
	s.SetRecommendedJobs([]types.Job{{ID: "j1", Title: "Backend Engineer", Company: "Acme", MatchScore: 0.9}})
	s.AddChatMessage(types.ChatMessage{Role: types.RoleUser, Content: "hello"})
	s.SetExtractedCVData(&types.CVExtractedData{RawText: "raw"})
	s.SetUploadedCV(&types.Attachment{ID: "a1", Name: "cv.pdf", MimeType: "application/pdf", SizeBytes: 42})

	// Simulate a page refresh: a new store over the same storage.
	reloaded := New(storage)

	assert.Equal(t, s.User(), reloaded.User())
	assert.True(t, reloaded.IsAuthenticated())
	assert.Equal(t, s.Profile(), reloaded.Profile())
	assert.Equal(t, s.JobPreferences(), reloaded.JobPreferences())
	assert.Equal(t, s.RecommendedJobs(), reloaded.RecommendedJobs())
	assert.Equal(t, s.ChatMessages(), reloaded.ChatMessages())
	assert.Equal(t, s.ExtractedCVData(), reloaded.ExtractedCVData())
	assert.Nil(t, reloaded.UploadedCV(), "file handles are never restorable")
	assert.False(t, reloaded.IsLoading())
}

func TestUploadedCVNeverPersisted(t *testing.T) {
	storage := NewMemStorage()
	s := New(storage)

	s.SetUploadedCV(&types.Attachment{ID: "a1", Name: "cv.pdf"})
	s.Login(types.User{ID: "u1"}) // trigger a persist after the transient set

	data, err := storage.Load()
	require.NoError(t, err)
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.NotContains(t, raw, "uploadedCV", "the transient file handle must not reach storage")
}

func TestUpdateProfileNoOpWithoutProfile(t *testing.T) {
	s, _ := newTestStore(t)

	text := "new resume"
	s.UpdateProfile(types.ProfileUpdate{ResumeText: &text})

	assert.Nil(t, s.Profile(), "UpdateProfile must never create a profile")
}

func TestUpdateProfileShallowMerge(t *testing.T) {
	s, _ := newTestStore(t)
	s.SetProfile(&types.UserProfile{
		ContactInfo: types.ContactInfo{FirstName: "Neo"},
		Skills:      []types.Skill{types.NewSkill("Python")},
	})

	name := "cv.pdf"
	s.UpdateProfile(types.ProfileUpdate{ResumeFileName: &name})

	p := s.Profile()
	require.NotNil(t, p)
	assert.Equal(t, "cv.pdf", p.ResumeFileName)
	assert.Equal(t, "Neo", p.ContactInfo.FirstName)
	assert.Len(t, p.Skills, 1)
}

func TestAddChatMessageOwnsTimestamps(t *testing.T) {
	s, _ := newTestStore(t)

	before := len(s.ChatMessages())
	for i := 0; i < 5; i++ {
		s.AddChatMessage(types.ChatMessage{
			Role:      types.RoleUser,
			Content:   "msg",
			Timestamp: -1, // caller-supplied timestamps are discarded
		})
	}

	messages := s.ChatMessages()
	require.Len(t, messages, before+5)
	for i := 1; i < len(messages); i++ {
		assert.GreaterOrEqual(t, messages[i].Timestamp, messages[i-1].Timestamp,
			"timestamps must be non-decreasing in insertion order")
	}
	assert.NotEqual(t, int64(-1), messages[len(messages)-1].Timestamp)
}

func TestAddChatMessageMonotonicUnderStalledClock(t *testing.T) {
	s, _ := newTestStore(t)
	fixed := time.Now()
	s.now = func() time.Time { return fixed }

	s.AddChatMessage(types.ChatMessage{Role: types.RoleUser, Content: "a"})
	s.AddChatMessage(types.ChatMessage{Role: types.RoleAssistant, Content: "b"})

	messages := s.ChatMessages()
	n := len(messages)
	assert.GreaterOrEqual(t, messages[n-1].Timestamp, messages[n-2].Timestamp)
}

func TestClearChat(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddChatMessage(types.ChatMessage{Role: types.RoleUser, Content: "one"})
	s.AddChatMessage(types.ChatMessage{Role: types.RoleAssistant, Content: "two"})

	s.ClearChat()

	messages := s.ChatMessages()
	require.Len(t, messages, 1, "clearing always yields exactly one message")
	assert.Equal(t, types.RoleAssistant, messages[0].Role)
	assert.Equal(t, WelcomeMessage, messages[0].Content)
}

func TestLogoutErasesSnapshotAndResets(t *testing.T) {
	storage := NewMemStorage()
	s := New(storage)

	s.Login(types.User{ID: "u1", Email: "neo@example.com"})
	s.SetProfile(&types.UserProfile{ResumeText: "text"})
	s.AddChatMessage(types.ChatMessage{Role: types.RoleUser, Content: "hi"})

	s.Logout()

	data, err := storage.Load()
	require.NoError(t, err)
	assert.Nil(t, data, "logout must erase the durable snapshot, not just clear fields")

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
	assert.Nil(t, s.Profile())
	assert.False(t, s.IsLoading(), "no re-load is needed after logout")

	messages := s.ChatMessages()
	require.Len(t, messages, 1)
	assert.Equal(t, types.RoleAssistant, messages[0].Role)
}

func TestHydrateMergesOverDefaults(t *testing.T) {
	storage := NewMemStorage()
	// A partial snapshot: only the user was saved. Chat and jobs keep defaults.
	storage.Seed([]byte(`{"user":{"id":"u1","email":"neo@example.com","name":"Neo","surname":"M"},"isAuthenticated":true}`))

	s := New(storage)

	require.NotNil(t, s.User())
	assert.Equal(t, "u1", s.User().ID)
	assert.True(t, s.IsAuthenticated())
	require.Len(t, s.ChatMessages(), 1, "fields absent from the snapshot keep defaults")
	assert.Equal(t, WelcomeMessage, s.ChatMessages()[0].Content)
}

func TestSetRecommendedJobsReplaces(t *testing.T) {
	s, _ := newTestStore(t)

	s.SetRecommendedJobs([]types.Job{{ID: "j1"}, {ID: "j2"}})
	s.SetRecommendedJobs([]types.Job{{ID: "j3"}})

	jobs := s.RecommendedJobs()
	require.Len(t, jobs, 1, "replacement semantics, never append")
	assert.Equal(t, "j3", jobs[0].ID)
}

func TestGettersReturnCopies(t *testing.T) {
	s, _ := newTestStore(t)
	s.SetProfile(&types.UserProfile{Skills: []types.Skill{types.NewSkill("Go")}})

	p := s.Profile()
	p.Skills[0] = types.NewSkill("Mutated")
	p.ResumeText = "mutated"

	fresh := s.Profile()
	assert.Equal(t, "Go", fresh.Skills[0].Name, "mutating a returned copy must not leak into the store")
	assert.Empty(t, fresh.ResumeText)
}

func TestFileStorageRoundTrip(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewFileStorage(dir)
	require.NoError(t, err)

	data, err := storage.Load()
	require.NoError(t, err)
	assert.Nil(t, data, "missing file is a valid empty state")

	require.NoError(t, storage.Store([]byte(`{"isAuthenticated":true}`)))
	data, err = storage.Load()
	require.NoError(t, err)
	assert.JSONEq(t, `{"isAuthenticated":true}`, string(data))

	require.NoError(t, storage.Erase())
	data, err = storage.Load()
	require.NoError(t, err)
	assert.Nil(t, data)

	assert.NoError(t, storage.Erase(), "erasing an absent snapshot is not an error")
}
