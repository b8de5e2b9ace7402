package store

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/lee777maker/Job-Applier-sub000/internal/types"
)

// WelcomeMessage is the assistant message every fresh chat history starts with.
const WelcomeMessage = "Hi, I am your personal assistant\n\nTask I can assist you with:\n" +
	"1. Find jobs where you are top candidate\n" +
	"2. Assist with interview questions\n" +
	"3. Provide insights on specific jobs\n" +
	"4. Help with app navigation"

// state is the full in-memory application state. uploadedCV is transient and
// never persisted; everything else round-trips through Storage.
type state struct {
	User            *types.User
	IsAuthenticated bool
	Profile         *types.UserProfile
	JobPreferences  *types.JobPreferences
	RecommendedJobs []types.Job
	ChatMessages    []types.ChatMessage
	UploadedCV      *types.Attachment
	ExtractedCVData *types.CVExtractedData
	IsLoading       bool
}

// persisted is the exact field set written to durable storage.
type persisted struct {
	User            *types.User            `json:"user"`
	IsAuthenticated bool                   `json:"isAuthenticated"`
	Profile         *types.UserProfile     `json:"profile"`
	JobPreferences  *types.JobPreferences  `json:"jobPreferences"`
	RecommendedJobs []types.Job            `json:"recommendedJobs"`
	ChatMessages    []types.ChatMessage    `json:"chatMessages"`
	ExtractedCVData *types.CVExtractedData `json:"extractedCVData"`
}

// Store is the single mutable application state container shared by the
// whole client. Every mutation is an atomic assignment under the mutex, and
// the durable snapshot is rewritten before the mutation returns, so the
// stored state always reflects the most recent successful mutation.
type Store struct {
	mu      sync.Mutex
	storage Storage
	state   state
	now     func() time.Time
}

// New creates a Store backed by the given storage and hydrates it from any
// previously persisted snapshot. Hydration never fails: a corrupt snapshot
// is logged and discarded in favor of defaults.
func New(storage Storage) *Store {
	s := &Store{
		storage: storage,
		now:     time.Now,
	}
	s.state = s.defaults()
	s.hydrate()
	return s
}

// defaults returns the empty application state: no user, no profile, a
// single assistant welcome message, loading until hydration completes.
func (s *Store) defaults() state {
	return state{
		RecommendedJobs: []types.Job{},
		ChatMessages: []types.ChatMessage{
			{
				Role:      types.RoleAssistant,
				Content:   WelcomeMessage,
				Timestamp: s.now().UnixMilli(),
			},
		},
		IsLoading: true,
	}
}

// hydrate loads the persisted snapshot once, at construction. Parsed fields
// win over defaults; absent fields keep their defaults. uploadedCV is never
// restorable and is forced nil. IsLoading flips false on every outcome.
func (s *Store) hydrate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	defer func() {
		s.state.UploadedCV = nil
		s.state.IsLoading = false
	}()

	data, err := s.storage.Load()
	if err != nil {
		log.Printf("[store] failed to load saved state: %v", err)
		return
	}
	if data == nil {
		return
	}

	// Unmarshal over a snapshot of the defaults so that keys absent from
	// the stored blob keep their default values.
	snap := persisted{
		User:            s.state.User,
		IsAuthenticated: s.state.IsAuthenticated,
		Profile:         s.state.Profile,
		JobPreferences:  s.state.JobPreferences,
		RecommendedJobs: s.state.RecommendedJobs,
		ChatMessages:    s.state.ChatMessages,
		ExtractedCVData: s.state.ExtractedCVData,
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Printf("[store] failed to parse saved state, using defaults: %v", err)
		return
	}

	s.state.User = snap.User
	s.state.IsAuthenticated = snap.IsAuthenticated
	s.state.Profile = snap.Profile
	s.state.JobPreferences = snap.JobPreferences
	s.state.RecommendedJobs = snap.RecommendedJobs
	s.state.ChatMessages = snap.ChatMessages
	s.state.ExtractedCVData = snap.ExtractedCVData
}

// persist serializes the persisted field set and overwrites the durable
// snapshot. Called with the mutex held by every mutation. Storage failures
// are absorbed: the in-memory state stays authoritative.
func (s *Store) persist() {
	snap := persisted{
		User:            s.state.User,
		IsAuthenticated: s.state.IsAuthenticated,
		Profile:         s.state.Profile,
		JobPreferences:  s.state.JobPreferences,
		RecommendedJobs: s.state.RecommendedJobs,
		ChatMessages:    s.state.ChatMessages,
		ExtractedCVData: s.state.ExtractedCVData,
	}
	data, err := json.Marshal(snap)
	if err != nil {
		log.Printf("[store] failed to serialize state: %v", err)
		return
	}
	if err := s.storage.Store(data); err != nil {
		log.Printf("[store] failed to save state: %v", err)
	}
}

// Login sets the authenticated user. Profile and preferences are left
// untouched; they may already exist from a prior session or are fetched by
// the API client afterwards.
func (s *Store) Login(user types.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := user
	s.state.User = &u
	s.state.IsAuthenticated = true
	s.persist()
}

// Logout erases the durable snapshot entirely and resets the in-memory
// state to the full default, including a freshly seeded welcome message.
// No re-load is needed, so IsLoading stays false.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.storage.Erase(); err != nil {
		log.Printf("[store] failed to erase saved state: %v", err)
	}
	s.state = s.defaults()
	s.state.IsLoading = false
}

// SetProfile replaces the profile wholesale. A nil profile clears it.
func (s *Store) SetProfile(profile *types.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if profile != nil {
		p := *profile
		s.state.Profile = &p
	} else {
		s.state.Profile = nil
	}
	s.persist()
}

// UpdateProfile shallow-merges the update into the existing profile. It is
// a documented no-op when no profile exists yet; it never creates one.
func (s *Store) UpdateProfile(update types.ProfileUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Profile == nil {
		return
	}
	update.Apply(s.state.Profile)
	s.persist()
}

// SetJobPreferences replaces the preferences wholesale.
func (s *Store) SetJobPreferences(prefs types.JobPreferences) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := prefs
	s.state.JobPreferences = &p
	s.persist()
}

// SetRecommendedJobs replaces the recommended jobs list (never appends).
func (s *Store) SetRecommendedJobs(jobs []types.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.RecommendedJobs = append([]types.Job(nil), jobs...)
	s.persist()
}

// AddChatMessage appends a message with a store-assigned timestamp.
// Timestamps never decrease, so ordering matches insertion order even when
// the wall clock stalls within a millisecond.
func (s *Store) AddChatMessage(msg types.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg.Timestamp = s.now().UnixMilli()
	if n := len(s.state.ChatMessages); n > 0 {
		if last := s.state.ChatMessages[n-1].Timestamp; msg.Timestamp < last {
			msg.Timestamp = last
		}
	}
	s.state.ChatMessages = append(s.state.ChatMessages, msg)
	s.persist()
}

// ClearChat discards the history and reseeds the single welcome message.
func (s *Store) ClearChat() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ChatMessages = []types.ChatMessage{
		{
			Role:      types.RoleAssistant,
			Content:   WelcomeMessage,
			Timestamp: s.now().UnixMilli(),
		},
	}
	s.persist()
}

// SetUploadedCV sets the transient uploaded file handle. Never persisted.
func (s *Store) SetUploadedCV(file *types.Attachment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.UploadedCV = file
}

// SetExtractedCVData replaces the extracted CV data wholesale.
func (s *Store) SetExtractedCVData(data *types.CVExtractedData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ExtractedCVData = data
	s.persist()
}

// User returns a copy of the authenticated user, or nil.
func (s *Store) User() *types.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.User == nil {
		return nil
	}
	u := *s.state.User
	return &u
}

// IsAuthenticated reports whether a user is logged in.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsAuthenticated
}

// Profile returns a copy of the profile, or nil when none is set.
func (s *Store) Profile() *types.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Profile == nil {
		return nil
	}
	p := *s.state.Profile
	p.Experience = append([]types.ExperienceItem(nil), p.Experience...)
	p.Education = append([]types.EducationItem(nil), p.Education...)
	p.Skills = append([]types.Skill(nil), p.Skills...)
	p.Projects = append([]types.ProjectItem(nil), p.Projects...)
	p.Certifications = append([]types.CertificationItem(nil), p.Certifications...)
	p.SuggestedJobTitles = append([]string(nil), p.SuggestedJobTitles...)
	return &p
}

// JobPreferences returns a copy of the preferences, or nil when unset.
func (s *Store) JobPreferences() *types.JobPreferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.JobPreferences == nil {
		return nil
	}
	p := *s.state.JobPreferences
	p.ContractTypes = append([]string(nil), p.ContractTypes...)
	return &p
}

// RecommendedJobs returns a copy of the recommended jobs list.
func (s *Store) RecommendedJobs() []types.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.Job(nil), s.state.RecommendedJobs...)
}

// ChatMessages returns a copy of the chat history.
func (s *Store) ChatMessages() []types.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.ChatMessage(nil), s.state.ChatMessages...)
}

// UploadedCV returns the transient uploaded file handle, or nil.
func (s *Store) UploadedCV() *types.Attachment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.UploadedCV
}

// ExtractedCVData returns the extracted CV data, or nil.
func (s *Store) ExtractedCVData() *types.CVExtractedData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ExtractedCVData
}

// IsLoading reports whether hydration is still in progress. Consumers must
// not make routing or rendering decisions while this is true.
func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsLoading
}
