// pkg/viewstate/store.go
package viewstate

import "sync"

// ItineraryView is the displayable payload of the current itinerary slot.
type ItineraryView struct {
	ItineraryID    string  `json:"itinerary_id,omitempty"`
	ItineraryText  string  `json:"itineraryText"`
	Destination    string  `json:"destination"`
	Budget         float64 `json:"budget"`
	StartDate      string  `json:"startDate,omitempty"`
	EndDate        string  `json:"endDate,omitempty"`
	NumberOfPeople int     `json:"numberOfPeople,omitempty"`
	Preferences    string  `json:"preferences,omitempty"`
	CreatedAt      string  `json:"createdAt,omitempty"`
}

// State holds one session's display slot: the itinerary plus load/error
// flags. Each session has at most one slot; every transition replaces it
// wholesale, last writer wins.
type State struct {
	View      *ItineraryView `json:"view,omitempty"`
	IsLoading bool           `json:"is_loading"`
	Error     string         `json:"error,omitempty"`
}

type Store interface {
	// SetData installs a full itinerary and clears loading and error.
	SetData(sessionID string, view ItineraryView)

	// SetLoading marks the slot as loading and clears any previous error.
	SetLoading(sessionID string)

	// SetError records an error and clears the loading flag.
	SetError(sessionID string, message string)

	// Clear resets the slot to empty.
	Clear(sessionID string)

	Get(sessionID string) (State, bool)
}

type SlotStore struct {
	mu   sync.RWMutex
	data map[string]State
}

func NewSlotStore() *SlotStore {
	return &SlotStore{
		data: make(map[string]State),
	}
}

func (s *SlotStore) SetData(sessionID string, view ItineraryView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = State{View: &view}
}

func (s *SlotStore) SetLoading(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.data[sessionID]
	state.IsLoading = true
	state.Error = ""
	s.data[sessionID] = state
}

func (s *SlotStore) SetError(sessionID string, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.data[sessionID]
	state.Error = message
	state.IsLoading = false
	s.data[sessionID] = state
}

func (s *SlotStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
}

func (s *SlotStore) Get(sessionID string) (State, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.data[sessionID]
	return state, ok
}
