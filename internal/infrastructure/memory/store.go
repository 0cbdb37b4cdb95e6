// Package memory provides an in-memory implementation of the persistence
// ports, keyed by incrementing ids behind a single mutex. It backs tests and
// local development; construct it and inject it like any other store.
package memory

import (
	"sync"

	"github.com/monsterwith/monstermedia/internal/core/domain"
)

type Store struct {
	mu sync.Mutex

	users     map[int64]domain.User
	requests  map[int64]domain.VipRequest
	favorites map[int64]domain.Favorite
	downloads map[int64]domain.Download
	themes    map[int64]domain.ThemeSettings
	content   map[string]domain.Content
	sessions  map[string]int64

	nextUserID     int64
	nextRequestID  int64
	nextFavoriteID int64
	nextDownloadID int64
	nextThemeID    int64
	nextContentID  int64
}

func NewStore() *Store {
	return &Store{
		users:     make(map[int64]domain.User),
		requests:  make(map[int64]domain.VipRequest),
		favorites: make(map[int64]domain.Favorite),
		downloads: make(map[int64]domain.Download),
		themes:    make(map[int64]domain.ThemeSettings),
		content:   make(map[string]domain.Content),
		sessions:  make(map[string]int64),
	}
}

// Repository views share the store's mutex, so a view method that touches
// several maps (the decide transition) stays atomic.

func (s *Store) Users() *UserRepository               { return &UserRepository{s: s} }
func (s *Store) VipRequests() *VipRequestRepository   { return &VipRequestRepository{s: s} }
func (s *Store) Content() *ContentRepository          { return &ContentRepository{s: s} }
func (s *Store) Interactions() *InteractionRepository { return &InteractionRepository{s: s} }
func (s *Store) Sessions() *SessionStore              { return &SessionStore{s: s} }
func (s *Store) Themes() *ThemeRepository             { return &ThemeRepository{s: s} }
