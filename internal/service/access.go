package service

// AccessService checks users against the static allow-list
type AccessService struct {
	users   []int64
	allowed map[int64]struct{}
}

// NewAccessService creates a new access service from configured user IDs
func NewAccessService(userIDs []int64) *AccessService {
	allowed := make(map[int64]struct{}, len(userIDs))
	users := make([]int64, 0, len(userIDs))
	for _, id := range userIDs {
		if _, ok := allowed[id]; ok {
			continue
		}
		allowed[id] = struct{}{}
		users = append(users, id)
	}
	return &AccessService{users: users, allowed: allowed}
}

// IsAllowed checks if user is on the allow-list
func (s *AccessService) IsAllowed(userID int64) bool {
	_, ok := s.allowed[userID]
	return ok
}

// AllowedUsers returns all allow-listed user IDs in configured order
func (s *AccessService) AllowedUsers() []int64 {
	users := make([]int64, len(s.users))
	copy(users, s.users)
	return users
}
