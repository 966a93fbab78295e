package store

import (
	"errors"
	"sync"

	"go-user-directory/internal/domain"
)

// 哨兵错误，文案即接口返回的 error message
var (
	ErrValidation = errors.New("name and email are required")
	ErrConflict   = errors.New("email already registered")
	ErrNotFound   = errors.New("user not found")
)

// Store 进程内唯一的用户集合持有者。切片保持插入顺序；
// gin 并发处理请求，所以用互斥锁把对集合的访问串行化
type Store struct {
	mu    sync.Mutex
	users []domain.User
}

func New() *Store { return &Store{} }

// List 按插入顺序返回全部记录的副本
func (s *Store) List() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out
}

// Create 校验通过后分配 ID 并追加记录。
// ID 规则：现存最大 ID + 1，空集合时为 1（删除最大 ID 后该值会被复用）
func (s *Store) Create(in domain.UserInput) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if in.Name == "" || in.Email == "" {
		return domain.User{}, ErrValidation
	}
	if s.emailTaken(in.Email, 0) {
		return domain.User{}, ErrConflict
	}

	u := domain.User{
		ID:    s.nextID(),
		Name:  in.Name,
		Email: in.Email,
		Phone: domain.NormPhone(in.Phone),
		Age:   in.Age.Value,
	}
	s.users = append(s.users, u)
	return u, nil
}

// Update 整体替换 name/email/phone/age，ID 不变，位置不变
func (s *Store) Update(id int, in domain.UserInput) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.User{}, ErrNotFound
	}
	if in.Name == "" || in.Email == "" {
		return domain.User{}, ErrValidation
	}
	if s.emailTaken(in.Email, id) {
		return domain.User{}, ErrConflict
	}

	s.users[i].Name = in.Name
	s.users[i].Email = in.Email
	s.users[i].Phone = domain.NormPhone(in.Phone)
	s.users[i].Age = in.Age.Value
	return s.users[i], nil
}

func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.users = append(s.users[:i], s.users[i+1:]...)
	return nil
}

// 调用方需持锁

func (s *Store) indexOf(id int) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}

// emailTaken 邮箱是否被 exceptID 之外的记录占用（精确、区分大小写）
func (s *Store) emailTaken(email string, exceptID int) bool {
	for i := range s.users {
		if s.users[i].Email == email && s.users[i].ID != exceptID {
			return true
		}
	}
	return false
}

func (s *Store) nextID() int {
	maxID := 0
	for i := range s.users {
		if s.users[i].ID > maxID {
			maxID = s.users[i].ID
		}
	}
	return maxID + 1
}
