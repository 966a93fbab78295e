package store

import "go-user-directory/internal/domain"

// seedUsers 进程启动时预置的演示数据；顺序和内容是接口契约的一部分
func seedUsers() []domain.User {
	return []domain.User{
		{ID: 1, Name: "Juan Pérez", Email: "juan@email.com", Phone: str("123456789"), Age: num(30)},
		{ID: 2, Name: "María García", Email: "maria@email.com", Phone: str("987654321"), Age: num(25)},
		{ID: 3, Name: "Carlos López", Email: "carlos@email.com", Phone: str("555555555"), Age: num(35)},
	}
}

// NewSeeded 返回载入演示数据的 Store
func NewSeeded() *Store {
	return &Store{users: seedUsers()}
}

func str(s string) *string { return &s }
func num(n int) *int       { return &n }
