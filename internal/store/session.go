package store

import (
	"slices"

	"github.com/holafushion/storefront/internal/domain"
)

// SetUsers replaces the cached account list, same replace-all semantics as
// LoadCatalog.
func (s *Store) SetUsers(users []domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = slices.Clone(users)
}

func (s *Store) Users() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.users)
}

// SetLogged flips the session flag. A true-to-false transition empties the
// cart; logging in leaves whatever is in the cart alone.
func (s *Store) SetLogged(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.logged && !v {
		s.cart = nil
		s.loggedUser = nil
	}
	s.logged = v
}

func (s *Store) Logged() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.logged
}

func (s *Store) LoggedUser() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loggedUser == nil {
		return domain.User{}, false
	}

	return *s.loggedUser, true
}

// Login matches credentials with a linear scan over the cached account list,
// faithful to the backend contract this client consumes. It is not a
// security mechanism and does not claim to be.
func (s *Store) Login(email, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email && u.Password == password {
			u := u
			s.loggedUser = &u
			s.logged = true
			return true
		}
	}

	return false
}

func (s *Store) Logout() {
	s.SetLogged(false)
}

// StageUser loads an account into the user staging slot, used by the signup
// form, the profile editor and the admin edit-user form.
func (s *Store) StageUser(u domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userDraft = u
}

func (s *Store) UserDraft() domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.userDraft
}

func (s *Store) ResetUserDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userDraft = domain.User{Role: domain.RoleUser}
}

func (s *Store) SetUserName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userDraft.Name = name
}

func (s *Store) SetUserEmail(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userDraft.Email = email
}

func (s *Store) SetUserPassword(password string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userDraft.Password = password
}

func (s *Store) SetUserGender(gender string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userDraft.Gender = gender
}

func (s *Store) SetUserRole(role domain.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userDraft.Role = role
}
